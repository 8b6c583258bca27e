// Command paxtrend reports year-over-year changes in average monthly
// passengers for a CSV time series.
//
// Usage:
//
//	paxtrend -source data.csv -first 1949 -last 1960 [-output json] [-watch]
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/sartorproj/paxtrend/config"
	"github.com/sartorproj/paxtrend/stats"
	"github.com/sartorproj/paxtrend/timeseries"
)

// Report is the JSON rendering of one run.
type Report struct {
	Source     string              `json:"source"`
	FirstYear  string              `json:"first_year"`
	LastYear   string              `json:"last_year"`
	Records    int                 `json:"records"`
	Increments *stats.Increments   `json:"increments"`
	Years      []stats.YearSummary `json:"years"`
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		slog.Error("paxtrend failed", "err", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("paxtrend", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to YAML config file")
	source := fs.String("source", "", "passenger CSV file")
	first := fs.String("first", "", "first year (YYYY)")
	last := fs.String("last", "", "last year (YYYY)")
	output := fs.String("output", "", "output format: text | json | csv")
	watch := fs.Bool("watch", false, "recompute whenever the source changes")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "source":
			cfg.Source = *source
		case "first":
			cfg.FirstYear = *first
		case "last":
			cfg.LastYear = *last
		case "output":
			cfg.Output = *output
		case "watch":
			cfg.Watch = *watch
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger(cfg.Logging, os.Stderr)
	slog.SetDefault(logger)

	opts := timeseries.DefaultCSVOptions()
	opts.Logger = logger

	series, err := timeseries.LoadCSV(cfg.Source, opts)
	if err != nil {
		return err
	}
	if err := report(stdout, cfg, series); err != nil {
		return err
	}
	if !cfg.Watch {
		return nil
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return timeseries.Watch(ctx, cfg.Source, opts, func(updated *timeseries.Series) {
		if err := report(stdout, cfg, updated); err != nil {
			logger.Error("report failed", "err", err)
		}
	})
}

func report(w io.Writer, cfg *config.Config, series *timeseries.Series) error {
	inc, err := stats.ComputeIncrements(series, cfg.FirstYear, cfg.LastYear)
	if err != nil {
		return err
	}
	slog.Info("increments computed", "source", cfg.Source, "entries", inc.Len())

	switch cfg.Output {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(Report{
			Source:     cfg.Source,
			FirstYear:  cfg.FirstYear,
			LastYear:   cfg.LastYear,
			Records:    series.Len(),
			Increments: inc,
			Years:      stats.YearlySummary(series),
		})
	case "csv":
		var b strings.Builder
		b.WriteString("span,delta\n")
		for _, e := range inc.Entries() {
			b.WriteString(e.Label() + "," + strconv.FormatFloat(e.Delta, 'f', -1, 64) + "\n")
		}
		_, err := io.WriteString(w, b.String())
		return err
	case "text":
		return writeText(w, series, inc)
	}
	return errors.New("unknown output format " + cfg.Output)
}

func writeText(w io.Writer, series *timeseries.Series, inc *stats.Increments) error {
	fmt.Fprintf(w, "%d records\n\n", series.Len())
	fmt.Fprintf(w, "%-6s %6s %12s %10s\n", "year", "months", "total", "mean")
	for _, y := range stats.YearlySummary(series) {
		fmt.Fprintf(w, "%-6d %6d %12.0f %10.2f\n", y.Year, y.Months, y.Sum, y.Mean)
	}
	fmt.Fprintln(w)
	if inc.Len() == 0 {
		_, err := fmt.Fprintln(w, "no increments in range")
		return err
	}
	for _, e := range inc.Entries() {
		fmt.Fprintf(w, "%-10s %+10.2f\n", e.Label(), e.Delta)
	}
	return nil
}

func newLogger(cfg config.LoggingConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
