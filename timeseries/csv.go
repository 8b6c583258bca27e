package timeseries

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	HasHeader bool         // Whether the first line is a header to skip (default: true)
	Delimiter rune         // Field delimiter (default: ',')
	Logger    *slog.Logger // Receives discarded-row diagnostics (default: discard)
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		HasHeader: true,
		Delimiter: ',',
	}
}

func (o *CSVOptions) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o.Logger
}

// LoadCSV loads a passenger series from a CSV file.
//
// Rows with a bad field count, a non-digit count, a malformed period, an
// invalid month or a non-positive count are dropped. A duplicate period or a
// period earlier than the previous well-shaped row aborts the whole load.
func LoadCSV(filename string, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	file, err := os.Open(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, NewError(ErrSourceNotFound, fmt.Sprintf("file %s does not exist", filename))
		}
		return nil, NewError(ErrSourceUnreadable, fmt.Sprintf("error opening file %s: %v", filename, err))
	}
	defer file.Close()

	series, err := LoadCSVFromReader(file, opts)
	if err != nil {
		return nil, err
	}
	series.Name = filename
	return series, nil
}

// LoadCSVFromReader loads a passenger series from an io.Reader. All lines are
// read before any row is validated, so a read failure always wins over a
// sequencing error further down the source.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	lines, err := readLines(r)
	if err != nil {
		return nil, NewError(ErrSourceUnreadable, fmt.Sprintf("error reading source: %v", err))
	}
	first := 1
	if opts.HasHeader && len(lines) > 0 {
		lines = lines[1:]
		first = 2
	}
	return parseLines(lines, first, opts)
}

// readLines splits r into lines without a length limit. The trailing "\n" or
// "\r\n" of each line is removed; a final empty line is not reported.
func readLines(r io.Reader) ([]string, error) {
	reader := bufio.NewReader(r)
	var lines []string
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			lines = append(lines, line)
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// parseLines validates data lines. first is the 1-based source line number of
// lines[0] and is only used for diagnostics.
func parseLines(lines []string, first int, opts *CSVOptions) (*Series, error) {
	log := opts.logger()
	delim := string(opts.Delimiter)
	if opts.Delimiter == 0 {
		delim = ","
	}

	records := []Record{}
	// prev is the period text of the last row that passed the shape checks,
	// whether or not that row was kept.
	var prev string
	var prevPeriod Period
	havePrev := false
	discarded := 0

	for i, line := range lines {
		lineNo := first + i
		fields := strings.Split(line, delim)
		for j := range fields {
			fields[j] = strings.TrimSpace(fields[j])
		}

		if len(fields) < 2 {
			log.Debug("row discarded", "line", lineNo, "reason", "fewer than two fields")
			discarded++
			continue
		}
		date, count := fields[0], fields[1]

		if !isDigits(count) {
			log.Debug("row discarded", "line", lineNo, "reason", "count is not an integer", "count", count)
			discarded++
			continue
		}
		period, ok := ParsePeriod(date)
		if !ok {
			log.Debug("row discarded", "line", lineNo, "reason", "malformed period", "period", date)
			discarded++
			continue
		}

		if havePrev {
			if date == prev {
				return nil, NewError(ErrDuplicatePeriod, fmt.Sprintf("duplicate dates: %s, %s", prev, date))
			}
			if prevPeriod.Year == period.Year && prevPeriod.Month > period.Month {
				return nil, NewError(ErrMonthsOutOfOrder, fmt.Sprintf("months are not in order: %s, %s", prev, date))
			}
			if prevPeriod.Year > period.Year {
				return nil, NewError(ErrYearsOutOfOrder, fmt.Sprintf("years are not in order: %s, %s", prev, date))
			}
		}
		prev, prevPeriod, havePrev = date, period, true

		passengers, err := strconv.Atoi(count)
		if err != nil || passengers <= 0 {
			log.Debug("row discarded", "line", lineNo, "reason", "count is not positive", "count", count)
			discarded++
			continue
		}
		records = append(records, Record{Period: period, Passengers: passengers})
	}

	log.Info("series loaded", "records", len(records), "discarded", discarded)
	return &Series{Records: records}, nil
}

// SaveCSV writes a series to a CSV file with a date,passengers header.
func SaveCSV(series *Series, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := WriteCSV(file, series); err != nil {
		return err
	}
	return file.Close()
}

// WriteCSV writes a series as CSV to w.
func WriteCSV(w io.Writer, series *Series) error {
	writer := bufio.NewWriter(w)
	if _, err := writer.WriteString("date,passengers\n"); err != nil {
		return err
	}
	for _, r := range series.Records {
		if _, err := fmt.Fprintf(writer, "%s,%d\n", r.Period, r.Passengers); err != nil {
			return err
		}
	}
	return writer.Flush()
}
