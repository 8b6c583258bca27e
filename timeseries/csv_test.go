package timeseries

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T, data string) (*Series, error) {
	t.Helper()
	return LoadCSVFromReader(strings.NewReader(data), DefaultCSVOptions())
}

func periods(s *Series) []string {
	out := make([]string, len(s.Records))
	for i, r := range s.Records {
		out[i] = r.Period.String()
	}
	return out
}

func TestLoadCSVFromReader(t *testing.T) {
	csvData := `date,passengers
1949-01,112
1949-02,118
1949-03,132
1950-01,115`

	series, err := load(t, csvData)
	require.NoError(t, err)
	require.Equal(t, 4, series.Len())

	assert.Equal(t, []string{"1949-01", "1949-02", "1949-03", "1950-01"}, periods(series))
	assert.Equal(t, Record{Period: Period{Year: 1949, Month: 2}, Passengers: 118}, series.Records[1])
}

func TestLoadCSVEmpty(t *testing.T) {
	testCases := []struct {
		name    string
		csvData string
	}{
		{"no lines", ""},
		{"header only", "date,passengers\n"},
		{"only dirty rows", "date,passengers\nfoo\n1949-01,abc\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			series, err := load(t, tc.csvData)
			require.NoError(t, err)
			require.NotNil(t, series)
			assert.Equal(t, 0, series.Len())
		})
	}
}

func TestLoadCSVDiscardsDirtyRows(t *testing.T) {
	csvData := `date,passengers
1949-01,112
1949-02
1949-03,-5
1949-04,12.5
1949-05,
49-06,100
1949/07,100
1949-13,100
1949-00,100
1949-08,0
1949-09 , 140 , extra, fields
`
	series, err := load(t, csvData)
	require.NoError(t, err)

	assert.Equal(t, []string{"1949-01", "1949-09"}, periods(series))
	assert.Equal(t, 140, series.Records[1].Passengers)
}

func TestLoadCSVInvalidMonthSkipped(t *testing.T) {
	series, err := load(t, "date,passengers\n2019-13,50\n2019-05,80\n")
	require.NoError(t, err)
	require.Equal(t, []Record{{Period: Period{Year: 2019, Month: 5}, Passengers: 80}}, series.Records)
}

func TestLoadCSVSequencingErrors(t *testing.T) {
	testCases := []struct {
		name    string
		csvData string
		kind    error
	}{
		{"duplicate", "h\n1949-01,1\n1949-02,2\n1949-02,3\n", ErrDuplicatePeriod},
		{"duplicate after many rows", "h\n1949-01,1\n1949-02,2\n1949-03,3\n1949-04,4\n1949-04,5\n", ErrDuplicatePeriod},
		{"earlier month after many rows", "h\n1949-01,1\n1949-02,2\n1949-03,3\n1949-04,4\n1949-01,5\n", ErrMonthsOutOfOrder},
		{"months", "h\n1949-03,1\n1949-02,2\n", ErrMonthsOutOfOrder},
		{"years", "h\n1950-01,1\n1949-12,2\n", ErrYearsOutOfOrder},
		{"duplicate of zero-count row", "h\n1949-01,0\n1949-01,5\n", ErrDuplicatePeriod},
		{"order against discarded row", "h\n1949-01,10\n1949-06,0\n1949-03,5\n", ErrMonthsOutOfOrder},
		{"duplicate with padding", "h\n1949-01,1\n 1949-01 ,2\n", ErrDuplicatePeriod},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			series, err := load(t, tc.csvData)
			require.Error(t, err)
			assert.Nil(t, series)
			assert.True(t, errors.Is(err, tc.kind), "got %v", err)

			var domainErr *Error
			require.True(t, errors.As(err, &domainErr))
			assert.NotEmpty(t, domainErr.Msg)
		})
	}
}

func TestLoadCSVNonDigitCountSkippedBeforeOrdering(t *testing.T) {
	// The 1948 row has a valid period but is dropped before the order check.
	series, err := load(t, "h\n1949-05,1\n1948-01,abc\n1949-06,2\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"1949-05", "1949-06"}, periods(series))
}

func TestLoadCSVLongIgnoredField(t *testing.T) {
	csvData := "date,passengers\n2020-01,100," + strings.Repeat("x", 2<<20) + "\n2020-02,200\n"

	series, err := load(t, csvData)
	require.NoError(t, err)
	assert.Equal(t, []string{"2020-01", "2020-02"}, periods(series))
}

func TestLoadCSVLineEndings(t *testing.T) {
	series, err := load(t, "date,passengers\r\n2020-01,100\r\n\r\n2020-02,200")
	require.NoError(t, err)
	assert.Equal(t, []string{"2020-01", "2020-02"}, periods(series))
}

func TestLoadCSVMalformedRowsDoNotAdvanceOrdering(t *testing.T) {
	// A malformed row never becomes the ordering reference.
	series, err := load(t, "h\n1949-05,10\n1949-13,20\n1949-06,30\n1950-xx,1\n1949-07,40\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"1949-05", "1949-06", "1949-07"}, periods(series))
}

func TestLoadCSVNoHeader(t *testing.T) {
	opts := DefaultCSVOptions()
	opts.HasHeader = false

	series, err := LoadCSVFromReader(strings.NewReader("1949-01,112\n1949-02,118\n"), opts)
	require.NoError(t, err)
	assert.Equal(t, 2, series.Len())
}

func TestLoadCSVDelimiter(t *testing.T) {
	opts := DefaultCSVOptions()
	opts.Delimiter = ';'

	series, err := LoadCSVFromReader(strings.NewReader("date;passengers\n1949-01;112\n1949-02,118\n"), opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"1949-01"}, periods(series))
}

func TestLoadCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("date,passengers\r\n1949-01,112\r\n1949-02,118\r\n"), 0o644))

	first, err := LoadCSV(path, nil)
	require.NoError(t, err)
	assert.Equal(t, path, first.Name)
	assert.Equal(t, 2, first.Len())

	second, err := LoadCSV(path, nil)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestLoadCSVMissingFile(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "missing.csv"), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSourceNotFound)
	assert.Contains(t, err.Error(), "missing.csv")
}

func TestLoadCSVUnreadable(t *testing.T) {
	_, err := LoadCSV(t.TempDir(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSourceUnreadable)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestLoadCSVFromReaderReadError(t *testing.T) {
	_, err := LoadCSVFromReader(failingReader{}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSourceUnreadable)
	assert.Contains(t, err.Error(), "disk on fire")
}

func TestSaveCSVRoundTrip(t *testing.T) {
	series, err := load(t, "date,passengers\n1949-01,112\n1949-02,0\n1949-03,132\n")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "clean.csv")
	require.NoError(t, SaveCSV(series, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "date,passengers\n1949-01,112\n1949-03,132\n", string(data))

	reloaded, err := LoadCSV(path, nil)
	require.NoError(t, err)
	assert.Equal(t, series.Records, reloaded.Records)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteCSVError(t *testing.T) {
	series, err := load(t, "date,passengers\n1949-01,112\n")
	require.NoError(t, err)

	err = WriteCSV(failingWriter{}, series)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestDefaultCSVOptions(t *testing.T) {
	opts := DefaultCSVOptions()

	assert.True(t, opts.HasHeader, "Expected HasHeader to be true by default")
	assert.Equal(t, ',', opts.Delimiter)
	assert.Nil(t, opts.Logger)
}
