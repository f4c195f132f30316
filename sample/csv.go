package sample

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/FooBarShebang/statistics-lib-sub001/errkind"
	"github.com/FooBarShebang/statistics-lib-sub001/measured"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	ValueColumn string // Column name for nominal values (default: "value")
	ErrorColumn string // Column name for standard errors (optional)
	IDColumn    string // Column name for a group ID (optional, for filtering)
	IDFilter    string // Value to filter by ID column
	HasHeader   bool   // Whether CSV has header row (default: true)
	Delimiter   rune   // Field delimiter (default: ',')
	SkipRows    int    // Number of rows to skip at start
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		ValueColumn: "value",
		HasHeader:   true,
		Delimiter:   ',',
	}
}

// LoadCSV loads a sample from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (*Sample, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", filename)
	}
	defer file.Close()

	s, err := LoadCSVFromReader(file, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", filename)
	}
	return s, nil
}

// LoadCSVFromReader loads a sample from an io.Reader. Rows with a missing or
// unparsable value are skipped; a missing or unparsable standard error is
// treated as 0.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Sample, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}

	valueIdx, errorIdx, idIdx := 0, -1, -1
	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, err
		}
		valueIdx = -1
		for i, h := range header {
			h = strings.TrimSpace(strings.Trim(h, "\""))
			switch {
			case h == opts.ValueColumn || (opts.ValueColumn == "" && (h == "value" || h == "x" || h == "y")):
				valueIdx = i
			case opts.ErrorColumn != "" && h == opts.ErrorColumn:
				errorIdx = i
			case opts.ErrorColumn == "" && (h == "se" || h == "SE" || h == "error"):
				errorIdx = i
			case opts.IDColumn != "" && h == opts.IDColumn:
				idIdx = i
			}
		}
		if valueIdx == -1 {
			return nil, errkind.Valuef("value column %q not found", opts.ValueColumn)
		}
	} else if opts.ErrorColumn != "" {
		// Without a header the first column is the value, the second the error.
		errorIdx = 1
	}

	var values, ses []float64
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if opts.IDFilter != "" && idIdx >= 0 && idIdx < len(record) {
			if field(record, idIdx) != opts.IDFilter {
				continue
			}
		}

		val, ok := parseField(record, valueIdx)
		if !ok {
			continue
		}
		se, ok := parseField(record, errorIdx)
		if !ok || se < 0 {
			se = 0
		}
		values = append(values, val)
		ses = append(ses, se)
	}

	if len(values) == 0 {
		return nil, errkind.Valuef("no valid data found in CSV")
	}

	if errorIdx < 0 {
		return FromFloats(values)
	}
	ms := make([]measured.Measurement, len(values))
	for i := range values {
		ms[i] = measured.Measurement{Value: values[i], SE: ses[i]}
	}
	return FromMeasurements(ms)
}

func field(record []string, idx int) string {
	return strings.TrimSpace(strings.Trim(record[idx], "\""))
}

func parseField(record []string, idx int) (float64, bool) {
	if idx < 0 || idx >= len(record) {
		return 0, false
	}
	s := field(record, idx)
	if s == "" || s == "NA" || s == "NaN" || s == "null" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// SaveCSV saves a sample to a CSV file with "value" and "se" columns.
func SaveCSV(s *Sample, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "creating %s", filename)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	if err := WriteCSV(writer, s); err != nil {
		return err
	}
	return writer.Flush()
}

// WriteCSV writes a sample as CSV with "value" and "se" columns.
func WriteCSV(w io.Writer, s *Sample) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"value", "se"}); err != nil {
		return err
	}
	for i, v := range s.values {
		row := []string{
			strconv.FormatFloat(v, 'g', -1, 64),
			strconv.FormatFloat(s.errors[i], 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
