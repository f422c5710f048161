// internal/dataset/load.go
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/xuri/excelize/v2"
)

// Source column names as they appear in the trip files.
const (
	ColumnStartTime    = "Start Time"
	ColumnEndTime      = "End Time"
	ColumnTripDuration = "Trip Duration"
	ColumnStartStation = "Start Station"
	ColumnEndStation   = "End Station"
	ColumnUserType     = "User Type"
	ColumnGender       = "Gender"
	ColumnBirthYear    = "Birth Year"
)

var requiredColumns = []string{
	ColumnStartTime,
	ColumnEndTime,
	ColumnTripDuration,
	ColumnStartStation,
	ColumnEndStation,
	ColumnUserType,
}

var demographicColumns = []string{ColumnGender, ColumnBirthYear}

// DefaultTimeLayouts are tried in order when parsing Start Time.
var DefaultTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"1/2/06 15:04",
	"2006-01-02",
}

// missingValue is how the frame renders cells listed in nanValues.
const missingValue = "NaN"

var nanValues = []string{"", "NA", "NaN", "nan"}

// Options controls how a source is turned into a Table.
type Options struct {
	City         string   // catalog name stored on the table
	Demographics bool     // source is expected to carry Gender and Birth Year
	TimeLayouts  []string // defaults to DefaultTimeLayouts
}

// LoadFile reads a .csv or .xlsx trip file. Workbooks are read from their
// first sheet.
func LoadFile(path string, opts Options) (*Table, error) {
	var (
		records [][]string
		err     error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		records, err = readWorkbook(path)
	default:
		records, err = readCSVFile(path)
	}
	if err != nil {
		return nil, err
	}
	return LoadRecords(records, opts)
}

// Load reads CSV trip data from r.
func Load(r io.Reader, opts Options) (*Table, error) {
	records, err := readCSV(r)
	if err != nil {
		return nil, err
	}
	return LoadRecords(records, opts)
}

// LoadRecords builds a table from a header row followed by data rows.
func LoadRecords(records [][]string, opts Options) (*Table, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no header row", ErrDataSourceUnavailable)
	}

	header := make([]string, len(records[0]))
	present := make(map[string]bool, len(header))
	for i, name := range records[0] {
		header[i] = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		present[header[i]] = true
	}

	need := requiredColumns
	if opts.Demographics {
		need = append(append([]string{}, requiredColumns...), demographicColumns...)
	}
	for _, name := range need {
		if !present[name] {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
	}

	if len(records) == 1 {
		return NewTable(opts.City, opts.Demographics, nil), nil
	}

	frame := dataframe.LoadRecords(
		normalize(header, records[1:]),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(nanValues),
	)
	if frame.Err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataSourceUnavailable, frame.Err)
	}

	layouts := opts.TimeLayouts
	if len(layouts) == 0 {
		layouts = DefaultTimeLayouts
	}

	col := func(name string) []string {
		return frame.Col(name).Records()
	}
	starts := col(ColumnStartTime)
	ends := col(ColumnEndTime)
	durations := col(ColumnTripDuration)
	startStations := col(ColumnStartStation)
	endStations := col(ColumnEndStation)
	userTypes := col(ColumnUserType)

	var genders, births []string
	if opts.Demographics {
		genders = col(ColumnGender)
		births = col(ColumnBirthYear)
	}

	trips := make([]Trip, frame.Nrow())
	for i := range trips {
		start, err := parseTimestamp(starts[i], layouts)
		if err != nil {
			return nil, &RowError{Row: i + 1, Column: ColumnStartTime, Value: starts[i], Err: ErrMalformedTimestamp}
		}
		duration, err := parseNumber(durations[i])
		if err != nil {
			return nil, &RowError{Row: i + 1, Column: ColumnTripDuration, Value: durations[i], Err: ErrMalformedNumber}
		}

		trip := Trip{
			StartTime:    start,
			EndTime:      optional(ends[i]),
			Duration:     duration,
			StartStation: optional(startStations[i]),
			EndStation:   optional(endStations[i]),
			UserType:     optional(userTypes[i]),
		}

		if opts.Demographics {
			rider := Rider{Gender: optional(genders[i])}
			if year := optional(births[i]); year != "" {
				f, err := parseNumber(year)
				if err != nil || f != math.Trunc(f) {
					return nil, &RowError{Row: i + 1, Column: ColumnBirthYear, Value: births[i], Err: ErrMalformedNumber}
				}
				rider.BirthYear = int(f)
				rider.HasBirthYear = true
			}
			trip = trip.WithRider(rider)
		}

		trips[i] = trip
	}

	return NewTable(opts.City, opts.Demographics, trips), nil
}

func readCSVFile(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataSourceUnavailable, err)
	}
	defer f.Close()
	return readCSV(f)
}

func readCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataSourceUnavailable, err)
	}
	return records, nil
}

func readWorkbook(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataSourceUnavailable, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook %s has no sheets", ErrDataSourceUnavailable, path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataSourceUnavailable, err)
	}
	return rows, nil
}

// normalize prepends the cleaned header and pads or cuts every data row to
// the header width. Spreadsheet rows drop trailing empty cells.
func normalize(header []string, rows [][]string) [][]string {
	out := make([][]string, 0, len(rows)+1)
	out = append(out, header)
	for _, row := range rows {
		cells := make([]string, len(header))
		copy(cells, row)
		out = append(out, cells)
	}
	return out
}

func parseTimestamp(value string, layouts []string) (time.Time, error) {
	value = strings.TrimSpace(value)
	var lastErr error
	for _, layout := range layouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func parseNumber(value string) (float64, error) {
	value = optional(value)
	if value == "" {
		return 0, ErrMalformedNumber
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrMalformedNumber
	}
	return f, nil
}

func optional(value string) string {
	if value == missingValue {
		return ""
	}
	return strings.TrimSpace(value)
}
