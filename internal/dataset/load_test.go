package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

const chicagoCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year,month
1423854,2017-06-23 15:09:32,2017-06-23 15:14:53,321,Wood St & Hubbard St,Damen Ave & Chicago Ave,Subscriber,Male,1992.0,11
955915,2017-05-25 18:19:03,2017-05-25 18:45:53,1610,Theater on the Lake,Sheffield Ave & Waveland Ave,Subscriber,Female,1992.0,11
9031,2017-01-04 08:27:49,2017-01-04 08:34:45,416,May St & Taylor St,Wood St & Taylor St,Customer,,,11
`

const washingtonCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type
1621326,2017-06-21 08:36:34,2017-06-21 08:44:43,489.066,14th & Belmont St NW,15th & K St NW,Subscriber
482740,2017-03-11 10:40:00,2017-03-11 10:46:00,402.549,Yuma St & Tenley Circle NW,Connecticut Ave & Yuma St NW,Subscriber
`

func TestLoadDerivesTimeFields(t *testing.T) {
	table, err := Load(strings.NewReader(chicagoCSV), Options{City: "chicago", Demographics: true})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if table.Len() != 3 {
		t.Fatalf("Len = %d, want 3", table.Len())
	}
	if table.City() != "chicago" {
		t.Errorf("City = %q, want chicago", table.City())
	}

	tests := []struct {
		row   int
		month time.Month
		day   string
		hour  int
	}{
		{0, time.June, "Friday", 15},
		{1, time.May, "Thursday", 18},
		{2, time.January, "Wednesday", 8},
	}

	all := table.All()
	for _, tt := range tests {
		trip := all.Trip(tt.row)
		if trip.Month() != tt.month {
			t.Errorf("row %d Month = %v, want %v", tt.row, trip.Month(), tt.month)
		}
		if trip.DayOfWeek() != tt.day {
			t.Errorf("row %d DayOfWeek = %q, want %q", tt.row, trip.DayOfWeek(), tt.day)
		}
		if trip.Hour() != tt.hour {
			t.Errorf("row %d Hour = %d, want %d", tt.row, trip.Hour(), tt.hour)
		}
	}
}

func TestLoadParsesFields(t *testing.T) {
	table, err := Load(strings.NewReader(chicagoCSV), Options{City: "chicago", Demographics: true})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	all := table.All()

	first := all.Trip(0)
	if first.Duration != 321 {
		t.Errorf("Duration = %v, want 321", first.Duration)
	}
	if first.StartStation != "Wood St & Hubbard St" {
		t.Errorf("StartStation = %q", first.StartStation)
	}
	if first.EndStation != "Damen Ave & Chicago Ave" {
		t.Errorf("EndStation = %q", first.EndStation)
	}
	if first.UserType != "Subscriber" {
		t.Errorf("UserType = %q, want Subscriber", first.UserType)
	}
	if first.EndTime != "2017-06-23 15:14:53" {
		t.Errorf("EndTime = %q", first.EndTime)
	}

	rider, err := all.Rider(0)
	if err != nil {
		t.Fatalf("Rider: %v", err)
	}
	if rider.Gender != "Male" || !rider.HasBirthYear || rider.BirthYear != 1992 {
		t.Errorf("Rider = %+v, want Male/1992", rider)
	}

	missing, err := all.Rider(2)
	if err != nil {
		t.Fatalf("Rider: %v", err)
	}
	if missing.Gender != "" || missing.HasBirthYear {
		t.Errorf("Rider = %+v, want empty", missing)
	}
}

func TestLoadWithoutDemographics(t *testing.T) {
	table, err := Load(strings.NewReader(washingtonCSV), Options{City: "washington"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if table.HasDemographics() {
		t.Error("HasDemographics = true, want false")
	}
	if got := table.All().Trip(0).Duration; got != 489.066 {
		t.Errorf("Duration = %v, want 489.066", got)
	}
	if _, err := table.All().Riders(); !errors.Is(err, ErrMissingOptionalField) {
		t.Errorf("Riders err = %v, want ErrMissingOptionalField", err)
	}
}

func TestLoadMalformedTimestamp(t *testing.T) {
	data := strings.Replace(washingtonCSV, "2017-03-11 10:40:00", "not a time", 1)

	_, err := Load(strings.NewReader(data), Options{City: "washington"})
	if !errors.Is(err, ErrMalformedTimestamp) {
		t.Fatalf("err = %v, want ErrMalformedTimestamp", err)
	}
	var rowErr *RowError
	if !errors.As(err, &rowErr) {
		t.Fatalf("err = %T, want *RowError", err)
	}
	if rowErr.Row != 2 || rowErr.Column != ColumnStartTime {
		t.Errorf("RowError = %+v, want row 2 column %q", rowErr, ColumnStartTime)
	}
}

func TestLoadMalformedDuration(t *testing.T) {
	data := strings.Replace(washingtonCSV, "489.066", "fast", 1)

	_, err := Load(strings.NewReader(data), Options{City: "washington"})
	if !errors.Is(err, ErrMalformedNumber) {
		t.Fatalf("err = %v, want ErrMalformedNumber", err)
	}
}

func TestLoadMalformedBirthYear(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"fractional", "1992.7"},
		{"text", "ninety"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := strings.Replace(chicagoCSV, "Female,1992.0", "Female,"+tt.value, 1)

			_, err := Load(strings.NewReader(data), Options{City: "chicago", Demographics: true})
			if !errors.Is(err, ErrMalformedNumber) {
				t.Fatalf("err = %v, want ErrMalformedNumber", err)
			}
			var rowErr *RowError
			if !errors.As(err, &rowErr) {
				t.Fatalf("err = %T, want *RowError", err)
			}
			if rowErr.Row != 2 || rowErr.Column != ColumnBirthYear || rowErr.Value != tt.value {
				t.Errorf("RowError = %+v, want row 2 column %q value %q", rowErr, ColumnBirthYear, tt.value)
			}
		})
	}
}

func TestLoadMissingColumns(t *testing.T) {
	tests := []struct {
		name string
		data string
		opts Options
	}{
		{
			name: "required column",
			data: "Start Time,End Time,Start Station,End Station,User Type\n",
			opts: Options{City: "washington"},
		},
		{
			name: "demographic column",
			data: washingtonCSV,
			opts: Options{City: "chicago", Demographics: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.data), tt.opts)
			if !errors.Is(err, ErrMissingColumn) {
				t.Errorf("err = %v, want ErrMissingColumn", err)
			}
		})
	}
}

func TestLoadHeaderOnly(t *testing.T) {
	table, err := Load(strings.NewReader("Start Time,End Time,Trip Duration,Start Station,End Station,User Type\n"), Options{City: "washington"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if table.Len() != 0 {
		t.Errorf("Len = %d, want 0", table.Len())
	}
}

func TestLoadEmptyInput(t *testing.T) {
	_, err := Load(strings.NewReader(""), Options{})
	if !errors.Is(err, ErrDataSourceUnavailable) {
		t.Errorf("err = %v, want ErrDataSourceUnavailable", err)
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.csv"), Options{})
	if !errors.Is(err, ErrDataSourceUnavailable) {
		t.Errorf("err = %v, want ErrDataSourceUnavailable", err)
	}
}

func TestLoadFileCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "washington.csv")
	if err := os.WriteFile(path, []byte(washingtonCSV), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	table, err := LoadFile(path, Options{City: "washington"})
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if table.Len() != 2 {
		t.Errorf("Len = %d, want 2", table.Len())
	}
}

func TestLoadFileWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "washington.xlsx")

	f := excelize.NewFile()
	rows := [][]interface{}{
		{"Start Time", "End Time", "Trip Duration", "Start Station", "End Station", "User Type"},
		{"2017-01-01 08:15:00", "2017-01-01 08:20:00", "300", "A", "B", "Subscriber"},
		{"2017-02-01 09:00:00", "2017-02-01 09:10:00", "600", "A", "C"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("CoordinatesToCellName: %v", err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("SetSheetRow: %v", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
	f.Close()

	table, err := LoadFile(path, Options{City: "washington"})
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if table.Len() != 2 {
		t.Fatalf("Len = %d, want 2", table.Len())
	}
	second := table.All().Trip(1)
	if second.DayOfWeek() != "Wednesday" {
		t.Errorf("DayOfWeek = %q, want Wednesday", second.DayOfWeek())
	}
	if second.UserType != "" {
		t.Errorf("UserType = %q, want empty for a short row", second.UserType)
	}
}
