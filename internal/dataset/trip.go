// internal/dataset/trip.go
package dataset

import "time"

// Trip is one bike-share ride as read from a city dataset.
type Trip struct {
	StartTime    time.Time
	EndTime      string
	Duration     float64 // seconds
	StartStation string
	EndStation   string
	UserType     string

	// rider is nil for cities whose dataset has no demographic columns.
	rider *Rider
}

// Rider holds the demographic columns. Either field may be missing in the
// source, since riders are not required to report them.
type Rider struct {
	Gender       string
	BirthYear    int
	HasBirthYear bool
}

// Month is derived from StartTime.
func (t Trip) Month() time.Month {
	return t.StartTime.Month()
}

// DayOfWeek is the full English weekday name of StartTime, e.g. "Monday".
func (t Trip) DayOfWeek() string {
	return t.StartTime.Weekday().String()
}

// Hour is the 0-23 start hour.
func (t Trip) Hour() int {
	return t.StartTime.Hour()
}

// Rider returns the demographic data, if the trip carries any.
func (t Trip) Rider() (Rider, bool) {
	if t.rider == nil {
		return Rider{}, false
	}
	return *t.rider, true
}

// WithRider returns a copy of t carrying demographic data.
func (t Trip) WithRider(r Rider) Trip {
	t.rider = &r
	return t
}

// Table is the in-memory dataset of one city. It is never modified after
// construction; filtering produces Views over it.
type Table struct {
	city         string
	demographics bool
	trips        []Trip
}

// NewTable builds a table from trips. When demographics is true every trip
// without rider data is given an empty Rider so that capability holds for
// all rows; when false any rider data is dropped.
func NewTable(city string, demographics bool, trips []Trip) *Table {
	rows := make([]Trip, len(trips))
	copy(rows, trips)
	for i := range rows {
		switch {
		case !demographics:
			rows[i].rider = nil
		case rows[i].rider == nil:
			rows[i].rider = &Rider{}
		}
	}
	return &Table{city: city, demographics: demographics, trips: rows}
}

// City returns the catalog name the table was loaded for.
func (t *Table) City() string {
	return t.city
}

// HasDemographics reports whether Gender and Birth Year are available.
func (t *Table) HasDemographics() bool {
	return t.demographics
}

// Len returns the number of trips.
func (t *Table) Len() int {
	return len(t.trips)
}

// All returns a view over every row of the table.
func (t *Table) All() View {
	rows := make([]int, len(t.trips))
	for i := range rows {
		rows[i] = i
	}
	return View{table: t, rows: rows}
}

// View is a non-owning, ordered selection of rows of a Table.
type View struct {
	table *Table
	rows  []int
}

// Table returns the underlying table, or nil for the zero View.
func (v View) Table() *Table {
	return v.table
}

// Len returns the number of rows in the view.
func (v View) Len() int {
	return len(v.rows)
}

// Trip returns the i-th trip of the view.
func (v View) Trip(i int) Trip {
	return v.table.trips[v.rows[i]]
}

// Rows returns the table row indexes selected by the view.
func (v View) Rows() []int {
	out := make([]int, len(v.rows))
	copy(out, v.rows)
	return out
}

// HasDemographics reports whether the underlying table carries rider data.
func (v View) HasDemographics() bool {
	return v.table != nil && v.table.demographics
}

// Where returns a new view holding the rows for which keep returns true,
// in their original order.
func (v View) Where(keep func(Trip) bool) View {
	var rows []int
	for _, r := range v.rows {
		if keep(v.table.trips[r]) {
			rows = append(rows, r)
		}
	}
	return View{table: v.table, rows: rows}
}

// Riders returns the demographic data of every row in the view.
func (v View) Riders() ([]Rider, error) {
	if !v.HasDemographics() {
		return nil, ErrMissingOptionalField
	}
	riders := make([]Rider, len(v.rows))
	for i, r := range v.rows {
		riders[i] = *v.table.trips[r].rider
	}
	return riders, nil
}

// Rider returns the demographic data of the i-th trip.
func (v View) Rider(i int) (Rider, error) {
	if !v.HasDemographics() {
		return Rider{}, ErrMissingOptionalField
	}
	return *v.Trip(i).rider, nil
}
