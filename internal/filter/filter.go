// Package filter narrows a trip view by month and weekday.
package filter

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/aceteam-ai/bikeshare-cli/internal/dataset"
)

// All is the selector value that disables a filter.
const All = "all"

var (
	// ErrUnknownMonth indicates a month selector outside the month vocabulary
	ErrUnknownMonth = errors.New("unknown month")

	// ErrUnknownDay indicates a day selector outside the weekday vocabulary
	ErrUnknownDay = errors.New("unknown day of week")
)

var titleCase = cases.Title(language.English)

// MonthSelector picks one calendar month. The zero value selects all months.
type MonthSelector struct {
	month time.Month
}

// ParseMonth accepts "all" or an English month name in any case.
func ParseMonth(s string) (MonthSelector, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == All {
		return MonthSelector{}, nil
	}
	for m := time.January; m <= time.December; m++ {
		if strings.ToLower(m.String()) == s {
			return MonthSelector{month: m}, nil
		}
	}
	return MonthSelector{}, fmt.Errorf("%w: %q", ErrUnknownMonth, s)
}

// ForMonth selects a single month.
func ForMonth(m time.Month) MonthSelector {
	return MonthSelector{month: m}
}

// IsAll reports whether the selector disables month filtering.
func (s MonthSelector) IsAll() bool {
	return s.month == 0
}

// Month returns the selected month, or 0 for all.
func (s MonthSelector) Month() time.Month {
	return s.month
}

func (s MonthSelector) String() string {
	if s.IsAll() {
		return All
	}
	return strings.ToLower(s.month.String())
}

// DaySelector picks one weekday. The zero value selects all days.
type DaySelector struct {
	name string // canonical weekday name as produced by Trip.DayOfWeek
}

// ParseDay accepts "all" or an English weekday name in any case.
func ParseDay(s string) (DaySelector, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == All {
		return DaySelector{}, nil
	}
	name := titleCase.String(s)
	for d := time.Sunday; d <= time.Saturday; d++ {
		if d.String() == name {
			return DaySelector{name: name}, nil
		}
	}
	return DaySelector{}, fmt.Errorf("%w: %q", ErrUnknownDay, s)
}

// ForDay selects a single weekday.
func ForDay(d time.Weekday) DaySelector {
	return DaySelector{name: d.String()}
}

// IsAll reports whether the selector disables day filtering.
func (s DaySelector) IsAll() bool {
	return s.name == ""
}

// Day returns the canonical weekday name, or "" for all.
func (s DaySelector) Day() string {
	return s.name
}

func (s DaySelector) String() string {
	if s.IsAll() {
		return All
	}
	return strings.ToLower(s.name)
}

// Apply keeps the trips of v that match both selectors. v is left untouched.
func Apply(v dataset.View, month MonthSelector, day DaySelector) dataset.View {
	return v.Where(func(t dataset.Trip) bool {
		if !month.IsAll() && t.Month() != month.month {
			return false
		}
		if !day.IsAll() && t.DayOfWeek() != day.name {
			return false
		}
		return true
	})
}

// ByName parses both selectors and applies them.
func ByName(v dataset.View, month, day string) (dataset.View, error) {
	m, err := ParseMonth(month)
	if err != nil {
		return dataset.View{}, err
	}
	d, err := ParseDay(day)
	if err != nil {
		return dataset.View{}, err
	}
	return Apply(v, m, d), nil
}

// MonthNames returns the lower-case names of all twelve months.
func MonthNames() []string {
	names := make([]string, 0, 12)
	for m := time.January; m <= time.December; m++ {
		names = append(names, strings.ToLower(m.String()))
	}
	return names
}

// DayNames returns the lower-case weekday names starting from Monday.
func DayNames() []string {
	names := make([]string, 0, 7)
	for i := range 7 {
		names = append(names, strings.ToLower(time.Weekday((i+1)%7).String()))
	}
	return names
}
