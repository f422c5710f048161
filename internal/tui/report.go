package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/aceteam-ai/bikeshare-cli/internal/stats"
)

// NoData is shown in place of a statistic computed over zero rows.
const NoData = "no data"

// MissingValue labels counts of rows that left a column blank.
const MissingValue = "(not reported)"

// KeyValue is one labelled line of a section.
type KeyValue struct {
	Key   string
	Value string
}

// Section is a titled group of statistics, independent of how it is drawn.
type Section struct {
	Title string
	Items []KeyValue
}

// Render draws the section for the console.
func (s Section) Render() string {
	var sb strings.Builder
	sb.WriteString(SubtitleStyle.Render(s.Title))
	sb.WriteString("\n\n")
	for _, item := range s.Items {
		sb.WriteString(FormatKeyValue(item.Key, item.Value))
		sb.WriteString("\n")
	}
	return sb.String()
}

// Footer reports how long a section took, followed by a rule.
func Footer(elapsed time.Duration) string {
	took := MutedStyle.Render(fmt.Sprintf("This took %s seconds.", strconv.FormatFloat(elapsed.Seconds(), 'f', 6, 64)))
	return "\n" + took + "\n" + strings.Repeat("-", 40) + "\n"
}

// TimesSection presents the popular travel times.
func TimesSection(t stats.TravelTimes) Section {
	return Section{
		Title: "Most Frequent Times of Travel",
		Items: []KeyValue{
			{"Most common month", popular(t.Month, func(v string) string { return v })},
			{"Most common day of week", popular(t.Day, func(v string) string { return v })},
			{"Most common start hour", popular(t.Hour, strconv.Itoa)},
		},
	}
}

// StationsSection presents the popular stations and route.
func StationsSection(s stats.Stations) Section {
	return Section{
		Title: "Most Popular Stations and Trip",
		Items: []KeyValue{
			{"Most commonly used start station", popular(s.Start, func(v string) string { return v })},
			{"Most commonly used end station", popular(s.End, func(v string) string { return v })},
			{"Most frequent combination of start and end station", popular(s.Trip, func(p stats.StationPair) string {
				return p.Start + " → " + p.End
			})},
		},
	}
}

// DurationsSection presents total and mean trip duration.
func DurationsSection(d stats.Durations) Section {
	mean := NoData
	if m, ok := d.Mean(); ok {
		mean = seconds(m)
	}
	return Section{
		Title: "Trip Duration",
		Items: []KeyValue{
			{"Total travel time", seconds(d.Total)},
			{"Average travel time", mean},
		},
	}
}

// UsersSection presents user type counts and, when available, demographics.
func UsersSection(u stats.Users) Section {
	s := Section{Title: "User Stats"}
	if len(u.Types) == 0 {
		s.Items = append(s.Items, KeyValue{"User types", NoData})
	}
	for _, c := range u.Types {
		s.Items = append(s.Items, KeyValue{"User type " + label(c.Value), strconv.Itoa(c.Rows)})
	}

	if u.Demographics == nil {
		return s
	}
	for _, c := range u.Demographics.Genders {
		s.Items = append(s.Items, KeyValue{"Gender " + label(c.Value), strconv.Itoa(c.Rows)})
	}
	years := u.Demographics.BirthYears
	if years == nil {
		s.Items = append(s.Items, KeyValue{"Birth years", NoData})
		return s
	}
	s.Items = append(s.Items,
		KeyValue{"Earliest birth year", strconv.Itoa(years.Earliest)},
		KeyValue{"Most recent birth year", strconv.Itoa(years.MostRecent)},
		KeyValue{"Most common birth year", popular(years.MostCommon, strconv.Itoa)},
	)
	return s
}

// ReportSections returns the four sections of a report in display order.
func ReportSections(r stats.Report) []Section {
	return []Section{
		TimesSection(r.Times),
		StationsSection(r.Stations),
		DurationsSection(r.Durations),
		UsersSection(r.Users),
	}
}

func popular[T any](p stats.Popular[T], format func(T) string) string {
	if !p.Found {
		return NoData
	}
	return fmt.Sprintf("%s (%d trips)", format(p.Value), p.Count)
}

// seconds renders a duration both as raw seconds and as hours/minutes.
func seconds(v float64) string {
	d := time.Duration(math.Round(v)) * time.Second
	return fmt.Sprintf("%s seconds (%s)", strconv.FormatFloat(v, 'f', 2, 64), d)
}

func label(v string) string {
	if v == "" {
		return MissingValue
	}
	return v
}
