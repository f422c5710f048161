package stats

import (
	"encoding/json"

	"github.com/aceteam-ai/bikeshare-cli/internal/dataset"
)

// Durations aggregates Trip Duration in seconds.
type Durations struct {
	Trips int
	Total float64
}

// Mean returns the average duration. ok is false for an empty view.
func (d Durations) Mean() (mean float64, ok bool) {
	if d.Trips == 0 {
		return 0, false
	}
	return d.Total / float64(d.Trips), true
}

// MarshalJSON encodes the mean as null when there are no trips.
func (d Durations) MarshalJSON() ([]byte, error) {
	out := struct {
		Trips int      `json:"trips"`
		Total float64  `json:"total_seconds"`
		Mean  *float64 `json:"mean_seconds"`
	}{Trips: d.Trips, Total: d.Total}
	if mean, ok := d.Mean(); ok {
		out.Mean = &mean
	}
	return json.Marshal(out)
}

// TripDurations sums the durations of v.
func TripDurations(v dataset.View) Durations {
	d := Durations{Trips: v.Len()}
	for i := range v.Len() {
		d.Total += v.Trip(i).Duration
	}
	return d
}
