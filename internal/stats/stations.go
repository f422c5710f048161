package stats

import (
	"cmp"
	"strings"

	"github.com/aceteam-ai/bikeshare-cli/internal/dataset"
)

// StationPair is a start and end station taken together as one route.
type StationPair struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func compareStationPair(a, b StationPair) int {
	return cmp.Or(strings.Compare(a.Start, b.Start), strings.Compare(a.End, b.End))
}

// Stations holds the most used start station, end station and route.
type Stations struct {
	Start Popular[string]      `json:"start_station"`
	End   Popular[string]      `json:"end_station"`
	Trip  Popular[StationPair] `json:"trip"`
}

// PopularStations computes the station statistics of v. Empty station
// names are not counted.
func PopularStations(v dataset.View) Stations {
	n := v.Len()
	return Stations{
		Start: mode(n, func(i int) (string, bool) {
			s := v.Trip(i).StartStation
			return s, s != ""
		}),
		End: mode(n, func(i int) (string, bool) {
			s := v.Trip(i).EndStation
			return s, s != ""
		}),
		Trip: modeFunc(n, func(i int) (StationPair, bool) {
			t := v.Trip(i)
			return StationPair{Start: t.StartStation, End: t.EndStation}, t.StartStation != "" && t.EndStation != ""
		}, compareStationPair),
	}
}
