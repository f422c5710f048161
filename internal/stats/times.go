package stats

import (
	"time"

	"github.com/aceteam-ai/bikeshare-cli/internal/dataset"
)

// TravelTimes holds the most frequent month, weekday and start hour.
type TravelTimes struct {
	Month Popular[string] `json:"month"` // month name, e.g. "January"
	Day   Popular[string] `json:"day_of_week"`
	Hour  Popular[int]    `json:"hour"`
}

// TimeOfTravel computes the popular travel times of v. Month ties resolve
// to the earlier month, day ties to the lexically first name, hour ties to
// the earlier hour.
func TimeOfTravel(v dataset.View) TravelTimes {
	n := v.Len()

	month := mode(n, func(i int) (time.Month, bool) { return v.Trip(i).Month(), true })

	return TravelTimes{
		Month: Popular[string]{Value: monthName(month), Count: month.Count, Found: month.Found},
		Day:   mode(n, func(i int) (string, bool) { return v.Trip(i).DayOfWeek(), true }),
		Hour:  mode(n, func(i int) (int, bool) { return v.Trip(i).Hour(), true }),
	}
}

func monthName(p Popular[time.Month]) string {
	if !p.Found {
		return ""
	}
	return p.Value.String()
}
