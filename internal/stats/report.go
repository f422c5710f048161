package stats

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/aceteam-ai/bikeshare-cli/internal/dataset"
)

// Report bundles the four statistic groups of one view.
type Report struct {
	Trips     int         `json:"trips"`
	Times     TravelTimes `json:"times"`
	Stations  Stations    `json:"stations"`
	Durations Durations   `json:"durations"`
	Users     Users       `json:"users"`
}

// Compute runs the statistic groups concurrently. The view is only read, so
// the groups share it without locking. The error is non-nil only when ctx
// is done before the groups finish.
func Compute(ctx context.Context, v dataset.View) (Report, error) {
	r := Report{Trips: v.Len()}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.Times = TimeOfTravel(v)
		return nil
	})
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.Stations = PopularStations(v)
		return nil
	})
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.Durations = TripDurations(v)
		return nil
	})
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.Users = UserStats(v)
		return nil
	})

	if err := g.Wait(); err != nil {
		return Report{}, err
	}
	return r, nil
}
