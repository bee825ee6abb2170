// Package tidal computes a live tide estimate from a day's schedule of tide
// extrema. It interpolates between two already-known extrema; it does not
// model tidal physics.
package tidal

import (
	"math"
	"sort"
	"time"

	"github.com/calladine/tidewatch/pkg/willyweather"
)

// Trend encodes whether the water is rising toward a high or falling toward
// a low.
type Trend uint

const (
	Rising Trend = iota
	Falling
)

func (t Trend) String() string {
	switch t {
	case Rising:
		return "rising"
	case Falling:
		return "falling"
	default:
		return "invalid"
	}
}

func (t Trend) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// Estimate is the interpolated state of the tide at one instant. It is
// recomputed fresh each run and never persisted.
//
// Prev and Next are the schedule events bracketing the instant. At the day's
// boundaries one of them can be missing, in which case the estimate is
// degraded: HasHeight is false and only the surviving neighbor is reported.
type Estimate struct {
	Height     float64             `json:"height"`
	HasHeight  bool                `json:"hasHeight"`
	Trend      Trend               `json:"trend"`
	Prev       *willyweather.Event `json:"prev,omitempty"`
	Next       *willyweather.Event `json:"next,omitempty"`
	TimeToNext time.Duration       `json:"timeToNext,omitempty"`
}

// EstimateError reports a schedule that cannot support any estimate.
type EstimateError struct {
	Reason string
}

func (e *EstimateError) Error() string {
	return "estimate tide: " + e.Reason
}

// At estimates the tide at instant now from a schedule of tide extrema. The
// caller supplies now explicitly; At never reads the clock.
//
// The current height is a cosine interpolation between the bracketing
// extrema: with f the fraction of the interval elapsed, the height is
//
//	prev + (next - prev) * (1 - cos(f*π)) / 2
//
// which matches the ease-in/ease-out shape of a real tidal curve and hits
// both extrema exactly at f=0 and f=1.
func At(sched willyweather.Schedule, now time.Time) (Estimate, error) {
	if len(sched) == 0 {
		return Estimate{}, &EstimateError{Reason: "empty schedule"}
	}

	// First event strictly after now. Everything before index i is <= now.
	i := sort.Search(len(sched), func(i int) bool {
		return sched[i].Time.After(now)
	})

	var prev, next *willyweather.Event
	if i > 0 {
		prev = &sched[i-1]
	}
	if i < len(sched) {
		next = &sched[i]
	}

	switch {
	case prev == nil && next == nil:
		// Unreachable for a non-empty schedule, but fail rather than
		// divide by zero below.
		return Estimate{}, &EstimateError{Reason: "no events bracket the current time"}

	case prev == nil:
		// Before the day's first event with no earlier data. Report the
		// upcoming event without a height.
		return Estimate{
			Next:       next,
			TimeToNext: next.Time.Sub(now),
			Trend:      trendToward(next.Kind),
		}, nil

	case next == nil:
		// After the day's last event with no later data. The tide falls
		// away from a high and rises away from a low.
		return Estimate{
			Prev:  prev,
			Trend: trendFrom(prev.Kind),
		}, nil
	}

	f := fraction(prev.Time, next.Time, now)
	height := prev.Height + (next.Height-prev.Height)*(1-math.Cos(f*math.Pi))/2

	return Estimate{
		Height:     height,
		HasHeight:  true,
		Trend:      trendToward(next.Kind),
		Prev:       prev,
		Next:       next,
		TimeToNext: next.Time.Sub(now),
	}, nil
}

// fraction locates now between start and end as a value in [0, 1].
func fraction(start, end, now time.Time) float64 {
	span := end.Sub(start)
	if span <= 0 {
		return 0
	}
	f := float64(now.Sub(start)) / float64(span)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// trendToward gives the trend while approaching an extremum of the given
// kind. The tide rises toward a high and falls toward a low, regardless of
// how close the extremum is.
func trendToward(kind willyweather.Tide) Trend {
	if kind == willyweather.HighTide {
		return Rising
	}
	return Falling
}

// trendFrom gives the trend while departing an extremum of the given kind.
func trendFrom(kind willyweather.Tide) Trend {
	if kind == willyweather.HighTide {
		return Falling
	}
	return Rising
}
