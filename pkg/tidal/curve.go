package tidal

import (
	"math"
	"time"

	"github.com/calladine/tidewatch/pkg/willyweather"
)

// Curve links one tide extremum to the next smoothly. Its derivative at Start
// and End is zero and it is undefined outside [Start, End]. Curves are only
// used to draw the day's tide line; the live estimate in At uses the cosine
// rule instead.
type Curve struct {
	Start, End time.Time
	a, b, c, d float64
}

// A Spline is a slice of curves linked together to form the full day.
type Spline []Curve

// CurvesBetween identifies curves linking adjacent events of a schedule.
func CurvesBetween(sched willyweather.Schedule) Spline {
	if len(sched) < 2 {
		return nil
	}

	curves := make([]Curve, len(sched)-1)
	for i := 0; i < len(sched)-1; i++ {
		curves[i] = curveBetween(
			sched[i].Time, sched[i].Height,
			sched[i+1].Time, sched[i+1].Height)
	}
	return curves
}

func curveBetween(time1 time.Time, h1 float64, time2 time.Time, h2 float64) Curve {
	t1 := 0.0
	t2 := xrel(time1, time2)
	denominator := math.Pow(t1-t2, 3.0)
	a := (-2 * (h1 - h2)) / denominator
	b := (3 * (h1 - h2) * (t1 + t2)) / denominator
	c := (-6 * (h1 - h2) * t1 * t2) / denominator
	d := -1 * (-1*h2*math.Pow(t1, 3) + 3*h2*math.Pow(t1, 2)*t2 - 3*h1*t1*math.Pow(t2, 2) + h1*math.Pow(t2, 3)) / denominator
	return Curve{
		Start: time1,
		End:   time2,
		a:     a,
		b:     b,
		c:     c,
		d:     d,
	}
}

// Eval computes the spline height at t, or NaN outside the spline's domain.
func (s Spline) Eval(t time.Time) float64 {
	left, right := 0, len(s)
	for right > left {
		mid := left + (right-left)/2
		if t.Before(s[mid].Start) {
			right = mid
		} else if t.After(s[mid].End) {
			left = mid + 1
		} else {
			return s[mid].Eval(t)
		}
	}
	return math.NaN()
}

func (c Curve) Eval(t time.Time) float64 {
	if t.Before(c.Start) || t.After(c.End) {
		return math.NaN()
	}
	x := xrel(c.Start, t)
	return c.a*x*x*x + c.b*x*x + c.c*x + c.d
}

// xrel computes an x coordinate for t relative to origin. Keeping x close to
// the origin of each curve avoids large floating point errors.
func xrel(origin time.Time, t time.Time) float64 {
	return float64(t.Unix() - origin.Unix())
}
