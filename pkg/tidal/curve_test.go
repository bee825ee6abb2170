package tidal

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/calladine/tidewatch/pkg/willyweather"
)

func ExampleSpline_Eval() {
	tstart := time.Date(2021, time.April, 3, 10, 30, 0, 0, time.UTC)
	sched := willyweather.Schedule{{
		Time:   tstart,
		Height: 10,
		Kind:   willyweather.HighTide,
	}, {
		Time:   tstart.Add(1000 * time.Hour),
		Height: 1,
		Kind:   willyweather.LowTide,
	}}
	spl := CurvesBetween(sched)
	step := 1000 * time.Hour / 9
	for i := 0; i < 10; i++ {
		fmt.Println(math.Round(spl.Eval(tstart.Add(step * time.Duration(i)))))
	}
	// Output:
	// 10
	// 10
	// 9
	// 8
	// 6
	// 5
	// 3
	// 2
	// 1
	// 1
}

func TestSplinePassesThroughEvents(t *testing.T) {
	sched := daySchedule()
	spl := CurvesBetween(sched)

	for _, ev := range sched {
		got := spl.Eval(ev.Time)
		if math.Abs(got-ev.Height) > 1e-9 {
			t.Errorf("spline at %s is %.6f, want %.2f",
				ev.Time.Format(time.Kitchen), got, ev.Height)
		}
	}
}

func TestSplineUndefinedOutsideDomain(t *testing.T) {
	sched := daySchedule()
	spl := CurvesBetween(sched)

	before := sched[0].Time.Add(-time.Hour)
	after := sched[len(sched)-1].Time.Add(time.Hour)
	if !math.IsNaN(spl.Eval(before)) {
		t.Errorf("spline defined before its domain: %v", spl.Eval(before))
	}
	if !math.IsNaN(spl.Eval(after)) {
		t.Errorf("spline defined after its domain: %v", spl.Eval(after))
	}
}

func TestCurvesBetweenTooFewEvents(t *testing.T) {
	if got := CurvesBetween(willyweather.Schedule{}); got != nil {
		t.Errorf("got %v for empty schedule, want nil", got)
	}
	one := willyweather.Schedule{event(5, 16, 1.36, willyweather.HighTide)}
	if got := CurvesBetween(one); got != nil {
		t.Errorf("got %v for single event, want nil", got)
	}
}
