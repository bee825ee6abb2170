package cmd

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/spf13/viper"

	"github.com/calladine/tidewatch/pkg/sunset"
	"github.com/calladine/tidewatch/pkg/tidal"
	"github.com/calladine/tidewatch/pkg/willyweather"
)

const (
	clockFmt = "3:04 pm"
	dateFmt  = "Monday, Jan 02 2006"

	chartStep = 15 * time.Minute
)

// view renders the full tide panel: title, the day's schedule with the
// upcoming event marked, the live estimate, the daylight window, and the
// tide curve chart.
func view(loc willyweather.Location, sched willyweather.Schedule, est tidal.Estimate, rise, set sunset.SunEvent, now time.Time) string {
	b := &strings.Builder{}

	b.WriteString(titleStyle.Render(fmt.Sprintf("%s Tides — %s", loc.Name, now.Format(dateFmt))))
	b.WriteString("\n\n")

	for i := range sched {
		b.WriteString(eventLine(&sched[i], est.Next != nil && sched[i].Time.Equal(est.Next.Time)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(estimateLine(est))
	b.WriteString("\n")
	b.WriteString(sunStyle.Render(fmt.Sprintf("☀ rise %s · set %s",
		rise.Time.Format(clockFmt), set.Time.Format(clockFmt))))

	if !viper.GetBool("chart.disabled") {
		if c := chart(sched); c != "" {
			b.WriteString("\n\n")
			b.WriteString(c)
		}
	}

	return panelStyle.Render(b.String())
}

// eventLine formats one schedule row, e.g.
//
//	→ 5:16 pm   HIGH   1.01m  ← next
func eventLine(ev *willyweather.Event, next bool) string {
	indicator := " "
	if next {
		indicator = markerStyle.Render("→")
	}

	kind := lowStyle.Render(fmt.Sprintf("%-4s", "low"))
	if ev.Kind == willyweather.HighTide {
		kind = highStyle.Render(fmt.Sprintf("%-4s", "HIGH"))
	}

	line := fmt.Sprintf("%s %-9s %s %s",
		indicator,
		ev.Time.Format(clockFmt),
		kind,
		heightStyle.Render(fmt.Sprintf("%5.2fm", ev.Height)))
	if next {
		line += markerStyle.Render("  ← next")
	}
	return line
}

// estimateLine formats the live estimate, handling the degraded day-boundary
// cases where only one bracketing event is known.
func estimateLine(est tidal.Estimate) string {
	switch {
	case est.HasHeight:
		return fmt.Sprintf("Now: %s and %s — next %s at %s in %s",
			heightStyle.Render(fmt.Sprintf("%.2fm", est.Height)),
			trendText(est.Trend),
			est.Next.Kind,
			est.Next.Time.Format(clockFmt),
			formatDuration(est.TimeToNext))

	case est.Next != nil:
		return fmt.Sprintf("Next %s at %s in %s (%s, no earlier tide known)",
			est.Next.Kind,
			est.Next.Time.Format(clockFmt),
			formatDuration(est.TimeToNext),
			trendText(est.Trend))

	case est.Prev != nil:
		return fmt.Sprintf("After the day's last tide (%s at %s); tide is %s",
			est.Prev.Kind,
			est.Prev.Time.Format(clockFmt),
			trendText(est.Trend))

	default:
		return infoStyle.Render("No estimate available")
	}
}

func trendText(t tidal.Trend) string {
	if t == tidal.Rising {
		return risingStyle.Render("rising ▲")
	}
	return fallingStyle.Render("falling ▼")
}

// formatDuration prints a duration like 4h04m or 42m.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Minute)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh%02dm", h, m)
}

// chart draws the day's tide curve as a braille line chart. The curve is the
// smooth spline through the extrema sampled at fixed steps.
func chart(sched willyweather.Schedule) string {
	spl := tidal.CurvesBetween(sched)
	if len(spl) == 0 {
		return ""
	}

	minTime, maxTime := sched[0].Time, sched[len(sched)-1].Time
	minV, maxV := sched[0].Height, sched[0].Height
	for _, ev := range sched[1:] {
		minV = math.Min(minV, ev.Height)
		maxV = math.Max(maxV, ev.Height)
	}
	if minV == maxV {
		minV -= 0.1
		maxV += 0.1
	}

	lc := timeserieslinechart.New(viper.GetInt("chart.width"), viper.GetInt("chart.height"))
	lc.SetTimeRange(minTime, maxTime)
	lc.SetViewTimeAndYRange(minTime, maxTime, minV, maxV)
	lc.Model.XLabelFormatter = func(i int, v float64) string {
		return time.Unix(int64(v), 0).In(minTime.Location()).Format("15:04")
	}

	for t := minTime; !t.After(maxTime); t = t.Add(chartStep) {
		h := spl.Eval(t)
		if math.IsNaN(h) {
			continue
		}
		lc.Push(timeserieslinechart.TimePoint{Time: t, Value: h})
	}
	// Land exactly on the final extremum.
	lc.Push(timeserieslinechart.TimePoint{Time: maxTime, Value: sched[len(sched)-1].Height})
	lc.DrawBraille()

	b := &strings.Builder{}
	b.WriteString(lc.View())
	b.WriteString("\n")
	tzName, _ := minTime.Zone()
	b.WriteString(infoStyle.Render(fmt.Sprintf("height (m), %s – %s %s",
		minTime.Format("15:04"), maxTime.Format("15:04"), tzName)))
	return b.String()
}
