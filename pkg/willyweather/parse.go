package willyweather

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// The markup this parser understands: the first li.day element holds today's
// table, and each extremum within it is an li whose class names it point-high
// or point-low, with the time in an h3 child and the height in a span child.
// The selectors live here and nowhere else, so a site layout change only
// requires updating this block.
const (
	daySelector   = "li.day"
	pointSelector = "li.point-high, li.point-low"
	highClass     = "point-high"
)

// Clock layouts seen on the site, e.g. "5:16 am" and "5:16am".
var clockLayouts = []string{"3:04 pm", "3:04pm", "3:04 PM", "3:04PM"}

// Parse extracts the day's tide schedule from a fetched tide page. Events
// carry the calendar date of date in tz, are sorted chronologically, and are
// checked for the high/low alternation a real tide table always has. Parse
// fails closed: a missing or malformed field yields a *ParseError and no
// schedule, since a partial schedule would produce a misleading estimate.
func Parse(doc string, date time.Time, tz *time.Location) (Schedule, error) {
	page, err := goquery.NewDocumentFromReader(strings.NewReader(doc))
	if err != nil {
		return nil, parseErrorf("not parseable HTML: %v", err)
	}

	day := page.Find(daySelector).First()
	if day.Length() == 0 {
		return nil, parseErrorf("no %q section found", daySelector)
	}

	var sched Schedule
	var pointErr error
	day.Find(pointSelector).EachWithBreak(func(i int, sel *goquery.Selection) bool {
		ev, err := parsePoint(sel, date, tz)
		if err != nil {
			pointErr = err
			return false
		}
		sched = append(sched, ev)
		return true
	})
	if pointErr != nil {
		return nil, pointErr
	}
	if len(sched) == 0 {
		return nil, parseErrorf("no tide points found in %q section", daySelector)
	}

	sort.Slice(sched, func(i, j int) bool {
		return sched[i].Time.Before(sched[j].Time)
	})

	if err := validate(sched); err != nil {
		return nil, err
	}
	return sched, nil
}

// parsePoint extracts one tide event from a point-high/point-low element.
func parsePoint(sel *goquery.Selection, date time.Time, tz *time.Location) (Event, error) {
	kind := LowTide
	if sel.HasClass(highClass) {
		kind = HighTide
	}

	clockText := strings.TrimSpace(sel.Find("h3").First().Text())
	if clockText == "" {
		return Event{}, parseErrorf("tide point %s missing time", kind)
	}
	clock, err := parseClock(clockText)
	if err != nil {
		return Event{}, err
	}

	heightText := strings.TrimSpace(sel.Find("span").First().Text())
	if heightText == "" {
		return Event{}, parseErrorf("tide point %s at %q missing height", kind, clockText)
	}
	height, err := parseHeight(heightText)
	if err != nil {
		return Event{}, err
	}

	return Event{
		Time: time.Date(date.Year(), date.Month(), date.Day(),
			clock.Hour(), clock.Minute(), 0, 0, tz),
		Height: height,
		Kind:   kind,
	}, nil
}

func parseClock(s string) (time.Time, error) {
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, parseErrorf("time %q not a clock time", s)
}

// parseHeight converts height text like "1.36m" to meters.
func parseHeight(s string) (float64, error) {
	trimmed := strings.TrimSpace(strings.TrimSuffix(s, "m"))
	h, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, parseErrorf("height %q not a number of meters", s)
	}
	return h, nil
}

// validate checks the schedule invariants: strictly increasing times and
// strictly alternating kinds. A violation means the page structure is not
// what we think it is, so the whole parse is rejected.
func validate(sched Schedule) error {
	for i := 0; i+1 < len(sched); i++ {
		if !sched[i].Time.Before(sched[i+1].Time) {
			return parseErrorf("events at %s and %s out of order",
				sched[i].Time.Format(time.Kitchen),
				sched[i+1].Time.Format(time.Kitchen))
		}
		if sched[i].Kind == sched[i+1].Kind {
			return parseErrorf("consecutive %s tides at %s and %s",
				sched[i].Kind,
				sched[i].Time.Format(time.Kitchen),
				sched[i+1].Time.Format(time.Kitchen))
		}
	}
	return nil
}
