// Package sunset computes sunrise and sunset times for a place, used to
// annotate the tide display with the day's daylight window.
package sunset

import (
	"math"
	"time"

	"github.com/calladine/tidewatch/pkg/timetricks"

	"github.com/keep94/sunrise"
)

// GetSunEvents returns ordered sun events from the starting time through the
// given duration at the given place. The first result is always a sunrise.
func GetSunEvents(start time.Time, duration time.Duration, place Place) SunEvents {
	var s sunrise.Sunrise
	s.Around(place.Lat, place.Long, start)

	// The sunrise package can land on a neighboring day depending on the
	// time of day it is seeded with; walk forward until the day matches.
	for !timetricks.SameDay(start, s.Sunrise()) {
		s.AddDays(1)
	}

	numDays := int(math.Ceil(duration.Hours() / 24))
	ret := make(SunEvents, numDays*2)
	for i := 0; i < numDays*2; i += 2 {
		ret[i] = SunEvent{s.Sunrise(), Sunrise}
		ret[i+1] = SunEvent{s.Sunset(), Sunset}
		s.AddDays(1)
	}
	return ret
}

// Day returns the sunrise and sunset bracketing daylight on t's calendar day.
func Day(t time.Time, place Place) (rise, set SunEvent) {
	events := GetSunEvents(t, 24*time.Hour, place)
	return events[0], events[1]
}
