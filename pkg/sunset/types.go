package sunset

import (
	"fmt"
	"time"
)

// Place is a lat/long coordinate on the Earth matched with its time zone.
type Place struct {
	Lat, Long float64
	Location  *time.Location
}

var (
	MooneeBeach = Place{
		-30.2046, 153.1536,
		locationOrPanic("Australia/Sydney"),
	}
)

// SunEvents is a time series of SunEvent.
type SunEvents []SunEvent

// SunEvent is a sunrise or sunset event.
type SunEvent struct {
	Time  time.Time
	Event Event
}

func (s *SunEvent) String() string {
	name := "Sunset"
	if s.Event == Sunrise {
		name = "Sunrise"
	}
	return fmt.Sprintf("%s %s", s.Time.Format(time.RFC822), name)
}

// Event encodes a sunrise or sunset event.
type Event bool

const (
	Sunrise Event = true
	Sunset        = false
)

func locationOrPanic(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}
