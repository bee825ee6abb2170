package willyweather

import (
	"fmt"
	"time"
)

// Event holds a single tide extremum.
type Event struct {
	// Local time of the extremum.
	Time time.Time `json:"time"`
	// Height in meters.
	Height float64 `json:"height"`
	// High or Low tide.
	Kind Tide `json:"kind"`
}

// Schedule is the ordered list of tide events for one calendar day.
// Invariants established by Parse: times strictly increase and kinds strictly
// alternate.
type Schedule []Event

// Tide encodes a high or low tide.
type Tide uint

const (
	HighTide Tide = iota
	LowTide
)

func (t Tide) Valid() bool {
	return t == HighTide || t == LowTide
}

func (t Tide) String() string {
	switch t {
	case HighTide:
		return "high"
	case LowTide:
		return "low"
	default:
		return "invalid"
	}
}

func (t Tide) MarshalJSON() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid tide kind %d", uint(t))
	}
	return []byte(`"` + t.String() + `"`), nil
}

func (e Event) String() string {
	return fmt.Sprintf("{t: %s, h: %.2fm, kind: %s}",
		e.Time.Format(time.RFC822),
		e.Height,
		e.Kind.String())
}

// Location names a tide page on the WillyWeather site, matched with the
// timezone its times are printed in.
type Location struct {
	Name   string
	Region string
	Slug   string
	TZ     *time.Location
}

var MooneeBeach = Location{
	Name:   "Moonee Beach",
	Region: "nsw/mid-north-coast",
	Slug:   "moonee-beach",
	TZ:     locationOrPanic("Australia/Sydney"),
}

// URL returns the address of the location's tide page.
func (l Location) URL() string {
	return fmt.Sprintf("%s/%s/%s.html", baseURL, l.Region, l.Slug)
}

func locationOrPanic(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}
