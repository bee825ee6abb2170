package timetricks

import (
	"time"
)

const (
	dayFormat = "20060102"
	dayPretty = "01/02"
)

func SameDay(t time.Time, t2 time.Time) bool {
	return t.Format(dayFormat) == t2.Format(dayFormat)
}

func Today(t time.Time) bool {
	return SameDay(t, time.Now())
}

func Tomorrow(t time.Time) bool {
	return Today(t.Add(-24 * time.Hour))
}

// TrimClock drops the wall clock component of t, leaving midnight of the same
// calendar day.
func TrimClock(t time.Time) time.Time {
	h, m, s := t.Clock()
	return t.Add(-1 *
		(time.Duration(h)*time.Hour +
			time.Duration(m)*time.Minute +
			time.Duration(s)*time.Second))
}

func SetClock(t time.Time, hour, minute time.Duration) time.Time {
	return TrimClock(t).Add(hour*time.Hour + minute*time.Minute)
}

// Day returns a human name for t's calendar day relative to the current date:
// "Today", "Tomorrow", a weekday within the coming week, or a short date.
func Day(t time.Time) string {
	switch {
	case Today(t):
		return "Today"
	case Tomorrow(t):
		return "Tomorrow"
	case t.After(time.Now()) && t.Before(time.Now().Add(6*24*time.Hour)):
		return t.Weekday().String()
	default:
		return t.Format(dayPretty)
	}
}

// UniqueDay returns a string representation of t that is unique by the day.
// Two separate times on the same calendar day return identical strings.
func UniqueDay(t time.Time) string {
	return t.Format(dayFormat)
}
