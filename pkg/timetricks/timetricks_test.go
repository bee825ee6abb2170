package timetricks

import (
	"fmt"
	"testing"
	"time"
)

func ExampleTrimClock() {
	t := time.Date(2026, time.August, 30, 12, 58, 30, 0, time.UTC)
	fmt.Println(TrimClock(t))
	// Output:
	// 2026-08-30 00:00:00 +0000 UTC
}

func TestSetClock(t *testing.T) {
	base := time.Date(2026, time.August, 30, 23, 1, 2, 0, time.UTC)
	got := SetClock(base, 5, 16)
	want := time.Date(2026, time.August, 30, 5, 16, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDay(t *testing.T) {
	table := []struct {
		t    time.Time
		want string
	}{{
		t:    time.Now(),
		want: "Today",
	}, {
		t:    time.Now().Add(24 * time.Hour),
		want: "Tomorrow",
	}, {
		t:    time.Date(1999, time.January, 5, 5, 35, 0, 0, time.Local),
		want: "01/05",
	}}

	for _, tc := range table {
		t.Run(tc.want, func(t *testing.T) {
			if got := Day(tc.t); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestUniqueDay(t *testing.T) {
	morning := time.Date(2026, time.August, 30, 5, 16, 0, 0, time.UTC)
	evening := time.Date(2026, time.August, 30, 23, 1, 0, 0, time.UTC)
	if UniqueDay(morning) != UniqueDay(evening) {
		t.Errorf("same day produced different keys: %q vs %q",
			UniqueDay(morning), UniqueDay(evening))
	}
	nextDay := evening.Add(2 * time.Hour)
	if UniqueDay(evening) == UniqueDay(nextDay) {
		t.Errorf("different days produced the same key %q", UniqueDay(evening))
	}
}
