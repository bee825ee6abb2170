package cmd

import (
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	table := []struct {
		d    time.Duration
		want string
	}{
		{4*time.Hour + 4*time.Minute, "4h04m"},
		{42 * time.Minute, "42m"},
		{time.Minute, "1m"},
		{3*time.Minute + 30*time.Second, "4m"},
		{12*time.Hour + 59*time.Minute + 40*time.Second, "13h00m"},
	}

	for _, tc := range table {
		t.Run(tc.want, func(t *testing.T) {
			if got := formatDuration(tc.d); got != tc.want {
				t.Errorf("formatDuration(%s) = %q, want %q", tc.d, got, tc.want)
			}
		})
	}
}
