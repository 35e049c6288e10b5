package facts

import (
	"testing"
	"time"
)

func TestBytes(t *testing.T) {
	tcs := []struct {
		n        uint64
		expected string
	}{
		{n: 0, expected: "0B"},
		{n: 1023, expected: "1023B"},
		{n: 1024, expected: "1.0K"},
		{n: 1536, expected: "1.5K"},
		{n: 16 * 1024 * 1024 * 1024, expected: "16.0G"},
	}
	for _, tc := range tcs {
		if got := Bytes(tc.n); got != tc.expected {
			t.Errorf("Bytes(%d): expected %q, got %q", tc.n, tc.expected, got)
		}
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(23.4); got != "23%" {
		t.Errorf("expected 23%%, got %q", got)
	}
}

func TestDuration(t *testing.T) {
	tcs := []struct {
		d        time.Duration
		expected string
	}{
		{d: 5 * time.Minute, expected: "0:05"},
		{d: 26*time.Hour + 3*time.Minute, expected: "1 day, 2:03"},
		{d: 76*time.Hour + 5*time.Minute + 20*time.Second, expected: "3 days, 4:05"},
	}
	for _, tc := range tcs {
		if got := Duration(tc.d); got != tc.expected {
			t.Errorf("Duration(%s): expected %q, got %q", tc.d, tc.expected, got)
		}
	}
}
