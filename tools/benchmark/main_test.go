package main

import (
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		want     string
	}{
		{
			name:     "milliseconds",
			duration: 500 * time.Millisecond,
			want:     "500ms",
		},
		{
			name:     "seconds",
			duration: 5 * time.Second,
			want:     "5.00s",
		},
		{
			name:     "minutes",
			duration: 2*time.Minute + 30*time.Second,
			want:     "2m 30s",
		},
		{
			name:     "hours",
			duration: 1*time.Hour + 15*time.Minute,
			want:     "1h 15m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatDuration(tt.duration)
			if got != tt.want {
				t.Errorf("formatDuration() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatRate(t *testing.T) {
	got := formatRate(100, 10*time.Second)
	if got != "10.00/s" {
		t.Errorf("formatRate() = %v, want 10.00/s", got)
	}

	if got := formatRate(100, 0); got != "N/A" {
		t.Errorf("formatRate() with zero duration = %v, want N/A", got)
	}
}

func TestPercentageString(t *testing.T) {
	if got := percentageString(1, 4); got != "25.00%" {
		t.Errorf("percentageString() = %v, want 25.00%%", got)
	}
	if got := percentageString(0, 0); got != "0.00%" {
		t.Errorf("percentageString() with zero total = %v, want 0.00%%", got)
	}
}

func TestPercentile(t *testing.T) {
	sorted := []time.Duration{
		10 * time.Millisecond,
		20 * time.Millisecond,
		30 * time.Millisecond,
		40 * time.Millisecond,
		100 * time.Millisecond,
	}

	tests := []struct {
		name string
		p    float64
		want time.Duration
	}{
		{name: "median", p: 0.50, want: 30 * time.Millisecond},
		{name: "p99", p: 0.99, want: 40 * time.Millisecond},
		{name: "max", p: 1.0, want: 100 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := percentile(sorted, tt.p); got != tt.want {
				t.Errorf("percentile(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}

	if got := percentile(nil, 0.5); got != 0 {
		t.Errorf("percentile(nil) = %v, want 0", got)
	}
}
