package availability

import (
	"testing"
	"time"
)

func TestOverlapsHalfOpen(t *testing.T) {
	base := time.Date(2026, 2, 16, 9, 0, 0, 0, time.UTC)
	hour := func(n int) time.Time { return base.Add(time.Duration(n) * time.Hour) }

	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd time.Time
		want                       bool
	}{
		{"identical", hour(0), hour(1), hour(0), hour(1), true},
		{"contained", hour(0), hour(4), hour(1), hour(2), true},
		{"partial overlap left", hour(1), hour(3), hour(0), hour(2), true},
		{"partial overlap right", hour(0), hour(2), hour(1), hour(3), true},
		{"touching end to start", hour(0), hour(1), hour(1), hour(2), false},
		{"touching start to end", hour(1), hour(2), hour(0), hour(1), false},
		{"disjoint", hour(0), hour(1), hour(3), hour(4), false},
		{"sliver inside", hour(0), hour(1), hour(0).Add(30 * time.Minute), hour(0).Add(45 * time.Minute), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestZonedWallClockToInstantDST(t *testing.T) {
	rome, err := time.LoadLocation("Europe/Rome")
	if err != nil {
		t.Fatalf("LoadLocation error: %v", err)
	}

	// Winter: CET, UTC+1.
	winter, err := ZonedWallClockToInstant("2026-01-15T09:00:00", rome)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC); !winter.Equal(want) {
		t.Errorf("winter instant = %v, want %v", winter.UTC(), want)
	}

	// Summer: CEST, UTC+2, same wall clock.
	summer, err := ZonedWallClockToInstant("2026-06-15T09:00:00", rome)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := time.Date(2026, 6, 15, 7, 0, 0, 0, time.UTC); !summer.Equal(want) {
		t.Errorf("summer instant = %v, want %v", summer.UTC(), want)
	}
}

func TestZonedWallClockToInstantRejectsGarbage(t *testing.T) {
	if _, err := ZonedWallClockToInstant("not-a-time", time.UTC); err == nil {
		t.Fatal("expected error for malformed wall-clock value")
	}
}
