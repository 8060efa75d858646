package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(min int) time.Time {
	return time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC).Add(time.Duration(min) * time.Minute)
}

func TestOverlaps_Symmetric(t *testing.T) {
	cases := []struct {
		name         string
		aStart, aEnd int
		bStart, bEnd int
		want         bool
	}{
		{"disjoint", 0, 10, 20, 30, false},
		{"touching", 0, 10, 10, 20, false},
		{"partial", 0, 10, 5, 15, true},
		{"contained", 0, 30, 10, 20, true},
		{"identical", 0, 10, 0, 10, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Overlaps(at(tc.aStart), at(tc.aEnd), at(tc.bStart), at(tc.bEnd))
			assert.Equal(t, tc.want, got)
			// overlap is symmetric
			assert.Equal(t, got, Overlaps(at(tc.bStart), at(tc.bEnd), at(tc.aStart), at(tc.aEnd)))
		})
	}
}

func TestOverlaps_ZeroLengthNeverOverlaps(t *testing.T) {
	// a zero-length interval overlaps nothing under the half-open rule,
	// including itself and the boundary of another interval
	assert.False(t, Overlaps(at(10), at(10), at(10), at(10)))
	assert.False(t, Overlaps(at(10), at(10), at(0), at(10)))
	assert.False(t, Overlaps(at(10), at(10), at(10), at(20)))
	assert.False(t, Overlaps(at(0), at(10), at(10), at(10)))
	// a zero-length point strictly inside a range still does not overlap
	assert.False(t, Overlaps(at(5), at(5), at(0), at(10)))
}
