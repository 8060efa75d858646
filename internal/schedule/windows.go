package schedule

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"barbershop/internal/domain"
)

// TimeRange is one "HH:MM"–"HH:MM" open range within a day.
type TimeRange struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// ParseClock validates a zero-padded 24-hour "HH:MM" string and returns
// its offset from midnight in minutes.
func ParseClock(v string) (int, error) {
	if len(v) != 5 || v[2] != ':' {
		return 0, fmt.Errorf("bad clock value %q", v)
	}
	h, err := strconv.Atoi(v[:2])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("bad clock value %q", v)
	}
	m, err := strconv.Atoi(v[3:])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("bad clock value %q", v)
	}
	return h*60 + m, nil
}

// FormatClock renders minutes-from-midnight as zero-padded "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// WindowsForWeekday picks the rows matching the weekday and coalesces them
// into a minimal sorted set of non-overlapping ranges. An empty result
// means the day is closed.
func WindowsForWeekday(rows []domain.OperatingWindow, weekday int) []TimeRange {
	ranges := make([]TimeRange, 0, len(rows))
	for _, row := range rows {
		if row.Weekday == weekday {
			ranges = append(ranges, TimeRange{Open: row.Open, Close: row.Close})
		}
	}
	return MergeRanges(ranges)
}

// MergeRanges sorts by open time and sweep-merges overlapping or
// exactly-adjacent ranges, so 09:00-10:00 followed by 10:00-11:00 becomes
// 09:00-11:00. Fixed-width "HH:MM" strings compare correctly with plain
// string ordering. Merging an already merged list returns it unchanged.
func MergeRanges(ranges []TimeRange) []TimeRange {
	if len(ranges) == 0 {
		return []TimeRange{}
	}

	sorted := make([]TimeRange, len(ranges))
	copy(sorted, ranges)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Open < sorted[j].Open })

	merged := []TimeRange{sorted[0]}
	for _, r := range sorted[1:] {
		last := &merged[len(merged)-1]
		if r.Open <= last.Close {
			if r.Close > last.Close {
				last.Close = r.Close
			}
			continue
		}
		merged = append(merged, r)
	}
	return merged
}

// ValidateRanges checks a replacement window configuration before it is
// persisted: well-formed clock values, open strictly before close, and no
// two input ranges overlapping. Overlap here is rejected rather than
// coalesced; silently merging admin input would hide mistakes.
func ValidateRanges(ranges []TimeRange) error {
	for _, r := range ranges {
		if _, err := ParseClock(r.Open); err != nil {
			return err
		}
		if _, err := ParseClock(r.Close); err != nil {
			return err
		}
		if r.Open >= r.Close {
			return fmt.Errorf("range %s-%s: open must be before close", r.Open, r.Close)
		}
	}

	sorted := make([]TimeRange, len(ranges))
	copy(sorted, ranges)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Open < sorted[j].Open })
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Open < sorted[i-1].Close {
			return fmt.Errorf("ranges %s-%s and %s-%s overlap",
				sorted[i-1].Open, sorted[i-1].Close, sorted[i].Open, sorted[i].Close)
		}
	}
	return nil
}

// NormalizeClock trims whitespace and left-pads a single-digit hour, so
// "9:00" is accepted from admin forms as "09:00".
func NormalizeClock(v string) string {
	v = strings.TrimSpace(v)
	if len(v) == 4 && v[1] == ':' {
		return "0" + v
	}
	return v
}
