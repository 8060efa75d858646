package schedule

import "time"

// Overlaps reports whether the half-open intervals [startA, endA) and
// [startB, endB) share any instant. Touching intervals (endA == startB) do
// not overlap, which is what makes back-to-back appointments legal. A
// zero-length interval overlaps nothing, itself included.
func Overlaps(startA, endA, startB, endB time.Time) bool {
	if !startA.Before(endA) || !startB.Before(endB) {
		return false
	}
	return startA.Before(endB) && endA.After(startB)
}
