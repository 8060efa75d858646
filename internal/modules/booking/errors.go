package booking

import "errors"

var (
	// ErrValidation covers malformed input: bad time range, unknown
	// service or barber, missing customer fields. Never reaches storage.
	ErrValidation = errors.New("validation error")

	// ErrSlotConflict means the candidate interval collides with an
	// existing appointment. The caller should pick another time; this is
	// not a system fault.
	ErrSlotConflict = errors.New("slot was just taken")

	// ErrSlotBlocked means the candidate interval falls into a blackout
	// period.
	ErrSlotBlocked = errors.New("slot blocked for booking")

	// ErrUnauthorized is the phone mismatch on self-cancellation.
	ErrUnauthorized = errors.New("not allowed to modify this appointment")

	// ErrNotFound means the referenced appointment does not exist.
	ErrNotFound = errors.New("appointment not found")

	// ErrStorageUnavailable means the data store is unreachable or timed
	// out. Retryable by the caller; never surfaced as data corruption.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
