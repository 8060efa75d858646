package availability

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("record not found")
)
