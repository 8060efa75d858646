package admin

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnavailable means the deployment has no admin accounts table;
	// the console is disabled rather than half-working.
	ErrUnavailable = errors.New("admin accounts not provisioned")
)
