package provider

import "errors"

// Domain errors for the search session protocol
var (
	// Constructor validation errors
	ErrSourceRequired   = errors.New("items source is required")
	ErrLauncherRequired = errors.New("launch client is required")

	// ErrSourceUnavailable means the items source failed to deliver a fresh
	// result set. The previously cached set, if any, stays authoritative.
	ErrSourceUnavailable = errors.New("items source unavailable")

	// ErrResultNotFound means an activation referenced a result ID that is
	// not in the current cache.
	ErrResultNotFound = errors.New("result not found")

	// ErrLaunchFailed means the launch client reported a failure. The full
	// cause is logged; the error carries only a user-safe summary.
	ErrLaunchFailed = errors.New("launch failed")
)
