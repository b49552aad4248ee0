package service

import "github.com/pkg/errors"

// Client-visible error taxonomy. External model failures are deliberately
// absent: they never surface and always degrade to the static fallback.
var (
	ErrVenueNotFound   = errors.New("venue not found")
	ErrDataUnavailable = errors.New("venue data not available")
)
