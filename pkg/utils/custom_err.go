package utils

import (
	"errors"
	"fmt"
)

var (
	ErrTripNotFound       = errors.New("trip not found")
	ErrActivityNotFound   = errors.New("activity not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrStorageError       = errors.New("storage error")
	ErrPlannerUnavailable = errors.New("planner unavailable")
	ErrPhotoUnavailable   = errors.New("photo search unavailable")
	ErrPlaceNotFound      = errors.New("place not found")
	ErrRouteUnavailable   = errors.New("route unavailable")
)

// PlanParseError reports that the generative model returned text that
// could not be turned into a valid trip. Always recoverable; the caller
// re-prompts or gives up, never crashes.
type PlanParseError struct {
	Reason string
	Err    error
}

func (e *PlanParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("plan parse failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("plan parse failed: %s", e.Reason)
}

func (e *PlanParseError) Unwrap() error {
	return e.Err
}
