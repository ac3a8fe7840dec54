package level

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoValidRoom marks a cell for which no filler template satisfies the constraints.
	ErrNoValidRoom = errors.New("no valid room")
	// ErrNoValidEssentialCell marks an essential template with no matching placed room.
	ErrNoValidEssentialCell = errors.New("no valid essential cell")
	// ErrAttemptCapExceeded is matched by *AttemptCapError.
	ErrAttemptCapExceeded = errors.New("attempt cap exceeded")
	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("invalid config")
)

// PlacementError records a cell the placer could not fill.
type PlacementError struct {
	X, Y int
	Requirement
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("%v at (%d,%d): include %v exclude %v", ErrNoValidRoom, e.X, e.Y, e.Include, e.Exclude)
}

func (e *PlacementError) Unwrap() error { return ErrNoValidRoom }

// EssentialError records an essential template with no placed room of the same signature.
type EssentialError struct {
	ID string
}

func (e *EssentialError) Error() string {
	return fmt.Sprintf("%v for %q", ErrNoValidEssentialCell, e.ID)
}

func (e *EssentialError) Unwrap() error { return ErrNoValidEssentialCell }

// AttemptCapError is returned when every attempt failed validation.
type AttemptCapError struct {
	Attempts int
	Seed     string
	Last     Validation
	// Causes holds the placement and essential failures of the final attempt.
	Causes []error
}

func (e *AttemptCapError) Error() string {
	return fmt.Sprintf("level generation failed after %d attempts (seed %s): %s",
		e.Attempts, e.Seed, strings.Join(e.Last.Failed(), ", "))
}

// Is reports whether target is ErrAttemptCapExceeded.
func (e *AttemptCapError) Is(target error) bool {
	return target == ErrAttemptCapExceeded
}

// Unwrap exposes the final attempt's causes to errors.Is and errors.As.
func (e *AttemptCapError) Unwrap() []error {
	return e.Causes
}
