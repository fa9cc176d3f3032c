package services

import (
	"errors"
	"strings"
)

var (
	// ErrValidation is matched by every *ValidationError.
	ErrValidation = errors.New("validation error")

	// ErrNotPrompting is returned when a check-in is submitted without an
	// open prompt.
	ErrNotPrompting = errors.New("check-in prompt is not open")

	// ErrToggleInFlight is returned when an objective is toggled while a
	// previous toggle for the same objective has not resolved yet.
	ErrToggleInFlight = errors.New("objective update already in progress")
)

// ValidationError lists fields rejected on the client before any request
// is sent.
type ValidationError struct {
	Fields []string
	Reason string
}

func (e *ValidationError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = "required"
	}
	return "invalid input: " + strings.Join(e.Fields, ", ") + " " + reason
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// requireFields returns a ValidationError naming every blank field, or nil.
// pairs alternates field name and value.
func requireFields(pairs ...string) error {
	var missing []string
	for i := 0; i+1 < len(pairs); i += 2 {
		if strings.TrimSpace(pairs[i+1]) == "" {
			missing = append(missing, pairs[i])
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return &ValidationError{Fields: missing}
}
