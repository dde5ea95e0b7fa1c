package model

import (
	"errors"
	"fmt"
)

var (
	// ErrConfigurationUnavailable means cost, benefit or coefficient
	// configuration required for a computation is missing or malformed.
	ErrConfigurationUnavailable = errors.New("configuration unavailable")

	// ErrInvalidOverride means a caller-supplied cost override did not parse.
	// The configured default is used for that component only.
	ErrInvalidOverride = errors.New("invalid override")

	// ErrInsufficientData means a comparison or export was requested with
	// fewer than two stored scenarios.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrInvalidSelection means an attribute value is outside its domain.
	ErrInvalidSelection = errors.New("invalid selection")
)

// OverrideError describes one rejected cost override.
type OverrideError struct {
	Component string
	Raw       string
	Reason    string
}

func (e *OverrideError) Error() string {
	return fmt.Sprintf("%s: %s=%q: %s", ErrInvalidOverride, e.Component, e.Raw, e.Reason)
}

func (e *OverrideError) Unwrap() error {
	return ErrInvalidOverride
}
