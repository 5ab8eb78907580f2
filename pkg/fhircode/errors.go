package fhircode

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownCode      = errors.New("unknown code")
	ErrUnknownSystem    = errors.New("unknown code system")
	ErrEmptyCode        = errors.New("empty code")
	ErrEmptyElement     = errors.New("element must have a value or at least one extension")
	ErrInvalidID        = errors.New("invalid element id")
	ErrInvalidExtension = errors.New("invalid extension")
	ErrDuplicateSystem  = errors.New("code system already registered")
)

// CodeError reports a code that failed validation against a code system.
type CodeError struct {
	System string
	Code   string
	Err    error
}

func (e *CodeError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("%s: %v", e.System, e.Err)
	}
	return fmt.Sprintf("%s: %v %q", e.System, e.Err, e.Code)
}

func (e *CodeError) Unwrap() error { return e.Err }
