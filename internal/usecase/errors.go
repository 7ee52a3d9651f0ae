package usecase

import "errors"

// Error kinds. Every failure returned by a use case wraps exactly one of them.
var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrUpstream     = errors.New("upstream failure")
)

// Kind returns the error kind wrapped by err, or ErrUpstream when none is.
func Kind(err error) error {
	for _, k := range []error{ErrValidation, ErrNotFound, ErrForbidden, ErrConflict, ErrUnauthorized, ErrUpstream} {
		if errors.Is(err, k) {
			return k
		}
	}
	return ErrUpstream
}
