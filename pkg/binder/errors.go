package binder

import "errors"

var (
	// ErrBinderNotApplicable is returned when a request carries nothing for the binder.
	ErrBinderNotApplicable  = errors.New("binder not applicable to request")
	ErrFailedToParseQuery   = errors.New("failed to parse query parameters")
	ErrFailedToParseSignals = errors.New("failed to parse datastar signals")
)
