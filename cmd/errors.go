package cmd

import "errors"

// ArgumentError reports an illegal flag combination or an invalid service
// name, detected before any side effect.
type ArgumentError struct {
	Err error
}

func (e *ArgumentError) Error() string { return e.Err.Error() }

func (e *ArgumentError) Unwrap() error { return e.Err }

// ErrNotConfirmed means the finish check could not find the file a mode was
// supposed to leave behind.
var ErrNotConfirmed = errors.New("could not confirm the output file was written")
