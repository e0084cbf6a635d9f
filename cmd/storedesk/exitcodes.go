package main

import (
	"errors"

	"storedesk/internal/repos"
	"storedesk/internal/validate"
)

const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (storage failure, bad arguments)
	ExitConfigError = 2 // Configuration error (unreadable config file, bad env value)
	ExitDataError   = 3 // Data error (non-numeric input, duplicate email)
)

// exitError pins an exit code on an error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func exitCode(err error) int {
	var ee *exitError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &ee):
		return ee.code
	case errors.Is(err, validate.ErrNotNumber), errors.Is(err, repos.ErrDuplicateEmail):
		return ExitDataError
	}
	return ExitError
}
