package driver

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("delegate not found")
	ErrSpawn        = errors.New("delegate could not be run")
	ErrMissingValue = errors.New("missing arg value")
)

// LookupError reports a delegate that is not on the search path.
type LookupError struct {
	Name string
	Err  error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("unable to find `%s' in PATH: %v", e.Name, e.Err)
}

func (e *LookupError) Unwrap() []error { return []error{ErrNotFound, e.Err} }

// SpawnError reports a delegate that could not be started or did not exit
// normally. Signal is set when it was killed by a signal.
type SpawnError struct {
	Path   string
	Signal string
	Err    error
}

func (e *SpawnError) Error() string {
	if e.Signal != "" {
		return fmt.Sprintf("%s: terminated by signal %s", e.Path, e.Signal)
	}
	return e.Err.Error()
}

func (e *SpawnError) Unwrap() []error { return []error{ErrSpawn, e.Err} }

// FlavorError reports a leading -flavor with no value after it.
type FlavorError struct {
	Flag string
}

func (e *FlavorError) Error() string {
	return fmt.Sprintf("missing arg value for '%s'", e.Flag)
}

func (e *FlavorError) Unwrap() error { return ErrMissingValue }
