package parse

import "errors"

// Recoverable classifies parse failures that allow a surrounding parser to
// recover and try something else. Failures usually stay recoverable when the
// input is well formed but a different branch should be attempted instead.
type Recoverable interface {
	error
	Recoverable() bool
}

type fatalError struct {
	wrapped error
}

func (failure *fatalError) Error() string {
	return failure.wrapped.Error()
}

func (failure *fatalError) Unwrap() error {
	return failure.wrapped
}

func (failure *fatalError) Recoverable() bool {
	return false
}

// Fatal marks the provided error as irrecoverable: alternation and repetition
// combinators abort instead of trying further branches.
func Fatal(parseError error) error {
	if parseError == nil {
		return nil
	}
	return &fatalError{wrapped: parseError}
}

// IsRecoverable reports whether a parse failure permits trying alternatives.
// Plain errors count as recoverable match failures; errors classified through
// the Recoverable interface (including Fatal-wrapped ones) decide themselves.
func IsRecoverable(parseError error) bool {
	if parseError == nil {
		return false
	}
	var classifiedError Recoverable
	if errors.As(parseError, &classifiedError) {
		return classifiedError.Recoverable()
	}
	return true
}
