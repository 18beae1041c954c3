package parse

import "fmt"

const (
	wrapErrorTemplateConstant = "%s: %w"
)

// Pos marks a location in parsed input. Positions report a monotone offset
// from the beginning of the input so callers can compare how far two parse
// attempts progressed.
type Pos interface {
	Position() int
}

// Progress tracks the result of a parser: where it is and whether it
// succeeded.
//
// On success the value has been parsed and Pos points past the consumed
// input. On failure nothing has been parsed and Err explains the reason; Pos
// is usually unchanged from the caller's perspective.
type Progress[P Pos, T any] struct {
	Pos   P
	Value T
	Err   error
}

// Success builds a Progress recording a successful parse ending at pos.
func Success[P Pos, T any](pos P, value T) Progress[P, T] {
	return Progress[P, T]{Pos: pos, Value: value}
}

// Failure builds a Progress recording a failed parse at pos.
func Failure[P Pos, T any](pos P, parseError error) Progress[P, T] {
	return Progress[P, T]{Pos: pos, Err: parseError}
}

// IsSuccess reports whether the progress carries a parsed value.
func (progress Progress[P, T]) IsSuccess() bool {
	return progress.Err == nil
}

// Finish splits the progress into its position, value, and error.
func (progress Progress[P, T]) Finish() (P, T, error) {
	return progress.Pos, progress.Value, progress.Err
}

// MapErr transforms the error, if there is one.
func (progress Progress[P, T]) MapErr(transform func(error) error) Progress[P, T] {
	if progress.Err == nil {
		return progress
	}
	return Failure[P, T](progress.Pos, transform(progress.Err))
}

// WrapErr prefixes the error, if there is one, keeping the original error
// available for errors.Is and errors.As inspection.
func (progress Progress[P, T]) WrapErr(message string) Progress[P, T] {
	if progress.Err == nil {
		return progress
	}
	return Failure[P, T](progress.Pos, fmt.Errorf(wrapErrorTemplateConstant, message, progress.Err))
}

// RewindOnErr moves the position back to rewindPosition when the progress
// records a failure.
func (progress Progress[P, T]) RewindOnErr(rewindPosition P) Progress[P, T] {
	if progress.Err == nil {
		return progress
	}
	return Failure[P, T](rewindPosition, progress.Err)
}

// Map transforms the parsed value, if there is one.
func Map[P Pos, T any, U any](progress Progress[P, T], transform func(T) U) Progress[P, U] {
	if progress.Err != nil {
		return Failure[P, U](progress.Pos, progress.Err)
	}
	return Success(progress.Pos, transform(progress.Value))
}

// MapWithPos transforms the parsed value, if there is one, additionally
// supplying the position the parse ended at.
func MapWithPos[P Pos, T any, U any](progress Progress[P, T], transform func(T, P) U) Progress[P, U] {
	if progress.Err != nil {
		return Failure[P, U](progress.Pos, progress.Err)
	}
	return Success(progress.Pos, transform(progress.Value, progress.Pos))
}

// AndThen transforms the parsed value, potentially converting the progress
// into a failure. Failures rewind to restorePosition so callers can resume or
// report from the element's start.
func AndThen[P Pos, T any, U any](progress Progress[P, T], restorePosition P, transform func(T) (U, error)) Progress[P, U] {
	if progress.Err != nil {
		return Failure[P, U](progress.Pos, progress.Err)
	}
	transformedValue, transformError := transform(progress.Value)
	if transformError != nil {
		return Failure[P, U](restorePosition, transformError)
	}
	return Success(progress.Pos, transformedValue)
}
