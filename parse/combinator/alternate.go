package combinator

import (
	"errors"

	"github.com/parsekit/parsekit/parse"
	"github.com/parsekit/parsekit/parse/accumulate"
)

// ErrNoBranches reports an alternation finished without any branch supplied.
var ErrNoBranches = errors.New("alternate finished without branches")

// Alternate tries parsers in the order supplied via One, all from the same
// start position, and keeps the result of the first one that succeeds.
//
// Recoverable failures are handed to the accumulator and the next branch is
// tried. An irrecoverable failure short-circuits the alternation and is
// returned as-is by Finish.
type Alternate[S any, P parse.Pos, T any] struct {
	driver        *parse.Driver[S]
	startPosition P
	result        parse.Progress[P, T]
	resolved      bool
	attempted     bool
	accumulator   accumulate.Accumulator[P]
}

// NewAlternate creates an alternation keeping only the last branch failure.
func NewAlternate[S any, P parse.Pos, T any](driver *parse.Driver[S], startPosition P) *Alternate[S, P, T] {
	return NewAlternateAccumulating[S, P, T](driver, startPosition, accumulate.NewLastError[P]())
}

// NewAlternateAccumulating creates an alternation recording branch failures
// through the provided accumulator.
func NewAlternateAccumulating[S any, P parse.Pos, T any](driver *parse.Driver[S], startPosition P, accumulator accumulate.Accumulator[P]) *Alternate[S, P, T] {
	return &Alternate[S, P, T]{
		driver:        driver,
		startPosition: startPosition,
		accumulator:   accumulator,
	}
}

// One runs the next branch unless a previous branch already resolved the
// alternation.
func (alternation *Alternate[S, P, T]) One(parser parse.Parser[S, P, T]) *Alternate[S, P, T] {
	if alternation.resolved {
		return alternation
	}

	attempt := parser(alternation.driver, alternation.startPosition)
	alternation.attempted = true
	alternation.result = attempt

	if attempt.Err == nil || !parse.IsRecoverable(attempt.Err) {
		alternation.resolved = true
		return alternation
	}

	alternation.accumulator.Add(attempt.Pos, attempt.Err)
	return alternation
}

// Finish completes the alternation, returning the progress of the first
// successful branch, the first irrecoverable failure, or the accumulated
// failures when every branch failed recoverably.
func (alternation *Alternate[S, P, T]) Finish() parse.Progress[P, T] {
	if alternation.resolved {
		return alternation.result
	}
	if !alternation.attempted {
		return parse.Failure[P, T](alternation.startPosition, ErrNoBranches)
	}
	accumulatedFailure := alternation.accumulator.Finish()
	if accumulatedFailure == nil {
		// a discarding accumulator must not turn a failed alternation
		// into a success
		accumulatedFailure = alternation.result.Err
	}
	return parse.Failure[P, T](alternation.result.Pos, accumulatedFailure)
}
