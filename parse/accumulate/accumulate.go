// Package accumulate tracks multiple failures encountered while trying
// alternative parsers, with strategies ranging from keeping only the last
// failure to keeping every failure observed at the furthest input position.
package accumulate

import (
	"go.uber.org/multierr"

	"github.com/parsekit/parsekit/parse"
)

// Accumulator collects parse failures reported at specific positions and
// condenses them into a single error once alternation gives up.
type Accumulator[P parse.Pos] interface {
	// Add records the specified failure at the position it occurred.
	Add(position P, failure error)
	// Finish condenses the recorded failures into one error. It returns nil
	// when no failure was recorded.
	Finish() error
}

// LastError keeps only the most recently recorded failure.
type LastError[P parse.Pos] struct {
	lastFailure error
}

// NewLastError creates an empty last-error accumulator.
func NewLastError[P parse.Pos]() *LastError[P] {
	return &LastError[P]{}
}

// Add records the failure, discarding any previously recorded one.
func (accumulator *LastError[P]) Add(_ P, failure error) {
	accumulator.lastFailure = failure
}

// Finish returns the most recently recorded failure.
func (accumulator *LastError[P]) Finish() error {
	return accumulator.lastFailure
}

// AllErrors stores every recorded failure.
type AllErrors[P parse.Pos] struct {
	failures []error
}

// NewAllErrors creates an empty all-errors accumulator.
func NewAllErrors[P parse.Pos]() *AllErrors[P] {
	return &AllErrors[P]{}
}

// Add appends the failure to the recorded set.
func (accumulator *AllErrors[P]) Add(_ P, failure error) {
	accumulator.failures = append(accumulator.failures, failure)
}

// Finish combines every recorded failure into a single error.
func (accumulator *AllErrors[P]) Finish() error {
	return multierr.Combine(accumulator.failures...)
}

// BestErrors keeps only the failures recorded at the furthest input position.
// Recording a failure beyond the current best position discards the previous
// ones; failures at the same position accumulate.
type BestErrors[P parse.Pos] struct {
	bestPosition int
	failures     []error
}

// NewBestErrors creates an empty best-errors accumulator.
func NewBestErrors[P parse.Pos]() *BestErrors[P] {
	return &BestErrors[P]{bestPosition: -1}
}

// Add records the failure when it occurred at or beyond the furthest position
// seen so far.
func (accumulator *BestErrors[P]) Add(position P, failure error) {
	failurePosition := position.Position()
	switch {
	case failurePosition < accumulator.bestPosition:
		// existing failures are better
	case failurePosition > accumulator.bestPosition:
		accumulator.bestPosition = failurePosition
		accumulator.failures = accumulator.failures[:0]
		accumulator.failures = append(accumulator.failures, failure)
	default:
		accumulator.failures = append(accumulator.failures, failure)
	}
}

// Finish combines the failures recorded at the furthest position.
func (accumulator *BestErrors[P]) Finish() error {
	return multierr.Combine(accumulator.failures...)
}

// Discard drops every recorded failure.
type Discard[P parse.Pos] struct{}

// NewDiscard creates an accumulator that ignores all failures.
func NewDiscard[P parse.Pos]() Discard[P] {
	return Discard[P]{}
}

// Add discards the failure.
func (Discard[P]) Add(_ P, _ error) {}

// Finish reports no failure.
func (Discard[P]) Finish() error {
	return nil
}
