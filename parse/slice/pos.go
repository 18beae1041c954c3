package slice

import (
	"errors"

	"github.com/parsekit/parsekit/parse"
)

// ErrNotEnoughData reports that the input slice was too short for the
// requested read.
var ErrNotEnoughData = errors.New("not enough data")

// Pos is a position in a slice, tracking both the remaining input and the
// offset from the beginning of the parse.
//
// The offset is tracked separately from the slice so failures can report how
// far parsing progressed without holding on to the input itself.
type Pos[E any] struct {
	// Offset from the beginning of the parsing process.
	Offset int
	// Rest is the remaining input.
	Rest []E
}

// BytePos is the slice position for byte input.
type BytePos = Pos[byte]

// New creates a position at the start of the provided input.
func New[E any](input []E) Pos[E] {
	return Pos[E]{Rest: input}
}

// Position reports the offset from the beginning of the input.
func (position Pos[E]) Position() int {
	return position.Offset
}

// AdvanceBy moves the position forward by count elements. It panics when the
// new position would be out of bounds.
func (position Pos[E]) AdvanceBy(count int) Pos[E] {
	return Pos[E]{
		Offset: position.Offset + count,
		Rest:   position.Rest[count:],
	}
}

// Take consumes count elements from the input.
//
// It fails with ErrNotEnoughData when more elements are requested than remain.
// Requesting zero elements also fails, preventing repetition combinators from
// looping forever on a parser that consumes nothing.
func (position Pos[E]) Take(count int) parse.Progress[Pos[E], []E] {
	if count == 0 || count > len(position.Rest) {
		return parse.Failure[Pos[E], []E](position, ErrNotEnoughData)
	}
	taken := position.Rest[:count]
	return parse.Success(position.AdvanceBy(count), taken)
}

// Take1 consumes a single element from the input, failing with
// ErrNotEnoughData when none remains.
func (position Pos[E]) Take1() parse.Progress[Pos[E], E] {
	if len(position.Rest) == 0 {
		var missing E
		return parse.Progress[Pos[E], E]{Pos: position, Value: missing, Err: ErrNotEnoughData}
	}
	return parse.Success(position.AdvanceBy(1), position.Rest[0])
}
