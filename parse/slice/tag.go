package slice

import (
	"errors"

	"github.com/parsekit/parsekit/parse"
)

// ErrTagMismatch reports that the input did not start with the expected tag.
var ErrTagMismatch = errors.New("tag mismatch")

// ErrNoMatch reports that no leading element satisfied the predicate.
var ErrNoMatch = errors.New("no matching elements")

// Tag matches the input against the expected elements, succeeding when the
// input starts with exactly that sequence.
func Tag[S any, E comparable](expected []E) parse.Parser[S, Pos[E], []E] {
	return func(_ *parse.Driver[S], startPosition Pos[E]) parse.Progress[Pos[E], []E] {
		taken := startPosition.Take(len(expected))
		if taken.Err != nil {
			return taken
		}
		for elementIndex := range expected {
			if taken.Value[elementIndex] != expected[elementIndex] {
				return parse.Failure[Pos[E], []E](startPosition, ErrTagMismatch)
			}
		}
		return taken
	}
}

// TakeWhile1 consumes the longest non-empty prefix whose elements satisfy the
// predicate, failing with ErrNoMatch when the first element does not.
func TakeWhile1[S any, E any](predicate func(E) bool) parse.Parser[S, Pos[E], []E] {
	return func(_ *parse.Driver[S], startPosition Pos[E]) parse.Progress[Pos[E], []E] {
		matchedCount := 0
		for matchedCount < len(startPosition.Rest) && predicate(startPosition.Rest[matchedCount]) {
			matchedCount++
		}
		if matchedCount == 0 {
			return parse.Failure[Pos[E], []E](startPosition, ErrNoMatch)
		}
		return parse.Success(startPosition.AdvanceBy(matchedCount), startPosition.Rest[:matchedCount])
	}
}
