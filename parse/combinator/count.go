package combinator

import "github.com/parsekit/parsekit/parse"

// Result slices are pre-sized only up to this bound so a hostile length
// prefix read from untrusted input cannot force a huge allocation up front.
const countPreallocationLimitConstant = 1024

// Count runs the specified parser exactly occurrences times, returning all
// parsed values. On any failure the position rewinds to where counting
// started.
func Count[S any, P parse.Pos, T any](occurrences int, parser parse.Parser[S, P, T]) parse.Parser[S, P, []T] {
	return func(driver *parse.Driver[S], startPosition P) parse.Progress[P, []T] {
		collected := make([]T, 0, min(max(occurrences, 0), countPreallocationLimitConstant))
		progress := CountInto(occurrences, func(parsedValue T) {
			collected = append(collected, parsedValue)
		}, parser)(driver, startPosition)
		if progress.Err != nil {
			return parse.Failure[P, []T](progress.Pos, progress.Err)
		}
		return parse.Success(progress.Pos, collected)
	}
}

// SkipCount runs the specified parser exactly occurrences times, discarding
// the parsed values. On any failure the position rewinds to where counting
// started.
func SkipCount[S any, P parse.Pos, T any](occurrences int, parser parse.Parser[S, P, T]) parse.Parser[S, P, struct{}] {
	return CountInto[S, P, T](occurrences, nil, parser)
}

// CountInto runs the specified parser exactly occurrences times, handing each
// parsed value to sink. A nil sink discards the values. On any failure the
// position rewinds to where counting started.
func CountInto[S any, P parse.Pos, T any](occurrences int, sink func(T), parser parse.Parser[S, P, T]) parse.Parser[S, P, struct{}] {
	return func(driver *parse.Driver[S], startPosition P) parse.Progress[P, struct{}] {
		currentPosition := startPosition
		for iteration := 0; iteration < occurrences; iteration++ {
			attempt := parser(driver, currentPosition)
			if attempt.Err != nil {
				return parse.Failure[P, struct{}](startPosition, attempt.Err)
			}
			if sink != nil {
				sink(attempt.Value)
			}
			currentPosition = attempt.Pos
		}
		return parse.Success(currentPosition, struct{}{})
	}
}
