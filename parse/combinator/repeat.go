package combinator

import "github.com/parsekit/parsekit/parse"

// OneOrMore runs the specified parser until it stops matching, collecting the
// parsed values. The parser has to match at least once.
func OneOrMore[S any, P parse.Pos, T any](parser parse.Parser[S, P, T]) parse.Parser[S, P, []T] {
	return func(driver *parse.Driver[S], startPosition P) parse.Progress[P, []T] {
		var collected []T
		progress := OneOrMoreInto(func(parsedValue T) {
			collected = append(collected, parsedValue)
		}, parser)(driver, startPosition)
		if progress.Err != nil {
			return parse.Failure[P, []T](progress.Pos, progress.Err)
		}
		return parse.Success(progress.Pos, collected)
	}
}

// OneOrMoreInto runs the specified parser until it stops matching, handing
// each parsed value to sink. The parser has to match at least once. A nil
// sink discards the values.
func OneOrMoreInto[S any, P parse.Pos, T any](sink func(T), parser parse.Parser[S, P, T]) parse.Parser[S, P, struct{}] {
	return func(driver *parse.Driver[S], startPosition P) parse.Progress[P, struct{}] {
		firstAttempt := parser(driver, startPosition)
		if firstAttempt.Err != nil {
			return parse.Failure[P, struct{}](firstAttempt.Pos, firstAttempt.Err)
		}
		if sink != nil {
			sink(firstAttempt.Value)
		}
		return ZeroOrMoreInto(sink, parser)(driver, firstAttempt.Pos)
	}
}

// ZeroOrMore runs the specified parser until it stops matching, collecting
// the parsed values.
func ZeroOrMore[S any, P parse.Pos, T any](parser parse.Parser[S, P, T]) parse.Parser[S, P, []T] {
	return func(driver *parse.Driver[S], startPosition P) parse.Progress[P, []T] {
		collected := []T{}
		progress := ZeroOrMoreInto(func(parsedValue T) {
			collected = append(collected, parsedValue)
		}, parser)(driver, startPosition)
		if progress.Err != nil {
			return parse.Failure[P, []T](progress.Pos, progress.Err)
		}
		return parse.Success(progress.Pos, collected)
	}
}

// ZeroOrMoreInto runs the specified parser until it stops matching, handing
// each parsed value to sink. A recoverable failure ends the repetition; an
// irrecoverable failure aborts it. A nil sink discards the values.
func ZeroOrMoreInto[S any, P parse.Pos, T any](sink func(T), parser parse.Parser[S, P, T]) parse.Parser[S, P, struct{}] {
	return func(driver *parse.Driver[S], startPosition P) parse.Progress[P, struct{}] {
		currentPosition := startPosition
		for {
			attempt := parser(driver, currentPosition)
			if attempt.Err != nil {
				if parse.IsRecoverable(attempt.Err) {
					return parse.Success(currentPosition, struct{}{})
				}
				return parse.Failure[P, struct{}](attempt.Pos, attempt.Err)
			}
			if sink != nil {
				sink(attempt.Value)
			}
			currentPosition = attempt.Pos
		}
	}
}
