package combinator

import "github.com/parsekit/parsekit/parse"

// Optional wraps the specified parser, making it optional.
//
// A successful parse yields a pointer to the value. Recoverable failures turn
// into successes at the original position with a nil value. Irrecoverable
// failures stay failures.
func Optional[S any, P parse.Pos, T any](parser parse.Parser[S, P, T]) parse.Parser[S, P, *T] {
	return func(driver *parse.Driver[S], startPosition P) parse.Progress[P, *T] {
		attempt := parser(driver, startPosition)
		if attempt.Err == nil {
			parsedValue := attempt.Value
			return parse.Success(attempt.Pos, &parsedValue)
		}
		if parse.IsRecoverable(attempt.Err) {
			return parse.Success[P, *T](startPosition, nil)
		}
		return parse.Failure[P, *T](attempt.Pos, attempt.Err)
	}
}
