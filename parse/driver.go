package parse

// Driver carries optional parser state shared across an entire parse run.
// Parsers that need no state use a Driver over the empty struct.
type Driver[S any] struct {
	State S
}

// NewDriver creates a stateless driver.
func NewDriver() *Driver[struct{}] {
	return &Driver[struct{}]{}
}

// NewDriverWithState creates a driver seeded with the provided state.
func NewDriverWithState[S any](state S) *Driver[S] {
	return &Driver[S]{State: state}
}

// Parser consumes input starting at a position and reports progress.
type Parser[S any, P Pos, T any] func(*Driver[S], P) Progress[P, T]
