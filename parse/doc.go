// Package parse provides the progress-tracking parser core shared by the
// combinator, slice, and accumulate packages. A parser is a function from a
// Driver and a position to a Progress value that records where parsing stopped
// and whether it succeeded.
package parse
