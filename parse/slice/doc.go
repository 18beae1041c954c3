// Package slice provides positions and basic parsers over in-memory slices:
// fixed-size and predicate-driven takes, exact tag matching, and fixed-width
// numeric readers for byte input.
package slice
