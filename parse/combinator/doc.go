// Package combinator builds compound parsers out of simpler ones: optional
// matches, fixed and open-ended repetition, and ordered alternation. All
// combinators require the wrapped parsers to consume input on success;
// repetition over a non-consuming parser would never terminate.
package combinator
