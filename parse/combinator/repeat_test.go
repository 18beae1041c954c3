package combinator_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/parsekit/parsekit/parse"
	"github.com/parsekit/parsekit/parse/combinator"
	"github.com/parsekit/parsekit/parse/slice"
)

func TestZeroOrMoreCollectsUntilMismatch(testInstance *testing.T) {
	driver := parse.NewDriver()
	startPosition := slice.New([]byte{'a', 'a', 'b'})

	progress := combinator.ZeroOrMore(matchByteParser('a'))(driver, startPosition)

	require.NoError(testInstance, progress.Err)
	require.Equal(testInstance, [][]byte{{'a'}, {'a'}}, progress.Value)
	require.Equal(testInstance, 2, progress.Pos.Position())
}

func TestZeroOrMoreSucceedsWithoutMatches(testInstance *testing.T) {
	driver := parse.NewDriver()
	startPosition := slice.New([]byte{'b'})

	progress := combinator.ZeroOrMore(matchByteParser('a'))(driver, startPosition)

	require.NoError(testInstance, progress.Err)
	require.Empty(testInstance, progress.Value)
	require.Equal(testInstance, 0, progress.Pos.Position())
}

func TestZeroOrMoreAbortsOnIrrecoverableFailure(testInstance *testing.T) {
	driver := parse.NewDriver()
	startPosition := slice.New([]byte{'a'})

	progress := combinator.ZeroOrMore(fatalByteParser())(driver, startPosition)

	require.ErrorIs(testInstance, progress.Err, errFatalParser)
}

func TestOneOrMoreRequiresFirstMatch(testInstance *testing.T) {
	driver := parse.NewDriver()
	startPosition := slice.New([]byte{'b', 'a'})

	progress := combinator.OneOrMore(matchByteParser('a'))(driver, startPosition)

	require.ErrorIs(testInstance, progress.Err, slice.ErrTagMismatch)
}

func TestOneOrMoreCollectsConsecutiveMatches(testInstance *testing.T) {
	driver := parse.NewDriver()
	startPosition := slice.New([]byte{'a', 'a', 'a', 'b'})

	progress := combinator.OneOrMore(matchByteParser('a'))(driver, startPosition)

	require.NoError(testInstance, progress.Err)
	require.Len(testInstance, progress.Value, 3)
	require.Equal(testInstance, 3, progress.Pos.Position())
}

func TestOneOrMoreIntoHandsValuesToSink(testInstance *testing.T) {
	driver := parse.NewDriver()
	startPosition := slice.New([]byte{'a', 'a', 'b'})

	matchCount := 0
	progress := combinator.OneOrMoreInto(func([]byte) {
		matchCount++
	}, matchByteParser('a'))(driver, startPosition)

	require.NoError(testInstance, progress.Err)
	require.Equal(testInstance, 2, matchCount)
	require.Equal(testInstance, 2, progress.Pos.Position())
}
