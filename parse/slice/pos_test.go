package slice_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/parsekit/parsekit/parse/slice"
)

func TestNewStartsAtOffsetZero(testInstance *testing.T) {
	position := slice.New([]byte{0x01, 0x02})

	require.Equal(testInstance, 0, position.Position())
	require.Equal(testInstance, []byte{0x01, 0x02}, position.Rest)
}

func TestAdvanceByMovesOffsetAndInput(testInstance *testing.T) {
	position := slice.New([]byte{0x01, 0x02, 0x03}).AdvanceBy(2)

	require.Equal(testInstance, 2, position.Position())
	require.Equal(testInstance, []byte{0x03}, position.Rest)
}

func TestTakeConsumesRequestedElements(testInstance *testing.T) {
	position := slice.New([]byte{0x01, 0x02, 0x03})

	progress := position.Take(2)

	require.NoError(testInstance, progress.Err)
	require.Equal(testInstance, []byte{0x01, 0x02}, progress.Value)
	require.Equal(testInstance, 2, progress.Pos.Position())
}

func TestTakeFailsWithoutConsumingWhenInputTooShort(testInstance *testing.T) {
	position := slice.New([]byte{0x01})

	progress := position.Take(2)

	require.ErrorIs(testInstance, progress.Err, slice.ErrNotEnoughData)
	require.Equal(testInstance, 0, progress.Pos.Position())
}

func TestTakeRejectsZeroElements(testInstance *testing.T) {
	position := slice.New([]byte{0x01})

	progress := position.Take(0)

	require.ErrorIs(testInstance, progress.Err, slice.ErrNotEnoughData)
}

func TestTake1ConsumesSingleElement(testInstance *testing.T) {
	position := slice.New([]byte{0x0A, 0x0B})

	progress := position.Take1()

	require.NoError(testInstance, progress.Err)
	require.Equal(testInstance, byte(0x0A), progress.Value)
	require.Equal(testInstance, 1, progress.Pos.Position())
}

func TestTake1FailsOnEmptyInput(testInstance *testing.T) {
	position := slice.New([]byte{})

	progress := position.Take1()

	require.ErrorIs(testInstance, progress.Err, slice.ErrNotEnoughData)
	require.Equal(testInstance, 0, progress.Pos.Position())
}
