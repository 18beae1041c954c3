package parse_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/parsekit/parsekit/parse"
)

const (
	wrapMessageConstant         = "reading header"
	transformedErrorTextFormat  = "transformed"
	initialOffsetConstant       = 3
	advancedOffsetConstant      = 7
	parsedValueConstant         = 42
	andThenFailureTextConstant  = "value out of range"
	progressValueDoubleConstant = 84
)

type offsetPosition int

func (position offsetPosition) Position() int {
	return int(position)
}

var errParseFailed = errors.New("parse failed")

func TestProgressSuccessCarriesValueAndPosition(testInstance *testing.T) {
	progress := parse.Success(offsetPosition(advancedOffsetConstant), parsedValueConstant)

	require.True(testInstance, progress.IsSuccess())

	finishedPosition, finishedValue, finishedError := progress.Finish()
	require.NoError(testInstance, finishedError)
	require.Equal(testInstance, advancedOffsetConstant, finishedPosition.Position())
	require.Equal(testInstance, parsedValueConstant, finishedValue)
}

func TestProgressFailureCarriesError(testInstance *testing.T) {
	progress := parse.Failure[offsetPosition, int](offsetPosition(initialOffsetConstant), errParseFailed)

	require.False(testInstance, progress.IsSuccess())

	_, _, finishedError := progress.Finish()
	require.ErrorIs(testInstance, finishedError, errParseFailed)
}

func TestMapTransformsSuccessValue(testInstance *testing.T) {
	progress := parse.Success(offsetPosition(advancedOffsetConstant), parsedValueConstant)

	mappedProgress := parse.Map(progress, func(value int) int { return value * 2 })

	require.True(testInstance, mappedProgress.IsSuccess())
	require.Equal(testInstance, progressValueDoubleConstant, mappedProgress.Value)
	require.Equal(testInstance, advancedOffsetConstant, mappedProgress.Pos.Position())
}

func TestMapPreservesFailure(testInstance *testing.T) {
	progress := parse.Failure[offsetPosition, int](offsetPosition(initialOffsetConstant), errParseFailed)

	mappedProgress := parse.Map(progress, func(value int) int { return value * 2 })

	require.ErrorIs(testInstance, mappedProgress.Err, errParseFailed)
	require.Equal(testInstance, initialOffsetConstant, mappedProgress.Pos.Position())
}

func TestMapWithPosSuppliesEndPosition(testInstance *testing.T) {
	progress := parse.Success(offsetPosition(advancedOffsetConstant), parsedValueConstant)

	mappedProgress := parse.MapWithPos(progress, func(value int, endPosition offsetPosition) int {
		return value + endPosition.Position()
	})

	require.True(testInstance, mappedProgress.IsSuccess())
	require.Equal(testInstance, parsedValueConstant+advancedOffsetConstant, mappedProgress.Value)
}

func TestAndThenTransformsOrRewinds(testInstance *testing.T) {
	startPosition := offsetPosition(initialOffsetConstant)

	testCases := []struct {
		name           string
		transformError error
		expectedOffset int
		expectSuccess  bool
	}{
		{
			name:           "transform_succeeds_at_end_position",
			transformError: nil,
			expectedOffset: advancedOffsetConstant,
			expectSuccess:  true,
		},
		{
			name:           "transform_failure_rewinds_to_start",
			transformError: errors.New(andThenFailureTextConstant),
			expectedOffset: initialOffsetConstant,
			expectSuccess:  false,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(subTest *testing.T) {
			progress := parse.Success(offsetPosition(advancedOffsetConstant), parsedValueConstant)

			transformedProgress := parse.AndThen(progress, startPosition, func(value int) (int, error) {
				if testCase.transformError != nil {
					return 0, testCase.transformError
				}
				return value * 2, nil
			})

			require.Equal(subTest, testCase.expectSuccess, transformedProgress.IsSuccess())
			require.Equal(subTest, testCase.expectedOffset, transformedProgress.Pos.Position())
		})
	}
}

func TestWrapErrKeepsOriginalErrorVisible(testInstance *testing.T) {
	progress := parse.Failure[offsetPosition, int](offsetPosition(initialOffsetConstant), errParseFailed)

	wrappedProgress := progress.WrapErr(wrapMessageConstant)

	require.ErrorIs(testInstance, wrappedProgress.Err, errParseFailed)
	require.Contains(testInstance, wrappedProgress.Err.Error(), wrapMessageConstant)
}

func TestWrapErrLeavesSuccessUntouched(testInstance *testing.T) {
	progress := parse.Success(offsetPosition(advancedOffsetConstant), parsedValueConstant)

	wrappedProgress := progress.WrapErr(wrapMessageConstant)

	require.True(testInstance, wrappedProgress.IsSuccess())
	require.Equal(testInstance, parsedValueConstant, wrappedProgress.Value)
}

func TestMapErrReplacesError(testInstance *testing.T) {
	replacementError := errors.New(transformedErrorTextFormat)
	progress := parse.Failure[offsetPosition, int](offsetPosition(initialOffsetConstant), errParseFailed)

	mappedProgress := progress.MapErr(func(error) error { return replacementError })

	require.ErrorIs(testInstance, mappedProgress.Err, replacementError)
}

func TestRewindOnErrMovesFailurePosition(testInstance *testing.T) {
	progress := parse.Failure[offsetPosition, int](offsetPosition(advancedOffsetConstant), errParseFailed)

	rewoundProgress := progress.RewindOnErr(offsetPosition(initialOffsetConstant))

	require.ErrorIs(testInstance, rewoundProgress.Err, errParseFailed)
	require.Equal(testInstance, initialOffsetConstant, rewoundProgress.Pos.Position())
}
