package accumulate_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/parsekit/parsekit/parse/accumulate"
)

type offsetPosition int

func (position offsetPosition) Position() int {
	return int(position)
}

var (
	errFirstBranch  = errors.New("first branch failed")
	errSecondBranch = errors.New("second branch failed")
	errThirdBranch  = errors.New("third branch failed")
)

func TestLastErrorKeepsOnlyMostRecentFailure(testInstance *testing.T) {
	accumulator := accumulate.NewLastError[offsetPosition]()

	accumulator.Add(offsetPosition(0), errFirstBranch)
	accumulator.Add(offsetPosition(2), errSecondBranch)

	combinedError := accumulator.Finish()
	require.ErrorIs(testInstance, combinedError, errSecondBranch)
	require.NotErrorIs(testInstance, combinedError, errFirstBranch)
}

func TestAllErrorsKeepsEveryFailure(testInstance *testing.T) {
	accumulator := accumulate.NewAllErrors[offsetPosition]()

	accumulator.Add(offsetPosition(0), errFirstBranch)
	accumulator.Add(offsetPosition(2), errSecondBranch)

	combinedError := accumulator.Finish()
	require.ErrorIs(testInstance, combinedError, errFirstBranch)
	require.ErrorIs(testInstance, combinedError, errSecondBranch)
	require.Len(testInstance, multierr.Errors(combinedError), 2)
}

func TestBestErrorsKeepsFurthestFailures(testInstance *testing.T) {
	testCases := []struct {
		name              string
		recordedPositions []int
		recordedFailures  []error
		expectedFailures  []error
	}{
		{
			name:              "furthest_failure_discards_earlier_ones",
			recordedPositions: []int{0, 4},
			recordedFailures:  []error{errFirstBranch, errSecondBranch},
			expectedFailures:  []error{errSecondBranch},
		},
		{
			name:              "same_position_failures_accumulate",
			recordedPositions: []int{4, 4},
			recordedFailures:  []error{errFirstBranch, errSecondBranch},
			expectedFailures:  []error{errFirstBranch, errSecondBranch},
		},
		{
			name:              "earlier_failure_is_ignored",
			recordedPositions: []int{4, 0, 4},
			recordedFailures:  []error{errFirstBranch, errSecondBranch, errThirdBranch},
			expectedFailures:  []error{errFirstBranch, errThirdBranch},
		},
		{
			name:              "failure_at_start_is_recorded",
			recordedPositions: []int{0},
			recordedFailures:  []error{errFirstBranch},
			expectedFailures:  []error{errFirstBranch},
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(subTest *testing.T) {
			accumulator := accumulate.NewBestErrors[offsetPosition]()
			for recordIndex, recordedFailure := range testCase.recordedFailures {
				accumulator.Add(offsetPosition(testCase.recordedPositions[recordIndex]), recordedFailure)
			}

			combinedError := accumulator.Finish()
			require.Equal(subTest, testCase.expectedFailures, multierr.Errors(combinedError))
		})
	}
}

func TestDiscardReportsNoFailure(testInstance *testing.T) {
	accumulator := accumulate.NewDiscard[offsetPosition]()

	accumulator.Add(offsetPosition(0), errFirstBranch)

	require.NoError(testInstance, accumulator.Finish())
}

func TestEmptyAccumulatorsFinishWithoutError(testInstance *testing.T) {
	require.NoError(testInstance, accumulate.NewLastError[offsetPosition]().Finish())
	require.NoError(testInstance, accumulate.NewAllErrors[offsetPosition]().Finish())
	require.NoError(testInstance, accumulate.NewBestErrors[offsetPosition]().Finish())
	require.NoError(testInstance, accumulate.NewDiscard[offsetPosition]().Finish())
}
