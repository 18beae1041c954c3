package workflow

import (
	"fmt"
	"sort"
	"strings"
)

const (
	matrixLabelPairTemplateConstant = "%s=%s"
	matrixLabelSeparatorConstant    = ", "
)

// MatrixCombination is one assignment of a value to every matrix axis,
// identifying a single run of a matrixed job.
type MatrixCombination struct {
	Values map[string]string
}

// Label renders the combination as "axis=value" pairs in axis order.
func (combination MatrixCombination) Label() string {
	axisNames := make([]string, 0, len(combination.Values))
	for axisName := range combination.Values {
		axisNames = append(axisNames, axisName)
	}
	sort.Strings(axisNames)

	renderedPairs := make([]string, 0, len(axisNames))
	for _, axisName := range axisNames {
		renderedPairs = append(renderedPairs, fmt.Sprintf(matrixLabelPairTemplateConstant, axisName, combination.Values[axisName]))
	}
	return strings.Join(renderedPairs, matrixLabelSeparatorConstant)
}

// ExpandMatrix computes the cartesian product of the job's matrix axes. Axes
// expand in lexicographic name order and values in declared order, so the
// resulting combinations are deterministic. A job without a matrix expands to
// a single empty combination.
func ExpandMatrix(job Job) []MatrixCombination {
	if job.Strategy == nil || len(job.Strategy.Matrix) == 0 {
		return []MatrixCombination{{Values: map[string]string{}}}
	}

	axisNames := sortedAxisNames(job.Strategy.Matrix)

	combinations := []MatrixCombination{{Values: map[string]string{}}}
	for _, axisName := range axisNames {
		axisValues := job.Strategy.Matrix[axisName]
		expanded := make([]MatrixCombination, 0, len(combinations)*len(axisValues))
		for _, partialCombination := range combinations {
			for _, axisValue := range axisValues {
				extendedValues := make(map[string]string, len(partialCombination.Values)+1)
				for existingAxis, existingValue := range partialCombination.Values {
					extendedValues[existingAxis] = existingValue
				}
				extendedValues[axisName] = string(axisValue)
				expanded = append(expanded, MatrixCombination{Values: extendedValues})
			}
		}
		combinations = expanded
	}

	return combinations
}

func sortedAxisNames(matrix map[string][]MatrixValue) []string {
	axisNames := make([]string, 0, len(matrix))
	for axisName := range matrix {
		axisNames = append(axisNames, axisName)
	}
	sort.Strings(axisNames)
	return axisNames
}
