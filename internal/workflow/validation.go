package workflow

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

const (
	validationNoJobsMessageConstant              = "workflow must define at least one job"
	validationNoTriggerMessageConstant           = "workflow must declare at least one trigger event"
	validationMissingRunsOnTemplateConstant      = "job %s must declare a target execution environment (runs-on)"
	validationNoStepsTemplateConstant            = "job %s must define at least one step"
	validationStepActionConflictTemplateConstant = "job %s step %d must set exactly one of uses and run"
	validationStepOptionsWithoutUsesTemplate     = "job %s step %d sets with options but invokes no action"
	validationStepActionInvalidTemplateConstant  = "job %s step %d action reference invalid: %w"
	validationStepOptionsInvalidTemplateConstant = "job %s step %d action options invalid: %w"
	validationUnknownNeedTemplateConstant        = "job %s needs undefined job %s"
	validationSelfNeedTemplateConstant           = "job %s cannot need itself"
	validationEmptyMatrixAxisTemplateConstant    = "job %s matrix axis %s must list at least one value"
)

// Validate checks the definition against the schema the hosting platform
// recognizes, reporting every violation it finds.
func (definition *Definition) Validate() error {
	var validationFailures error

	if len(definition.Jobs) == 0 {
		validationFailures = multierr.Append(validationFailures, errors.New(validationNoJobsMessageConstant))
	}
	if len(definition.On.Events) == 0 {
		validationFailures = multierr.Append(validationFailures, errors.New(validationNoTriggerMessageConstant))
	}

	for _, jobName := range definition.JobNames() {
		job := definition.Jobs[jobName]
		validationFailures = multierr.Append(validationFailures, definition.validateJob(jobName, job))
	}

	if _, planError := BuildPlan(definition); planError != nil && len(definition.Jobs) > 0 {
		if errors.Is(planError, ErrDependencyCycle) {
			validationFailures = multierr.Append(validationFailures, planError)
		}
	}

	return validationFailures
}

func (definition *Definition) validateJob(jobName string, job Job) error {
	var jobFailures error

	if len(job.RunsOn) == 0 {
		jobFailures = multierr.Append(jobFailures, fmt.Errorf(validationMissingRunsOnTemplateConstant, jobName))
	}
	if len(job.Steps) == 0 {
		jobFailures = multierr.Append(jobFailures, fmt.Errorf(validationNoStepsTemplateConstant, jobName))
	}

	for stepIndex, step := range job.Steps {
		jobFailures = multierr.Append(jobFailures, validateStep(jobName, stepIndex, step))
	}

	for _, neededJobName := range job.Needs {
		if neededJobName == jobName {
			jobFailures = multierr.Append(jobFailures, fmt.Errorf(validationSelfNeedTemplateConstant, jobName))
			continue
		}
		if _, needExists := definition.Jobs[neededJobName]; !needExists {
			jobFailures = multierr.Append(jobFailures, fmt.Errorf(validationUnknownNeedTemplateConstant, jobName, neededJobName))
		}
	}

	if job.Strategy != nil {
		for _, axisName := range sortedAxisNames(job.Strategy.Matrix) {
			if len(job.Strategy.Matrix[axisName]) == 0 {
				jobFailures = multierr.Append(jobFailures, fmt.Errorf(validationEmptyMatrixAxisTemplateConstant, jobName, axisName))
			}
		}
	}

	return jobFailures
}

func validateStep(jobName string, stepIndex int, step Step) error {
	usesDeclared := len(step.Uses) > 0
	runDeclared := len(step.Run) > 0

	if usesDeclared == runDeclared {
		return fmt.Errorf(validationStepActionConflictTemplateConstant, jobName, stepIndex)
	}

	if !usesDeclared {
		if len(step.With) > 0 {
			return fmt.Errorf(validationStepOptionsWithoutUsesTemplate, jobName, stepIndex)
		}
		return nil
	}

	actionReference, referenceError := ParseActionReference(step.Uses)
	if referenceError != nil {
		return fmt.Errorf(validationStepActionInvalidTemplateConstant, jobName, stepIndex, referenceError)
	}

	if optionsError := validateStepOptions(actionReference, step); optionsError != nil {
		return fmt.Errorf(validationStepOptionsInvalidTemplateConstant, jobName, stepIndex, optionsError)
	}

	return nil
}
