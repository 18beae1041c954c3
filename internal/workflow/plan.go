package workflow

import (
	"errors"
	"fmt"
	"sort"
)

const (
	planUnknownNeedTemplateConstant = "job %s needs undefined job %s"
	planCycleMessageConstant        = "workflow needs constraints form a cycle"
)

// ErrDependencyCycle reports that the declared needs constraints cannot be
// ordered.
var ErrDependencyCycle = errors.New(planCycleMessageConstant)

// Plan is the execution order the definition asks the hosting platform for:
// stages of jobs where every job's needs completed in an earlier stage.
type Plan struct {
	Stages []Stage
}

// Stage groups the jobs that become eligible at the same point in the order.
type Stage struct {
	Jobs []PlannedJob
}

// PlannedJob is a job together with its matrix-expanded run instances.
type PlannedJob struct {
	JobName   string
	Instances []MatrixCombination
}

// InstanceCount reports the total number of job instances across all stages.
func (plan *Plan) InstanceCount() int {
	totalInstances := 0
	for _, stage := range plan.Stages {
		for _, plannedJob := range stage.Jobs {
			totalInstances += len(plannedJob.Instances)
		}
	}
	return totalInstances
}

// BuildPlan orders the definition's jobs by their needs constraints using
// staged topological sorting. Jobs inside a stage are ordered by name. A
// needs cycle yields ErrDependencyCycle.
func BuildPlan(definition *Definition) (*Plan, error) {
	remainingNeeds := make(map[string]map[string]struct{}, len(definition.Jobs))
	for jobName, job := range definition.Jobs {
		needsSet := make(map[string]struct{}, len(job.Needs))
		for _, neededJobName := range job.Needs {
			if _, needExists := definition.Jobs[neededJobName]; !needExists {
				return nil, fmt.Errorf(planUnknownNeedTemplateConstant, jobName, neededJobName)
			}
			needsSet[neededJobName] = struct{}{}
		}
		remainingNeeds[jobName] = needsSet
	}

	plan := &Plan{}
	scheduledJobs := make(map[string]struct{}, len(definition.Jobs))

	for len(scheduledJobs) < len(definition.Jobs) {
		readyJobNames := make([]string, 0, len(definition.Jobs))
		for jobName, needsSet := range remainingNeeds {
			if _, alreadyScheduled := scheduledJobs[jobName]; alreadyScheduled {
				continue
			}
			if len(needsSet) == 0 {
				readyJobNames = append(readyJobNames, jobName)
			}
		}

		if len(readyJobNames) == 0 {
			return nil, ErrDependencyCycle
		}
		sort.Strings(readyJobNames)

		stage := Stage{Jobs: make([]PlannedJob, 0, len(readyJobNames))}
		for _, jobName := range readyJobNames {
			stage.Jobs = append(stage.Jobs, PlannedJob{
				JobName:   jobName,
				Instances: ExpandMatrix(definition.Jobs[jobName]),
			})
			scheduledJobs[jobName] = struct{}{}
		}
		plan.Stages = append(plan.Stages, stage)

		for _, needsSet := range remainingNeeds {
			for _, scheduledJobName := range readyJobNames {
				delete(needsSet, scheduledJobName)
			}
		}
	}

	return plan, nil
}
