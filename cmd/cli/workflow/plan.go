package workflow

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/parsekit/parsekit/internal/utils"
	"github.com/parsekit/parsekit/internal/utils/flags"
	"github.com/parsekit/parsekit/internal/workflow"
)

const (
	planCommandUseConstant            = "plan [definition]"
	planCommandShortDescription       = "Render the staged execution plan of a workflow definition"
	planCommandLongDescription        = "plan orders a workflow definition's jobs by their needs constraints, expands every job matrix, and renders the resulting stages."
	formatFlagNameConstant            = "format"
	formatFlagDescriptionConstant     = "Output format for the rendered plan"
	planBuildErrorTemplateConstant    = "unable to build execution plan: %w"
	planEncodeErrorTemplateConstant   = "unable to encode execution plan: %w"
	unsupportedFormatTemplateConstant = "unsupported output format %q (supported: %s)"
	supportedFormatSeparatorConstant  = ", "
	planStageHeadingTemplateConstant  = "stage %d\n"
	planJobLineTemplateConstant       = "  %s (%d instances)\n"
	planInstanceLineTemplateConstant  = "    %s\n"
	planTotalLineTemplateConstant     = "total: %d instances across %d stages\n"
	planLogMessageConstant            = "workflow execution plan rendered"
	logFieldStageCountConstant        = "stage_count"
	logFieldInstanceCountConstant     = "instance_count"
	logFieldOutputFormatConstant      = "output_format"
	jsonIndentationConstant           = "  "
)

type planDocument struct {
	Stages        []planStageDocument `json:"stages"`
	InstanceCount int                 `json:"instance_count"`
}

type planStageDocument struct {
	Jobs []planJobDocument `json:"jobs"`
}

type planJobDocument struct {
	Name      string              `json:"name"`
	Instances []map[string]string `json:"instances"`
}

func (builder *CommandBuilder) buildPlanCommand() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   planCommandUseConstant,
		Short: planCommandShortDescription,
		Long:  planCommandLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE:  builder.runPlan,
	}

	formatUsage := flags.FormatChoiceUsage(
		defaultOutputFormatConstant,
		supportedOutputFormats(),
		formatFlagDescriptionConstant,
	)
	command.Flags().String(formatFlagNameConstant, "", formatUsage)

	return command, nil
}

func (builder *CommandBuilder) runPlan(command *cobra.Command, arguments []string) error {
	definitionPath := definitionPathFromArguments(arguments)
	if len(definitionPath) == 0 {
		if helpError := displayCommandHelp(command); helpError != nil {
			return helpError
		}
		return errors.New(definitionPathRequiredMessageConstant)
	}

	outputFormat, formatError := builder.resolveOutputFormat(command)
	if formatError != nil {
		return formatError
	}

	definition, loadError := workflow.Load(definitionPath)
	if loadError != nil {
		return fmt.Errorf(definitionLoadErrorTemplateConstant, loadError)
	}

	if validationError := definition.Validate(); validationError != nil {
		return errors.New(validationFailedMessageConstant)
	}

	executionPlan, planError := workflow.BuildPlan(definition)
	if planError != nil {
		return fmt.Errorf(planBuildErrorTemplateConstant, planError)
	}

	outputWriter := utils.NewFlushingWriter(command.OutOrStdout())

	var renderError error
	switch outputFormat {
	case outputFormatJSONConstant:
		renderError = renderPlanJSON(outputWriter, executionPlan)
	default:
		renderError = renderPlanText(outputWriter, executionPlan)
	}
	if renderError != nil {
		return renderError
	}

	logger := resolveLogger(builder.LoggerProvider)
	logger.Info(
		planLogMessageConstant,
		zap.String(logFieldDefinitionPathConstant, definitionPath),
		zap.String(logFieldOutputFormatConstant, outputFormat),
		zap.Int(logFieldStageCountConstant, len(executionPlan.Stages)),
		zap.Int(logFieldInstanceCountConstant, executionPlan.InstanceCount()),
	)

	return nil
}

func (builder *CommandBuilder) resolveOutputFormat(command *cobra.Command) (string, error) {
	outputFormat := builder.resolveConfiguration().OutputFormat
	if command != nil && command.Flags().Changed(formatFlagNameConstant) {
		flagValue, _ := command.Flags().GetString(formatFlagNameConstant)
		outputFormat = strings.ToLower(strings.TrimSpace(flagValue))
	}

	for _, supportedFormat := range supportedOutputFormats() {
		if outputFormat == supportedFormat {
			return outputFormat, nil
		}
	}

	supportedList := strings.Join(supportedOutputFormats(), supportedFormatSeparatorConstant)
	return "", fmt.Errorf(unsupportedFormatTemplateConstant, outputFormat, supportedList)
}

func supportedOutputFormats() []string {
	return []string{outputFormatTextConstant, outputFormatJSONConstant}
}

func renderPlanText(outputWriter io.Writer, executionPlan *workflow.Plan) error {
	for stageIndex, stage := range executionPlan.Stages {
		if _, writeError := fmt.Fprintf(outputWriter, planStageHeadingTemplateConstant, stageIndex+1); writeError != nil {
			return writeError
		}
		for _, plannedJob := range stage.Jobs {
			if _, writeError := fmt.Fprintf(outputWriter, planJobLineTemplateConstant, plannedJob.JobName, len(plannedJob.Instances)); writeError != nil {
				return writeError
			}
			for _, instance := range plannedJob.Instances {
				instanceLabel := instance.Label()
				if len(instanceLabel) == 0 {
					continue
				}
				if _, writeError := fmt.Fprintf(outputWriter, planInstanceLineTemplateConstant, instanceLabel); writeError != nil {
					return writeError
				}
			}
		}
	}

	_, writeError := fmt.Fprintf(outputWriter, planTotalLineTemplateConstant, executionPlan.InstanceCount(), len(executionPlan.Stages))
	return writeError
}

func renderPlanJSON(outputWriter io.Writer, executionPlan *workflow.Plan) error {
	document := planDocument{
		Stages:        make([]planStageDocument, 0, len(executionPlan.Stages)),
		InstanceCount: executionPlan.InstanceCount(),
	}

	for _, stage := range executionPlan.Stages {
		stageDocument := planStageDocument{Jobs: make([]planJobDocument, 0, len(stage.Jobs))}
		for _, plannedJob := range stage.Jobs {
			jobDocument := planJobDocument{
				Name:      plannedJob.JobName,
				Instances: make([]map[string]string, 0, len(plannedJob.Instances)),
			}
			for _, instance := range plannedJob.Instances {
				jobDocument.Instances = append(jobDocument.Instances, instance.Values)
			}
			stageDocument.Jobs = append(stageDocument.Jobs, jobDocument)
		}
		document.Stages = append(document.Stages, stageDocument)
	}

	encoder := json.NewEncoder(outputWriter)
	encoder.SetIndent("", jsonIndentationConstant)
	if encodeError := encoder.Encode(document); encodeError != nil {
		return fmt.Errorf(planEncodeErrorTemplateConstant, encodeError)
	}

	return nil
}
