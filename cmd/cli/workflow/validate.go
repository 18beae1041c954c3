package workflow

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/parsekit/parsekit/internal/utils"
	"github.com/parsekit/parsekit/internal/workflow"
)

const (
	validateCommandUseConstant             = "validate [definition]"
	validateCommandShortDescription        = "Validate a workflow definition file"
	validateCommandLongDescription         = "validate parses a workflow definition file and reports every schema violation it contains."
	definitionPathRequiredMessageConstant  = "workflow definition path required; provide a positional argument"
	definitionLoadErrorTemplateConstant    = "unable to load workflow definition: %w"
	validationFailedMessageConstant        = "workflow definition is invalid"
	validationFailureLineTemplateConstant  = "invalid: %s\n"
	validationSucceededTemplateConstant    = "valid: %s\n"
	validateLogMessageConstant             = "workflow definition validated"
	logFieldDefinitionPathConstant         = "definition_path"
	logFieldJobCountConstant               = "job_count"
	logFieldValidationFailureCountConstant = "failure_count"
	validateLogFailuresMessageConstant     = "workflow definition rejected"
)

func (builder *CommandBuilder) buildValidateCommand() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   validateCommandUseConstant,
		Short: validateCommandShortDescription,
		Long:  validateCommandLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE:  builder.runValidate,
	}

	return command, nil
}

func (builder *CommandBuilder) runValidate(command *cobra.Command, arguments []string) error {
	definitionPath := definitionPathFromArguments(arguments)
	if len(definitionPath) == 0 {
		if helpError := displayCommandHelp(command); helpError != nil {
			return helpError
		}
		return errors.New(definitionPathRequiredMessageConstant)
	}

	definition, loadError := workflow.Load(definitionPath)
	if loadError != nil {
		return fmt.Errorf(definitionLoadErrorTemplateConstant, loadError)
	}

	logger := resolveLogger(builder.LoggerProvider)
	outputWriter := utils.NewFlushingWriter(command.OutOrStdout())
	errorWriter := utils.NewFlushingWriter(command.ErrOrStderr())

	if validationError := definition.Validate(); validationError != nil {
		validationFailures := multierr.Errors(validationError)
		for _, validationFailure := range validationFailures {
			fmt.Fprintf(errorWriter, validationFailureLineTemplateConstant, validationFailure.Error())
		}

		logger.Warn(
			validateLogFailuresMessageConstant,
			zap.String(logFieldDefinitionPathConstant, definitionPath),
			zap.Int(logFieldValidationFailureCountConstant, len(validationFailures)),
		)

		return errors.New(validationFailedMessageConstant)
	}

	logger.Info(
		validateLogMessageConstant,
		zap.String(logFieldDefinitionPathConstant, definitionPath),
		zap.Int(logFieldJobCountConstant, len(definition.Jobs)),
	)

	fmt.Fprintf(outputWriter, validationSucceededTemplateConstant, definitionPath)

	return nil
}

func definitionPathFromArguments(arguments []string) string {
	if len(arguments) == 0 {
		return ""
	}
	return strings.TrimSpace(arguments[0])
}
