package workflow

import (
	"github.com/spf13/cobra"
)

const (
	workflowCommandUseConstant              = "workflow"
	workflowCommandShortDescriptionConstant = "Inspect declarative CI workflow definitions"
	workflowCommandLongDescriptionConstant  = "workflow validates CI workflow definition files and renders the staged execution plan their needs constraints and matrices produce."
)

// CommandBuilder assembles the workflow command group.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider func() CommandConfiguration
}

// Build constructs the workflow command with its validate and plan
// subcommands.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   workflowCommandUseConstant,
		Short: workflowCommandShortDescriptionConstant,
		Long:  workflowCommandLongDescriptionConstant,
		RunE: func(command *cobra.Command, arguments []string) error {
			return displayCommandHelp(command)
		},
	}

	validateCommand, validateBuildError := builder.buildValidateCommand()
	if validateBuildError != nil {
		return nil, validateBuildError
	}
	command.AddCommand(validateCommand)

	planCommand, planBuildError := builder.buildPlanCommand()
	if planBuildError != nil {
		return nil, planBuildError
	}
	command.AddCommand(planCommand)

	return command, nil
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}

	provided := builder.ConfigurationProvider()
	return provided.Sanitize()
}
