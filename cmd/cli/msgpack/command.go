// Package msgpack wires the MessagePack inspection commands into the CLI.
package msgpack

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	msgpackCommandUseConstant              = "msgpack"
	msgpackCommandShortDescriptionConstant = "Inspect MessagePack streams"
	msgpackCommandLongDescriptionConstant  = "msgpack decodes MessagePack data element by element and renders each decoded element for inspection."
)

// LoggerProvider yields a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the msgpack command group.
type CommandBuilder struct {
	LoggerProvider LoggerProvider
}

// Build constructs the msgpack command with its decode subcommand.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   msgpackCommandUseConstant,
		Short: msgpackCommandShortDescriptionConstant,
		Long:  msgpackCommandLongDescriptionConstant,
		RunE: func(command *cobra.Command, arguments []string) error {
			return displayCommandHelp(command)
		},
	}

	decodeCommand, decodeBuildError := builder.buildDecodeCommand()
	if decodeBuildError != nil {
		return nil, decodeBuildError
	}
	command.AddCommand(decodeCommand)

	return command, nil
}

func resolveLogger(provider LoggerProvider) *zap.Logger {
	if provider == nil {
		return zap.NewNop()
	}
	logger := provider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func displayCommandHelp(command *cobra.Command) error {
	if command == nil {
		return nil
	}
	return command.Help()
}
