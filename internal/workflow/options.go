package workflow

import (
	"errors"
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

const (
	decodeStepOptionsErrorTemplateConstant = "failed to decode step options: %w"
	commandRunnerRepositoryConstant        = "command-runner"
	toolchainInstallerRepositoryConstant   = "toolchain-installer"
	missingCommandOptionMessageConstant    = "command-runner action requires a command option"
	missingToolchainOptionMessageConstant  = "toolchain-installer action requires a toolchain option"
)

// CommandOptions are the options recognized by command-runner actions.
type CommandOptions struct {
	Command string `mapstructure:"command"`
	Args    string `mapstructure:"args"`
}

// ToolchainOptions are the options recognized by toolchain-installer actions.
type ToolchainOptions struct {
	Toolchain string `mapstructure:"toolchain"`
	Override  bool   `mapstructure:"override"`
}

// DecodeStepOptions decodes a step's with mapping into the provided typed
// options structure, tolerating the loose scalar typing YAML produces.
func DecodeStepOptions(step Step, target any) error {
	decoderConfiguration := &mapstructure.DecoderConfig{
		Result:           target,
		WeaklyTypedInput: true,
	}

	decoder, decoderCreationError := mapstructure.NewDecoder(decoderConfiguration)
	if decoderCreationError != nil {
		return fmt.Errorf(decodeStepOptionsErrorTemplateConstant, decoderCreationError)
	}

	if decodeError := decoder.Decode(step.With); decodeError != nil {
		return fmt.Errorf(decodeStepOptionsErrorTemplateConstant, decodeError)
	}

	return nil
}

// validateStepOptions checks the typed options of recognized action families.
// Actions outside the recognized families accept arbitrary options.
func validateStepOptions(reference ActionReference, step Step) error {
	switch reference.Repository {
	case commandRunnerRepositoryConstant:
		var commandOptions CommandOptions
		if decodeError := DecodeStepOptions(step, &commandOptions); decodeError != nil {
			return decodeError
		}
		if len(commandOptions.Command) == 0 {
			return errors.New(missingCommandOptionMessageConstant)
		}
	case toolchainInstallerRepositoryConstant:
		var toolchainOptions ToolchainOptions
		if decodeError := DecodeStepOptions(step, &toolchainOptions); decodeError != nil {
			return decodeError
		}
		if len(toolchainOptions.Toolchain) == 0 {
			return errors.New(missingToolchainOptionMessageConstant)
		}
	}

	return nil
}
