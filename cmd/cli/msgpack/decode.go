package msgpack

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/parsekit/parsekit/internal/msgpack"
	"github.com/parsekit/parsekit/internal/utils"
)

const (
	decodeCommandUseConstant         = "decode [file]"
	decodeCommandShortDescription    = "Decode a MessagePack file element by element"
	decodeCommandLongDescription     = "decode reads a MessagePack file and prints every element in stream order, reporting the byte offset where decoding stops on malformed input."
	inputPathRequiredMessageConstant = "input file path required; provide a positional argument"
	inputReadErrorTemplateConstant   = "unable to read input file: %w"
	decodeFailureTemplateConstant    = "decoding failed at offset %d: %w"
	elementLineTemplateConstant      = "%6d  %s\n"
	decodeLogMessageConstant         = "msgpack stream decoded"
	logFieldInputPathConstant        = "input_path"
	logFieldElementCountConstant     = "element_count"
	logFieldConsumedBytesConstant    = "consumed_bytes"
)

func (builder *CommandBuilder) buildDecodeCommand() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   decodeCommandUseConstant,
		Short: decodeCommandShortDescription,
		Long:  decodeCommandLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE:  builder.runDecode,
	}

	return command, nil
}

func (builder *CommandBuilder) runDecode(command *cobra.Command, arguments []string) error {
	inputPath := ""
	if len(arguments) > 0 {
		inputPath = strings.TrimSpace(arguments[0])
	}
	if len(inputPath) == 0 {
		if helpError := displayCommandHelp(command); helpError != nil {
			return helpError
		}
		return errors.New(inputPathRequiredMessageConstant)
	}

	inputData, readError := os.ReadFile(inputPath)
	if readError != nil {
		return fmt.Errorf(inputReadErrorTemplateConstant, readError)
	}

	outputWriter := utils.NewFlushingWriter(command.OutOrStdout())
	decoder := msgpack.NewDecoder(inputData)

	elementCount := 0
	for {
		elementOffset := decoder.Offset()
		element, decodeError := decoder.Next()
		if decodeError != nil {
			if errors.Is(decodeError, msgpack.ErrNoNextElement) && decoder.Exhausted() {
				break
			}
			return fmt.Errorf(decodeFailureTemplateConstant, elementOffset, decodeError)
		}

		fmt.Fprintf(outputWriter, elementLineTemplateConstant, elementOffset, element.String())
		elementCount++
	}

	logger := resolveLogger(builder.LoggerProvider)
	logger.Info(
		decodeLogMessageConstant,
		zap.String(logFieldInputPathConstant, inputPath),
		zap.Int(logFieldElementCountConstant, elementCount),
		zap.Int(logFieldConsumedBytesConstant, decoder.Offset()),
	)

	return nil
}
