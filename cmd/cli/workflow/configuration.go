package workflow

import "strings"

const (
	defaultOutputFormatConstant      = outputFormatTextConstant
	outputFormatConfigurationKeyPart = ".output_format"
	outputFormatTextConstant         = "text"
	outputFormatJSONConstant         = "json"
)

// CommandConfiguration captures configuration values for the workflow
// commands.
type CommandConfiguration struct {
	OutputFormat string `mapstructure:"output_format"`
}

// DefaultCommandConfiguration provides default workflow command settings.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		OutputFormat: defaultOutputFormatConstant,
	}
}

// DefaultConfigurationValues exposes the workflow defaults keyed under the
// provided configuration prefix.
func DefaultConfigurationValues(configurationKey string) map[string]any {
	return map[string]any{
		configurationKey + outputFormatConfigurationKeyPart: defaultOutputFormatConstant,
	}
}

// Sanitize normalizes configuration values.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	sanitized := configuration
	sanitized.OutputFormat = strings.ToLower(strings.TrimSpace(configuration.OutputFormat))
	if len(sanitized.OutputFormat) == 0 {
		sanitized.OutputFormat = defaultOutputFormatConstant
	}
	return sanitized
}
