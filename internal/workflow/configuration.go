package workflow

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

const (
	definitionReadErrorTemplateConstant      = "failed to read workflow definition: %w"
	definitionParseErrorTemplateConstant     = "failed to parse workflow definition: %w"
	triggerUnexpectedNodeMessageConstant     = "workflow trigger must be an event name, a sequence of event names, or a mapping"
	triggerEmptyEventMessageConstant         = "workflow trigger event names must be non-empty"
	stringListUnexpectedNodeMessageConstant  = "expected a string or a sequence of strings"
	matrixValueUnexpectedNodeMessageConstant = "matrix axis values must be scalars"
)

// Definition describes a declarative CI workflow: when it runs and which jobs
// it asks the hosting platform to execute.
type Definition struct {
	Name string         `yaml:"name"`
	On   Trigger        `yaml:"on"`
	Jobs map[string]Job `yaml:"jobs"`
}

// Trigger captures the events that start the workflow. The YAML form may be a
// single event name, a sequence of event names, or a mapping from event names
// to filter configurations.
type Trigger struct {
	Events []string
}

// UnmarshalYAML accepts the scalar, sequence, and mapping trigger forms.
func (trigger *Trigger) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var eventName string
		if decodeError := node.Decode(&eventName); decodeError != nil {
			return decodeError
		}
		trigger.Events = []string{eventName}
	case yaml.SequenceNode:
		var eventNames []string
		if decodeError := node.Decode(&eventNames); decodeError != nil {
			return decodeError
		}
		trigger.Events = eventNames
	case yaml.MappingNode:
		eventNames := make([]string, 0, len(node.Content)/2)
		for contentIndex := 0; contentIndex+1 < len(node.Content); contentIndex += 2 {
			eventNames = append(eventNames, node.Content[contentIndex].Value)
		}
		trigger.Events = eventNames
	default:
		return errors.New(triggerUnexpectedNodeMessageConstant)
	}

	for _, eventName := range trigger.Events {
		if len(eventName) == 0 {
			return errors.New(triggerEmptyEventMessageConstant)
		}
	}

	return nil
}

// Job is a named group of sequential steps executed in a declared
// environment, optionally repeated across a matrix of axis values.
type Job struct {
	Name     string     `yaml:"name"`
	RunsOn   string     `yaml:"runs-on"`
	Needs    StringList `yaml:"needs"`
	Strategy *Strategy  `yaml:"strategy"`
	Steps    []Step     `yaml:"steps"`
}

// Strategy declares the matrix of axis values a job is repeated across.
type Strategy struct {
	Matrix map[string][]MatrixValue `yaml:"matrix"`
}

// MatrixValue is a single scalar axis value, kept in its textual form.
type MatrixValue string

// UnmarshalYAML rejects non-scalar axis values.
func (value *MatrixValue) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return errors.New(matrixValueUnexpectedNodeMessageConstant)
	}
	*value = MatrixValue(node.Value)
	return nil
}

// Step is a single invocation of an external reusable action (uses) or an
// inline command (run), configured through an options mapping (with).
type Step struct {
	Name string         `yaml:"name"`
	Uses string         `yaml:"uses"`
	Run  string         `yaml:"run"`
	With map[string]any `yaml:"with"`
}

// StringList accepts either a single string or a sequence of strings.
type StringList []string

// UnmarshalYAML decodes the scalar and sequence forms.
func (list *StringList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var single string
		if decodeError := node.Decode(&single); decodeError != nil {
			return decodeError
		}
		*list = StringList{single}
	case yaml.SequenceNode:
		var values []string
		if decodeError := node.Decode(&values); decodeError != nil {
			return decodeError
		}
		*list = StringList(values)
	default:
		return errors.New(stringListUnexpectedNodeMessageConstant)
	}
	return nil
}

// Load reads and parses the workflow definition stored at the provided path.
func Load(definitionPath string) (*Definition, error) {
	definitionData, readError := os.ReadFile(definitionPath)
	if readError != nil {
		return nil, fmt.Errorf(definitionReadErrorTemplateConstant, readError)
	}
	return Parse(definitionData)
}

// Parse decodes a workflow definition from YAML data.
func Parse(definitionData []byte) (*Definition, error) {
	var definition Definition
	if parseError := yaml.Unmarshal(definitionData, &definition); parseError != nil {
		return nil, fmt.Errorf(definitionParseErrorTemplateConstant, parseError)
	}
	return &definition, nil
}

// JobNames returns the defined job names in lexicographic order so traversals
// stay deterministic.
func (definition *Definition) JobNames() []string {
	jobNames := make([]string, 0, len(definition.Jobs))
	for jobName := range definition.Jobs {
		jobNames = append(jobNames, jobName)
	}
	sort.Strings(jobNames)
	return jobNames
}
