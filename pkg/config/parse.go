package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseStudyYAML parses a Study from YAML bytes and validates it.
// This is used where the study is provided as payload (not via filesystem).
func ParseStudyYAML(data []byte) (*Study, error) {
	var study Study
	if err := yaml.Unmarshal(data, &study); err != nil {
		return nil, fmt.Errorf("failed to parse study yaml: %w", err)
	}

	if err := validateStudy(&study); err != nil {
		return nil, fmt.Errorf("invalid study: %w", err)
	}

	return &study, nil
}

// ParseStudyYAMLString parses a Study from a YAML string and validates it.
func ParseStudyYAMLString(yamlText string) (*Study, error) {
	return ParseStudyYAML([]byte(yamlText))
}
