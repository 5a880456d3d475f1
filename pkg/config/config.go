// Package config provides configuration and schema loading for rowforge
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ajitpratap0/rowforge/pkg/types"
)

// Load loads a configuration from a YAML file, substituting ${VAR}
// references with environment variable values first.
func Load(filePath string, config interface{}) error {
	data, err := os.ReadFile(filePath) //nolint:gosec // G304: File path is controlled by caller
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	content := substituteEnvVars(string(data))

	if err := yaml.Unmarshal([]byte(content), config); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	return nil
}

// Save saves a configuration to a YAML file
func Save(filePath string, config interface{}) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil { //nolint:gosec
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values
func substituteEnvVars(content string) string {
	for {
		start := strings.Index(content, "${")
		if start == -1 {
			break
		}
		end := strings.Index(content[start:], "}")
		if end == -1 {
			break
		}
		end += start

		varName := content[start+2 : end]
		envValue := os.Getenv(varName)
		content = content[:start] + envValue + content[end+1:]
	}
	return content
}

// Schema describes the row schema of an encode job as named, typed fields.
type Schema struct {
	Name   string  `yaml:"name"`
	Fields []Field `yaml:"fields"`
}

// Field is one schema column: a name and a type string accepted by
// types.Parse (e.g. "int64", "array<int32>", "map<string,array<int8>>").
type Field struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// RowType converts the schema into a row type descriptor.
func (s *Schema) RowType() (*types.Type, error) {
	if len(s.Fields) == 0 {
		return nil, fmt.Errorf("schema %q has no fields", s.Name)
	}
	names := make([]string, len(s.Fields))
	fields := make([]*types.Type, len(s.Fields))
	for i, f := range s.Fields {
		t, err := types.Parse(f.Type)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Name, err)
		}
		names[i] = f.Name
		fields[i] = t
	}
	return types.NamedRow(names, fields), nil
}

// LoadSchema loads a schema file and resolves its row type.
func LoadSchema(filePath string) (*Schema, *types.Type, error) {
	var s Schema
	if err := Load(filePath, &s); err != nil {
		return nil, nil, err
	}
	t, err := s.RowType()
	if err != nil {
		return nil, nil, err
	}
	return &s, t, nil
}
