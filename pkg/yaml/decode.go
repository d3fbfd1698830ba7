package yaml

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// UnmarshalYAML parses YAML bytes into the provided object, rejecting keys the
// target struct does not declare.
func UnmarshalYAML(yamlBytes []byte, obj interface{}) error {
	if err := yaml.UnmarshalWithOptions(yamlBytes, obj, yaml.DisallowUnknownField()); err != nil {
		return fmt.Errorf("error parsing YAML: %w", err)
	}
	return nil
}

// LoadFile reads path and decodes it with UnmarshalYAML.
func LoadFile(path string, obj interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := UnmarshalYAML(data, obj); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
