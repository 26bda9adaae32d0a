package codec

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"ospfwatch/internal/domain"
)

// YAMLCodec handles YAML import/export of parameter trees.
type YAMLCodec struct{}

// NewYAMLCodec creates a new YAML codec
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{}
}

// Format returns the codec format identifier
func (c *YAMLCodec) Format() string {
	return "yaml"
}

// Parse imports a parameter tree from YAML, preserving key order.
func (c *YAMLCodec) Parse(r io.Reader) (*domain.FactTree, error) {
	tree := domain.NewFactTree()
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(tree); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return tree, nil
}

// Export exports a parameter tree to YAML
func (c *YAMLCodec) Export(tree *domain.FactTree, w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	defer encoder.Close()

	if err := encoder.Encode(tree); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return nil
}
