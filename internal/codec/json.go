package codec

import (
	"encoding/json"
	"fmt"
	"io"

	"ospfwatch/internal/domain"
)

// JSONCodec handles JSON import/export of parameter trees.
type JSONCodec struct{}

// NewJSONCodec creates a new JSON codec
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{}
}

// Format returns the codec format identifier
func (c *JSONCodec) Format() string {
	return "json"
}

// Parse imports a parameter tree from JSON, preserving key order.
func (c *JSONCodec) Parse(r io.Reader) (*domain.FactTree, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read JSON: %w", err)
	}

	tree := domain.NewFactTree()
	if err := json.Unmarshal(data, tree); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	return tree, nil
}

// Export exports a parameter tree to JSON
func (c *JSONCodec) Export(tree *domain.FactTree, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(tree); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}
