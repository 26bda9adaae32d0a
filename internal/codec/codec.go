package codec

import (
	"io"

	"ospfwatch/internal/domain"
)

// Importer reads an expected parameter tree from an external format,
// so a learned snapshot can be reviewed, hand-edited and loaded back.
type Importer interface {
	Parse(r io.Reader) (*domain.FactTree, error)
	Format() string
}

// Exporter writes a parameter tree to an external format.
type Exporter interface {
	Export(tree *domain.FactTree, w io.Writer) error
	Format() string
}

// ByFormat returns the codec for a format identifier ("json", "yaml").
func ByFormat(format string) (interface {
	Importer
	Exporter
}, bool) {
	switch format {
	case "json":
		return NewJSONCodec(), true
	case "yaml", "yml":
		return NewYAMLCodec(), true
	}
	return nil, false
}
