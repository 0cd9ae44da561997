// Package svgo normalizes in-memory SVG trees against a schema of known
// elements and attributes. It prunes content no known parent may hold and
// strips attributes that are unknown, equal to their default, or repeat the
// value already inherited from an ancestor.
package svgo

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/NestorMonroy/svgo/internal/collections"
	"github.com/NestorMonroy/svgo/internal/schema"
)

// Schema wraps a compiled knowledge base. It is immutable and safe to share
// between goroutines.
type Schema struct {
	compiled *schema.Schema
}

// ElementInfo describes one compiled element definition.
type ElementInfo struct {
	Name            string            `yaml:"name"`
	Attributes      []string          `yaml:"attributes,omitempty"`
	HasContentModel bool              `yaml:"hasContentModel"`
	Content         []string          `yaml:"content,omitempty"`
	Defaults        map[string]string `yaml:"defaults,omitempty"`
}

var defaultSchema = sync.OnceValue(func() *Schema {
	base, err := collections.Default()
	if err != nil {
		panic(err)
	}
	return &Schema{compiled: schema.MustCompile(base)}
})

// DefaultSchema returns the SVG 1.1 schema, compiled once per process.
func DefaultSchema() *Schema {
	return defaultSchema()
}

// ParseSchema compiles a knowledge base read from YAML.
func ParseSchema(r io.Reader) (*Schema, error) {
	base, err := collections.Decode(r)
	if err != nil {
		return nil, err
	}
	compiled, err := schema.Compile(base)
	if err != nil {
		return nil, err
	}
	return &Schema{compiled: compiled}, nil
}

// LoadSchema compiles a knowledge base from the given filesystem and location.
func LoadSchema(fsys fs.FS, location string) (s *Schema, err error) {
	if fsys == nil {
		return nil, fmt.Errorf("load schema %s: nil fs", location)
	}
	f, err := fsys.Open(location)
	if err != nil {
		return nil, fmt.Errorf("load schema %s: %w", location, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close schema %s: %w", location, closeErr)
		}
	}()

	s, err = ParseSchema(f)
	if err != nil {
		return nil, fmt.Errorf("load schema %s: %w", location, err)
	}
	return s, nil
}

// LoadSchemaFile compiles a knowledge base from a file path.
func LoadSchemaFile(path string) (*Schema, error) {
	return LoadSchema(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

// Elements returns the known element names in sorted order.
func (s *Schema) Elements() []string {
	if s == nil {
		return nil
	}
	return s.compiled.ElementNames()
}

// Element returns the compiled definition of a known element.
func (s *Schema) Element(name string) (ElementInfo, bool) {
	if s == nil {
		return ElementInfo{}, false
	}
	elem, ok := s.compiled.Element(name)
	if !ok {
		return ElementInfo{}, false
	}
	return ElementInfo{
		Name:            elem.Name(),
		Attributes:      elem.Attributes(),
		HasContentModel: elem.HasContentModel(),
		Content:         elem.Content(),
		Defaults:        elem.Defaults(),
	}, true
}
