// Package collections holds the static SVG knowledge base: element
// definitions, the attribute and content groups they reference, group
// defaults and the inheritance tables.
package collections

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

//go:embed collections.yaml
var embedded []byte

// Base is a knowledge base as written, before group references are expanded.
type Base struct {
	Elements                   map[string]ElementDef        `yaml:"elements"`
	AttrGroups                 map[string][]string          `yaml:"attrGroups"`
	ContentGroups              map[string][]string          `yaml:"contentGroups"`
	AttrGroupDefaults          map[string]map[string]string `yaml:"attrGroupDefaults"`
	Inheritable                []string                     `yaml:"inheritable"`
	PresentationNonInheritable []string                     `yaml:"presentationNonInheritable"`
}

// ElementDef describes one element by local data and group references.
// A nil Content means the element declares no content model; a non-nil
// empty Content means it may contain nothing.
type ElementDef struct {
	AttrGroups    []string          `yaml:"attrGroups"`
	Attrs         []string          `yaml:"attrs"`
	Defaults      map[string]string `yaml:"defaults"`
	ContentGroups []string          `yaml:"contentGroups"`
	Content       *[]string         `yaml:"content"`
}

// Default decodes the embedded SVG knowledge base.
// Every call returns a fresh value.
func Default() (*Base, error) {
	base, err := Decode(bytes.NewReader(embedded))
	if err != nil {
		return nil, fmt.Errorf("embedded knowledge base: %w", err)
	}
	return base, nil
}

// Decode reads a knowledge base from YAML. Unknown fields are rejected.
func Decode(r io.Reader) (*Base, error) {
	if r == nil {
		return nil, fmt.Errorf("decode knowledge base: nil reader")
	}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var base Base
	if err := dec.Decode(&base); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode knowledge base: empty document")
		}
		return nil, fmt.Errorf("decode knowledge base: %w", err)
	}
	if len(base.Elements) == 0 {
		return nil, fmt.Errorf("decode knowledge base: no elements defined")
	}
	return &base, nil
}

// Names returns a pointer to a copy of names, for building ElementDef.Content.
func Names(names ...string) *[]string {
	out := make([]string, len(names))
	copy(out, names)
	return &out
}
