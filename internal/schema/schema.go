// Package schema compiles the SVG knowledge base into immutable per-element
// definitions: known attributes, permitted content and default values.
package schema

import (
	"maps"
	"slices"
)

// Schema is a compiled knowledge base. It is read-only after Compile and
// safe for concurrent use.
type Schema struct {
	elements    map[string]*Element
	inheritable nameSet
	applyExempt nameSet
}

// Element returns the compiled definition for an element name.
func (s *Schema) Element(name string) (*Element, bool) {
	if s == nil {
		return nil, false
	}
	elem, ok := s.elements[name]
	return elem, ok
}

// Known reports whether name is a known element.
func (s *Schema) Known(name string) bool {
	_, ok := s.Element(name)
	return ok
}

// ElementNames returns all known element names in sorted order.
func (s *Schema) ElementNames() []string {
	if s == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(s.elements))
}

// Inheritable reports whether an attribute's value is inherited from ancestors.
func (s *Schema) Inheritable(attr string) bool {
	return s != nil && s.inheritable.has(attr)
}

// OverrideExempt reports whether an attribute belongs to the presentation
// attributes that are not inherited but still apply to the element itself.
func (s *Schema) OverrideExempt(attr string) bool {
	return s != nil && s.applyExempt.has(attr)
}

// Element is the resolved definition of one known element.
type Element struct {
	name     string
	attrs    *orderedSet
	content  *orderedSet
	defaults map[string]string
}

// Name returns the element name.
func (e *Element) Name() string {
	return e.name
}

// HasAttributes reports whether the element has a non-empty attribute list.
func (e *Element) HasAttributes() bool {
	return e.attrs.size() > 0
}

// AllowsAttribute reports whether name is a known attribute of the element.
func (e *Element) AllowsAttribute(name string) bool {
	return e.attrs.has(name)
}

// Attributes returns the known attribute names in resolution order.
func (e *Element) Attributes() []string {
	return e.attrs.list()
}

// HasContentModel reports whether the element declares permitted content.
// An element without a content model accepts any known element.
func (e *Element) HasContentModel() bool {
	return e.content != nil
}

// AllowsChild reports whether the content model permits a child element name.
func (e *Element) AllowsChild(name string) bool {
	return e.content.has(name)
}

// Content returns the permitted child names in resolution order, or nil when
// no content model is declared.
func (e *Element) Content() []string {
	if e.content == nil {
		return nil
	}
	out := e.content.list()
	if out == nil {
		out = []string{}
	}
	return out
}

// Default returns the default value of an attribute.
func (e *Element) Default(attr string) (string, bool) {
	v, ok := e.defaults[attr]
	return v, ok
}

// Defaults returns a copy of the default values, or nil when there are none.
func (e *Element) Defaults() map[string]string {
	return maps.Clone(e.defaults)
}
