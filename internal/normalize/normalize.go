// Package normalize removes unknown content, unknown attributes and
// attributes that repeat a default or inherited value from one SVG element.
package normalize

import (
	"strings"

	"github.com/NestorMonroy/svgo/internal/qname"
	"github.com/NestorMonroy/svgo/internal/schema"
	"github.com/NestorMonroy/svgo/pkg/svgtree"
)

const (
	foreignObject = "foreignObject"
	idAttr        = "id"
	roleAttr      = "role"
	dataPrefix    = "data-"
	ariaPrefix    = "aria-"
)

// Reason explains why a child or attribute was removed.
type Reason uint8

const (
	// ReasonUnknownContent marks a child the parent may not contain.
	ReasonUnknownContent Reason = iota + 1
	// ReasonUnknownAttribute marks an attribute the element does not know.
	ReasonUnknownAttribute
	// ReasonDefaultValue marks an attribute equal to its default value.
	ReasonDefaultValue
	// ReasonUselessOverride marks an attribute equal to the inherited value.
	ReasonUselessOverride
)

// String returns the reason name.
func (r Reason) String() string {
	switch r {
	case ReasonUnknownContent:
		return "unknown-content"
	case ReasonUnknownAttribute:
		return "unknown-attribute"
	case ReasonDefaultValue:
		return "default-value"
	case ReasonUselessOverride:
		return "useless-override"
	default:
		return "none"
	}
}

// Config selects which removals Node performs.
type Config struct {
	UnknownContent   bool
	UnknownAttrs     bool
	DefaultAttrs     bool
	UselessOverrides bool
	KeepDataAttrs    bool
	KeepAriaAttrs    bool
	KeepRoleAttr     bool

	// OnChild, when set, is called for each child before it is pruned.
	OnChild func(parent, child svgtree.Node)
	// OnAttribute, when set, is called after an attribute is removed.
	OnAttribute func(n svgtree.Node, attr svgtree.Attr, reason Reason)
}

// Node normalizes a single element in place. Non-element nodes, prefixed
// elements and elements unknown to s are left untouched. Ancestors are read
// but never modified, so callers must not normalize a node concurrently with
// any of its ancestors or descendants.
func Node(n svgtree.Node, cfg Config, s *schema.Schema) {
	if n == nil || n.Type() != svgtree.ElementNode {
		return
	}
	name := n.Name()
	if qname.IsPrefixed(name) {
		return
	}
	elem, ok := s.Element(name)
	if !ok {
		return
	}

	if cfg.UnknownContent && name != foreignObject {
		pruneContent(n, elem, cfg, s)
	}
	if elem.HasAttributes() {
		pruneAttributes(n, elem, cfg, s)
	}
}

func pruneContent(n svgtree.Node, elem *schema.Element, cfg Config, s *schema.Schema) {
	var drop []int
	for i, child := range n.Children() {
		if child.Type() != svgtree.ElementNode || qname.IsPrefixed(child.Name()) {
			continue
		}
		if permitsChild(elem, child.Name(), s) {
			continue
		}
		if cfg.OnChild != nil {
			cfg.OnChild(n, child)
		}
		drop = append(drop, i)
	}
	if len(drop) > 0 {
		n.RemoveChildren(drop)
	}
}

// permitsChild applies the content model; an element without one accepts
// any known element.
func permitsChild(elem *schema.Element, child string, s *schema.Schema) bool {
	if elem.HasContentModel() {
		return elem.AllowsChild(child)
	}
	return s.Known(child)
}

func pruneAttributes(n svgtree.Node, elem *schema.Element, cfg Config, s *schema.Schema) {
	parent := n.Parent()
	for _, attr := range n.Attributes() {
		if preserved(attr.Name, cfg) {
			continue
		}
		reason := classify(n, parent, attr, elem, cfg, s)
		if reason == 0 {
			continue
		}
		n.RemoveAttribute(attr.Name)
		if cfg.OnAttribute != nil {
			cfg.OnAttribute(n, attr, reason)
		}
	}
}

// preserved reports attributes that are never candidates for removal.
func preserved(name string, cfg Config) bool {
	switch {
	case name == qname.XMLNSPrefix:
		return true
	case qname.IsForeign(name):
		return true
	case cfg.KeepDataAttrs && strings.HasPrefix(name, dataPrefix):
		return true
	case cfg.KeepAriaAttrs && strings.HasPrefix(name, ariaPrefix):
		return true
	case cfg.KeepRoleAttr && name == roleAttr:
		return true
	}
	return false
}

// classify returns the first removal rule attr matches, or 0 to keep it.
func classify(n, parent svgtree.Node, attr svgtree.Attr, elem *schema.Element, cfg Config, s *schema.Schema) Reason {
	if cfg.UnknownAttrs && !elem.AllowsAttribute(attr.Name) {
		return ReasonUnknownAttribute
	}
	// An element with an id may be referenced from elsewhere, so values that
	// only look redundant here are kept.
	if n.HasAttribute(idAttr) {
		return 0
	}
	if cfg.DefaultAttrs && isDefault(parent, attr, elem, s) {
		return ReasonDefaultValue
	}
	if cfg.UselessOverrides && isUselessOverride(parent, attr, s) {
		return ReasonUselessOverride
	}
	return 0
}

// isDefault reports a value equal to the element default that would not be
// replaced by an inherited value once removed.
func isDefault(parent svgtree.Node, attr svgtree.Attr, elem *schema.Element, s *schema.Schema) bool {
	def, ok := elem.Default(attr.Name)
	if !ok || def != attr.Value {
		return false
	}
	if !s.Inheritable(attr.Name) {
		return true
	}
	_, inherited := svgtree.InheritedValue(parent, attr.Name)
	return !inherited
}

// isUselessOverride reports an inheritable value equal to the one already
// inherited from the nearest ancestor that sets it.
func isUselessOverride(parent svgtree.Node, attr svgtree.Attr, s *schema.Schema) bool {
	if s.OverrideExempt(attr.Name) || !s.Inheritable(attr.Name) {
		return false
	}
	return svgtree.InheritsValue(parent, attr.Name, attr.Value)
}
