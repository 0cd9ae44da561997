package svgtree

import "slices"

// Element is an in-memory element node.
type Element struct {
	name     string
	attrs    []Attr
	children []Node
	parent   *Element
}

// NewElement returns a detached element with the given attributes.
// A repeated attribute name keeps the last value at the first position.
func NewElement(name string, attrs ...Attr) *Element {
	e := &Element{name: name}
	for _, attr := range attrs {
		e.SetAttribute(attr.Name, attr.Value)
	}
	return e
}

// Type returns ElementNode.
func (e *Element) Type() NodeType {
	return ElementNode
}

// Name returns the qualified element name.
func (e *Element) Name() string {
	return e.name
}

// Attributes returns a copy of the element attributes.
func (e *Element) Attributes() []Attr {
	return slices.Clone(e.attrs)
}

// Attribute returns the value of an attribute and whether it is present.
func (e *Element) Attribute(name string) (string, bool) {
	for _, attr := range e.attrs {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// HasAttribute reports whether the attribute is present.
func (e *Element) HasAttribute(name string) bool {
	_, ok := e.Attribute(name)
	return ok
}

// SetAttribute replaces the value of an existing attribute or appends a new one.
func (e *Element) SetAttribute(name, value string) {
	for i := range e.attrs {
		if e.attrs[i].Name == name {
			e.attrs[i].Value = value
			return
		}
	}
	e.attrs = append(e.attrs, Attr{Name: name, Value: value})
}

// RemoveAttribute deletes the attribute if present.
func (e *Element) RemoveAttribute(name string) {
	e.attrs = slices.DeleteFunc(e.attrs, func(attr Attr) bool {
		return attr.Name == name
	})
}

// Children returns a copy of the child slice.
func (e *Element) Children() []Node {
	return slices.Clone(e.children)
}

// AppendChild attaches child as the last child of e and returns e.
// Children created by this package are re-parented; other Node
// implementations keep their own parent link.
func (e *Element) AppendChild(children ...Node) *Element {
	for _, child := range children {
		switch c := child.(type) {
		case *Element:
			c.parent = e
		case *Text:
			c.parent = e
		case *Comment:
			c.parent = e
		}
		e.children = append(e.children, child)
	}
	return e
}

// RemoveChildren removes the children at the given positions and detaches them.
func (e *Element) RemoveChildren(indexes []int) {
	if len(indexes) == 0 {
		return
	}
	drop := make(map[int]bool, len(indexes))
	for _, i := range indexes {
		drop[i] = true
	}
	kept := make([]Node, 0, len(e.children))
	for i, child := range e.children {
		if drop[i] {
			detach(child)
			continue
		}
		kept = append(kept, child)
	}
	e.children = kept
}

// Parent returns the parent element, or nil for a detached or root element.
func (e *Element) Parent() Node {
	if e.parent == nil {
		return nil
	}
	return e.parent
}

func detach(n Node) {
	switch c := n.(type) {
	case *Element:
		c.parent = nil
	case *Text:
		c.parent = nil
	case *Comment:
		c.parent = nil
	}
}

// Text is an in-memory character data node.
type Text struct {
	Data   string
	parent *Element
}

// NewText returns a detached text node.
func NewText(data string) *Text {
	return &Text{Data: data}
}

func (t *Text) Type() NodeType { return TextNode }
func (t *Text) Name() string { return "" }
func (t *Text) Attributes() []Attr { return nil }
func (t *Text) HasAttribute(string) bool { return false }
func (t *Text) RemoveAttribute(string) {}
func (t *Text) Children() []Node { return nil }
func (t *Text) RemoveChildren([]int) {}
func (t *Text) Parent() Node { return parentNode(t.parent) }

// Comment is an in-memory comment node.
type Comment struct {
	Data   string
	parent *Element
}

// NewComment returns a detached comment node.
func NewComment(data string) *Comment {
	return &Comment{Data: data}
}

func (c *Comment) Type() NodeType { return CommentNode }
func (c *Comment) Name() string { return "" }
func (c *Comment) Attributes() []Attr { return nil }
func (c *Comment) HasAttribute(string) bool { return false }
func (c *Comment) RemoveAttribute(string) {}
func (c *Comment) Children() []Node { return nil }
func (c *Comment) RemoveChildren([]int) {}
func (c *Comment) Parent() Node { return parentNode(c.parent) }

func parentNode(e *Element) Node {
	if e == nil {
		return nil
	}
	return e
}
