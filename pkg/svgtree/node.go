package svgtree

// NodeType classifies tree nodes.
type NodeType uint8

const (
	// ElementNode identifies an element.
	ElementNode NodeType = iota + 1
	// TextNode identifies character data.
	TextNode
	// CommentNode identifies a comment.
	CommentNode
)

// String returns the node type name.
func (t NodeType) String() string {
	switch t {
	case ElementNode:
		return "element"
	case TextNode:
		return "text"
	case CommentNode:
		return "comment"
	default:
		return "unknown"
	}
}

// Attr is one attribute as written on an element.
type Attr struct {
	Name  string
	Value string
}

// Node is the tree contract needed by the normalizer. Non-element nodes
// report no attributes and no children.
type Node interface {
	Type() NodeType
	// Name returns the qualified name as written, e.g. "sodipodi:namedview".
	Name() string
	// Attributes returns a snapshot of the attributes in document order.
	Attributes() []Attr
	HasAttribute(name string) bool
	RemoveAttribute(name string)
	// Children returns a snapshot of the children in document order.
	Children() []Node
	// RemoveChildren removes the children at the given ascending positions,
	// relative to the slice returned by Children.
	RemoveChildren(indexes []int)
	// Parent returns the parent node; nil for the root.
	Parent() Node
}

// ComputedAttributer is implemented by hosts that resolve inherited attribute
// values themselves, for example from a precomputed style cascade.
type ComputedAttributer interface {
	// ComputedAttribute returns the value of name set on n or its nearest
	// ancestor, and whether any was found.
	ComputedAttribute(name string) (string, bool)
}
