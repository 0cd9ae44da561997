package svgo

import (
	"github.com/charmbracelet/log"

	"github.com/NestorMonroy/svgo/internal/normalize"
	"github.com/NestorMonroy/svgo/pkg/svgtree"
)

// Normalizer applies Options to SVG element nodes. It holds no mutable state
// and may be used concurrently on independent trees.
type Normalizer struct {
	schema *Schema
	cfg    normalize.Config
	logger *log.Logger
}

// NewNormalizer returns a normalizer for schema. A nil schema selects
// DefaultSchema. When logger is non-nil every removal is logged at debug level.
func NewNormalizer(schema *Schema, opts Options, logger *log.Logger) *Normalizer {
	if schema == nil {
		schema = DefaultSchema()
	}
	n := &Normalizer{
		schema: schema,
		cfg:    opts.toConfig(),
		logger: logger,
	}
	if logger != nil {
		n.cfg.OnChild = n.logChild
		n.cfg.OnAttribute = n.logAttribute
	}
	return n
}

// Normalize normalizes one node in place. Non-element nodes, prefixed
// elements and unknown elements are left as they are. Ancestors of node are
// consulted for inherited values, so they must not change during the call.
func (n *Normalizer) Normalize(node svgtree.Node) {
	normalize.Node(node, n.cfg, n.schema.compiled)
}

// NormalizeTree normalizes root and every descendant, depth first. Each node is
// normalized before its children, so pruned children are never visited.
func (n *Normalizer) NormalizeTree(root svgtree.Node) {
	svgtree.Walk(root, func(node svgtree.Node) bool {
		n.Normalize(node)
		return true
	})
}

func (n *Normalizer) logChild(parent, child svgtree.Node) {
	n.logger.Debug("pruned child",
		"element", parent.Name(),
		"child", child.Name(),
		"reason", normalize.ReasonUnknownContent.String(),
	)
}

func (n *Normalizer) logAttribute(node svgtree.Node, attr svgtree.Attr, reason normalize.Reason) {
	n.logger.Debug("removed attribute",
		"element", node.Name(),
		"attribute", attr.Name,
		"value", attr.Value,
		"reason", reason.String(),
	)
}
