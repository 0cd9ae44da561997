package svgtree

// Walk calls fn for root and then for each of its descendants, depth first in
// document order. A node's children are read after fn returns for that node,
// so fn may remove them. When fn returns false the node's children are skipped.
func Walk(root Node, fn func(Node) bool) {
	if root == nil {
		return
	}
	if !fn(root) {
		return
	}
	for _, child := range root.Children() {
		Walk(child, fn)
	}
}
