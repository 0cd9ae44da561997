package svgtree

// InheritedValue resolves the value of attribute name at start: the value set
// on start or its nearest ancestor. Empty values do not count as set.
// It reports false when no node up to the root sets the attribute.
func InheritedValue(start Node, name string) (string, bool) {
	if start == nil {
		return "", false
	}
	if c, ok := start.(ComputedAttributer); ok {
		return c.ComputedAttribute(name)
	}
	for n := start; n != nil; n = n.Parent() {
		if v, ok := attributeValue(n, name); ok && v != "" {
			return v, true
		}
	}
	return "", false
}

// InheritsValue reports whether the value of attribute name resolved at start
// equals value.
func InheritsValue(start Node, name, value string) bool {
	v, ok := InheritedValue(start, name)
	return ok && v == value
}

func attributeValue(n Node, name string) (string, bool) {
	if !n.HasAttribute(name) {
		return "", false
	}
	if e, ok := n.(*Element); ok {
		return e.Attribute(name)
	}
	for _, attr := range n.Attributes() {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}
