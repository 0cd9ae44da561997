package qname

import "strings"

const (
	// XMLPrefix is the reserved prefix for the XML namespace.
	XMLPrefix = "xml"
	// XMLNSPrefix is the reserved prefix for namespace declarations.
	XMLNSPrefix = "xmlns"
)

// Split splits a qualified name into prefix and local parts without validation.
// The bare name "xmlns" is reported with prefix "xmlns" and an empty local part.
func Split(name string) (prefix, local string) {
	if name == XMLNSPrefix {
		return XMLNSPrefix, ""
	}
	prefix, local, hasPrefix := strings.Cut(name, ":")
	if !hasPrefix {
		return "", name
	}
	if i := strings.IndexByte(local, ':'); i >= 0 {
		local = local[:i]
	}
	return prefix, local
}

// Prefix returns the prefix part of name, or "" when unqualified.
func Prefix(name string) string {
	prefix, _ := Split(name)
	return prefix
}

// IsPrefixed reports whether name carries any namespace prefix.
func IsPrefixed(name string) bool {
	return Prefix(name) != ""
}

// IsForeign reports whether name carries a prefix other than the reserved xml prefix.
func IsForeign(name string) bool {
	prefix := Prefix(name)
	return prefix != "" && prefix != XMLPrefix
}
