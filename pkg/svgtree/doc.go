// Package svgtree defines the tree contract consumed by the normalizer and
// provides a small in-memory implementation of it.
//
// Host trees implement Node. Attribute inheritance is resolved by walking
// Parent links unless the host implements ComputedAttributer.
package svgtree
