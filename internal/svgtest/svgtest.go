// Package svgtest builds svgtree trees from markup snippets and renders them
// back in a compact form for test assertions.
package svgtest

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/NestorMonroy/svgo/pkg/svgtree"
)

// Parse builds a tree from markup. Names keep their prefixes as written and
// no namespace resolution is performed. Whitespace-only text is dropped.
func Parse(src string) (*svgtree.Element, error) {
	decoder := xml.NewDecoder(strings.NewReader(src))

	var stack []*svgtree.Element
	var root *svgtree.Element

	for {
		tok, err := decoder.RawToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if root != nil && len(stack) == 0 {
				return nil, fmt.Errorf("unexpected element %s after document end", qualified(t.Name))
			}
			elem := svgtree.NewElement(qualified(t.Name), convertAttrs(t.Attr)...)
			if len(stack) > 0 {
				stack[len(stack)-1].AppendChild(elem)
			} else {
				root = elem
			}
			stack = append(stack, elem)

		case xml.EndElement:
			if len(stack) == 0 {
				return nil, fmt.Errorf("unexpected end element %s", qualified(t.Name))
			}
			top := stack[len(stack)-1]
			if top.Name() != qualified(t.Name) {
				return nil, fmt.Errorf("end element %s does not match %s", qualified(t.Name), top.Name())
			}
			stack = stack[:len(stack)-1]

		case xml.CharData:
			if len(stack) == 0 || strings.TrimSpace(string(t)) == "" {
				continue
			}
			stack[len(stack)-1].AppendChild(svgtree.NewText(string(t)))

		case xml.Comment:
			if len(stack) == 0 {
				continue
			}
			stack[len(stack)-1].AppendChild(svgtree.NewComment(string(t)))
		}
	}

	if root == nil || len(stack) != 0 {
		return nil, io.ErrUnexpectedEOF
	}
	return root, nil
}

// MustParse is like Parse but fails the test on error.
func MustParse(tb testing.TB, src string) *svgtree.Element {
	tb.Helper()
	root, err := Parse(src)
	if err != nil {
		tb.Fatalf("parse %q: %v", src, err)
	}
	return root
}

// Render writes n and its subtree as compact markup: attributes in order,
// empty elements self-closed, no added whitespace.
func Render(n svgtree.Node) string {
	var sb strings.Builder
	render(&sb, n)
	return sb.String()
}

func render(sb *strings.Builder, n svgtree.Node) {
	switch n.Type() {
	case svgtree.TextNode:
		if t, ok := n.(*svgtree.Text); ok {
			escape(sb, t.Data)
		}
		return
	case svgtree.CommentNode:
		if c, ok := n.(*svgtree.Comment); ok {
			sb.WriteString("<!--")
			sb.WriteString(c.Data)
			sb.WriteString("-->")
		}
		return
	}

	sb.WriteByte('<')
	sb.WriteString(n.Name())
	for _, attr := range n.Attributes() {
		sb.WriteByte(' ')
		sb.WriteString(attr.Name)
		sb.WriteString(`="`)
		escape(sb, attr.Value)
		sb.WriteByte('"')
	}
	children := n.Children()
	if len(children) == 0 {
		sb.WriteString("/>")
		return
	}
	sb.WriteByte('>')
	for _, child := range children {
		render(sb, child)
	}
	sb.WriteString("</")
	sb.WriteString(n.Name())
	sb.WriteByte('>')
}

func escape(sb *strings.Builder, s string) {
	// strings.Builder writes never fail.
	_ = xml.EscapeText(sb, []byte(s))
}

func qualified(name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}
	return name.Space + ":" + name.Local
}

func convertAttrs(xmlAttrs []xml.Attr) []svgtree.Attr {
	attrs := make([]svgtree.Attr, 0, len(xmlAttrs))
	for _, a := range xmlAttrs {
		attrs = append(attrs, svgtree.Attr{Name: qualified(a.Name), Value: a.Value})
	}
	return attrs
}
