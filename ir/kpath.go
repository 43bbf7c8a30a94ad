package ir

import (
	"strconv"
	"strings"
)

// KPath returns the kinded path of this node's position in the tree.
//
// Examples:
//   - Root node → ""
//   - Object field "a" → "a"
//   - Array element at index 0 → "[0]"
//   - Nested object "a.b" → "a.b"
//   - Mixed "a[0].b" → "a[0].b"
//   - Field with special characters → "a.\"x.y\""
func (node *Node) KPath() string {
	if node.Parent == nil {
		return ""
	}
	switch node.Parent.Type {
	case ObjectType:
		f := node.ParentField
		if kpathQuoteField(f) {
			f = strconv.Quote(f)
		}
		prefix := node.Parent.KPath()
		if prefix == "" {
			return f
		}
		return prefix + "." + f

	case ArrayType:
		return node.Parent.KPath() + "[" + strconv.Itoa(node.ParentIndex) + "]"

	default:
		panic("parent but not in container")
	}
}

func kpathQuoteField(f string) bool {
	return f == "" || strings.ContainsAny(f, " \t\n.[]{}\"'*")
}
