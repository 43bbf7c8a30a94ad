package fieldmap

import (
	"github.com/signadot/fieldmap/ir"
)

type stringConv[T ~string] struct{}

// String returns the converter for string types.
func String[T ~string]() Converter[T] {
	return stringConv[T]{}
}

func (stringConv[T]) Category() Category { return StringCategory }

func (stringConv[T]) New() T {
	var zero T
	return zero
}

func (stringConv[T]) Encode(v *T) (*ir.Node, error) {
	return ir.FromString(string(*v)), nil
}

// EncodeMove hands the string to the node and empties the source.
func (stringConv[T]) EncodeMove(v *T) (*ir.Node, error) {
	node := ir.FromString(string(*v))
	*v = ""
	return node, nil
}

func (stringConv[T]) Decode(node *ir.Node, v *T) error {
	if node == nil {
		return nilNode()
	}
	if node.Type != ir.StringType {
		return mismatch(node, "string")
	}
	*v = T(node.String)
	return nil
}

func (c stringConv[T]) DecodeMove(node *ir.Node, v *T) error {
	return consumeLeaf(node, c.Decode(node, v))
}
