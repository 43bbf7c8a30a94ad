package fieldmap

import (
	"github.com/signadot/fieldmap/ir"
)

// Category names the conversion strategy of a converter.
type Category int

const (
	PrimitiveCategory Category = iota + 1
	StringCategory
	SequenceCategory
	MapCategory
	CompositeCategory
)

func (c Category) String() string {
	switch c {
	case PrimitiveCategory:
		return "primitive"
	case StringCategory:
		return "string"
	case SequenceCategory:
		return "sequence"
	case MapCategory:
		return "map"
	case CompositeCategory:
		return "composite"
	default:
		return "<unknown category>"
	}
}

// Converter converts values of type T to and from tree nodes.
//
// Converters are chosen when a field is declared, so the strategy for a
// type is fixed at compile time: there is no converter for a type that
// belongs to no category.
//
// Encode and Decode borrow their argument and leave it unchanged.
// EncodeMove and DecodeMove may consume it, leaving it valid but
// unspecified. Both forms produce the same logical result.
type Converter[T any] interface {
	Category() Category
	// New returns the value decode starts from.
	New() T
	Encode(v *T) (*ir.Node, error)
	EncodeMove(v *T) (*ir.Node, error)
	Decode(node *ir.Node, v *T) error
	DecodeMove(node *ir.Node, v *T) error
}
