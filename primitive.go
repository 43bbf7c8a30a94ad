package fieldmap

import (
	"strconv"

	"github.com/signadot/fieldmap/ir"
	"golang.org/x/exp/constraints"
)

type number interface {
	constraints.Integer | constraints.Float
}

type intConv[T constraints.Integer] struct{}

// Int returns the converter for integer types. Encoding stores an integer
// node; unsigned values above math.MaxInt64 wrap.
func Int[T constraints.Integer]() Converter[T] {
	return intConv[T]{}
}

func (intConv[T]) Category() Category { return PrimitiveCategory }

func (intConv[T]) New() T {
	var zero T
	return zero
}

func (intConv[T]) Encode(v *T) (*ir.Node, error) {
	return ir.FromInt(int64(*v)), nil
}

func (c intConv[T]) EncodeMove(v *T) (*ir.Node, error) {
	return c.Encode(v)
}

func (intConv[T]) Decode(node *ir.Node, v *T) error {
	return decodeNumber(node, v)
}

func (intConv[T]) DecodeMove(node *ir.Node, v *T) error {
	return consumeLeaf(node, decodeNumber(node, v))
}

type floatConv[T constraints.Float] struct{}

// Float returns the converter for floating point types. Encoding stores a
// double node.
func Float[T constraints.Float]() Converter[T] {
	return floatConv[T]{}
}

func (floatConv[T]) Category() Category { return PrimitiveCategory }

func (floatConv[T]) New() T {
	var zero T
	return zero
}

func (floatConv[T]) Encode(v *T) (*ir.Node, error) {
	return ir.FromFloat(float64(*v)), nil
}

func (c floatConv[T]) EncodeMove(v *T) (*ir.Node, error) {
	return c.Encode(v)
}

func (floatConv[T]) Decode(node *ir.Node, v *T) error {
	return decodeNumber(node, v)
}

func (floatConv[T]) DecodeMove(node *ir.Node, v *T) error {
	return consumeLeaf(node, decodeNumber(node, v))
}

// decodeNumber accepts any numeric payload and converts it to T with a
// plain Go conversion: no range check, fractions truncate toward zero.
func decodeNumber[T number](node *ir.Node, v *T) error {
	if node == nil {
		return nilNode()
	}
	if node.Type != ir.NumberType {
		return mismatch(node, "number")
	}
	switch {
	case node.Int64 != nil:
		*v = T(*node.Int64)
	case node.Number != "":
		return decodeLiteral(node, v)
	case node.Float64 != nil:
		*v = T(*node.Float64)
	default:
		return &UnmarshalError{
			Path:    node.KPath(),
			Message: "number node has no value",
		}
	}
	return nil
}

// decodeLiteral decodes from the literal text, which is exact for integers
// outside the int64 range.
func decodeLiteral[T number](node *ir.Node, v *T) error {
	if i, err := strconv.ParseInt(node.Number, 10, 64); err == nil {
		*v = T(i)
		return nil
	}
	if u, err := strconv.ParseUint(node.Number, 10, 64); err == nil {
		*v = T(u)
		return nil
	}
	if node.Float64 != nil {
		*v = T(*node.Float64)
		return nil
	}
	f, err := strconv.ParseFloat(node.Number, 64)
	if err != nil {
		return &TypeError{
			Path:     node.KPath(),
			Expected: "number",
			Actual:   node.Type,
			Err:      err,
		}
	}
	*v = T(f)
	return nil
}

type boolConv[T ~bool] struct{}

// Bool returns the converter for boolean types.
func Bool[T ~bool]() Converter[T] {
	return boolConv[T]{}
}

func (boolConv[T]) Category() Category { return PrimitiveCategory }

func (boolConv[T]) New() T {
	var zero T
	return zero
}

func (boolConv[T]) Encode(v *T) (*ir.Node, error) {
	return ir.FromBool(bool(*v)), nil
}

func (c boolConv[T]) EncodeMove(v *T) (*ir.Node, error) {
	return c.Encode(v)
}

func (boolConv[T]) Decode(node *ir.Node, v *T) error {
	if node == nil {
		return nilNode()
	}
	if node.Type != ir.BoolType {
		return mismatch(node, "bool")
	}
	*v = T(node.Bool)
	return nil
}

func (c boolConv[T]) DecodeMove(node *ir.Node, v *T) error {
	return consumeLeaf(node, c.Decode(node, v))
}

// consumeLeaf resets a leaf that was decoded destructively.
func consumeLeaf(node *ir.Node, err error) error {
	if err != nil {
		return err
	}
	node.Reset()
	return nil
}
