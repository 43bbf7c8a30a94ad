package fieldmap

import (
	"github.com/signadot/fieldmap/ir"
)

// Declared is implemented by structure types that declare a field set:
//
//	var personFields = fieldmap.Struct(...)
//
//	func (Person) FieldSet() *fieldmap.FieldSet[Person] { return personFields }
type Declared[T any] interface {
	FieldSet() *FieldSet[T]
}

func fieldSetOf[T Declared[T]]() *FieldSet[T] {
	var zero T
	return zero.FieldSet()
}

// Encode converts v to a tree. v is not modified.
func Encode[T Declared[T]](v T) (*ir.Node, error) {
	return EncodeWith[T](fieldSetOf[T](), v)
}

// EncodeMove converts *v to a tree and may consume *v in the process,
// leaving it valid but unspecified.
func EncodeMove[T Declared[T]](v *T) (*ir.Node, error) {
	return EncodeMoveWith[T](fieldSetOf[T](), v)
}

// Decode builds a T from node, starting from the field set's default
// value. Fields whose keys are absent keep their defaults. node is not
// modified.
func Decode[T Declared[T]](node *ir.Node) (T, error) {
	return DecodeWith[T](fieldSetOf[T](), node)
}

// DecodeMove is Decode for a tree the caller no longer needs: the tree is
// consumed and left valid but unspecified.
func DecodeMove[T Declared[T]](node *ir.Node) (T, error) {
	return DecodeMoveWith[T](fieldSetOf[T](), node)
}

// EncodeWith converts v to a tree using c.
func EncodeWith[T any](c Converter[T], v T) (*ir.Node, error) {
	return c.Encode(&v)
}

// EncodeMoveWith converts *v to a tree using c, possibly consuming *v.
func EncodeMoveWith[T any](c Converter[T], v *T) (*ir.Node, error) {
	return c.EncodeMove(v)
}

// DecodeWith builds a T from node using c. On error the zero T is
// returned; there is no partial result.
func DecodeWith[T any](c Converter[T], node *ir.Node) (T, error) {
	v := c.New()
	if err := c.Decode(node, &v); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// DecodeMoveWith is DecodeWith consuming node.
func DecodeMoveWith[T any](c Converter[T], node *ir.Node) (T, error) {
	v := c.New()
	if err := c.DecodeMove(node, &v); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}
