package fieldmap

import (
	"github.com/signadot/fieldmap/ir"
)

// Field binds one named field of T to its converter.
type Field[T any] interface {
	Name() string
	Category() Category

	encode(v *T, move bool) (*ir.Node, error)
	decode(node *ir.Node, v *T, move bool) error
	initDefault(v *T)
}

type field[T, V any] struct {
	name string
	get  func(*T) *V
	conv Converter[V]
}

// F declares a field named name. get returns the address of the field in
// a T and is used for both reading and writing:
//
//	fieldmap.F("age", func(p *Person) *int { return &p.Age }, fieldmap.Int[int]())
func F[T, V any](name string, get func(*T) *V, conv Converter[V]) Field[T] {
	return field[T, V]{name: name, get: get, conv: conv}
}

func (f field[T, V]) Name() string { return f.name }

func (f field[T, V]) Category() Category { return f.conv.Category() }

func (f field[T, V]) encode(v *T, move bool) (*ir.Node, error) {
	if move {
		return f.conv.EncodeMove(f.get(v))
	}
	return f.conv.Encode(f.get(v))
}

func (f field[T, V]) decode(node *ir.Node, v *T, move bool) error {
	if move {
		return f.conv.DecodeMove(node, f.get(v))
	}
	return f.conv.Decode(node, f.get(v))
}

// initDefault sets a structure field to the default of its own field set.
func (f field[T, V]) initDefault(v *T) {
	if f.conv.Category() != CompositeCategory {
		return
	}
	*f.get(v) = f.conv.New()
}
