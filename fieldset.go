package fieldmap

import (
	"fmt"
	"slices"

	"github.com/signadot/fieldmap/debug"
	"github.com/signadot/fieldmap/ir"
)

// FieldSet is the ordered, immutable list of fields declared for T. It is
// the converter for T as a structure: encode writes every field in order,
// decode sets the fields whose names are present and leaves the others
// alone.
//
// A FieldSet is created once, typically in a package level var, and is safe
// for concurrent use.
type FieldSet[T any] struct {
	fields []Field[T]
	index  map[string]int
	newFn  func() T
}

// Struct declares the field set of T. It panics if two fields share a
// name.
func Struct[T any](fields ...Field[T]) *FieldSet[T] {
	fs := &FieldSet[T]{
		fields: slices.Clone(fields),
		index:  make(map[string]int, len(fields)),
	}
	for i, f := range fs.fields {
		if _, dup := fs.index[f.Name()]; dup {
			panic(fmt.Sprintf("fieldmap: duplicate field name %q in %T", f.Name(), fs))
		}
		fs.index[f.Name()] = i
	}
	return fs
}

// Defaults returns a field set with the same fields whose New returns
// newFn(). Decode starts from that value, so fields absent from the input
// keep what newFn put there. newFn replaces the defaults of structure
// fields as well.
func (fs *FieldSet[T]) Defaults(newFn func() T) *FieldSet[T] {
	res := *fs
	res.newFn = newFn
	return &res
}

// Names lists the field names in declared order.
func (fs *FieldSet[T]) Names() []string {
	res := make([]string, len(fs.fields))
	for i, f := range fs.fields {
		res[i] = f.Name()
	}
	return res
}

func (fs *FieldSet[T]) Len() int {
	return len(fs.fields)
}

func (fs *FieldSet[T]) Lookup(name string) (Field[T], bool) {
	i, ok := fs.index[name]
	if !ok {
		return nil, false
	}
	return fs.fields[i], true
}

func (fs *FieldSet[T]) Category() Category { return CompositeCategory }

// New returns the value decode starts from. Without Defaults it is the zero
// T with each structure field set to its own field set's New.
func (fs *FieldSet[T]) New() T {
	if fs.newFn != nil {
		return fs.newFn()
	}
	var res T
	for _, f := range fs.fields {
		f.initDefault(&res)
	}
	return res
}

func (fs *FieldSet[T]) Encode(v *T) (*ir.Node, error) {
	return fs.encode(v, false)
}

func (fs *FieldSet[T]) EncodeMove(v *T) (*ir.Node, error) {
	return fs.encode(v, true)
}

func (fs *FieldSet[T]) encode(v *T, move bool) (*ir.Node, error) {
	res := &ir.Node{
		Type:   ir.ObjectType,
		Fields: make([]*ir.Node, 0, len(fs.fields)),
		Values: make([]*ir.Node, 0, len(fs.fields)),
	}
	for _, f := range fs.fields {
		node, err := f.encode(v, move)
		if err != nil {
			return nil, atField(err, f.Name())
		}
		res.Set(f.Name(), node)
	}
	if debug.Encode() {
		debug.Logf("fieldmap: encoded %T: %s", *v, res)
	}
	return res, nil
}

func (fs *FieldSet[T]) Decode(node *ir.Node, v *T) error {
	return fs.decode(node, v, false)
}

func (fs *FieldSet[T]) DecodeMove(node *ir.Node, v *T) error {
	if err := fs.decode(node, v, true); err != nil {
		return err
	}
	node.Reset()
	return nil
}

// decode applies the same rule in both modes: a present key overwrites
// the field, an absent key leaves it as it was. Keys with no field are
// ignored.
func (fs *FieldSet[T]) decode(node *ir.Node, v *T, move bool) error {
	if node == nil {
		return nilNode()
	}
	if node.Type != ir.ObjectType {
		return mismatch(node, "object")
	}
	for _, f := range fs.fields {
		child, ok := node.Lookup(f.Name())
		if !ok {
			if debug.Decode() {
				debug.Logf("fieldmap: %s absent at %q, keeping current value", f.Name(), node.KPath())
			}
			continue
		}
		if err := f.decode(child, v, move); err != nil {
			return err
		}
	}
	return nil
}
