package fieldmap

import (
	"github.com/signadot/fieldmap/ir"
)

type sliceConv[S ~[]E, E any] struct {
	elem Converter[E]
}

// Slice returns the converter for []E, encoding to an array node.
func Slice[E any](elem Converter[E]) Converter[[]E] {
	return sliceConv[[]E, E]{elem: elem}
}

// SliceOf is Slice for named slice types:
//
//	type Phones []string
//	fieldmap.SliceOf[Phones](fieldmap.String[string]())
func SliceOf[S ~[]E, E any](elem Converter[E]) Converter[S] {
	return sliceConv[S, E]{elem: elem}
}

func (sliceConv[S, E]) Category() Category { return SequenceCategory }

func (sliceConv[S, E]) New() S {
	return nil
}

func (c sliceConv[S, E]) Encode(v *S) (*ir.Node, error) {
	return c.encode(v, false)
}

func (c sliceConv[S, E]) EncodeMove(v *S) (*ir.Node, error) {
	node, err := c.encode(v, true)
	if err != nil {
		return nil, err
	}
	*v = nil
	return node, nil
}

func (c sliceConv[S, E]) encode(v *S, move bool) (*ir.Node, error) {
	res := &ir.Node{Type: ir.ArrayType, Values: make([]*ir.Node, 0, len(*v))}
	for i := range *v {
		var (
			elem *ir.Node
			err  error
		)
		if move {
			elem, err = c.elem.EncodeMove(&(*v)[i])
		} else {
			elem, err = c.elem.Encode(&(*v)[i])
		}
		if err != nil {
			return nil, atIndex(err, i)
		}
		res.Append(elem)
	}
	return res, nil
}

func (c sliceConv[S, E]) Decode(node *ir.Node, v *S) error {
	return c.decode(node, v, false)
}

func (c sliceConv[S, E]) DecodeMove(node *ir.Node, v *S) error {
	if err := c.decode(node, v, true); err != nil {
		return err
	}
	node.Reset()
	return nil
}

// decode builds a new sequence which replaces *v only once every element
// has decoded.
func (c sliceConv[S, E]) decode(node *ir.Node, v *S, move bool) error {
	if node == nil {
		return nilNode()
	}
	if node.Type != ir.ArrayType {
		return mismatch(node, "array")
	}
	res := make(S, 0, len(node.Values))
	for _, item := range node.Values {
		elem := c.elem.New()
		var err error
		if move {
			err = c.elem.DecodeMove(item, &elem)
		} else {
			err = c.elem.Decode(item, &elem)
		}
		if err != nil {
			return err
		}
		res = append(res, elem)
	}
	*v = res
	return nil
}
