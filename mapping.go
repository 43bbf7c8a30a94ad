package fieldmap

import (
	"cmp"
	"slices"

	"github.com/samber/lo"
	"github.com/signadot/fieldmap/ir"
)

type mapConv[M ~map[K]V, K comparable, V any] struct {
	key Key[K]
	val Converter[V]
}

// Map returns the converter for map[K]V, encoding to an object node whose
// keys are produced by key.
func Map[K comparable, V any](key Key[K], val Converter[V]) Converter[map[K]V] {
	return mapConv[map[K]V, K, V]{key: key, val: val}
}

// MapOf is Map for named map types.
func MapOf[M ~map[K]V, K comparable, V any](key Key[K], val Converter[V]) Converter[M] {
	return mapConv[M, K, V]{key: key, val: val}
}

func (mapConv[M, K, V]) Category() Category { return MapCategory }

func (mapConv[M, K, V]) New() M {
	return nil
}

func (c mapConv[M, K, V]) Encode(v *M) (*ir.Node, error) {
	return c.encode(v, false)
}

func (c mapConv[M, K, V]) EncodeMove(v *M) (*ir.Node, error) {
	node, err := c.encode(v, true)
	if err != nil {
		return nil, err
	}
	*v = nil
	return node, nil
}

type formattedKey[K comparable] struct {
	text string
	key  K
}

// encode writes entries sorted by key text so output is deterministic.
func (c mapConv[M, K, V]) encode(v *M, move bool) (*ir.Node, error) {
	keys := make([]formattedKey[K], 0, len(*v))
	for _, k := range lo.Keys(map[K]V(*v)) {
		text, err := c.key.FormatKey(k)
		if err != nil {
			return nil, &MarshalError{
				Message: "cannot format map key",
				Err:     err,
			}
		}
		keys = append(keys, formattedKey[K]{text: text, key: k})
	}
	slices.SortFunc(keys, func(a, b formattedKey[K]) int {
		return cmp.Compare(a.text, b.text)
	})

	res := ir.NewObject()
	for _, fk := range keys {
		val := (*v)[fk.key]
		var (
			node *ir.Node
			err  error
		)
		if move {
			node, err = c.val.EncodeMove(&val)
		} else {
			node, err = c.val.Encode(&val)
		}
		if err != nil {
			return nil, atField(err, fk.text)
		}
		res.Set(fk.text, node)
	}
	return res, nil
}

func (c mapConv[M, K, V]) Decode(node *ir.Node, v *M) error {
	return c.decode(node, v, false)
}

func (c mapConv[M, K, V]) DecodeMove(node *ir.Node, v *M) error {
	if err := c.decode(node, v, true); err != nil {
		return err
	}
	node.Reset()
	return nil
}

// decode builds a new map; a key that appears twice keeps the later value.
func (c mapConv[M, K, V]) decode(node *ir.Node, v *M, move bool) error {
	if node == nil {
		return nilNode()
	}
	if node.Type != ir.ObjectType {
		return mismatch(node, "object")
	}
	res := make(M, len(node.Values))
	for i, field := range node.Fields {
		item := node.Values[i]
		k, err := c.key.ParseKey(field.String)
		if err != nil {
			return &TypeError{
				Path:     item.KPath(),
				Expected: "map key",
				Actual:   field.Type,
				Err:      err,
			}
		}
		val := c.val.New()
		if move {
			err = c.val.DecodeMove(item, &val)
		} else {
			err = c.val.Decode(item, &val)
		}
		if err != nil {
			return err
		}
		res[k] = val
	}
	*v = res
	return nil
}
