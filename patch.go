package fieldmap

import (
	"bytes"

	"github.com/cockroachdb/errors"
	jsonpatch "github.com/evanphx/json-patch"
	"github.com/signadot/fieldmap/encode"
	"github.com/signadot/fieldmap/ir"
	"github.com/signadot/fieldmap/parse"
)

// ErrPatch wraps failures to decode or apply a JSON patch.
var ErrPatch = errors.New("json patch")

// Patch applies the RFC 6902 JSON patch p to the encoding of v and decodes
// the result. Fields the patch removes keep their defaults.
func Patch[T Declared[T]](v T, p []byte) (T, error) {
	return PatchWith[T](fieldSetOf[T](), v, p)
}

func PatchWith[T any](c Converter[T], v T, p []byte) (T, error) {
	var zero T
	node, err := c.Encode(&v)
	if err != nil {
		return zero, err
	}
	res, err := PatchNode(node, p)
	if err != nil {
		return zero, err
	}
	return DecodeMoveWith(c, res)
}

// PatchNode applies the JSON patch p to node and returns the patched tree.
// node is not modified.
func PatchNode(node *ir.Node, p []byte) (*ir.Node, error) {
	ops, err := jsonpatch.DecodePatch(p)
	if err != nil {
		return nil, errors.Wrapf(ErrPatch, "decode: %v", err)
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf, encode.EncodeWire(true)); err != nil {
		return nil, err
	}
	out, err := ops.Apply(buf.Bytes())
	if err != nil {
		return nil, errors.Wrapf(ErrPatch, "apply: %v", err)
	}
	return parse.Parse(out)
}
