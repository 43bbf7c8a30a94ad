package fieldmap

import (
	"bytes"

	"github.com/signadot/fieldmap/encode"
	"github.com/signadot/fieldmap/parse"
)

// Marshal encodes v and writes the tree as text. Options select the
// format and layout, JSON by default.
func Marshal[T Declared[T]](v T, opts ...encode.EncodeOption) ([]byte, error) {
	return MarshalWith[T](fieldSetOf[T](), v, opts...)
}

func MarshalWith[T any](c Converter[T], v T, opts ...encode.EncodeOption) ([]byte, error) {
	node, err := c.Encode(&v)
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal parses d and decodes a T from it. The parsed tree is private
// to the call, so it is consumed with DecodeMove.
func Unmarshal[T Declared[T]](d []byte, opts ...parse.ParseOption) (T, error) {
	return UnmarshalWith[T](fieldSetOf[T](), d, opts...)
}

func UnmarshalWith[T any](c Converter[T], d []byte, opts ...parse.ParseOption) (T, error) {
	node, err := parse.Parse(d, opts...)
	if err != nil {
		var zero T
		return zero, err
	}
	return DecodeMoveWith(c, node)
}
