package parse

import (
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	jsoniter "github.com/json-iterator/go"
	"github.com/signadot/fieldmap/ir"
)

func parseJSON(d []byte) (*ir.Node, error) {
	iter := jsoniter.ParseBytes(jsoniter.ConfigDefault, d)
	res := &ir.Node{}
	if err := parseJSONValue(iter, res); err != nil {
		return nil, err
	}
	// anything but whitespace after the document is an error; the
	// iterator reports io.EOF once the input is exhausted.
	if next := iter.WhatIsNext(); next != jsoniter.InvalidValue || iter.Error == nil {
		return nil, errors.Wrapf(ErrParse, "trailing data after json document near %q", iter.CurrentBuffer())
	}
	if iter.Error != io.EOF {
		return nil, errors.Wrapf(ErrParse, "%v", iter.Error)
	}
	return res, nil
}

func iterErr(iter *jsoniter.Iterator) error {
	if iter.Error == nil || iter.Error == io.EOF {
		return nil
	}
	return errors.Wrapf(ErrParse, "%v", iter.Error)
}

func parseJSONValue(iter *jsoniter.Iterator, node *ir.Node) error {
	switch iter.WhatIsNext() {
	case jsoniter.NilValue:
		iter.ReadNil()
		node.Type = ir.NullType
	case jsoniter.BoolValue:
		node.Type = ir.BoolType
		node.Bool = iter.ReadBool()
	case jsoniter.StringValue:
		ir.FromStringAt(node, iter.ReadString())
	case jsoniter.NumberValue:
		lit := string(iter.ReadNumber())
		if err := iterErr(iter); err != nil {
			return err
		}
		if err := numberAt(node, lit); err != nil {
			return err
		}
	case jsoniter.ArrayValue:
		node.Type = ir.ArrayType
		node.Values = []*ir.Node{}
		var err error
		iter.ReadArrayCB(func(iter *jsoniter.Iterator) bool {
			child := &ir.Node{}
			if err = parseJSONValue(iter, child); err != nil {
				return false
			}
			node.Append(child)
			return true
		})
		if err != nil {
			return err
		}
	case jsoniter.ObjectValue:
		node.Type = ir.ObjectType
		node.Fields = []*ir.Node{}
		node.Values = []*ir.Node{}
		var err error
		iter.ReadMapCB(func(iter *jsoniter.Iterator, field string) bool {
			child := &ir.Node{}
			if err = parseJSONValue(iter, child); err != nil {
				return false
			}
			node.Set(field, child)
			return true
		})
		if err != nil {
			return err
		}
	default:
		if err := iterErr(iter); err != nil {
			return err
		}
		iter.ReportError("parseJSONValue", "expected json value")
		return errors.Wrapf(ErrParse, "%v", iter.Error)
	}
	return iterErr(iter)
}

// numberAt fills node with the number lit. Literals without a fraction or
// exponent are integers; integers too large for int64 keep their text and
// an approximate double.
func numberAt(node *ir.Node, lit string) error {
	node.Type = ir.NumberType
	node.Number = lit
	if !strings.ContainsAny(lit, ".eE") {
		if i, err := strconv.ParseInt(lit, 10, 64); err == nil {
			node.Int64 = &i
			return nil
		}
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		var numErr *strconv.NumError
		if !errors.As(err, &numErr) || numErr.Err != strconv.ErrRange {
			return errors.Wrapf(ErrParse, "bad number %q", lit)
		}
	}
	node.Float64 = &f
	return nil
}
