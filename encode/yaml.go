package encode

import (
	"io"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/goccy/go-yaml"
	"github.com/signadot/fieldmap/ir"
)

func encodeYAML(node *ir.Node, w io.Writer, es *EncState) error {
	v, err := yamlValue(node)
	if err != nil {
		return err
	}
	yopts := []yaml.EncodeOption{yaml.Indent(es.indent)}
	if es.wire {
		yopts = append(yopts, yaml.Flow(true))
	}
	d, err := yaml.MarshalWithOptions(v, yopts...)
	if err != nil {
		return errors.Wrap(err, "yaml")
	}
	_, err = w.Write(d)
	return err
}

// yamlValue converts node to values goccy/go-yaml encodes in order:
// objects become MapSlice so that keys keep their tree order.
func yamlValue(node *ir.Node) (any, error) {
	switch node.Type {
	case ir.NullType:
		return nil, nil
	case ir.BoolType:
		return node.Bool, nil
	case ir.StringType:
		return node.String, nil
	case ir.NumberType:
		switch {
		case node.Int64 != nil:
			return *node.Int64, nil
		case node.Float64 != nil:
			return *node.Float64, nil
		}
		if i, err := strconv.ParseInt(node.Number, 10, 64); err == nil {
			return i, nil
		}
		if f, err := strconv.ParseFloat(node.Number, 64); err == nil {
			return f, nil
		}
		return nil, errors.Wrapf(ErrUnsupportedValue, "number %q at %q", node.Number, node.KPath())
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			yv, err := yamlValue(v)
			if err != nil {
				return nil, err
			}
			res[i] = yv
		}
		return res, nil
	case ir.ObjectType:
		res := make(yaml.MapSlice, len(node.Fields))
		for i, f := range node.Fields {
			yv, err := yamlValue(node.Values[i])
			if err != nil {
				return nil, err
			}
			res[i] = yaml.MapItem{Key: f.String, Value: yv}
		}
		return res, nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedValue, "node type %s at %q", node.Type, node.KPath())
	}
}
