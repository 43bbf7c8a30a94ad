package parse

import (
	"fmt"
	"math"

	"github.com/cockroachdb/errors"
	"github.com/goccy/go-yaml"
	"github.com/signadot/fieldmap/ir"
)

func parseYAML(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, errors.Wrapf(ErrParse, "%v", err)
	}
	return fromYAML(v)
}

func fromYAML(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(x), nil
	case string:
		return ir.FromString(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint64:
		if x > math.MaxInt64 {
			res := ir.FromFloat(float64(x))
			res.Number = fmt.Sprint(x)
			return res, nil
		}
		return ir.FromInt(int64(x)), nil
	case float64:
		return ir.FromFloat(x), nil
	case []any:
		res := ir.NewArray()
		for _, e := range x {
			child, err := fromYAML(e)
			if err != nil {
				return nil, err
			}
			res.Append(child)
		}
		return res, nil
	case yaml.MapSlice:
		res := ir.NewObject()
		for _, item := range x {
			child, err := fromYAML(item.Value)
			if err != nil {
				return nil, err
			}
			res.Set(fmt.Sprint(item.Key), child)
		}
		return res, nil
	default:
		return nil, errors.Wrapf(ErrParse, "unsupported yaml value %T", v)
	}
}
