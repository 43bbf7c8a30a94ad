package encode

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	jsoniter "github.com/json-iterator/go"
	"github.com/signadot/fieldmap/format"
	"github.com/signadot/fieldmap/ir"
)

var ErrUnsupportedValue = errors.New("unsupported value")

type EncState struct {
	format format.Format
	wire   bool
	indent int
	Color  func(ir.Type, ColorAttr, string) string

	depth int
}

// strings are quoted as JSON without HTML escaping, so that text survives
// a round trip byte for byte.
var quoter = jsoniter.Config{EscapeHTML: false}.Froze()

// Encode writes node to w in the selected format (JSON by default).
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	if node == nil {
		node = ir.Null()
	}
	if es.format.IsYAML() {
		return encodeYAML(node, w, es)
	}
	if err := encode(node, w, es); err != nil {
		return err
	}
	if !es.wire {
		return writeString(w, "\n")
	}
	return nil
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func writeNL(w io.Writer, es *EncState) error {
	if es.wire {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(" ", es.depth*es.indent))
}

func applyColor(es *EncState, nodeType ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(nodeType, attr, v)
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.ObjectType:
		return encodeObject(node, w, es)
	case ir.ArrayType:
		return encodeArray(node, w, es)
	case ir.StringType:
		return encodeString(node, w, es)
	case ir.NumberType:
		return encodeNumber(node, w, es)
	case ir.BoolType:
		return encodeBool(node, w, es)
	case ir.NullType:
		return writeString(w, applyColor(es, ir.NullType, ValueColor, "null"))
	default:
		return errors.Wrapf(ErrUnsupportedValue, "node type %s at %q", node.Type, node.KPath())
	}
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Fields) == 0 {
		return writeString(w, applyColor(es, ir.ObjectType, SepColor, "{}"))
	}
	if err := writeString(w, applyColor(es, ir.ObjectType, SepColor, "{")); err != nil {
		return err
	}
	es.depth++
	for i, field := range node.Fields {
		if i > 0 {
			if err := writeString(w, applyColor(es, ir.ObjectType, SepColor, ",")); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := writeField(w, field.String, es); err != nil {
			return err
		}
		if err := encode(node.Values[i], w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, applyColor(es, ir.ObjectType, SepColor, "}"))
}

func writeField(w io.Writer, f string, es *EncState) error {
	q, err := quoteString(f)
	if err != nil {
		return err
	}
	sep := ": "
	if es.wire {
		sep = ":"
	}
	return writeString(w, applyColor(es, ir.ObjectType, FieldColor, q)+applyColor(es, ir.ObjectType, SepColor, sep))
}

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Values) == 0 {
		return writeString(w, applyColor(es, ir.ArrayType, SepColor, "[]"))
	}
	if err := writeString(w, applyColor(es, ir.ArrayType, SepColor, "[")); err != nil {
		return err
	}
	es.depth++
	for i, v := range node.Values {
		if i > 0 {
			if err := writeString(w, applyColor(es, ir.ArrayType, SepColor, ",")); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, applyColor(es, ir.ArrayType, SepColor, "]"))
}

func quoteString(v string) (string, error) {
	return quoter.MarshalToString(v)
}

func encodeString(node *ir.Node, w io.Writer, es *EncState) error {
	q, err := quoteString(node.String)
	if err != nil {
		return err
	}
	return writeString(w, applyColor(es, ir.StringType, ValueColor, q))
}

func encodeNumber(node *ir.Node, w io.Writer, es *EncState) error {
	v, err := numberText(node)
	if err != nil {
		return err
	}
	return writeString(w, applyColor(es, ir.NumberType, ValueColor, v))
}

// numberText renders a number node. Literal text from parsing is kept.
// Doubles always carry a fraction or an exponent so that they parse back
// as doubles.
func numberText(node *ir.Node) (string, error) {
	switch {
	case node.Number != "":
		return node.Number, nil
	case node.Int64 != nil:
		return strconv.FormatInt(*node.Int64, 10), nil
	case node.Float64 != nil:
		f := *node.Float64
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return "", errors.Wrapf(ErrUnsupportedValue, "%v at %q", f, node.KPath())
		}
		s := strconv.FormatFloat(f, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		return s, nil
	default:
		return "", errors.Wrapf(ErrUnsupportedValue, "number without value at %q", node.KPath())
	}
}

func encodeBool(node *ir.Node, w io.Writer, es *EncState) error {
	return writeString(w, applyColor(es, ir.BoolType, ValueColor, strconv.FormatBool(node.Bool)))
}
