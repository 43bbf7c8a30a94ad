package fieldmap

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
	"github.com/signadot/fieldmap/ir"
)

func objectKeys(node *ir.Node) []string {
	res := make([]string, len(node.Fields))
	for i, f := range node.Fields {
		res[i] = f.String
	}
	return res
}

func TestMapSortedKeys(t *testing.T) {
	c := Map(StringKey[string](), Int[int]())
	in := map[string]int{"b": 2, "c": 3, "a": 1}
	node, err := c.Encode(&in)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, objectKeys(node)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	out, err := DecodeWith(c, node)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestMapDecodeReplaces(t *testing.T) {
	c := Map(StringKey[string](), String[string]())
	v := map[string]string{"old": "x"}
	node := ir.FromKeyVals([]ir.KeyVal{{Key: "new", Val: ir.FromString("y")}})
	if err := c.Decode(node, &v); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(map[string]string{"new": "y"}, v); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestIntKey(t *testing.T) {
	c := Map(IntKey[int](), String[string]())
	in := map[int]string{-1: "neg", 10: "ten", 2: "two"}
	node, err := c.Encode(&in)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"-1", "10", "2"}, objectKeys(node)); diff != "" {
		t.Errorf("keys sort as text (-want +got):\n%s", diff)
	}
	out, err := DecodeWith(c, node)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	uc := Map(IntKey[uint64](), Bool[bool]())
	uin := map[uint64]bool{18446744073709551615: true}
	node, err = uc.Encode(&uin)
	if err != nil {
		t.Fatal(err)
	}
	if got := objectKeys(node)[0]; got != "18446744073709551615" {
		t.Errorf("uint key %q", got)
	}
	uout, err := DecodeWith(uc, node)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(uin, uout); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestIntKeyMismatch(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{{Key: "one", Val: ir.FromString("x")}})
	_, err := DecodeWith(Map(IntKey[int](), String[string]()), node)
	var te *TypeError
	if !errors.As(err, &te) {
		t.Fatalf("expected *TypeError, got %v", err)
	}
	if te.Expected != "map key" || te.Path != "one" {
		t.Errorf("got %+v", te)
	}
}

type hue int

const (
	red hue = iota
	blue
)

func (h hue) MarshalText() ([]byte, error) {
	switch h {
	case red:
		return []byte("red"), nil
	case blue:
		return []byte("blue"), nil
	}
	return nil, errors.Newf("no name for hue %d", int(h))
}

func (h *hue) UnmarshalText(d []byte) error {
	switch string(d) {
	case "red":
		*h = red
	case "blue":
		*h = blue
	default:
		return errors.Newf("unknown hue %q", d)
	}
	return nil
}

type palette struct {
	Paint map[hue]float64
}

var paletteFields = Struct(
	F("paint", func(p *palette) *map[hue]float64 { return &p.Paint }, Map(TextKey[hue](), Float[float64]())),
)

func (palette) FieldSet() *FieldSet[palette] { return paletteFields }

func TestTextKey(t *testing.T) {
	in := palette{Paint: map[hue]float64{red: 0.5, blue: 1.5}}
	node, err := Encode(in)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"blue", "red"}, objectKeys(ir.Get(node, "paint"))); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	out, err := Decode[palette](node)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestTextKeyMarshalError(t *testing.T) {
	_, err := Encode(palette{Paint: map[hue]float64{hue(7): 1}})
	var me *MarshalError
	if !errors.As(err, &me) {
		t.Fatalf("expected *MarshalError, got %v", err)
	}
	if me.Path != "paint" {
		t.Errorf("path %q", me.Path)
	}

	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: "paint", Val: ir.FromKeyVals([]ir.KeyVal{{Key: "green", Val: ir.FromFloat(1)}})},
	})
	if _, err := Decode[palette](node); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("unknown text key: %v", err)
	}
}

func TestMapOfNamedMoves(t *testing.T) {
	type scores map[string]int
	c := MapOf[scores](StringKey[string](), Int[int]())
	in := scores{"x": 1}
	node, err := c.EncodeMove(&in)
	if err != nil {
		t.Fatal(err)
	}
	if in != nil {
		t.Errorf("moved-from map should be nil")
	}
	var out scores
	if err := c.DecodeMove(node, &out); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(scores{"x": 1}, out); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if node.Type != ir.NullType {
		t.Errorf("consumed object should be null, got %s", node.Type)
	}
	if err := c.Decode(ir.NewArray(), &out); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("array into map: %v", err)
	}
}
