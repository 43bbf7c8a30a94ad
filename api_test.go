package fieldmap

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
	"github.com/signadot/fieldmap/ir"
)

func TestWithConverters(t *testing.T) {
	c := Map(StringKey[string](), Slice(Float[float64]()))
	in := map[string][]float64{"x": {1, 2.5}, "y": nil}
	node, err := EncodeWith(c, in)
	if err != nil {
		t.Fatal(err)
	}
	out, err := DecodeWith(c, node)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string][]float64{"x": {1, 2.5}, "y": {}}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	moved, err := EncodeMoveWith(c, &in)
	if err != nil {
		t.Fatal(err)
	}
	if ir.Compare(node, moved) != 0 || in != nil {
		t.Error("EncodeMoveWith should match EncodeWith and consume the map")
	}
	out, err = DecodeMoveWith(c, moved)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestDecodeErrorReturnsZero(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: "name", Val: ir.FromString("x")},
		{Key: "age", Val: ir.FromBool(true)},
	})
	for _, decode := range []func(*ir.Node) (member, error){Decode[member], DecodeMove[member]} {
		out, err := decode(node.Clone())
		if !errors.Is(err, ErrTypeMismatch) {
			t.Errorf("expected type mismatch, got %v", err)
		}
		if diff := cmp.Diff(member{}, out); diff != "" {
			t.Errorf("(-want +got):\n%s", diff)
		}
	}
}
