package debug

import (
	"math"
	"testing"

	"github.com/signadot/fieldmap/ir"
)

func TestBoolEnv(t *testing.T) {
	t.Setenv("FIELDMAP_TEST_FLAG", "true")
	if !boolEnv("FIELDMAP_TEST_FLAG") {
		t.Error("expected true")
	}
	t.Setenv("FIELDMAP_TEST_FLAG", "nope")
	if boolEnv("FIELDMAP_TEST_FLAG") {
		t.Error("unparsable value should be false")
	}
	if boolEnv("FIELDMAP_TEST_UNSET") {
		t.Error("unset should be false")
	}
}

func TestNodeString(t *testing.T) {
	node := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromString("a")})
	if got := nodeString(node); got != `[1,"a"]` {
		t.Errorf("got %s", got)
	}
	if got := nodeString(nil); got != "<nil>" {
		t.Errorf("got %s", got)
	}
	if got := nodeString(ir.FromFloat(math.NaN())); got != "<unencodable node>" {
		t.Errorf("got %s", got)
	}
	Logf("logging %s and %d", node, 3)
}
