package encode

import (
	"bytes"
	"strings"

	"github.com/signadot/fieldmap/ir"
)

// MustString renders node as compact JSON. It panics if node cannot be
// encoded.
func MustString(node *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, EncodeWire(true)); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
