package parse

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/signadot/fieldmap/debug"
	"github.com/signadot/fieldmap/ir"
)

var ErrParse = errors.New("parse error")

// Parse reads a single document from d. The format defaults to JSON.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	var (
		res *ir.Node
		err error
	)
	if pOpts.format.IsYAML() {
		res, err = parseYAML(d)
	} else {
		res, err = parseJSON(d)
	}
	if err != nil {
		return nil, err
	}
	if debug.Parse() {
		debug.Logf("parsed %s document: %v", pOpts.format, res)
	}
	return res, nil
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

func ParseReader(r io.Reader, opts ...ParseOption) (*ir.Node, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read")
	}
	return Parse(d, opts...)
}
