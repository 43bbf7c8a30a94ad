// Package encode writes IR nodes as JSON or YAML text.
//
// # Usage
//
//	node := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "name", Val: ir.FromString("alice")},
//	    {Key: "age", Val: ir.FromInt(30)},
//	})
//	err := encode.Encode(node, os.Stdout)
//
//	// compact JSON
//	err = encode.Encode(node, w, encode.EncodeWire(true))
//
//	// YAML
//	err = encode.Encode(node, w, encode.EncodeFormat(format.YAMLFormat))
//
// Object keys are written in tree order. Doubles always carry a fraction or
// an exponent, so a double read back by package parse is again a double.
// NaN and infinities have no JSON form and yield ErrUnsupportedValue.
//
// # Related Packages
//
//   - github.com/signadot/fieldmap/ir - IR representation
//   - github.com/signadot/fieldmap/parse - Parse text to IR
package encode
