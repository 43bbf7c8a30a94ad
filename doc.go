// Package fieldmap converts statically declared Go structures to and from
// ir.Node trees.
//
// # Declaring fields
//
// A structure opts in by declaring its field set once, binding a name and
// a converter to each field it wants converted. Fields not listed are
// neither encoded nor decoded.
//
//	type Person struct {
//	    Name      string
//	    Age       int
//	    Telphones []string
//	}
//
//	var personFields = fieldmap.Struct(
//	    fieldmap.F("name", func(p *Person) *string { return &p.Name }, fieldmap.String[string]()),
//	    fieldmap.F("age", func(p *Person) *int { return &p.Age }, fieldmap.Int[int]()),
//	    fieldmap.F("telphones", func(p *Person) *[]string { return &p.Telphones },
//	        fieldmap.Slice(fieldmap.String[string]())),
//	).Defaults(func() Person { return Person{Age: 100} })
//
//	func (Person) FieldSet() *fieldmap.FieldSet[Person] { return personFields }
//
// The converter constructors are the type categories: Int, Float and Bool
// (primitive), String, Slice and SliceOf (sequence), Map and MapOf (map),
// and a *FieldSet (composite). Their type constraints make a field whose
// type has no converter, or whose converter does not match, a compile
// error. cmd/fieldmap-gen generates these declarations from struct tags.
//
// # Converting
//
//	node, err := fieldmap.Encode(p)
//	p2, err := fieldmap.Decode[Person](node)
//
// Decode starts from the field set's default value and overwrites only the
// fields whose keys are present; a missing key is not an error. A node of
// the wrong kind fails with a *TypeError matching ErrTypeMismatch, and the
// whole call fails. Numbers are converted to the field type without range
// checks, so 3.9 decodes into an int as 3.
//
// EncodeMove and DecodeMove are the consuming forms: they give the same
// result and may leave their input valid but unspecified. A tree decoded
// with DecodeMove is left as a null node.
//
// # Text
//
// Marshal and Unmarshal pair the tree conversion with packages encode and
// parse. Patch applies an RFC 6902 JSON patch to a value by way of its
// encoding:
//
//	d, err := fieldmap.Marshal(p, encode.EncodeWire(true))
//	p2, err := fieldmap.Unmarshal[Person](d)
//	p3, err := fieldmap.Patch(p, []byte(`[{"op":"replace","path":"/age","value":19}]`))
//
// # Unsupported shapes
//
// There is no cycle detection. A field set that refers to itself, directly
// or through containers, is an initialization cycle in Go and does not
// compile; such types are not supported.
//
// # Related Packages
//
//   - github.com/signadot/fieldmap/ir - tree representation
//   - github.com/signadot/fieldmap/encode - tree to JSON or YAML text
//   - github.com/signadot/fieldmap/parse - JSON or YAML text to tree
//   - github.com/signadot/fieldmap/codegen - field set generation
package fieldmap
