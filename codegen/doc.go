// Package codegen generates fieldmap field sets for Go structs.
//
// A struct opts in with a directive in its doc comment and names the
// fields to convert with a fieldmap struct tag:
//
//	// Contact is an address book entry.
//	//
//	//fieldmap:generate
//	type Contact struct {
//	    Name   string   `fieldmap:"name"`
//	    Emails []string `fieldmap:"emails"`
//	    Notes  string   // not converted
//	}
//
// The generated <package>_fieldmap.go declares
//
//	var contactFields = fieldmap.Struct(...)
//
//	func (Contact) FieldSet() *fieldmap.FieldSet[Contact] { return contactFields }
//
// Field types are mapped to converters from their go/types description. A
// field whose type has no converter (pointers, interfaces, arrays,
// channels, functions, complex numbers, structs without a field set) is a
// generation error wrapping ErrUnsupportedType.
//
// # Related Packages
//
//   - github.com/signadot/fieldmap - field sets and converters
//   - github.com/signadot/fieldmap/cmd/fieldmap-gen - command line driver
package codegen
