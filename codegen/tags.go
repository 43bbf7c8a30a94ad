package codegen

import (
	"reflect"
	"strings"

	"github.com/cockroachdb/errors"
)

const (
	// TagName is the struct tag naming the object key of a field.
	TagName = "fieldmap"

	// Directive marks a struct type for generation in its doc comment.
	Directive = "//fieldmap:generate"
)

// ParseFieldTag returns the object key in the fieldmap entry of a struct
// tag. ok is false when the field is not converted: there is no entry, or
// the key is "-".
//
// Options after a comma are reserved; none are defined.
func ParseFieldTag(tag string) (key string, ok bool, err error) {
	v, found := reflect.StructTag(tag).Lookup(TagName)
	if !found {
		return "", false, nil
	}
	key, opts, _ := strings.Cut(v, ",")
	if opts != "" {
		return "", false, errors.Newf("unknown %s tag option %q", TagName, opts)
	}
	switch key {
	case "-":
		return "", false, nil
	case "":
		return "", false, errors.Newf("empty %s tag", TagName)
	}
	return key, true, nil
}
