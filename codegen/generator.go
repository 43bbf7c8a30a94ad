package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"go/types"
	"slices"
	"unicode"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

const header = "// Code generated by fieldmap-gen. DO NOT EDIT.\n\n"

// FieldSetVar is the name of the package level var holding the field set
// of the struct typeName.
func FieldSetVar(typeName string) string {
	r, n := utf8.DecodeRuneInString(typeName)
	return string(unicode.ToLower(r)) + typeName[n:] + "Fields"
}

// Generate renders the gofmt'd source declaring the field sets of structs,
// which belong to pkg.
func Generate(pkg *types.Package, structs []*StructInfo) ([]byte, error) {
	generated := make(map[*types.Named]string, len(structs))
	for _, si := range structs {
		generated[si.Named] = FieldSetVar(si.Name)
	}
	m := newTypeMapper(pkg, generated)

	body := bytes.NewBuffer(nil)
	for _, si := range structs {
		if err := generateStruct(body, m, si); err != nil {
			return nil, err
		}
	}

	out := bytes.NewBuffer(nil)
	out.WriteString(header)
	fmt.Fprintf(out, "package %s\n\n", pkg.Name())
	m.imports[FieldmapPath] = "fieldmap"
	paths := lo.Keys(m.imports)
	slices.Sort(paths)
	out.WriteString("import (\n")
	for _, p := range paths {
		fmt.Fprintf(out, "\t%q\n", p)
	}
	out.WriteString(")\n")
	out.Write(body.Bytes())

	res, err := format.Source(out.Bytes())
	if err != nil {
		return nil, errors.Wrapf(err, "format generated code\n%s", out.String())
	}
	return res, nil
}

func generateStruct(w *bytes.Buffer, m *typeMapper, si *StructInfo) error {
	v := FieldSetVar(si.Name)
	if len(si.Fields) == 0 {
		fmt.Fprintf(w, "\nvar %s = fieldmap.Struct[%s]()\n\n", v, si.Name)
		fmt.Fprintf(w, "func (%s) FieldSet() *fieldmap.FieldSet[%s] { return %s }\n", si.Name, si.Name, v)
		return nil
	}
	fmt.Fprintf(w, "\nvar %s = fieldmap.Struct(\n", v)
	for _, f := range si.Fields {
		conv, err := m.Converter(f.Type)
		if err != nil {
			return errors.Wrapf(err, "%s: field %s.%s", si.Pos, si.Name, f.Name)
		}
		fmt.Fprintf(w, "\tfieldmap.F(%q, func(v *%s) *%s { return &v.%s }, %s),\n",
			f.Key, si.Name, m.TypeString(f.Type), f.Name, conv)
	}
	w.WriteString(")\n\n")
	fmt.Fprintf(w, "func (%s) FieldSet() *fieldmap.FieldSet[%s] { return %s }\n", si.Name, si.Name, v)
	return nil
}

// GeneratePackage loads the package in dir and renders the field sets of
// its marked structs. ok is false if the package has none.
func GeneratePackage(dir string) (src []byte, ok bool, err error) {
	pkg, err := LoadPackage(dir)
	if err != nil {
		return nil, false, err
	}
	structs, err := ExtractStructs(pkg.Fset, pkg.Syntax, pkg.TypesInfo)
	if err != nil {
		return nil, false, err
	}
	if len(structs) == 0 {
		return nil, false, nil
	}
	src, err = Generate(pkg.Types, structs)
	if err != nil {
		return nil, false, err
	}
	return src, true, nil
}
