package codegen

import (
	"go/ast"
	"go/token"
	"go/types"
	"strings"

	"github.com/cockroachdb/errors"
)

// HasDirective reports whether doc carries the generation directive on a
// line of its own.
func HasDirective(doc *ast.CommentGroup) bool {
	if doc == nil {
		return false
	}
	for _, c := range doc.List {
		if strings.TrimSpace(c.Text) == Directive {
			return true
		}
	}
	return false
}

// ExtractStructs finds the struct types marked with the directive in files
// and collects their tagged fields. info must hold the definitions of the
// checked files.
func ExtractStructs(fset *token.FileSet, files []*ast.File, info *types.Info) ([]*StructInfo, error) {
	var res []*StructInfo
	for _, file := range files {
		for _, decl := range file.Decls {
			genDecl, ok := decl.(*ast.GenDecl)
			if !ok || genDecl.Tok != token.TYPE {
				continue
			}
			for _, spec := range genDecl.Specs {
				typeSpec := spec.(*ast.TypeSpec)
				doc := typeSpec.Doc
				if doc == nil && len(genDecl.Specs) == 1 {
					doc = genDecl.Doc
				}
				if !HasDirective(doc) {
					continue
				}
				si, err := extractStruct(fset, typeSpec, info)
				if err != nil {
					return nil, err
				}
				res = append(res, si)
			}
		}
	}
	return res, nil
}

func extractStruct(fset *token.FileSet, typeSpec *ast.TypeSpec, info *types.Info) (*StructInfo, error) {
	pos := fset.Position(typeSpec.Pos())
	obj, ok := info.Defs[typeSpec.Name].(*types.TypeName)
	if !ok {
		return nil, errors.Newf("%s: no type information for %s", pos, typeSpec.Name.Name)
	}
	named, ok := obj.Type().(*types.Named)
	if !ok {
		return nil, errors.Newf("%s: %s is not a defined type", pos, obj.Name())
	}
	if named.TypeParams().Len() > 0 {
		return nil, errors.Wrapf(ErrUnsupportedType, "%s: generic type %s", pos, obj.Name())
	}
	st, ok := named.Underlying().(*types.Struct)
	if !ok {
		return nil, errors.Newf("%s: %s is not a struct", pos, obj.Name())
	}

	si := &StructInfo{Name: obj.Name(), Named: named, Pos: pos}
	seen := map[string]string{}
	for i := 0; i < st.NumFields(); i++ {
		f := st.Field(i)
		key, ok, err := ParseFieldTag(st.Tag(i))
		if err != nil {
			return nil, errors.Wrapf(err, "%s: %s.%s", pos, si.Name, f.Name())
		}
		if !ok {
			continue
		}
		if other, dup := seen[key]; dup {
			return nil, errors.Newf("%s: %s.%s and %s.%s share key %q", pos, si.Name, other, si.Name, f.Name(), key)
		}
		seen[key] = f.Name()
		si.Fields = append(si.Fields, &FieldInfo{Name: f.Name(), Key: key, Type: f.Type()})
	}
	return si, nil
}
