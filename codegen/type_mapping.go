package codegen

import (
	"fmt"
	"go/types"

	"github.com/cockroachdb/errors"
)

// ErrUnsupportedType is wrapped by errors for field types that have no
// converter.
var ErrUnsupportedType = errors.New("unsupported type")

// FieldmapPath is the import path of the package generated code uses.
const FieldmapPath = "github.com/signadot/fieldmap"

// typeMapper renders converter expressions for types as seen from the
// package being generated.
type typeMapper struct {
	pkg *types.Package

	// generated maps the structs of this run to their field set vars.
	generated map[*types.Named]string

	// imports collects the packages referenced by rendered types, path to
	// name.
	imports map[string]string
}

func newTypeMapper(pkg *types.Package, generated map[*types.Named]string) *typeMapper {
	return &typeMapper{
		pkg:       pkg,
		generated: generated,
		imports:   map[string]string{},
	}
}

func (m *typeMapper) qualifier(p *types.Package) string {
	if p == nil || p == m.pkg {
		return ""
	}
	m.imports[p.Path()] = p.Name()
	return p.Name()
}

// TypeString renders t as written in the generated package.
func (m *typeMapper) TypeString(t types.Type) string {
	return types.TypeString(t, m.qualifier)
}

// Converter returns the converter expression for t.
//
// Mappings:
//   - integers → fieldmap.Int[T](), floats → fieldmap.Float[T]()
//   - booleans → fieldmap.Bool[T](), strings → fieldmap.String[T]()
//   - []E → fieldmap.Slice(E), named slices → fieldmap.SliceOf[T](E)
//   - map[K]V → fieldmap.Map(K, V), named maps → fieldmap.MapOf[T](K, V)
//   - structs of this run → their field set var
//   - other structs with a FieldSet method → T{}.FieldSet()
func (m *typeMapper) Converter(t types.Type) (string, error) {
	t = types.Unalias(t)
	ts := m.TypeString(t)
	switch u := t.Underlying().(type) {
	case *types.Basic:
		info := u.Info()
		switch {
		case info&types.IsInteger != 0:
			return fmt.Sprintf("fieldmap.Int[%s]()", ts), nil
		case info&types.IsFloat != 0:
			return fmt.Sprintf("fieldmap.Float[%s]()", ts), nil
		case info&types.IsBoolean != 0:
			return fmt.Sprintf("fieldmap.Bool[%s]()", ts), nil
		case info&types.IsString != 0:
			return fmt.Sprintf("fieldmap.String[%s]()", ts), nil
		}
	case *types.Slice:
		elem, err := m.Converter(u.Elem())
		if err != nil {
			return "", err
		}
		if isNamed(t) {
			return fmt.Sprintf("fieldmap.SliceOf[%s](%s)", ts, elem), nil
		}
		return fmt.Sprintf("fieldmap.Slice(%s)", elem), nil
	case *types.Map:
		key, err := m.Key(u.Key())
		if err != nil {
			return "", err
		}
		val, err := m.Converter(u.Elem())
		if err != nil {
			return "", err
		}
		if isNamed(t) {
			return fmt.Sprintf("fieldmap.MapOf[%s](%s, %s)", ts, key, val), nil
		}
		return fmt.Sprintf("fieldmap.Map(%s, %s)", key, val), nil
	case *types.Struct:
		named, ok := t.(*types.Named)
		if !ok {
			return "", errors.Wrapf(ErrUnsupportedType, "anonymous struct %s", ts)
		}
		if v, ok := m.generated[named]; ok {
			return v, nil
		}
		if hasMethod(named, "FieldSet", 0, 1) {
			return fmt.Sprintf("%s{}.FieldSet()", ts), nil
		}
		return "", errors.Wrapf(ErrUnsupportedType, "struct %s has no field set", ts)
	}
	return "", errors.Wrapf(ErrUnsupportedType, "%s", ts)
}

// Key returns the map key codec expression for t.
func (m *typeMapper) Key(t types.Type) (string, error) {
	t = types.Unalias(t)
	ts := m.TypeString(t)
	if hasMethod(t, "MarshalText", 0, 2) && hasMethod(types.NewPointer(t), "UnmarshalText", 1, 1) {
		return fmt.Sprintf("fieldmap.TextKey[%s]()", ts), nil
	}
	if b, ok := t.Underlying().(*types.Basic); ok {
		switch {
		case b.Info()&types.IsString != 0:
			return fmt.Sprintf("fieldmap.StringKey[%s]()", ts), nil
		case b.Info()&types.IsInteger != 0:
			return fmt.Sprintf("fieldmap.IntKey[%s]()", ts), nil
		}
	}
	return "", errors.Wrapf(ErrUnsupportedType, "map key %s", ts)
}

func isNamed(t types.Type) bool {
	_, ok := t.(*types.Named)
	return ok
}

// hasMethod reports whether the method set of t has the exported method
// name with the given numbers of parameters and results.
func hasMethod(t types.Type, name string, params, results int) bool {
	sel := types.NewMethodSet(t).Lookup(nil, name)
	if sel == nil {
		return false
	}
	sig, ok := sel.Type().(*types.Signature)
	if !ok {
		return false
	}
	return sig.Params().Len() == params && sig.Results().Len() == results
}
