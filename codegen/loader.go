package codegen

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/tools/go/packages"
)

// LoadPackage type checks the package in dir.
//
// Type errors are tolerated as long as type information is available: the
// generated file a package refers to may not exist yet.
func LoadPackage(dir string) (*packages.Package, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedImports |
			packages.NeedTypes | packages.NeedSyntax | packages.NeedTypesInfo,
		Dir: dir,
	}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, errors.Wrapf(err, "load package in %q", dir)
	}
	if len(pkgs) == 0 {
		return nil, errors.Newf("no package in %q", dir)
	}
	pkg := pkgs[0]
	if pkg.Types == nil || pkg.TypesInfo == nil {
		if len(pkg.Errors) > 0 {
			return nil, errors.Wrapf(pkg.Errors[0], "load package in %q", dir)
		}
		return nil, errors.Newf("package in %q has no type information", dir)
	}
	return pkg, nil
}
