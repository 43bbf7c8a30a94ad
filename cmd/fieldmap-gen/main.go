package main

import (
	"context"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
	"github.com/signadot/fieldmap/codegen"
)

func main() {
	cli.MainContext(context.Background(), MainCommand())
}

func MainCommand() *cli.Command {
	cfg := &Config{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}

	return cli.NewCommand("fieldmap-gen").
		WithSynopsis("fieldmap-gen [opts]").
		WithDescription("Generate fieldmap field sets for structs marked with " + codegen.Directive + ".").
		WithOpts(sOpts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return run(cfg, cc, args)
		})
}

type Config struct {
	OutputFile string `cli:"name=o desc='output file for generated code (default: <package>_fieldmap.go)'"`
	Dir        string `cli:"name=dir desc='directory to scan for Go files (default: current directory)'"`
	Recursive  bool   `cli:"name=recursive desc='scan subdirectories recursively'"`
}

func run(cfg *Config, cc *cli.Context, args []string) error {
	dir := cfg.Dir
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
	}

	pkgs, err := codegen.DiscoverPackages(dir, cfg.Recursive)
	if err != nil {
		return fmt.Errorf("failed to discover packages: %w", err)
	}
	if len(pkgs) == 0 {
		return fmt.Errorf("no Go packages found in %q", dir)
	}
	if cfg.OutputFile != "" && len(pkgs) > 1 {
		return fmt.Errorf("%w: -o requires a single package, found %d", cli.ErrUsage, len(pkgs))
	}

	for _, pkg := range pkgs {
		if err := processPackage(cfg, cc, pkg); err != nil {
			return fmt.Errorf("failed to process package %q: %w", pkg.Path, err)
		}
	}
	return nil
}

func processPackage(cfg *Config, cc *cli.Context, pkg *codegen.PackageInfo) error {
	src, ok, err := codegen.GeneratePackage(pkg.Dir)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	out := cfg.OutputFile
	if out == "" {
		out = codegen.OutputPath(pkg)
	}
	if err := os.WriteFile(out, src, 0644); err != nil {
		return fmt.Errorf("failed to write output file %q: %w", out, err)
	}
	fmt.Fprintf(cc.Out, "wrote %s\n", out)
	return nil
}
