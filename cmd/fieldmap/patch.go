package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
	"github.com/signadot/fieldmap"
	"github.com/signadot/fieldmap/internal/example"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.PatchFile == "" {
		return fmt.Errorf("%w: patch requires -p patchfile", cli.ErrUsage)
	}
	ops, err := os.ReadFile(cfg.PatchFile)
	if err != nil {
		return fmt.Errorf("error reading patch %s: %w", cfg.PatchFile, err)
	}

	var p example.Person
	switch len(args) {
	case 0:
		p = example.DemoPerson()
	case 1:
		d, err := readArg(args[0])
		if err != nil {
			return fmt.Errorf("error reading %s: %w", args[0], err)
		}
		p, err = fieldmap.Unmarshal[example.Person](d, cfg.parseOpts(args[0])...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", args[0], err)
		}
	default:
		return fmt.Errorf("%w: patch takes at most one file", cli.ErrUsage)
	}

	res, err := fieldmap.Patch(p, ops)
	if err != nil {
		return fmt.Errorf("error patching with %s: %w", cfg.PatchFile, err)
	}
	node, err := fieldmap.Encode(res)
	if err != nil {
		return err
	}
	return cfg.write(cc.Out, node)
}
