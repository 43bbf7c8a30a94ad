package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/fieldmap"
	"github.com/signadot/fieldmap/internal/example"
	"github.com/signadot/fieldmap/parse"
)

func decode(cfg *DecodeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Decode.Parse(cc, args)
	if err != nil {
		return err
	}
	arg := "-"
	switch len(args) {
	case 0:
	case 1:
		arg = args[0]
	default:
		return fmt.Errorf("%w: decode takes at most one file", cli.ErrUsage)
	}
	d, err := readArg(arg)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", arg, err)
	}
	node, err := parse.Parse(d, cfg.parseOpts(arg)...)
	if err != nil {
		return fmt.Errorf("error parsing %s: %w", arg, err)
	}
	p, err := fieldmap.DecodeMove[example.Person](node)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", arg, err)
	}
	out, err := fieldmap.Encode(p)
	if err != nil {
		return err
	}
	return cfg.write(cc.Out, out)
}
