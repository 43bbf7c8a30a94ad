package main

import (
	"bytes"
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/signadot/fieldmap"
	"github.com/signadot/fieldmap/encode"
	"github.com/signadot/fieldmap/internal/example"
	"github.com/signadot/fieldmap/ir"
)

// demo encodes the demo person, decodes the tree destructively, encodes
// the result again and shows both encodings along with the consumed tree.
func demo(cfg *DemoConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Demo.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: demo takes no arguments", cli.ErrUsage)
	}
	p := example.DemoPerson()
	node, err := fieldmap.Encode(p)
	if err != nil {
		return err
	}
	first, err := plain(node)
	if err != nil {
		return err
	}
	if err := section(cfg.MainConfig, cc, "first encoding", node); err != nil {
		return err
	}

	p2, err := fieldmap.DecodeMove[example.Person](node)
	if err != nil {
		return err
	}
	node2, err := fieldmap.Encode(p2)
	if err != nil {
		return err
	}
	second, err := plain(node2)
	if err != nil {
		return err
	}
	if err := section(cfg.MainConfig, cc, "second encoding", node2); err != nil {
		return err
	}
	if err := section(cfg.MainConfig, cc, "consumed tree", node); err != nil {
		return err
	}
	if cfg.NoDiff {
		return nil
	}

	fmt.Fprintln(cc.Out, "# diff")
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(first, second, false)
	if len(diffs) == 1 && diffs[0].Type == diffmatchpatch.DiffEqual {
		fmt.Fprintln(cc.Out, "encodings are identical")
		return nil
	}
	fmt.Fprintln(cc.Out, dmp.DiffPrettyText(diffs))
	return nil
}

func section(cfg *MainConfig, cc *cli.Context, title string, node *ir.Node) error {
	fmt.Fprintf(cc.Out, "# %s\n", title)
	return cfg.write(cc.Out, node)
}

func plain(node *ir.Node) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
