package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"github.com/signadot/fieldmap/encode"
	"github.com/signadot/fieldmap/format"
	"github.com/signadot/fieldmap/ir"
	"github.com/signadot/fieldmap/parse"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	WireOut bool `cli:"name=wire desc='output in compact format'"`
	Gops    bool `cli:"name=gops desc='start the gops diagnostics agent'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) flagFormat() (format.Format, bool) {
	switch {
	case cfg.Y:
		return format.YAMLFormat, true
	case cfg.J:
		return format.JSONFormat, true
	}
	return format.JSONFormat, false
}

// parseOpts picks the input format: -I, then -j/-y, then the suffix of
// name.
func (cfg *MainConfig) parseOpts(name string) []parse.ParseOption {
	fmat, ok := cfg.flagFormat()
	if !ok {
		fmat = format.FromSuffix(name)
	}
	if cfg.InFormat != nil {
		fmat = *cfg.InFormat
	}
	return []parse.ParseOption{parse.ParseFormat(fmat)}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	fmat, _ := cfg.flagFormat()
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	res := []encode.EncodeOption{
		encode.EncodeFormat(fmat),
		encode.EncodeWire(cfg.WireOut),
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func (cfg *MainConfig) write(w io.Writer, node *ir.Node) error {
	return encode.Encode(node, w, cfg.encOpts(w)...)
}

// readArg reads the document named by arg, "-" being stdin.
func readArg(arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(arg)
}

type DemoConfig struct {
	*MainConfig

	NoDiff bool `cli:"name=nodiff desc='do not print the diff of the two encodings'"`

	Demo *cli.Command
}

type DecodeConfig struct {
	*MainConfig

	Decode *cli.Command
}

type PatchConfig struct {
	*MainConfig

	PatchFile string `cli:"name=p desc='json patch file (required)'"`

	Patch *cli.Command
}
