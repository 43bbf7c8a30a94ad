package main

import (
	"bytes"
	"testing"

	"github.com/scott-cotton/cli"
	"github.com/signadot/fieldmap/encode"
	"github.com/signadot/fieldmap/format"
	"github.com/signadot/fieldmap/parse"
)

func TestParseOptsFormat(t *testing.T) {
	yaml := format.YAMLFormat
	tests := []struct {
		cfg  *MainConfig
		name string
		want format.Format
	}{
		{&MainConfig{}, "person.json", format.JSONFormat},
		{&MainConfig{}, "person.yaml", format.YAMLFormat},
		{&MainConfig{}, "-", format.JSONFormat},
		{&MainConfig{Y: true}, "-", format.YAMLFormat},
		{&MainConfig{J: true}, "person.yml", format.JSONFormat},
		{&MainConfig{J: true, InFormat: &yaml}, "person.json", format.YAMLFormat},
	}
	for _, tt := range tests {
		if got := parse.FormatFromOpts(tt.cfg.parseOpts(tt.name)...); got != tt.want {
			t.Errorf("%+v %s: got %s want %s", tt.cfg, tt.name, got, tt.want)
		}
	}
}

func TestEncOptsFormat(t *testing.T) {
	yaml := format.YAMLFormat
	cfg := &MainConfig{Main: &cli.Command{}, OutFormat: &yaml}
	if got := encode.FormatFromOpts(cfg.encOpts(bytes.NewBuffer(nil))...); got != format.YAMLFormat {
		t.Errorf("got %s", got)
	}
	cfg = &MainConfig{Main: &cli.Command{}, Y: true}
	if got := encode.FormatFromOpts(cfg.encOpts(bytes.NewBuffer(nil))...); got != format.YAMLFormat {
		t.Errorf("got %s", got)
	}
}
