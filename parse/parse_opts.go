package parse

import "github.com/signadot/fieldmap/format"

type parseOpts struct {
	format format.Format
}

type ParseOption func(*parseOpts)

func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}

func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}

func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}

// FormatFromOpts extracts the format from parse options.
func FormatFromOpts(opts ...ParseOption) format.Format {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts.format
}
