package format

import (
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
)

// Format selects the text form of a tree.
type Format int

const (
	JSONFormat Format = iota
	YAMLFormat
)

var ErrBadFormat = errors.New("bad format")

// names maps every accepted spelling to its format. Lookups are lower case.
var names = map[string]Format{
	"j":    JSONFormat,
	"json": JSONFormat,
	"y":    YAMLFormat,
	"yaml": YAMLFormat,
	"yml":  YAMLFormat,
}

// ParseFormat reads a format name as given on a command line: "json" or
// "j", "yaml", "yml" or "y", in any case.
func ParseFormat(v string) (Format, error) {
	if f, ok := names[strings.ToLower(v)]; ok {
		return f, nil
	}
	return 0, errors.Wrapf(ErrBadFormat, "%q", v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

// MarshalText gives the canonical name, which ParseFormat accepts.
func (f Format) MarshalText() ([]byte, error) {
	if f < JSONFormat || f > YAMLFormat {
		return nil, errors.Newf("<err: %d is not a format>", int(f))
	}
	return []byte(f.Suffix()[1:]), nil
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsJSON() bool { return f == JSONFormat }
func (f Format) IsYAML() bool { return f == YAMLFormat }

// Suffix is the file extension written for f, with its dot; "" for an
// unknown format.
func (f Format) Suffix() string {
	switch f {
	case JSONFormat:
		return ".json"
	case YAMLFormat:
		return ".yaml"
	}
	return ""
}

// FromSuffix picks the format of a file by its extension. Anything that is
// not a YAML extension is read as JSON.
func FromSuffix(name string) Format {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	if f, ok := names[strings.ToLower(ext)]; ok && len(ext) > 1 {
		return f
	}
	return JSONFormat
}

// AllFormats lists the formats in preference order.
func AllFormats() []Format {
	return []Format{JSONFormat, YAMLFormat}
}
