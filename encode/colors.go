package encode

import (
	"github.com/fatih/color"
	"github.com/signadot/fieldmap/ir"
)

type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	FieldColor ColorAttr = iota
	ValueColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range ir.Types() {
		colors.Map[Colorable{Type: t, Attr: SepColor}] = color.RGB(255, 0, 196).SprintfFunc()
	}
	colors.Map[Colorable{Type: ir.ObjectType, Attr: FieldColor}] = color.RGB(196, 96, 16).SprintfFunc()
	colors.Map[Colorable{Type: ir.NumberType, Attr: ValueColor}] = color.RGB(128, 216, 236).SprintfFunc()
	colors.Map[Colorable{Type: ir.StringType, Attr: ValueColor}] = color.RGB(136, 196, 96).SprintfFunc()
	colors.Map[Colorable{Type: ir.BoolType, Attr: ValueColor}] = color.RGB(236, 128, 236).SprintfFunc()
	colors.Map[Colorable{Type: ir.NullType, Attr: ValueColor}] = color.RGB(236, 128, 128).SprintfFunc()
	return colors
}

func colorDefault(s string, _ ...any) string {
	return s
}

func (c *Colors) Color(t ir.Type, attr ColorAttr, v string) string {
	f, ok := c.Map[Colorable{Type: t, Attr: attr}]
	if !ok {
		return c.Default(v)
	}
	return f("%s", v)
}
