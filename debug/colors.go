package debug

import (
	"os"

	"github.com/conformat/conform/ir"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// attr mirrors the emitter's per-role color slots (key vs. value vs.
// separator), not just per-Type, so a dump reads the same way the CON text
// itself is structured.
type attr int

const (
	attrKey attr = iota
	attrValue
	attrSep
)

type colorable struct {
	Type ir.Type
	Attr attr
}

type colors struct {
	Default func(string, ...any) string
	Map     map[colorable]func(string, ...any) string
}

func newColors() *colors {
	c := &colors{
		Default: func(s string, _ ...any) string { return s },
		Map:     map[colorable]func(string, ...any) string{},
	}
	c.Map[colorable{Type: ir.ObjectType, Attr: attrKey}] = color.RGB(128, 168, 196).SprintfFunc()
	c.Map[colorable{Type: ir.ArrayType, Attr: attrKey}] = color.RGB(128, 168, 196).SprintfFunc()
	c.Map[colorable{Type: ir.ObjectType, Attr: attrSep}] = color.RGB(255, 0, 196).SprintfFunc()

	c.Map[colorable{Type: ir.NullType, Attr: attrValue}] = color.RGB(168, 0, 196).SprintfFunc()
	c.Map[colorable{Type: ir.BoolType, Attr: attrValue}] = color.CyanString
	c.Map[colorable{Type: ir.NumberType, Attr: attrValue}] = color.RGB(128, 216, 236).SprintfFunc()
	c.Map[colorable{Type: ir.StringType, Attr: attrValue}] = color.RGB(8, 196, 16).SprintfFunc()
	return c
}

func (c *colors) get(t ir.Type, a attr) func(string, ...any) string {
	if f, ok := c.Map[colorable{Type: t, Attr: a}]; ok {
		return f
	}
	return c.Default
}

// shouldColor decides whether Dump should colorize its output for w: forced
// on by CON_DEBUG_COLOR, otherwise only when w is a terminal.
func shouldColor(w any) bool {
	if Color() {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
