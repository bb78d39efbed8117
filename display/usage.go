package display

import (
	"fmt"
	"strings"

	"github.com/jasonwhite/darg/core"
)

// DefaultWidth is the column at which usage lines wrap.
const DefaultWidth = 80

// Usage renders the one-line summary for the model: the program name
// followed by every option and every positional argument in declaration
// order, word-wrapped at 80 columns with continuation lines aligned under
// the program name. The output is deterministic and independent of any
// parse call.
func Usage(m *core.Model, program string) string {
	return UsageWidth(m, program, DefaultWidth)
}

// UsageWidth is Usage with a caller-chosen wrap column.
func UsageWidth(m *core.Model, program string, width int) string {
	items := make([]string, 0, len(m.Options())+len(m.Arguments()))
	for _, o := range m.Options() {
		items = append(items, optionItem(o))
	}
	for _, a := range m.Arguments() {
		items = append(items, argumentItem(a))
	}
	return wrapItems(program, items, width)
}

// optionItem renders one option with its canonical name, e.g. "[--help]"
// or "[--threads=<N>]".
func optionItem(o *core.OptionSpec) string {
	name := core.NameToOption(o.Canonical())
	if !o.TakesValue() {
		return fmt.Sprintf("[%s]", name)
	}
	return fmt.Sprintf("[%s=<%s>]", name, o.MetaVar())
}

// argumentItem renders one positional argument per its multiplicity.
func argumentItem(a *core.ArgumentSpec) string {
	name := a.Name()
	mult := a.Bounds()
	switch {
	case mult.Upper == core.Unbounded:
		if mult.Lower == 0 {
			return fmt.Sprintf("[%s...]", name)
		}
		return fmt.Sprintf("%s [%s...]", name, name)
	case mult.Upper == 1:
		if mult.Lower == 0 {
			return fmt.Sprintf("[%s]", name)
		}
		return name
	default:
		return fmt.Sprintf("[%s... up to %d times]", name, mult.Upper)
	}
}

// wrapItems lays the items out after the program name, wrapping at width
// and indenting continuation lines to align under the program name.
func wrapItems(program string, items []string, width int) string {
	var b strings.Builder
	b.WriteString(program)

	indent := strings.Repeat(" ", len(program)+1)
	col := len(program)
	for _, item := range items {
		if col+1+len(item) > width && col > len(program) {
			b.WriteString("\n")
			b.WriteString(indent)
			b.WriteString(item)
			col = len(indent) + len(item)
			continue
		}
		b.WriteString(" ")
		b.WriteString(item)
		col += 1 + len(item)
	}
	return b.String()
}
