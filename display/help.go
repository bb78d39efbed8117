package display

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/jasonwhite/darg/core"
)

var header = color.New(color.Bold, color.Underline).SprintFunc()

// Help renders the full help text for the model: the usage line followed
// by aligned "Arguments:" and "Options:" sections with per-spec help
// text. Section headers are styled when the output supports it; set
// color.NoColor to force plain text.
func Help(m *core.Model, program string) string {
	var b strings.Builder
	b.WriteString(header("Usage:") + " " + Usage(m, program) + "\n")

	if len(m.Arguments()) > 0 {
		b.WriteString("\n" + header("Arguments:") + "\n")
		b.WriteString(argumentsHelp(m))
	}
	if len(m.Options()) > 0 {
		b.WriteString("\n" + header("Options:") + "\n")
		b.WriteString(optionsHelp(m))
	}
	return b.String()
}

// argumentsHelp generates the aligned positional-argument section.
func argumentsHelp(m *core.Model) string {
	var lines []string
	maxLen := 0
	for _, a := range m.Arguments() {
		left := fmt.Sprintf("  %s", a.Name())
		if len(left) > maxLen {
			maxLen = len(left)
		}
		lines = append(lines, fmt.Sprintf("%s||%s", left, a.HelpText()))
	}
	return alignColumns(lines, maxLen)
}

// optionsHelp generates the aligned option section. Every alias is shown,
// short forms first the way they were declared.
func optionsHelp(m *core.Model) string {
	var lines []string
	maxLen := 0
	for _, o := range m.Options() {
		forms := make([]string, 0, len(o.Names()))
		for _, name := range o.Names() {
			forms = append(forms, core.NameToOption(name))
		}
		left := "  " + strings.Join(forms, ", ")
		if o.TakesValue() {
			left += fmt.Sprintf(" <%s>", o.MetaVar())
		}
		if len(left) > maxLen {
			maxLen = len(left)
		}
		lines = append(lines, fmt.Sprintf("%s||%s", left, o.HelpText()))
	}
	return alignColumns(lines, maxLen)
}

// alignColumns pads the left column of each "left||right" line to maxLen.
func alignColumns(lines []string, maxLen int) string {
	var b strings.Builder
	for _, line := range lines {
		parts := strings.SplitN(line, "||", 2)
		padding := strings.Repeat(" ", maxLen-len(parts[0]))
		b.WriteString(fmt.Sprintf("%s%s  %s\n", parts[0], padding, parts[1]))
	}
	return b.String()
}
