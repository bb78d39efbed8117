package display_test

import (
	"strings"
	"testing"

	"github.com/chriso345/gore/assert"
	"github.com/jasonwhite/darg/core"
	"github.com/jasonwhite/darg/display"
)

func TestUsage_EndToEnd(t *testing.T) {
	var help bool
	var threads uint
	var files []string

	m := core.New()
	m.Flag(&help, "help", "h")
	m.Option(&threads, "threads", "t").Meta("N")
	m.Argument(&files, "file", core.OneOrMore)

	usage := display.Usage(m, "prog")
	assert.Equal(t, "prog [--help] [--threads=<N>] file [file...]", usage)
}

func TestUsage_Deterministic(t *testing.T) {
	var verbose bool
	m := core.New()
	m.Flag(&verbose, "verbose")

	assert.Equal(t, display.Usage(m, "prog"), display.Usage(m, "prog"))
}

func TestUsage_MetaVarDefaultsToTypeName(t *testing.T) {
	var threads uint
	m := core.New()
	m.Option(&threads, "threads")

	assert.Equal(t, "prog [--threads=<uint>]", display.Usage(m, "prog"))
}

func TestUsage_ShortCanonicalName(t *testing.T) {
	// The first-declared alias is canonical, even when it is short.
	var verbose bool
	m := core.New()
	m.Flag(&verbose, "v", "verbose")

	assert.Equal(t, "prog [-v]", display.Usage(m, "prog"))
}

func TestUsage_Multiplicities(t *testing.T) {
	var one string
	var maybe string
	var rest []string
	var capped []string

	m := core.New()
	m.Argument(&one, "name", core.ExactlyOne)
	m.Argument(&maybe, "nick", core.Optional)
	m.Argument(&capped, "tag", core.Between(0, 5))
	m.Argument(&rest, "file", core.ZeroOrMore)

	usage := display.Usage(m, "prog")
	assert.Equal(t, "prog name [nick] [tag... up to 5 times] [file...]", usage)
}

func TestUsage_WordWrap(t *testing.T) {
	var a, b, c, d bool
	m := core.New()
	m.Flag(&a, "first-very-long-option-name")
	m.Flag(&b, "second-very-long-option-name")
	m.Flag(&c, "third-very-long-option-name")
	m.Flag(&d, "fourth-very-long-option-name")

	usage := display.Usage(m, "prog")
	lines := strings.Split(usage, "\n")
	assert.True(t, len(lines) > 1)

	// Continuation lines align under the program name.
	for _, line := range lines[1:] {
		assert.True(t, strings.HasPrefix(line, strings.Repeat(" ", len("prog")+1)))
	}
	for _, line := range lines {
		assert.True(t, len(line) <= display.DefaultWidth)
	}
}

func TestUsageWidth_NarrowColumn(t *testing.T) {
	var verbose, quiet bool
	m := core.New()
	m.Flag(&verbose, "verbose")
	m.Flag(&quiet, "quiet")

	usage := display.UsageWidth(m, "prog", 20)
	assert.Equal(t, "prog [--verbose]\n     [--quiet]", usage)
}
