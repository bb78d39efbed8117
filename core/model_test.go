package core

import (
	stderrs "errors"
	"testing"

	"github.com/chriso345/gore/assert"
	"github.com/jasonwhite/darg/errors"
)

func TestModelBuilder(t *testing.T) {
	var cfg struct {
		Help    bool
		Threads uint
		Files   []string
	}

	m := New()
	m.Flag(&cfg.Help, "help", "h").Help("Display this help and exit")
	m.Option(&cfg.Threads, "threads", "t").Meta("N")
	m.Argument(&cfg.Files, "file", OneOrMore)

	assert.Nil(t, m.Validate())
	assert.Equal(t, 2, len(m.Options()))
	assert.Equal(t, 1, len(m.Arguments()))

	help := m.Options()[0]
	assert.Equal(t, "help", help.Canonical())
	assert.Equal(t, false, help.TakesValue())
	assert.Equal(t, "Display this help and exit", help.HelpText())

	threads := m.Options()[1]
	assert.True(t, threads.TakesValue())
	assert.Equal(t, "N", threads.MetaVar())

	assert.Equal(t, "file", m.Arguments()[0].Name())
}

func TestModelMetaVarDefaultsToTypeName(t *testing.T) {
	var threads uint
	m := New()
	m.Option(&threads, "threads")
	assert.Equal(t, "uint", m.Options()[0].MetaVar())
}

func TestModelDuplicateAttachment(t *testing.T) {
	var threads uint
	m := New()
	m.Option(&threads, "threads")
	m.Option(&threads, "jobs")

	err := m.Validate()
	assert.NotNil(t, err)
	var se errors.StructuralError
	assert.True(t, stderrs.As(err, &se))
	assert.StringContains(t, err.Error(), "already bound")
}

func TestModelFieldCannotBeOptionAndArgument(t *testing.T) {
	var files []string
	m := New()
	m.Option(&files, "files")
	m.Argument(&files, "file", ZeroOrMore)

	assert.NotNil(t, m.Validate())
}

func TestModelUnsupportedTarget(t *testing.T) {
	var bad complex128
	m := New()
	m.Option(&bad, "bad")

	err := m.Validate()
	assert.NotNil(t, err)
	var se errors.StructuralError
	assert.True(t, stderrs.As(err, &se))
	assert.Equal(t, "bad", se.Field)
	assert.StringContains(t, err.Error(), "unsupported")
}

func TestModelBoolArgumentRejected(t *testing.T) {
	// A positional has no "set" form; a bool target makes no sense.
	var b bool
	m := New()
	m.Argument(&b, "flag", ExactlyOne)
	assert.NotNil(t, m.Validate())
}

func TestModelScalarArgumentSingleToken(t *testing.T) {
	var s string
	m := New()
	m.Argument(&s, "name", OneOrMore)
	assert.NotNil(t, m.Validate())
}

func TestModelInvalidMultiplicity(t *testing.T) {
	var files []string
	m := New()
	m.Argument(&files, "file", Between(5, 2))
	assert.NotNil(t, m.Validate())
}

func TestModelOptionNeedsName(t *testing.T) {
	var s string
	m := New()
	m.Option(&s)
	assert.NotNil(t, m.Validate())
}

func TestModelAliasLookup(t *testing.T) {
	var threads uint
	var verbose bool
	m := New()
	m.Option(&threads, "threads", "t")
	m.Flag(&verbose, "verbose", "v")

	assert.Equal(t, m.Options()[0], m.findOption("threads"))
	assert.Equal(t, m.Options()[0], m.findOption("t"))
	assert.Equal(t, m.Options()[1], m.findOption("v"))
	assert.True(t, m.findOption("bogus") == nil)
}
