package core

import (
	"fmt"
	"time"

	"github.com/jasonwhite/darg/errors"
)

// fieldKind is the closed set of binding targets. The matching engine
// dispatches on it in a single switch; anything outside the set is a
// structural error at model-construction time.
type fieldKind int

const (
	kindFlag fieldKind = iota
	kindScalar
	kindSequence
	kindNullary
	kindUnary
)

// OptionSpec describes one named option: its aliases (the first is
// canonical), whether it consumes a value, and how the value is bound.
type OptionSpec struct {
	names    []string
	kind     fieldKind
	dest     any
	nullary  func()
	unary    func(string) error
	typeName string
	metaVar  string
	help     string
}

// Names returns the declared aliases. The first is the canonical name.
func (o *OptionSpec) Names() []string { return o.names }

// Canonical returns the first-declared alias.
func (o *OptionSpec) Canonical() string { return o.names[0] }

// TakesValue reports whether the option consumes a value token. Boolean
// flags and nullary handlers consume none; everything else consumes one
// per occurrence.
func (o *OptionSpec) TakesValue() bool {
	return o.kind != kindFlag && o.kind != kindNullary
}

// Help attaches help text. It returns the spec for chaining.
func (o *OptionSpec) Help(text string) *OptionSpec {
	o.help = text
	return o
}

// Meta overrides the meta variable shown in usage text in place of the
// value's type name.
func (o *OptionSpec) Meta(name string) *OptionSpec {
	o.metaVar = name
	return o
}

// HelpText returns the attached help text.
func (o *OptionSpec) HelpText() string { return o.help }

// MetaVar returns the meta variable for usage rendering: the explicit
// override if set, otherwise the value's type name.
func (o *OptionSpec) MetaVar() string {
	if o.metaVar != "" {
		return o.metaVar
	}
	return o.typeName
}

func (o *OptionSpec) matches(name string) bool {
	for _, n := range o.names {
		if n == name {
			return true
		}
	}
	return false
}

// ArgumentSpec describes one positional argument: its display name, its
// multiplicity, and how taken tokens are bound.
type ArgumentSpec struct {
	name  string
	mult  Multiplicity
	kind  fieldKind
	dest  any
	unary func(string) error
	help  string
}

// Name returns the display name.
func (a *ArgumentSpec) Name() string { return a.name }

// Bounds returns the multiplicity.
func (a *ArgumentSpec) Bounds() Multiplicity { return a.mult }

// Help attaches help text. It returns the spec for chaining.
func (a *ArgumentSpec) Help(text string) *ArgumentSpec {
	a.help = text
	return a
}

// HelpText returns the attached help text.
func (a *ArgumentSpec) HelpText() string { return a.help }

// Model is the validated descriptor table for one configuration type:
// the option surface and the ordered positional surface. Build it once,
// then it is read-only and safe to share across Parse calls.
type Model struct {
	options []*OptionSpec
	args    []*ArgumentSpec
	bound   map[any]bool
	err     error
}

// New returns an empty model.
func New() *Model {
	return &Model{bound: map[any]bool{}}
}

// Options returns the declared options in declaration order.
func (m *Model) Options() []*OptionSpec { return m.options }

// Arguments returns the declared positionals in declaration order.
func (m *Model) Arguments() []*ArgumentSpec { return m.args }

// Validate returns the first structural error recorded while building the
// model, or nil. Parse calls it implicitly; calling it eagerly at startup
// turns declaration mistakes into startup failures instead of parse-time
// ones.
func (m *Model) Validate() error { return m.err }

// fail records the first structural error.
func (m *Model) fail(field, reason string) {
	if m.err == nil {
		m.err = errors.NewStructural(field, reason)
	}
}

func (m *Model) checkNames(names []string) string {
	if len(names) == 0 {
		m.fail("", "option needs at least one name")
		return ""
	}
	for _, n := range names {
		if n == "" {
			m.fail(names[0], "option name must not be empty")
		}
	}
	return names[0]
}

// claim records dest as bound and reports a duplicate attachment.
func (m *Model) claim(field string, dest any) {
	if m.bound[dest] {
		m.fail(field, "field is already bound to a spec")
		return
	}
	m.bound[dest] = true
}

// Flag declares a boolean option that takes no value. Parsing an
// occurrence sets the flag; there is no way to un-set it from the
// command line.
func (m *Model) Flag(dest *bool, names ...string) *OptionSpec {
	canon := m.checkNames(names)
	if dest == nil {
		m.fail(canon, "nil flag target")
	} else {
		m.claim(canon, dest)
	}
	o := &OptionSpec{names: names, kind: kindFlag, dest: dest}
	m.options = append(m.options, o)
	return o
}

// Option declares a value-carrying option. dest must be a pointer to a
// supported scalar, a pointer to a slice of a supported scalar, or a
// func(string) error receiving the raw token.
func (m *Model) Option(dest any, names ...string) *OptionSpec {
	canon := m.checkNames(names)
	o := &OptionSpec{names: names, dest: dest}
	if fn, ok := dest.(func(string) error); ok {
		o.kind = kindUnary
		o.unary = fn
		o.dest = nil
		o.typeName = "value"
	} else {
		kind, typeName, ok := classify(dest)
		if !ok || kind == kindFlag {
			m.fail(canon, fmt.Sprintf("unsupported option target %T", dest))
		} else {
			m.claim(canon, dest)
		}
		o.kind = kind
		o.typeName = typeName
	}
	m.options = append(m.options, o)
	return o
}

// Handle declares an option that takes no value and invokes fn on every
// occurrence.
func (m *Model) Handle(fn func(), names ...string) *OptionSpec {
	canon := m.checkNames(names)
	if fn == nil {
		m.fail(canon, "nil handler")
	}
	o := &OptionSpec{names: names, kind: kindNullary, nullary: fn}
	m.options = append(m.options, o)
	return o
}

// Argument declares a positional argument. dest must be a pointer to a
// supported scalar, a pointer to a slice of a supported scalar, or a
// func(string) error receiving each raw token. Positionals are filled in
// declaration order; mult bounds how many leftover tokens this one takes.
func (m *Model) Argument(dest any, name string, mult Multiplicity) *ArgumentSpec {
	if name == "" {
		m.fail("", "argument needs a name")
	}
	if err := mult.check(name); err != nil && m.err == nil {
		m.err = err
	}
	a := &ArgumentSpec{name: name, mult: mult, dest: dest}
	if fn, ok := dest.(func(string) error); ok {
		a.kind = kindUnary
		a.unary = fn
		a.dest = nil
	} else {
		kind, _, ok := classify(dest)
		if !ok || kind == kindFlag {
			m.fail(name, fmt.Sprintf("unsupported argument target %T", dest))
		} else {
			m.claim(name, dest)
		}
		a.kind = kind
		if kind == kindScalar && mult.Upper > 1 {
			m.fail(name, "scalar argument cannot take more than one token")
		}
	}
	m.args = append(m.args, a)
	return a
}

// findOption returns the first declared option whose alias set contains
// name, or nil.
func (m *Model) findOption(name string) *OptionSpec {
	for _, o := range m.options {
		if o.matches(name) {
			return o
		}
	}
	return nil
}

// classify maps a binding target onto the closed kind set.
func classify(dest any) (fieldKind, string, bool) {
	switch dest.(type) {
	case *bool:
		return kindFlag, "bool", true
	case *string:
		return kindScalar, "string", true
	case *int:
		return kindScalar, "int", true
	case *int64:
		return kindScalar, "int64", true
	case *uint:
		return kindScalar, "uint", true
	case *float64:
		return kindScalar, "float64", true
	case *time.Duration:
		return kindScalar, "duration", true
	case *[]string:
		return kindSequence, "string", true
	case *[]int:
		return kindSequence, "int", true
	case *[]int64:
		return kindSequence, "int64", true
	case *[]uint:
		return kindSequence, "uint", true
	case *[]float64:
		return kindSequence, "float64", true
	case *[]time.Duration:
		return kindSequence, "duration", true
	}
	return 0, "", false
}
