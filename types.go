package darg

import "github.com/jasonwhite/darg/core"

// Model is the validated descriptor table for one configuration type: the
// option surface and the ordered positional surface. Build it once via New
// or FromStruct; it is then read-only and safe to share across Parse calls
// for different configuration instances.
type Model = core.Model

// OptionSpec describes one named option: its aliases (the first declared
// is canonical), whether it consumes a value, and optional help text.
type OptionSpec = core.OptionSpec

// ArgumentSpec describes one positional argument: its display name, its
// multiplicity, and optional help text.
type ArgumentSpec = core.ArgumentSpec

// Multiplicity constrains how many tokens a positional argument may
// consume: at least Lower and at most Upper.
type Multiplicity = core.Multiplicity

// Unbounded is the upper bound meaning "no limit".
const Unbounded = core.Unbounded

// Fixed multiplicities.
var (
	ExactlyOne = core.ExactlyOne
	Optional   = core.Optional
	ZeroOrMore = core.ZeroOrMore
	OneOrMore  = core.OneOrMore
)

// Exactly returns a multiplicity consuming exactly n tokens.
var Exactly = core.Exactly

// Between returns a multiplicity consuming at least lo and at most hi
// tokens. Use Unbounded for hi to leave the upper end open.
var Between = core.Between
