package core

import (
	"math"

	"github.com/jasonwhite/darg/errors"
)

// Unbounded is the upper bound meaning "no limit".
const Unbounded = uint(math.MaxUint)

// Multiplicity constrains how many tokens a positional argument may
// consume: at least Lower and at most Upper. Upper may be Unbounded.
type Multiplicity struct {
	Lower uint
	Upper uint
}

// Fixed multiplicities.
var (
	// ExactlyOne consumes exactly one token.
	ExactlyOne = Multiplicity{Lower: 1, Upper: 1}

	// Optional consumes zero or one token.
	Optional = Multiplicity{Lower: 0, Upper: 1}

	// ZeroOrMore consumes any number of tokens.
	ZeroOrMore = Multiplicity{Lower: 0, Upper: Unbounded}

	// OneOrMore consumes at least one token.
	OneOrMore = Multiplicity{Lower: 1, Upper: Unbounded}
)

// Exactly returns a multiplicity consuming exactly n tokens.
func Exactly(n uint) Multiplicity {
	return Multiplicity{Lower: n, Upper: n}
}

// Between returns a multiplicity consuming at least lo and at most hi
// tokens. Use Unbounded for hi to leave the upper end open.
func Between(lo, hi uint) Multiplicity {
	return Multiplicity{Lower: lo, Upper: hi}
}

// valid reports whether the interval is well-formed. An empty interval
// can never be satisfied and is rejected at model-construction time.
func (m Multiplicity) valid() bool {
	return m.Lower <= m.Upper && m.Upper > 0
}

func (m Multiplicity) check(name string) error {
	if !m.valid() {
		return errors.NewStructural(name, "multiplicity admits no token count")
	}
	return nil
}

// unbounded reports whether there is no upper limit.
func (m Multiplicity) unbounded() bool {
	return m.Upper == Unbounded
}
