package core

import (
	"github.com/jasonwhite/darg/errors"
)

// Parse consumes tokens against the model and binds the caller's targets.
// Tokens are conventionally os.Args[1:]. The caller's targets must be
// default-initialized before the call; on error they may be partially
// written and should be discarded.
//
// Matching runs in two passes. Pass one walks the option region (the
// tokens before a bare "--") and binds options, marking consumed tokens.
// Pass two assigns the leftover tokens, plus everything after "--"
// verbatim, to the positional arguments in declaration order.
func (m *Model) Parse(tokens []string) error {
	if err := m.Validate(); err != nil {
		return err
	}

	head, tail := splitArgs(tokens)
	parsed := make([]bool, len(head))

	// Pass 1: options.
	for i := 0; i < len(head); i++ {
		if parsed[i] {
			continue
		}
		tok, inline, hasInline := splitOption(head[i])
		name, ok := optionToName(tok)
		if !ok {
			continue
		}
		spec := m.findOption(name)
		if spec == nil {
			// Reported after the scan, so a later valid option does
			// not mask an earlier unknown one.
			continue
		}
		parsed[i] = true

		if !spec.TakesValue() {
			if hasInline {
				return errors.NewUnexpectedValue(tok)
			}
			if spec.kind == kindNullary {
				spec.nullary()
			} else {
				*spec.dest.(*bool) = true
			}
			continue
		}

		// An inline "=value" takes precedence over the next token.
		value := inline
		if !hasInline {
			if i+1 >= len(head) || isOption(head[i+1]) {
				return errors.NewMissingValue(tok)
			}
			value = head[i+1]
			parsed[i+1] = true
		}
		if err := spec.bind(value); err != nil {
			return err
		}
	}

	// Any option-shaped token left unmarked matched no declared alias.
	for i, raw := range head {
		if parsed[i] {
			continue
		}
		if tok, _, _ := splitOption(raw); isOption(tok) {
			return errors.NewUnknownOption(tok)
		}
	}

	// Pass 2: positionals. Unmarked head tokens, in original order,
	// followed by the verbatim region.
	leftover := make([]string, 0, len(head)+len(tail))
	for i, tok := range head {
		if !parsed[i] {
			leftover = append(leftover, tok)
		}
	}
	leftover = append(leftover, tail...)

	for _, spec := range m.args {
		var taken uint
		for len(leftover) > 0 && taken < spec.mult.Upper {
			if err := spec.bind(leftover[0]); err != nil {
				return err
			}
			leftover = leftover[1:]
			taken++
		}
		if taken < spec.mult.Lower {
			return errors.NewMissingArg(spec.name)
		}
	}

	if len(leftover) > 0 {
		return errors.NewTooManyArgs(leftover[0])
	}
	return nil
}

// bind assigns one option value. A sequence-typed option binds a single
// value per occurrence; repeated occurrences replace rather than
// accumulate.
func (o *OptionSpec) bind(value string) error {
	switch o.kind {
	case kindUnary:
		return o.unary(value)
	case kindSequence:
		resetSeq(o.dest)
		return appendSeq(o.dest, value)
	default:
		return convertAssign(o.dest, value)
	}
}

// bind assigns one taken positional token. Sequence targets accumulate in
// encounter order; scalar targets hold exactly the one taken value.
func (a *ArgumentSpec) bind(value string) error {
	switch a.kind {
	case kindUnary:
		return a.unary(value)
	case kindSequence:
		return appendSeq(a.dest, value)
	default:
		return convertAssign(a.dest, value)
	}
}
