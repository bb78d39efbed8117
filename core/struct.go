package core

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/jasonwhite/darg/errors"
	"github.com/jasonwhite/darg/internal/common"
)

// FromStruct derives a model from a tagged struct. target must be a
// pointer to a struct; each exported, tagged field becomes one spec bound
// to that field.
//
// Supported tags:
//
//	option:"name,alias,..."  named option; first name is canonical
//	argument:"name"          positional argument
//	mult:"lo..hi"            multiplicity for a positional ("*" = unbounded,
//	                         a bare "n" means exactly n; default is one)
//	help:"..."               help text
//	meta:"VAR"               meta variable shown in usage text
//
// A field may carry option or argument, never both. Untagged and
// unexported fields are ignored.
//
// Usage:
//
//	var cfg struct {
//		Help    bool     `option:"help,h" help:"Display this help and exit"`
//		Threads uint     `option:"threads,t" meta:"N" help:"Number of worker threads"`
//		Files   []string `argument:"file" mult:"1..*" help:"Files to process"`
//	}
//
//	model, err := core.FromStruct(&cfg)
func FromStruct(target any) (*Model, error) {
	if !common.IsStructPtr(target) {
		return nil, errors.NewStructural("", "target must be a pointer to a struct")
	}

	m := New()
	v := reflect.ValueOf(target).Elem()
	t := common.GetStructType(target)

	for i := range t.NumField() {
		field := t.Field(i)
		if field.PkgPath != "" {
			continue
		}

		optTag, isOpt := field.Tag.Lookup("option")
		argTag, isArg := field.Tag.Lookup("argument")
		if isOpt && isArg {
			m.fail(field.Name, "field cannot be both an option and an argument")
			continue
		}
		if !isOpt && !isArg {
			continue
		}

		dest := fieldTarget(v.Field(i))

		if isOpt {
			names := strings.Split(optTag, ",")
			var spec *OptionSpec
			switch d := dest.(type) {
			case *bool:
				spec = m.Flag(d, names...)
			case func():
				spec = m.Handle(d, names...)
			default:
				spec = m.Option(dest, names...)
			}
			spec.Help(field.Tag.Get("help"))
			if meta := field.Tag.Get("meta"); meta != "" {
				spec.Meta(meta)
			}
			continue
		}

		mult := ExactlyOne
		if tag, ok := field.Tag.Lookup("mult"); ok {
			var err error
			if mult, err = parseMult(tag); err != nil && m.err == nil {
				m.err = errors.NewStructural(field.Name, err.Error())
			}
		}
		m.Argument(dest, argTag, mult).Help(field.Tag.Get("help"))
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// fieldTarget extracts the binding target for one struct field. Handler
// fields bind their function value; everything else binds by address.
func fieldTarget(v reflect.Value) any {
	switch fn := v.Interface().(type) {
	case func():
		return fn
	case func(string) error:
		return fn
	}
	return v.Addr().Interface()
}

// parseMult parses a mult tag: "3", "0..1", "1..*", "2..5".
func parseMult(tag string) (Multiplicity, error) {
	lo, hi, found := strings.Cut(tag, "..")
	if !found {
		n, err := parseBound(tag)
		if err != nil {
			return Multiplicity{}, err
		}
		return Exactly(n), nil
	}
	lower, err := parseBound(lo)
	if err != nil {
		return Multiplicity{}, err
	}
	upper, err := parseBound(hi)
	if err != nil {
		return Multiplicity{}, err
	}
	return Between(lower, upper), nil
}

func parseBound(s string) (uint, error) {
	if s == "*" {
		return Unbounded, nil
	}
	n, err := strconv.ParseUint(s, 10, strconv.IntSize)
	if err != nil {
		return 0, fmt.Errorf("invalid multiplicity bound %q", s)
	}
	return uint(n), nil
}
