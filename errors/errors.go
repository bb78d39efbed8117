package errors

import "fmt"

// StructuralError indicates the declarative model itself is malformed:
// a duplicate spec attachment, an invalid multiplicity, or an unsupported
// target type. It reflects a mistake in the program's own declarations,
// not bad command-line input, and is reported before any token is read.
type StructuralError struct{ Field, Reason string }

func (e StructuralError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid specification: %s", e.Reason)
	}
	return fmt.Sprintf("invalid specification for %s: %s", e.Field, e.Reason)
}

// UnknownOptionError indicates an option-shaped token matched no declared alias.
type UnknownOptionError struct{ Option string }

func (e UnknownOptionError) Error() string {
	return fmt.Sprintf("unknown option '%s'", e.Option)
}

// MissingOptionValueError indicates an option that requires a value had none
// available: either the token stream ended or the next token is itself an option.
type MissingOptionValueError struct{ Option string }

func (e MissingOptionValueError) Error() string {
	return fmt.Sprintf("expected a value for option '%s'", e.Option)
}

// UnexpectedValueError indicates an inline '=value' was given to an option
// that does not take a value.
type UnexpectedValueError struct{ Option string }

func (e UnexpectedValueError) Error() string {
	return fmt.Sprintf("option '%s' does not take a value", e.Option)
}

// ConversionError indicates a raw token could not be converted to the
// target type. Cause carries the underlying conversion diagnostic.
type ConversionError struct {
	Value string
	Type  string
	Cause error
}

func (e ConversionError) Error() string {
	return fmt.Sprintf("cannot convert '%s' to %s: %v", e.Value, e.Type, e.Cause)
}

func (e ConversionError) Unwrap() error { return e.Cause }

// MissingArgError indicates a positional argument's lower bound was not met
// before the tokens ran out.
type MissingArgError struct{ Name string }

func (e MissingArgError) Error() string {
	return fmt.Sprintf("expected argument '%s'", e.Name)
}

// TooManyArgsError indicates tokens remained after every positional
// argument was satisfied.
type TooManyArgsError struct{ Token string }

func (e TooManyArgsError) Error() string {
	return fmt.Sprintf("too many arguments: '%s' is unexpected", e.Token)
}

// Helper constructors
func NewStructural(field, reason string) error { return StructuralError{Field: field, Reason: reason} }
func NewUnknownOption(option string) error     { return UnknownOptionError{Option: option} }
func NewMissingValue(option string) error      { return MissingOptionValueError{Option: option} }
func NewUnexpectedValue(option string) error   { return UnexpectedValueError{Option: option} }
func NewConversion(value, typ string, cause error) error {
	return ConversionError{Value: value, Type: typ, Cause: cause}
}
func NewMissingArg(name string) error   { return MissingArgError{Name: name} }
func NewTooManyArgs(token string) error { return TooManyArgsError{Token: token} }
