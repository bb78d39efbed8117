package core

import (
	"strconv"
	"time"

	"github.com/jasonwhite/darg/errors"
)

// convertAssign converts tok to the scalar type behind dest and stores it.
// Conversion failures are wrapped in a ConversionError carrying the
// underlying strconv diagnostic. The same converter serves option values
// and positional values.
func convertAssign(dest any, tok string) error {
	switch p := dest.(type) {
	case *string:
		*p = tok
	case *int:
		n, err := strconv.Atoi(tok)
		if err != nil {
			return errors.NewConversion(tok, "int", err)
		}
		*p = n
	case *int64:
		n, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return errors.NewConversion(tok, "int64", err)
		}
		*p = n
	case *uint:
		n, err := strconv.ParseUint(tok, 10, strconv.IntSize)
		if err != nil {
			return errors.NewConversion(tok, "uint", err)
		}
		*p = uint(n)
	case *float64:
		n, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return errors.NewConversion(tok, "float64", err)
		}
		*p = n
	case *time.Duration:
		d, err := time.ParseDuration(tok)
		if err != nil {
			return errors.NewConversion(tok, "duration", err)
		}
		*p = d
	default:
		// classify rejects anything else before parsing starts
		return errors.NewStructural("", "unsupported conversion target")
	}
	return nil
}

// appendSeq converts tok to the sequence's element type and appends it to
// the slice behind dest.
func appendSeq(dest any, tok string) error {
	switch p := dest.(type) {
	case *[]string:
		*p = append(*p, tok)
		return nil
	case *[]int:
		var v int
		if err := convertAssign(&v, tok); err != nil {
			return err
		}
		*p = append(*p, v)
	case *[]int64:
		var v int64
		if err := convertAssign(&v, tok); err != nil {
			return err
		}
		*p = append(*p, v)
	case *[]uint:
		var v uint
		if err := convertAssign(&v, tok); err != nil {
			return err
		}
		*p = append(*p, v)
	case *[]float64:
		var v float64
		if err := convertAssign(&v, tok); err != nil {
			return err
		}
		*p = append(*p, v)
	case *[]time.Duration:
		var v time.Duration
		if err := convertAssign(&v, tok); err != nil {
			return err
		}
		*p = append(*p, v)
	default:
		return errors.NewStructural("", "unsupported sequence target")
	}
	return nil
}

// resetSeq empties the slice behind dest. A repeated sequence option does
// not accumulate across occurrences; each occurrence binds a single value.
func resetSeq(dest any) {
	switch p := dest.(type) {
	case *[]string:
		*p = nil
	case *[]int:
		*p = nil
	case *[]int64:
		*p = nil
	case *[]uint:
		*p = nil
	case *[]float64:
		*p = nil
	case *[]time.Duration:
		*p = nil
	}
}
