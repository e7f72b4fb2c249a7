package dropt

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Bool sets *dst to true when the option appears without a value, and
// accepts the explicit values 0 and 1.
func Bool(dst *bool) Handler {
	return func(v Value) error {
		b, err := parseBool(v)
		if err != nil {
			return err
		}
		*dst = b
		return nil
	}
}

// VerboseBool is Bool that also accepts "true" and "false" in any case.
func VerboseBool(dst *bool) Handler {
	return func(v Value) error {
		b, err := parseBool(v)
		if errors.Is(err, ErrorKindMismatch) {
			switch {
			case strings.EqualFold(v.String(), "true"):
				b, err = true, nil
			case strings.EqualFold(v.String(), "false"):
				b, err = false, nil
			}
		}
		if err != nil {
			return err
		}
		*dst = b
		return nil
	}
}

func parseBool(v Value) (bool, error) {
	if !v.Set() {
		return true, nil
	}
	if v.String() == "" {
		return false, ErrorKindInsufficientArguments
	}
	n, err := parseUint(v.String(), 64)
	if err != nil || n > 1 {
		return false, ErrorKindMismatch
	}
	return n == 1, nil
}

// Int parses a base-10 signed integer into *dst.
func Int(dst *int) Handler {
	return func(v Value) error {
		n, err := parseInt(v, strconv.IntSize)
		if err != nil {
			return err
		}
		*dst = int(n)
		return nil
	}
}

// Int32 is Int limited to the 32-bit range.
func Int32(dst *int32) Handler {
	return func(v Value) error {
		n, err := parseInt(v, 32)
		if err != nil {
			return err
		}
		*dst = int32(n)
		return nil
	}
}

func parseInt(v Value, bits int) (int64, error) {
	if v.String() == "" {
		return 0, ErrorKindInsufficientArguments
	}
	n, err := strconv.ParseInt(v.String(), 10, bits)
	if err != nil {
		return 0, numError(err)
	}
	return n, nil
}

// Uint parses a base-10 unsigned integer into *dst. A leading minus sign
// is rejected even for zero.
func Uint(dst *uint) Handler {
	return func(v Value) error {
		if v.String() == "" {
			return ErrorKindInsufficientArguments
		}
		n, err := parseUint(v.String(), strconv.IntSize)
		if err != nil {
			return err
		}
		*dst = uint(n)
		return nil
	}
}

// Uint32 is Uint limited to the 32-bit range.
func Uint32(dst *uint32) Handler {
	return func(v Value) error {
		if v.String() == "" {
			return ErrorKindInsufficientArguments
		}
		n, err := parseUint(v.String(), 32)
		if err != nil {
			return err
		}
		*dst = uint32(n)
		return nil
	}
}

func parseUint(s string, bits int) (uint64, error) {
	if strings.HasPrefix(s, "-") {
		return 0, ErrorKindMismatch
	}
	n, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, bits)
	if err != nil {
		return 0, numError(err)
	}
	return n, nil
}

// Float64 parses a floating point value into *dst. Values too large in
// magnitude report ErrorKindOverflow and nonzero values that round to
// zero report ErrorKindUnderflow.
func Float64(dst *float64) Handler {
	return func(v Value) error {
		s := v.String()
		if s == "" {
			return ErrorKindInsufficientArguments
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil && !(f == 0 && errors.Is(err, strconv.ErrRange)) {
			return numError(err)
		}
		if f == 0 && nonzeroMantissa(s) {
			return ErrorKindUnderflow
		}
		if math.IsInf(f, 0) && !isInfLiteral(s) {
			return ErrorKindOverflow
		}
		*dst = f
		return nil
	}
}

// String stores the value in *dst. An empty value is accepted; an absent
// one is not.
func String(dst *string) Handler {
	return func(v Value) error {
		if !v.Set() {
			return ErrorKindInsufficientArguments
		}
		*dst = v.String()
		return nil
	}
}

func numError(err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return &HandlerError{Kind: ErrorKindOverflow, Cause: err}
	}
	return &HandlerError{Kind: ErrorKindMismatch, Cause: err}
}

func nonzeroMantissa(s string) bool {
	s = strings.TrimLeft(s, "+-")
	hex := len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
	if hex {
		s = s[2:]
	}
	for _, c := range s {
		switch {
		case c >= '1' && c <= '9':
			return true
		case hex && (c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'):
			return true
		case c == 'p' || c == 'P':
			return false
		case !hex && (c == 'e' || c == 'E'):
			return false
		}
	}
	return false
}

func isInfLiteral(s string) bool {
	s = strings.ToLower(strings.TrimLeft(s, "+-"))
	return s == "inf" || s == "infinity"
}
