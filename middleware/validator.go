package middleware

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/dzonerzy/go-dropt/dropt"
)

// ValidatorFunc checks a value before the option's handler sees it.
type ValidatorFunc func(v dropt.Value) error

// NamedValidator binds a rule to the options it guards. With no options
// listed it applies to every option that receives a value.
type NamedValidator struct {
	Rule    string
	Options []string
	Fn      ValidatorFunc
}

// Custom wraps fn under a rule name.
func Custom(rule string, fn ValidatorFunc) NamedValidator {
	return NamedValidator{Rule: rule, Fn: fn}
}

// For restricts the validator to the named options.
func (nv NamedValidator) For(options ...string) NamedValidator {
	nv.Options = options
	return nv
}

// Validate runs the validators in order before each handler. The first
// failure is returned as ErrorKindMismatch with a *ValidationError cause
// and the handler is not called, so its destination is left untouched.
// Absent values are not validated.
func Validate(validators ...NamedValidator) dropt.Middleware {
	return func(opt *dropt.Option, next dropt.Handler) dropt.Handler {
		var active []NamedValidator
		for _, nv := range validators {
			if nv.Fn == nil {
				continue
			}
			if len(nv.Options) == 0 || matches(opt, nv.Options) {
				active = append(active, nv)
			}
		}
		if len(active) == 0 {
			return next
		}

		return func(v dropt.Value) error {
			if v.Set() {
				for _, nv := range active {
					if err := nv.Fn(v); err != nil {
						return rejected(opt, v, nv.Rule, err)
					}
				}
			}
			return next(v)
		}
	}
}

func rejected(opt *dropt.Option, v dropt.Value, rule string, err error) error {
	var he *dropt.HandlerError
	if errors.As(err, &he) {
		return he
	}
	kind := dropt.ErrorKindMismatch
	var k dropt.ErrorKind
	if errors.As(err, &k) {
		kind, err = k, nil
	}
	return &dropt.HandlerError{
		Kind:  kind,
		Cause: &ValidationError{Option: opt.Name(), Value: v.String(), Rule: rule, Cause: err},
	}
}

// NonEmpty rejects "".
func NonEmpty() NamedValidator {
	return Custom("non_empty", func(v dropt.Value) error {
		if v.String() == "" {
			return errors.New("value is empty")
		}
		return nil
	})
}

// OneOf accepts only the listed values.
func OneOf(allowed ...string) NamedValidator {
	return Custom("one_of", func(v dropt.Value) error {
		if slices.Contains(allowed, v.String()) {
			return nil
		}
		return fmt.Errorf("must be one of %s", strings.Join(allowed, ", "))
	})
}

// Matches accepts values matching the regular expression.
func Matches(pattern string) NamedValidator {
	re := regexp.MustCompile(pattern)
	return Custom("matches", func(v dropt.Value) error {
		if !re.MatchString(v.String()) {
			return fmt.Errorf("does not match %s", pattern)
		}
		return nil
	})
}

// IntRange accepts base-10 integers in [lo, hi]. Values outside report
// ErrorKindOverflow or ErrorKindUnderflow.
func IntRange(lo, hi int64) NamedValidator {
	return Custom("int_range", func(v dropt.Value) error {
		n, err := strconv.ParseInt(v.String(), 10, 64)
		switch {
		case err != nil:
			return nil // left to the handler
		case n < lo:
			return dropt.ErrorKindUnderflow
		case n > hi:
			return dropt.ErrorKindOverflow
		}
		return nil
	})
}

// FileExists requires the value to name an existing regular file.
func FileExists() NamedValidator {
	return Custom("file_exists", func(v dropt.Value) error {
		info, err := os.Stat(v.String())
		if err != nil {
			return err
		}
		if info.IsDir() {
			return fmt.Errorf("%s is a directory", v.String())
		}
		return nil
	})
}

// DirectoryExists requires the value to name an existing directory.
func DirectoryExists() NamedValidator {
	return Custom("directory_exists", func(v dropt.Value) error {
		info, err := os.Stat(v.String())
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return fmt.Errorf("%s is not a directory", v.String())
		}
		return nil
	})
}
