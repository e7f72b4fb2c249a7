// Package middleware provides dropt handler middleware: panic recovery,
// dispatch tracing and value validation.
//
// Install with Parser.Use:
//
//	p.Use(middleware.Recovery(), middleware.Trace(logger))
package middleware

import (
	"fmt"

	"github.com/dzonerzy/go-dropt/dropt"
)

// Chain composes middleware into one. The first argument runs outermost,
// matching the order Parser.Use applies them in.
func Chain(mw ...dropt.Middleware) dropt.Middleware {
	return func(opt *dropt.Option, next dropt.Handler) dropt.Handler {
		for i := len(mw) - 1; i >= 0; i-- {
			next = mw[i](opt, next)
		}
		return next
	}
}

// Only applies mw to the options named, by long name or short name
// ("verbose", "v"). Other options pass straight through.
func Only(mw dropt.Middleware, names ...string) dropt.Middleware {
	return func(opt *dropt.Option, next dropt.Handler) dropt.Handler {
		if !matches(opt, names) {
			return next
		}
		return mw(opt, next)
	}
}

func matches(opt *dropt.Option, names []string) bool {
	for _, n := range names {
		if n == "" {
			continue
		}
		if n == opt.Long || (opt.Short != 0 && n == string(opt.Short)) {
			return true
		}
	}
	return false
}

// ValidationError is the cause attached to a value rejected by Validate.
type ValidationError struct {
	Option string
	Value  string
	Rule   string
	Cause  error
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s: value %q failed %s", e.Option, e.Value, e.Rule)
	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}
	return msg
}

func (e *ValidationError) Unwrap() error { return e.Cause }

// RecoveryError is the cause attached to a handler panic.
type RecoveryError struct {
	Panic  any
	Option string
	Stack  []byte
}

func (e *RecoveryError) Error() string {
	return fmt.Sprintf("handler for %s panicked: %v", e.Option, e.Panic)
}

// Unwrap exposes a panic value that is itself an error.
func (e *RecoveryError) Unwrap() error {
	if err, ok := e.Panic.(error); ok {
		return err
	}
	return nil
}

// Config holds the shared middleware settings.
type Config struct {
	PrintStack bool
	StackSize  int
	Format     Format
	Values     bool
}

// Format selects how Trace and TraceWriter render entries.
type Format int

const (
	FormatText Format = iota
	FormatJSON
)

// Option configures middleware.
type Option func(*Config)

// DefaultConfig captures stacks without printing them and traces values.
func DefaultConfig() *Config {
	return &Config{StackSize: 4096, Values: true}
}

// WithStackTrace prints the stack of recovered panics to stderr.
func WithStackTrace(enabled bool) Option {
	return func(c *Config) { c.PrintStack = enabled }
}

// WithStackSize bounds the captured stack. Zero disables capture.
func WithStackSize(n int) Option {
	return func(c *Config) { c.StackSize = n }
}

// WithFormat selects the trace format for TraceWriter.
func WithFormat(f Format) Option {
	return func(c *Config) { c.Format = f }
}

// WithValues controls whether traces include option values, which may be
// secrets.
func WithValues(enabled bool) Option {
	return func(c *Config) { c.Values = enabled }
}

func newConfig(options []Option) *Config {
	c := DefaultConfig()
	for _, o := range options {
		o(c)
	}
	return c
}
