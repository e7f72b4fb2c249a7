package dropt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dzonerzy/go-dropt/internal/fuzzy"
)

// ErrorKind classifies a parse failure. Kinds from ErrorKindCustomStart
// to ErrorKindCustomLast are free for handlers to define; the parser
// never generates a message for them.
type ErrorKind int

const (
	ErrorKindNone ErrorKind = iota
	ErrorKindUnknown
	ErrorKindBadConfiguration
	ErrorKindInsufficientMemory
	ErrorKindInvalidOption
	ErrorKindInsufficientArguments
	ErrorKindMismatch
	ErrorKindOverflow
	ErrorKindUnderflow

	ErrorKindCustomStart ErrorKind = 0x80
	ErrorKindCustomLast  ErrorKind = 0xFFFF
)

var kindNames = [...]string{
	ErrorKindNone:                  "none",
	ErrorKindUnknown:               "unknown",
	ErrorKindBadConfiguration:      "bad_configuration",
	ErrorKindInsufficientMemory:    "insufficient_memory",
	ErrorKindInvalidOption:         "invalid_option",
	ErrorKindInsufficientArguments: "insufficient_arguments",
	ErrorKindMismatch:              "mismatch",
	ErrorKindOverflow:              "overflow",
	ErrorKindUnderflow:             "underflow",
}

func (k ErrorKind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	if k.IsCustom() {
		return "custom_" + strconv.Itoa(int(k-ErrorKindCustomStart))
	}
	return "kind_" + strconv.Itoa(int(k))
}

// Error lets a Handler return a bare kind.
func (k ErrorKind) Error() string { return "dropt: " + k.String() }

// IsCustom reports whether k lies in the caller-defined range.
func (k ErrorKind) IsCustom() bool {
	return k >= ErrorKindCustomStart && k <= ErrorKindCustomLast
}

// HandlerError is returned by a Handler that wants to report a kind
// together with its own message. The message is shown verbatim.
type HandlerError struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

// NewHandlerError creates a HandlerError with a formatted message.
func NewHandlerError(kind ErrorKind, format string, args ...any) *HandlerError {
	return &HandlerError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func (e *HandlerError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Kind.Error()
}

func (e *HandlerError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

// Formatter builds the message for a recorded error. Returning "" falls
// back to "Unknown error".
type Formatter func(kind ErrorKind, option string, value Value) string

// ParseError describes a failed Parse or an invalid option table.
type ParseError struct {
	Kind   ErrorKind
	Option string // as written: "-x" or "--name"
	Value  Value

	// Message, when set, replaces the generated message.
	Message string
	Cause   error

	format Formatter
}

func (e *ParseError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = formatMessage(e.format, e.Kind, e.Option, e.Value)
	}
	if e.Kind == ErrorKindBadConfiguration && e.Cause != nil {
		return msg + " (" + e.Cause.Error() + ")"
	}
	return msg
}

func (e *ParseError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

func badConfig(o *Option, format string, args ...any) *ParseError {
	return &ParseError{
		Kind:   ErrorKindBadConfiguration,
		Option: o.Name(),
		Cause:  fmt.Errorf(format, args...),
	}
}

// DefaultErrorMessage returns the built-in English message for kind, or
// "" for ErrorKindNone and custom kinds.
func DefaultErrorMessage(kind ErrorKind, option string, value Value) string {
	switch kind {
	case ErrorKindNone:
		return ""
	case ErrorKindBadConfiguration:
		return "Invalid option configuration."
	case ErrorKindInsufficientMemory:
		return "Insufficient memory."
	case ErrorKindInvalidOption:
		return "Invalid option: " + option
	case ErrorKindInsufficientArguments:
		return "Value required after option " + option
	case ErrorKindMismatch:
		return withValue("Invalid value for option "+option, value)
	case ErrorKindOverflow:
		return withValue("Value too large for option "+option, value)
	case ErrorKindUnderflow:
		return withValue("Value too small for option "+option, value)
	case ErrorKindUnknown:
		return "Unknown error handling option " + option + "."
	}
	return ""
}

func withValue(msg string, v Value) string {
	if !v.Set() {
		return msg
	}
	return msg + ": " + v.String()
}

func formatMessage(f Formatter, kind ErrorKind, option string, value Value) string {
	if kind == ErrorKindNone {
		return ""
	}
	var msg string
	if f != nil {
		msg = f(kind, option, value)
	} else {
		msg = DefaultErrorMessage(kind, option, value)
	}
	if msg == "" {
		return "Unknown error"
	}
	return msg
}

// classify maps a handler's error to a kind, a verbatim message if the
// handler supplied one, and the underlying cause.
func classify(err error) (ErrorKind, string, error) {
	var he *HandlerError
	if errors.As(err, &he) {
		kind := he.Kind
		if kind == ErrorKindNone {
			kind = ErrorKindUnknown
		}
		return kind, he.Message, he.Cause
	}
	var kind ErrorKind
	if errors.As(err, &kind) && kind != ErrorKindNone {
		return kind, "", nil
	}
	return ErrorKindUnknown, "", err
}

// errorRecord is the per-parser error state. The message is generated on
// first request and dropped whenever a field changes.
type errorRecord struct {
	kind   ErrorKind
	option string
	value  Value
	cause  error

	message string
	cached  bool
	fixed   bool // message set verbatim
}

func (r *errorRecord) set(kind ErrorKind, option string, value Value, cause error) {
	*r = errorRecord{kind: kind, option: option, value: value, cause: cause}
}

func (r *errorRecord) setMessage(msg string) {
	r.message = msg
	r.cached = true
	r.fixed = true
}

func (r *errorRecord) text(f Formatter) string {
	if r.kind == ErrorKindNone {
		return ""
	}
	if !r.cached {
		r.message = formatMessage(f, r.kind, r.option, r.value)
		r.cached = true
	}
	return r.message
}

func (r *errorRecord) snapshot(f Formatter) *ParseError {
	if r.kind == ErrorKindNone {
		return nil
	}
	pe := &ParseError{
		Kind:   r.kind,
		Option: r.option,
		Value:  r.value,
		Cause:  r.cause,
		format: f,
	}
	if r.fixed {
		pe.Message = r.message
	}
	return pe
}

// ErrorHandler turns parse errors into user-facing text, optionally
// adding "did you mean" hints for mistyped long options.
type ErrorHandler struct {
	suggest     bool
	maxDistance int
	handlers    map[ErrorKind]func(*ParseError) string
}

// NewErrorHandler creates a handler with suggestions disabled.
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{
		maxDistance: fuzzy.DefaultMaxDistance,
		handlers:    make(map[ErrorKind]func(*ParseError) string),
	}
}

// SuggestOptions enables or disables option suggestions.
func (eh *ErrorHandler) SuggestOptions(enabled bool) *ErrorHandler {
	eh.suggest = enabled
	return eh
}

// MaxDistance sets the maximum edit distance for suggestions.
func (eh *ErrorHandler) MaxDistance(distance int) *ErrorHandler {
	eh.maxDistance = distance
	return eh
}

// Handle overrides the message for one error kind.
func (eh *ErrorHandler) Handle(kind ErrorKind, fn func(*ParseError) string) *ErrorHandler {
	eh.handlers[kind] = fn
	return eh
}

// Format renders err. Errors other than *ParseError are returned as is.
// options supplies the candidates for suggestions and may be nil.
func (eh *ErrorHandler) Format(err error, options Table) string {
	if err == nil {
		return ""
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		return err.Error()
	}

	msg := ""
	if fn, ok := eh.handlers[pe.Kind]; ok {
		msg = fn(pe)
	}
	if msg == "" {
		msg = pe.Error()
	}

	if eh.suggest && pe.Kind == ErrorKindInvalidOption && strings.HasPrefix(pe.Option, "--") {
		m := fuzzy.NewMatcher(eh.maxDistance)
		if best, ok := m.Best(pe.Option[2:], options.longNames()); ok {
			msg += " Did you mean '--" + best + "'?"
		}
	}
	return msg
}
