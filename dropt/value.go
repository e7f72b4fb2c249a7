package dropt

// Value is the string handed to a Handler. It distinguishes an absent
// value ("--flag") from an empty one ("--flag=").
type Value struct {
	s   string
	set bool
}

// NoValue returns the absent value.
func NoValue() Value { return Value{} }

// ValueOf wraps s as a present value.
func ValueOf(s string) Value { return Value{s: s, set: true} }

// Set reports whether a value was supplied.
func (v Value) Set() bool { return v.set }

// String returns the value, or "" when absent.
func (v Value) String() string { return v.s }

// GoString renders the value for %#v, marking the absent case.
func (v Value) GoString() string {
	if !v.set {
		return "<none>"
	}
	return `"` + v.s + `"`
}

// Handler converts a value into an effect on caller state. Returning an
// ErrorKind or a *HandlerError reports a typed failure; any other error
// is recorded as ErrorKindUnknown with the error kept as the cause.
type Handler func(v Value) error

// Middleware wraps the handler of opt. Parsers apply middleware to every
// dispatch, first registered outermost.
type Middleware func(opt *Option, next Handler) Handler
