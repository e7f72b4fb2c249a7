package dropt

import (
	"strings"
	"unicode/utf8"
)

// Parser walks command-line arguments and dispatches recognized options
// to their handlers. A Parser may be reused for several Parse calls but
// must not be used from more than one goroutine at a time.
type Parser struct {
	table        Table
	cmp          Comparer
	format       Formatter
	concatenated bool
	middleware   []Middleware

	rec errorRecord

	// per-call state
	args []string
	next int
}

// NewParser binds options to a new parser. The table is validated here
// so a malformed table fails before any argument is read.
func NewParser(options []Option) (*Parser, error) {
	t := Table(options)
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &Parser{table: t, cmp: ExactMatch}, nil
}

// MustParser is like NewParser but panics on an invalid table.
func MustParser(options []Option) *Parser {
	p, err := NewParser(options)
	if err != nil {
		panic(err)
	}
	return p
}

// Options returns the bound option table.
func (p *Parser) Options() Table { return p.table }

// SetComparer installs the name comparison used for lookups. A nil
// Comparer restores ExactMatch.
func (p *Parser) SetComparer(cmp Comparer) *Parser {
	if cmp == nil {
		cmp = ExactMatch
	}
	p.cmp = cmp
	return p
}

// SetErrorFormatter replaces the default error messages.
func (p *Parser) SetErrorFormatter(f Formatter) *Parser {
	p.format = f
	p.rec.cached = p.rec.fixed
	return p
}

// AllowConcatenatedArguments enables the legacy "-oVALUE" form: when the
// first option of a short group takes a value, the rest of the token is
// that value. Off by default.
func (p *Parser) AllowConcatenatedArguments(allow bool) *Parser {
	p.concatenated = allow
	return p
}

// Use appends handler middleware. The first registered runs outermost.
func (p *Parser) Use(mw ...Middleware) *Parser {
	p.middleware = append(p.middleware, mw...)
	return p
}

// Parse processes options from the front of args and returns the
// unprocessed remainder, which is never nil. Parsing stops at the first
// operand, after "--", before a lone "-", after a halting option, or at
// the first error. The error is also kept in the parser's error record.
func (p *Parser) Parse(args []string) ([]string, error) {
	p.args, p.next = args, 0
	defer func() { p.args = nil }()

	var err *ParseError
	for p.next < len(args) {
		arg := args[p.next]
		if len(arg) < 2 || arg[0] != '-' {
			// operand, or "-" left for the caller
			break
		}
		p.next++

		var halt bool
		if arg[1] == '-' {
			if len(arg) == 2 {
				break
			}
			halt, err = p.parseLong(arg)
		} else {
			halt, err = p.parseShort(arg)
		}
		if err != nil || halt {
			break
		}
	}

	rest := args[p.next:]
	if rest == nil {
		rest = []string{}
	}
	if err != nil {
		return rest, err
	}
	return rest, nil
}

// parseLong handles "--name" and "--name=value".
func (p *Parser) parseLong(arg string) (bool, *ParseError) {
	body := arg[2:]
	if body[0] == '=' {
		return false, p.fail(ErrorKindInvalidOption, arg, NoValue(), "", nil)
	}

	name, value := body, NoValue()
	if i := strings.IndexByte(body, '='); i >= 0 {
		name, value = body[:i], ValueOf(body[i+1:])
	}
	written := arg[:2+len(name)]

	opt, ok := p.table.FindLong(name, p.cmp)
	if !ok {
		return false, p.fail(ErrorKindInvalidOption, written, NoValue(), "", nil)
	}
	if err := p.dispatch(opt, value, written); err != nil {
		return false, err
	}
	return opt.Halts(), nil
}

// parseShort handles a group of short options such as "-abc" or
// "-abc=value". Only the last option of the group may take a value.
func (p *Parser) parseShort(arg string) (bool, *ParseError) {
	body := arg[1:]
	if body[0] == '=' {
		return false, p.fail(ErrorKindInvalidOption, arg, NoValue(), "", nil)
	}

	group, value := body, NoValue()
	if i := strings.IndexByte(body, '='); i >= 0 {
		group, value = body[:i], ValueOf(body[i+1:])
	}

	for i := 0; i < len(group); {
		r, size := utf8.DecodeRuneInString(group[i:])
		last := i+size == len(group)
		written := shortName(r)

		opt, ok := p.table.FindShort(r, p.cmp)
		if !ok {
			return false, p.fail(ErrorKindInvalidOption, written, NoValue(), "", nil)
		}

		if p.concatenated && i == 0 && !last && opt.TakesValue() {
			v := ValueOf(body[size:])
			if !opt.ValueOptional() {
				if err := p.dispatch(opt, v, written); err != nil {
					return false, err
				}
				return opt.Halts(), nil
			}
			// A rejected optional value is read as more grouped options.
			if p.invoke(opt, v) == nil {
				return opt.Halts(), nil
			}
		}

		switch {
		case last:
			if err := p.dispatch(opt, value, written); err != nil {
				return false, err
			}
		case opt.TakesValue() && !opt.ValueOptional():
			return false, p.fail(ErrorKindInsufficientArguments, written, NoValue(), "", nil)
		default:
			if err := p.invoke(opt, NoValue()); err != nil {
				kind, msg, cause := classify(err)
				return false, p.fail(kind, written, NoValue(), msg, cause)
			}
		}

		if opt.Halts() {
			return true, nil
		}
		i += size
	}
	return false, nil
}

// dispatch runs the handler for an option in value position. When the
// option takes a value and none was given inline, the next argument is
// offered; an optional value that the handler rejects is retried as
// absent, leaving that argument for the next iteration.
func (p *Parser) dispatch(opt *Option, value Value, written string) *ParseError {
	consumeNext := false
	if opt.TakesValue() && !value.Set() {
		if p.next < len(p.args) {
			value = ValueOf(p.args[p.next])
			consumeNext = true
		} else if !opt.ValueOptional() {
			return p.fail(ErrorKindInsufficientArguments, written, NoValue(), "", nil)
		}
	}

	err := p.invoke(opt, value)
	if err != nil && opt.ValueOptional() && consumeNext {
		consumeNext = false
		value = NoValue()
		err = p.invoke(opt, value)
	}
	if err != nil {
		kind, msg, cause := classify(err)
		return p.fail(kind, written, value, msg, cause)
	}

	if consumeNext {
		p.next++
	}
	return nil
}

func (p *Parser) invoke(opt *Option, v Value) error {
	h := opt.Handler
	for i := len(p.middleware) - 1; i >= 0; i-- {
		h = p.middleware[i](opt, h)
	}
	return h(v)
}

// fail records an error and returns its snapshot.
func (p *Parser) fail(kind ErrorKind, option string, value Value, msg string, cause error) *ParseError {
	p.rec.set(kind, option, value, cause)
	if msg != "" {
		p.rec.setMessage(msg)
	}
	return p.rec.snapshot(p.format)
}

// Err returns the recorded error, or nil.
func (p *Parser) Err() error {
	if pe := p.rec.snapshot(p.format); pe != nil {
		return pe
	}
	return nil
}

// ErrorKind returns the kind of the recorded error.
func (p *Parser) ErrorKind() ErrorKind { return p.rec.kind }

// ErrorDetails returns the option and value implicated in the recorded
// error.
func (p *Parser) ErrorDetails() (option string, value Value) {
	return p.rec.option, p.rec.value
}

// ErrorMessage returns the message for the recorded error, generating
// it on first use. It is "" when no error is recorded.
func (p *Parser) ErrorMessage() string {
	return p.rec.text(p.format)
}

// SetError records an error, discarding any previous message.
func (p *Parser) SetError(kind ErrorKind, option string, value Value) {
	p.rec.set(kind, option, value, nil)
}

// SetErrorMessage replaces the message of the recorded error. The text
// is kept verbatim until the record changes.
func (p *Parser) SetErrorMessage(msg string) {
	p.rec.setMessage(msg)
}

// ClearError resets the error record.
func (p *Parser) ClearError() {
	p.rec.set(ErrorKindNone, "", NoValue(), nil)
}
