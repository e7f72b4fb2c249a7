package dropt

import (
	"strings"
	"unicode/utf8"
)

// Attr is a bit set of option attributes.
type Attr uint

const (
	// AttrHalt stops parsing right after the option is processed.
	AttrHalt Attr = 1 << iota
	// AttrHidden omits the option from generated help.
	AttrHidden
	// AttrOptionalValue lets the option appear without a value. The
	// handler then receives NoValue().
	AttrOptionalValue
)

// Option describes a single recognized option.
type Option struct {
	// Short is the single-character name, or 0 for none.
	Short rune
	// Long is the name used after "--", or "" for none.
	Long string

	// Description is shown in help. Options without one are not listed.
	Description string
	// ArgDescription names the value in help ("FILE"). An option takes a
	// value only when it is non-empty.
	ArgDescription string

	Handler Handler
	Attr    Attr
}

// TakesValue reports whether the option accepts a value.
func (o *Option) TakesValue() bool {
	return o.ArgDescription != ""
}

// ValueOptional reports whether the value may be omitted.
func (o *Option) ValueOptional() bool {
	return o.Attr&AttrOptionalValue != 0
}

// Halts reports whether parsing stops after this option.
func (o *Option) Halts() bool {
	return o.Attr&AttrHalt != 0
}

// Hidden reports whether help generation skips this option.
func (o *Option) Hidden() bool {
	return o.Attr&AttrHidden != 0
}

// Name returns the option as a user would type it, preferring the long
// form: "--verbose" or "-v".
func (o *Option) Name() string {
	if o.Long != "" {
		return "--" + o.Long
	}
	if o.Short != 0 {
		return shortName(o.Short)
	}
	return ""
}

func shortName(r rune) string {
	var b [1 + utf8.UTFMax]byte
	b[0] = '-'
	n := utf8.EncodeRune(b[1:], r)
	return string(b[:1+n])
}

// Table is an ordered list of options. Earlier entries shadow later ones
// with the same name.
type Table []Option

// Validate checks the table once, before any parsing. It reports the
// first malformed entry as a BadConfiguration *ParseError.
func (t Table) Validate() error {
	for i := range t {
		o := &t[i]
		switch {
		case o.Short == 0 && o.Long == "":
			return badConfig(o, "option %d has neither a short nor a long name", i)
		case o.Short == '=':
			return badConfig(o, "option %d uses '=' as its short name", i)
		case strings.ContainsRune(o.Long, '='):
			return badConfig(o, "option %d long name %q contains '='", i, o.Long)
		case o.Handler == nil:
			return badConfig(o, "option %d (%s) has no handler", i, o.Name())
		}
	}
	return nil
}

// FindLong returns the first option whose long name matches name.
func (t Table) FindLong(name string, cmp Comparer) (*Option, bool) {
	if name == "" {
		return nil, false
	}
	if cmp == nil {
		cmp = ExactMatch
	}
	for i := range t {
		if t[i].Long != "" && cmp(t[i].Long, name) {
			return &t[i], true
		}
	}
	return nil, false
}

// FindShort returns the first option whose short name matches r.
func (t Table) FindShort(r rune, cmp Comparer) (*Option, bool) {
	if r == 0 {
		return nil, false
	}
	for i := range t {
		s := t[i].Short
		if s == 0 {
			continue
		}
		if s == r || (cmp != nil && cmp(string(s), string(r))) {
			return &t[i], true
		}
	}
	return nil, false
}

// longNames lists the long names of visible options, for suggestions.
func (t Table) longNames() []string {
	names := make([]string, 0, len(t))
	for i := range t {
		if t[i].Long != "" && !t[i].Hidden() {
			names = append(names, t[i].Long)
		}
	}
	return names
}
