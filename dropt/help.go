package dropt

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/dzonerzy/go-dropt/internal/strbuf"
)

// HelpParams controls the layout of generated help.
type HelpParams struct {
	// Indent is the number of spaces before each option name.
	Indent int
	// DescriptionStartColumn is where descriptions begin. Options whose
	// names reach past it get their description on the next line.
	DescriptionStartColumn int
	// BlankLinesBetweenOptions separates entries with an empty line.
	BlankLinesBetweenOptions bool
	// Width wraps descriptions at this column when positive.
	Width int
}

// DefaultHelpParams returns the standard layout: names indented by two,
// descriptions at column six, no wrapping.
func DefaultHelpParams() HelpParams {
	return HelpParams{Indent: 2, DescriptionStartColumn: 6}
}

// minGap is the least space kept between a name and its description.
const minGap = 2

// Help renders the option table. Hidden options and options without a
// description are left out.
func (p *Parser) Help(params HelpParams) string {
	return p.table.Help(params)
}

// PrintHelp writes the help text to w.
func (p *Parser) PrintHelp(w io.Writer, params HelpParams) error {
	_, err := io.WriteString(w, p.Help(params))
	return err
}

// Help renders the table as described on Parser.Help.
func (t Table) Help(params HelpParams) string {
	b := strbuf.Open()
	defer b.Close()

	for i := range t {
		o := &t[i]
		if o.Description == "" || o.Hidden() {
			continue
		}

		b.Pad(params.Indent)
		n := params.Indent
		switch {
		case o.Short != 0 && o.Long != "":
			b.Printf("-%c, --%s", o.Short, o.Long)
			n += 6 + utf8.RuneCountInString(o.Long)
		case o.Long != "":
			b.Printf("--%s", o.Long)
			n += 2 + utf8.RuneCountInString(o.Long)
		default:
			b.Printf("-%c", o.Short)
			n += 2
		}

		if o.TakesValue() {
			format := "=%s"
			if o.ValueOptional() {
				format = "[=%s]"
			}
			b.Printf(format, o.ArgDescription)
			n += len(format) - 2 + utf8.RuneCountInString(o.ArgDescription)
		}

		col := params.DescriptionStartColumn
		if n+minGap > col {
			b.WriteByte('\n')
			n = 0
		}
		b.Pad(col - n)
		writeDescription(b, o.Description, col, params.Width)
		b.WriteByte('\n')

		if params.BlankLinesBetweenOptions {
			b.WriteByte('\n')
		}
	}

	s, _ := b.Finalize()
	return s
}

// writeDescription writes text starting at column col. With a positive
// width, words are wrapped so no line passes it unless a single word is
// longer than the space available.
func writeDescription(b *strbuf.Buffer, text string, col, width int) {
	if width <= col {
		b.WriteString(strings.ReplaceAll(text, "\n", "\n"+strings.Repeat(" ", col)))
		return
	}

	avail := width - col
	for pi, para := range strings.Split(text, "\n") {
		if pi > 0 {
			b.WriteByte('\n')
			b.Pad(col)
		}
		used := 0
		for _, word := range strings.Fields(para) {
			wl := utf8.RuneCountInString(word)
			if used > 0 && used+1+wl > avail {
				b.WriteByte('\n')
				b.Pad(col)
				used = 0
			}
			if used > 0 {
				b.WriteByte(' ')
				used++
			}
			b.WriteString(word)
			used += wl
		}
	}
}
