// Package dropt parses command-line options described by a table.
//
// Each Option names a short and/or long form and a Handler that receives
// the option's value. Parse walks the arguments in order, stops at the
// first operand, "--", a lone "-", a halting option or an error, and
// returns the arguments it did not consume:
//
//	var verbose bool
//	var level int
//	p := dropt.MustParser([]dropt.Option{
//		{Short: 'v', Long: "verbose", Description: "Verbose output.", Handler: dropt.Bool(&verbose)},
//		{Short: 'l', Long: "level", Description: "Log level.", ArgDescription: "N", Handler: dropt.Int(&level)},
//	})
//	rest, err := p.Parse(os.Args[1:])
//
// Errors carry an ErrorKind and a message that a Formatter can replace.
// Help renders the table for usage output.
package dropt
