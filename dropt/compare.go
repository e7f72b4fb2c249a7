package dropt

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// Comparer reports whether an option name from the table matches the
// name found on the command line. The same Comparer is used for short
// and long names.
type Comparer func(tableName, argName string) bool

// ExactMatch is the default, case-sensitive Comparer.
func ExactMatch(a, b string) bool { return a == b }

// CaseInsensitive matches names under Unicode case folding, so "-N"
// finds 'n' and "--NORMALFLAG" finds "normalFlag".
func CaseInsensitive(a, b string) bool {
	if a == b {
		return true
	}
	// Full folding only differs from simple folding outside ASCII
	// ("ß" folds to "ss").
	if isASCII(a) && isASCII(b) {
		return strings.EqualFold(a, b)
	}
	// A Caser keeps state between calls and cannot be shared.
	fold := cases.Fold()
	return fold.String(a) == fold.String(b)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
