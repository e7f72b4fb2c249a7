package droptio

import (
	"strconv"
	"strings"
)

// ColorSpec is a color in one of three spaces: the 16 basic colors, the
// 256-color palette, or 24-bit RGB.
type ColorSpec struct {
	kind    int // 1=basic, 2=indexed, 3=truecolor
	index   int
	r, g, b uint8
}

// Basic colors, normal then bright.
var (
	Red     = basic(1)
	Green   = basic(2)
	Yellow  = basic(3)
	Blue    = basic(4)
	Magenta = basic(5)
	Cyan    = basic(6)

	BrightBlack   = basic(8)
	BrightRed     = basic(9)
	BrightGreen   = basic(10)
	BrightYellow  = basic(11)
	BrightBlue    = basic(12)
	BrightMagenta = basic(13)
	BrightCyan    = basic(14)
)

func basic(i int) ColorSpec { return ColorSpec{kind: 1, index: i} }

// Indexed returns a 256-color palette entry.
func Indexed(i int) ColorSpec { return ColorSpec{kind: 2, index: i} }

// Truecolor returns a 24-bit RGB color.
func Truecolor(r, g, b uint8) ColorSpec { return ColorSpec{kind: 3, r: r, g: g, b: b} }

// code returns the SGR parameters for c at the given color level, or ""
// when the level cannot show it.
func (c ColorSpec) code(level int) string {
	switch c.kind {
	case 1:
		if c.index < 8 {
			return strconv.Itoa(30 + c.index)
		}
		return strconv.Itoa(90 + c.index - 8)
	case 2:
		if level >= 2 {
			return "38;5;" + strconv.Itoa(c.index)
		}
	case 3:
		if level >= 3 {
			return "38;2;" + strconv.Itoa(int(c.r)) + ";" + strconv.Itoa(int(c.g)) + ";" + strconv.Itoa(int(c.b))
		}
	}
	return ""
}

// Style is a foreground color plus bold/underline attributes.
type Style struct {
	fg              *ColorSpec
	bold, underline bool
}

// NewStyle returns an empty style.
func NewStyle() *Style { return &Style{} }

func (s *Style) Fg(c ColorSpec) *Style { s.fg = &c; return s }
func (s *Style) Bold() *Style          { s.bold = true; return s }
func (s *Style) Underline() *Style     { s.underline = true; return s }

// Sprint styles text for m, or returns it unchanged when m has no color.
func (s *Style) Sprint(m *Manager, text string) string {
	if !m.SupportsColor() {
		return text
	}
	var codes []string
	if s.bold {
		codes = append(codes, "1")
	}
	if s.underline {
		codes = append(codes, "4")
	}
	if s.fg != nil {
		if c := s.fg.code(m.ColorLevel()); c != "" {
			codes = append(codes, c)
		}
	}
	if len(codes) == 0 {
		return text
	}
	return "\x1b[" + strings.Join(codes, ";") + "m" + text + "\x1b[0m"
}

// Theme assigns a color to each log level.
type Theme struct {
	Debug, Info, Success, Warning, Error ColorSpec
}

// DefaultTheme picks colors the terminal behind m can show.
func DefaultTheme(m *Manager) Theme {
	t := Theme{
		Debug:   BrightMagenta,
		Info:    BrightCyan,
		Success: BrightGreen,
		Warning: BrightYellow,
		Error:   BrightRed,
	}
	switch m.ColorLevel() {
	case 3:
		t.Debug = Truecolor(189, 147, 249)
		t.Warning = Truecolor(255, 184, 108)
	case 2:
		t.Debug = Indexed(141)
	}
	return t
}
