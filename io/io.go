// Package droptio handles terminal output for dropt programs: width
// detection for help wrapping, color support and a levelled logger.
package droptio

import (
	stdio "io"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/dzonerzy/go-dropt/dropt"
)

// platform is implemented per OS in term_unix.go and term_windows.go.
type platform interface {
	isTerminal(f *os.File) bool
	termSize(f *os.File) (width, height int, ok bool)
	enableVirtualTerminal() bool
}

type colorMode int

const (
	colorAuto colorMode = iota
	colorForced
	colorDisabled
)

// Manager centralizes output streams and terminal capabilities.
type Manager struct {
	out stdio.Writer
	err stdio.Writer

	color     colorMode
	level     int
	haveLevel bool

	p platform
}

// New returns a manager bound to the process stdout and stderr.
func New() *Manager {
	return &Manager{out: os.Stdout, err: os.Stderr, p: newPlatform()}
}

// WithOut sets the standard output writer.
func (m *Manager) WithOut(w stdio.Writer) *Manager { m.out = w; return m }

// WithErr sets the standard error writer.
func (m *Manager) WithErr(w stdio.Writer) *Manager { m.err = w; return m }

// ForceColor turns color on regardless of the environment.
func (m *Manager) ForceColor() *Manager { m.color = colorForced; return m }

// NoColor turns color off regardless of the environment.
func (m *Manager) NoColor() *Manager { m.color = colorDisabled; return m }

// ColorAuto goes back to detecting color support.
func (m *Manager) ColorAuto() *Manager { m.color = colorAuto; return m }

// ForceColorLevel pins the level reported by ColorLevel (0=none, 1=16,
// 2=256, 3=truecolor).
func (m *Manager) ForceColorLevel(level int) *Manager {
	m.level, m.haveLevel = level, true
	return m
}

// Out returns the standard output writer.
func (m *Manager) Out() stdio.Writer { return m.out }

// Err returns the standard error writer.
func (m *Manager) Err() stdio.Writer { return m.err }

// IsTTY reports whether the output writer is a terminal.
func (m *Manager) IsTTY() bool {
	f, ok := m.out.(*os.File)
	return ok && m.p.isTerminal(f)
}

// Width returns the terminal width, then $COLUMNS, then 80.
func (m *Manager) Width() int {
	if f, ok := m.out.(*os.File); ok {
		if w, _, ok := m.p.termSize(f); ok {
			return w
		}
	}
	if w, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && w > 0 {
		return w
	}
	return 80
}

// HelpParams returns the default help layout wrapped one column short of
// the terminal width.
func (m *Manager) HelpParams() dropt.HelpParams {
	params := dropt.DefaultHelpParams()
	params.Width = m.Width() - 1
	return params
}

// SupportsColor applies NoColor/ForceColor, then $NO_COLOR and
// $FORCE_COLOR, then terminal detection.
func (m *Manager) SupportsColor() bool {
	switch m.color {
	case colorDisabled:
		return false
	case colorForced:
		return true
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if !m.IsTTY() {
		return false
	}
	term := os.Getenv("TERM")
	return goos() == "windows" || (term != "" && term != "dumb")
}

// ColorLevel returns 0 for none, 1 for 16 colors, 2 for 256 colors and 3
// for truecolor.
func (m *Manager) ColorLevel() int {
	if m.haveLevel {
		return m.level
	}
	if !m.SupportsColor() {
		return 0
	}
	switch ct := os.Getenv("COLORTERM"); ct {
	case "truecolor", "24bit":
		return 3
	}
	if os.Getenv("WT_SESSION") != "" {
		return 3
	}
	term := os.Getenv("TERM")
	if strings.Contains(term, "256color") {
		return 2
	}
	return 1
}

// EnableVirtualTerminal turns on ANSI processing for Windows consoles. It
// is a no-op elsewhere.
func (m *Manager) EnableVirtualTerminal() bool { return m.p.enableVirtualTerminal() }

// Colorize wraps s in the SGR code when color is supported.
func (m *Manager) Colorize(s, code string) string {
	if !m.SupportsColor() {
		return s
	}
	return "\x1b[" + code + "m" + s + "\x1b[0m"
}

// Bold renders s in bold when color is supported.
func (m *Manager) Bold(s string) string { return m.Colorize(s, "1") }

var goos = func() string { return runtime.GOOS }
