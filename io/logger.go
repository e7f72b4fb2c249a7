package droptio

import (
	"fmt"
	stdio "io"
	"strings"
	"time"

	"github.com/dzonerzy/go-dropt/internal/pool"
)

// LogLevel is the severity of a log message.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelSuccess
	LevelWarning
	LevelError
)

func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelSuccess:
		return "SUCCESS"
	case LevelWarning:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// LogFormat selects the prefix written before each message.
type LogFormat int

const (
	LogFormatCircles LogFormat = iota // 🔵 🟢 🟡 🔴 🟣
	LogFormatSymbols                  // ◆ ✓ ▲ ✗ ●
	LogFormatTagged                   // [INFO] [WARN] ...
	LogFormatPlain                    // no prefix
)

var prefixes = [...][5]string{
	LogFormatCircles: {"🟣", "🔵", "🟢", "🟡", "🔴"},
	LogFormatSymbols: {"●", "◆", "✓", "▲", "✗"},
	LogFormatTagged:  {"[DEBUG]", "[INFO]", "[SUCCESS]", "[WARN]", "[ERROR]"},
	LogFormatPlain:   {},
}

// Logger writes levelled messages. Warnings and errors go to the error
// writer unless ErrorsToStderr(false) is set.
type Logger struct {
	io           *Manager
	format       LogFormat
	min          LogLevel
	withTime     bool
	timeFormat   string
	errorsStderr bool
	theme        Theme
	now          func() time.Time
}

// NewLogger returns a logger bound to m that drops Debug messages.
func NewLogger(m *Manager) *Logger {
	return &Logger{
		io:           m,
		format:       LogFormatCircles,
		min:          LevelInfo,
		timeFormat:   "15:04:05",
		errorsStderr: true,
		theme:        DefaultTheme(m),
		now:          time.Now,
	}
}

// WithFormat sets the prefix style.
func (l *Logger) WithFormat(format LogFormat) *Logger {
	l.format = format
	return l
}

// WithLevel sets the lowest level that is written.
func (l *Logger) WithLevel(level LogLevel) *Logger {
	l.min = level
	return l
}

// WithTimestamp adds the time after the prefix.
func (l *Logger) WithTimestamp(enabled bool) *Logger {
	l.withTime = enabled
	return l
}

// WithTimeFormat sets the timestamp layout.
func (l *Logger) WithTimeFormat(layout string) *Logger {
	l.timeFormat = layout
	return l
}

// ErrorsToStderr controls where warnings and errors go.
func (l *Logger) ErrorsToStderr(enabled bool) *Logger {
	l.errorsStderr = enabled
	return l
}

// WithTheme replaces the level colors.
func (l *Logger) WithTheme(theme Theme) *Logger {
	l.theme = theme
	return l
}

// Enabled reports whether messages at level are written.
func (l *Logger) Enabled(level LogLevel) bool { return level >= l.min }

// Log writes one message at level.
func (l *Logger) Log(level LogLevel, format string, args ...any) {
	if !l.Enabled(level) {
		return
	}
	msg := fmt.Sprintf(format, args...)

	buf := pool.GetBuffer(len(msg) + 32)
	defer pool.PutBuffer(buf)

	*buf = append(*buf, l.render(level, msg)...)
	*buf = append(*buf, '\n')

	//nolint:errcheck,gosec // logging is best-effort
	l.writer(level).Write(*buf)
}

// render applies prefix, timestamp and color. Blank messages are written
// as they are.
func (l *Logger) render(level LogLevel, msg string) string {
	if strings.TrimSpace(msg) == "" {
		return msg
	}

	var parts []string
	if int(l.format) < len(prefixes) && level >= LevelDebug && level <= LevelError {
		if p := prefixes[l.format][level]; p != "" {
			parts = append(parts, p)
		}
	}
	if l.withTime {
		parts = append(parts, "["+l.now().Format(l.timeFormat)+"]")
	}
	parts = append(parts, msg)
	return l.colorize(level, strings.Join(parts, " "))
}

func (l *Logger) colorize(level LogLevel, text string) string {
	var c ColorSpec
	switch level {
	case LevelDebug:
		c = l.theme.Debug
	case LevelInfo:
		c = l.theme.Info
	case LevelSuccess:
		c = l.theme.Success
	case LevelWarning:
		c = l.theme.Warning
	case LevelError:
		c = l.theme.Error
	default:
		return text
	}
	return NewStyle().Fg(c).Sprint(l.io, text)
}

func (l *Logger) writer(level LogLevel) stdio.Writer {
	if l.errorsStderr && level >= LevelWarning {
		return l.io.Err()
	}
	return l.io.Out()
}

// Debug logs at LevelDebug.
func (l *Logger) Debug(format string, args ...any) { l.Log(LevelDebug, format, args...) }

// Info logs at LevelInfo.
func (l *Logger) Info(format string, args ...any) { l.Log(LevelInfo, format, args...) }

// Success logs at LevelSuccess.
func (l *Logger) Success(format string, args ...any) { l.Log(LevelSuccess, format, args...) }

// Warning logs at LevelWarning.
func (l *Logger) Warning(format string, args ...any) { l.Log(LevelWarning, format, args...) }

// Error logs at LevelError.
func (l *Logger) Error(format string, args ...any) { l.Log(LevelError, format, args...) }
