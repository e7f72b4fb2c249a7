package middleware

import (
	"encoding/json"
	"io"
	"strconv"
	"time"

	"github.com/dzonerzy/go-dropt/dropt"
	droptio "github.com/dzonerzy/go-dropt/io"
	"github.com/dzonerzy/go-dropt/internal/pool"
)

// traceEntry describes one handler call.
type traceEntry struct {
	Option   string
	Value    dropt.Value
	Start    time.Time
	Duration time.Duration
	Err      error
}

var entryPool = pool.NewWithReset(
	func() *traceEntry { return &traceEntry{} },
	func(e *traceEntry) { *e = traceEntry{} },
)

var now = time.Now

func traced(emit func(*traceEntry)) dropt.Middleware {
	return func(opt *dropt.Option, next dropt.Handler) dropt.Handler {
		return func(v dropt.Value) error {
			e := entryPool.Get()
			defer entryPool.Put(e)

			e.Option, e.Value, e.Start = opt.Name(), v, now()
			err := next(v)
			e.Duration, e.Err = now().Sub(e.Start), err

			emit(e)
			return err
		}
	}
}

// Trace logs every handler call at debug level. Nothing is formatted
// unless the logger has debug enabled.
func Trace(logger *droptio.Logger, options ...Option) dropt.Middleware {
	config := newConfig(options)
	return traced(func(e *traceEntry) {
		if !logger.Enabled(droptio.LevelDebug) {
			return
		}
		buf := pool.GetBuffer(128)
		defer pool.PutBuffer(buf)
		*buf = appendText(*buf, e, config)
		logger.Debug("%s", *buf)
	})
}

// TraceWriter writes one line per handler call to w, as text or JSON.
func TraceWriter(w io.Writer, options ...Option) dropt.Middleware {
	config := newConfig(options)
	return traced(func(e *traceEntry) {
		buf := pool.GetBuffer(256)
		defer pool.PutBuffer(buf)

		if config.Format == FormatJSON {
			*buf = appendJSON(*buf, e, config)
		} else {
			*buf = append(*buf, '[')
			*buf = e.Start.AppendFormat(*buf, "2006-01-02 15:04:05")
			*buf = append(*buf, "] "...)
			*buf = appendText(*buf, e, config)
		}
		*buf = append(*buf, '\n')

		//nolint:errcheck,gosec // tracing is best-effort
		w.Write(*buf)
	})
}

func appendText(buf []byte, e *traceEntry, config *Config) []byte {
	buf = append(buf, "option="...)
	buf = append(buf, e.Option...)
	if config.Values && e.Value.Set() {
		buf = append(buf, " value="...)
		buf = strconv.AppendQuote(buf, e.Value.String())
	}
	buf = append(buf, " duration="...)
	buf = append(buf, e.Duration.String()...)
	if e.Err != nil {
		buf = append(buf, " error="...)
		buf = strconv.AppendQuote(buf, e.Err.Error())
	}
	return buf
}

func appendJSON(buf []byte, e *traceEntry, config *Config) []byte {
	buf = append(buf, `{"timestamp":"`...)
	buf = e.Start.AppendFormat(buf, time.RFC3339)
	buf = append(buf, `","option":`...)
	buf = appendJSONString(buf, e.Option)
	if config.Values && e.Value.Set() {
		buf = append(buf, `,"value":`...)
		buf = appendJSONString(buf, e.Value.String())
	}
	buf = append(buf, `,"duration_us":`...)
	buf = strconv.AppendInt(buf, e.Duration.Microseconds(), 10)
	if e.Err != nil {
		buf = append(buf, `,"error":`...)
		buf = appendJSONString(buf, e.Err.Error())
	}
	return append(buf, '}')
}

func appendJSONString(buf []byte, s string) []byte {
	enc, _ := json.Marshal(s)
	return append(buf, enc...)
}
