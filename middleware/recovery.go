package middleware

import (
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/dzonerzy/go-dropt/dropt"
)

// Recovery turns a panicking handler into an ErrorKindUnknown failure
// whose cause is a *RecoveryError, so Parse reports it like any other
// handler error.
func Recovery(options ...Option) dropt.Middleware {
	config := newConfig(options)
	return RecoveryWithHandler(func(re *RecoveryError) error {
		if config.PrintStack && len(re.Stack) > 0 {
			fmt.Fprintf(os.Stderr, "PANIC in handler for %s: %v\n", re.Option, re.Panic)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", re.Stack)
		}
		return &dropt.HandlerError{Kind: dropt.ErrorKindUnknown, Cause: re}
	}, options...)
}

// RecoveryWithHandler calls handle for every recovered panic and returns
// its result from the handler.
func RecoveryWithHandler(handle func(*RecoveryError) error, options ...Option) dropt.Middleware {
	config := newConfig(options)
	return func(opt *dropt.Option, next dropt.Handler) dropt.Handler {
		return func(v dropt.Value) (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = handle(&RecoveryError{
						Panic:  r,
						Option: opt.Name(),
						Stack:  captureStack(config.StackSize),
					})
				}
			}()
			return next(v)
		}
	}
}

func captureStack(size int) []byte {
	if size <= 0 {
		return nil
	}
	stack := make([]byte, size)
	return stack[:runtime.Stack(stack, false)]
}

// RecoveryStats counts recovered panics per option.
type RecoveryStats struct {
	mu       sync.Mutex
	total    int
	byOption map[string]int
	last     *RecoveryError
}

// NewRecoveryStats returns an empty tracker.
func NewRecoveryStats() *RecoveryStats {
	return &RecoveryStats{byOption: make(map[string]int)}
}

// Total returns the number of panics seen.
func (s *RecoveryStats) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

// Count returns the number of panics seen for one option ("--name").
func (s *RecoveryStats) Count(option string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.byOption[option]
}

// Last returns the most recent panic, or nil.
func (s *RecoveryStats) Last() *RecoveryError {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

func (s *RecoveryStats) record(re *RecoveryError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.total++
	s.byOption[re.Option]++
	s.last = re
}

// RecoveryWithStats is Recovery that also records each panic in stats.
func RecoveryWithStats(stats *RecoveryStats, options ...Option) dropt.Middleware {
	return RecoveryWithHandler(func(re *RecoveryError) error {
		stats.record(re)
		return &dropt.HandlerError{Kind: dropt.ErrorKindUnknown, Cause: re}
	}, options...)
}
