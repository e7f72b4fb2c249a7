// Package strbuf implements the growable string buffer used to assemble
// help text and error messages.
//
// A Buffer always keeps at least one spare byte of capacity beyond its
// content, grows geometrically, and hands its content out exactly once
// through Finalize.
package strbuf

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/dzonerzy/go-dropt/internal/pool"
)

// DefaultCapacity is the capacity of a freshly opened or cleared buffer.
const DefaultCapacity = 256

var (
	// ErrInsufficientMemory is returned when growing the buffer would
	// exceed its capacity limit.
	ErrInsufficientMemory = errors.New("strbuf: insufficient memory")

	// ErrFinalized is returned by every operation on a finalized or
	// closed buffer.
	ErrFinalized = errors.New("strbuf: buffer already finalized")
)

// Buffer is an append-only string builder. The zero value is not usable;
// call Open.
type Buffer struct {
	buf   *[]byte
	limit int
	done  bool
}

// Open returns an empty buffer with DefaultCapacity and no size limit.
func Open() *Buffer {
	return OpenLimit(0)
}

// OpenLimit returns an empty buffer whose capacity may never exceed
// limit bytes. A limit of zero disables the check; limits below
// DefaultCapacity are raised to it.
func OpenLimit(limit int) *Buffer {
	if limit > 0 && limit < DefaultCapacity {
		limit = DefaultCapacity
	}
	return &Buffer{
		buf:   pool.GetBuffer(DefaultCapacity),
		limit: limit,
	}
}

// Len returns the number of bytes written.
func (b *Buffer) Len() int {
	if b.done {
		return 0
	}
	return len(*b.buf)
}

// Cap returns the allocated capacity.
func (b *Buffer) Cap() int {
	if b.done {
		return 0
	}
	return cap(*b.buf)
}

// String returns a copy of the current content without finalizing.
func (b *Buffer) String() string {
	if b.done {
		return ""
	}
	return string(*b.buf)
}

// reserve makes room for n more bytes while keeping one byte spare.
func (b *Buffer) reserve(n int) error {
	if b.done {
		return ErrFinalized
	}
	used, size := len(*b.buf), cap(*b.buf)
	need := used + n + 1
	if need <= size {
		return nil
	}

	grow := max(size*2, need)
	if b.limit > 0 && grow > b.limit {
		if need > b.limit {
			return ErrInsufficientMemory
		}
		grow = b.limit
	}

	var next *[]byte
	if b.limit > 0 && pool.BucketSize(grow) > b.limit {
		buf := make([]byte, 0, grow)
		next = &buf
	} else {
		next = pool.GetBuffer(grow)
	}
	*next = append(*next, *b.buf...)
	pool.PutBuffer(b.buf)
	b.buf = next
	return nil
}

// WriteString appends s. On failure nothing is written and the existing
// content is left untouched.
func (b *Buffer) WriteString(s string) (int, error) {
	if err := b.reserve(len(s)); err != nil {
		return 0, err
	}
	*b.buf = append(*b.buf, s...)
	return len(s), nil
}

// Write implements io.Writer.
func (b *Buffer) Write(p []byte) (int, error) {
	if err := b.reserve(len(p)); err != nil {
		return 0, err
	}
	*b.buf = append(*b.buf, p...)
	return len(p), nil
}

// WriteByte appends a single byte.
func (b *Buffer) WriteByte(c byte) error {
	if err := b.reserve(1); err != nil {
		return err
	}
	*b.buf = append(*b.buf, c)
	return nil
}

// WriteRune appends the UTF-8 encoding of r.
func (b *Buffer) WriteRune(r rune) (int, error) {
	n := utf8.RuneLen(r)
	if n < 0 {
		n = utf8.RuneLen(utf8.RuneError)
	}
	if err := b.reserve(n); err != nil {
		return 0, err
	}
	*b.buf = utf8.AppendRune(*b.buf, r)
	return n, nil
}

// Pad appends n spaces. Negative counts write nothing.
func (b *Buffer) Pad(n int) error {
	if n <= 0 {
		return nil
	}
	if err := b.reserve(n); err != nil {
		return err
	}
	for range n {
		*b.buf = append(*b.buf, ' ')
	}
	return nil
}

// Printf appends formatted text. The formatted length is measured first
// so the buffer grows at most once per call.
func (b *Buffer) Printf(format string, args ...any) (int, error) {
	if b.done {
		return 0, ErrFinalized
	}
	var c counter
	fmt.Fprintf(&c, format, args...)
	if err := b.reserve(int(c)); err != nil {
		return 0, err
	}
	*b.buf = fmt.Appendf(*b.buf, format, args...)
	return int(c), nil
}

// Clear drops the content and returns the capacity to DefaultCapacity.
func (b *Buffer) Clear() {
	if b.done {
		return
	}
	if cap(*b.buf) != DefaultCapacity {
		pool.PutBuffer(b.buf)
		b.buf = pool.GetBuffer(DefaultCapacity)
		return
	}
	*b.buf = (*b.buf)[:0]
}

// Finalize returns the content as an exactly sized string and releases
// the buffer. Any later call on b fails with ErrFinalized.
func (b *Buffer) Finalize() (string, error) {
	if b.done {
		return "", ErrFinalized
	}
	s := string(*b.buf)
	b.Close()
	return s, nil
}

// Close releases the buffer without producing its content.
func (b *Buffer) Close() {
	if b.done {
		return
	}
	pool.PutBuffer(b.buf)
	b.buf = nil
	b.done = true
}

type counter int

func (c *counter) Write(p []byte) (int, error) {
	*c += counter(len(p))
	return len(p), nil
}
