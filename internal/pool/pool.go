// Package pool recycles the byte buffers used to build help text and
// error messages so repeated rendering does not churn the allocator.
package pool

import (
	"sync"
	"sync/atomic"
)

// Pool is a typed wrapper over sync.Pool with an optional reset hook and
// an optional cap on the number of objects it hands back out.
type Pool[T any] struct {
	pool    sync.Pool
	reset   func(*T)
	limit   int64
	pooled  atomic.Int64
	dropped atomic.Int64
}

// New creates a pool whose empty slots are filled by factory.
func New[T any](factory func() *T) *Pool[T] {
	p := &Pool[T]{}
	p.pool.New = func() any { return factory() }
	return p
}

// NewWithReset creates a pool that runs reset on every object it returns.
func NewWithReset[T any](factory func() *T, reset func(*T)) *Pool[T] {
	p := New(factory)
	p.reset = reset
	return p
}

// Get returns a pooled object, or a fresh one.
func (p *Pool[T]) Get() *T {
	obj := p.pool.Get().(*T)
	if p.pooled.Load() > 0 {
		p.pooled.Add(-1)
	}
	if p.reset != nil {
		p.reset(obj)
	}
	return obj
}

// Put hands obj back. Objects beyond the limit are dropped.
func (p *Pool[T]) Put(obj *T) {
	if obj == nil {
		return
	}
	if limit := p.limit; limit > 0 && p.pooled.Load() >= limit {
		p.dropped.Add(1)
		return
	}
	p.pooled.Add(1)
	p.pool.Put(obj)
}

// SetLimit bounds how many objects Put keeps. Zero means unbounded.
// It must be called before the pool is shared.
func (p *Pool[T]) SetLimit(n int) {
	p.limit = int64(n)
}

// Stats reports the approximate number of pooled objects and how many
// Put calls were discarded because of the limit.
func (p *Pool[T]) Stats() (pooled, dropped int64) {
	return p.pooled.Load(), p.dropped.Load()
}

// Bucket sizes for BufferPool. The smallest matches the default string
// buffer capacity.
var bucketSizes = [...]int{256, 512, 1024, 2048, 4096, 8192}

// BufferPool keeps byte slices in power-of-two capacity buckets.
// Requests larger than the biggest bucket are allocated directly and
// never pooled.
type BufferPool struct {
	buckets [len(bucketSizes)]*Pool[[]byte]
}

// NewBufferPool creates an empty bucketed buffer pool.
func NewBufferPool() *BufferPool {
	bp := &BufferPool{}
	for i, size := range bucketSizes {
		size := size
		bp.buckets[i] = NewWithReset(
			func() *[]byte {
				buf := make([]byte, 0, size)
				return &buf
			},
			func(buf *[]byte) { *buf = (*buf)[:0] },
		)
	}
	return bp
}

// Get returns an empty buffer with capacity of at least n.
func (bp *BufferPool) Get(n int) *[]byte {
	i := bucketIndex(n)
	if i < 0 {
		buf := make([]byte, 0, n)
		return &buf
	}
	return bp.buckets[i].Get()
}

// Put returns buf to the bucket matching its capacity exactly. Buffers
// that were grown by append to an odd size are left to the collector.
func (bp *BufferPool) Put(buf *[]byte) {
	if buf == nil {
		return
	}
	c := cap(*buf)
	for i, size := range bucketSizes {
		if size == c {
			bp.buckets[i].Put(buf)
			return
		}
	}
}

// BucketSize returns the capacity Get would hand out for n, or n itself
// when no bucket is large enough.
func BucketSize(n int) int {
	if i := bucketIndex(n); i >= 0 {
		return bucketSizes[i]
	}
	return n
}

func bucketIndex(n int) int {
	for i, size := range bucketSizes {
		if size >= n {
			return i
		}
	}
	return -1
}

var buffers = NewBufferPool()

// GetBuffer fetches a buffer from the shared pool.
func GetBuffer(n int) *[]byte {
	return buffers.Get(n)
}

// PutBuffer releases a buffer to the shared pool.
func PutBuffer(buf *[]byte) {
	buffers.Put(buf)
}
