package pool

import (
	"sync"
	"testing"
)

func TestPool_ResetRunsOnGet(t *testing.T) {
	resets := 0
	p := NewWithReset(
		func() *[]int {
			s := make([]int, 0, 8)
			return &s
		},
		func(s *[]int) {
			*s = (*s)[:0]
			resets++
		},
	)

	s := p.Get()
	*s = append(*s, 1, 2, 3)
	p.Put(s)

	s = p.Get()
	if resets != 2 {
		t.Errorf("expected reset on each Get, got %d calls", resets)
	}
	if len(*s) != 0 {
		t.Errorf("expected empty slice after reset, got length %d", len(*s))
	}
}

func TestPool_Limit(t *testing.T) {
	p := New(func() *int { return new(int) })
	p.SetLimit(2)

	objs := []*int{p.Get(), p.Get(), p.Get()}
	for _, o := range objs {
		p.Put(o)
	}

	pooled, dropped := p.Stats()
	if pooled > 2 {
		t.Errorf("expected at most 2 pooled objects, got %d", pooled)
	}
	if dropped != 1 {
		t.Errorf("expected 1 dropped object, got %d", dropped)
	}
}

func TestPool_PutNil(t *testing.T) {
	p := New(func() *int { return new(int) })
	p.Put(nil)
	if pooled, _ := p.Stats(); pooled != 0 {
		t.Errorf("nil must not be pooled, stats report %d", pooled)
	}
}

func TestPool_Concurrent(t *testing.T) {
	p := New(func() *[]byte {
		b := make([]byte, 0, 64)
		return &b
	})

	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := range 500 {
				b := p.Get()
				*b = append((*b)[:0], byte(id), byte(j))
				p.Put(b)
			}
		}(i)
	}
	wg.Wait()
}

func TestBufferPool_Get(t *testing.T) {
	bp := NewBufferPool()

	tests := []struct {
		request int
		wantCap int
	}{
		{0, 256},
		{1, 256},
		{256, 256},
		{257, 512},
		{3000, 4096},
		{8192, 8192},
		{10000, 10000},
	}

	for _, tt := range tests {
		buf := bp.Get(tt.request)
		if len(*buf) != 0 {
			t.Errorf("Get(%d): expected empty buffer, got length %d", tt.request, len(*buf))
		}
		if cap(*buf) != tt.wantCap {
			t.Errorf("Get(%d): expected capacity %d, got %d", tt.request, tt.wantCap, cap(*buf))
		}
		if got := BucketSize(tt.request); got != tt.wantCap {
			t.Errorf("BucketSize(%d) = %d, want %d", tt.request, got, tt.wantCap)
		}
		bp.Put(buf)
	}
}

func TestBufferPool_ReusedBufferIsEmpty(t *testing.T) {
	bp := NewBufferPool()

	buf := bp.Get(512)
	*buf = append(*buf, "stale"...)
	bp.Put(buf)

	buf = bp.Get(512)
	if len(*buf) != 0 {
		t.Errorf("expected reset buffer, got %q", *buf)
	}
}

func TestBufferPool_OddCapacityIgnored(t *testing.T) {
	bp := NewBufferPool()
	odd := make([]byte, 0, 300)
	bp.Put(&odd)

	buf := bp.Get(300)
	if cap(*buf) != 512 {
		t.Errorf("expected bucket capacity 512, got %d", cap(*buf))
	}
}

func TestSharedBuffers(t *testing.T) {
	buf := GetBuffer(100)
	if cap(*buf) < 100 {
		t.Errorf("expected capacity >= 100, got %d", cap(*buf))
	}
	PutBuffer(buf)
	PutBuffer(nil)
}
