package memory

import "sync"

// Pool is a typed wrapper over sync.Pool.
type Pool[T any] struct {
	p    *sync.Pool
	keep func(*T) bool
}

func NewPool[T any](ctor func() *T) *Pool[T] {
	return &Pool[T]{
		p: &sync.Pool{
			New: func() any { return ctor() },
		},
	}
}

// WithKeep sets a filter applied on Put; objects it rejects are dropped
// instead of pooled, e.g. buffers that grew too large.
func (p *Pool[T]) WithKeep(keep func(*T) bool) *Pool[T] {
	p.keep = keep
	return p
}

func (p *Pool[T]) Get() *T {
	return p.p.Get().(*T)
}

func (p *Pool[T]) Put(v *T) {
	if v == nil || (p.keep != nil && !p.keep(v)) {
		return
	}
	p.p.Put(v)
}

// NewBufferPool pools byte slices of initial capacity size and drops any
// that grew beyond max.
func NewBufferPool(size, max int) *Pool[[]byte] {
	return NewPool(func() *[]byte {
		b := make([]byte, 0, size)
		return &b
	}).WithKeep(func(b *[]byte) bool { return cap(*b) <= max })
}
