package model

import "sync"

// BufferPool recycles next-generation cell buffers between updates
type BufferPool struct {
	pool sync.Pool
}

func NewBufferPool() *BufferPool {
	return &BufferPool{
		pool: sync.Pool{
			New: func() interface{} {
				return new([]Cell)
			},
		},
	}
}

// Get retrieves a buffer of length n with every cell Empty
func (p *BufferPool) Get(n int) []Cell {
	buf := p.pool.Get().(*[]Cell)
	if cap(*buf) < n {
		*buf = make([]Cell, n)
	}
	cells := (*buf)[:n]
	clear(cells)
	return cells
}

// Put returns a buffer to the pool. A nil pool drops the buffer.
func (p *BufferPool) Put(cells []Cell) {
	if p == nil {
		return
	}
	p.pool.Put(&cells)
}
