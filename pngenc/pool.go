package pngenc

import "sync"

type syncBufferPool struct {
	pool sync.Pool
}

func (p *syncBufferPool) Get() *EncoderBuffer {
	return p.pool.Get().(*EncoderBuffer)
}

func (p *syncBufferPool) Put(buf *EncoderBuffer) {
	p.pool.Put(buf)
}

// NewBufferPool returns a BufferPool safe for use by concurrent encoders.
func NewBufferPool() BufferPool {
	return &syncBufferPool{
		pool: sync.Pool{
			New: func() any {
				return &EncoderBuffer{}
			},
		},
	}
}
