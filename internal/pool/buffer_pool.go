// Package pool provides fixed-size byte buffer reuse. The buffered
// streamer takes its working buffer from a BufferPool, so repeated Stream
// calls (one per file) reuse buffers instead of allocating a fresh one
// each time.
package pool

import "sync"

// BufferPool hands out fixed-size byte slices and takes them back,
// sized for one tokenizer working buffer.
type BufferPool struct {
	pool sync.Pool
	size int
}

// NewBufferPool creates a pool of buffers of exactly size bytes.
func NewBufferPool(size int) *BufferPool {
	return &BufferPool{
		pool: sync.Pool{
			New: func() interface{} {
				buf := make([]byte, size)
				return &buf
			},
		},
		size: size,
	}
}

// Get retrieves a size-length buffer from the pool, allocating a new one
// if none are available.
func (bp *BufferPool) Get() []byte {
	return *bp.pool.Get().(*[]byte)
}

// Put returns buffer to the pool for reuse. buffer must have been
// obtained from Get (its length must equal the pool's size).
func (bp *BufferPool) Put(buffer []byte) {
	if len(buffer) != bp.size {
		return
	}
	bp.pool.Put(&buffer)
}
