// Package queue implements the bounded single-producer/single-consumer
// byte queue the master's reader and each per-worker sender communicate
// through (spec §4.6). SPSC is the lock-free ring, canonical per
// DESIGN.md's Open Question resolution; CondQueue in condqueue.go is the
// condition-variable variant spec §4.6 also allows.
//
// Both variants share the same non-blocking contract: push/pop copy
// whatever fits and report how much, they never block. Backpressure shows
// up only in those counts (0 when the ring is full or empty); no queue
// operation returns an error.
package queue

import (
	"sync/atomic"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock re-exports iox.ErrWouldBlock (from
// code.hybscloud.com/iox) so callers need not import iox directly. Push,
// Pop and PushAll do not return it.
var ErrWouldBlock = iox.ErrWouldBlock

// SPSC is a fixed-capacity ring buffer with exactly one producer goroutine
// calling WriteAvailable/Push and exactly one consumer goroutine calling
// Pop. head and tail are only ever advanced by their respective owner,
// so no locking is required; the atomics exist purely to publish the
// cross-goroutine visibility of those advances.
type SPSC struct {
	buf  []byte
	cap  uint64
	head uint64 // next read position, advanced by consumer
	tail uint64 // next write position, advanced by producer

	finished atomic.Bool // producer signals no more data is coming
}

// New creates an SPSC ring of the given capacity in bytes.
func New(capacity int) *SPSC {
	if capacity <= 0 {
		capacity = 1
	}
	return &SPSC{
		buf: make([]byte, capacity),
		cap: uint64(capacity),
	}
}

// Cap returns the ring's fixed capacity.
func (q *SPSC) Cap() int { return int(q.cap) }

// WriteAvailable returns the number of bytes the producer can currently
// push without blocking. Producer-side only.
func (q *SPSC) WriteAvailable() int {
	head := atomic.LoadUint64(&q.head)
	tail := atomic.LoadUint64(&q.tail)
	used := tail - head
	return int(q.cap - used)
}

// ReadAvailable returns the number of bytes the consumer can currently
// pop. Consumer-side only.
func (q *SPSC) ReadAvailable() int {
	head := atomic.LoadUint64(&q.head)
	tail := atomic.LoadUint64(&q.tail)
	return int(tail - head)
}

// Push copies as much of data as fits into the ring and returns the
// number of bytes accepted. Producer-side only; never blocks.
func (q *SPSC) Push(data []byte) (n int) {
	avail := q.WriteAvailable()
	if avail <= 0 {
		return 0
	}
	if len(data) < avail {
		avail = len(data)
	}

	tail := atomic.LoadUint64(&q.tail)
	for i := 0; i < avail; i++ {
		q.buf[(tail+uint64(i))%q.cap] = data[i]
	}
	atomic.AddUint64(&q.tail, uint64(avail))
	return avail
}

// PushAll loops Push until every byte of data has been accepted, yielding
// to the scheduler between attempts. This is the discipline spec §4.6
// requires of a producer that ignores WriteAvailable.
func (q *SPSC) PushAll(data []byte) {
	for len(data) > 0 {
		n := q.Push(data)
		data = data[n:]
		if len(data) > 0 {
			yield()
		}
	}
}

// Pop copies up to len(dst) available bytes into dst and returns the
// number popped. Consumer-side only; never blocks.
func (q *SPSC) Pop(dst []byte) (n int) {
	avail := q.ReadAvailable()
	if avail <= 0 {
		return 0
	}
	if len(dst) < avail {
		avail = len(dst)
	}

	head := atomic.LoadUint64(&q.head)
	for i := 0; i < avail; i++ {
		dst[i] = q.buf[(head+uint64(i))%q.cap]
	}
	atomic.AddUint64(&q.head, uint64(avail))
	return avail
}

// Finish marks the producer done; the consumer observes this once
// ReadAvailable reaches zero. Producer-side only, called once.
func (q *SPSC) Finish() { q.finished.Store(true) }

// Drained reports whether the producer has finished and every pushed byte
// has been popped. Consumer-side only.
func (q *SPSC) Drained() bool {
	return q.finished.Load() && q.ReadAvailable() == 0
}
