// Package distributor implements the master's reader-side fan-out (spec
// §4.7): a ports.StreamProcessor that routes a file's bytes across the
// per-worker queues instead of counting them itself, so the buffered
// streamer from internal/adapters/wordcount can drive it exactly the way
// it drives a worker's Counter.
//
// Grounded on the teacher's internal/adapters/stream/wordprocessor's
// buffer-relocation discipline, generalized from "emit words" to "emit
// routed byte ranges," plus the queue selection loop from
// original_source/cpp/src/wc/distributor.h.
package distributor

import (
	"github.com/pkg/errors"

	"github.com/baditaflorin/go_topk_wordcount/internal/core/domain"
	"github.com/baditaflorin/go_topk_wordcount/internal/core/word"
)

// Queue is the subset of queue.SPSC (or queue.CondQueue) the distributor
// needs: enough to pick the least-loaded queue and push a routed range.
type Queue interface {
	WriteAvailable() int
	PushAll(data []byte)
}

// FanOut routes each chunk handed to it by the buffered streamer to
// whichever of its queues currently has the most free space, clamping
// every push to a word boundary so no word is ever split across two
// pushes into different queues.
//
// Process never returns an error (ports.StreamProcessor has no error
// return); a LogicError that spec §4.7 says should abort the whole reader
// is instead latched and surfaced through Err, which the reader checks
// once BufferedStreamer.Stream returns.
type FanOut struct {
	queues []Queue
	err    error
}

// New creates a fan-out distributor over the given queues, in the order
// sender goroutines were spawned for them.
func New(queues []Queue) *FanOut {
	return &FanOut{queues: queues}
}

// Err returns the LogicError latched by Process, if any.
func (f *FanOut) Err() error { return f.err }

// Process implements ports.StreamProcessor.
func (f *FanOut) Process(buf []byte, eof bool) int {
	if f.err != nil {
		return len(buf)
	}

	start := 0
	for start < len(buf) && !word.IsWordChar(buf[start]) {
		start++
	}
	if start == len(buf) {
		return len(buf)
	}

	// bufEnd is the furthest point this call may ever push up to: the
	// whole buffer on eof, or the start of a possibly-incomplete trailing
	// word otherwise — the same resumption rule the tokenizer applies.
	bufEnd := len(buf)
	if !eof && word.IsWordChar(buf[bufEnd-1]) {
		for bufEnd > start && word.IsWordChar(buf[bufEnd-1]) {
			bufEnd--
		}
	}
	if bufEnd == start {
		return start // nothing safe to route yet, wait for more input
	}

	for {
		qi, available := f.mostAvailable()
		for available == 0 {
			yield()
			qi, available = f.mostAvailable()
		}

		remaining := bufEnd - start
		var end int
		if available >= remaining {
			end = bufEnd
		} else {
			end = start + available
			if word.IsWordChar(buf[end]) {
				for end > start && word.IsWordChar(buf[end-1]) {
					end--
				}
			}
		}

		if end == start {
			if available >= remaining {
				f.err = errors.Wrap(domain.ErrLogicError, "cannot advance, eof may be wrong")
				return len(buf)
			}
			yield() // headroom was limited to a single word in progress, retry selection
			continue
		}

		chunk := buf[start:end]
		f.queues[qi].PushAll(chunk)
		if word.IsWordChar(chunk[len(chunk)-1]) {
			f.queues[qi].PushAll([]byte{domain.QueueGuardByte})
		}
		return end
	}
}

// mostAvailable returns the index of the queue with the largest
// WriteAvailable and that value.
func (f *FanOut) mostAvailable() (idx int, available int) {
	for i, q := range f.queues {
		if a := q.WriteAvailable(); i == 0 || a > available {
			idx, available = i, a
		}
	}
	return idx, available
}
