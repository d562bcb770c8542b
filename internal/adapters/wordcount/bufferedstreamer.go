// Package wordcount implements the buffered streamer (spec §4.2) and the
// combined tokenizer+WordMap counting operator (spec §4.8,
// SPEC_FULL.md §4's note on the original's word_counter functor).
//
// Grounded on the teacher's internal/adapters/stream/wordprocessor's
// chunk-read-and-relocate loop and internal/adapters/stream/lineprocessor
// /buffer.go's buffer class, generalized into the ports.StreamProcessor
// callback contract.
package wordcount

import (
	"io"

	"github.com/pkg/errors"

	"github.com/baditaflorin/go_topk_wordcount/internal/core/domain"
	"github.com/baditaflorin/go_topk_wordcount/internal/pool"
	"github.com/baditaflorin/go_topk_wordcount/internal/ports"
)

// BufferedStreamer loops a fixed-size buffer over an io.Reader, handing
// the full current buffer contents (including any tail relocated from the
// previous iteration) to a ports.StreamProcessor on every read.
type BufferedStreamer struct {
	bufSize int
	pool    *pool.BufferPool
	logger  ports.Logger
}

// NewBufferedStreamer creates a streamer with the given working buffer
// size. bufSize must exceed the longest word expected in the input, or
// Stream returns domain.ErrBufferTooSmall. Successive Stream calls reuse
// buffers from an internal pool.BufferPool rather than allocating fresh
// ones, since a master or worker process calls Stream once per file or
// per connection over its lifetime.
func NewBufferedStreamer(bufSize int, logger ports.Logger) *BufferedStreamer {
	if bufSize <= 0 {
		bufSize = domain.DefaultStreamBufferSize
	}
	return &BufferedStreamer{bufSize: bufSize, pool: pool.NewBufferPool(bufSize), logger: logger}
}

// Stream reads r to completion, calling proc.Process on every chunk per
// spec §4.2's relocation contract.
func (s *BufferedStreamer) Stream(r io.Reader, proc ports.StreamProcessor) error {
	buf := s.pool.Get()
	defer s.pool.Put(buf)

	writeStart := 0
	eof := false

	for {
		end := writeStart
		if !eof {
			n, readErr := r.Read(buf[writeStart:])
			end = writeStart + n
			switch {
			case readErr == io.EOF:
				eof = true
			case readErr != nil:
				if s.logger != nil {
					s.logger.Warn("buffered streamer: read error", "error", readErr)
				}
				return errors.Wrap(domain.ErrTransport, readErr.Error())
			}
		}

		last := proc.Process(buf[:end], eof)

		switch {
		case last == end:
			if eof {
				return nil
			}
			writeStart = 0
		case last == 0 && !eof && end < len(buf):
			// Short read: nothing consumable yet, but the buffer still has
			// room, so keep what is there and read more behind it.
			writeStart = end
		case last == 0:
			return errors.Wrap(domain.ErrBufferTooSmall, "tokenizer could not emit within buffer")
		default:
			copy(buf, buf[last:end])
			writeStart = end - last
		}
	}
}
