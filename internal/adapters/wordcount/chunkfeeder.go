package wordcount

import (
	"github.com/pkg/errors"

	"github.com/baditaflorin/go_topk_wordcount/internal/core/domain"
	"github.com/baditaflorin/go_topk_wordcount/internal/ports"
)

// ChunkFeeder adapts a ports.StreamProcessor to discrete externally-driven
// chunks rather than an io.Reader — the shape the worker server needs
// when bytes arrive one continuation-stream body at a time (spec §4.4,
// §4.8) instead of through BufferedStreamer's own Read loop. It applies
// the same buffer-relocation discipline BufferedStreamer uses internally.
type ChunkFeeder struct {
	buf   []byte
	write int
	proc  ports.StreamProcessor
}

// NewChunkFeeder creates a feeder with the given working buffer size.
func NewChunkFeeder(bufSize int, proc ports.StreamProcessor) *ChunkFeeder {
	if bufSize <= 0 {
		bufSize = domain.DefaultStreamBufferSize
	}
	return &ChunkFeeder{buf: make([]byte, bufSize), proc: proc}
}

// Feed appends chunk to the working buffer and runs proc over it,
// relocating any unconsumed tail for the next Feed or Finish call.
func (f *ChunkFeeder) Feed(chunk []byte) error {
	for len(chunk) > 0 {
		room := len(f.buf) - f.write
		if room == 0 {
			return errors.Wrap(domain.ErrBufferTooSmall, "chunk feeder buffer full with no progress")
		}
		n := copy(f.buf[f.write:], chunk)
		chunk = chunk[n:]
		f.write += n

		if err := f.process(false); err != nil {
			return err
		}
	}
	return nil
}

// Finish signals end-of-stream, flushing any trailing partial word.
func (f *ChunkFeeder) Finish() error {
	return f.process(true)
}

func (f *ChunkFeeder) process(eof bool) error {
	last := f.proc.Process(f.buf[:f.write], eof)
	switch {
	case last == f.write:
		f.write = 0
	case last == 0:
		if eof || f.write < len(f.buf) {
			return nil // genuinely nothing to consume yet, more bytes may still arrive
		}
		return errors.Wrap(domain.ErrBufferTooSmall, "tokenizer could not emit within buffer")
	default:
		copy(f.buf, f.buf[last:f.write])
		f.write -= last
	}
	return nil
}
