package framing

import (
	"io"

	"github.com/pkg/errors"

	"github.com/baditaflorin/go_topk_wordcount/internal/core/domain"
	"github.com/baditaflorin/go_topk_wordcount/internal/ports"
)

// Receiver drives the async length-prefixed receiver state machine from
// spec §4.5 (ReadingHeader / ReadingBody / Finished / Errored) over a
// single fixed buffer, translated from the original's ASIO callback
// chaining (original_source/cpp/src/wc/tcp.h's async_receiver) into a
// goroutine-driven synchronous loop, per spec §9's suggested alternative:
// "a task owning the receiver and the socket until completion."
//
// Run hands every newly available slice of the message body to proc
// (skipping the 8-byte header transparently) as it arrives, rather than
// buffering the whole body — this is what lets the master's Collector
// parse a worker's word/count response incrementally.
type Receiver struct {
	r    io.Reader
	buf  []byte
	proc ports.StreamProcessor

	writeOff       int
	haveHeader     bool
	bodyLen        int
	bodyConsumed   int
	finished       bool
}

// NewReceiver creates a receiver reading from r into a buffer of bufSize
// bytes, handing consumed body slices to proc.
func NewReceiver(r io.Reader, bufSize int, proc ports.StreamProcessor) *Receiver {
	if bufSize < domain.HeaderLen {
		bufSize = domain.HeaderLen
	}
	return &Receiver{
		r:    r,
		buf:  make([]byte, bufSize),
		proc: proc,
	}
}

// Run drives the state machine to completion: Finished (nil error) once
// the full body has been processed, or Errored (non-nil) on a transport
// failure, a framing error, or ErrBufferTooSmall if proc can never make
// progress against a full buffer.
func (r *Receiver) Run() error {
	for {
		if r.writeOff == len(r.buf) && !r.haveHeader {
			// Header alone doesn't fit in the buffer - can't happen with
			// any sane bufSize, but guard against a pathological one.
			return errors.Wrap(domain.ErrBufferTooSmall, "buffer smaller than frame header")
		}

		n, err := r.r.Read(r.buf[r.writeOff:])
		if n > 0 {
			r.writeOff += n
			if herr := r.handle(); herr != nil {
				return herr
			}
			if r.finished {
				return nil
			}
		}
		if err != nil {
			if err == io.EOF && r.finished {
				return nil
			}
			return errors.Wrap(domain.ErrTransport, err.Error())
		}
	}
}

// handle processes whatever is currently buffered: first completing the
// header parse if it hasn't happened yet, then handing the body bytes
// seen so far to proc and relocating any unconsumed tail.
func (r *Receiver) handle() error {
	if !r.haveHeader {
		if r.writeOff < domain.HeaderLen {
			return nil // need more header bytes before anything else happens
		}
		var header [domain.HeaderLen]byte
		copy(header[:], r.buf[:domain.HeaderLen])
		n, err := decodeHeader(header)
		if err != nil {
			return err
		}
		r.bodyLen = n
		r.haveHeader = true

		rest := r.writeOff - domain.HeaderLen
		copy(r.buf, r.buf[domain.HeaderLen:r.writeOff])
		r.writeOff = rest
	}

	eof := r.bodyConsumed+r.writeOff >= r.bodyLen

	last := r.proc.Process(r.buf[:r.writeOff], eof)
	r.bodyConsumed += last

	switch {
	case last == r.writeOff:
		r.writeOff = 0
	case last == 0 && !eof && r.writeOff < len(r.buf):
		// Nothing consumable yet but the buffer still has room: keep the
		// bytes and read more behind them.
	case last == 0:
		return errors.Wrap(domain.ErrBufferTooSmall, "processor made no progress on a full buffer")
	default:
		copy(r.buf, r.buf[last:r.writeOff])
		r.writeOff -= last
	}

	if eof {
		r.finished = true
	}
	return nil
}
