package framing

import (
	"io"

	"github.com/pkg/errors"

	"github.com/baditaflorin/go_topk_wordcount/internal/core/domain"
)

// WriteContinuationChunk sends one body of a continuation stream: a
// ContinuationMarker byte followed by body framed as a message (spec §4.4,
// §6). Call WriteContinuationEnd once all chunks are sent.
func (c *Conn) WriteContinuationChunk(body []byte) error {
	if _, err := c.rw.Write([]byte{domain.ContinuationMarker}); err != nil {
		return errors.Wrap(domain.ErrTransport, err.Error())
	}
	return c.WriteMessage(body)
}

// WriteContinuationEnd closes a continuation stream with a single
// EndMarker byte.
func (c *Conn) WriteContinuationEnd() error {
	if _, err := c.rw.Write([]byte{domain.EndMarker}); err != nil {
		return errors.Wrap(domain.ErrTransport, err.Error())
	}
	return nil
}

// ReadContinuationChunk reads one marker byte. If it is ContinuationMarker
// it also reads and returns the following framed message body, with more
// set true. If it is EndMarker, more is false and body is nil.
func (c *Conn) ReadContinuationChunk() (body []byte, more bool, err error) {
	var marker [1]byte
	if _, err := io.ReadFull(c.rw, marker[:]); err != nil {
		return nil, false, errors.Wrap(domain.ErrTransport, err.Error())
	}

	switch marker[0] {
	case domain.ContinuationMarker:
		body, err = c.ReadMessage()
		if err != nil {
			return nil, false, err
		}
		return body, true, nil
	case domain.EndMarker:
		return nil, false, nil
	default:
		return nil, false, errors.Wrapf(domain.ErrFraming, "unexpected continuation marker %q", marker[0])
	}
}

// ReadAllContinuation drains a continuation stream to completion, calling
// onChunk for every body received in order. It returns once EndMarker is
// read or an error occurs.
func (c *Conn) ReadAllContinuation(onChunk func(body []byte) error) error {
	for {
		body, more, err := c.ReadContinuationChunk()
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
		if err := onChunk(body); err != nil {
			return err
		}
	}
}
