// Package framing implements the length-framed link (spec §4.4, §6): a
// single Conn type used on both ends of the wire (master-side sender,
// worker-side acceptor), grounded on original_source/cpp/src/wc/tcp.h's
// client/server pair collapsed into one type, with an io-native shape
// (ReadMessage/WriteMessage, ReadContinuationChunk/ReadAllContinuation,
// WriteContinuationChunk/WriteContinuationEnd) grounded
// on hayabusa-cloud-framer/framer.go's Reader/Writer/ReadWriter API.
package framing

import (
	"bytes"
	"io"
	"net"
	"strconv"

	"github.com/pkg/errors"

	"github.com/baditaflorin/go_topk_wordcount/internal/core/domain"
)

// Conn wraps a net.Conn (or any io.ReadWriter, for tests) with the framed
// message and continuation-stream operations both the master and the
// worker use.
type Conn struct {
	rw io.ReadWriter
}

// NewConn wraps rw for framed I/O.
func NewConn(rw io.ReadWriter) *Conn { return &Conn{rw: rw} }

// WriteMessage sends body as one framed message: an 8-byte right-justified
// ASCII decimal length header followed by body.
func (c *Conn) WriteMessage(body []byte) error {
	if len(body) > domain.MaxBodyLen {
		return errors.Wrapf(domain.ErrFraming, "body length %d exceeds %d", len(body), domain.MaxBodyLen)
	}
	header := encodeHeader(len(body))
	if _, err := c.rw.Write(header[:]); err != nil {
		return errors.Wrap(domain.ErrTransport, err.Error())
	}
	if len(body) == 0 {
		return nil
	}
	if _, err := c.rw.Write(body); err != nil {
		return errors.Wrap(domain.ErrTransport, err.Error())
	}
	return nil
}

// ReadMessage reads exactly one framed message: the 8-byte header, then
// exactly that many body bytes.
func (c *Conn) ReadMessage() ([]byte, error) {
	var header [domain.HeaderLen]byte
	if _, err := io.ReadFull(c.rw, header[:]); err != nil {
		return nil, errors.Wrap(domain.ErrTransport, err.Error())
	}
	n, err := decodeHeader(header)
	if err != nil {
		return nil, err
	}
	body := make([]byte, n)
	if n > 0 {
		if _, err := io.ReadFull(c.rw, body); err != nil {
			return nil, errors.Wrap(domain.ErrTransport, err.Error())
		}
	}
	return body, nil
}

// encodeHeader formats n as an 8-character right-justified decimal ASCII
// header, space-padded, per spec §6.
func encodeHeader(n int) [domain.HeaderLen]byte {
	var header [domain.HeaderLen]byte
	s := strconv.Itoa(n)
	for i := range header {
		header[i] = ' '
	}
	copy(header[domain.HeaderLen-len(s):], s)
	return header
}

// decodeHeader parses an 8-byte header into a non-negative length. Any
// header that is not entirely leading-spaces-then-decimal-digits is
// ErrFraming — spec.md §9 leaves the original's atoi-stops-at-garbage
// behavior undefined and asks for an explicit decision; this is it.
func decodeHeader(header [domain.HeaderLen]byte) (int, error) {
	trimmed := bytes.TrimLeft(header[:], " ")
	if len(trimmed) == 0 {
		return 0, errors.Wrap(domain.ErrFraming, "empty length header")
	}
	for _, b := range trimmed {
		if b < '0' || b > '9' {
			return 0, errors.Wrapf(domain.ErrFraming, "non-decimal byte %q in header", b)
		}
	}
	n, err := strconv.Atoi(string(trimmed))
	if err != nil {
		return 0, errors.Wrap(domain.ErrFraming, err.Error())
	}
	if n > domain.MaxBodyLen {
		return 0, errors.Wrapf(domain.ErrFraming, "decoded length %d exceeds %d", n, domain.MaxBodyLen)
	}
	return n, nil
}

// SetLinger applies the Go equivalent of the original implementation's
// SO_LINGER(30s) on the worker's accepted socket before it writes its
// final response, so the bytes are flushed before the process tears the
// connection down (see SPEC_FULL.md §4, "Linger-on-close").
func SetLinger(conn net.Conn, seconds int) error {
	tcpConn, ok := conn.(*net.TCPConn)
	if !ok {
		return nil
	}
	return tcpConn.SetLinger(seconds)
}
