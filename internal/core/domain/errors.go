package domain

import "errors"

// Error kinds from spec §7. Call sites wrap these with
// github.com/pkg/errors to attach context; callers recover the kind with
// errors.Is.
var (
	// ErrBufferTooSmall: the tokenizer needed to emit a word longer than
	// the streamer's working buffer. Fatal for the current stream.
	ErrBufferTooSmall = errors.New("wordcount: buffer too small for word")

	// ErrTransport: a socket read/write/connect failure. Fatal for the
	// owning endpoint.
	ErrTransport = errors.New("wordcount: transport failure")

	// ErrFraming: a frame header did not parse as a non-negative decimal
	// length, or a decoded length exceeds MaxBodyLen.
	ErrFraming = errors.New("wordcount: malformed frame header")

	// ErrLogicError: the fan-out distributor could not advance despite
	// full headroom, implying a miscomputed eof.
	ErrLogicError = errors.New("wordcount: distributor could not advance")

	// ErrDirectoryMissing: the master's configured root does not exist or
	// is not a directory.
	ErrDirectoryMissing = errors.New("wordcount: directory missing")
)
