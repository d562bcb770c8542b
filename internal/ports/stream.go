package ports

// StreamProcessor is the shared contract for every component that consumes
// a growing byte buffer and may need to leave an unconsumed suffix behind
// for the next call: the word Counter, the fan-out and by-first-letter
// distributors, and the master's response Collector all implement it; the
// buffered streamer, the chunk feeder and the async receiver drive it.
//
// Process is handed the full current buffer (not just freshly read bytes)
// and an eof flag meaning "no more bytes will ever follow this range from
// this source". It returns the offset into buf up to which the processor
// has fully consumed the data; buf[consumed:] is relocated to the front of
// the buffer by the caller and retried on the next call.
//
// consumed == len(buf) means everything was consumed. consumed == 0 with
// len(buf) > 0 and !eof means the processor could not make progress and is
// waiting for more data (e.g. buf holds a single, still-growing word); the
// caller must treat repeated zero progress against a full buffer as
// domain.ErrBufferTooSmall.
type StreamProcessor interface {
	Process(buf []byte, eof bool) (consumed int)
}

// StreamProcessorFunc adapts a plain function to StreamProcessor.
type StreamProcessorFunc func(buf []byte, eof bool) int

func (f StreamProcessorFunc) Process(buf []byte, eof bool) int { return f(buf, eof) }
