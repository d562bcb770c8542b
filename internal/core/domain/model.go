// Package domain holds the wire-level constants and plain data types
// shared across the counting pipeline: the master's reader and senders,
// each worker's counter, and the merge step that prints the global top-K.
package domain

// Wire framing constants (spec §4.4, §6).
const (
	// HeaderLen is the fixed width of a framed message's ASCII decimal
	// length header.
	HeaderLen = 8

	// MaxBodyLen is the largest body a HeaderLen-digit decimal header can
	// express.
	MaxBodyLen = 99_999_999

	// ContinuationMarker precedes a framed message inside a continuation
	// stream; EndMarker closes the stream.
	ContinuationMarker byte = '.'
	EndMarker          byte = '!'

	// QueueGuardByte is injected by the fan-out distributor when a chosen
	// cut point would otherwise let a word straddle two pushes into the
	// same queue; it is never itself a word character.
	QueueGuardByte byte = '#'
)

// DefaultQueueCapacity is the SPSC ring size used between the master's
// reader goroutine and each per-worker sender goroutine (spec §4.6).
const DefaultQueueCapacity = 10 * 1024

// DefaultStreamBufferSize is the buffered streamer's working buffer size;
// it must exceed the longest word expected in the input or the streamer
// reports ErrBufferTooSmall (spec §4.2, §7).
const DefaultStreamBufferSize = 64 * 1024

// DoneSentinel terminates a file-list backend's path stream (spec §4.9).
const DoneSentinel = ";]-done"

// WordMap maps a lowercased word to its occurrence count. Mutated only by
// its owning counter; insertion order is irrelevant.
type WordMap map[string]uint64

// Add increments the count for word by delta, creating the entry if
// necessary.
func (m WordMap) Add(word string, delta uint64) {
	m[word] += delta
}

// Merge pointwise-sums other into m.
func (m WordMap) Merge(other WordMap) {
	for word, count := range other {
		m[word] += count
	}
}

// Pair is a (word, count) observation, the unit both WordMap iteration and
// TopK insertion deal in.
type Pair struct {
	Word  string
	Count uint64
}
