package distributor

import "github.com/pkg/errors"

// Distributor is what internal/master's reader drives: a
// ports.StreamProcessor plus a way to surface a latched fatal error,
// since Process itself has no error return.
type Distributor interface {
	Process(buf []byte, eof bool) int
	Err() error
}

// Mode selects which distributor variant NewByMode builds, per spec §4.7's two
// routing strategies.
type Mode string

const (
	// ModeFanOut routes each chunk to whichever queue currently has the
	// most free space (the default: load-balanced, word-oblivious).
	ModeFanOut Mode = "fanout"

	// ModeByFirstLetter routes each whole word to a queue fixed by its
	// first letter (key-partitioned, load-oblivious). Legal only when
	// len(queues) <= 36.
	ModeByFirstLetter Mode = "byfirstletter"
)

// NewByMode builds the distributor variant named by mode over queues.
func NewByMode(mode Mode, queues []Queue) (Distributor, error) {
	switch mode {
	case "", ModeFanOut:
		return New(queues), nil
	case ModeByFirstLetter:
		if len(queues) > 36 {
			return nil, errors.Errorf("byfirstletter distributor supports at most 36 queues, got %d", len(queues))
		}
		return NewByFirstLetter(queues), nil
	default:
		return nil, errors.Errorf("unknown distributor mode %q", mode)
	}
}
