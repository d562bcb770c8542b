package distributor

import (
	"github.com/baditaflorin/go_topk_wordcount/internal/core/domain"
	"github.com/baditaflorin/go_topk_wordcount/internal/core/word"
)

// ByFirstLetter is the secondary distributor variant from spec §4.7: it
// routes each whole word to the queue a per-first-letter mapping computed
// at startup assigns it to, giving every worker a stable partition of the
// key space instead of FanOut's load-balanced but word-oblivious routing.
// Only legal when len(queues) <= 36 (one per [0-9A-Za-z] lowercased
// letter/digit, spec §4.7).
type ByFirstLetter struct {
	queues  []Queue
	mapping [128]int
}

// NewByFirstLetter builds the startup mapping from the lowercased first
// byte of a word to a queue index, cycling through queues in order for
// every distinct first letter encountered among 0-9a-z.
func NewByFirstLetter(queues []Queue) *ByFirstLetter {
	b := &ByFirstLetter{queues: queues}
	next := 0
	assign := func(c byte) {
		b.mapping[c] = next % len(queues)
		next++
	}
	for c := byte('0'); c <= '9'; c++ {
		assign(c)
	}
	for c := byte('a'); c <= 'z'; c++ {
		assign(c)
	}
	return b
}

// Process implements ports.StreamProcessor by tokenizing buf and pushing
// each word, plus a trailing QueueGuardByte, to its assigned queue.
func (b *ByFirstLetter) Process(buf []byte, eof bool) int {
	return word.Tokenize(buf, eof, func(w string) {
		qi := b.mapping[w[0]]
		q := b.queues[qi]
		q.PushAll([]byte(w))
		q.PushAll([]byte{domain.QueueGuardByte})
	})
}

// Err always returns nil: unlike FanOut, ByFirstLetter's routing can
// never fail to advance (a whole word always fits between its own
// guard-delimited pushes, with no availability-driven cut to miscompute).
// The method exists only so ByFirstLetter satisfies Distributor.
func (b *ByFirstLetter) Err() error { return nil }
