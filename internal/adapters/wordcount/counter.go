package wordcount

import (
	"github.com/baditaflorin/go_topk_wordcount/internal/core/domain"
	"github.com/baditaflorin/go_topk_wordcount/internal/core/word"
)

// Counter implements ports.StreamProcessor by tokenizing its input and
// maintaining a running domain.WordMap. It plays the role SPEC_FULL.md §4
// describes the original's word_counter functor playing, kept here as a
// thin composition over the separately testable tokenizer and WordMap
// spec.md's component boundaries call for.
//
// The filter worker variant (spec §4.8) builds its local top-K from the
// finished Map via topk.FromWordMap rather than updating it per word —
// spec §4.3's add contract offers each (word, count) pair once, which for
// a streaming count means once the final count is known, not once per
// occurrence.
type Counter struct {
	Map domain.WordMap
}

// NewCounter creates a counter with an empty word map.
func NewCounter() *Counter {
	return &Counter{Map: make(domain.WordMap)}
}

// Process implements ports.StreamProcessor: it tokenizes buf and
// increments Map for every fully-contained word.
func (c *Counter) Process(buf []byte, eof bool) int {
	return word.Tokenize(buf, eof, func(w string) {
		c.Map.Add(w, 1)
	})
}
