// Package topk implements the bounded, tie-preserving top-K collector
// (spec §4.3). Grounded on original_source/cpp/src/wc/count.h's
// top_word_collection: insert in descending-count order, then trim to the
// first K entries, keeping every entry tied at the K-th entry's count.
package topk

import (
	"sort"

	"github.com/baditaflorin/go_topk_wordcount/internal/core/domain"
)

// TopK retains the K highest-count (word, count) pairs it has seen, with
// ties at the lowest retained count all kept — so Len() may exceed K.
type TopK struct {
	k        int
	minCount uint64
	entries  []domain.Pair
}

// New creates a collector retaining the k highest-count entries plus any
// entries tied with the k-th.
func New(k int) *TopK {
	if k < 1 {
		k = 1
	}
	return &TopK{k: k}
}

// MinCount returns the current cutoff: 0 until Len reaches K, thereafter
// the count of the K-th entry.
func (t *TopK) MinCount() uint64 { return t.minCount }

// Len returns the current number of retained entries (may exceed K due to
// ties at MinCount).
func (t *TopK) Len() int { return len(t.entries) }

// Add offers (word, count) to the collector. Counts below the current
// MinCount are ignored; otherwise the pair is inserted in its
// count-descending position and the collection is trimmed.
func (t *TopK) Add(word string, count uint64) {
	if count < t.minCount {
		return
	}

	// First position whose count is strictly less than count — keeps
	// equal-count insertions stable (FIFO among ties), matching the
	// original's lower_bound-by-descending-count insert.
	pos := sort.Search(len(t.entries), func(i int) bool {
		return t.entries[i].Count < count
	})

	t.entries = append(t.entries, domain.Pair{})
	copy(t.entries[pos+1:], t.entries[pos:])
	t.entries[pos] = domain.Pair{Word: word, Count: count}

	t.trim()
}

// trim sets minCount to the K-th entry's count once the collection reaches
// K entries, then drops every entry whose count is below it, retaining ties
// at that count.
func (t *TopK) trim() {
	if len(t.entries) < t.k {
		return
	}

	cutoff := t.entries[t.k-1].Count
	t.minCount = cutoff

	end := len(t.entries)
	for end > t.k && t.entries[end-1].Count < cutoff {
		end--
	}
	t.entries = t.entries[:end]
}

// Items returns a read-only view of the retained entries, in
// count-descending order, for printing.
func (t *TopK) Items() []domain.Pair {
	out := make([]domain.Pair, len(t.entries))
	copy(out, t.entries)
	return out
}

// TotalWords returns the current size (alias for Len, matching spec §4.3's
// naming).
func (t *TopK) TotalWords() int { return t.Len() }

// FromWordMap loads every (word, count) pair from m into a fresh
// collector retaining the top k.
func FromWordMap(m domain.WordMap, k int) *TopK {
	t := New(k)
	for word, count := range m {
		t.Add(word, count)
	}
	return t
}
