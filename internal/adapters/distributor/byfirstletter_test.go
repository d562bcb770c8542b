package distributor

import (
	"sort"
	"strings"
	"testing"

	"github.com/baditaflorin/go_topk_wordcount/internal/core/domain"
)

// TestByFirstLetter_RoutesWordsByFirstByteMapping pins down the startup
// mapping for three queues: '0'-'9' then 'a'-'z' are assigned round-robin,
// so with next starting at 0 the byte 'c' (the 13th assigned letter,
// next=12) lands on queue 0, 'd' (next=13) lands on queue 1, and 'h'
// (next=17) lands on queue 2.
func TestByFirstLetter_RoutesWordsByFirstByteMapping(t *testing.T) {
	queues := []Queue{
		&fakeQueue{capacity: 100},
		&fakeQueue{capacity: 100},
		&fakeQueue{capacity: 100},
	}
	b := NewByFirstLetter(queues)

	consumed := b.Process([]byte("cat dog hat"), true)
	if consumed != 11 {
		t.Fatalf("consumed = %d, want 11 (whole buffer)", consumed)
	}
	if err := b.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := string(append([]byte("cat"), domain.QueueGuardByte))
	if got := queues[0].(*fakeQueue).buf.String(); got != want {
		t.Fatalf("queue 0 got %q, want %q", got, want)
	}
	want = string(append([]byte("dog"), domain.QueueGuardByte))
	if got := queues[1].(*fakeQueue).buf.String(); got != want {
		t.Fatalf("queue 1 got %q, want %q", got, want)
	}
	want = string(append([]byte("hat"), domain.QueueGuardByte))
	if got := queues[2].(*fakeQueue).buf.String(); got != want {
		t.Fatalf("queue 2 got %q, want %q", got, want)
	}
}

// TestByFirstLetter_PreservesWordMultisetAcrossQueues mirrors
// TestFanOut_PreservesWordMultisetAcrossCapacityChurn: regardless of which
// queue each word lands on, the multiset of words routed across all queues
// must equal the multiset tokenized from the input.
func TestByFirstLetter_PreservesWordMultisetAcrossQueues(t *testing.T) {
	input := "the quick brown fox jumps over the lazy dog again and again"
	queues := []Queue{
		&fakeQueue{capacity: 1000},
		&fakeQueue{capacity: 1000},
		&fakeQueue{capacity: 1000},
		&fakeQueue{capacity: 1000},
	}
	b := NewByFirstLetter(queues)

	consumed := b.Process([]byte(input), true)
	if consumed != len(input) {
		t.Fatalf("consumed = %d, want %d (whole buffer)", consumed, len(input))
	}

	var routed []byte
	for _, q := range queues {
		routed = append(routed, q.(*fakeQueue).buf.Bytes()...)
	}

	got := wordsOf(routed)
	want := wordsOf([]byte(input))
	sort.Strings(got)
	sort.Strings(want)
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("routed words = %v, want %v", got, want)
	}
}

// TestByFirstLetter_RejectsTooManyQueues checks the NewByMode guard that
// ByFirstLetter can only partition across at most 36 queues (one per
// [0-9a-z]).
func TestByFirstLetter_RejectsTooManyQueues(t *testing.T) {
	queues := make([]Queue, 37)
	for i := range queues {
		queues[i] = &fakeQueue{capacity: 10}
	}
	if _, err := NewByMode(ModeByFirstLetter, queues); err == nil {
		t.Fatal("NewByMode(ModeByFirstLetter, 37 queues) = nil error, want error")
	}
}
