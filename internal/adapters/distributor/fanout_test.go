package distributor

import (
	"bytes"
	"sort"
	"strings"
	"testing"

	"github.com/baditaflorin/go_topk_wordcount/internal/core/domain"
	"github.com/baditaflorin/go_topk_wordcount/internal/core/word"
)

// fakeQueue is a minimal Queue backed by a byte slice, enough to drive
// FanOut's routing decisions in tests without the real SPSC ring.
type fakeQueue struct {
	capacity int
	buf      bytes.Buffer
}

func (q *fakeQueue) WriteAvailable() int { return q.capacity - q.buf.Len() }
func (q *fakeQueue) PushAll(data []byte) { q.buf.Write(data) }

func TestFanOut_CutLandsOnAvailabilityWhenAlreadyAtBoundary(t *testing.T) {
	// Spec §8 scenario e: three queues with write_available = [2, 8, 7]
	// receive "Hi there you!" (eof=true) in one call; the most-available
	// queue (8) should receive "Hi there" since that cut already falls on a
	// word boundary, followed by the guard byte because the chunk ends in a
	// word character.
	queues := []Queue{
		&fakeQueue{capacity: 2},
		&fakeQueue{capacity: 8},
		&fakeQueue{capacity: 7},
	}
	f := New(queues)

	consumed := f.Process([]byte("Hi there you!"), true)
	if consumed != 8 {
		t.Fatalf("consumed = %d, want 8", consumed)
	}
	if err := f.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := string(append([]byte("Hi there"), domain.QueueGuardByte))
	if got := queues[1].(*fakeQueue).buf.String(); got != want {
		t.Fatalf("most-available queue got %q, want %q", got, want)
	}
	if got := queues[0].(*fakeQueue).buf.String(); got != "" {
		t.Fatalf("queue 0 got %q, want empty", got)
	}
}

func TestFanOut_WalksBackOffAMidWordCut(t *testing.T) {
	// One queue has no room at all, forcing selection of the other,
	// whose availability (7) lands inside "dogs", so the cut walks back to
	// the boundary after "cats ".
	queues := []Queue{&fullQueue{}, &fakeQueue{capacity: 7}}
	f := New(queues)

	consumed := f.Process([]byte("cats dogs"), true)
	if consumed != 5 {
		t.Fatalf("consumed = %d, want 5", consumed)
	}
	if got := queues[1].(*fakeQueue).buf.String(); got != "cats " {
		t.Fatalf("queue got %q, want %q", got, "cats ")
	}
}

type fullQueue struct{ pushed []byte }

func (q *fullQueue) WriteAvailable() int { return 0 }
func (q *fullQueue) PushAll(data []byte) { q.pushed = append(q.pushed, data...) }

func TestFanOut_AllNonWordBytesConsumedWithoutRouting(t *testing.T) {
	queues := []Queue{&fakeQueue{capacity: 10}}
	f := New(queues)

	consumed := f.Process([]byte("   "), false)
	if consumed != 3 {
		t.Fatalf("consumed = %d, want 3", consumed)
	}
	if got := queues[0].(*fakeQueue).buf.String(); got != "" {
		t.Fatalf("queue received unexpected bytes: %q", got)
	}
}

func TestFanOut_TrailingWordHeldBackWithoutEOF(t *testing.T) {
	queues := []Queue{&fakeQueue{capacity: 100}}
	f := New(queues)

	consumed := f.Process([]byte("cat"), false)
	if consumed != 0 {
		t.Fatalf("consumed = %d, want 0 (whole buffer is one unfinished word)", consumed)
	}
	if got := queues[0].(*fakeQueue).buf.String(); got != "" {
		t.Fatalf("queue received bytes before word completed: %q", got)
	}
}

// TestFanOut_PreservesWordMultisetAcrossCapacityChurn exercises invariant
// 5 from spec §8: across repeated calls with availabilities that shift as
// the queues fill, the multiset of words routed equals the multiset of
// words in the input, with no word split across two pushes. The fake
// queues never drain, so their combined capacity covers the whole input.
func TestFanOut_PreservesWordMultisetAcrossCapacityChurn(t *testing.T) {
	input := "the quick brown fox jumps over the lazy dog again and again"
	queues := []Queue{
		&fakeQueue{capacity: 24},
		&fakeQueue{capacity: 20},
		&fakeQueue{capacity: 31},
	}
	f := New(queues)

	buf := []byte(input)
	start := 0
	for start < len(buf) {
		consumed := f.Process(buf[start:], true)
		if err := f.Err(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if consumed == 0 {
			t.Fatalf("made no progress with %d bytes left", len(buf)-start)
		}
		start += consumed
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

func wordsOf(buf []byte) []string {
	var out []string
	word.Tokenize(buf, true, func(w string) { out = append(out, w) })
	return out
}
