package queue

import (
	"bytes"
	"math/rand"
	"testing"
)

func TestSPSC_PushPop(t *testing.T) {
	q := New(8)

	if n := q.Push([]byte("hello")); n != 5 {
		t.Fatalf("Push = %d, want 5", n)
	}
	if got := q.ReadAvailable(); got != 5 {
		t.Fatalf("ReadAvailable = %d, want 5", got)
	}

	dst := make([]byte, 10)
	n := q.Pop(dst)
	if n != 5 || string(dst[:n]) != "hello" {
		t.Fatalf("Pop = %q, want %q", dst[:n], "hello")
	}
}

func TestSPSC_PushFullReturnsPartial(t *testing.T) {
	q := New(4)
	n := q.Push([]byte("hello world"))
	if n != 4 {
		t.Fatalf("Push = %d, want 4 (ring capacity)", n)
	}
}

func TestSPSC_DrainedOnlyAfterFinishAndEmpty(t *testing.T) {
	q := New(4)
	q.Push([]byte("ab"))
	q.Finish()

	if q.Drained() {
		t.Fatal("Drained must be false while unread bytes remain")
	}

	dst := make([]byte, 2)
	q.Pop(dst)

	if !q.Drained() {
		t.Fatal("Drained must be true once finished and empty")
	}
}

// TestSPSC_ProducerConsumerRoundTrip exercises invariant 4 from spec §8:
// total bytes popped equals total bytes pushed once both sides finish.
func TestSPSC_ProducerConsumerRoundTrip(t *testing.T) {
	q := New(128)
	src := make([]byte, 10_000)
	rand.New(rand.NewSource(1)).Read(src)

	done := make(chan struct{})
	var out bytes.Buffer

	go func() {
		defer close(done)
		buf := make([]byte, 37)
		for {
			n := q.Pop(buf)
			if n > 0 {
				out.Write(buf[:n])
				continue
			}
			if q.Drained() {
				return
			}
			yield()
		}
	}()

	q.PushAll(src)
	q.Finish()
	<-done

	if !bytes.Equal(out.Bytes(), src) {
		t.Fatalf("round trip mismatch: got %d bytes, want %d", out.Len(), len(src))
	}
}
