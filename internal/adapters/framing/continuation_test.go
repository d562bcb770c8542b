package framing

import (
	"bytes"
	"testing"
)

func TestContinuationStream_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	conn := NewConn(&buf)

	chunks := []string{"hello ", "world", ""}
	for _, c := range chunks {
		if err := conn.WriteContinuationChunk([]byte(c)); err != nil {
			t.Fatalf("WriteContinuationChunk error: %v", err)
		}
	}
	if err := conn.WriteContinuationEnd(); err != nil {
		t.Fatalf("WriteContinuationEnd error: %v", err)
	}

	var got []string
	reader := NewConn(&buf)
	err := reader.ReadAllContinuation(func(body []byte) error {
		got = append(got, string(body))
		return nil
	})
	if err != nil {
		t.Fatalf("ReadAllContinuation error: %v", err)
	}

	if len(got) != len(chunks) {
		t.Fatalf("got %d chunks, want %d", len(got), len(chunks))
	}
	for i, c := range chunks {
		if got[i] != c {
			t.Errorf("chunk %d = %q, want %q", i, got[i], c)
		}
	}
}

func TestReadContinuationChunk_UnexpectedMarker(t *testing.T) {
	buf := bytes.NewBufferString("?")
	conn := NewConn(buf)
	if _, _, err := conn.ReadContinuationChunk(); err == nil {
		t.Fatal("expected ErrFraming for an unexpected marker byte")
	}
}
