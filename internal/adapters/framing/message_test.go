package framing

import (
	"bytes"
	"strings"
	"testing"

	"github.com/baditaflorin/go_topk_wordcount/internal/core/domain"
)

func TestConn_WriteReadMessageRoundTrip(t *testing.T) {
	tests := []string{"", "hello", strings.Repeat("x", 10_000)}
	for _, body := range tests {
		var buf bytes.Buffer
		conn := NewConn(&buf)
		if err := conn.WriteMessage([]byte(body)); err != nil {
			t.Fatalf("WriteMessage(%q) error: %v", body, err)
		}
		got, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("ReadMessage error: %v", err)
		}
		if string(got) != body {
			t.Fatalf("round trip = %q, want %q", got, body)
		}
	}
}

func TestEncodeDecodeHeader(t *testing.T) {
	for _, n := range []int{0, 5, 99_999_999} {
		h := encodeHeader(n)
		got, err := decodeHeader(h)
		if err != nil {
			t.Fatalf("decodeHeader(encodeHeader(%d)) error: %v", n, err)
		}
		if got != n {
			t.Fatalf("decodeHeader(encodeHeader(%d)) = %d", n, got)
		}
	}
}

func TestDecodeHeader_Malformed(t *testing.T) {
	tests := [][8]byte{
		{' ', ' ', ' ', ' ', ' ', ' ', ' ', ' '}, // empty
		{'1', '2', 'a', ' ', ' ', ' ', ' ', ' '}, // non-decimal
	}
	for _, h := range tests {
		if _, err := decodeHeader(h); err == nil {
			t.Fatalf("decodeHeader(%q) expected an error", h)
		}
	}
}

func TestWriteMessage_BodyTooLarge(t *testing.T) {
	var buf bytes.Buffer
	conn := NewConn(&buf)
	body := make([]byte, domain.MaxBodyLen+1)
	if err := conn.WriteMessage(body); err == nil {
		t.Fatal("expected ErrFraming for an oversized body")
	}
}
