package worker

import (
	"net"
	"strconv"
	"strings"
	"testing"

	"github.com/baditaflorin/go_topk_wordcount/internal/adapters/framing"
)

func TestServer_HandleCountsAndRespondsOverContinuationStream(t *testing.T) {
	clientSide, serverSide := net.Pipe()
	s := NewServer(FormatGeneral, nil)

	handleDone := make(chan error, 1)
	go func() { handleDone <- s.handle(serverSide) }()

	client := framing.NewConn(clientSide)
	chunks := []string{"the quick ", "brown fox ", "jumps over the lazy dog"}
	for _, c := range chunks {
		if err := client.WriteContinuationChunk([]byte(c)); err != nil {
			t.Fatalf("WriteContinuationChunk: %v", err)
		}
	}
	if err := client.WriteContinuationEnd(); err != nil {
		t.Fatalf("WriteContinuationEnd: %v", err)
	}

	response, err := client.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage: %v", err)
	}
	clientSide.Close()

	if err := <-handleDone; err != nil {
		t.Fatalf("handle: %v", err)
	}

	got := map[string]int{}
	for _, line := range strings.Split(strings.TrimRight(string(response), "\n"), "\n") {
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "\t", 2)
		n, _ := strconv.Atoi(parts[1])
		got[parts[0]] = n
	}
	if got["the"] != 2 {
		t.Errorf(`count["the"] = %d, want 2`, got["the"])
	}
	if got["fox"] != 1 || got["dog"] != 1 {
		t.Errorf("got = %v", got)
	}
}
