package master

import (
	"os"

	"github.com/baditaflorin/go_topk_wordcount/internal/adapters/distributor"
	"github.com/baditaflorin/go_topk_wordcount/internal/adapters/wordcount"
	"github.com/baditaflorin/go_topk_wordcount/internal/core/walk"
	"github.com/baditaflorin/go_topk_wordcount/internal/ports"
)

// RunReader walks root, streaming every regular file's bytes through a
// distributor (spec §4.7's fan-out or by-first-letter variant, selected
// by mode) into endpoints' queues, then finishes every queue once the
// directory is exhausted — spec §4.9's reader thread contract.
func RunReader(root string, endpoints []*Endpoint, mode distributor.Mode, bufSize int, logger ports.Logger) error {
	queues := make([]distributor.Queue, len(endpoints))
	for i, ep := range endpoints {
		queues[i] = ep.Queue
	}
	dist, err := distributor.NewByMode(mode, queues)
	if err != nil {
		return err
	}
	streamer := wordcount.NewBufferedStreamer(bufSize, logger)

	defer func() {
		for _, ep := range endpoints {
			ep.Queue.Finish()
		}
	}()

	files, err := walk.Files(root)
	if err != nil {
		return err
	}

	for _, path := range files {
		if err := streamFile(path, streamer, dist); err != nil {
			return err
		}
		if err := dist.Err(); err != nil {
			return err
		}
	}
	return nil
}

func streamFile(path string, streamer *wordcount.BufferedStreamer, dist distributor.Distributor) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return streamer.Stream(f, dist)
}
