package filelist

import (
	"net"
	"os"

	"github.com/baditaflorin/go_topk_wordcount/internal/adapters/framing"
	"github.com/baditaflorin/go_topk_wordcount/internal/adapters/wordcount"
	"github.com/baditaflorin/go_topk_wordcount/internal/core/domain"
	"github.com/baditaflorin/go_topk_wordcount/internal/ports"
	"github.com/baditaflorin/go_topk_wordcount/internal/worker"
)

// RunWorker reads a framed file-path stream from conn until the done
// sentinel, opening and counting each path locally, then sends back a
// response body rendered by format (worker.FormatGeneral or
// worker.FormatFilter(k)).
func RunWorker(conn net.Conn, bufSize int, format worker.FormatFunc, logger ports.Logger) error {
	link := framing.NewConn(conn)
	counter := wordcount.NewCounter()
	streamer := wordcount.NewBufferedStreamer(bufSize, logger)

	for {
		body, err := link.ReadMessage()
		if err != nil {
			return err
		}
		path := string(body)
		if path == domain.DoneSentinel {
			break
		}

		if err := countFile(path, streamer, counter); err != nil {
			if logger != nil {
				logger.Warn("filelist worker: could not count file", "path", path, "error", err)
			}
			return err
		}
	}

	return link.WriteMessage(format(counter.Map))
}

func countFile(path string, streamer *wordcount.BufferedStreamer, counter *wordcount.Counter) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return streamer.Stream(f, counter)
}
