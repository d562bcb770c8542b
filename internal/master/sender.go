package master

import (
	"net"

	"github.com/pkg/errors"

	"github.com/baditaflorin/go_topk_wordcount/internal/adapters/framing"
	"github.com/baditaflorin/go_topk_wordcount/internal/core/domain"
	"github.com/baditaflorin/go_topk_wordcount/internal/core/queue"
	"github.com/baditaflorin/go_topk_wordcount/internal/ports"
)

// RunSender connects to ep's worker, drains its queue into the
// connection as a continuation stream, signals end, then runs an async
// receiver to populate ep.Collector — spec §4.9's sender thread contract.
// Any failure is latched on ep.Collector rather than returned, since the
// orchestrator inspects every endpoint's collector after all senders and
// the reader have joined.
func RunSender(ep *Endpoint, bufSize int, logger ports.Logger) {
	conn, err := net.Dial("tcp", ep.Addr())
	if err != nil {
		ep.Collector.SetError(errors.Wrap(domain.ErrTransport, err.Error()))
		return
	}
	defer conn.Close()

	link := framing.NewConn(conn)

	if err := consumeAndSend(ep.Queue, link, bufSize); err != nil {
		if logger != nil {
			logger.Error("sender: send loop failed", "addr", ep.Addr(), "error", err)
		}
		ep.Collector.SetError(err)
		return
	}

	receiver := framing.NewReceiver(conn, bufSize, ep.Collector)
	if err := receiver.Run(); err != nil {
		if logger != nil {
			logger.Error("sender: receive failed", "addr", ep.Addr(), "error", err)
		}
		ep.Collector.SetError(err)
	}
}

// consumeAndSend drains q to completion, writing each drained chunk as a
// continuation frame (spec §4.9's "queue.consume_and_send_data(callback)"
// where the callback prepends '.' and frames the chunk), then writes the
// continuation end marker once the producer has finished and the queue
// is empty.
func consumeAndSend(q *queue.SPSC, link *framing.Conn, bufSize int) error {
	chunk := make([]byte, bufSize)
	for {
		n := q.Pop(chunk)
		if n > 0 {
			if err := link.WriteContinuationChunk(chunk[:n]); err != nil {
				return err
			}
			continue
		}
		if q.Drained() {
			return link.WriteContinuationEnd()
		}
		yield()
	}
}
