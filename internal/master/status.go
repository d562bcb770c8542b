package master

import (
	"fmt"

	"github.com/valyala/fasthttp"

	"github.com/baditaflorin/go_topk_wordcount/internal/ports"
)

// StatusServer exposes a read-only debug endpoint over the controller's
// endpoints while a job is in flight — an operational extra SPEC_FULL.md
// adds on top of spec.md's core, grounded on the teacher's
// cmd/server/main.go fasthttp wiring, repurposed from similarity results
// to per-worker queue/collector state.
type StatusServer struct {
	controller *Controller
	logger     ports.Logger
}

// NewStatusServer creates a status server over c.
func NewStatusServer(c *Controller, logger ports.Logger) *StatusServer {
	return &StatusServer{controller: c, logger: logger}
}

// ListenAndServe blocks serving GET /status on addr until an error occurs.
func (s *StatusServer) ListenAndServe(addr string) error {
	handler := func(ctx *fasthttp.RequestCtx) {
		if string(ctx.Path()) != "/status" {
			ctx.SetStatusCode(fasthttp.StatusNotFound)
			return
		}
		ctx.SetContentType("text/plain; charset=utf-8")
		for _, ep := range s.controller.Endpoints {
			state := "running"
			if err := ep.Collector.Err(); err != nil {
				state = "error: " + err.Error()
			} else if ep.Collector.Finished() {
				state = "finished"
			}
			fmt.Fprintf(ctx, "%s\tqueue_available=%d\t%s\n", ep.Addr(), ep.Queue.WriteAvailable(), state)
		}
	}

	if s.logger != nil {
		s.logger.Info("master: status endpoint listening", "addr", addr)
	}
	return fasthttp.ListenAndServe(addr, handler)
}
