package master

import (
	"fmt"
	"io"
	"sync"

	"github.com/baditaflorin/go_topk_wordcount/internal/adapters/distributor"
	"github.com/baditaflorin/go_topk_wordcount/internal/core/domain"
	"github.com/baditaflorin/go_topk_wordcount/internal/core/topk"
	"github.com/baditaflorin/go_topk_wordcount/internal/ports"
)

// Controller runs the whole master side of one job: spawn the reader and
// one sender per worker spec, join everyone, then merge and print the
// global top-K (spec §4.9).
type Controller struct {
	Endpoints       []*Endpoint
	BufSize         int
	DistributorMode distributor.Mode
	Logger          ports.Logger
}

// NewController builds a controller with one endpoint per (host, port)
// pair, each backed by a fresh queue of queueCapacity bytes.
func NewController(hostPorts [][2]string, queueCapacity, bufSize int, mode distributor.Mode, logger ports.Logger) *Controller {
	endpoints := make([]*Endpoint, len(hostPorts))
	for i, hp := range hostPorts {
		endpoints[i] = NewEndpoint(hp[0], hp[1], queueCapacity)
	}
	return &Controller{Endpoints: endpoints, BufSize: bufSize, DistributorMode: mode, Logger: logger}
}

// WorkerError wraps a failure attributed to a specific worker endpoint,
// so callers can map it to spec §6's exit code 2 (as opposed to a
// reader-side fatal error, which maps to exit code 1) via errors.As.
type WorkerError struct {
	Addr string
	Err  error
}

func (e *WorkerError) Error() string { return fmt.Sprintf("worker %s: %v", e.Addr, e.Err) }
func (e *WorkerError) Unwrap() error { return e.Err }

// Run drives one full job over root, writing the merged global top-K of
// size k to w. Reader-side failures (directory walk, file I/O, a
// miscomputed distributor split) are returned as-is; worker-side
// failures are wrapped in *WorkerError, so cmd/master can tell them apart.
func (c *Controller) Run(root string, k int, w io.Writer) error {
	var wg sync.WaitGroup
	wg.Add(len(c.Endpoints))
	for _, ep := range c.Endpoints {
		go func(ep *Endpoint) {
			defer wg.Done()
			RunSender(ep, c.BufSize, c.Logger)
		}(ep)
	}

	readerErr := RunReader(root, c.Endpoints, c.DistributorMode, c.BufSize, c.Logger)
	wg.Wait()

	if readerErr != nil {
		return readerErr
	}

	merged := make(domain.WordMap)
	for _, ep := range c.Endpoints {
		if err := ep.Collector.Err(); err != nil {
			return &WorkerError{Addr: ep.Addr(), Err: err}
		}
		if !ep.Collector.Finished() {
			return &WorkerError{Addr: ep.Addr(), Err: domain.ErrTransport}
		}
		merged.Merge(ep.Collector.Map)
	}

	top := topk.FromWordMap(merged, k)
	for _, p := range top.Items() {
		fmt.Fprintf(w, "%s\t%d\n", p.Word, p.Count)
	}
	return nil
}
