package master

import (
	"net"

	"github.com/baditaflorin/go_topk_wordcount/internal/core/domain"
	"github.com/baditaflorin/go_topk_wordcount/internal/core/queue"
)

// Endpoint is one worker's (host, port) spec plus the SPSC queue its
// sender goroutine drains and the collector its response is folded into.
// Written only by its owning sender goroutine and read only by the
// orchestrator after that goroutine has joined (spec §5).
type Endpoint struct {
	Host string
	Port string

	Queue     *queue.SPSC
	Collector *Collector
}

// NewEndpoint creates an endpoint with a fresh queue of the given
// capacity and an empty collector.
func NewEndpoint(host, port string, queueCapacity int) *Endpoint {
	if queueCapacity <= 0 {
		queueCapacity = domain.DefaultQueueCapacity
	}
	return &Endpoint{
		Host:      host,
		Port:      port,
		Queue:     queue.New(queueCapacity),
		Collector: NewCollector(),
	}
}

// Addr returns the endpoint's dial address.
func (e *Endpoint) Addr() string { return net.JoinHostPort(e.Host, e.Port) }
