// Package master implements the master controller (spec §4.9): per-worker
// endpoints, the reader goroutine driving the fan-out distributor, one
// sender goroutine per worker, and the orchestrator that joins them,
// merges results, and prints the global top-K.
package master

import (
	"bytes"
	"strconv"
	"sync"

	"github.com/pkg/errors"

	"github.com/baditaflorin/go_topk_wordcount/internal/core/domain"
)

// Collector implements ports.StreamProcessor, parsing a worker's
// "word\tcount\n" response body incrementally as framing.Receiver hands
// it chunks, so the master need not buffer the whole response before
// starting to fold it into the endpoint's WordMap.
//
// Grounded on original_source/cpp/src/wc/master.cpp's per-endpoint result
// collector, which likewise tracks an error flag and a finished flag
// separately from the map itself.
//
// Map is only ever touched by the sender goroutine driving Process, but
// errFlag/finished are also read concurrently by StatusServer, so those
// two fields go behind mu.
type Collector struct {
	Map domain.WordMap

	mu       sync.Mutex
	errFlag  error
	finished bool
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{Map: make(domain.WordMap)}
}

// Process implements ports.StreamProcessor: it splits buf on '\n',
// parsing each complete "word\tcount" line into Map, and holds back any
// trailing partial line for the next call.
func (c *Collector) Process(buf []byte, eof bool) int {
	consumed := 0
	for {
		nl := bytes.IndexByte(buf[consumed:], '\n')
		if nl < 0 {
			break
		}
		line := buf[consumed : consumed+nl]
		consumed += nl + 1
		if err := c.parseLine(line); err != nil {
			c.SetError(err)
			return len(buf)
		}
	}

	if eof {
		if rest := buf[consumed:]; len(rest) > 0 {
			if err := c.parseLine(rest); err != nil {
				c.SetError(err)
			}
		}
		c.mu.Lock()
		c.finished = true
		c.mu.Unlock()
		return len(buf)
	}

	return consumed
}

func (c *Collector) parseLine(line []byte) error {
	tab := bytes.IndexByte(line, '\t')
	if tab < 0 {
		return errors.Wrapf(domain.ErrFraming, "malformed response line %q", line)
	}
	word := string(line[:tab])
	count, err := strconv.ParseUint(string(line[tab+1:]), 10, 64)
	if err != nil {
		return errors.Wrapf(domain.ErrFraming, "malformed count in line %q", line)
	}
	c.Map.Add(word, count)
	return nil
}

// SetError latches a fatal error for this endpoint, per spec §7's
// "first error ends the iteration" / §5's set_error discipline.
func (c *Collector) SetError(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.errFlag == nil {
		c.errFlag = err
	}
}

// Err returns the latched error, if any. Safe to call concurrently with
// Process (StatusServer does, from its own goroutine).
func (c *Collector) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errFlag
}

// Finished reports whether the response was fully parsed without error.
// Safe to call concurrently with Process.
func (c *Collector) Finished() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.finished && c.errFlag == nil
}
