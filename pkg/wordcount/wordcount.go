// Package wordcount is the public facade over the word-count pipeline,
// in the style of the teacher's pkg/word facade: a functional-options
// constructor wrapping the internal ports/adapters so callers never
// import internal packages directly.
package wordcount

import (
	"context"
	"os"

	"github.com/baditaflorin/l"

	"github.com/baditaflorin/go_topk_wordcount/internal/adapters/logger"
	"github.com/baditaflorin/go_topk_wordcount/internal/adapters/wordcount"
	"github.com/baditaflorin/go_topk_wordcount/internal/core/domain"
	"github.com/baditaflorin/go_topk_wordcount/internal/core/topk"
	"github.com/baditaflorin/go_topk_wordcount/internal/core/walk"
	"github.com/baditaflorin/go_topk_wordcount/internal/ports"
	"github.com/baditaflorin/go_topk_wordcount/internal/warmup"
)

// Pair is a (word, count) observation, re-exported so callers never need
// to import internal/core/domain.
type Pair = domain.Pair

// WordCount runs the single-process counting pipeline (spec §4.1-§4.3,
// §4's buffered streamer + tokenizer + top-K, without networking) over
// one or more files.
type WordCount struct {
	streamer *wordcount.BufferedStreamer
	counter  *wordcount.Counter
	k        int
	logger   ports.Logger
}

// Option configures a WordCount.
type Option func(*config)

type config struct {
	bufferSize   int
	topK         int
	logger       ports.Logger
	warmUp       bool
	warmUpConfig warmup.Config
}

// WithBufferSize sets the tokenizer working buffer size; it must exceed
// the longest word expected in the input.
func WithBufferSize(size int) Option {
	return func(cfg *config) { cfg.bufferSize = size }
}

// WithTopK sets K: TopK returns the K highest-count pairs plus any pairs
// tied with the K-th.
func WithTopK(k int) Option {
	return func(cfg *config) { cfg.topK = k }
}

// WithLogger sets a custom l.Logger.
func WithLogger(lg l.Logger) Option {
	return func(cfg *config) { cfg.logger = logger.FromExisting(lg) }
}

// WithWarmUp enables running the tokenizer/counter pipeline against
// generated sample text during New, before CountFile/CountDirectory ever
// sees real input, so the caller's first real file isn't also paying for
// first-touch allocation and GC costs.
func WithWarmUp(enable bool) Option {
	return func(cfg *config) { cfg.warmUp = enable }
}

// WithWarmUpConfig sets a custom warmup.Config and implies WithWarmUp(true).
func WithWarmUpConfig(wc warmup.Config) Option {
	return func(cfg *config) {
		cfg.warmUp = true
		cfg.warmUpConfig = wc
	}
}

// New creates a WordCount with default buffer size and top-K of 10.
func New(opts ...Option) (*WordCount, error) {
	cfg := &config{
		bufferSize:   domain.DefaultStreamBufferSize,
		topK:         10,
		warmUp:       false,
		warmUpConfig: warmup.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.logger == nil {
		lg, err := logger.New()
		if err != nil {
			return nil, err
		}
		cfg.logger = lg
	}

	streamer := wordcount.NewBufferedStreamer(cfg.bufferSize, cfg.logger)

	if cfg.warmUp {
		mgr := warmup.NewManager(cfg.logger, cfg.warmUpConfig)
		mgr.RegisterStreamer(streamer)
		mgr.WarmUp(context.Background())
	}

	return &WordCount{
		streamer: streamer,
		counter:  wordcount.NewCounter(),
		k:        cfg.topK,
		logger:   cfg.logger,
	}, nil
}

// CountFile streams one file's bytes into the running count.
func (w *WordCount) CountFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return w.streamer.Stream(f, w.counter)
}

// CountDirectory streams every regular file under dir, in sorted path
// order, into the running count.
func (w *WordCount) CountDirectory(dir string) error {
	files, err := walk.Files(dir)
	if err != nil {
		return err
	}
	for _, path := range files {
		if err := w.CountFile(path); err != nil {
			return err
		}
	}
	return nil
}

// TopK returns the current top-K pairs, count-descending, with ties at
// the K-th count retained.
func (w *WordCount) TopK() []Pair {
	return topk.FromWordMap(w.counter.Map, w.k).Items()
}

// Count returns the current count for word (0 if never seen).
func (w *WordCount) Count(word string) uint64 {
	return w.counter.Map[word]
}

// Close releases the logger.
func (w *WordCount) Close() error {
	return w.logger.Close()
}
