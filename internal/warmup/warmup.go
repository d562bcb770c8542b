// Package warmup runs the tokenizer/counter pipeline against generated
// sample text before a pkg/wordcount.WordCount built with WithWarmUp or
// WithWarmUpConfig counts its first real file, so that file isn't also
// paying for
// JIT-free Go's first-touch allocation and GC costs. Grounded on the
// teacher's internal/warmup.Manager, repurposed from warming similarity
// calculators and normalizers to warming the word-count stream pipeline.
package warmup

import (
	"context"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/baditaflorin/go_topk_wordcount/internal/adapters/wordcount"
	"github.com/baditaflorin/go_topk_wordcount/internal/ports"
)

// Config controls how much warmup work runs.
type Config struct {
	Concurrency    int
	Iterations     int
	SampleWordSize int
	Duration       time.Duration
	ForceGC        bool
}

// DefaultConfig returns a modest warmup: enough to touch the hot paths
// without meaningfully delaying startup.
func DefaultConfig() Config {
	return Config{
		Concurrency:    runtime.NumCPU(),
		Iterations:     100,
		SampleWordSize: 2000,
		Duration:       2 * time.Second,
		ForceGC:        true,
	}
}

// Manager drives warmup over a set of streamers/counters before real
// traffic arrives.
type Manager struct {
	logger    ports.Logger
	streamers []*wordcount.BufferedStreamer
	config    Config
}

// NewManager creates a warmup manager.
func NewManager(logger ports.Logger, config Config) *Manager {
	return &Manager{logger: logger, config: config}
}

// RegisterStreamer adds a streamer to be exercised during WarmUp.
func (wm *Manager) RegisterStreamer(s *wordcount.BufferedStreamer) {
	wm.streamers = append(wm.streamers, s)
}

// WarmUp runs every registered streamer, each driving a fresh
// wordcount.Counter, concurrently over generated sample text.
func (wm *Manager) WarmUp(ctx context.Context) {
	if len(wm.streamers) == 0 {
		return
	}

	start := time.Now()
	if wm.logger != nil {
		wm.logger.Info("warmup: starting", "streamers", len(wm.streamers), "concurrency", wm.config.Concurrency)
	}

	warmupCtx := ctx
	if wm.config.Duration > 0 {
		var cancel context.CancelFunc
		warmupCtx, cancel = context.WithTimeout(ctx, wm.config.Duration)
		defer cancel()
	}

	sample := generateSampleText(wm.config.SampleWordSize)

	var wg sync.WaitGroup
	for i := 0; i < wm.config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < wm.config.Iterations; j++ {
				select {
				case <-warmupCtx.Done():
					return
				default:
				}
				for _, s := range wm.streamers {
					counter := wordcount.NewCounter()
					_ = s.Stream(strings.NewReader(sample), counter)
				}
			}
		}()
	}
	wg.Wait()

	if wm.config.ForceGC {
		runtime.GC()
	}
	if wm.logger != nil {
		wm.logger.Info("warmup: complete", "duration", time.Since(start))
	}
}

func generateSampleText(wordCount int) string {
	words := []string{
		"the", "quick", "brown", "fox", "jumps", "over", "lazy", "dog",
		"hello", "world", "lorem", "ipsum", "dolor", "sit", "amet", "consectetur",
	}
	var b strings.Builder
	for i := 0; i < wordCount; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(words[i%len(words)])
	}
	return b.String()
}
