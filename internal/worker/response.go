package worker

import (
	"fmt"
	"strings"

	"github.com/baditaflorin/go_topk_wordcount/internal/core/domain"
	"github.com/baditaflorin/go_topk_wordcount/internal/core/topk"
)

// FormatFunc renders a finished word count into the response body a
// worker sends back, per spec §4.8's "format_response" compile-time
// choice between the general and filter variants.
type FormatFunc func(m domain.WordMap) []byte

// FormatGeneral renders every word in m as a "word\tcount\n" line, in
// arbitrary order — the general worker variant's full-map response.
func FormatGeneral(m domain.WordMap) []byte {
	var b strings.Builder
	for w, c := range m {
		fmt.Fprintf(&b, "%s\t%d\n", w, c)
	}
	return []byte(b.String())
}

// FormatFilter renders only m's local top-K as "word\tcount\n" lines —
// the filter worker variant's response, built from the finished map via
// topk.FromWordMap per spec §4.3's one-shot add contract.
func FormatFilter(k int) FormatFunc {
	return func(m domain.WordMap) []byte {
		t := topk.FromWordMap(m, k)
		var b strings.Builder
		for _, p := range t.Items() {
			fmt.Fprintf(&b, "%s\t%d\n", p.Word, p.Count)
		}
		return []byte(b.String())
	}
}
