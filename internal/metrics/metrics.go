package metrics

import (
	"sync/atomic"
	"time"

	"github.com/culturalmind/persona-server/internal/llm"
)

// Store accumulates generation and enrichment statistics.
type Store struct {
	totalCalls        int64
	totalErrors       int64
	totalFallbacks    int64
	totalInputTokens  int64
	totalOutputTokens int64
	totalDurationMs   int64
	qlooLookups       int64
	qlooErrors        int64
}

// NewStore creates an empty statistics store.
func NewStore() *Store {
	return &Store{}
}

// RecordSuccess records one successful generation call.
func (s *Store) RecordSuccess(duration time.Duration, usage llm.Usage) {
	atomic.AddInt64(&s.totalCalls, 1)
	atomic.AddInt64(&s.totalInputTokens, int64(usage.InputTokens))
	atomic.AddInt64(&s.totalOutputTokens, int64(usage.OutputTokens))
	atomic.AddInt64(&s.totalDurationMs, duration.Milliseconds())
}

// RecordError records one failed generation call.
func (s *Store) RecordError(duration time.Duration) {
	atomic.AddInt64(&s.totalCalls, 1)
	atomic.AddInt64(&s.totalErrors, 1)
	atomic.AddInt64(&s.totalDurationMs, duration.Milliseconds())
}

// RecordFallback records one response served from the static locale data.
func (s *Store) RecordFallback() {
	atomic.AddInt64(&s.totalFallbacks, 1)
}

// RecordQlooLookup records one taste-graph lookup.
func (s *Store) RecordQlooLookup(err error) {
	atomic.AddInt64(&s.qlooLookups, 1)
	if err != nil {
		atomic.AddInt64(&s.qlooErrors, 1)
	}
}

// UsageTotals returns the accumulated token usage.
func (s *Store) UsageTotals() llm.Usage {
	input := atomic.LoadInt64(&s.totalInputTokens)
	output := atomic.LoadInt64(&s.totalOutputTokens)
	return llm.Usage{
		InputTokens:  int(input),
		OutputTokens: int(output),
		TotalTokens:  int(input + output),
	}
}

// Snapshot returns a point-in-time view of all counters.
func (s *Store) Snapshot() map[string]float64 {
	totalCalls := atomic.LoadInt64(&s.totalCalls)
	totalErrors := atomic.LoadInt64(&s.totalErrors)
	totalFallbacks := atomic.LoadInt64(&s.totalFallbacks)
	input := atomic.LoadInt64(&s.totalInputTokens)
	output := atomic.LoadInt64(&s.totalOutputTokens)
	durationMs := atomic.LoadInt64(&s.totalDurationMs)
	qlooLookups := atomic.LoadInt64(&s.qlooLookups)
	qlooErrors := atomic.LoadInt64(&s.qlooErrors)

	avgDuration := 0.0
	if totalCalls > 0 {
		avgDuration = float64(durationMs) / float64(totalCalls)
	}

	return map[string]float64{
		"total_calls":         float64(totalCalls),
		"total_errors":        float64(totalErrors),
		"total_fallbacks":     float64(totalFallbacks),
		"total_input_tokens":  float64(input),
		"total_output_tokens": float64(output),
		"total_tokens":        float64(input + output),
		"total_duration_ms":   float64(durationMs),
		"avg_duration_ms":     avgDuration,
		"qloo_lookups":        float64(qlooLookups),
		"qloo_errors":         float64(qlooErrors),
	}
}
