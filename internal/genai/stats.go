package genai

import (
	"sort"
	"sync"
	"time"
)

// Stats keeps provider call latencies within a rolling window so the API
// can report recent p50/p95 figures without unbounded growth.
type Stats struct {
	mu      sync.Mutex
	window  time.Duration
	entries []entry
}

type entry struct {
	at  time.Time
	dur time.Duration
}

// Snapshot is a point-in-time aggregate of recent call latencies.
type Snapshot struct {
	Count int     `json:"count"`
	MinMs int64   `json:"min_ms"`
	MaxMs int64   `json:"max_ms"`
	AvgMs float64 `json:"avg_ms"`
	P50Ms int64   `json:"p50_ms"`
	P95Ms int64   `json:"p95_ms"`
}

func NewStats(window time.Duration) *Stats {
	if window <= 0 {
		window = time.Hour
	}
	return &Stats{window: window}
}

// Record adds one call duration.
func (s *Stats) Record(d time.Duration) {
	if d < 0 {
		d = 0
	}
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evict(now)
	s.entries = append(s.entries, entry{at: now, dur: d})
}

// Snapshot aggregates the entries still inside the window.
func (s *Stats) Snapshot() Snapshot {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evict(now)

	if len(s.entries) == 0 {
		return Snapshot{}
	}

	durs := make([]time.Duration, len(s.entries))
	var total time.Duration
	for i, e := range s.entries {
		durs[i] = e.dur
		total += e.dur
	}
	sort.Slice(durs, func(i, j int) bool { return durs[i] < durs[j] })

	return Snapshot{
		Count: len(durs),
		MinMs: durs[0].Milliseconds(),
		MaxMs: durs[len(durs)-1].Milliseconds(),
		AvgMs: float64(total.Milliseconds()) / float64(len(durs)),
		P50Ms: nearestRank(durs, 50).Milliseconds(),
		P95Ms: nearestRank(durs, 95).Milliseconds(),
	}
}

// evict drops entries older than the window. Entries are appended in time
// order, so the survivors are a suffix.
func (s *Stats) evict(now time.Time) {
	cutoff := now.Add(-s.window)
	i := 0
	for i < len(s.entries) && s.entries[i].at.Before(cutoff) {
		i++
	}
	if i > 0 {
		s.entries = append(s.entries[:0], s.entries[i:]...)
	}
}

// nearestRank picks the pct-th percentile by the nearest-rank method.
func nearestRank(sorted []time.Duration, pct int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	rank := (pct*len(sorted) + 99) / 100
	if rank < 1 {
		rank = 1
	}
	if rank > len(sorted) {
		rank = len(sorted)
	}
	return sorted[rank-1]
}
