package observability

import (
	"maps"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/samber/lo"
)

// APIStatsSnapshot is a point-in-time copy of the counters.
type APIStatsSnapshot struct {
	Requests  uint64
	Failures  uint64
	Fallbacks uint64
	ByProfile map[string]uint64
	LastError string
	LastCheck time.Time
}

// APIStats aggregates transport telemetry for the CLI.
type APIStats struct {
	requests  uint64
	failures  uint64
	fallbacks uint64

	mu        sync.RWMutex
	byProfile map[string]uint64
	lastError string
	lastCheck time.Time
}

func NewAPIStats() *APIStats {
	return &APIStats{byProfile: make(map[string]uint64)}
}

func (s *APIStats) IncrRequests() {
	atomic.AddUint64(&s.requests, 1)
}

// IncrFallbacks counts a profile attempt that failed and handed over to the next one.
func (s *APIStats) IncrFallbacks() {
	atomic.AddUint64(&s.fallbacks, 1)
}

func (s *APIStats) RecordSuccess(profile string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byProfile[profile]++
	s.lastCheck = time.Now()
}

func (s *APIStats) RecordFailure(err error) {
	atomic.AddUint64(&s.failures, 1)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.lastError = err.Error()
	}
	s.lastCheck = time.Now()
}

func (s *APIStats) Snapshot() APIStatsSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	byProfile := maps.Clone(s.byProfile)
	return APIStatsSnapshot{
		Requests:  atomic.LoadUint64(&s.requests),
		Failures:  atomic.LoadUint64(&s.failures),
		Fallbacks: atomic.LoadUint64(&s.fallbacks),
		ByProfile: byProfile,
		LastError: s.lastError,
		LastCheck: s.lastCheck,
	}
}

// Profiles returns the profile names that served at least one request, sorted.
func (s APIStatsSnapshot) Profiles() []string {
	names := lo.Keys(s.ByProfile)
	slices.Sort(names)
	return names
}
