package observability

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAPIStats_ConcurrentRecording(t *testing.T) {
	req := require.New(t)
	stats := NewAPIStats()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			stats.IncrRequests()
			stats.IncrFallbacks()
			stats.RecordSuccess("cors-include")
		}()
	}
	wg.Wait()
	stats.RecordFailure(errors.New("connection refused"))

	snapshot := stats.Snapshot()
	req.Equal(uint64(50), snapshot.Requests)
	req.Equal(uint64(50), snapshot.Fallbacks)
	req.Equal(uint64(1), snapshot.Failures)
	req.Equal(uint64(50), snapshot.ByProfile["cors-include"])
	req.Equal("connection refused", snapshot.LastError)
	req.False(snapshot.LastCheck.IsZero())
}

func TestAPIStatsSnapshot_IsACopy(t *testing.T) {
	req := require.New(t)
	stats := NewAPIStats()
	stats.RecordSuccess("no-cors")
	stats.RecordSuccess("cors-omit")

	snapshot := stats.Snapshot()
	snapshot.ByProfile["no-cors"] = 99

	req.Equal(uint64(1), stats.Snapshot().ByProfile["no-cors"])
	req.Equal([]string{"cors-omit", "no-cors"}, snapshot.Profiles())
}
