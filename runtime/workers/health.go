package workers

import (
	"context"
	"log/slog"
	"time"
	"web-messenger/contract"
)

// HealthWorker polls the backend health endpoint and logs state transitions.
type HealthWorker struct {
	log      *slog.Logger
	prober   contract.IProber
	interval time.Duration
	onChange func(up bool)
}

// NewHealthWorker builds the worker. onChange may be nil.
func NewHealthWorker(log *slog.Logger, prober contract.IProber, interval time.Duration, onChange func(up bool)) *HealthWorker {
	return &HealthWorker{log: log, prober: prober, interval: interval, onChange: onChange}
}

// Run probes once right away, then every interval, until ctx is done.
func (w *HealthWorker) Run(ctx context.Context) error {
	w.log.Info("Starting backend health worker", "interval", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	var known, up bool
	check := func() {
		current := w.prober.TestConnection(ctx)
		if known && current == up {
			return
		}
		if ctx.Err() != nil {
			return
		}
		if current {
			w.log.Info("Backend is up")
		} else {
			w.log.Warn("Backend is down")
		}
		known, up = true, current
		if w.onChange != nil {
			w.onChange(current)
		}
	}

	check()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping health worker")
			return ctx.Err()
		case <-ticker.C:
			check()
		}
	}
}
