package workers

import (
	"ares-gme/contract"
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"
)

var _ contract.Worker = (*TelemetryWorker)(nil)

// QueueStats reports the current depth and total capacity of the inbound
// shard queues.
type QueueStats func() (depth, capacity int)

// TelemetryWorker periodically logs process health (RSS, CPU, queue load).
type TelemetryWorker struct {
	log      *slog.Logger
	interval time.Duration
	stats    QueueStats
}

func NewTelemetryWorker(log *slog.Logger, interval time.Duration, stats QueueStats) *TelemetryWorker {
	return &TelemetryWorker{log: log, interval: interval, stats: stats}
}

func (w *TelemetryWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			rss, cpu, err := selfStats(p)
			if err != nil {
				w.log.Error("Failed to collect self stats", "err", err)
				continue
			}
			depth, capacity := w.stats()
			w.log.Info("Engine telemetry",
				"ram_bytes", rss,
				"cpu_percent", cpu,
				"queued", depth,
				"queue_capacity", capacity)
		}
	}
}

func selfStats(p *process.Process) (uint64, float64, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, err
	}
	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, err
	}
	return memInfo.RSS, cpuPercent, nil
}
