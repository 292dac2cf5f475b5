package workers

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"

	"github.com/Rafael2sf/ft-transcendence-sub001/rpc"
)

// HeartbeatWorker reports gateway self-health to the monitoring side
// of the platform. The publish is fire-and-forget: an unreachable
// broker never affects the gateway.
type HeartbeatWorker struct {
	log      *slog.Logger
	client   *rpc.Client
	nodeID   string
	interval time.Duration
}

type gatewayStatus struct {
	NodeID     string  `json:"node_id"`
	Pid        int64   `json:"pid"`
	PidStatus  string  `json:"pid_status"`
	CpuPercent float64 `json:"cpu_percent"`
	RamBytes   uint64  `json:"ram_bytes"`
}

func NewHeartbeatWorker(log *slog.Logger, client *rpc.Client,
	nodeID string, interval time.Duration) *HeartbeatWorker {
	return &HeartbeatWorker{log: log, client: client, nodeID: nodeID, interval: interval}
}

// Run executes the main loop of the worker, publishing health metrics
// (CPU, RAM, Status) on every interval.
func (w *HeartbeatWorker) Run(ctx context.Context) error {
	w.log.Info("Starting gateway heartbeat worker")
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
			rss, cpu, status, err := getSelfStats(p)
			if err != nil {
				w.log.Error("Failed to collect self stats", "err", err)
				continue
			}

			w.client.Publish(rpc.TopicGatewayHealth, gatewayStatus{
				NodeID:     w.nodeID,
				Pid:        int64(os.Getpid()),
				PidStatus:  status,
				CpuPercent: cpu,
				RamBytes:   rss,
			})
		}
	}
}

// getSelfStats retrieves technical metrics (Memory, CPU, and OS Status) for the given process.
func getSelfStats(p *process.Process) (uint64, float64, string, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, "", err
	}

	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, "", err
	}

	status, err := p.Status()
	if err != nil {
		return 0, 0, "", err
	}
	return memInfo.RSS, cpuPercent, status, nil
}
