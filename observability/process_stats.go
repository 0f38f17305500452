package observability

import (
	"os"

	"github.com/shirou/gopsutil/process"
)

// ProcessStats describes the client process itself.
type ProcessStats struct {
	PID        int32
	RSSBytes   uint64
	CPUPercent float64
}

// SelfStats samples memory and CPU usage of the running client.
func SelfStats() (ProcessStats, error) {
	pid := int32(os.Getpid())
	p, err := process.NewProcess(pid)
	if err != nil {
		return ProcessStats{}, err
	}
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return ProcessStats{}, err
	}
	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return ProcessStats{}, err
	}
	return ProcessStats{PID: pid, RSSBytes: memInfo.RSS, CPUPercent: cpuPercent}, nil
}
