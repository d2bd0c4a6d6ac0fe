// Package system reports process and host figures for the health endpoint.
//
// Values come from gopsutil. Any figure that cannot be read on the current
// platform is left at zero rather than failing the whole report.
package system

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
)

// Stats is a point-in-time snapshot of the running server process.
type Stats struct {
	Hostname      string  `json:"hostname"`
	PID           int32   `json:"pid"`
	Goroutines    int     `json:"goroutines"`
	MemoryRSS     uint64  `json:"memory_rss"`
	HostMemUsed   float64 `json:"host_memory_percent"`
	HostUptime    uint64  `json:"host_uptime_seconds"`
	ProcessUptime float64 `json:"uptime_seconds"`
}

// GetStats collects a snapshot. started is the time the server came up.
func GetStats(started time.Time) *Stats {
	stats := &Stats{
		PID:           int32(os.Getpid()),
		Goroutines:    runtime.NumGoroutine(),
		ProcessUptime: time.Since(started).Seconds(),
	}

	if hostname, err := os.Hostname(); err == nil {
		stats.Hostname = hostname
	}

	if proc, err := process.NewProcess(stats.PID); err == nil {
		if memInfo, err := proc.MemoryInfo(); err == nil {
			stats.MemoryRSS = memInfo.RSS
		}
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		stats.HostMemUsed = vm.UsedPercent
	}

	if uptime, err := host.Uptime(); err == nil {
		stats.HostUptime = uptime
	}

	return stats
}

// formatUptime converts seconds to human-readable format.
func formatUptime(seconds float64) string {
	s := uint64(seconds)
	days := s / 86400
	hours := (s % 86400) / 3600
	minutes := (s % 3600) / 60

	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

// UptimeHuman returns the process uptime in a short readable form.
func (s *Stats) UptimeHuman() string {
	return formatUptime(s.ProcessUptime)
}
