package utils

import (
	"context"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
	"go.uber.org/zap"

	"notesvc/model"
)

// GetSystemStats samples host CPU and memory usage. CPU usage is measured
// since the previous call, so the first sample may read zero. Failures are
// logged and leave the affected fields zero.
func GetSystemStats(ctx context.Context, logger *zap.Logger) model.SystemStats {
	var stats model.SystemStats

	percentage, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil {
		logger.Warn("cpu usage unavailable", zap.Error(err))
	} else if len(percentage) > 0 {
		stats.CPUPercent = percentage[0]
	}

	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		logger.Warn("memory usage unavailable", zap.Error(err))
	} else {
		stats.MemoryPercent = vm.UsedPercent
		stats.MemoryUsed = vm.Used
		stats.MemoryTotal = vm.Total
	}

	return stats
}
