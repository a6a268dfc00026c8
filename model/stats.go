package model

import "time"

// ServiceStatus is the body of the status endpoint.
type ServiceStatus struct {
	OK        bool        `json:"ok"`
	Database  DBStatus    `json:"database"`
	System    SystemStats `json:"system"`
	StartedAt time.Time   `json:"started_at"`
	Uptime    string      `json:"uptime"`
}

type DBStatus struct {
	Reachable     bool    `json:"reachable"`
	LatencyMillis float64 `json:"latency_ms"`
	Error         string  `json:"error,omitempty"`
	TotalConns    int32   `json:"total_conns"`
	IdleConns     int32   `json:"idle_conns"`
	AcquiredConns int32   `json:"acquired_conns"`
	MaxConns      int32   `json:"max_conns"`
}

type SystemStats struct {
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryPercent float64 `json:"memory_percent"`
	MemoryUsed    uint64  `json:"memory_used_bytes"`
	MemoryTotal   uint64  `json:"memory_total_bytes"`
}
