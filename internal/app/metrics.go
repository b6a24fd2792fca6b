package app

import (
	"sync/atomic"
	"time"
)

// Metrics counts frames and input handled by the event loop.
type Metrics struct {
	frameCount   atomic.Uint64
	frameTotalNs atomic.Int64
	frameMaxNs   atomic.Int64

	inputCount  atomic.Uint64
	reloadCount atomic.Uint64
	reloadFails atomic.Uint64

	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{startTime: time.Now()}
}

// RecordFrame records how long one frame took to process.
func (m *Metrics) RecordFrame(d time.Duration) {
	ns := d.Nanoseconds()
	m.frameCount.Add(1)
	m.frameTotalNs.Add(ns)

	for {
		cur := m.frameMaxNs.Load()
		if ns <= cur || m.frameMaxNs.CompareAndSwap(cur, ns) {
			return
		}
	}
}

// RecordInput records one terminal event.
func (m *Metrics) RecordInput() {
	m.inputCount.Add(1)
}

// RecordReload records a bindings reload attempt.
func (m *Metrics) RecordReload(ok bool) {
	m.reloadCount.Add(1)
	if !ok {
		m.reloadFails.Add(1)
	}
}

// MetricsSnapshot is a point-in-time copy of Metrics.
type MetricsSnapshot struct {
	FrameCount   uint64
	AvgFrameTime time.Duration
	MaxFrameTime time.Duration
	InputCount   uint64
	ReloadCount  uint64
	ReloadFailed uint64
	Uptime       time.Duration
}

// Snapshot returns the current counters.
func (m *Metrics) Snapshot() MetricsSnapshot {
	s := MetricsSnapshot{
		FrameCount:   m.frameCount.Load(),
		MaxFrameTime: time.Duration(m.frameMaxNs.Load()),
		InputCount:   m.inputCount.Load(),
		ReloadCount:  m.reloadCount.Load(),
		ReloadFailed: m.reloadFails.Load(),
		Uptime:       time.Since(m.startTime),
	}
	if s.FrameCount > 0 {
		s.AvgFrameTime = time.Duration(m.frameTotalNs.Load() / int64(s.FrameCount))
	}
	return s
}

// attrs returns the snapshot as slog key-value pairs.
func (s MetricsSnapshot) attrs() []any {
	return []any{
		"frames", s.FrameCount,
		"avg_frame", s.AvgFrameTime,
		"max_frame", s.MaxFrameTime,
		"inputs", s.InputCount,
		"reloads", s.ReloadCount,
		"reload_failures", s.ReloadFailed,
		"uptime", s.Uptime.Round(time.Millisecond),
	}
}
