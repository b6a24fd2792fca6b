package app

import (
	"testing"
	"time"
)

func TestNewMetrics(t *testing.T) {
	m := NewMetrics()

	snapshot := m.Snapshot()
	if snapshot.FrameCount != 0 {
		t.Errorf("expected 0 frame count, got %d", snapshot.FrameCount)
	}
	if snapshot.AvgFrameTime != 0 {
		t.Errorf("expected 0 average with no frames, got %v", snapshot.AvgFrameTime)
	}
}

func TestMetrics_RecordFrame(t *testing.T) {
	m := NewMetrics()

	m.RecordFrame(10 * time.Millisecond)
	m.RecordFrame(20 * time.Millisecond)
	m.RecordFrame(6 * time.Millisecond)

	snapshot := m.Snapshot()
	if snapshot.FrameCount != 3 {
		t.Errorf("expected 3 frames, got %d", snapshot.FrameCount)
	}
	if snapshot.AvgFrameTime != 12*time.Millisecond {
		t.Errorf("expected avg 12ms, got %v", snapshot.AvgFrameTime)
	}
	if snapshot.MaxFrameTime != 20*time.Millisecond {
		t.Errorf("expected max 20ms, got %v", snapshot.MaxFrameTime)
	}
}

func TestMetrics_Counters(t *testing.T) {
	m := NewMetrics()

	m.RecordInput()
	m.RecordInput()
	m.RecordReload(true)
	m.RecordReload(false)

	snapshot := m.Snapshot()
	if snapshot.InputCount != 2 {
		t.Errorf("expected 2 inputs, got %d", snapshot.InputCount)
	}
	if snapshot.ReloadCount != 2 || snapshot.ReloadFailed != 1 {
		t.Errorf("expected 2 reloads with 1 failure, got %d/%d", snapshot.ReloadCount, snapshot.ReloadFailed)
	}
}
