package main

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func newTestPerf() *PerfMonitor {
	return NewPerfMonitor(log.New(io.Discard))
}

func TestPerfSectionRecorded(t *testing.T) {
	pm := newTestPerf()
	pm.StartSection("update")
	time.Sleep(2 * time.Millisecond)
	pm.EndSection("update")

	if pm.SectionAvg("update") <= 0 {
		t.Error("expected a recorded section average")
	}
}

func TestPerfUnknownSection(t *testing.T) {
	pm := newTestPerf()
	if pm.SectionAvg("nope") != 0 {
		t.Error("expected zero for an unknown section")
	}
}

func TestPerfEndWithoutStart(t *testing.T) {
	pm := newTestPerf()
	pm.EndSection("orphan")
	if pm.SectionAvg("orphan") != 0 {
		t.Error("an unmatched end must not record a sample")
	}
}

func TestPerfSeriesRollingWindow(t *testing.T) {
	var s perfSeries
	for i := 1; i <= perfSampleSize+10; i++ {
		s.add(float64(i))
	}
	if s.count != perfSampleSize {
		t.Errorf("expected window of %d samples, got %d", perfSampleSize, s.count)
	}
	// Window now holds 11..70, average 40.5
	if s.avg() != 40.5 {
		t.Errorf("expected rolling average 40.5, got %f", s.avg())
	}
}

func TestPerfSeriesEmpty(t *testing.T) {
	var s perfSeries
	if s.avg() != 0 {
		t.Errorf("expected zero average with no samples, got %f", s.avg())
	}
}

func TestPerfFPS(t *testing.T) {
	pm := newTestPerf()
	// Backdate the window so the next EndFrame refreshes the estimate
	pm.lastFPSAt = time.Now().Add(-time.Second)
	for i := 0; i < 30; i++ {
		pm.StartFrame()
		pm.EndFrame()
	}
	if pm.FPS() <= 0 {
		t.Errorf("expected a positive FPS estimate, got %f", pm.FPS())
	}
}

func TestPerfNestedSections(t *testing.T) {
	pm := newTestPerf()
	pm.StartFrame()
	pm.StartSection("collision")
	pm.StartSection("broadcast")
	pm.EndSection("broadcast")
	pm.EndSection("collision")
	pm.EndFrame()

	if pm.SectionAvg("collision") < pm.SectionAvg("broadcast") {
		t.Error("outer section should cover the inner one")
	}
}
