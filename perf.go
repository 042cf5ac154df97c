package main

import (
	"time"

	"github.com/charmbracelet/log"
)

const (
	perfSampleSize = 60 // rolling window per metric
	perfWarnMs     = 33.0
	perfReportSec  = 5.0
)

// perfSeries is a fixed rolling window of duration samples in milliseconds
type perfSeries struct {
	samples [perfSampleSize]float64
	idx     int
	count   int
}

func (s *perfSeries) add(ms float64) {
	s.samples[s.idx] = ms
	s.idx = (s.idx + 1) % perfSampleSize
	if s.count < perfSampleSize {
		s.count++
	}
}

func (s *perfSeries) avg() float64 {
	if s.count == 0 {
		return 0
	}
	sum := 0.0
	for i := 0; i < s.count; i++ {
		sum += s.samples[i]
	}
	return sum / float64(s.count)
}

// PerfMonitor tracks frame and section timings for one game loop. It
// implements collision.SectionTimer so the engine can time its own check
// passes. Like the engine, it belongs to a single goroutine.
type PerfMonitor struct {
	sections map[string]*perfSeries
	starts   map[string]time.Time

	frames     perfSeries
	frameStart time.Time

	frameCount int
	fps        float64
	lastFPSAt  time.Time

	lastReportAt time.Time
	log          *log.Logger
}

// NewPerfMonitor creates a monitor logging through the given logger
func NewPerfMonitor(logger *log.Logger) *PerfMonitor {
	if logger == nil {
		logger = log.Default()
	}
	now := time.Now()
	return &PerfMonitor{
		sections:     make(map[string]*perfSeries),
		starts:       make(map[string]time.Time),
		lastFPSAt:    now,
		lastReportAt: now,
		log:          logger,
	}
}

// StartFrame begins timing a new frame
func (pm *PerfMonitor) StartFrame() {
	pm.frameStart = time.Now()
}

// StartSection begins timing a named section of the current frame
func (pm *PerfMonitor) StartSection(name string) {
	pm.starts[name] = time.Now()
}

// EndSection records the section's duration and warns when it blows the
// frame budget
func (pm *PerfMonitor) EndSection(name string) {
	start, ok := pm.starts[name]
	if !ok {
		return
	}
	delete(pm.starts, name)
	ms := float64(time.Since(start)) / float64(time.Millisecond)

	series, ok := pm.sections[name]
	if !ok {
		series = &perfSeries{}
		pm.sections[name] = series
	}
	series.add(ms)

	if ms > perfWarnMs {
		pm.log.Warn("slow section", "section", name, "ms", ms)
	}
}

// EndFrame records the frame duration, refreshes the FPS estimate and
// emits the periodic report
func (pm *PerfMonitor) EndFrame() {
	pm.frames.add(float64(time.Since(pm.frameStart)) / float64(time.Millisecond))
	pm.frameCount++

	now := time.Now()
	if since := now.Sub(pm.lastFPSAt).Seconds(); since >= 0.5 {
		pm.fps = float64(pm.frameCount) / since
		pm.frameCount = 0
		pm.lastFPSAt = now
	}
	if now.Sub(pm.lastReportAt).Seconds() >= perfReportSec {
		pm.report()
		pm.lastReportAt = now
	}
}

// FPS returns the current frames-per-second estimate
func (pm *PerfMonitor) FPS() float64 {
	return pm.fps
}

// SectionAvg returns the rolling average for one section in milliseconds
func (pm *PerfMonitor) SectionAvg(name string) float64 {
	if series, ok := pm.sections[name]; ok {
		return series.avg()
	}
	return 0
}

// report logs the rolling averages for the frame and every section
func (pm *PerfMonitor) report() {
	avgFrame := pm.frames.avg()
	if avgFrame == 0 {
		return
	}
	kv := []interface{}{"fps", pm.fps, "frameMs", avgFrame}
	for name, series := range pm.sections {
		if series.count > 0 {
			kv = append(kv, name+"Ms", series.avg())
		}
	}
	pm.log.Debug("performance", kv...)
}
