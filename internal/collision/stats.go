package collision

// counters accumulates per-window collision statistics plus lifetime cache
// counters. The window counters reset every StatsWindow executed calls.
type counters struct {
	calls      uint64
	checks     uint64
	collisions uint64

	cacheHits   uint64
	cacheMisses uint64
}

// StatsSnapshot is a point-in-time view of the engine's internals.
type StatsSnapshot struct {
	Frame    uint64
	CellSize float64
	Cols     int
	Rows     int

	// Window counters, since the last stats flush
	Calls      uint64
	Checks     uint64
	Collisions uint64

	// Lifetime cache counters
	CacheHits   uint64
	CacheMisses uint64
}

// Stats returns a snapshot of the current counters
func (e *Engine) Stats() StatsSnapshot {
	return StatsSnapshot{
		Frame:       e.frame,
		CellSize:    e.grid.cellSize,
		Cols:        e.grid.cols,
		Rows:        e.grid.rows,
		Calls:       e.stats.calls,
		Checks:      e.stats.checks,
		Collisions:  e.stats.collisions,
		CacheHits:   e.stats.cacheHits,
		CacheMisses: e.stats.cacheMisses,
	}
}

// recordStats folds one CheckCollisions pass into the window counters and
// flushes averages to the log once the window fills.
func (e *Engine) recordStats(checks, collisions int) {
	e.stats.calls++
	e.stats.checks += uint64(checks)
	e.stats.collisions += uint64(collisions)

	if e.stats.calls < uint64(e.cfg.StatsWindow) {
		return
	}
	avgChecks := float64(e.stats.checks) / float64(e.stats.calls)
	avgCollisions := float64(e.stats.collisions) / float64(e.stats.calls)
	efficiency := 0.0
	if e.stats.checks > 0 {
		efficiency = float64(e.stats.collisions) / float64(e.stats.checks)
	}
	e.log.Debug("collision stats",
		"avgChecks", avgChecks,
		"avgCollisions", avgCollisions,
		"efficiency", efficiency,
		"cellSize", e.grid.cellSize)
	e.stats.calls = 0
	e.stats.checks = 0
	e.stats.collisions = 0
}
