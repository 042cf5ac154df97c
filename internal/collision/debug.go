package collision

import "sort"

// CellOccupancy is one occupied cell in a debug snapshot
type CellOccupancy struct {
	X     int `json:"x"`
	Y     int `json:"y"`
	Count int `json:"count"`
}

// DebugSnapshot describes the grid for overlay rendering on the client.
type DebugSnapshot struct {
	Frame    uint64          `json:"frame"`
	CellSize float64         `json:"cellSize"`
	Cols     int             `json:"cols"`
	Rows     int             `json:"rows"`
	Cells    []CellOccupancy `json:"cells"`
}

// ToggleDebug flips debug mode and returns the new state. In debug mode
// the engine logs per-frame grid occupancy.
func (e *Engine) ToggleDebug() bool {
	e.debug = !e.debug
	e.log.Info("collision debug", "enabled", e.debug)
	return e.debug
}

// Debugging reports whether debug mode is on
func (e *Engine) Debugging() bool {
	return e.debug
}

// DebugSnapshot captures the occupied cells, row-major, for the overlay.
func (e *Engine) DebugSnapshot() DebugSnapshot {
	snap := DebugSnapshot{
		Frame:    e.frame,
		CellSize: e.grid.cellSize,
		Cols:     e.grid.cols,
		Rows:     e.grid.rows,
	}
	for c, bucket := range e.grid.cells {
		if len(bucket) == 0 {
			continue
		}
		snap.Cells = append(snap.Cells, CellOccupancy{X: c.X, Y: c.Y, Count: len(bucket)})
	}
	sort.Slice(snap.Cells, func(i, j int) bool {
		if snap.Cells[i].Y != snap.Cells[j].Y {
			return snap.Cells[i].Y < snap.Cells[j].Y
		}
		return snap.Cells[i].X < snap.Cells[j].X
	})
	return snap
}
