package collision

import "testing"

func TestGridDimensions(t *testing.T) {
	g := newGrid(800, 600, 100)
	if g.cols != 8 || g.rows != 6 {
		t.Errorf("dims = %dx%d, want 8x6", g.cols, g.rows)
	}

	// Non-divisible world rounds up
	g = newGrid(850, 610, 100)
	if g.cols != 9 || g.rows != 7 {
		t.Errorf("dims = %dx%d, want 9x7", g.cols, g.rows)
	}
}

func TestGridCellRange(t *testing.T) {
	g := newGrid(800, 600, 100)

	// Box inside one cell
	minX, minY, maxX, maxY := g.cellRange(Rect{X: 10, Y: 10, W: 20, H: 20})
	if minX != 0 || minY != 0 || maxX != 0 || maxY != 0 {
		t.Errorf("range = (%d,%d)-(%d,%d), want (0,0)-(0,0)", minX, minY, maxX, maxY)
	}

	// Box straddling a cell corner covers four cells
	minX, minY, maxX, maxY = g.cellRange(Rect{X: 90, Y: 90, W: 20, H: 20})
	if minX != 0 || minY != 0 || maxX != 1 || maxY != 1 {
		t.Errorf("range = (%d,%d)-(%d,%d), want (0,0)-(1,1)", minX, minY, maxX, maxY)
	}
}

func TestGridCellRangeClamps(t *testing.T) {
	g := newGrid(800, 600, 100)

	// Negative coords clamp to the first cell
	minX, minY, maxX, maxY := g.cellRange(Rect{X: -50, Y: -50, W: 20, H: 20})
	if minX != 0 || minY != 0 || maxX != 0 || maxY != 0 {
		t.Errorf("negative range = (%d,%d)-(%d,%d), want (0,0)-(0,0)", minX, minY, maxX, maxY)
	}

	// Beyond the world clamps to the last cell
	minX, minY, maxX, maxY = g.cellRange(Rect{X: 5000, Y: 5000, W: 20, H: 20})
	if minX != 7 || minY != 5 || maxX != 7 || maxY != 5 {
		t.Errorf("outside range = (%d,%d)-(%d,%d), want (7,5)-(7,5)", minX, minY, maxX, maxY)
	}
}

func TestGridSetCellSize(t *testing.T) {
	g := newGrid(800, 600, 100)
	g.setCellSize(90)
	if g.cols != 9 || g.rows != 7 {
		t.Errorf("dims after resize = %dx%d, want 9x7", g.cols, g.rows)
	}
	if g.cellSize != 90 {
		t.Errorf("cellSize = %v, want 90", g.cellSize)
	}
}

func TestGridClear(t *testing.T) {
	g := newGrid(800, 600, 100)
	cells := g.cellsFor(Rect{X: 10, Y: 10, W: 20, H: 20})
	g.insert(cells, gridEntry{handle: 1, group: "enemy"})

	occupied, entries := g.occupancy()
	if occupied != 1 || entries != 1 {
		t.Errorf("occupancy = %d cells %d entries, want 1/1", occupied, entries)
	}

	g.clear()
	occupied, entries = g.occupancy()
	if occupied != 0 || entries != 0 {
		t.Errorf("occupancy after clear = %d cells %d entries, want 0/0", occupied, entries)
	}
}
