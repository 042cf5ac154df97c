package collision

import "math"

// Cell identifies one grid cell by column and row.
type Cell struct {
	X int
	Y int
}

// gridEntry is one object occurrence in a cell bucket
type gridEntry struct {
	handle Handle
	group  Group
}

// grid is the uniform broad-phase index. Cell buckets keep insertion
// order, so scans are deterministic for a fixed call sequence.
type grid struct {
	worldW, worldH float64
	cellSize       float64
	cols, rows     int
	cells          map[Cell][]gridEntry
}

func newGrid(worldW, worldH, cellSize float64) *grid {
	g := &grid{
		worldW: worldW,
		worldH: worldH,
		cells:  make(map[Cell][]gridEntry),
	}
	g.setCellSize(cellSize)
	return g
}

// setCellSize updates the cell size and recomputes the grid dimensions.
// Existing buckets are left alone; the per-frame clear flushes them.
func (g *grid) setCellSize(size float64) {
	g.cellSize = size
	g.cols = int(math.Ceil(g.worldW / size))
	g.rows = int(math.Ceil(g.worldH / size))
	if g.cols < 1 {
		g.cols = 1
	}
	if g.rows < 1 {
		g.rows = 1
	}
}

// clear drops all cell buckets
func (g *grid) clear() {
	clear(g.cells)
}

// cellRange returns the clamped cell span covered by a box. Boxes outside
// the world clamp to the border cells.
func (g *grid) cellRange(r Rect) (minX, minY, maxX, maxY int) {
	minX = int(math.Floor(r.X / g.cellSize))
	maxX = int(math.Floor(r.Right() / g.cellSize))
	minY = int(math.Floor(r.Y / g.cellSize))
	maxY = int(math.Floor(r.Bottom() / g.cellSize))
	if minX < 0 {
		minX = 0
	}
	if maxX >= g.cols {
		maxX = g.cols - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= g.rows {
		maxY = g.rows - 1
	}
	if maxX < minX {
		maxX = minX
	}
	if maxY < minY {
		maxY = minY
	}
	return
}

// cellsFor lists the cells covered by a box
func (g *grid) cellsFor(r Rect) []Cell {
	minX, minY, maxX, maxY := g.cellRange(r)
	cells := make([]Cell, 0, (maxX-minX+1)*(maxY-minY+1))
	for cy := minY; cy <= maxY; cy++ {
		for cx := minX; cx <= maxX; cx++ {
			cells = append(cells, Cell{X: cx, Y: cy})
		}
	}
	return cells
}

// insert appends an entry to every listed cell bucket
func (g *grid) insert(cells []Cell, e gridEntry) {
	for _, c := range cells {
		g.cells[c] = append(g.cells[c], e)
	}
}

// occupancy returns the number of occupied cells and total entries
func (g *grid) occupancy() (occupied, entries int) {
	for _, bucket := range g.cells {
		if len(bucket) > 0 {
			occupied++
			entries += len(bucket)
		}
	}
	return
}
