// Package collision implements the collision pipeline for the game: a
// uniform grid broad phase with cached cell lookups, frame-scoped pair
// deduplication, priority-gated check passes and an adaptive cell-size
// tuner. The engine is not goroutine safe; each game session owns one and
// drives it from its loop.
package collision

import (
	"math"

	"github.com/charmbracelet/log"
)

const (
	DefaultWorldWidth  = 800.0
	DefaultWorldHeight = 600.0

	DefaultCellSize     = 100.0
	DefaultMinCellSize  = 50.0
	DefaultMaxCellSize  = 200.0
	DefaultCellSizeStep = 10.0

	DefaultCrowdedAvg = 10.0 // shrink cells above this avg occupancy
	DefaultSparseAvg  = 2.0  // grow cells below it

	DefaultLowInterval     = 2   // low-priority passes run every 2nd frame
	DefaultCacheEpsilon    = 5.0 // movement below this keeps cached cells
	DefaultCleanupInterval = 100
	DefaultStaticInterval  = 3
	DefaultStatsWindow     = 300
)

// Group tags objects for check passes ("enemy", "bullet", ...)
type Group string

// Handle is the engine-issued identity of a registered object
type Handle uint64

// Priority decides how often a check pass actually runs.
type Priority int

const (
	PriorityHigh   Priority = iota // every frame
	PriorityMedium                 // even frames
	PriorityLow                    // every LowInterval frames
)

// SectionTimer times named work sections. The game's performance monitor
// implements it; a nil timer disables timing.
type SectionTimer interface {
	StartSection(name string)
	EndSection(name string)
}

// Config carries the engine parameters. Zero values fall back to the
// defaults above.
type Config struct {
	WorldWidth  float64
	WorldHeight float64

	CellSize     float64
	MinCellSize  float64
	MaxCellSize  float64
	CellSizeStep float64

	CrowdedAvg float64
	SparseAvg  float64

	LowInterval     int
	CacheEpsilon    float64
	CleanupInterval int
	StaticInterval  int
	StatsWindow     int

	Logger   *log.Logger
	Sections SectionTimer
}

func (c *Config) applyDefaults() {
	if c.WorldWidth <= 0 {
		c.WorldWidth = DefaultWorldWidth
	}
	if c.WorldHeight <= 0 {
		c.WorldHeight = DefaultWorldHeight
	}
	if c.CellSize <= 0 {
		c.CellSize = DefaultCellSize
	}
	if c.MinCellSize <= 0 {
		c.MinCellSize = DefaultMinCellSize
	}
	if c.MaxCellSize <= 0 {
		c.MaxCellSize = DefaultMaxCellSize
	}
	if c.CellSizeStep <= 0 {
		c.CellSizeStep = DefaultCellSizeStep
	}
	if c.CrowdedAvg <= 0 {
		c.CrowdedAvg = DefaultCrowdedAvg
	}
	if c.SparseAvg <= 0 {
		c.SparseAvg = DefaultSparseAvg
	}
	if c.LowInterval <= 0 {
		c.LowInterval = DefaultLowInterval
	}
	if c.CacheEpsilon <= 0 {
		c.CacheEpsilon = DefaultCacheEpsilon
	}
	if c.CleanupInterval <= 0 {
		c.CleanupInterval = DefaultCleanupInterval
	}
	if c.StaticInterval <= 0 {
		c.StaticInterval = DefaultStaticInterval
	}
	if c.StatsWindow <= 0 {
		c.StatsWindow = DefaultStatsWindow
	}
}

// registration is the engine's record of one known object. The circle
// capability is probed once, here; the radius itself is read live.
type registration struct {
	obj    Collidable
	circle CircleBounded // nil when the object has no radius
}

// pairKey is an order-independent pair of handles
type pairKey struct {
	a, b Handle
}

func makePairKey(x, y Handle) pairKey {
	if x < y {
		return pairKey{a: x, b: y}
	}
	return pairKey{a: y, b: x}
}

// Engine orchestrates the grid, cache, dedup set, scheduler and tuner.
type Engine struct {
	cfg  Config
	log  *log.Logger
	grid *grid

	handles    map[Collidable]Handle
	objects    map[Handle]*registration
	statics    map[Handle]struct{}
	cache      map[Handle]cacheEntry
	checked    map[pairKey]struct{}
	frame      uint64
	nextHandle Handle

	stats    counters
	sections SectionTimer
	debug    bool
}

// NewEngine constructs an engine from cfg, filling unset fields with
// defaults.
func NewEngine(cfg Config) *Engine {
	cfg.applyDefaults()
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Engine{
		cfg:      cfg,
		log:      logger,
		grid:     newGrid(cfg.WorldWidth, cfg.WorldHeight, cfg.CellSize),
		handles:  make(map[Collidable]Handle),
		objects:  make(map[Handle]*registration),
		statics:  make(map[Handle]struct{}),
		cache:    make(map[Handle]cacheEntry),
		checked:  make(map[pairKey]struct{}),
		sections: cfg.Sections,
	}
}

// Clear starts a new frame: the grid and the checked-pair set are flushed
// and the frame counter advances. The cell cache, handle bindings,
// statistics and tuner state all survive.
func (e *Engine) Clear() {
	if e.debug {
		occupied, entries := e.grid.occupancy()
		e.log.Debug("frame grid", "frame", e.frame, "occupiedCells", occupied, "entries", entries)
	}
	e.grid.clear()
	clear(e.checked)
	e.frame++
}

// handleFor returns the object's handle, issuing one on first sight
func (e *Engine) handleFor(obj Collidable) Handle {
	if h, ok := e.handles[obj]; ok {
		return h
	}
	e.nextHandle++
	h := e.nextHandle
	e.handles[obj] = h
	reg := &registration{obj: obj}
	if c, ok := obj.(CircleBounded); ok {
		reg.circle = c
	}
	e.objects[h] = reg
	return h
}

// AddObject indexes an object under a group for this frame. Nil objects
// and degenerate boxes are skipped. Static objects only (re)enter the grid
// every StaticInterval frames.
func (e *Engine) AddObject(obj Collidable, group Group) {
	if obj == nil {
		e.log.Debug("add skipped, nil object", "group", group)
		return
	}
	r := obj.Bounds()
	if r.W <= 0 || r.H <= 0 {
		e.log.Debug("add skipped, degenerate bounds", "group", group, "w", r.W, "h", r.H)
		return
	}
	h := e.handleFor(obj)
	if _, static := e.statics[h]; static && e.frame%uint64(e.cfg.StaticInterval) != 0 {
		return
	}
	e.grid.insert(e.cellsFor(h, r), gridEntry{handle: h, group: group})
}

// RegisterStatic marks an object static. Statics still go through
// AddObject each frame; the engine drops the insert on frames where their
// cells cannot have changed.
func (e *Engine) RegisterStatic(obj Collidable) {
	if obj == nil {
		e.log.Debug("static registration skipped, nil object")
		return
	}
	e.statics[e.handleFor(obj)] = struct{}{}
}

// aObject is one valid group-A participant of a check pass
type aObject struct {
	handle Handle
	reg    *registration
	bounds Rect
}

// hitPair is a collision found during the scan, invoked after it
type hitPair struct {
	a, b Collidable
}

// skipFrame applies the priority gate for the current frame
func (e *Engine) skipFrame(prio Priority) bool {
	switch prio {
	case PriorityMedium:
		return e.frame%2 != 0
	case PriorityLow:
		return e.frame%uint64(e.cfg.LowInterval) != 0
	}
	return false
}

// CheckCollisions tests every group-A object against the indexed members
// of groupB and invokes cb once per colliding pair. With useDistance set,
// pairs where both sides have a radius use the circle test; everything
// else uses box overlap.
//
// Each unordered pair is tested at most once per frame, even across
// separate CheckCollisions calls. A pass gated out by its priority does no
// work at all.
func (e *Engine) CheckCollisions(groupA []Collidable, groupB Group, cb func(a, b Collidable), useDistance bool, prio Priority) {
	if e.skipFrame(prio) {
		return
	}
	if e.sections != nil {
		e.sections.StartSection("collision")
		defer e.sections.EndSection("collision")
	}

	// Gather the cells touched by group A, in first-touch order so the
	// scan below is deterministic for a fixed call sequence.
	var active []Cell
	byCell := make(map[Cell][]aObject)
	for _, obj := range groupA {
		if obj == nil {
			e.log.Debug("check skipped, nil object", "group", groupB)
			continue
		}
		r := obj.Bounds()
		if r.W <= 0 || r.H <= 0 {
			e.log.Debug("check skipped, degenerate bounds", "group", groupB, "w", r.W, "h", r.H)
			continue
		}
		h := e.handleFor(obj)
		a := aObject{handle: h, reg: e.objects[h], bounds: r}
		for _, c := range e.cellsFor(h, r) {
			if _, seen := byCell[c]; !seen {
				active = append(active, c)
			}
			byCell[c] = append(byCell[c], a)
		}
	}

	checks, collisions := 0, 0
	var hits []hitPair
	for _, c := range active {
		bucket := e.grid.cells[c]
		if len(bucket) == 0 {
			continue
		}
		for _, a := range byCell[c] {
			for _, en := range bucket {
				if en.group != groupB || en.handle == a.handle {
					continue
				}
				key := makePairKey(a.handle, en.handle)
				if _, done := e.checked[key]; done {
					continue
				}
				e.checked[key] = struct{}{}
				breg := e.objects[en.handle]
				if breg == nil {
					continue
				}
				checks++
				if testPair(a.bounds, a.reg, breg, useDistance) {
					collisions++
					hits = append(hits, hitPair{a: a.reg.obj, b: breg.obj})
				}
			}
		}
	}

	// The scan is complete before any callback runs, so callbacks may
	// freely move or kill objects.
	if cb != nil {
		for _, p := range hits {
			cb(p.a, p.b)
		}
	}
	e.recordStats(checks, collisions)
}

// testPair runs the narrow phase for one candidate pair
func testPair(ar Rect, areg, breg *registration, useDistance bool) bool {
	br := breg.obj.Bounds()
	if useDistance && areg.circle != nil && breg.circle != nil {
		return CirclesOverlap(
			ar.CenterX(), ar.CenterY(), areg.circle.Radius(),
			br.CenterX(), br.CenterY(), breg.circle.Radius())
	}
	return ar.Overlaps(br)
}

// OptimizePartitioning adjusts the cell size to the current crowding:
// crowded grids get smaller cells, sparse grids larger ones, within the
// configured bounds. A resize invalidates the whole cell cache. The caller
// owns the cadence; with nothing indexed this is a no-op.
func (e *Engine) OptimizePartitioning() {
	occupied, entries := e.grid.occupancy()
	if occupied == 0 || entries == 0 {
		return
	}
	avg := float64(entries) / float64(occupied)
	size := e.grid.cellSize
	switch {
	case avg > e.cfg.CrowdedAvg && size > e.cfg.MinCellSize:
		size = math.Max(e.cfg.MinCellSize, size-e.cfg.CellSizeStep)
	case avg < e.cfg.SparseAvg && size < e.cfg.MaxCellSize:
		size = math.Min(e.cfg.MaxCellSize, size+e.cfg.CellSizeStep)
	}
	if size == e.grid.cellSize {
		return
	}
	e.grid.setCellSize(size)
	clear(e.cache)
	e.log.Debug("partitioning tuned",
		"avgPerCell", avg,
		"cellSize", size,
		"cols", e.grid.cols,
		"rows", e.grid.rows)
}
