package collision

import "math"

// cacheEntry remembers the cells computed for an object alongside the box
// they were computed from.
type cacheEntry struct {
	cells      []Cell
	x, y, w, h float64
}

// cellsFor returns the grid cells for a handle's box, reusing the cached
// list when the box moved less than the epsilon on both axes and kept its
// size. The cached list may lag the true position by up to the epsilon;
// callers accept that imprecision in exchange for skipping the recompute.
func (e *Engine) cellsFor(h Handle, r Rect) []Cell {
	if ent, ok := e.cache[h]; ok &&
		math.Abs(r.X-ent.x) < e.cfg.CacheEpsilon &&
		math.Abs(r.Y-ent.y) < e.cfg.CacheEpsilon &&
		r.W == ent.w && r.H == ent.h {
		e.stats.cacheHits++
		return ent.cells
	}
	e.stats.cacheMisses++
	cells := e.grid.cellsFor(r)
	e.cache[h] = cacheEntry{cells: cells, x: r.X, y: r.Y, w: r.W, h: r.H}
	return cells
}

// CleanupCachedData drops cache entries and handle bindings for objects no
// longer present in the grid. The sweep only runs every CleanupInterval
// frames; other calls return immediately. Static objects survive the sweep
// even though they sit out of the grid most frames.
func (e *Engine) CleanupCachedData() {
	if e.frame%uint64(e.cfg.CleanupInterval) != 0 {
		return
	}

	live := make(map[Handle]struct{}, len(e.objects))
	for _, bucket := range e.grid.cells {
		for _, en := range bucket {
			live[en.handle] = struct{}{}
		}
	}
	for h := range e.statics {
		live[h] = struct{}{}
	}

	for h := range e.cache {
		if _, ok := live[h]; !ok {
			delete(e.cache, h)
		}
	}
	for obj, h := range e.handles {
		if _, ok := live[h]; !ok {
			delete(e.handles, obj)
			delete(e.objects, h)
		}
	}
	e.log.Debug("cache cleanup", "frame", e.frame, "live", len(live), "cached", len(e.cache))
}
