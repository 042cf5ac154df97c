package collision

import "testing"

func TestCacheHitUnderEpsilon(t *testing.T) {
	e := newTestEngine(Config{})
	b := &box{x: 98, y: 40, w: 10, h: 10}

	e.Clear()
	e.AddObject(b, "enemy")
	if s := e.Stats(); s.CacheMisses != 1 || s.CacheHits != 0 {
		t.Fatalf("first add: hits=%d misses=%d, want 0/1", s.CacheHits, s.CacheMisses)
	}
	if got := len(e.DebugSnapshot().Cells); got != 2 {
		t.Fatalf("occupied cells = %d, want 2", got)
	}

	// 3 units right is below the epsilon: the cached two-cell list is
	// reused even though a recompute would now give a single cell.
	b.x = 101
	e.Clear()
	e.AddObject(b, "enemy")
	if s := e.Stats(); s.CacheHits != 1 {
		t.Fatalf("sub-epsilon move: hits=%d, want 1", s.CacheHits)
	}
	if got := len(e.DebugSnapshot().Cells); got != 2 {
		t.Errorf("occupied cells = %d, want stale 2", got)
	}
}

func TestCacheMissBeyondEpsilon(t *testing.T) {
	e := newTestEngine(Config{})
	b := &box{x: 10, y: 40, w: 10, h: 10}

	e.Clear()
	e.AddObject(b, "enemy")

	b.x = 16 // 6 units, over the epsilon
	e.Clear()
	e.AddObject(b, "enemy")
	if s := e.Stats(); s.CacheMisses != 2 || s.CacheHits != 0 {
		t.Errorf("hits=%d misses=%d, want 0/2", s.CacheHits, s.CacheMisses)
	}
}

func TestCacheMissOnResize(t *testing.T) {
	e := newTestEngine(Config{})
	b := &box{x: 10, y: 40, w: 10, h: 10}

	e.Clear()
	e.AddObject(b, "enemy")

	// Same position, new size
	b.w = 20
	e.Clear()
	e.AddObject(b, "enemy")
	if s := e.Stats(); s.CacheMisses != 2 {
		t.Errorf("misses = %d, want 2 after size change", s.CacheMisses)
	}
}

func TestCleanupPurgesStaleEntries(t *testing.T) {
	e := newTestEngine(Config{})
	b := &box{x: 10, y: 40, w: 10, h: 10}

	e.Clear()
	e.AddObject(b, "enemy")

	// The object disappears from play; advance to the cleanup boundary
	for e.Stats().Frame < 100 {
		e.Clear()
	}
	e.CleanupCachedData()

	e.Clear()
	e.AddObject(b, "enemy")
	if s := e.Stats(); s.CacheMisses != 2 {
		t.Errorf("misses = %d, want 2 (entry purged at boundary)", s.CacheMisses)
	}
}

func TestCleanupSkipsOffBoundaryFrames(t *testing.T) {
	e := newTestEngine(Config{})
	b := &box{x: 10, y: 40, w: 10, h: 10}

	e.Clear()
	e.AddObject(b, "enemy")
	e.CleanupCachedData() // frame 1: not a boundary, no sweep

	e.Clear()
	e.CleanupCachedData() // frame 2: still no sweep, entry survives

	e.AddObject(b, "enemy")
	if s := e.Stats(); s.CacheHits != 1 {
		t.Errorf("hits = %d, want 1 (entry kept off boundary)", s.CacheHits)
	}
}

func TestCleanupSparesStatics(t *testing.T) {
	e := newTestEngine(Config{})
	wall := &box{x: 300, y: 300, w: 40, h: 40}
	b := &box{x: 10, y: 40, w: 10, h: 10}
	e.RegisterStatic(wall)

	e.Clear()
	e.AddObject(b, "enemy")
	for e.Stats().Frame < 3 {
		e.Clear()
	}
	e.AddObject(wall, "debris") // statics insert on frame 3, caching its cells

	for e.Stats().Frame < 100 {
		e.Clear()
	}
	e.CleanupCachedData() // b is gone from the grid, the wall is registered static

	e.Clear() // 101
	e.AddObject(b, "enemy")
	e.Clear() // 102, statics insert again
	e.AddObject(wall, "debris")

	s := e.Stats()
	if s.CacheMisses != 3 {
		t.Errorf("misses = %d, want 3 (b purged and recomputed)", s.CacheMisses)
	}
	if s.CacheHits != 1 {
		t.Errorf("hits = %d, want 1 (wall entry survived the sweep)", s.CacheHits)
	}
}
