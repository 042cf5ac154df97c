package collision

// Rect is an axis-aligned bounding box. X,Y is the top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// Right returns the x coordinate of the right edge
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterX returns the x coordinate of the box center
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the y coordinate of the box center
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Overlaps reports whether two boxes overlap. Boxes that merely share an
// edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && r.Right() > o.X &&
		r.Y < o.Bottom() && r.Bottom() > o.Y
}

// Collidable is anything the engine can index and test. Implementations
// must be pointer types: the engine keys object identity on the interface
// value itself.
type Collidable interface {
	Bounds() Rect
}

// CircleBounded marks a Collidable that can also be tested as a circle
// around its box center. The capability is probed once, when the engine
// first sees the object.
type CircleBounded interface {
	Collidable
	Radius() float64
}

// CirclesOverlap checks if two circles overlap. Touching circles do not.
func CirclesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	dx := x2 - x1
	dy := y2 - y1
	radSum := r1 + r2
	return dx*dx+dy*dy < radSum*radSum
}
