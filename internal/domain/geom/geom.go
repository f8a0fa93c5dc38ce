// Package geom provides the 2D vector and axis-aligned rectangle types used
// by the physics core.
package geom

// Vec is a two-component float vector (position, velocity, acceleration).
type Vec struct {
	X, Y float64
}

// V is shorthand for Vec{X: x, Y: y}.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Add returns the componentwise sum of two vectors
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale multiplies both components by m
func (v Vec) Scale(m float64) Vec {
	return Vec{X: v.X * m, Y: v.Y * m}
}

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// R creates a rectangle from position and size.
func R(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Pos returns the top-left corner.
func (r Rect) Pos() Vec { return Vec{X: r.X, Y: r.Y} }

// Size returns width and height as a vector.
func (r Rect) Size() Vec { return Vec{X: r.W, Y: r.H} }

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Area returns W*H.
func (r Rect) Area() float64 { return r.W * r.H }

// Empty reports whether the rectangle has no width or no height.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// SetPos moves the rectangle so its top-left corner is at p.
func (r *Rect) SetPos(p Vec) {
	r.X = p.X
	r.Y = p.Y
}

// Translate moves the rectangle by d.
func (r *Rect) Translate(d Vec) {
	r.X += d.X
	r.Y += d.Y
}

// Clip returns the intersection of r and o.
// Rectangles that only touch along an edge, or do not overlap at all,
// yield a zero-size rectangle.
func (r Rect) Clip(o Rect) Rect {
	left := max(r.X, o.X)
	top := max(r.Y, o.Y)
	right := min(r.Right(), o.Right())
	bottom := min(r.Bottom(), o.Bottom())
	if right <= left || bottom <= top {
		return Rect{X: left, Y: top}
	}
	return Rect{X: left, Y: top, W: right - left, H: bottom - top}
}

// Intersects returns true if the two rectangles overlap with positive area.
func (r Rect) Intersects(o Rect) bool {
	return !r.Clip(o).Empty()
}
