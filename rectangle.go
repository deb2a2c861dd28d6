package shapes

import "fmt"

// Rectangle is an axis-aligned rectangle with strictly positive sides.
// It is its own frame rectangle.
type Rectangle struct {
	sideX, sideY float64
	center       Point
}

// NewRectangle creates a rectangle with the given side lengths centered
// at center. Non-positive sides are rejected.
func NewRectangle(sideX, sideY float64, center Point) (*Rectangle, error) {
	if sideX <= 0 || sideY <= 0 {
		return nil, fmt.Errorf("%w: rectangle side must be greater than 0", ErrInvalidArgument)
	}
	return &Rectangle{sideX: sideX, sideY: sideY, center: center}, nil
}

// Area returns sideX * sideY.
func (r *Rectangle) Area() float64 {
	return r.sideX * r.sideY
}

// FrameRect returns the rectangle itself as a frame rectangle.
func (r *Rectangle) FrameRect() FrameRect {
	return FrameRect{Width: r.sideX, Height: r.sideY, Pos: r.center}
}

// MoveTo places the rectangle's center at p.
func (r *Rectangle) MoveTo(p Point) {
	r.center = p
}

// MoveBy translates the rectangle by (dx, dy).
func (r *Rectangle) MoveBy(dx, dy float64) {
	r.MoveTo(Pt(r.center.X+dx, r.center.Y+dy))
}

// Scale multiplies both sides by k. The center is the fixed point.
func (r *Rectangle) Scale(k float64) {
	r.sideX *= k
	r.sideY *= k
}
