package shapes

import (
	"fmt"
	"math"
)

// Bubble is a circle anchored to a secondary pivot point. The anchor is
// the fixed point of both translation and dilation, the way a polygon's
// centroid is. At construction the anchor must lie inside or on the
// circle and must not coincide with the center; those invariants are not
// re-checked after mutation (uniform moves and scales preserve them).
type Bubble struct {
	radius float64
	center Point
	anchor Point
}

// NewBubble creates a bubble of the given radius with its anchor point.
// The checks run in a fixed order: anchor containment, anchor/center
// coincidence, then radius positivity. Changing the order would change
// which error surfaces for a multiply-invalid input.
func NewBubble(radius float64, center, anchor Point) (*Bubble, error) {
	if center.Sub(anchor).LengthSquared() > radius*radius {
		return nil, fmt.Errorf("%w: anchor must be inside the circle", ErrInvalidArgument)
	}
	if center == anchor {
		return nil, fmt.Errorf("%w: anchor must not coincide with the center", ErrInvalidArgument)
	}
	if radius <= 0 {
		return nil, fmt.Errorf("%w: radius must be greater than 0", ErrInvalidArgument)
	}
	return &Bubble{radius: radius, center: center, anchor: anchor}, nil
}

// Radius returns the bubble's radius.
func (b *Bubble) Radius() float64 { return b.radius }

// Center returns the circle's center.
func (b *Bubble) Center() Point { return b.center }

// Anchor returns the pivot point for translation and dilation.
func (b *Bubble) Anchor() Point { return b.anchor }

// Area returns pi * radius^2.
func (b *Bubble) Area() float64 {
	return math.Pi * b.radius * b.radius
}

// FrameRect returns the circle's bounding square, centered on the circle
// center (not the anchor).
func (b *Bubble) FrameRect() FrameRect {
	size := 2 * b.radius
	return FrameRect{Width: size, Height: size, Pos: b.center}
}

// MoveTo places the anchor at p; the center follows rigidly.
func (b *Bubble) MoveTo(p Point) {
	d := p.Sub(b.anchor)
	b.MoveBy(d.X, d.Y)
}

// MoveBy translates anchor and center together, preserving their offset.
func (b *Bubble) MoveBy(dx, dy float64) {
	b.anchor.X += dx
	b.anchor.Y += dy
	b.center.X += dx
	b.center.Y += dy
}

// Scale multiplies the radius by k and dilates the center about the
// anchor, which stays fixed.
func (b *Bubble) Scale(k float64) {
	b.radius *= k
	b.center = b.anchor.Add(b.center.Sub(b.anchor).Mul(k))
}
