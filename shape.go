package shapes

import "errors"

// ErrInvalidArgument is returned when a constructor or operation receives
// a geometrically invalid argument (non-positive side, too few vertices,
// non-positive scale factor, ...). Wrapped errors carry the detail; test
// with errors.Is.
var ErrInvalidArgument = errors.New("shapes: invalid argument")

// ErrEmptyGroup is returned by group operations that need at least one shape.
var ErrEmptyGroup = errors.New("shapes: empty group")

// Shape is the capability set every shape variant implements.
//
// Scale requires k > 0 by contract. Variants do not re-validate at call
// time; [Group.ScaleAbout] is the validating entry point.
type Shape interface {
	// Area returns the shape's area, always >= 0.
	Area() float64

	// FrameRect returns the shape's axis-aligned bounding box.
	FrameRect() FrameRect

	// MoveTo places the shape at an absolute point. Which feature of the
	// shape lands on the point is variant-specific: a rectangle's center,
	// a polygon's centroid, a bubble's anchor.
	MoveTo(p Point)

	// MoveBy translates the shape rigidly by (dx, dy).
	MoveBy(dx, dy float64)

	// Scale resizes the shape by factor k about its own fixed point.
	Scale(k float64)
}
