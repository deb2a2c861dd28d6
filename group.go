package shapes

import (
	"fmt"
	"log/slog"
)

// Entry pairs a shape with its display name.
type Entry struct {
	Name  string
	Shape Shape
}

// Group is an ordered collection of named shapes. The zero value is an
// empty group ready for use.
//
// A Group is not safe for concurrent mutation.
type Group struct {
	entries []Entry
}

// NewGroup creates an empty group.
func NewGroup() *Group {
	return &Group{}
}

// Add appends a named shape to the group.
func (g *Group) Add(name string, s Shape) {
	g.entries = append(g.entries, Entry{Name: name, Shape: s})
}

// Len returns the number of shapes in the group.
func (g *Group) Len() int {
	return len(g.entries)
}

// At returns the i-th entry.
func (g *Group) At(i int) Entry {
	return g.entries[i]
}

// Entries returns a copy of the entry list. The shapes themselves are
// shared, not cloned.
func (g *Group) Entries() []Entry {
	return append([]Entry(nil), g.entries...)
}

// ScaleAbout dilates every shape in the group by factor k about an
// arbitrary pivot point, using only each shape's own move and scale
// primitives: move the shape to the pivot, move it back by its original
// offset scaled by k, then self-scale. The net effect is a dilation of
// the whole scene about the pivot.
//
// Returns ErrInvalidArgument if k <= 0.
func (g *Group) ScaleAbout(k float64, pivot Point) error {
	if k <= 0 {
		return fmt.Errorf("%w: scale factor must be greater than 0, got %v", ErrInvalidArgument, k)
	}
	Logger().Debug("scaling group about point",
		slog.Float64("k", k),
		slog.Float64("x", pivot.X),
		slog.Float64("y", pivot.Y),
		slog.Int("shapes", len(g.entries)))
	for _, e := range g.entries {
		before := e.Shape.FrameRect().Pos
		e.Shape.MoveTo(pivot)
		after := e.Shape.FrameRect().Pos
		d := before.Sub(after).Mul(k)
		e.Shape.MoveBy(d.X, d.Y)
		e.Shape.Scale(k)
	}
	return nil
}

// FrameRect returns the union bounding box over all shapes' frame
// rectangles. Returns ErrEmptyGroup for an empty group.
func (g *Group) FrameRect() (FrameRect, error) {
	if len(g.entries) == 0 {
		return FrameRect{}, ErrEmptyGroup
	}
	frame := g.entries[0].Shape.FrameRect()
	for _, e := range g.entries[1:] {
		frame = frame.Union(e.Shape.FrameRect())
	}
	return frame, nil
}

// TotalArea returns the sum of all shapes' areas.
func (g *Group) TotalArea() float64 {
	total := 0.0
	for _, e := range g.entries {
		total += e.Shape.Area()
	}
	return total
}
