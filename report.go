package shapes

import (
	"fmt"
	"io"
)

// WriteShapeInfo writes one shape's name, area and frame rectangle to w.
func WriteShapeInfo(w io.Writer, name string, s Shape) error {
	frame := s.FrameRect()
	_, err := fmt.Fprintf(w,
		"%s:\n  area: %g\n  frame rectangle:\n    width: %g\n    height: %g\n    position: (%g; %g)\n",
		name, s.Area(), frame.Width, frame.Height, frame.Pos.X, frame.Pos.Y)
	return err
}

// Report writes every shape's info followed by the group's total area and
// union frame rectangle. Returns ErrEmptyGroup for an empty group.
func (g *Group) Report(w io.Writer) error {
	frame, err := g.FrameRect()
	if err != nil {
		return err
	}
	for _, e := range g.entries {
		if err := WriteShapeInfo(w, e.Name, e.Shape); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w,
		"Total area: %g\nTotal frame rectangle:\n  width: %g\n  height: %g\n  position: (%g; %g)\n",
		g.TotalArea(), frame.Width, frame.Height, frame.Pos.X, frame.Pos.Y)
	return err
}
