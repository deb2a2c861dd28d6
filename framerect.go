package shapes

// FrameRect is an axis-aligned bounding box described by its dimensions
// and the position of its geometric center.
type FrameRect struct {
	Width  float64
	Height float64
	Pos    Point
}

// FrameRectFromCorners builds a FrameRect from its min and max corners.
func FrameRectFromCorners(min, max Point) FrameRect {
	width := max.X - min.X
	height := max.Y - min.Y
	return FrameRect{
		Width:  width,
		Height: height,
		Pos:    Pt(min.X+width/2, min.Y+height/2),
	}
}

// Min returns the corner with the smallest coordinates.
func (r FrameRect) Min() Point {
	return Pt(r.Pos.X-r.Width/2, r.Pos.Y-r.Height/2)
}

// Max returns the corner with the largest coordinates.
func (r FrameRect) Max() Point {
	return Pt(r.Pos.X+r.Width/2, r.Pos.Y+r.Height/2)
}

// Union returns the minimal frame rectangle containing both r and o.
func (r FrameRect) Union(o FrameRect) FrameRect {
	rmin, rmax := r.Min(), r.Max()
	omin, omax := o.Min(), o.Max()
	return FrameRectFromCorners(
		Pt(min(rmin.X, omin.X), min(rmin.Y, omin.Y)),
		Pt(max(rmax.X, omax.X), max(rmax.Y, omax.Y)),
	)
}

// Approx reports whether r and o are equal within tolerance eps.
func (r FrameRect) Approx(o FrameRect, eps float64) bool {
	return abs(r.Width-o.Width) <= eps &&
		abs(r.Height-o.Height) <= eps &&
		r.Pos.Approx(o.Pos, eps)
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
