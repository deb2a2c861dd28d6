package shapes

import (
	"errors"
	"math"
	"testing"
)

func unitSquare(t *testing.T) *Polygon {
	t.Helper()
	p, err := NewPolygon([]Point{Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1)})
	if err != nil {
		t.Fatalf("NewPolygon: %v", err)
	}
	return p
}

func TestNewPolygon_TooFewVertices(t *testing.T) {
	for _, n := range []int{0, 1, 2} {
		points := make([]Point, n)
		if _, err := NewPolygon(points); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("NewPolygon with %d vertices: error = %v, want ErrInvalidArgument", n, err)
		}
	}
}

func TestNewPolygon_CopiesInput(t *testing.T) {
	points := []Point{Pt(0, 0), Pt(1, 0), Pt(0, 1)}
	p, err := NewPolygon(points)
	if err != nil {
		t.Fatalf("NewPolygon: %v", err)
	}
	points[0] = Pt(100, 100)
	if got := p.Vertices()[0]; !got.Approx(Pt(0, 0), 0) {
		t.Errorf("mutating the input slice changed the polygon: vertex[0] = %v", got)
	}
}

func TestPolygon_UnitSquare(t *testing.T) {
	p := unitSquare(t)
	if got := p.Area(); math.Abs(got-1) > 1e-12 {
		t.Errorf("Area() = %v, want 1", got)
	}
	if got := p.SignedArea(); math.Abs(got-1) > 1e-12 {
		t.Errorf("SignedArea() = %v, want 1 (counter-clockwise)", got)
	}
	if got := p.Centroid(); !got.Approx(Pt(0.5, 0.5), 1e-12) {
		t.Errorf("Centroid() = %v, want (0.5, 0.5)", got)
	}
	want := FrameRect{Width: 1, Height: 1, Pos: Pt(0.5, 0.5)}
	if got := p.FrameRect(); !got.Approx(want, 1e-12) {
		t.Errorf("FrameRect() = %+v, want %+v", got, want)
	}
}

func TestPolygon_ClockwiseWinding(t *testing.T) {
	// Same square, opposite winding: signed area flips, area does not.
	p, err := NewPolygon([]Point{Pt(0, 0), Pt(0, 1), Pt(1, 1), Pt(1, 0)})
	if err != nil {
		t.Fatalf("NewPolygon: %v", err)
	}
	if got := p.SignedArea(); math.Abs(got+1) > 1e-12 {
		t.Errorf("SignedArea() = %v, want -1", got)
	}
	if got := p.Area(); math.Abs(got-1) > 1e-12 {
		t.Errorf("Area() = %v, want 1", got)
	}
	if got := p.Centroid(); !got.Approx(Pt(0.5, 0.5), 1e-12) {
		t.Errorf("Centroid() = %v, want (0.5, 0.5)", got)
	}
}

func TestPolygon_Triangle(t *testing.T) {
	p, err := NewPolygon([]Point{Pt(0, 0), Pt(4, 0), Pt(0, 3)})
	if err != nil {
		t.Fatalf("NewPolygon: %v", err)
	}
	if got := p.Area(); math.Abs(got-6) > 1e-12 {
		t.Errorf("Area() = %v, want 6", got)
	}
	if got := p.Centroid(); !got.Approx(Pt(4.0/3, 1), 1e-12) {
		t.Errorf("Centroid() = %v, want (4/3, 1)", got)
	}
}

func TestPolygon_FrameRect(t *testing.T) {
	p, err := NewPolygon([]Point{
		Pt(0, 0), Pt(4, 1), Pt(5, 4), Pt(5, 8),
		Pt(4, 10), Pt(3, 8), Pt(2, 5), Pt(-1, 1),
	})
	if err != nil {
		t.Fatalf("NewPolygon: %v", err)
	}
	want := FrameRect{Width: 6, Height: 10, Pos: Pt(2, 5)}
	if got := p.FrameRect(); !got.Approx(want, 1e-12) {
		t.Errorf("FrameRect() = %+v, want %+v", got, want)
	}
}

func TestPolygon_MoveTo(t *testing.T) {
	p := unitSquare(t)
	p.MoveTo(Pt(10, -3))
	if got := p.Centroid(); !got.Approx(Pt(10, -3), 1e-12) {
		t.Errorf("Centroid after MoveTo = %v, want (10, -3)", got)
	}
	// The frame-box midpoint coincides with the centroid for a square,
	// and the box itself must have shifted rigidly.
	want := FrameRect{Width: 1, Height: 1, Pos: Pt(10, -3)}
	if got := p.FrameRect(); !got.Approx(want, 1e-12) {
		t.Errorf("FrameRect after MoveTo = %+v, want %+v", got, want)
	}
}

func TestPolygon_MoveBy(t *testing.T) {
	p := unitSquare(t)
	before := p.FrameRect()
	p.MoveBy(2, -1)
	after := p.FrameRect()

	if !after.Pos.Approx(before.Pos.Add(Pt(2, -1)), 1e-12) {
		t.Errorf("frame position = %v, want %v", after.Pos, before.Pos.Add(Pt(2, -1)))
	}
	if after.Width != before.Width || after.Height != before.Height {
		t.Errorf("size changed by MoveBy: %vx%v -> %vx%v",
			before.Width, before.Height, after.Width, after.Height)
	}
	if got := p.Centroid(); !got.Approx(Pt(2.5, -0.5), 1e-12) {
		t.Errorf("Centroid after MoveBy = %v, want (2.5, -0.5)", got)
	}
}

func TestPolygon_Scale(t *testing.T) {
	p := unitSquare(t)
	centroid := p.Centroid()
	p.Scale(3)

	// Centroid is the fixed point of the dilation.
	if got := p.Centroid(); !got.Approx(centroid, 1e-12) {
		t.Errorf("Centroid after Scale = %v, want %v", got, centroid)
	}
	if got := p.Area(); math.Abs(got-9) > 1e-9 {
		t.Errorf("Area after Scale(3) = %v, want 9", got)
	}
	want := FrameRect{Width: 3, Height: 3, Pos: centroid}
	if got := p.FrameRect(); !got.Approx(want, 1e-12) {
		t.Errorf("FrameRect after Scale = %+v, want %+v", got, want)
	}
}

func TestPolygon_CloneIndependence(t *testing.T) {
	p := unitSquare(t)
	clone := p.Clone()

	clone.MoveBy(5, 5)
	clone.Scale(2)

	if got := p.Centroid(); !got.Approx(Pt(0.5, 0.5), 1e-12) {
		t.Errorf("original centroid changed after mutating clone: %v", got)
	}
	if got := p.Vertices()[0]; !got.Approx(Pt(0, 0), 0) {
		t.Errorf("original vertex changed after mutating clone: %v", got)
	}
	if got := clone.Centroid(); !got.Approx(Pt(5.5, 5.5), 1e-12) {
		t.Errorf("clone centroid = %v, want (5.5, 5.5)", got)
	}
}

func TestPolygon_DegenerateCentroid(t *testing.T) {
	// Collinear vertices have zero signed area; the centroid division is
	// deliberately unguarded and yields a non-finite result.
	p, err := NewPolygon([]Point{Pt(0, 0), Pt(1, 1), Pt(2, 2)})
	if err != nil {
		t.Fatalf("NewPolygon: %v", err)
	}
	c := p.Centroid()
	if !math.IsNaN(c.X) && !math.IsInf(c.X, 0) {
		t.Errorf("degenerate centroid X = %v, want NaN or Inf", c.X)
	}
}
