package shapes

import "fmt"

// Polygon is a simple polygon given as an ordered vertex sequence.
// It exclusively owns its vertex storage; the input slice is copied at
// construction and [Polygon.Vertices] hands out copies.
//
// The centroid is computed once at construction and then maintained
// incrementally: translation shifts it, and scaling dilates about it, so
// it never needs recomputation. A degenerate polygon (zero signed area,
// e.g. all vertices collinear) yields a non-finite centroid; construction
// does not guard against this.
type Polygon struct {
	verts    []Point
	centroid Point
}

// NewPolygon creates a polygon from at least 3 vertices. The slice is
// deep-copied; the caller keeps ownership of its argument.
func NewPolygon(points []Point) (*Polygon, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("%w: polygon needs at least 3 vertices, got %d", ErrInvalidArgument, len(points))
	}
	p := &Polygon{verts: append([]Point(nil), points...)}
	p.centroid = p.computeCentroid()
	return p, nil
}

// Clone returns an independent deep copy of the polygon.
func (p *Polygon) Clone() *Polygon {
	return &Polygon{
		verts:    append([]Point(nil), p.verts...),
		centroid: p.centroid,
	}
}

// Vertices returns a copy of the polygon's vertex sequence.
func (p *Polygon) Vertices() []Point {
	return append([]Point(nil), p.verts...)
}

// Centroid returns the area-weighted geometric center. Distinct from the
// bounding-box midpoint reported by FrameRect.
func (p *Polygon) Centroid() Point {
	return p.centroid
}

// SignedArea returns the shoelace-formula area. The sign encodes winding:
// positive for counter-clockwise vertex order.
func (p *Polygon) SignedArea() float64 {
	area := 0.0
	n := len(p.verts)
	for i := 0; i < n; i++ {
		area += p.verts[i].Cross(p.verts[(i+1)%n])
	}
	return area / 2
}

// computeCentroid evaluates the polygon centroid formula. Division is by
// the signed area, not its absolute value; a zero signed area produces a
// non-finite result.
func (p *Polygon) computeCentroid() Point {
	cx, cy := 0.0, 0.0
	n := len(p.verts)
	for i := 0; i < n; i++ {
		v0 := p.verts[i]
		v1 := p.verts[(i+1)%n]
		cross := v0.Cross(v1)
		cx += (v0.X + v1.X) * cross
		cy += (v0.Y + v1.Y) * cross
	}
	signed := p.SignedArea()
	return Pt(cx/(6*signed), cy/(6*signed))
}

// Area returns the absolute shoelace area.
func (p *Polygon) Area() float64 {
	return abs(p.SignedArea())
}

// FrameRect returns the axis-aligned bounding box over all vertices.
// Its position is the box midpoint, not the centroid.
func (p *Polygon) FrameRect() FrameRect {
	lo, hi := p.verts[0], p.verts[0]
	for _, v := range p.verts[1:] {
		lo = Pt(min(lo.X, v.X), min(lo.Y, v.Y))
		hi = Pt(max(hi.X, v.X), max(hi.Y, v.Y))
	}
	return FrameRectFromCorners(lo, hi)
}

// MoveTo places the polygon's centroid at p.
func (p *Polygon) MoveTo(q Point) {
	d := q.Sub(p.centroid)
	p.MoveBy(d.X, d.Y)
}

// MoveBy translates every vertex and the stored centroid by (dx, dy).
func (p *Polygon) MoveBy(dx, dy float64) {
	for i := range p.verts {
		p.verts[i].X += dx
		p.verts[i].Y += dy
	}
	p.centroid.X += dx
	p.centroid.Y += dy
}

// Scale dilates every vertex about the centroid by factor k. The centroid
// is the fixed point of the dilation and is left untouched.
func (p *Polygon) Scale(k float64) {
	for i := range p.verts {
		p.verts[i] = p.centroid.Add(p.verts[i].Sub(p.centroid).Mul(k))
	}
}
