package main

import "github.com/gogpu/shapes"

// demoGroup builds the built-in demo scene: two rectangles, a unit
// square, an irregular octagon and a bubble.
func demoGroup() (*shapes.Group, error) {
	g := shapes.NewGroup()

	r1, err := shapes.NewRectangle(5, 6, shapes.Pt(1, 2))
	if err != nil {
		return nil, err
	}
	g.Add("Rectangle 1", r1)

	r2, err := shapes.NewRectangle(10, 2, shapes.Pt(-10, 3))
	if err != nil {
		return nil, err
	}
	g.Add("Rectangle 2", r2)

	p1, err := shapes.NewPolygon([]shapes.Point{
		shapes.Pt(0, 0), shapes.Pt(1, 0), shapes.Pt(1, 1), shapes.Pt(0, 1),
	})
	if err != nil {
		return nil, err
	}
	g.Add("Polygon 1", p1)

	p2, err := shapes.NewPolygon([]shapes.Point{
		shapes.Pt(0, 0), shapes.Pt(4, 1), shapes.Pt(5, 4), shapes.Pt(5, 8),
		shapes.Pt(4, 10), shapes.Pt(3, 8), shapes.Pt(2, 5), shapes.Pt(-1, 1),
	})
	if err != nil {
		return nil, err
	}
	g.Add("Polygon 2", p2)

	b, err := shapes.NewBubble(10, shapes.Pt(0, 0), shapes.Pt(2, 2))
	if err != nil {
		return nil, err
	}
	g.Add("Bubble", b)

	return g, nil
}
