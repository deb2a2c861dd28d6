// Package shapes models 2D geometric shapes behind a common polymorphic
// interface.
//
// # Overview
//
// shapes is a small Pure Go geometry library in the GoGPU ecosystem. It
// provides axis-aligned rectangles, simple polygons, and anchor-tracked
// circles ("bubbles") that all implement the [Shape] interface: area
// computation, bounding-box query (the "frame rectangle"), translation,
// and uniform scaling.
//
// # Quick Start
//
//	import "github.com/gogpu/shapes"
//
//	rect, err := shapes.NewRectangle(5, 6, shapes.Pt(1, 2))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	g := shapes.NewGroup()
//	g.Add("Rectangle 1", rect)
//
//	// Dilate the whole group by 2x about the origin.
//	if err := g.ScaleAbout(2, shapes.Pt(0, 0)); err != nil {
//	    log.Fatal(err)
//	}
//
// # Scaling About a Point
//
// Individual shapes only know how to scale about their own fixed point
// (a rectangle's center, a polygon's centroid, a bubble's anchor).
// [Group.ScaleAbout] composes a dilation about an arbitrary pivot out of
// each shape's own primitives: move to the pivot, move back by the scaled
// offset, then self-scale. No shape needs to know about external dilation.
//
// # Coordinate System
//
// Plain Cartesian coordinates: X increases right, Y increases up. The
// render subpackage flips Y when mapping to raster images.
//
// # Concurrency
//
// Shapes and groups are not safe for concurrent mutation; callers must
// synchronize externally. The package-level logger hook ([SetLogger]) is
// the only concurrency-safe entry point.
package shapes
