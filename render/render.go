// Package render rasterizes shape groups into raster images.
//
// The scene's union frame rectangle is fitted into the target image with
// a uniform scale and a margin, then every shape is filled with a color
// from a small rotating palette. World coordinates use Y-up; the raster
// output is Y-down, so the mapping flips Y.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log/slog"
	"os"

	"golang.org/x/image/vector"

	"github.com/gogpu/shapes"
)

// Options control rasterization.
type Options struct {
	// Width and Height are the output dimensions in pixels.
	// Zero values default to 512.
	Width, Height int

	// Margin is the fraction of each image dimension left blank around
	// the scene. Negative values are treated as 0. Default 0.05.
	Margin float64

	// Background fills the image before any shape is drawn.
	// Nil defaults to white.
	Background color.Color
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = 512
	}
	if o.Height <= 0 {
		o.Height = 512
	}
	if o.Margin < 0 {
		o.Margin = 0
	} else if o.Margin == 0 {
		o.Margin = 0.05
	}
	if o.Background == nil {
		o.Background = color.White
	}
	return o
}

// palette holds the fill colors, assigned to shapes in group order.
var palette = []color.NRGBA{
	{R: 0xe5, G: 0x39, B: 0x35, A: 0xc0},
	{R: 0x1e, G: 0x88, B: 0xe5, A: 0xc0},
	{R: 0x43, G: 0xa0, B: 0x47, A: 0xc0},
	{R: 0xfb, G: 0x8c, B: 0x00, A: 0xc0},
	{R: 0x8e, G: 0x24, B: 0xaa, A: 0xc0},
}

// xform maps world coordinates to pixel coordinates with a uniform scale
// and a Y flip.
type xform struct {
	scale  float64
	center shapes.Point // world point mapped to the image center
	w, h   int
}

func (t xform) apply(p shapes.Point) (float32, float32) {
	x := float64(t.w)/2 + t.scale*(p.X-t.center.X)
	y := float64(t.h)/2 - t.scale*(p.Y-t.center.Y)
	return float32(x), float32(y)
}

func fitFrame(frame shapes.FrameRect, opts Options) xform {
	availW := float64(opts.Width) * (1 - 2*opts.Margin)
	availH := float64(opts.Height) * (1 - 2*opts.Margin)

	// A degenerate frame (single column or row of points) still renders;
	// treat the zero dimension as unit-sized for the fit.
	fw, fh := frame.Width, frame.Height
	if fw <= 0 {
		fw = 1
	}
	if fh <= 0 {
		fh = 1
	}

	scale := availW / fw
	if s := availH / fh; s < scale {
		scale = s
	}
	return xform{scale: scale, center: frame.Pos, w: opts.Width, h: opts.Height}
}

// Image renders the group into a new RGBA image.
// Returns shapes.ErrEmptyGroup for an empty group.
func Image(g *shapes.Group, opts Options) (*image.RGBA, error) {
	opts = opts.withDefaults()

	frame, err := g.FrameRect()
	if err != nil {
		return nil, err
	}
	tf := fitFrame(frame, opts)

	shapes.Logger().Debug("rendering group",
		slog.Int("shapes", g.Len()),
		slog.Int("width", opts.Width),
		slog.Int("height", opts.Height),
		slog.Float64("scale", tf.scale))

	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	r := vector.NewRasterizer(opts.Width, opts.Height)
	for i, e := range g.Entries() {
		r.Reset(opts.Width, opts.Height)
		outline(r, e.Shape, tf)
		src := image.NewUniform(palette[i%len(palette)])
		r.Draw(img, img.Bounds(), src, image.Point{})
	}
	return img, nil
}

// SavePNG renders the group and writes it to a PNG file.
func SavePNG(path string, g *shapes.Group, opts Options) error {
	img, err := Image(g, opts)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: creating %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// kappa is the cubic Bezier circle approximation constant,
// 4*(sqrt(2)-1)/3.
const kappa = 0.5522847498307933

// outline appends the shape's fill path to the rasterizer. Polygons use
// their vertex sequence and bubbles their circle; everything else falls
// back to its frame rectangle.
func outline(r *vector.Rasterizer, s shapes.Shape, tf xform) {
	switch s := s.(type) {
	case *shapes.Polygon:
		verts := s.Vertices()
		x, y := tf.apply(verts[0])
		r.MoveTo(x, y)
		for _, v := range verts[1:] {
			x, y = tf.apply(v)
			r.LineTo(x, y)
		}
		r.ClosePath()
	case *shapes.Bubble:
		c := s.Center()
		rad := s.Radius()
		circle(r, tf, c, rad)
	default:
		frame := s.FrameRect()
		lo, hi := frame.Min(), frame.Max()
		x0, y0 := tf.apply(lo)
		x1, y1 := tf.apply(hi)
		r.MoveTo(x0, y0)
		r.LineTo(x1, y0)
		r.LineTo(x1, y1)
		r.LineTo(x0, y1)
		r.ClosePath()
	}
}

// circle approximates a circle with four cubic Bezier arcs.
func circle(r *vector.Rasterizer, tf xform, c shapes.Point, rad float64) {
	k := rad * kappa
	east := shapes.Pt(c.X+rad, c.Y)
	north := shapes.Pt(c.X, c.Y+rad)
	west := shapes.Pt(c.X-rad, c.Y)
	south := shapes.Pt(c.X, c.Y-rad)

	x, y := tf.apply(east)
	r.MoveTo(x, y)
	cubeTo(r, tf, shapes.Pt(c.X+rad, c.Y+k), shapes.Pt(c.X+k, c.Y+rad), north)
	cubeTo(r, tf, shapes.Pt(c.X-k, c.Y+rad), shapes.Pt(c.X-rad, c.Y+k), west)
	cubeTo(r, tf, shapes.Pt(c.X-rad, c.Y-k), shapes.Pt(c.X-k, c.Y-rad), south)
	cubeTo(r, tf, shapes.Pt(c.X+k, c.Y-rad), shapes.Pt(c.X+rad, c.Y-k), east)
	r.ClosePath()
}

func cubeTo(r *vector.Rasterizer, tf xform, c1, c2, to shapes.Point) {
	x1, y1 := tf.apply(c1)
	x2, y2 := tf.apply(c2)
	x, y := tf.apply(to)
	r.CubeTo(x1, y1, x2, y2, x, y)
}
