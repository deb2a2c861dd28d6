// Package sceneio loads and saves shape collections as YAML scene files.
//
// A scene is a flat list of shape descriptions:
//
//	shapes:
//	  - name: Rectangle 1
//	    type: rectangle
//	    width: 5
//	    height: 6
//	    center: {x: 1, y: 2}
//	  - name: Bubble
//	    type: bubble
//	    radius: 10
//	    center: {x: 0, y: 0}
//	    anchor: {x: 2, y: 2}
package sceneio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/shapes"
)

// ErrUnknownShapeType is returned when a scene entry names a type other
// than rectangle, polygon or bubble.
var ErrUnknownShapeType = errors.New("sceneio: unknown shape type")

type sceneDoc struct {
	Shapes []shapeDoc `yaml:"shapes"`
}

type shapeDoc struct {
	Name   string     `yaml:"name"`
	Type   string     `yaml:"type"`
	Width  float64    `yaml:"width,omitempty"`
	Height float64    `yaml:"height,omitempty"`
	Radius float64    `yaml:"radius,omitempty"`
	Center *pointDoc  `yaml:"center,omitempty"`
	Anchor *pointDoc  `yaml:"anchor,omitempty"`
	Points []pointDoc `yaml:"points,omitempty"`
}

type pointDoc struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (p *pointDoc) point() shapes.Point {
	if p == nil {
		return shapes.Pt(0, 0)
	}
	return shapes.Pt(p.X, p.Y)
}

// Load reads a YAML scene from r and builds the described group.
// Construction errors from the shape constructors propagate unchanged,
// wrapped with the offending entry's name.
func Load(r io.Reader) (*shapes.Group, error) {
	var doc sceneDoc
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("sceneio: decoding scene: %w", err)
	}

	g := shapes.NewGroup()
	for _, d := range doc.Shapes {
		s, err := buildShape(d)
		if err != nil {
			return nil, fmt.Errorf("sceneio: shape %q: %w", d.Name, err)
		}
		g.Add(d.Name, s)
	}
	return g, nil
}

// LoadFile reads a YAML scene from the named file.
func LoadFile(path string) (*shapes.Group, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	return Load(f)
}

func buildShape(d shapeDoc) (shapes.Shape, error) {
	switch d.Type {
	case "rectangle":
		return shapes.NewRectangle(d.Width, d.Height, d.Center.point())
	case "polygon":
		points := make([]shapes.Point, len(d.Points))
		for i, p := range d.Points {
			points[i] = shapes.Pt(p.X, p.Y)
		}
		return shapes.NewPolygon(points)
	case "bubble":
		return shapes.NewBubble(d.Radius, d.Center.point(), d.Anchor.point())
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownShapeType, d.Type)
	}
}

// Save writes the group to w as a YAML scene. Only the shape variants of
// this module can be encoded.
func Save(w io.Writer, g *shapes.Group) error {
	doc := sceneDoc{Shapes: make([]shapeDoc, 0, g.Len())}
	for _, e := range g.Entries() {
		d, err := describeShape(e.Name, e.Shape)
		if err != nil {
			return err
		}
		doc.Shapes = append(doc.Shapes, d)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("sceneio: encoding scene: %w", err)
	}
	return enc.Close()
}

// SaveFile writes the group to the named file as a YAML scene.
func SaveFile(path string, g *shapes.Group) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Save(f, g); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func describeShape(name string, s shapes.Shape) (shapeDoc, error) {
	switch s := s.(type) {
	case *shapes.Rectangle:
		// A rectangle is its own frame, so the frame carries its state.
		frame := s.FrameRect()
		pos := frame.Pos
		return shapeDoc{
			Name:   name,
			Type:   "rectangle",
			Width:  frame.Width,
			Height: frame.Height,
			Center: &pointDoc{X: pos.X, Y: pos.Y},
		}, nil
	case *shapes.Polygon:
		verts := s.Vertices()
		points := make([]pointDoc, len(verts))
		for i, v := range verts {
			points[i] = pointDoc{X: v.X, Y: v.Y}
		}
		return shapeDoc{Name: name, Type: "polygon", Points: points}, nil
	case *shapes.Bubble:
		center, anchor := s.Center(), s.Anchor()
		return shapeDoc{
			Name:   name,
			Type:   "bubble",
			Radius: s.Radius(),
			Center: &pointDoc{X: center.X, Y: center.Y},
			Anchor: &pointDoc{X: anchor.X, Y: anchor.Y},
		}, nil
	default:
		return shapeDoc{}, fmt.Errorf("sceneio: cannot encode shape type %T", s)
	}
}
