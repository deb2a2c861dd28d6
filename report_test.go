package shapes

import (
	"errors"
	"strings"
	"testing"
)

func TestGroup_Report(t *testing.T) {
	g := NewGroup()
	r, err := NewRectangle(5, 6, Pt(1, 2))
	if err != nil {
		t.Fatalf("NewRectangle: %v", err)
	}
	g.Add("Rectangle 1", r)

	var buf strings.Builder
	if err := g.Report(&buf); err != nil {
		t.Fatalf("Report: %v", err)
	}

	want := `Rectangle 1:
  area: 30
  frame rectangle:
    width: 5
    height: 6
    position: (1; 2)

Total area: 30
Total frame rectangle:
  width: 5
  height: 6
  position: (1; 2)
`
	if buf.String() != want {
		t.Errorf("Report output:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestGroup_Report_MultipleShapes(t *testing.T) {
	g := sampleGroup(t)

	var buf strings.Builder
	if err := g.Report(&buf); err != nil {
		t.Fatalf("Report: %v", err)
	}
	out := buf.String()

	for _, name := range []string{"Rectangle 1", "Rectangle 2", "Polygon 1", "Polygon 2", "Bubble"} {
		if !strings.Contains(out, name+":\n") {
			t.Errorf("report is missing section for %q", name)
		}
	}
	if !strings.Contains(out, "Total area: ") {
		t.Error("report is missing the total area line")
	}
	if !strings.Contains(out, "Total frame rectangle:\n") {
		t.Error("report is missing the union frame rectangle")
	}
}

func TestGroup_Report_Empty(t *testing.T) {
	g := NewGroup()
	var buf strings.Builder
	if err := g.Report(&buf); !errors.Is(err, ErrEmptyGroup) {
		t.Errorf("Report on empty group: error = %v, want ErrEmptyGroup", err)
	}
}
