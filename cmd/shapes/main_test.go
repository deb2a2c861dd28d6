package main

import (
	"strings"
	"testing"
)

func TestDemoGroup(t *testing.T) {
	g, err := demoGroup()
	if err != nil {
		t.Fatalf("demoGroup: %v", err)
	}
	if g.Len() != 5 {
		t.Errorf("Len() = %d, want 5", g.Len())
	}
}

func TestRunReport(t *testing.T) {
	var out strings.Builder
	reportCmd.SetOut(&out)

	if err := runReport(reportCmd, nil); err != nil {
		t.Fatalf("runReport: %v", err)
	}
	for _, want := range []string{"Rectangle 1:", "Bubble:", "Total area: ", "Total frame rectangle:"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("report output is missing %q", want)
		}
	}
}

func TestRunScale_CleanEOF(t *testing.T) {
	var out strings.Builder
	scaleCmd.SetOut(&out)
	scaleCmd.SetIn(strings.NewReader("0 0 2\n"))

	if err := runScale(scaleCmd, nil); err != nil {
		t.Fatalf("runScale: %v", err)
	}
	if got := strings.Count(out.String(), "Total area: "); got != 2 {
		t.Errorf("report printed %d times, want 2 (initial + after scale)", got)
	}
	if !strings.Contains(out.String(), "Enter x, y and k: ") {
		t.Error("missing input prompt")
	}
}

func TestRunScale_NonPositiveFactor(t *testing.T) {
	var out strings.Builder
	scaleCmd.SetOut(&out)
	scaleCmd.SetIn(strings.NewReader("1 1 0\n"))

	err := runScale(scaleCmd, nil)
	if err == nil || !strings.Contains(err.Error(), "less than or equal to zero") {
		t.Errorf("error = %v, want non-positive k error", err)
	}
}

func TestRunScale_BadInput(t *testing.T) {
	var out strings.Builder
	scaleCmd.SetOut(&out)
	scaleCmd.SetIn(strings.NewReader("not numbers at all\n"))

	err := runScale(scaleCmd, nil)
	if err == nil || !strings.Contains(err.Error(), "bad input") {
		t.Errorf("error = %v, want bad input error", err)
	}
}
