package main

import (
	"testing"

	"github.com/phanxgames/tween"
)

func TestSplitMode(t *testing.T) {
	cases := []struct {
		mode            tween.EasingMode
		variant, family string
	}{
		{tween.EaseInOutQuad, "InOut", "Quad"},
		{tween.EaseOutBounce, "Out", "Bounce"},
		{tween.EaseInBack, "In", "Back"},
		{tween.EaseLinear, "", "Linear"},
	}
	for _, c := range cases {
		v, f := splitMode(c.mode)
		if v != c.variant || f != c.family {
			t.Errorf("splitMode(%v) = %q, %q; want %q, %q", c.mode, v, f, c.variant, c.family)
		}
	}
}

func TestGroupFamilies(t *testing.T) {
	groups := groupFamilies()
	if len(groups["Cubic"]) != 3 {
		t.Errorf("Cubic has %d modes, want 3", len(groups["Cubic"]))
	}
	if len(groups["Linear"]) != 1 {
		t.Errorf("Linear has %d modes, want 1", len(groups["Linear"]))
	}
	if _, ok := groups["CustomCurve"]; ok {
		t.Error("CustomCurve should not be plotted")
	}
}

func TestSampleModeEndpoints(t *testing.T) {
	xys := sampleMode(tween.EaseOutElastic, 10)
	if len(xys) != 11 {
		t.Fatalf("len = %d, want 11", len(xys))
	}
	if xys[0].Y != 0 || xys[10].Y != 1 {
		t.Errorf("endpoints = %v, %v", xys[0].Y, xys[10].Y)
	}
}

func TestPlotFamily(t *testing.T) {
	groups := groupFamilies()
	p, err := plotFamily("Back", groups["Back"], 50)
	if err != nil {
		t.Fatal(err)
	}
	if p.Title.Text != "Back" {
		t.Errorf("title = %q", p.Title.Text)
	}
}
