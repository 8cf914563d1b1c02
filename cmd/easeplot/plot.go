package main

import (
	"image/color"
	"sort"
	"strings"

	"github.com/phanxgames/tween"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var variantColors = map[string]color.RGBA{
	"In":    {R: 34, G: 153, B: 166, A: 255},
	"Out":   {R: 230, G: 97, B: 1, A: 255},
	"InOut": {R: 94, G: 60, B: 153, A: 255},
	"":      {R: 0, G: 0, B: 0, A: 255},
}

// splitMode splits an easing name such as "InOutQuad" into its variant
// ("InOut") and family ("Quad").
func splitMode(m tween.EasingMode) (variant, family string) {
	name := m.String()
	for _, prefix := range []string{"InOut", "Out", "In"} {
		if rest, ok := strings.CutPrefix(name, prefix); ok {
			return prefix, rest
		}
	}
	return "", name
}

// groupFamilies groups every built-in easing mode by family. Modes without a
// function of their own (CustomCurve) are left out.
func groupFamilies() map[string][]tween.EasingMode {
	groups := map[string][]tween.EasingMode{}
	for _, m := range tween.EasingModes() {
		if m.Func() == nil {
			continue
		}
		_, family := splitMode(m)
		groups[family] = append(groups[family], m)
	}
	return groups
}

func familyNames(groups map[string][]tween.EasingMode) []string {
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// sampleMode evaluates m at n+1 evenly spaced points of [0, 1].
func sampleMode(m tween.EasingMode, n int) plotter.XYs {
	fn := m.Func()
	xys := make(plotter.XYs, n+1)
	for i := range xys {
		x := float64(i) / float64(n)
		xys[i].X = x
		xys[i].Y = fn(x)
	}
	return xys
}

func plotFamily(family string, modes []tween.EasingMode, samples int) (*plot.Plot, error) {
	if samples < 2 {
		samples = 2
	}
	p := plot.New()
	p.Title.Text = family
	p.X.Label.Text = "progress"
	p.Y.Label.Text = "eased"
	p.X.Min, p.X.Max = 0, 1
	grid := plotter.NewGrid()
	grid.Horizontal.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	grid.Vertical.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	p.Add(grid)
	p.Legend.Top = true
	p.Legend.Left = true

	for _, m := range modes {
		line, err := plotter.NewLine(sampleMode(m, samples))
		if err != nil {
			return nil, err
		}
		variant, _ := splitMode(m)
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = variantColors[variant]
		p.Add(line)
		p.Legend.Add(m.String(), line)
	}
	return p, nil
}
