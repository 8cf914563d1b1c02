package tween

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// DrawTree draws every active node under root that has an Image, in tree
// order, using its world transform and its Color tint multiplied by the
// alpha of the node and its ancestors.
func DrawTree(screen *ebiten.Image, root *Node) {
	var op ebiten.DrawImageOptions
	drawNode(screen, root, identityTransform, 1, &op)
}

func drawNode(screen *ebiten.Image, n *Node, parent [6]float64, parentAlpha float64, op *ebiten.DrawImageOptions) {
	if !n.active || n.disposed {
		return
	}
	world := multiplyAffine(parent, computeLocalTransform(n))
	alpha := parentAlpha * n.Alpha

	if n.Image != nil {
		op.GeoM.Reset()
		op.GeoM.Concat(nodeGeoM(world))
		op.ColorScale.Reset()
		a := float32(alpha * n.Color.A)
		op.ColorScale.Scale(float32(n.Color.R)*a, float32(n.Color.G)*a, float32(n.Color.B)*a, a)
		screen.DrawImage(n.Image, op)
	}

	for _, child := range n.children {
		drawNode(screen, child, world, alpha, op)
	}
}

func nodeGeoM(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

// toRGBA converts a Color to a premultiplied colorRGBA for image.Fill.
func (c Color) toRGBA() colorRGBA {
	return colorRGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// colorRGBA implements the color.Color interface for image.Fill.
type colorRGBA struct {
	R, G, B, A uint8
}

func (c colorRGBA) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = uint32(c.A) * 0x101
	return
}
