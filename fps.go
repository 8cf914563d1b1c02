package tween

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// statsOverlay draws FPS, TPS and the scheduler's run count in the top-left
// corner. The text is refreshed every ~0.5 seconds.
type statsOverlay struct {
	img       *ebiten.Image
	sinceDraw float64
	drawnOnce bool
}

func newStatsOverlay() *statsOverlay {
	// 120x48 is enough for three short lines.
	return &statsOverlay{img: ebiten.NewImage(120, 48)}
}

func (o *statsOverlay) update(dt float64, s *Scheduler) {
	o.sinceDraw += dt
	if o.drawnOnce && o.sinceDraw < 0.5 {
		return
	}
	o.sinceDraw = 0
	o.drawnOnce = true

	o.img.Clear()
	// Semi-transparent background for readability
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nRuns: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), s.Len()))
}

func (o *statsOverlay) draw(screen *ebiten.Image) {
	screen.DrawImage(o.img, nil)
}
