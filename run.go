package tween

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// Update, if set, runs every frame after the scheduler has advanced.
	Update func() error
	// Draw, if set, runs every frame after Root has been drawn.
	Draw func(screen *ebiten.Image)
	// Root, if set, is drawn with DrawTree every frame.
	Root *Node
	// ClearColor fills the screen before drawing.
	ClearColor Color
	// ShowFPS draws FPS, TPS and the scheduler's run count on top.
	ShowFPS bool
}

type game struct {
	sched *Scheduler
	cfg   RunConfig
	stats *statsOverlay
}

func (g *game) Update() error {
	if err := g.sched.Update(); err != nil {
		return err
	}
	if g.stats != nil {
		g.stats.update(1.0/float64(ebiten.TPS()), g.sched)
	}
	if g.cfg.Update != nil {
		return g.cfg.Update()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.cfg.ClearColor != (Color{}) {
		screen.Fill(g.cfg.ClearColor.toRGBA())
	}
	if g.cfg.Root != nil {
		DrawTree(screen, g.cfg.Root)
	}
	if g.cfg.Draw != nil {
		g.cfg.Draw(screen)
	}
	if g.stats != nil {
		g.stats.draw(screen)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window and runs the ebiten game loop, advancing s once per
// tick. It blocks until the window closes.
func Run(s *Scheduler, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	g := &game{sched: s, cfg: cfg}
	if cfg.ShowFPS {
		g.stats = newStatsOverlay()
	}
	return ebiten.RunGame(g)
}
