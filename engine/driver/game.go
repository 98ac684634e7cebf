package driver

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/1siamBot/stardust/engine/app"
	"github.com/1siamBot/stardust/engine/config"
	"github.com/1siamBot/stardust/engine/input"
)

// Game adapts an Application to ebiten.Game. Ebiten owns the OS loop, so a
// frame's transition runs at the start of the following Update. F11
// toggles fullscreen.
type Game struct {
	app      *app.Application
	platform *Platform
	pending  bool
}

func NewGame(a *app.Application, p *Platform) *Game {
	return &Game{app: a, platform: p}
}

func (g *Game) Update() error {
	if g.pending {
		g.pending = false
		g.app.EndFrame()
	}
	if !g.app.IsRunning() {
		return ebiten.Termination
	}
	g.app.Update()
	g.pending = true

	if g.app.Input().Keyboard.IsKeyPressed(input.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.platform.screen.screen = screen
	g.app.Render(nil)
	g.platform.screen.screen = nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.platform.screen.LogicalSize()
}

// Configure applies the window and frame-rate settings. The frame cap is
// left to ebiten's tick rate, so the application itself should run without
// a frame budget.
func Configure(cfg config.Config) {
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Window.Fullscreen)
	if cfg.Window.Fullscreen && cfg.Window.Borderless {
		ebiten.SetWindowDecorated(false)
	}
	ebiten.SetVsyncEnabled(cfg.FrameRate.EnableVSync)
	// a fixed TPS lets ebiten run several Updates per Draw, so only
	// SyncWithFPS pairs every tick with exactly one Render
	if cfg.FrameRate.CapFPS && cfg.FrameRate.FPSLimit > 0 {
		ebiten.SetTPS(cfg.FrameRate.FPSLimit)
	} else {
		ebiten.SetTPS(ebiten.SyncWithFPS)
	}
	ebiten.SetWindowClosingHandled(true)
}

// Run loads the first scene and hands the loop to ebiten until the
// application stops. Like Application.Run it returns a startup failure or
// the error of a scene that failed to load later.
func Run(a *app.Application, p *Platform) error {
	if err := a.Start(); err != nil {
		a.Shutdown()
		return err
	}
	defer a.Shutdown()

	if err := ebiten.RunGame(NewGame(a, p)); err != nil {
		return err
	}
	return a.Err()
}
