// Package app drives the frame loop: it measures time, feeds fixed steps to
// the current scene, routes platform events to scene hooks, renders once per
// frame and moves between scenes when one finishes.
//
// A frame is split into three calls so an external driver that owns the OS
// loop (such as ebiten) can run it:
//
//	Update    time, events, audio, fixed steps, input, update, late update
//	Render    clear, scene render, present
//	EndFrame  scene transition
//
// Run strings them together for callers that own the loop themselves.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/1siamBot/stardust/engine/config"
	"github.com/1siamBot/stardust/engine/core"
	"github.com/1siamBot/stardust/engine/input"
	"github.com/1siamBot/stardust/engine/locale"
	"github.com/1siamBot/stardust/engine/logging"
	"github.com/1siamBot/stardust/engine/render"
	"github.com/1siamBot/stardust/engine/scene"
)

var (
	// ErrInitialise means the application could not be set up and must not run
	ErrInitialise = errors.New("application did not initialise")
	// ErrInitialSceneLoad means the first scene's OnLoad failed
	ErrInitialSceneLoad = errors.New("initial scene failed to load")
	// ErrSceneLoad means a scene loaded after a transition failed
	ErrSceneLoad = errors.New("scene failed to load")
)

// Option configures an Application
type Option func(*Application)

func WithLogger(l *log.Logger) Option        { return func(a *Application) { a.logger = l } }
func WithClock(c Clock) Option               { return func(a *Application) { a.clock = c } }
func WithAudio(s AudioSystem) Option         { return func(a *Application) { a.audio = s } }
func WithLocale(l *locale.Locale) Option     { return func(a *Application) { a.locale = l } }
func WithWorld(w *core.World) Option         { return func(a *Application) { a.world = w } }
func WithScreenshotDir(dir string) Option    { return func(a *Application) { a.screenshotDir = dir } }
func WithFrameBudget(d time.Duration) Option { return func(a *Application) { a.frameBudget = d } }

// Application owns the scene queue, the entity world, input state and the
// fixed-timestep accumulator. It is single-threaded: every method must be
// called from the loop goroutine.
type Application struct {
	logger   *log.Logger
	platform Platform
	clock    Clock
	audio    AudioSystem
	locale   *locale.Locale

	scenes *scene.Manager
	world  *core.World
	input  *input.State
	events *core.EventBus
	loop   *core.GameLoop

	snapshot input.Snapshot

	frameBudget   time.Duration // zero = uncapped
	screenshotDir string

	lastFrame time.Time
	deltaTime float64
	elapsed   float64
	frames    uint64

	started       bool
	running       bool
	closed        bool
	sceneFinished bool
	focused       bool
	err           error

	sceneData map[string]any
}

// New validates cfg and builds an application around platform. Any failure
// wraps ErrInitialise.
func New(platform Platform, cfg config.Config, opts ...Option) (*Application, error) {
	if platform == nil {
		return nil, fmt.Errorf("%w: no platform", ErrInitialise)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInitialise, err)
	}

	a := &Application{
		platform:      platform,
		scenes:        scene.NewManager(),
		input:         input.NewState(),
		events:        core.NewEventBus(),
		loop:          &core.GameLoop{FixedStep: cfg.Timing.FixedTimestep},
		frameBudget:   cfg.FrameBudget(),
		screenshotDir: cfg.ScreenshotDir,
		focused:       true,
		sceneData:     make(map[string]any),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = logging.Discard()
	}
	if a.clock == nil {
		a.clock = SystemClock{}
	}
	if a.audio == nil {
		a.audio = nullAudio{}
	}
	if a.world == nil {
		a.world = core.NewWorld()
	}

	a.input.Controllers.SetDeadzone(cfg.Controls.ControllerDeadzone)
	a.input.Controllers.MaxControllers = cfg.Controls.MaxControllers
	a.registerHandlers()

	a.logger.Info("application initialised",
		"fixed_timestep", a.loop.FixedStep,
		"frame_budget", a.frameBudget)
	return a, nil
}

// PushScene queues s. Once the application has started, a scene that lands
// at the front of an empty queue is loaded straight away.
func (a *Application) PushScene(s scene.Scene) error {
	a.scenes.Push(s)
	if !a.started || a.scenes.Current() != s || a.scenes.State() != scene.Pending {
		return nil
	}
	if err := a.scenes.Load(); err != nil {
		return fmt.Errorf("%w: %w", ErrSceneLoad, err)
	}
	a.logger.Debug("scene loaded", "scene", s.Name())
	return nil
}

// Start loads the initial scene. An empty queue is not an error: the
// application simply has nothing to run.
func (a *Application) Start() error {
	if a.started {
		return nil
	}
	a.started = true
	a.lastFrame = a.clock.Now()

	if a.scenes.IsEmpty() {
		a.logger.Info("no initial scene queued")
		a.running = false
		return nil
	}

	cur := a.scenes.Current()
	if err := a.scenes.Load(); err != nil {
		a.logger.Error("failed to load initial scene", "scene", cur.Name(), "err", err)
		a.showMessage("errors.titles.scene", "errors.bodies.initial-scene")
		a.running = false
		return fmt.Errorf("%w: %w", ErrInitialSceneLoad, err)
	}
	a.logger.Debug("initial scene loaded", "scene", cur.Name())
	a.running = true
	return nil
}

// Run starts the application and loops until it stops or ctx is cancelled.
// A scene that fails to load after a transition stops the loop; its error
// is returned once the application has shut down.
func (a *Application) Run(ctx context.Context) error {
	if err := a.Start(); err != nil {
		a.Shutdown()
		return err
	}
	defer a.Shutdown()

	for a.running {
		if ctx.Err() != nil {
			a.logger.Info("run cancelled", "err", ctx.Err())
			a.running = false
			break
		}
		a.Frame()
	}
	return a.err
}

// Frame runs one complete frame on the platform's renderer
func (a *Application) Frame() {
	a.Update()
	a.Render(nil)
	a.EndFrame()
}

// Update runs the simulation half of a frame
func (a *Application) Update() {
	cur := a.scenes.Current()
	if cur == nil {
		return
	}
	a.frames++

	dt := a.frameTime()
	a.deltaTime = dt
	a.elapsed += dt
	a.loop.Accumulate(dt)

	a.pollEvents()
	a.audio.Update()

	a.loop.Steps(cur.FixedUpdate)

	a.processInput(cur)
	cur.Update(dt)
	cur.LateUpdate(dt)
}

// Render draws the current scene. A nil r means the platform's renderer.
func (a *Application) Render(r render.Renderer) {
	cur := a.scenes.Current()
	if cur == nil {
		return
	}
	if r == nil {
		r = a.platform.Renderer()
	}
	r.Clear(render.Black)
	cur.Render(r)
	r.Present()
}

// EndFrame performs a pending scene transition and stops the application
// when the queue has run dry
func (a *Application) EndFrame() {
	if a.sceneFinished {
		a.sceneFinished = false
		a.transition()
	}
	if a.scenes.IsEmpty() {
		a.running = false
	}
}

func (a *Application) transition() {
	if prev := a.scenes.Unload(); prev != nil {
		a.logger.Debug("scene finished", "scene", prev.Name())
	}
	a.world.Clear()
	a.audio.ResetListener()

	next := a.scenes.Current()
	if next == nil {
		return
	}
	if err := a.scenes.Load(); err != nil {
		a.err = fmt.Errorf("%w: %w", ErrSceneLoad, err)
		a.logger.Error("failed to load scene", "scene", next.Name(), "err", err)
		a.showMessage("errors.titles.scene", "errors.bodies.next-scene")
		a.running = false
		return
	}
	a.logger.Debug("scene loaded", "scene", next.Name())
}

// Shutdown unloads the current scene if it is still active and clears the
// world. It is safe to call more than once.
func (a *Application) Shutdown() {
	if a.closed {
		return
	}
	a.closed = true
	a.running = false
	if a.scenes.State() == scene.Active {
		a.scenes.Unload()
	}
	a.world.Clear()
	a.logger.Info("application shut down", "frames", a.frames, "elapsed", a.elapsed)
}

// frameTime measures the time since the previous frame. With a frame budget
// it sleeps off whatever is left of the budget and reports the budget
// itself, so gameplay never sees the jittery true delta.
func (a *Application) frameTime() float64 {
	now := a.clock.Now()
	dt := now.Sub(a.lastFrame)
	if a.frameBudget <= 0 {
		a.lastFrame = now
		return dt.Seconds()
	}
	if dt < a.frameBudget {
		a.clock.Sleep(a.frameBudget - dt)
	}
	a.lastFrame = a.clock.Now()
	return a.frameBudget.Seconds()
}

func (a *Application) processInput(cur scene.Scene) {
	if a.focused {
		a.platform.ReadInput(&a.snapshot)
		a.input.Refresh(&a.snapshot)
	} else {
		a.input.Freeze()
	}
	if a.input.Keyboard.IsKeyPressed(input.KeyEscape) {
		a.FinishCurrentScene()
	}
	cur.ProcessInput()
}

// FinishCurrentScene asks for the current scene to be replaced by the next
// one at the end of this frame
func (a *Application) FinishCurrentScene() { a.sceneFinished = true }

// ForceQuit stops the application after the current frame
func (a *Application) ForceQuit() { a.running = false }

// TakeScreenshot saves the last presented frame if the platform supports it
func (a *Application) TakeScreenshot() {
	s, ok := a.platform.(Screenshotter)
	if !ok {
		a.logger.Debug("platform cannot take screenshots")
		return
	}
	path, err := s.Screenshot(a.screenshotDir)
	if err != nil {
		a.logger.Warn("failed to take screenshot", "err", err)
		a.showMessage("warnings.titles.screenshot", "warnings.bodies.screenshot")
		return
	}
	a.logger.Info("screenshot captured", "path", path)
}

// SetRelativeMouse switches relative mouse mode. It reports false when the
// platform cannot capture the cursor.
func (a *Application) SetRelativeMouse(on bool) bool {
	rm, ok := a.platform.(RelativeMouser)
	if !ok {
		return false
	}
	rm.SetRelativeMouse(on)
	a.input.Mouse.Relative = on
	return true
}

func (a *Application) showMessage(titleKey, bodyKey string) {
	if mb, ok := a.platform.(MessageBoxer); ok {
		mb.ShowMessage(a.locale.Get(titleKey), a.locale.Get(bodyKey))
	}
}

func (a *Application) IsRunning() bool           { return a.running }
func (a *Application) IsFocused() bool           { return a.focused }
func (a *Application) Err() error                { return a.err }
func (a *Application) DeltaTime() float64        { return a.deltaTime }
func (a *Application) ElapsedTime() float64      { return a.elapsed }
func (a *Application) FixedTimestep() float64    { return a.loop.FixedStep }
func (a *Application) Accumulator() float64      { return a.loop.Accumulator() }
func (a *Application) FrameCount() uint64        { return a.frames }
func (a *Application) Input() *input.State       { return a.input }
func (a *Application) World() *core.World        { return a.world }
func (a *Application) Scenes() *scene.Manager    { return a.scenes }
func (a *Application) Logger() *log.Logger       { return a.logger }
func (a *Application) Platform() Platform        { return a.platform }
func (a *Application) Locale() *locale.Locale    { return a.locale }
func (a *Application) Events() *core.EventBus    { return a.events }
func (a *Application) Renderer() render.Renderer { return a.platform.Renderer() }

// SetSceneData stores a value that outlives scene transitions
func (a *Application) SetSceneData(name string, v any) { a.sceneData[name] = v }

// SceneData returns a value stored with SetSceneData
func (a *Application) SceneData(name string) (any, bool) {
	v, ok := a.sceneData[name]
	return v, ok
}

func (a *Application) RemoveSceneData(name string) { delete(a.sceneData, name) }
