package main

import (
	"github.com/1siamBot/stardust/engine/app"
	"github.com/1siamBot/stardust/engine/audio"
	"github.com/1siamBot/stardust/engine/core"
	"github.com/1siamBot/stardust/engine/geom"
	"github.com/1siamBot/stardust/engine/input"
	"github.com/1siamBot/stardust/engine/particles"
	"github.com/1siamBot/stardust/engine/physics"
	"github.com/1siamBot/stardust/engine/render"
	"github.com/1siamBot/stardust/engine/scene"
	"github.com/1siamBot/stardust/engine/systems"
)

const (
	smokeInterval = 0.01 // seconds between fountain particles
	crateLifetime = 10.0
)

// sandbox exercises particles, entities, physics and sound
type sandbox struct {
	scene.Base
	app *app.Application
	res *resources

	cam       *render.Camera
	particles *particles.System
	physics   *physics.World
	smoke     render.Texture
	gearTex   render.Texture
	boom      *audio.Sound

	emitter   geom.Vec2
	emitTimer float64
	player    core.EntityID
}

func newSandbox(a *app.Application, res *resources) *sandbox {
	return &sandbox{Base: scene.NewBase("sandbox"), app: a, res: res}
}

func (s *sandbox) OnLoad() error {
	w, h := s.app.Renderer().LogicalSize()
	s.cam = render.NewCamera(w, h, 16)
	s.emitter = geom.V2(float64(w)/2, float64(h)*0.8)
	s.particles = particles.NewSystem(
		particles.WithRand(s.res.rng),
		particles.WithGravity(geom.V2(0, 400)),
	)

	s.smoke = s.res.texture("textures/smoke.png")
	s.gearTex = s.res.texture("textures/gear.dxt")
	s.boom = s.res.sound("sounds/boom.wav")

	cfg := s.res.cfg.Physics
	s.physics = physics.NewWorld(geom.V2(0, cfg.Gravity))
	s.physics.VelocityIterations = cfg.VelocityIterations
	s.physics.PositionIterations = cfg.PositionIterations

	world := s.app.World()
	bounds := s.cam.VisibleBounds()
	world.AddSystem(&systems.MovementSystem{Input: s.app.Input(), Bounds: &bounds})
	world.AddSystem(&systems.PhysicsSystem{World: s.physics})
	world.AddSystem(&systems.AnimationSystem{})
	world.AddSystem(&systems.LifetimeSystem{})

	ground := s.physics.CreateBody(physics.BodyDef{
		Type:     physics.Static,
		Position: geom.V2(bounds.X+bounds.W/2, bounds.Y+0.5),
		HalfSize: geom.V2(bounds.W/2, 0.5),
		Friction: 0.6,
	})
	world.Spawn(
		&core.Transform{Position: ground.Position()},
		&core.Body{Body: ground},
		&core.Sprite{Size: geom.V2(bounds.W, 1), Tint: render.Grey, Visible: true},
	)

	world.Spawn(
		&core.Transform{Position: geom.V2(-8, 2), Scale: geom.V2(1, 1)},
		&core.Rotator{Torque: 90},
		&core.Sprite{Texture: s.gearTex, Size: geom.V2(3, 3), Tint: render.Yellow, ZOrder: 1, Visible: true},
	)

	s.player = world.Spawn(
		&core.Transform{},
		&core.Velocity{},
		&core.KeyboardControlled{Speed: 8},
		&core.Sprite{Size: geom.V2(1, 1), Tint: render.Cyan, ZOrder: 2, Visible: true},
		&core.Tag{Name: "player"},
	)

	s.spawnCrate(geom.V2(2, 6), 0)
	s.res.logger.Info("sandbox loaded", "entities", world.EntityCount())
	return nil
}

func (s *sandbox) OnUnload() {
	s.particles.KillAllParticles()
	s.res.audio.StopAll()
	s.res.logger.Info("sandbox unloaded")
}

func (s *sandbox) spawnCrate(pos geom.Vec2, lifetime float64) {
	body := s.physics.CreateBody(physics.BodyDef{
		Type:        physics.Dynamic,
		Position:    pos,
		HalfSize:    geom.V2(0.75, 0.75),
		Density:     1,
		Friction:    0.4,
		Restitution: 0.2,
	})
	comps := []core.Component{
		&core.Transform{Position: pos},
		&core.Body{Body: body},
		&core.Sprite{Size: geom.V2(1.5, 1.5), Tint: render.Brown, ZOrder: 1, Visible: true},
	}
	if lifetime > 0 {
		comps = append(comps, &core.Lifetime{Remaining: lifetime})
	}
	s.app.World().Spawn(comps...)
}

// FixedUpdate is the only place physics steps
func (s *sandbox) FixedUpdate(dt float64) {
	s.app.World().Tick(dt)
}

func (s *sandbox) ProcessInput() {
	in := s.app.Input()

	if in.Keyboard.IsKeyPressed(input.KeySpace) {
		s.res.audio.Play(s.boom, "effects")
		s.burst(s.emitter, 60)
	}
	if in.Keyboard.IsKeyPressed(input.KeyEnter) {
		s.particles.KillAllParticles()
	}
	if in.Keyboard.IsKeyPressed(input.KeyC) {
		s.spawnCrate(s.cam.ScreenToWorld(in.Mouse.Position()), crateLifetime)
	}
	if in.Keyboard.IsKeyPressed(input.KeyM) {
		if !s.app.SetRelativeMouse(!in.Mouse.Relative) {
			s.res.logger.Debug("relative mouse unsupported")
		}
	}
	if in.Mouse.Dragging {
		s.particles.RepositionAll(in.Mouse.Delta())
	}
	if in.Mouse.Scroll != 0 {
		s.particles.ResizeAll(1 + in.Mouse.Scroll*0.1)
	}
	if c := s.firstController(); c != nil && c.IsButtonPressed(input.ButtonA) {
		s.burst(s.emitter, 60)
	}
}

func (s *sandbox) firstController() *input.Controller {
	all := s.app.Input().Controllers.All()
	if len(all) == 0 {
		return nil
	}
	return all[0]
}

func (s *sandbox) Update(dt float64) {
	s.emitTimer += dt
	for s.emitTimer >= smokeInterval {
		s.emitTimer -= smokeInterval
		s.particles.Emit(particles.EmitSpec{
			Position:           s.emitter,
			MinVelocity:        geom.V2(-60, -420),
			MaxVelocity:        geom.V2(60, -300),
			VelocityDecayRate:  -0.2,
			MinAngularVelocity: -90,
			MaxAngularVelocity: 90,
			AffectedByGravity:  true,
			MinSize:            geom.V2(8, 8),
			MaxSize:            geom.V2(24, 24),
			SizeDecayRate:      0.5,
			KeepAsSquare:       true,
			StartColour:        render.Orange,
			EndColour:          render.Grey,
			Texture:            s.smoke,
			MinLifetime:        1,
			MaxLifetime:        2.5,
		})
	}
	s.particles.Update(dt)
}

func (s *sandbox) LateUpdate(float64) {
	if tr, ok := s.app.World().Get(s.player, core.CompTransform).(*core.Transform); ok {
		s.res.audio.Listener().Position = tr.Position
	}
}

func (s *sandbox) burst(at geom.Vec2, n int) {
	for range n {
		s.particles.Emit(particles.EmitSpec{
			Position:          at,
			MinVelocity:       geom.V2(-300, -300),
			MaxVelocity:       geom.V2(300, 300),
			VelocityDecayRate: -1,
			MinSize:           geom.V2(4, 4),
			MaxSize:           geom.V2(10, 10),
			KeepAsSquare:      true,
			StartColour:       render.White,
			EndColour:         render.Magenta,
			MinLifetime:       0.3,
			MaxLifetime:       0.8,
		})
	}
}

func (s *sandbox) Render(r render.Renderer) {
	systems.DrawSprites(s.app.World(), r, s.cam)
	s.particles.Render(r)
	if rect, ok := s.app.Input().Mouse.DragRect(); ok {
		r.DrawRect(rect, selectionColour)
	}
}

var selectionColour = render.LerpColour(render.Black, render.Lime, 0.25)

// ---- Window and controller hooks ----

func (s *sandbox) OnWindowMinimised()     { s.res.logger.Debug("window minimised") }
func (s *sandbox) OnWindowMaximised()     { s.res.logger.Debug("window maximised") }
func (s *sandbox) OnWindowMoved(x, y int) {}

func (s *sandbox) OnWindowResized(w, h int) {
	s.res.logger.Debug("window resized", "w", w, "h", h)
}

func (s *sandbox) OnControllerAdded(c *input.Controller) {
	s.res.logger.Info("controller ready", "name", c.Name, "player", c.PlayerIndex)
}

func (s *sandbox) OnControllerRemoved(c *input.Controller) {
	s.res.logger.Info("controller gone", "name", c.Name)
}
