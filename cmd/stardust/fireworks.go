package main

import (
	"image/color"
	"strings"

	"github.com/1siamBot/stardust/engine/app"
	"github.com/1siamBot/stardust/engine/audio"
	"github.com/1siamBot/stardust/engine/core"
	"github.com/1siamBot/stardust/engine/geom"
	"github.com/1siamBot/stardust/engine/input"
	"github.com/1siamBot/stardust/engine/particles"
	"github.com/1siamBot/stardust/engine/render"
	"github.com/1siamBot/stardust/engine/scene"
	"github.com/1siamBot/stardust/engine/systems"
)

const (
	launchInterval = 0.6
	fuseTime       = 1.2
	sparksPerShell = 80
)

var shellColours = []struct{ start, end color.RGBA }{
	{render.Yellow, render.Red},
	{render.Cyan, render.Blue},
	{render.White, render.Magenta},
	{render.Lime, render.Teal},
	{render.Orange, render.Maroon},
}

type shell struct {
	id   core.EntityID
	fuse float64
}

// fireworks launches shells from the bottom of the view that burst into
// sparks in world space
type fireworks struct {
	scene.Base
	app *app.Application
	res *resources

	cam    *render.Camera
	sparks *particles.System
	pop    *audio.Sound

	launchTimer float64
	shells      []shell
	typed       strings.Builder
}

func newFireworks(a *app.Application, res *resources) *fireworks {
	return &fireworks{Base: scene.NewBase("fireworks"), app: a, res: res}
}

func (f *fireworks) OnLoad() error {
	w, h := f.app.Renderer().LogicalSize()
	f.cam = render.NewCamera(w, h, 20)
	f.sparks = particles.NewSystem(
		particles.WithCapacity(4096),
		particles.WithRand(f.res.rng),
		particles.WithGravity(geom.V2(0, f.res.cfg.Physics.Gravity)),
	)

	f.app.World().AddSystem(&systems.MovementSystem{})

	f.pop = f.res.sound("sounds/pop.wav")
	f.res.audio.ResetListener()
	return nil
}

func (f *fireworks) OnUnload() {
	f.sparks.KillAllParticles()
	f.shells = nil
}

func (f *fireworks) FixedUpdate(dt float64) {
	world := f.app.World()
	world.Tick(dt)

	kept := f.shells[:0]
	for _, sh := range f.shells {
		sh.fuse -= dt
		if sh.fuse > 0 {
			kept = append(kept, sh)
			continue
		}
		if tr, ok := world.Get(sh.id, core.CompTransform).(*core.Transform); ok {
			f.burst(tr.Position)
		}
		world.Destroy(sh.id)
	}
	f.shells = kept
}

func (f *fireworks) ProcessInput() {
	in := f.app.Input()
	if in.Mouse.IsButtonPressed(input.MouseLeft) {
		f.burst(f.cam.ScreenToWorld(in.Mouse.Position()))
	}
	if in.Mouse.Scroll != 0 {
		f.cam.SetHalfSize(geom.Clamp(f.cam.HalfSize()-in.Mouse.Scroll, 5, 60))
	}
}

func (f *fireworks) Update(dt float64) {
	f.launchTimer += dt
	if f.launchTimer >= launchInterval {
		f.launchTimer -= launchInterval
		f.launch()
	}
	f.sparks.Update(dt)
}

func (f *fireworks) launch() {
	b := f.cam.VisibleBounds()
	x := b.X + b.W*(0.1+0.8*f.res.rng.Float64())
	vy := b.H * (0.6 + 0.3*f.res.rng.Float64()) / fuseTime
	id := f.app.World().Spawn(
		&core.Transform{Position: geom.V2(x, b.Y)},
		&core.Velocity{Vec2: geom.V2(0, vy)},
		&core.Sprite{Size: geom.V2(0.3, 0.8), Tint: render.Silver, Visible: true},
	)
	f.shells = append(f.shells, shell{id: id, fuse: fuseTime})
}

func (f *fireworks) burst(at geom.Vec2) {
	c := shellColours[f.res.rng.IntN(len(shellColours))]
	for range sparksPerShell {
		f.sparks.Emit(particles.EmitSpec{
			Position:          at,
			MinVelocity:       geom.V2(-8, -8),
			MaxVelocity:       geom.V2(8, 8),
			VelocityDecayRate: -1.5,
			AffectedByGravity: true,
			MinSize:           geom.V2(0.15, 0.15),
			MaxSize:           geom.V2(0.4, 0.4),
			SizeDecayRate:     -0.5,
			KeepAsSquare:      true,
			StartColour:       c.start,
			EndColour:         c.end,
			MinLifetime:       0.8,
			MaxLifetime:       1.6,
		})
	}
	f.res.audio.PlayAt(f.pop, "effects", at)
}

func (f *fireworks) Render(r render.Renderer) {
	r.Clear(render.Navy)
	systems.DrawSprites(f.app.World(), r, f.cam)
	f.sparks.RenderWorld(r, f.cam)
}

// Typing "boom" bursts a shell at the camera centre.
func (f *fireworks) OnKeyDown(input.Key) {}
func (f *fireworks) OnKeyUp(input.Key)   {}

func (f *fireworks) OnTextInput(text string) {
	f.typed.WriteString(strings.ToLower(text))
	if strings.HasSuffix(f.typed.String(), "boom") {
		f.burst(f.cam.Position)
		f.typed.Reset()
	}
	if f.typed.Len() > 64 {
		f.typed.Reset()
	}
}
