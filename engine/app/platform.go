package app

import (
	"github.com/1siamBot/stardust/engine/core"
	"github.com/1siamBot/stardust/engine/input"
	"github.com/1siamBot/stardust/engine/render"
)

// Platform is the window and input backend the application drives
type Platform interface {
	// PollEvents returns the events that arrived since the last call
	PollEvents() []core.Event
	// ReadInput fills snap with the current device state
	ReadInput(snap *input.Snapshot)
	Renderer() render.Renderer
}

// Screenshotter is implemented by platforms that can save the last
// presented frame. It returns the path written.
type Screenshotter interface {
	Screenshot(dir string) (string, error)
}

// MessageBoxer is implemented by platforms that can show a blocking
// diagnostic to the user
type MessageBoxer interface {
	ShowMessage(title, body string)
}

// RelativeMouser is implemented by platforms that can capture the cursor
// and report only its movement
type RelativeMouser interface {
	SetRelativeMouse(on bool)
}

// AudioSystem is the part of the sound system the loop drives
type AudioSystem interface {
	// Update runs once per frame, outside the fixed steps
	Update()
	// ResetListener recentres the listener when a scene is unloaded
	ResetListener()
}

type nullAudio struct{}

func (nullAudio) Update()        {}
func (nullAudio) ResetListener() {}

// NullPlatform is a Platform without a window. Events and input are fed in
// by the caller; everything drawn is discarded.
type NullPlatform struct {
	Events []core.Event
	Input  input.Snapshot
	Screen render.Renderer
}

// NewNullPlatform creates a headless platform with a w by h logical screen
func NewNullPlatform(w, h int) *NullPlatform {
	return &NullPlatform{Screen: render.Discard{W: w, H: h}}
}

// Queue adds events to be returned by the next PollEvents
func (p *NullPlatform) Queue(events ...core.Event) {
	p.Events = append(p.Events, events...)
}

func (p *NullPlatform) PollEvents() []core.Event {
	out := p.Events
	p.Events = nil
	return out
}

func (p *NullPlatform) ReadInput(snap *input.Snapshot) { *snap = p.Input }

func (p *NullPlatform) Renderer() render.Renderer { return p.Screen }
