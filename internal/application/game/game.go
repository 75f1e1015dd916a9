// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/cook/internal/application/scene"
	"github.com/younwookim/cook/internal/application/state"
	"github.com/younwookim/cook/internal/application/system"
)

// Clock reports milliseconds since the game started.
type Clock interface {
	Now() int64
}

// Input delivers mouse events. Poll is called once per tick, after Now.
type Input interface {
	Poll() []system.Event
	Closing() bool
}

// Recorder receives every tick's time, input and the music state the
// scenes see during that tick.
type Recorder interface {
	Record(now int64, delta int, events []system.Event, music bool)
}

// Factories maps each scene kind to its constructor.
type Factories map[state.SceneKind]scene.Factory

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	ctx       *scene.Context
	audio     *tickAudio
	factories Factories
	first     state.SceneKind
	clock     Clock
	input     Input
	recorder  Recorder

	current scene.Scene
	kind    state.SceneKind
	started bool
	last    int64
	screenW int
	screenH int
}

// New creates a new Game that starts with the first scene. The scene is
// built on the first Update, once the window is up, so that loading time
// does not count as elapsed scene time.
//
// Scenes get a copy of ctx whose Audio reports the music state sampled
// once per tick.
func New(ctx *scene.Context, factories Factories, first state.SceneKind, clock Clock, input Input) (*Game, error) {
	if _, ok := factories[first]; !ok {
		return nil, fmt.Errorf("no scene registered for %s", first)
	}

	audio := &tickAudio{Audio: ctx.Audio}
	sceneCtx := *ctx
	sceneCtx.Audio = audio

	return &Game{
		ctx:       &sceneCtx,
		audio:     audio,
		factories: factories,
		first:     first,
		clock:     clock,
		input:     input,
		screenW:   ctx.Config.Display.ScreenWidth,
		screenH:   ctx.Config.Display.ScreenHeight,
	}, nil
}

// SetRecorder records every following tick.
func (g *Game) SetRecorder(r Recorder) {
	g.recorder = r
}

// Current returns the kind of the running scene.
func (g *Game) Current() state.SceneKind {
	return g.kind
}

// Update polls input, updates the current scene and handles scene
// transitions. Implements ebiten.Game interface.
func (g *Game) Update() error {
	if g.input.Closing() {
		g.Close()
		return ebiten.Termination
	}

	now := g.clock.Now()
	if !g.started {
		g.started = true
		g.last = now
		if err := g.enter(g.first, now); err != nil {
			return err
		}
	}
	delta := int(now - g.last)
	g.last = now

	events := g.input.Poll()
	for _, e := range events {
		g.dispatch(e)
	}

	// Fades started by this update are timed from now
	g.audio.Update(now)
	music := g.audio.latch()
	if g.recorder != nil {
		g.recorder.Record(now, delta, events, music)
	}

	next := g.current.Update(delta, now)
	if next == state.SceneNone {
		return nil
	}

	g.current.OnExit()
	g.current = nil
	return g.enter(next, now)
}

func (g *Game) dispatch(e system.Event) {
	switch e.Kind {
	case system.MouseDown:
		g.current.MouseDown(e.X, e.Y)
	case system.MouseMove:
		g.current.MouseMove(e.X, e.Y)
	case system.MouseUp:
		g.current.MouseUp(e.X, e.Y)
	}
}

func (g *Game) enter(kind state.SceneKind, now int64) error {
	factory, ok := g.factories[kind]
	if !ok {
		return fmt.Errorf("no scene registered for %s", kind)
	}

	s, err := factory(g.ctx)
	if err != nil {
		return fmt.Errorf("failed to create %s scene: %w", kind, err)
	}

	g.current = s
	g.kind = kind
	s.OnEnter(now)
	g.ctx.Log.Info("scene started", "scene", kind, "at", now)
	return nil
}

// Close exits the current scene, releasing its resources.
func (g *Game) Close() {
	if g.current != nil {
		g.current.OnExit()
		g.current = nil
	}
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.current != nil {
		g.current.Draw(screen)
	}
}

// Layout returns the game's logical screen dimensions. Window resizes only
// change the scaling.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SystemClock measures wall-clock time from its creation.
type SystemClock struct {
	start time.Time
}

// NewSystemClock starts a clock at zero.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

func (c *SystemClock) Now() int64 {
	return time.Since(c.start).Milliseconds()
}

// tickAudio reports the music state sampled by latch until the next
// sample, so a scene sees one value for the whole tick and a recording
// holds exactly what the scenes saw.
type tickAudio struct {
	scene.Audio
	playing bool
}

func (a *tickAudio) latch() bool {
	a.playing = a.Audio.IsMusicPlaying()
	return a.playing
}

func (a *tickAudio) IsMusicPlaying() bool {
	return a.playing
}
