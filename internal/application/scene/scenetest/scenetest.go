// Package scenetest provides in-memory collaborators for scene tests. None
// of them touch the graphics or audio device.
package scenetest

import (
	"bytes"
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/cook/internal/application/scene"
	"github.com/younwookim/cook/internal/domain/anim"
	"github.com/younwookim/cook/internal/infrastructure/config"
	"github.com/younwookim/cook/internal/infrastructure/media"
)

// Assets serves animations and stills from maps. Images are nil.
type Assets struct {
	// Animations maps a path to the frame end timestamps of its animation.
	Animations map[string][]int
	// Stills maps a path to its pixel size.
	Stills map[string][2]int

	Loaded []string
}

func (a *Assets) Animation(path string) (*anim.Player, error) {
	ts, ok := a.Animations[path]
	if !ok {
		return nil, &media.ResourceError{Op: "open", Path: path, Err: fmt.Errorf("not found")}
	}
	a.Loaded = append(a.Loaded, path)
	return anim.New(make([]*ebiten.Image, len(ts)), ts)
}

func (a *Assets) Still(path string) (*media.Still, error) {
	size, ok := a.Stills[path]
	if !ok {
		return nil, &media.ResourceError{Op: "open", Path: path, Err: fmt.Errorf("not found")}
	}
	a.Loaded = append(a.Loaded, path)
	return &media.Still{Width: size[0], Height: size[1]}, nil
}

// Track is a fake music handle.
type Track struct {
	Path   string
	Loops  int
	Closed bool
	audio  *Audio
}

func (t *Track) Close() error {
	t.Closed = true
	if t.audio.Current == t {
		t.audio.Current = nil
	}
	return nil
}

// Audio records music calls. With Disabled set, PlayMusic returns nil.
type Audio struct {
	Disabled bool
	Playing  bool // value reported by IsMusicPlaying while a track is current

	Current *Track
	Played  []*Track
	FadeMs  []int
	Now     int64
}

func (a *Audio) PlayMusic(path string, loops int) media.Track {
	if a.Disabled {
		return nil
	}
	t := &Track{Path: path, Loops: loops, audio: a}
	a.Current = t
	a.Played = append(a.Played, t)
	a.Playing = true
	return t
}

func (a *Audio) FadeOutMusic(ms int) {
	a.FadeMs = append(a.FadeMs, ms)
}

func (a *Audio) IsMusicPlaying() bool {
	return a.Current != nil && a.Playing
}

func (a *Audio) Update(now int64) {
	a.Now = now
}

// Cursor records cursor changes.
type Cursor struct {
	Hand    bool
	Changes int
}

func (c *Cursor) SetHand(hand bool) {
	c.Hand = hand
	c.Changes++
}

// Context bundles the fakes with a scene.Context.
type Context struct {
	*scene.Context
	Assets *Assets
	Audio  *Audio
	Cursor *Cursor
	Logs   *bytes.Buffer
}

// NewContext returns a context over the default config, a seeded RNG and
// assets for every path the default config names. Animations have 4
// frames of 100ms except the idle animation, which has 8 (4 playback
// frames followed by 4 beat poses), and the transition, which has 12.
func NewContext(seed int64) *Context {
	cfg := config.Default()
	four := []int{100, 200, 300, 400}

	assets := &Assets{
		Animations: map[string][]int{
			cfg.Scenes.Intro.Animation:      four,
			cfg.Scenes.Outro.Animation:      four,
			cfg.Scenes.Transition.Animation: {100, 200, 300, 400, 500, 600, 700, 800, 900, 1000, 1100, 1200},
			cfg.Cooking.IdleAnimation:       {100, 200, 300, 400, 500, 600, 700, 800},
			cfg.Cooking.ActionAnimation:     four,
		},
		Stills: map[string][2]int{
			cfg.Cooking.Button:      {80, 30},
			cfg.Cooking.Eyes:        {16, 96},
			cfg.Cooking.Ingredients: {15 * cfg.Cooking.IngredientWidth, 40}, // 10 common + 5 rare
		},
	}
	audio := &Audio{}
	cursor := &Cursor{}
	logs := &bytes.Buffer{}

	return &Context{
		Context: &scene.Context{
			Assets: assets,
			Audio:  audio,
			Cursor: cursor,
			Rand:   rand.New(rand.NewSource(seed)),
			Log:    log.New(logs),
			Config: cfg,
		},
		Assets: assets,
		Audio:  audio,
		Cursor: cursor,
		Logs:   logs,
	}
}
