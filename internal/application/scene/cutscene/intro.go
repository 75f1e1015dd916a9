// Package cutscene implements the non-interactive scenes: the intro, the
// transition out of the cooking round and the outro.
//
// Each one plays a single animation with its own music and ends with a
// fade to white. Intro and Transition can be skipped with a click.
package cutscene

import (
	"github.com/younwookim/cook/internal/application/scene"
	"github.com/younwookim/cook/internal/application/state"
)

// Intro plays the opening animation once, then hands over to the cooking
// round.
type Intro struct {
	*scene.Base
	skip bool
}

// NewIntro loads the intro scene.
func NewIntro(ctx *scene.Context) (scene.Scene, error) {
	base, err := scene.NewBase(ctx, ctx.Config.Scenes.Intro)
	if err != nil {
		return nil, err
	}
	ctx.Cursor.SetHand(true)
	return &Intro{Base: base}, nil
}

func (s *Intro) Update(delta int, now int64) state.SceneKind {
	if s.Fade.Active() && s.Fade.Tick(now) {
		return state.SceneCooking
	}
	if s.skip {
		s.BeginFade(now)
	}

	// The last frame stays up while the fade runs
	if s.Anim.Ending(delta) {
		s.BeginFade(now)
	} else {
		s.Anim.Advance(delta)
	}
	return state.SceneNone
}

// MouseDown skips to the fade-out on the next update.
func (s *Intro) MouseDown(x, y int) {
	s.skip = true
}
