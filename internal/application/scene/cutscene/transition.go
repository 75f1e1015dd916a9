package cutscene

import (
	"github.com/younwookim/cook/internal/application/scene"
	"github.com/younwookim/cook/internal/application/state"
)

// Transition plays the end of the cooking round. When its animation runs
// out it replays the last few frames until the music has finished, then
// fades to the outro.
type Transition struct {
	*scene.Base
	rewindTo int
	skip     bool
}

// NewTransition loads the transition scene.
func NewTransition(ctx *scene.Context) (scene.Scene, error) {
	cfg := ctx.Config.Scenes.Transition
	base, err := scene.NewBase(ctx, cfg.SceneAssets)
	if err != nil {
		return nil, err
	}
	ctx.Cursor.SetHand(true)
	return &Transition{
		Base:     base,
		rewindTo: max(0, base.Anim.Len()-1-cfg.RewindFrames),
	}, nil
}

func (s *Transition) Update(delta int, now int64) state.SceneKind {
	if s.Fade.Active() && s.Fade.Tick(now) {
		return state.SceneOutro
	}
	if s.skip {
		s.BeginFade(now)
	}

	if s.Anim.Ending(delta) {
		s.Anim.JumpTo(s.rewindTo)
		// Polled once per loop, so the fade may start up to one loop after
		// the music ends
		if s.MusicDone() {
			s.BeginFade(now)
		}
	} else {
		s.Anim.Advance(delta)
	}
	return state.SceneNone
}

// RewindTo returns the frame playback restarts from after the last frame.
func (s *Transition) RewindTo() int {
	return s.rewindTo
}

// MouseDown skips to the fade-out on the next update.
func (s *Transition) MouseDown(x, y int) {
	s.skip = true
}
