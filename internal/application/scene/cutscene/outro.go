package cutscene

import (
	"github.com/younwookim/cook/internal/application/scene"
	"github.com/younwookim/cook/internal/application/state"
)

// Outro plays the closing animation once and returns to the intro. It
// cannot be skipped.
type Outro struct {
	*scene.Base
}

// NewOutro loads the outro scene.
func NewOutro(ctx *scene.Context) (scene.Scene, error) {
	base, err := scene.NewBase(ctx, ctx.Config.Scenes.Outro)
	if err != nil {
		return nil, err
	}
	return &Outro{Base: base}, nil
}

func (s *Outro) Update(delta int, now int64) state.SceneKind {
	switch {
	case s.Fade.Active():
		if s.Fade.Tick(now) {
			return state.SceneIntro
		}
	case s.Anim.Ending(delta):
		s.BeginFade(now)
	default:
		s.Anim.Advance(delta)
	}
	return state.SceneNone
}
