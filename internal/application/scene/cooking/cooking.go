// Package cooking provides the gameplay scene: a cutting board with
// ingredients drifting past to the beat of the music.
package cooking

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/cook/internal/application/scene"
	"github.com/younwookim/cook/internal/application/state"
	"github.com/younwookim/cook/internal/domain/anim"
	"github.com/younwookim/cook/internal/domain/entity"
	"github.com/younwookim/cook/internal/infrastructure/media"
)

// Cooking is the gameplay scene.
type Cooking struct {
	*scene.Base
	round *Round

	idle        *anim.Player
	action      *anim.Player
	button      *media.Still
	eyes        *media.Still
	ingredients *media.Still
}

// New loads the cooking scene.
func New(ctx *scene.Context) (scene.Scene, error) {
	cfg := ctx.Config.Cooking
	s := &Cooking{Base: &scene.Base{Ctx: ctx}}

	if err := s.load(ctx); err != nil {
		s.release()
		return nil, err
	}

	// The idle sheet holds the playback frames, then one beat pose per frame
	if n := s.idle.FrameCount(); n < 2 || n%2 != 0 {
		s.release()
		return nil, &media.ResourceError{
			Op:   "load",
			Path: cfg.IdleAnimation,
			Err:  fmt.Errorf("need an even number of frames, got %d", n),
		}
	}
	s.idle.Limit(s.idle.FrameCount() / 2)

	types := s.ingredients.Width / cfg.IngredientWidth
	if types < cfg.CommonTypes {
		s.release()
		return nil, &media.ResourceError{
			Op:   "load",
			Path: cfg.Ingredients,
			Err:  fmt.Errorf("sheet has %d columns, need at least %d", types, cfg.CommonTypes),
		}
	}

	s.round = NewRound(cfg, Setup{
		Idle:   s.idle,
		Action: s.action,
		Types:  types,
		Height: s.ingredients.Height,
		Button: entity.NewButton(cfg.ButtonPos.X, cfg.ButtonPos.Y, s.button.Width, s.button.Height),
	}, ctx.Rand, ctx.Cursor)

	music := ctx.Config.Scenes.Cooking
	s.Music = ctx.Audio.PlayMusic(music.Music, music.Loops)

	ctx.Log.Debug("cooking round ready", "types", types, "rare", types-cfg.CommonTypes)
	return s, nil
}

func (s *Cooking) load(ctx *scene.Context) error {
	cfg := ctx.Config.Cooking
	var err error
	if s.idle, err = ctx.Assets.Animation(cfg.IdleAnimation); err != nil {
		return fmt.Errorf("failed to load idle animation: %w", err)
	}
	if s.action, err = ctx.Assets.Animation(cfg.ActionAnimation); err != nil {
		return fmt.Errorf("failed to load action animation: %w", err)
	}
	if s.button, err = ctx.Assets.Still(cfg.Button); err != nil {
		return fmt.Errorf("failed to load button: %w", err)
	}
	if s.eyes, err = ctx.Assets.Still(cfg.Eyes); err != nil {
		return fmt.Errorf("failed to load eyes: %w", err)
	}
	if s.ingredients, err = ctx.Assets.Still(cfg.Ingredients); err != nil {
		return fmt.Errorf("failed to load ingredients: %w", err)
	}
	return nil
}

func (s *Cooking) release() {
	for _, p := range []*anim.Player{s.idle, s.action} {
		if p != nil {
			p.Release()
		}
	}
	for _, st := range []*media.Still{s.button, s.eyes, s.ingredients} {
		if st != nil {
			st.Release()
		}
	}
	s.idle, s.action = nil, nil
	s.button, s.eyes, s.ingredients = nil, nil, nil
}

// Round returns the running round.
func (s *Cooking) Round() *Round {
	return s.round
}

func (s *Cooking) OnEnter(now int64) {
	s.Base.OnEnter(now)
	s.round.Start(now)
}

func (s *Cooking) OnExit() {
	s.Ctx.Log.Info("round over", "counts", s.round.Counts())
	s.release()
	s.Base.OnExit()
}

func (s *Cooking) Update(delta int, now int64) state.SceneKind {
	if s.Fade.Active() && s.Fade.Tick(now) {
		return state.SceneTransition
	}

	s.round.Tick(delta, now)
	if s.round.Finished() {
		s.BeginFade(now)
	}
	return state.SceneNone
}

func (s *Cooking) MouseDown(x, y int) { s.round.MouseDown(x, y) }
func (s *Cooking) MouseMove(x, y int) { s.round.MouseMove(x, y) }
func (s *Cooking) MouseUp(x, y int)   { s.round.MouseUp(x, y) }

// Draw renders, back to front: white background, eyes, character,
// ingredients, button and the fade mask.
func (s *Cooking) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)

	if target := s.round.Target(); target != nil {
		for _, sp := range EyeSprites(target.Center(), s.round.Beat(), s.eyes.Width) {
			scene.DrawRegion(screen, s.eyes.Image, sp.Src, sp.Dst)
		}
	}

	scene.DrawFull(screen, s.round.Frame())

	w := s.Ctx.Config.Cooking.IngredientWidth
	for _, in := range s.round.Ingredients() {
		if in == nil {
			continue
		}
		src := image.Rect(in.Type*w, 0, in.Type*w+in.Rect.Dx(), in.Rect.Dy())
		scene.DrawRegion(screen, s.ingredients.Image, src, in.Rect)
	}

	if b := s.round.Button(); !b.Hidden {
		scene.DrawRegion(screen, s.button.Image, b.Source(), b.Rect)
	}

	s.Fade.Draw(screen)
}
