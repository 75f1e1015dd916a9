package scene

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/cook/internal/domain/anim"
	"github.com/younwookim/cook/internal/infrastructure/config"
	"github.com/younwookim/cook/internal/infrastructure/media"
)

// Base holds what every scene shares: an animation, optional background
// music, the activation time and the fade-out. Embedding it gives a scene
// no-op mouse handlers, full-screen drawing and resource release.
type Base struct {
	Ctx       *Context
	Anim      *anim.Player
	Music     media.Track // nil without audio
	StartTime int64
	Fade      Fade
}

// NewBase loads the scene's animation and starts its music.
func NewBase(ctx *Context, assets config.SceneAssets) (*Base, error) {
	player, err := ctx.Assets.Animation(assets.Animation)
	if err != nil {
		return nil, fmt.Errorf("failed to load scene animation: %w", err)
	}
	return &Base{
		Ctx:   ctx,
		Anim:  player,
		Music: ctx.Audio.PlayMusic(assets.Music, assets.Loops),
	}, nil
}

// OnEnter records the activation time.
func (b *Base) OnEnter(now int64) {
	b.StartTime = now
}

// OnExit releases the animation and music and restores the default cursor.
func (b *Base) OnExit() {
	if b.Anim != nil {
		b.Anim.Release()
		b.Anim = nil
	}
	b.CloseMusic()
	b.Ctx.Cursor.SetHand(false)
}

// CloseMusic stops and releases the scene's music.
func (b *Base) CloseMusic() {
	if b.Music != nil {
		if err := b.Music.Close(); err != nil {
			b.Ctx.Log.Warn("failed to close music", "error", err)
		}
		b.Music = nil
	}
}

// BeginFade starts the fade-out, fading the music with it.
func (b *Base) BeginFade(now int64) {
	b.Fade.Begin(now, b.Ctx.Audio, b.Ctx.Config.Audio.FadeOutMs)
}

// MusicDone reports whether the scene's music has finished. A scene
// without music has nothing playing, since the previous scene closed its
// track on exit.
func (b *Base) MusicDone() bool {
	return !b.Ctx.Audio.IsMusicPlaying()
}

// Draw renders the current frame over the whole screen, then the fade mask.
func (b *Base) Draw(screen *ebiten.Image) {
	DrawFull(screen, b.Anim.Current())
	b.Fade.Draw(screen)
}

func (b *Base) MouseDown(x, y int) {}
func (b *Base) MouseMove(x, y int) {}
func (b *Base) MouseUp(x, y int)   {}

// DrawFull draws img stretched over the whole screen.
func DrawFull(screen, img *ebiten.Image) {
	if img == nil {
		return
	}
	sb, ib := screen.Bounds(), img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(sb.Dx())/float64(ib.Dx()), float64(sb.Dy())/float64(ib.Dy()))
	op.GeoM.Translate(float64(sb.Min.X), float64(sb.Min.Y))
	screen.DrawImage(img, op)
}

// DrawRegion draws the src region of a sheet into dst on the screen.
func DrawRegion(screen, sheet *ebiten.Image, src, dst image.Rectangle) {
	if sheet == nil || src.Empty() || dst.Empty() {
		return
	}
	sub, ok := sheet.SubImage(src).(*ebiten.Image)
	if !ok {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(dst.Dx())/float64(src.Dx()), float64(dst.Dy())/float64(src.Dy()))
	op.GeoM.Translate(float64(dst.Min.X), float64(dst.Min.Y))
	screen.DrawImage(sub, op)
}
