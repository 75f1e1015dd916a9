package scene

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// FadeHoldAlpha is how far below zero the raw alpha must fall before the
// fade completes, holding the fully white screen for about half a second.
const FadeHoldAlpha = -128

// Fade is the whiteout transition at the end of a scene.
//
// The alpha drops one unit every 4ms from 255 and is quantized to steps of
// 32. Once it would pass zero the screen stays white until the raw alpha
// reaches FadeHoldAlpha, then the fade reports completion.
type Fade struct {
	active bool
	start  int64
	alpha  int
}

// Begin starts the fade at now and fades out the music over fadeMs. It is a
// no-op while a fade is already running.
func (f *Fade) Begin(now int64, audio Audio, fadeMs int) {
	if f.active {
		return
	}
	if audio != nil {
		audio.FadeOutMusic(fadeMs)
	}
	f.active = true
	f.alpha = 255
	f.start = now
}

// Active reports whether a fade is running.
func (f *Fade) Active() bool {
	return f.active
}

// Start returns the time the fade began.
func (f *Fade) Start() int64 {
	return f.start
}

// Alpha returns the current quantized scene alpha, 255 = fully visible.
func (f *Fade) Alpha() int {
	return f.alpha
}

// Tick updates the alpha for time now and reports whether the fade is
// complete.
func (f *Fade) Tick(now int64) bool {
	raw := 255 - int((now-f.start)>>2)
	if raw < 0 {
		return raw <= FadeHoldAlpha
	}
	f.alpha = (raw >> 5) << 5
	return false
}

// Draw covers the screen with white at 255 - alpha.
func (f *Fade) Draw(screen *ebiten.Image) {
	if !f.Active() {
		return
	}
	b := screen.Bounds()
	mask := color.NRGBA{255, 255, 255, uint8(255 - f.alpha)}
	vector.DrawFilledRect(screen, float32(b.Min.X), float32(b.Min.Y), float32(b.Dx()), float32(b.Dy()), mask, false)
}
