// Package anim provides frame-timed playback over a decoded animation.
//
// A Player owns an ordered sequence of frames, each with its own display
// duration in milliseconds, and a playback cursor that is advanced by the
// elapsed time of every tick. The cursor advances at most one frame per
// call to Advance, even when the elapsed time spans several frames.
package anim

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrNoFrames is returned when an animation has no frames to play.
var ErrNoFrames = errors.New("animation has no frames")

// Frame is one decoded image plus its display duration.
type Frame struct {
	Image *ebiten.Image
	Delay int // milliseconds
}

// Player plays back a sequence of frames.
//
// The playback length may be shorter than the number of stored frames, so
// that the frames beyond it can be selected for rendering without ever
// being reached by playback (see Limit and FrameAt).
type Player struct {
	frames []Frame
	length int

	current   int
	delayLeft int
}

// New creates a player from decoded images and their end timestamps.
// The first frame lasts timestamps[0] ms, every following frame lasts the
// difference to the previous timestamp.
func New(images []*ebiten.Image, timestamps []int) (*Player, error) {
	if len(images) == 0 {
		return nil, ErrNoFrames
	}
	if len(images) != len(timestamps) {
		return nil, fmt.Errorf("frame count %d does not match timestamp count %d", len(images), len(timestamps))
	}

	frames := make([]Frame, len(images))
	last := 0
	for i, img := range images {
		frames[i] = Frame{Image: img, Delay: timestamps[i] - last}
		last = timestamps[i]
	}
	p := &Player{frames: frames, length: len(frames)}
	p.Reset()
	return p, nil
}

// Limit restricts playback to the first n frames. Frames past n stay
// reachable through FrameAt.
func (p *Player) Limit(n int) {
	if n < 1 || n > len(p.frames) {
		panic(fmt.Sprintf("anim: playback length %d out of range [1, %d]", n, len(p.frames)))
	}
	p.length = n
	if p.current >= n {
		p.Reset()
	}
}

// Len returns the playback length.
func (p *Player) Len() int {
	return p.length
}

// FrameCount returns the number of stored frames, including those past the
// playback length.
func (p *Player) FrameCount() int {
	return len(p.frames)
}

// Index returns the current frame index.
func (p *Player) Index() int {
	return p.current
}

// DelayLeft returns the milliseconds left on the current frame.
func (p *Player) DelayLeft() int {
	return p.delayLeft
}

// Delay returns the full duration of frame i.
func (p *Player) Delay(i int) int {
	return p.frames[i].Delay
}

// Current returns the image of the current frame.
func (p *Player) Current() *ebiten.Image {
	return p.frames[p.current].Image
}

// FrameAt returns the image of any stored frame.
func (p *Player) FrameAt(i int) *ebiten.Image {
	return p.frames[i].Image
}

// Advance consumes delta milliseconds and moves to the next frame when the
// current one has run out. It returns the signed change of the frame index,
// which is negative when playback wraps around.
func (p *Player) Advance(delta int) int {
	last := p.current
	p.delayLeft -= delta
	if p.delayLeft <= 0 {
		p.current = (p.current + 1) % p.length
		p.delayLeft += p.frames[p.current].Delay
	}
	return p.current - last
}

// Ending reports whether the next Advance of delta ms rolls past the last
// frame.
func (p *Player) Ending(delta int) bool {
	return p.current == p.length-1 && p.delayLeft <= delta
}

// Reset rewinds to the first frame.
func (p *Player) Reset() {
	p.JumpTo(0)
}

// JumpTo moves to frame i with its full duration.
func (p *Player) JumpTo(i int) {
	if i < 0 || i >= p.length {
		panic(fmt.Sprintf("anim: frame %d out of range [0, %d)", i, p.length))
	}
	p.current = i
	p.delayLeft = p.frames[i].Delay
}

// Release deallocates the frame images. The player must not be used
// afterwards.
func (p *Player) Release() {
	for i := range p.frames {
		if img := p.frames[i].Image; img != nil {
			img.Deallocate()
		}
		p.frames[i].Image = nil
	}
}
