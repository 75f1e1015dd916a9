package anim

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestPlayer builds a player over blank frames with the given end timestamps.
func newTestPlayer(t *testing.T, timestamps ...int) *Player {
	t.Helper()
	p, err := New(make([]*ebiten.Image, len(timestamps)), timestamps)
	require.NoError(t, err)
	return p
}

func TestNew_DelaysFromTimestamps(t *testing.T) {
	p := newTestPlayer(t, 100, 300, 600)

	assert.Equal(t, 3, p.Len())
	assert.Equal(t, 100, p.Delay(0))
	assert.Equal(t, 200, p.Delay(1))
	assert.Equal(t, 300, p.Delay(2))
	assert.Equal(t, 0, p.Index())
	assert.Equal(t, 100, p.DelayLeft())
}

func TestNew_Errors(t *testing.T) {
	_, err := New(nil, nil)
	assert.ErrorIs(t, err, ErrNoFrames)

	_, err = New(make([]*ebiten.Image, 2), []int{100})
	assert.Error(t, err)
}

func TestAdvance_StepsThroughFrames(t *testing.T) {
	p := newTestPlayer(t, 100, 200, 300)

	assert.Equal(t, 0, p.Advance(50))
	assert.Equal(t, 0, p.Index())
	assert.Equal(t, 50, p.DelayLeft())

	assert.Equal(t, 1, p.Advance(50))
	assert.Equal(t, 1, p.Index())
	assert.Equal(t, 100, p.DelayLeft())

	assert.Equal(t, 1, p.Advance(120))
	assert.Equal(t, 2, p.Index())
	assert.Equal(t, 80, p.DelayLeft(), "overshoot is carried into the next frame")
}

func TestAdvance_AtMostOneFramePerCall(t *testing.T) {
	p := newTestPlayer(t, 10, 20, 30, 40)

	// 1000ms covers every frame many times over, yet only one step is taken.
	assert.Equal(t, 1, p.Advance(1000))
	assert.Equal(t, 1, p.Index())
	assert.Less(t, p.DelayLeft(), 0)

	// Negative remainder keeps stepping one frame per call.
	assert.Equal(t, 1, p.Advance(0))
	assert.Equal(t, 2, p.Index())
}

func TestAdvance_WrapsAround(t *testing.T) {
	p := newTestPlayer(t, 10, 20, 30)
	p.JumpTo(2)

	assert.Equal(t, -2, p.Advance(10))
	assert.Equal(t, 0, p.Index())
}

func TestAdvance_SmallStepsMatchSingleSteps(t *testing.T) {
	timestamps := []int{40, 90, 100, 160, 240}
	coarse := newTestPlayer(t, timestamps...)
	fine := newTestPlayer(t, timestamps...)

	for tick := 0; tick < 100; tick++ {
		coarse.Advance(4)
		for i := 0; i < 4; i++ {
			fine.Advance(1)
		}
		require.Equal(t, fine.Index(), coarse.Index(), "tick %d", tick)
	}
}

func TestEnding(t *testing.T) {
	p := newTestPlayer(t, 100, 200)

	assert.False(t, p.Ending(1000), "not on the last frame")

	p.JumpTo(1)
	assert.False(t, p.Ending(50))
	assert.True(t, p.Ending(100))
	assert.True(t, p.Ending(150))
}

func TestReset(t *testing.T) {
	p := newTestPlayer(t, 100, 200, 300)
	p.Advance(100)
	p.Advance(200)

	p.Reset()
	p.Advance(0)

	assert.Equal(t, 0, p.Index())
	assert.Equal(t, 100, p.DelayLeft())
}

func TestJumpTo(t *testing.T) {
	p := newTestPlayer(t, 100, 200, 300)

	p.JumpTo(2)
	assert.Equal(t, 2, p.Index())
	assert.Equal(t, 100, p.DelayLeft())

	assert.Panics(t, func() { p.JumpTo(3) })
	assert.Panics(t, func() { p.JumpTo(-1) })
}

func TestLimit(t *testing.T) {
	p := newTestPlayer(t, 10, 20, 30, 40)
	p.Limit(2)

	assert.Equal(t, 2, p.Len())
	assert.Equal(t, 4, p.FrameCount())

	p.Advance(10)
	assert.Equal(t, 1, p.Index())
	p.Advance(10)
	assert.Equal(t, 0, p.Index(), "playback wraps at the limit")
	assert.False(t, p.Ending(1000))

	p.JumpTo(1)
	assert.True(t, p.Ending(10))
	assert.Panics(t, func() { p.JumpTo(2) })

	assert.Panics(t, func() { p.Limit(0) })
	assert.Panics(t, func() { p.Limit(5) })
}

func TestRelease(t *testing.T) {
	p := newTestPlayer(t, 10, 20)

	assert.NotPanics(t, p.Release)
	assert.Nil(t, p.FrameAt(1))
}
