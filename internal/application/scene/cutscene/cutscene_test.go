package cutscene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/cook/internal/application/scene"
	"github.com/younwookim/cook/internal/application/scene/scenetest"
	"github.com/younwookim/cook/internal/application/state"
)

const tick = 100

// play runs n updates of tick ms starting after now and returns the time of
// the last one.
func play(t *testing.T, s scene.Scene, now int64, n int) int64 {
	t.Helper()
	for i := 0; i < n; i++ {
		now += tick
		require.Equal(t, state.SceneNone, s.Update(tick, now), "update at %d", now)
	}
	return now
}

func TestIntro_PlaysOnceThenFades(t *testing.T) {
	ctx := scenetest.NewContext(1)
	s, err := NewIntro(ctx.Context)
	require.NoError(t, err)
	intro := s.(*Intro)
	intro.OnEnter(0)

	now := play(t, s, 0, 3)
	assert.Equal(t, 3, intro.Anim.Index())
	assert.False(t, intro.Fade.Active())

	now = play(t, s, now, 1)
	require.True(t, intro.Fade.Active(), "last frame begins the fade")
	assert.Equal(t, now, intro.Fade.Start())
	assert.Equal(t, []int{ctx.Config.Audio.FadeOutMs}, ctx.Audio.FadeMs)

	start := now
	assert.Equal(t, state.SceneNone, s.Update(tick, start+1531))
	assert.Equal(t, 3, intro.Anim.Index(), "parked on the last frame")
	assert.Equal(t, state.SceneCooking, s.Update(tick, start+1532))
}

func TestIntro_ClickSkips(t *testing.T) {
	ctx := scenetest.NewContext(1)
	s, err := NewIntro(ctx.Context)
	require.NoError(t, err)
	intro := s.(*Intro)

	s.MouseDown(10, 10)
	s.Update(16, 50)

	assert.True(t, intro.Fade.Active())
	assert.Equal(t, int64(50), intro.Fade.Start())
}

func TestIntro_HandCursorUntilExit(t *testing.T) {
	ctx := scenetest.NewContext(1)
	s, err := NewIntro(ctx.Context)
	require.NoError(t, err)
	assert.True(t, ctx.Cursor.Hand)

	s.OnExit()
	assert.False(t, ctx.Cursor.Hand)
	assert.True(t, ctx.Audio.Played[0].Closed)
}

func TestIntro_MissingAsset(t *testing.T) {
	ctx := scenetest.NewContext(1)
	delete(ctx.Assets.Animations, ctx.Config.Scenes.Intro.Animation)

	_, err := NewIntro(ctx.Context)
	assert.Error(t, err)
	assert.False(t, ctx.Cursor.Hand)
}

func TestTransition_WaitsForMusic(t *testing.T) {
	ctx := scenetest.NewContext(1)
	s, err := NewTransition(ctx.Context)
	require.NoError(t, err)
	tr := s.(*Transition)
	assert.Equal(t, 2, tr.RewindTo(), "12 frames, rewind 9")

	now := play(t, s, 0, 11)
	require.Equal(t, 11, tr.Anim.Index())

	now = play(t, s, now, 1)
	assert.Equal(t, 2, tr.Anim.Index(), "rewound instead of looping")
	assert.False(t, tr.Fade.Active(), "music still playing")

	ctx.Audio.Playing = false
	now = play(t, s, now, 9)
	require.Equal(t, 11, tr.Anim.Index())
	assert.False(t, tr.Fade.Active(), "music is only polled at the loop point")

	now = play(t, s, now, 1)
	assert.True(t, tr.Fade.Active())
	assert.Equal(t, now, tr.Fade.Start())

	assert.Equal(t, state.SceneOutro, s.Update(tick, now+1532))
}

func TestTransition_NoAudioFadesAtFirstLoop(t *testing.T) {
	ctx := scenetest.NewContext(1)
	ctx.Audio.Disabled = true
	s, err := NewTransition(ctx.Context)
	require.NoError(t, err)
	tr := s.(*Transition)

	now := play(t, s, 0, 11)
	assert.False(t, tr.Fade.Active())

	now = play(t, s, now, 1)
	assert.True(t, tr.Fade.Active(), "no music short-circuits the wait")
	assert.Equal(t, 2, tr.Anim.Index())

	// animation keeps running during the fade
	play(t, s, now, 1)
	assert.Equal(t, 3, tr.Anim.Index())
}

func TestTransition_RewindClampsToFirstFrame(t *testing.T) {
	ctx := scenetest.NewContext(1)
	ctx.Config.Scenes.Transition.RewindFrames = 50

	s, err := NewTransition(ctx.Context)
	require.NoError(t, err)
	assert.Equal(t, 0, s.(*Transition).RewindTo())
}

func TestOutro_FreezesWhileFading(t *testing.T) {
	ctx := scenetest.NewContext(1)
	s, err := NewOutro(ctx.Context)
	require.NoError(t, err)
	outro := s.(*Outro)
	assert.False(t, ctx.Cursor.Hand)

	now := play(t, s, 0, 4)
	require.True(t, outro.Fade.Active())
	assert.Equal(t, 3, outro.Anim.Index())
	delayLeft := outro.Anim.DelayLeft()

	play(t, s, now, 5)
	assert.Equal(t, delayLeft, outro.Anim.DelayLeft(), "animation frozen")

	assert.Equal(t, state.SceneIntro, s.Update(tick, outro.Fade.Start()+1532))
}

func TestOutro_ClickDoesNotSkip(t *testing.T) {
	ctx := scenetest.NewContext(1)
	s, err := NewOutro(ctx.Context)
	require.NoError(t, err)

	s.MouseDown(10, 10)
	s.MouseUp(10, 10)
	s.Update(16, 16)

	assert.False(t, s.(*Outro).Fade.Active())
}
