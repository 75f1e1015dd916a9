package replay

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/cook/internal/application/game"
	"github.com/younwookim/cook/internal/application/scene"
	"github.com/younwookim/cook/internal/application/scene/cooking"
	"github.com/younwookim/cook/internal/application/scene/cutscene"
	"github.com/younwookim/cook/internal/application/scene/scenetest"
	"github.com/younwookim/cook/internal/application/state"
	"github.com/younwookim/cook/internal/application/system"
)

func testData() ReplayData {
	return ReplayData{
		Version: Version,
		Seed:    42,
		Ticks: []TickInput{
			{N: 100, D: 0, E: []system.Event{{Kind: system.MouseMove, X: 100, Y: 100}}, M: true},
			{N: 116, D: 16, M: true},
			{N: 133, D: 17, E: []system.Event{{Kind: system.MouseDown, X: 100, Y: 100}, {Kind: system.MouseUp, X: 100, Y: 100}}},
		},
	}
}

func TestReplayer_ClockAndInput(t *testing.T) {
	r := NewReplayer(testData())

	assert.Equal(t, 3, r.TotalTicks())
	assert.Equal(t, int64(42), r.Seed())

	assert.False(t, r.Closing())
	assert.Equal(t, int64(100), r.Now())
	assert.Equal(t, int64(100), r.Now(), "Now does not advance")
	assert.Len(t, r.Poll(), 1)

	assert.Equal(t, int64(116), r.Now())
	assert.Empty(t, r.Poll())

	assert.Equal(t, int64(133), r.Now())
	events := r.Poll()
	require.Len(t, events, 2)
	assert.Equal(t, system.MouseDown, events[0].Kind)
	assert.Equal(t, 3, r.CurrentTick())

	// End of ticks
	assert.True(t, r.Closing())
	assert.Nil(t, r.Poll())
	assert.Equal(t, int64(133), r.Now())
}

func TestReplayer_Empty(t *testing.T) {
	r := NewReplayer(ReplayData{})

	assert.True(t, r.Closing())
	assert.Equal(t, int64(0), r.Now())
}

func TestReplayer_AudioServesRecordedMusic(t *testing.T) {
	ctx := scenetest.NewContext(1)
	r := NewReplayer(testData())
	audio := r.Audio(ctx.Audio)

	assert.False(t, audio.IsMusicPlaying(), "nothing polled yet")

	track := audio.PlayMusic("sounds/intro.ogg", -1)
	require.NotNil(t, track, "playback goes to the live audio")
	ctx.Audio.Playing = false

	want := []bool{true, true, false}
	for i, playing := range want {
		r.Poll()
		assert.Equal(t, playing, audio.IsMusicPlaying(), "tick %d", i)
	}
	assert.False(t, ctx.Audio.IsMusicPlaying())
}

func TestRecorder_Record(t *testing.T) {
	rec := NewRecorder(7)
	events := []system.Event{{Kind: system.MouseMove, X: 1, Y: 2}}

	rec.Record(16, 16, events, true)
	rec.Record(32, 16, nil, false)
	events[0].X = 99 // recorder keeps its own copy

	data := rec.Data()
	assert.Equal(t, Version, data.Version)
	assert.Equal(t, int64(7), data.Seed)
	require.Equal(t, 2, rec.TickCount())
	assert.Equal(t, 1, data.Ticks[0].E[0].X)
	assert.True(t, data.Ticks[0].M)
	assert.Nil(t, data.Ticks[1].E)
	assert.False(t, data.Ticks[1].M)

	rec.Stop()
	rec.Record(48, 16, nil, true)
	assert.Equal(t, 2, rec.TickCount(), "stopped recorder ignores ticks")
}

func TestRecorder_SaveLoad(t *testing.T) {
	rec := NewRecorder(42)
	for _, tick := range testData().Ticks {
		rec.Record(tick.N, tick.D, tick.E, tick.M)
	}
	path := filepath.Join(t.TempDir(), "session.json")

	require.NoError(t, rec.Save(path))
	loaded, err := LoadReplay(path)
	require.NoError(t, err)

	assert.Equal(t, int64(42), loaded.Seed)
	assert.Equal(t, testData().Ticks, loaded.Ticks)
}

func TestRecorder_SaveEmpty(t *testing.T) {
	err := NewRecorder(1).Save(filepath.Join(t.TempDir(), "empty.json"))
	assert.Error(t, err)
}

func TestLoadReplay_Errors(t *testing.T) {
	_, err := LoadReplay(filepath.Join(t.TempDir(), "none.json"))
	assert.Error(t, err)
}

type scriptedClock struct {
	now int64
}

func (c *scriptedClock) Now() int64 { return c.now }

// frameTime returns uneven frame times of 16 to 18ms.
func frameTime(n int) int64 {
	return int64(16 + n%3)
}

type scriptedInput struct {
	ticks [][]system.Event
}

func (i *scriptedInput) Poll() []system.Event {
	if len(i.ticks) == 0 {
		return nil
	}
	events := i.ticks[0]
	i.ticks = i.ticks[1:]
	return events
}

func (i *scriptedInput) Closing() bool { return false }

// session is the observable end state of a cooking round.
type session struct {
	counts []int
	xs     []int
	hand   bool
}

func runCooking(t *testing.T, seed int64, clock game.Clock, input game.Input, ticks int, rec game.Recorder, step func()) session {
	t.Helper()
	ctx := scenetest.NewContext(seed)
	var current *cooking.Cooking
	factories := game.Factories{
		state.SceneCooking: func(c *scene.Context) (scene.Scene, error) {
			s, err := cooking.New(c)
			if err == nil {
				current = s.(*cooking.Cooking)
			}
			return s, err
		},
	}
	g, err := game.New(ctx.Context, factories, state.SceneCooking, clock, input)
	require.NoError(t, err)
	if rec != nil {
		g.SetRecorder(rec)
	}
	for i := 0; i < ticks; i++ {
		step()
		require.NoError(t, g.Update())
	}

	out := session{counts: current.Round().Counts(), hand: current.Round().Hand()}
	for _, in := range current.Round().Ingredients() {
		if in != nil {
			out.xs = append(out.xs, in.Rect.Min.X)
		}
	}
	return out
}

func TestReplay_ReproducesSession(t *testing.T) {
	const seed, ticks = 99, 400

	clock := &scriptedClock{}
	script := make([][]system.Event, ticks)
	for i := range script {
		switch i % 50 {
		case 10:
			script[i] = []system.Event{{Kind: system.MouseMove, X: 200 - i/4, Y: 20}}
		case 11:
			script[i] = []system.Event{{Kind: system.MouseDown, X: 200 - i/4, Y: 20}}
		case 30:
			script[i] = []system.Event{{Kind: system.MouseMove, X: 90, Y: 140}, {Kind: system.MouseUp, X: 90, Y: 140}}
		}
	}
	rec := NewRecorder(seed)
	n := 0
	recorded := runCooking(t, seed, clock, &scriptedInput{ticks: script}, ticks, rec, func() {
		clock.now += frameTime(n)
		n++
	})
	require.Equal(t, ticks, rec.TickCount())
	require.NotEmpty(t, recorded.xs, "ingredients spawned during the session")

	replayer := NewReplayer(rec.Data())
	replayed := runCooking(t, replayer.Seed(), replayer, replayer, replayer.TotalTicks(), nil, func() {})

	assert.Equal(t, recorded, replayed)
	assert.True(t, replayer.Closing(), "replay ends with the recording")
}

// runCutscenes runs the transition and outro, stepping before every tick,
// and returns the running scene after each tick.
func runCutscenes(t *testing.T, ctx *scenetest.Context, clock game.Clock, input game.Input, ticks int, rec game.Recorder, step func(tick int)) []state.SceneKind {
	t.Helper()
	factories := game.Factories{
		state.SceneTransition: cutscene.NewTransition,
		state.SceneOutro:      cutscene.NewOutro,
		state.SceneIntro:      cutscene.NewIntro,
	}
	g, err := game.New(ctx.Context, factories, state.SceneTransition, clock, input)
	require.NoError(t, err)
	if rec != nil {
		g.SetRecorder(rec)
	}

	kinds := make([]state.SceneKind, 0, ticks)
	for i := 0; i < ticks; i++ {
		step(i)
		require.NoError(t, g.Update())
		kinds = append(kinds, g.Current())
	}
	return kinds
}

func firstTick(kinds []state.SceneKind, kind state.SceneKind) int {
	for i, k := range kinds {
		if k == kind {
			return i
		}
	}
	return -1
}

func TestReplay_TransitionFollowsRecordedMusic(t *testing.T) {
	const seed, ticks, musicEnds = 5, 400, 150

	ctx := scenetest.NewContext(seed)
	clock := &scriptedClock{}
	rec := NewRecorder(seed)
	recorded := runCutscenes(t, ctx, clock, &scriptedInput{}, ticks, rec, func(tick int) {
		clock.now += frameTime(tick)
		if tick == musicEnds {
			ctx.Audio.Playing = false
		}
	})
	outro := firstTick(recorded, state.SceneOutro)
	require.Greater(t, outro, musicEnds, "transition waits for the music")

	// The replaying device finishes the track much earlier
	replayer := NewReplayer(rec.Data())
	live := scenetest.NewContext(seed)
	live.Context.Audio = replayer.Audio(live.Audio)
	replayed := runCutscenes(t, live, replayer, replayer, replayer.TotalTicks(), nil, func(tick int) {
		if tick == 20 {
			live.Audio.Playing = false
		}
	})

	assert.Equal(t, recorded, replayed)
	assert.Equal(t, outro, firstTick(replayed, state.SceneOutro))
}
