package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/younwookim/cook/internal/application/scene"
	"github.com/younwookim/cook/internal/application/system"
)

// Replayer plays recorded ticks back as the game's clock, input and music
// state. The game reads Now before Poll on every tick and Poll moves to
// the next tick. Closing reports true once every tick was played.
type Replayer struct {
	data ReplayData
	tick int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// Now returns the time of the tick the next Poll delivers, or of the last
// tick once the recording is exhausted.
func (r *Replayer) Now() int64 {
	ticks := r.data.Ticks
	if len(ticks) == 0 {
		return 0
	}
	if r.tick >= len(ticks) {
		return ticks[len(ticks)-1].N
	}
	return ticks[r.tick].N
}

// Poll returns the events of the current tick and advances
func (r *Replayer) Poll() []system.Event {
	if r.tick >= len(r.data.Ticks) {
		return nil
	}
	events := r.data.Ticks[r.tick].E
	r.tick++
	return events
}

// Closing reports whether the recording is exhausted
func (r *Replayer) Closing() bool {
	return r.tick >= len(r.data.Ticks)
}

// CurrentTick returns the number of ticks played
func (r *Replayer) CurrentTick() int {
	return r.tick
}

// TotalTicks returns the total number of ticks
func (r *Replayer) TotalTicks() int {
	return len(r.data.Ticks)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// musicPlaying returns the music state recorded for the last polled tick.
func (r *Replayer) musicPlaying() bool {
	if r.tick == 0 {
		return false
	}
	return r.data.Ticks[r.tick-1].M
}

// Audio wraps live so that music plays as usual but IsMusicPlaying reports
// the recorded state. The audio device may finish a track on a different
// tick than it did while recording.
func (r *Replayer) Audio(live scene.Audio) scene.Audio {
	return &replayAudio{Audio: live, replayer: r}
}

type replayAudio struct {
	scene.Audio
	replayer *Replayer
}

func (a *replayAudio) IsMusicPlaying() bool {
	return a.replayer.musicPlaying()
}
