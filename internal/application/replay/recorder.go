package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/cook/internal/application/system"
)

// Recorder handles input recording for replay
type Recorder struct {
	data      ReplayData
	recording bool
}

// NewRecorder creates a new recorder with seed for deterministic replay
func NewRecorder(seed int64) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   Version,
			Seed:      seed,
			StartTime: time.Now().Format(time.RFC3339),
			Ticks:     make([]TickInput, 0, 3600), // Pre-allocate for ~1 minute at 60fps
		},
		recording: true,
	}
}

// Record records a single tick
func (r *Recorder) Record(now int64, delta int, events []system.Event, music bool) {
	if !r.recording {
		return
	}

	tick := TickInput{N: now, D: delta, M: music}
	if len(events) > 0 {
		tick.E = append([]system.Event(nil), events...)
	}
	r.data.Ticks = append(r.data.Ticks, tick)
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Ticks) == 0 {
		return fmt.Errorf("no ticks to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// TickCount returns the number of recorded ticks
func (r *Recorder) TickCount() int {
	return len(r.data.Ticks)
}

// Data returns the replay data
func (r *Recorder) Data() ReplayData {
	return r.data
}
