package media

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
)

// Track is a handle to a playing music stream. Closing it stops playback
// and releases the stream.
type Track interface {
	Close() error
}

// Mixer plays one background music stream at a time, like a single music
// channel. A mixer without an audio context is disabled: PlayMusic returns
// nil and nothing is ever playing.
type Mixer struct {
	ctx  *audio.Context
	fsys fs.FS
	log  *log.Logger

	now     int64
	current *Music
}

// NewMixer creates a mixer reading .ogg files from fsys. Pass a nil context
// to run without audio.
func NewMixer(ctx *audio.Context, fsys fs.FS, logger *log.Logger) *Mixer {
	return &Mixer{ctx: ctx, fsys: fsys, log: logger}
}

// Enabled reports whether the mixer can play anything.
func (m *Mixer) Enabled() bool {
	return m.ctx != nil
}

// PlayMusic starts the music at path, replacing whatever was playing.
// loops < 0 repeats forever, any other value plays once. It returns nil when
// audio is disabled or the file cannot be played; a missing song never stops
// the game.
func (m *Mixer) PlayMusic(path string, loops int) Track {
	if m.ctx == nil || path == "" {
		return nil
	}

	player, err := m.newPlayer(path, loops < 0)
	if err != nil {
		m.log.Warn("music disabled for scene", "path", path, "error", err)
		return nil
	}

	if m.current != nil {
		_ = m.current.Close()
	}

	player.SetVolume(1)
	player.Play()
	m.current = &Music{mixer: m, player: player}
	m.log.Debug("music started", "path", path, "loops", loops)
	return m.current
}

func (m *Mixer) newPlayer(path string, loop bool) (*audio.Player, error) {
	f, err := m.fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	// Keep the file in memory so the stream can seek after the file is closed
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	stream, err := vorbis.DecodeWithSampleRate(m.ctx.SampleRate(), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	var src io.Reader = stream
	if loop {
		src = audio.NewInfiniteLoop(stream, stream.Length())
	}

	player, err := m.ctx.NewPlayer(src)
	if err != nil {
		return nil, fmt.Errorf("failed to create player for %s: %w", path, err)
	}
	return player, nil
}

// FadeOutMusic fades the current music to silence over ms milliseconds,
// then stops it. It is a no-op when nothing is playing or a fade is
// already running.
func (m *Mixer) FadeOutMusic(ms int) {
	music := m.current
	if music == nil || music.fading || music.stopped {
		return
	}
	music.fading = true
	music.fadeStart = m.now
	music.fadeMs = ms
	if ms <= 0 {
		music.stop()
	}
}

// IsMusicPlaying reports whether music is audible, including while fading.
func (m *Mixer) IsMusicPlaying() bool {
	music := m.current
	return music != nil && !music.stopped && music.player.IsPlaying()
}

// Update advances running fades to time now (ms).
func (m *Mixer) Update(now int64) {
	m.now = now
	music := m.current
	if music == nil || !music.fading || music.stopped {
		return
	}

	v := FadeVolume(now-music.fadeStart, music.fadeMs)
	music.player.SetVolume(v)
	if v <= 0 {
		music.stop()
	}
}

// FadeVolume returns the linear fade-out volume after elapsed of total ms.
func FadeVolume(elapsed int64, total int) float64 {
	if total <= 0 || elapsed >= int64(total) {
		return 0
	}
	if elapsed <= 0 {
		return 1
	}
	return 1 - float64(elapsed)/float64(total)
}

// Music is the mixer's Track.
type Music struct {
	mixer  *Mixer
	player *audio.Player

	fading    bool
	fadeStart int64
	fadeMs    int
	stopped   bool
}

func (mu *Music) stop() {
	mu.player.Pause()
	mu.stopped = true
}

// Close stops the music and releases its player.
func (mu *Music) Close() error {
	if mu.mixer.current == mu {
		mu.mixer.current = nil
	}
	mu.stopped = true
	return mu.player.Close()
}
