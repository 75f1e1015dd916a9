package config

import "image"

// GameConfig is the root config for game.yaml
type GameConfig struct {
	Display DisplayConfig `yaml:"display"`
	Audio   AudioConfig   `yaml:"audio"`
	Scenes  ScenesConfig  `yaml:"scenes"`
	Cooking CookingConfig `yaml:"cooking"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screenWidth"`
	ScreenHeight int    `yaml:"screenHeight"`
	Scale        int    `yaml:"scale"`
	Framerate    int    `yaml:"framerate"`
	Title        string `yaml:"title"`
}

type AudioConfig struct {
	Enabled    bool `yaml:"enabled"`
	SampleRate int  `yaml:"sampleRate"`
	FadeOutMs  int  `yaml:"fadeOutMs"`
}

// SceneAssets names the animation and background music of one scene.
// Loops is -1 for endless music, 0 to play once.
type SceneAssets struct {
	Animation string `yaml:"animation"`
	Music     string `yaml:"music"`
	Loops     int    `yaml:"loops"`
}

type TransitionAssets struct {
	SceneAssets  `yaml:",inline"`
	RewindFrames int `yaml:"rewindFrames"` // frames replayed while waiting for the music
}

// ScenesConfig lists per-scene assets. The cooking scene takes its
// animations from CookingConfig and only uses Music and Loops here.
type ScenesConfig struct {
	Intro      SceneAssets      `yaml:"intro"`
	Cooking    SceneAssets      `yaml:"cooking"`
	Transition TransitionAssets `yaml:"transition"`
	Outro      SceneAssets      `yaml:"outro"`
}

// RectConfig is a rectangle given by its top-left corner and size
type RectConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// Rect converts to an image.Rectangle
func (r RectConfig) Rect() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

type PointConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// CookingConfig holds the cooking round's assets and tuning
type CookingConfig struct {
	IdleAnimation   string `yaml:"idleAnimation"`   // playback frames followed by the same count of beat poses
	ActionAnimation string `yaml:"actionAnimation"` // cutting animation
	Button          string `yaml:"button"`          // idle|pressed sheet
	Eyes            string `yaml:"eyes"`            // white, pupil, highlight rows
	Ingredients     string `yaml:"ingredients"`     // one column per type

	IngredientWidth int         `yaml:"ingredientWidth"` // sheet column width (pixels)
	CommonTypes     int         `yaml:"commonTypes"`     // leading columns that are not rare
	SpawnDelayMs    int         `yaml:"spawnDelayMs"`
	MaxX            int         `yaml:"maxX"`         // entry x and right drop clamp (pixels)
	BPM             int         `yaml:"bpm"`          // tempo of the backing track
	BeatOffsetMs    int         `yaml:"beatOffsetMs"` // audio latency compensation
	RareEvery       int         `yaml:"rareEvery"`    // spawn ids divisible by this may roll a rare type
	WaveBaseY       int         `yaml:"waveBaseY"`
	WaveAmplitude   int         `yaml:"waveAmplitude"`
	DropTarget      RectConfig  `yaml:"dropTarget"`
	ButtonPos       PointConfig `yaml:"buttonPos"`
}
