package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up by Loader.Load
const FileName = "game.yaml"

// Loader loads game configuration from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// Load loads and validates game.yaml
func (l *Loader) Load() (*GameConfig, error) {
	return l.LoadFile(FileName)
}

// LoadFile loads and validates the named YAML file. Keys missing from the
// file keep their Default values.
func (l *Loader) LoadFile(name string) (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", name, err)
	}

	return cfg, nil
}

// Default returns the built-in configuration
func Default() *GameConfig {
	return &GameConfig{
		Display: DisplayConfig{
			ScreenWidth:  240,
			ScreenHeight: 180,
			Scale:        2,
			Framerate:    60,
			Title:        "Cook",
		},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 44100,
			FadeOutMs:  1000,
		},
		Scenes: ScenesConfig{
			Intro:   SceneAssets{Animation: "images/intro.gif", Music: "sounds/intro.ogg", Loops: -1},
			Cooking: SceneAssets{Music: "sounds/working_loop.ogg", Loops: -1},
			Transition: TransitionAssets{
				SceneAssets:  SceneAssets{Animation: "images/cooking_end.gif", Music: "sounds/working_end.ogg", Loops: 0},
				RewindFrames: 9,
			},
			Outro: SceneAssets{Animation: "images/end_poisonous.gif", Music: "sounds/outro.ogg", Loops: 0},
		},
		Cooking: CookingConfig{
			IdleAnimation:   "images/cooking_idle.gif",
			ActionAnimation: "images/cooking_action.gif",
			Button:          "images/button_cook.png",
			Eyes:            "images/eyes_sheet.png",
			Ingredients:     "images/ingredients_sheet.png",
			IngredientWidth: 50,
			CommonTypes:     10,
			SpawnDelayMs:    1500,
			MaxX:            240,
			BPM:             134,
			BeatOffsetMs:    300,
			RareEvery:       3,
			WaveBaseY:       17,
			WaveAmplitude:   4,
			DropTarget:      RectConfig{X: 50, Y: 120, W: 160, H: 60},
			ButtonPos:       PointConfig{X: 0, Y: 0},
		},
	}
}

// Validate checks the configuration for values the game cannot run with
func (c *GameConfig) Validate() error {
	var errs []error

	d := c.Display
	if d.ScreenWidth <= 0 || d.ScreenHeight <= 0 {
		errs = append(errs, fmt.Errorf("display size must be positive, got %dx%d", d.ScreenWidth, d.ScreenHeight))
	}
	if d.Scale <= 0 {
		errs = append(errs, fmt.Errorf("display scale must be positive, got %d", d.Scale))
	}
	if d.Framerate <= 0 {
		errs = append(errs, fmt.Errorf("framerate must be positive, got %d", d.Framerate))
	}
	if c.Audio.Enabled && c.Audio.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("audio sample rate must be positive, got %d", c.Audio.SampleRate))
	}

	for name, path := range map[string]string{
		"scenes.intro.animation":      c.Scenes.Intro.Animation,
		"scenes.transition.animation": c.Scenes.Transition.Animation,
		"scenes.outro.animation":      c.Scenes.Outro.Animation,
		"cooking.idleAnimation":       c.Cooking.IdleAnimation,
		"cooking.actionAnimation":     c.Cooking.ActionAnimation,
		"cooking.button":              c.Cooking.Button,
		"cooking.eyes":                c.Cooking.Eyes,
		"cooking.ingredients":         c.Cooking.Ingredients,
	} {
		if path == "" {
			errs = append(errs, fmt.Errorf("%s is required", name))
		}
	}

	k := c.Cooking
	if k.IngredientWidth <= 0 {
		errs = append(errs, fmt.Errorf("cooking.ingredientWidth must be positive, got %d", k.IngredientWidth))
	}
	if k.CommonTypes <= 0 {
		errs = append(errs, fmt.Errorf("cooking.commonTypes must be positive, got %d", k.CommonTypes))
	}
	if k.BPM <= 0 {
		errs = append(errs, fmt.Errorf("cooking.bpm must be positive, got %d", k.BPM))
	}
	if k.RareEvery <= 0 {
		errs = append(errs, fmt.Errorf("cooking.rareEvery must be positive, got %d", k.RareEvery))
	}
	if c.Scenes.Transition.RewindFrames < 0 {
		errs = append(errs, fmt.Errorf("scenes.transition.rewindFrames must not be negative, got %d", c.Scenes.Transition.RewindFrames))
	}

	return errors.Join(errs...)
}
