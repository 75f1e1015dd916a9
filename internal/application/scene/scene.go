// Package scene defines the Scene interface for game screens.
//
// Each stage of the game (intro, cooking, transition, outro) implements
// the Scene interface to handle its own update logic, input and rendering.
// Scenes never construct each other: Update returns the kind of the next
// scene and the runner builds it from its factory registry.
package scene

import (
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/cook/internal/application/state"
	"github.com/younwookim/cook/internal/domain/anim"
	"github.com/younwookim/cook/internal/infrastructure/config"
	"github.com/younwookim/cook/internal/infrastructure/media"
)

// Scene represents one stage of the game.
//
// The game loop delegates Update, Draw and mouse events to the current
// scene. Scene transitions are requested by returning a SceneKind other
// than state.SceneNone from Update.
type Scene interface {
	// Update advances the scene.
	// delta is the elapsed time since the previous update and now the
	// current time, both in milliseconds.
	// Returns the next scene kind, state.SceneNone to stay on this scene.
	Update(delta int, now int64) state.SceneKind

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// Mouse handlers receive left button events in logical screen
	// coordinates.
	MouseDown(x, y int)
	MouseMove(x, y int)
	MouseUp(x, y int)

	// OnEnter is called once the scene becomes current, with the time it
	// was activated.
	OnEnter(now int64)

	// OnExit is called when leaving this scene.
	// Releases frames and music and restores the default cursor.
	OnExit()
}

// Factory builds a scene. Errors are resource errors and end the game.
type Factory func(ctx *Context) (Scene, error)

// Assets decodes and uploads image files.
type Assets interface {
	Animation(path string) (*anim.Player, error)
	Still(path string) (*media.Still, error)
}

// Audio is the background music channel. PlayMusic returns nil when audio
// is disabled or the file is unusable.
type Audio interface {
	PlayMusic(path string, loops int) media.Track
	FadeOutMusic(ms int)
	IsMusicPlaying() bool
	Update(now int64)
}

// Cursor switches between the default and the hand cursor.
type Cursor interface {
	SetHand(hand bool)
}

// Context is the application state shared by all scenes. It is owned by
// the runner and handed to every factory.
type Context struct {
	Assets Assets
	Audio  Audio
	Cursor Cursor
	Rand   *rand.Rand
	Log    *log.Logger
	Config *config.GameConfig
}
