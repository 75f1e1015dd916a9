// Package replay records the game loop's clock, mouse input and music
// state and plays them back. Scenes only depend on those and the seeded
// RNG, so a replay reproduces a session exactly.
package replay

import "github.com/younwookim/cook/internal/application/system"

// Version is the replay file format version
const Version = "2.1"

// TickInput records one game loop tick
type TickInput struct {
	N int64          `json:"n"`           // Now (ms since start)
	D int            `json:"d"`           // Delta (ms)
	E []system.Event `json:"e,omitempty"` // Mouse events, in dispatch order
	M bool           `json:"m,omitempty"` // Music playing as seen by the scene
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string      `json:"version"`
	Seed      int64       `json:"seed"`
	StartTime string      `json:"startTime"`
	Ticks     []TickInput `json:"ticks"`
}
