package cooking

import (
	"image"
	"math"

	"github.com/younwookim/cook/internal/domain/entity"
)

const (
	eyeCellHeight = 32 // sheet rows: white, pupil, highlight
	eyeReach      = 8  // max look offset (pixels)
	eyeBaseY      = 82
	eyeCenterY    = 100
	beatDrop      = 3 // eyes sit lower in the beat pose
)

// eye is the placement of one eye on the character.
type eye struct {
	centerX    int
	x          int
	highlightX int
}

var eyes = [2]eye{
	{centerX: 130, x: 119, highlightX: 140},
	{centerX: 160, x: 150, highlightX: 171},
}

// Sprite is one region of a sheet drawn at a screen rectangle.
type Sprite struct {
	Src image.Rectangle
	Dst image.Rectangle
}

// Target picks what the eyes follow: the dragged ingredient, else the
// first rare one in slot order, else the rightmost.
func Target(dragging *entity.Ingredient, slots []*entity.Ingredient, commonTypes int) *entity.Ingredient {
	if dragging != nil {
		return dragging
	}
	var target *entity.Ingredient
	for _, in := range slots {
		if in == nil {
			continue
		}
		if in.IsRare(commonTypes) {
			return in
		}
		if target == nil || in.PreciseX > target.PreciseX {
			target = in
		}
	}
	return target
}

// look returns the offset towards (dx, dy) with its length clamped to
// eyeReach.
func look(dx, dy float64) (float64, float64) {
	dist := math.Min(math.Hypot(dx, dy), eyeReach)
	angle := math.Atan2(dy, dx)
	return math.Cos(angle) * dist, math.Sin(angle) * dist
}

// EyeSprites lays out both eyes looking at target. Each eye is a white,
// a pupil that moves further than the white, and two highlights.
func EyeSprites(target image.Point, beat bool, eyeWidth int) []Sprite {
	drop := 0
	if beat {
		drop = beatDrop
	}

	row := func(n int) image.Rectangle {
		return image.Rect(0, n*eyeCellHeight, eyeWidth, (n+1)*eyeCellHeight)
	}
	at := func(x, y int) image.Rectangle {
		return image.Rect(x, y, x+eyeWidth, y+eyeCellHeight)
	}

	sprites := make([]Sprite, 0, 4*len(eyes))
	for _, e := range eyes {
		// The beat drop also shifts the aim point, matching the artwork
		cx, cy := look(float64(target.X-e.centerX-drop), float64(target.Y-eyeCenterY))
		y := eyeBaseY + drop
		sprites = append(sprites,
			Sprite{Src: row(0), Dst: at(e.x+int(cx), y+int(cy))},
			Sprite{Src: row(1), Dst: at(e.x+int(cx*1.25), y+int(cy*1.5))},
			Sprite{Src: row(2), Dst: at(e.x+int(cx), y+int(cy))},
			Sprite{Src: row(2), Dst: at(e.highlightX+int(cx*2), y+int(cy))},
		)
	}
	return sprites
}
