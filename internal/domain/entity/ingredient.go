package entity

import "image"

// PositionScale is the sub-pixel scale of an ingredient's horizontal
// position. 1 pixel = 16 internal units, so a drift of delta units per tick
// moves delta/16 pixels.
const PositionScale = 16

// Ingredient is a floating, draggable item in the cooking round.
type Ingredient struct {
	ID   int // spawn counter value at creation
	Type int // sprite column; >= common type count means rare

	// PreciseX is the 16x scaled horizontal position (divide by
	// PositionScale for pixels). It drives Rect.Min.X while drifting.
	PreciseX int
	Wave     int // +1 or -1, phase of the vertical bob
	Rect     image.Rectangle
}

// NewIngredient creates an ingredient of the given type entering at pixel x.
// Even spawn ids bob in phase, odd ones in opposite phase.
func NewIngredient(id, typ, x, width, height int) *Ingredient {
	wave := 1
	if id%2 != 0 {
		wave = -1
	}
	return &Ingredient{
		ID:       id,
		Type:     typ,
		PreciseX: x * PositionScale,
		Wave:     wave,
		Rect:     image.Rect(x, 0, x+width, height),
	}
}

// IsRare reports whether the ingredient is outside the common pool.
func (in *Ingredient) IsRare(commonTypes int) bool {
	return in.Type >= commonTypes
}

// Drift moves the ingredient left by delta internal units and places it on
// the given row, keeping its size.
func (in *Ingredient) Drift(delta, y int) {
	in.PreciseX -= delta
	in.MoveTo(in.PreciseX/PositionScale, y)
}

// MoveTo places the top-left corner at pixel (x, y) without touching
// PreciseX.
func (in *Ingredient) MoveTo(x, y int) {
	in.Rect = image.Rectangle{Min: image.Pt(x, y), Max: image.Pt(x+in.Rect.Dx(), y+in.Rect.Dy())}
}

// Settle converts the current pixel position back into PreciseX so that
// drifting resumes from where the ingredient was dropped.
func (in *Ingredient) Settle() {
	in.PreciseX = in.Rect.Min.X * PositionScale
}

// OffScreen reports whether the ingredient has fully left the left edge.
func (in *Ingredient) OffScreen() bool {
	return in.Rect.Min.X < -in.Rect.Dx()
}

// Contains reports whether the point lies inside the ingredient.
func (in *Ingredient) Contains(p image.Point) bool {
	return p.In(in.Rect)
}

// Center returns the center of the ingredient's rectangle.
func (in *Ingredient) Center() image.Point {
	return image.Pt(in.Rect.Min.X+in.Rect.Dx()/2, in.Rect.Min.Y+in.Rect.Dy()/2)
}
