package media

import "github.com/hajimehoshi/ebiten/v2"

// SystemCursor switches the window cursor between the default arrow and the
// pointing hand.
type SystemCursor struct{}

// SetHand shows the hand cursor when hand is true, the default otherwise.
func (SystemCursor) SetHand(hand bool) {
	if hand {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
		return
	}
	ebiten.SetCursorShape(ebiten.CursorShapeDefault)
}
