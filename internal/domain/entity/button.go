package entity

import "image"

// Button is a two-state push button drawn from a sheet whose left half is
// the idle image and right half the pressed image.
type Button struct {
	Hidden  bool
	Pressed bool
	Rect    image.Rectangle
}

// NewButton creates a button at (x, y) sized from its sheet.
func NewButton(x, y, sheetWidth, sheetHeight int) Button {
	return Button{Rect: image.Rect(x, y, x+sheetWidth/2, y+sheetHeight)}
}

// Contains reports whether the point lies inside the button.
func (b *Button) Contains(p image.Point) bool {
	return p.In(b.Rect)
}

// Source returns the sheet region for the button's current state.
func (b *Button) Source() image.Rectangle {
	w, h := b.Rect.Dx(), b.Rect.Dy()
	if b.Pressed {
		return image.Rect(w, 0, 2*w, h)
	}
	return image.Rect(0, 0, w, h)
}
