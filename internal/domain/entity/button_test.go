package entity

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewButton(t *testing.T) {
	b := NewButton(10, 20, 80, 30)

	assert.Equal(t, image.Rect(10, 20, 50, 50), b.Rect, "half the sheet width")
	assert.False(t, b.Hidden)
	assert.False(t, b.Pressed)
}

func TestButton_Source(t *testing.T) {
	b := NewButton(0, 0, 80, 30)

	assert.Equal(t, image.Rect(0, 0, 40, 30), b.Source())

	b.Pressed = true
	assert.Equal(t, image.Rect(40, 0, 80, 30), b.Source())
}

func TestButton_Contains(t *testing.T) {
	b := NewButton(0, 0, 80, 30)

	assert.True(t, b.Contains(image.Pt(0, 0)))
	assert.True(t, b.Contains(image.Pt(39, 29)))
	assert.False(t, b.Contains(image.Pt(40, 0)))
	assert.False(t, b.Contains(image.Pt(0, 30)))
}
