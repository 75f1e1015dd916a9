// Package media decodes animation and image files, uploads them as ebiten
// images, plays background music and switches the system cursor.
package media

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"io"

	_ "image/png" // still formats for DecodeStill

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// ResourceError reports a failed asset load. Resource errors are fatal at
// scene construction.
type ResourceError struct {
	Op   string
	Path string
	Err  error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}

// ErrEmptyAnimation is returned for an animation container without frames.
var ErrEmptyAnimation = errors.New("animation has no frames")

// Animation is a decoded animation: fully composited frames in display
// order and the end timestamp of each frame in milliseconds.
type Animation struct {
	Frames     []*image.RGBA
	Timestamps []int
}

// DecodeAnimation decodes an animated GIF into full-canvas frames. Every
// frame is composited over the previous canvas according to its disposal
// method, so each output frame can be shown on its own.
func DecodeAnimation(r io.Reader) (*Animation, error) {
	g, err := gif.DecodeAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode animation: %w", err)
	}
	if len(g.Image) == 0 {
		return nil, ErrEmptyAnimation
	}

	bounds := image.Rect(0, 0, g.Config.Width, g.Config.Height)
	if bounds.Empty() {
		for _, frame := range g.Image {
			bounds = bounds.Union(frame.Bounds())
		}
	}

	canvas := image.NewRGBA(bounds)
	anim := &Animation{
		Frames:     make([]*image.RGBA, 0, len(g.Image)),
		Timestamps: make([]int, 0, len(g.Image)),
	}

	timestamp := 0
	for i, frame := range g.Image {
		var disposal byte
		if i < len(g.Disposal) {
			disposal = g.Disposal[i]
		}

		var saved *image.RGBA
		if disposal == gif.DisposalPrevious {
			saved = cloneRGBA(canvas)
		}

		draw.Draw(canvas, frame.Bounds(), frame, frame.Bounds().Min, draw.Over)
		anim.Frames = append(anim.Frames, cloneRGBA(canvas))

		if i < len(g.Delay) {
			timestamp += g.Delay[i] * 10 // GIF delays are in 1/100 s
		}
		anim.Timestamps = append(anim.Timestamps, timestamp)

		switch disposal {
		case gif.DisposalBackground:
			draw.Draw(canvas, frame.Bounds(), image.Transparent, image.Point{}, draw.Src)
		case gif.DisposalPrevious:
			draw.Draw(canvas, bounds, saved, bounds.Min, draw.Src)
		}
	}

	return anim, nil
}

// DecodeStill decodes a single PNG or WebP image.
func DecodeStill(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

func cloneRGBA(src *image.RGBA) *image.RGBA {
	dst := image.NewRGBA(src.Bounds())
	draw.Copy(dst, src.Bounds().Min, src, src.Bounds(), draw.Src, nil)
	return dst
}
