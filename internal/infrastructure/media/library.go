package media

import (
	"image"
	"io/fs"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/cook/internal/domain/anim"
)

// Still is an uploaded single image with its pixel size.
type Still struct {
	Image  *ebiten.Image
	Width  int
	Height int
}

// Release deallocates the image.
func (s *Still) Release() {
	if s.Image != nil {
		s.Image.Deallocate()
		s.Image = nil
	}
}

// Library loads assets from a filesystem and uploads them as ebiten images.
type Library struct {
	fsys fs.FS
	log  *log.Logger
}

// NewLibrary creates a library reading from fsys.
func NewLibrary(fsys fs.FS, logger *log.Logger) *Library {
	return &Library{fsys: fsys, log: logger}
}

// Animation decodes the animation at path into a player positioned on its
// first frame.
func (l *Library) Animation(path string) (*anim.Player, error) {
	f, err := l.fsys.Open(path)
	if err != nil {
		return nil, &ResourceError{Op: "open", Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()

	decoded, err := DecodeAnimation(f)
	if err != nil {
		return nil, &ResourceError{Op: "decode", Path: path, Err: err}
	}

	images := make([]*ebiten.Image, len(decoded.Frames))
	for i, frame := range decoded.Frames {
		images[i] = ebiten.NewImageFromImage(frame)
	}

	player, err := anim.New(images, decoded.Timestamps)
	if err != nil {
		return nil, &ResourceError{Op: "load", Path: path, Err: err}
	}

	l.log.Debug("animation loaded", "path", path, "frames", player.FrameCount())
	return player, nil
}

// Still decodes the image at path.
func (l *Library) Still(path string) (*Still, error) {
	f, err := l.fsys.Open(path)
	if err != nil {
		return nil, &ResourceError{Op: "open", Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()

	img, err := DecodeStill(f)
	if err != nil {
		return nil, &ResourceError{Op: "decode", Path: path, Err: err}
	}

	l.log.Debug("image loaded", "path", path, "size", img.Bounds().Size())
	return NewStill(img), nil
}

// NewStill uploads img.
func NewStill(img image.Image) *Still {
	b := img.Bounds()
	return &Still{
		Image:  ebiten.NewImageFromImage(img),
		Width:  b.Dx(),
		Height: b.Dy(),
	}
}
