// Package encode serializes a completed frame sequence to an animated GIF.
package encode

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"os"
	"path/filepath"

	"github.com/pthm-cable/waterflow/sim"
)

// Animation accumulates frames in order and encodes them as an animated GIF.
// Quantization to the GIF's 256-color limit uses the stdlib Plan9 palette
// with Floyd-Steinberg dithering.
type Animation struct {
	path  string
	delay int // per-frame delay in 1/100ths of a second
	anim  gif.GIF
}

// NewAnimation creates an encoder that will write to path when closed,
// played back at roughly fps frames per second (GIF delays are quantized to
// centiseconds).
func NewAnimation(path string, fps int) *Animation {
	delay := 100 / fps
	if delay < 1 {
		delay = 1
	}
	return &Animation{path: path, delay: delay}
}

// Append quantizes a frame and adds it to the animation. Frames must be
// appended in generation order; the frame itself is not retained or modified.
func (a *Animation) Append(f *sim.Frame) {
	img := image.NewPaletted(image.Rect(0, 0, f.Size, f.Size), palette.Plan9)
	draw.FloydSteinberg.Draw(img, img.Bounds(), f.Image(), image.Point{})
	a.anim.Image = append(a.anim.Image, img)
	a.anim.Delay = append(a.anim.Delay, a.delay)
}

// FrameCount returns the number of frames appended so far.
func (a *Animation) FrameCount() int {
	return len(a.anim.Image)
}

// Encode writes the animation to w.
func (a *Animation) Encode(w io.Writer) error {
	if len(a.anim.Image) == 0 {
		return fmt.Errorf("encode: no frames appended")
	}
	if err := gif.EncodeAll(w, &a.anim); err != nil {
		return fmt.Errorf("encoding gif: %w", err)
	}
	return nil
}

// Close creates the output directory and writes the animation to the
// configured path.
func (a *Animation) Close() error {
	if err := os.MkdirAll(filepath.Dir(a.path), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	f, err := os.Create(a.path)
	if err != nil {
		return fmt.Errorf("creating gif file: %w", err)
	}
	defer f.Close()

	return a.Encode(f)
}

// Path returns the output path the animation will be written to.
func (a *Animation) Path() string {
	return a.path
}
