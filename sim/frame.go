package sim

import (
	"image"
	"image/color"
	"math"

	"github.com/pthm-cable/waterflow/field"
)

// Frame is one emitted image: 8-bit RGB, Size×Size pixels, row-major.
// Frames handed to sinks are never mutated afterwards.
type Frame struct {
	Index int
	Size  int
	Pix   []uint8 // len = Size*Size*3
}

// quantizeFrame converts the working dye buffer to an 8-bit frame:
// round(clamp(v, 0, 255)) per channel.
func quantizeFrame(index int, dye *field.Field) *Frame {
	f := &Frame{
		Index: index,
		Size:  dye.W,
		Pix:   make([]uint8, len(dye.Data)),
	}
	for i, v := range dye.Data {
		f.Pix[i] = uint8(math.Round(field.Clamp(v, 0, 255)))
	}
	return f
}

// Image returns the frame as an opaque RGBA image.
func (f *Frame) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Size, f.Size))
	for i := 0; i < f.Size*f.Size; i++ {
		img.Pix[i*4] = f.Pix[i*3]
		img.Pix[i*4+1] = f.Pix[i*3+1]
		img.Pix[i*4+2] = f.Pix[i*3+2]
		img.Pix[i*4+3] = 255
	}
	return img
}

// Pixels returns the frame as a flat RGBA pixel slice for texture upload.
func (f *Frame) Pixels() []color.RGBA {
	pixels := make([]color.RGBA, f.Size*f.Size)
	for i := range pixels {
		pixels[i] = color.RGBA{
			R: f.Pix[i*3],
			G: f.Pix[i*3+1],
			B: f.Pix[i*3+2],
			A: 255,
		}
	}
	return pixels
}
