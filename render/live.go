// Package render paints frames into a raylib window as they are produced.
package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/waterflow/sim"
)

// LiveView owns the GPU texture the frame sequence is streamed into. The
// texture is updated once per accepted frame and drawn every display frame,
// so the last accepted frame stays visible after the run finishes.
type LiveView struct {
	texture rl.Texture2D
	size    int
	dest    rl.Rectangle
}

// NewLiveView allocates the streaming texture for size×size frames, centered
// and scaled to fit the screen. Must be called after rl.InitWindow.
func NewLiveView(size, screenW, screenH int) *LiveView {
	img := rl.GenImageColor(size, size, rl.Black)
	texture := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)

	side := screenW
	if screenH < side {
		side = screenH
	}
	dest := rl.Rectangle{
		X:      float32(screenW-side) / 2,
		Y:      float32(screenH-side) / 2,
		Width:  float32(side),
		Height: float32(side),
	}

	return &LiveView{texture: texture, size: size, dest: dest}
}

// Push uploads a frame to the streaming texture. The frame is read, never
// retained.
func (v *LiveView) Push(f *sim.Frame) {
	rl.UpdateTexture(v.texture, f.Pixels())
}

// Draw paints the current texture. Call between BeginDrawing/EndDrawing.
func (v *LiveView) Draw() {
	rl.DrawTexturePro(
		v.texture,
		rl.Rectangle{X: 0, Y: 0, Width: float32(v.size), Height: float32(v.size)},
		v.dest,
		rl.Vector2{X: 0, Y: 0},
		0,
		rl.White,
	)
}

// Unload releases the streaming texture.
func (v *LiveView) Unload() {
	rl.UnloadTexture(v.texture)
}
