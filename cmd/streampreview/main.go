// Stream function preview tool - interactive visualization with sliders.
//
// Usage: go run ./cmd/streampreview
package main

import (
	"fmt"
	"image/color"
	"math"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mazznoer/colorgrad"

	"github.com/pthm-cable/waterflow/field"
	"github.com/pthm-cable/waterflow/sim"
)

const (
	windowWidth  = 1000
	windowHeight = 720
	previewSize  = 512
	panelWidth   = windowWidth - previewSize - 30
	gridSize     = 256
)

// PreviewParams holds the adjustable pipeline parameters.
type PreviewParams struct {
	Time     float32
	Strength float32
	Sigma    float32
}

func defaultParams() PreviewParams {
	return PreviewParams{Time: 0, Strength: 1.4, Sigma: 1.0}
}

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Stream Function Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	params := defaultParams()
	showSpeed := false
	animating := false

	// 256-entry lookup built from a perceptual gradient
	palette := buildPalette(colorgrad.Viridis())

	img := rl.GenImageColor(gridSize, gridSize, rl.Black)
	texture := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	defer rl.UnloadTexture(texture)

	values := make([]float64, gridSize*gridSize)
	pixels := make([]color.RGBA, gridSize*gridSize)

	needsRegen := true
	var minVal, maxVal float64

	for !rl.WindowShouldClose() {
		if animating {
			params.Time += rl.GetFrameTime()
			needsRegen = true
		}

		if needsRegen {
			minVal, maxVal = generate(values, params, showSpeed)
			colorize(pixels, values, minVal, maxVal, palette)
			rl.UpdateTexture(texture, pixels)
			needsRegen = false
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		// Draw preview
		rl.DrawTexturePro(
			texture,
			rl.Rectangle{X: 0, Y: 0, Width: float32(gridSize), Height: float32(gridSize)},
			rl.Rectangle{X: 10, Y: 10, Width: previewSize, Height: previewSize},
			rl.Vector2{X: 0, Y: 0},
			0,
			rl.White,
		)
		rl.DrawRectangleLines(10, 10, previewSize, previewSize, rl.DarkGray)

		statsY := int32(previewSize + 25)
		rl.DrawText(fmt.Sprintf("Min: %.3f  Max: %.3f", minVal, maxVal), 15, statsY, 16, rl.DarkGray)
		rl.DrawText(fmt.Sprintf("Time: %.2f", params.Time), 15, statsY+20, 16, rl.DarkGray)

		// Control panel
		panelX := float32(previewSize + 20)
		panelY := float32(10)

		rl.DrawText("Flow Field Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		// Time slider
		rl.DrawText("Time (phase of the stream function)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newTime := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"0", "6.0",
			params.Time, 0, 6.0,
		)
		rl.DrawText(fmt.Sprintf("%.2f", params.Time), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if newTime != params.Time {
			params.Time = newTime
			needsRegen = true
		}
		panelY += 35

		// Strength slider
		rl.DrawText("Strength (velocity magnitude scale)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newStrength := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"0.1", "5.0",
			params.Strength, 0.1, 5.0,
		)
		rl.DrawText(fmt.Sprintf("%.2f", params.Strength), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if newStrength != params.Strength {
			params.Strength = newStrength
			if showSpeed {
				needsRegen = true
			}
		}
		panelY += 35

		// Blur sigma slider
		rl.DrawText("Blur sigma (velocity smoothing)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newSigma := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"0", "4.0",
			params.Sigma, 0, 4.0,
		)
		rl.DrawText(fmt.Sprintf("%.2f", params.Sigma), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if newSigma != params.Sigma {
			params.Sigma = newSigma
			if showSpeed {
				needsRegen = true
			}
		}
		panelY += 45

		// Buttons
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, toggleText(animating, "Stop", "Animate")) {
			animating = !animating
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, toggleText(showSpeed, "Show Stream", "Show Speed")) {
			showSpeed = !showSpeed
			needsRegen = true
		}
		panelY += 45

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Reset Time") {
			params.Time = 0
			needsRegen = true
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			params = defaultParams()
			needsRegen = true
		}
		panelY += 55

		rl.DrawText("View:", int32(panelX), int32(panelY), 16, rl.DarkGray)
		panelY += 22
		view := "stream function"
		if showSpeed {
			view = "velocity magnitude (smoothed)"
		}
		rl.DrawText(view, int32(panelX), int32(panelY), 14, rl.Gray)

		rl.EndDrawing()
	}
}

func toggleText(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}

// generate fills values with either the raw stream function or the smoothed
// velocity magnitude, returning the value range for normalization.
func generate(values []float64, params PreviewParams, showSpeed bool) (minVal, maxVal float64) {
	if showSpeed {
		vel := sim.Velocity(gridSize, float64(params.Time), float64(params.Strength))
		vel = field.GaussianBlur(vel, float64(params.Sigma))
		for i := 0; i < gridSize*gridSize; i++ {
			values[i] = math.Hypot(vel.Data[i*2], vel.Data[i*2+1])
		}
	} else {
		psi := sim.StreamField(gridSize, float64(params.Time))
		copy(values, psi.Data)
	}

	minVal, maxVal = values[0], values[0]
	for _, v := range values {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	return minVal, maxVal
}

// colorize maps normalized values through the palette lookup.
func colorize(pixels []color.RGBA, values []float64, minVal, maxVal float64, palette [256]color.RGBA) {
	span := maxVal - minVal
	if span == 0 {
		span = 1
	}
	for i, v := range values {
		idx := int((v - minVal) / span * 255)
		if idx < 0 {
			idx = 0
		}
		if idx > 255 {
			idx = 255
		}
		pixels[i] = palette[idx]
	}
}

// buildPalette samples a gradient into a 256-entry RGBA lookup.
func buildPalette(grad colorgrad.Gradient) [256]color.RGBA {
	var palette [256]color.RGBA
	for i, c := range grad.Colors(256) {
		r, g, b, _ := c.RGBA()
		palette[i] = color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 255}
	}
	return palette
}
