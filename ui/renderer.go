package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"torus-snake/controls"
	"torus-snake/game"
)

const (
	borderPadding = 10 // Padding around game area
	panelWidth    = 220
	buttonHeight  = 32
	sliderHeight  = 12
)

var (
	headColor  = rl.Color{R: 250, G: 204, B: 21, A: 255} // yellow-400
	bodyColor  = rl.Color{R: 34, G: 197, B: 94, A: 255}  // green-500
	foodColor  = rl.Color{R: 239, G: 68, B: 68, A: 255}  // red-500
	boardColor = rl.Color{R: 17, G: 24, B: 39, A: 255}   // gray-900
	lineColor  = rl.Color{R: 31, G: 41, B: 55, A: 255}   // gray-800
	panelColor = rl.Color{R: 31, G: 41, B: 55, A: 255}
	textColor  = rl.Color{R: 209, G: 213, B: 219, A: 255}
	pauseColor = rl.Color{R: 79, G: 70, B: 229, A: 255} // indigo-600
	resetColor = rl.Color{R: 22, G: 163, B: 74, A: 255} // green-600
)

// Layout holds the screen rectangles of one drawn frame. The window uses it
// to hit-test mouse input against what was drawn.
type Layout struct {
	CellSize    int32
	OffsetX     int32
	OffsetY     int32
	GridWidth   int32
	GridHeight  int32
	PauseButton rl.Rectangle
	ResetButton rl.Rectangle
	SpeedTrack  rl.Rectangle
	Slider      controls.Slider
}

// ComputeLayout sizes the board to fit the screen next to the side panel.
func ComputeLayout(screenWidth, screenHeight int32, cols, rows int) Layout {
	availableWidth := screenWidth - panelWidth - borderPadding*3
	availableHeight := screenHeight - borderPadding*2

	cellW := availableWidth / int32(cols)
	cellH := availableHeight / int32(rows)
	cellSize := min(cellW, cellH)
	if cellSize < 1 {
		cellSize = 1
	}

	l := Layout{
		CellSize:   cellSize,
		OffsetX:    borderPadding,
		GridWidth:  cellSize * int32(cols),
		GridHeight: cellSize * int32(rows),
	}
	l.OffsetY = (screenHeight - l.GridHeight) / 2

	panelX := float32(l.OffsetX + l.GridWidth + borderPadding*2)
	half := float32(panelWidth-borderPadding) / 2
	l.PauseButton = rl.NewRectangle(panelX, float32(l.OffsetY)+40, half, buttonHeight)
	l.ResetButton = rl.NewRectangle(panelX+half+borderPadding, float32(l.OffsetY)+40, half, buttonHeight)
	l.SpeedTrack = rl.NewRectangle(panelX, float32(l.OffsetY)+240, panelWidth, sliderHeight)
	l.Slider = controls.NewSpeedSlider(l.SpeedTrack.X, l.SpeedTrack.Width)
	return l
}

type Renderer struct {
	screenWidth  int32
	screenHeight int32
	layout       Layout
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

// Layout returns the rectangles used by the last Draw.
func (r *Renderer) Layout() Layout {
	return r.layout
}

func (r *Renderer) Draw(f game.Frame) {
	r.UpdateDimensions()
	r.layout = ComputeLayout(r.screenWidth, r.screenHeight, f.Width, f.Height)
	l := r.layout

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	rl.DrawRectangle(l.OffsetX-1, l.OffsetY-1, l.GridWidth+2, l.GridHeight+2, rl.DarkGray)
	rl.DrawRectangle(l.OffsetX, l.OffsetY, l.GridWidth, l.GridHeight, boardColor)

	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			px := l.OffsetX + int32(x)*l.CellSize
			py := l.OffsetY + int32(y)*l.CellSize
			switch f.At(x, y) {
			case game.RoleHead:
				rl.DrawRectangle(px, py, l.CellSize, l.CellSize, headColor)
			case game.RoleBody:
				rl.DrawRectangle(px, py, l.CellSize, l.CellSize, bodyColor)
			case game.RoleFood:
				rl.DrawRectangle(px, py, l.CellSize, l.CellSize, foodColor)
			}
			rl.DrawRectangleLines(px, py, l.CellSize, l.CellSize, lineColor)
		}
	}

	if f.Over {
		fontSize := l.CellSize * 2
		text := fmt.Sprintf("Game Over! Score %d", f.Score)
		textWidth := rl.MeasureText(text, fontSize)
		rl.DrawText(text,
			l.OffsetX+(l.GridWidth-textWidth)/2,
			l.OffsetY+l.GridHeight/2-fontSize,
			fontSize, rl.White)
		hint := "Press R or Restart"
		hintWidth := rl.MeasureText(hint, fontSize/2)
		rl.DrawText(hint, l.OffsetX+(l.GridWidth-hintWidth)/2, l.OffsetY+l.GridHeight/2+fontSize/2, fontSize/2, textColor)
	}

	r.drawStatsPanel(f)
	rl.EndDrawing()
}

func (r *Renderer) drawStatsPanel(f game.Frame) {
	l := r.layout
	statsX := int32(l.PauseButton.X)
	statsY := l.OffsetY
	fontSize := int32(20)

	rl.DrawRectangle(statsX-borderPadding, 0, r.screenWidth-statsX+borderPadding, r.screenHeight, panelColor)

	rl.DrawText(fmt.Sprintf("Score: %d", f.Score), statsX, statsY, fontSize, rl.White)
	rl.DrawText(fmt.Sprintf("Best: %d", f.Best), statsX+panelWidth/2, statsY, fontSize, textColor)

	label := "Pause"
	if !f.Running {
		label = "Resume"
	}
	drawButton(l.PauseButton, label, pauseColor, !f.Over)
	drawButton(l.ResetButton, "Restart", resetColor, true)

	y := int32(l.ResetButton.Y) + buttonHeight + 20
	rl.DrawText("Controls:", statsX, y, 18, textColor)
	for _, line := range []string{"Arrows or WASD to move", "Space to pause/resume", "R or Restart to start over", "+/- to change speed"} {
		y += 22
		rl.DrawText("- "+line, statsX, y, 16, textColor)
	}

	rl.DrawText(fmt.Sprintf("Speed: %dms", f.Speed), statsX, int32(l.SpeedTrack.Y)-26, 18, textColor)
	rl.DrawRectangleRec(l.SpeedTrack, rl.DarkGray)
	knobX := l.Slider.KnobX(f.Speed)
	rl.DrawRectangleRec(rl.NewRectangle(knobX-5, l.SpeedTrack.Y-4, 10, sliderHeight+8), rl.LightGray)

	rl.DrawText(fmt.Sprintf("Games: %d  Length: %d", f.Games, f.Length), statsX, int32(l.SpeedTrack.Y)+40, 16, textColor)
}

func drawButton(rec rl.Rectangle, label string, color rl.Color, enabled bool) {
	if !enabled {
		color = rl.Fade(color, 0.4)
	}
	rl.DrawRectangleRec(rec, color)
	fontSize := int32(18)
	w := rl.MeasureText(label, fontSize)
	rl.DrawText(label, int32(rec.X)+(int32(rec.Width)-w)/2, int32(rec.Y)+(buttonHeight-fontSize)/2, fontSize, rl.White)
}
