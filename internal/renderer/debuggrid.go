//go:build gldebug

// This file is only built with `-tags gldebug`. It draws the spatial
// hash grid's raw cell boundaries straight through the OpenGL context
// raylib already owns, bypassing raylib's shape primitives, and labels
// each occupied column with its particle count via rl.DrawText — useful
// when diagnosing grid-sizing or overflow issues that raylib's
// higher-level shapes would obscure.
package renderer

import (
	"fmt"

	gl "github.com/go-gl/gl/v2.1/gl"
	rl "github.com/gen2brain/raylib-go/raylib"

	"weakfield/internal/solver"
)

// GridDebugOverlay draws cell boundaries for a solver's spatial hash via
// raw immediate-mode GL calls, plus per-column occupancy counts as text.
type GridDebugOverlay struct {
	CellSize float32
	Width    int
	Height   int
}

// NewGridDebugOverlay builds an overlay sized to match a solver's grid
// dimensions; call once after the solver is constructed.
func NewGridDebugOverlay(cellSize float32, width, height int) *GridDebugOverlay {
	return &GridDebugOverlay{CellSize: cellSize, Width: width, Height: height}
}

// Draw renders the grid lines in immediate mode. Must be called while
// raylib's GL context is current, between rl.BeginDrawing and
// rl.EndDrawing.
func (o *GridDebugOverlay) Draw(sim *solver.Solver) {
	gl.Color3f(0.3, 0.3, 0.3)
	gl.Begin(gl.LINES)
	for cx := 0; cx <= o.Width; cx++ {
		x := float32(cx) * o.CellSize
		gl.Vertex2f(x, 0)
		gl.Vertex2f(x, float32(o.Height)*o.CellSize)
	}
	for cy := 0; cy <= o.Height; cy++ {
		y := float32(cy) * o.CellSize
		gl.Vertex2f(0, y)
		gl.Vertex2f(float32(o.Width)*o.CellSize, y)
	}
	gl.End()

	occupancy := sim.ColumnOccupancy()
	for cx, count := range occupancy {
		if count == 0 {
			continue
		}
		x := int32(float32(cx) * o.CellSize)
		rl.DrawText(fmt.Sprintf("%d", count), x+2, 2, 10, rl.Color{R: 255, G: 0, B: 255, A: 255})
	}
}
