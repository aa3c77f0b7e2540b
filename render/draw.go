// Package render draws a scene snapshot onto a tcell screen: top-down
// lattice, obstacles, collectibles, the entity with height shading and
// a HUD line. It draws; it never mutates game state.
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Cell footprint on screen. Two columns per cell keeps the lattice
// roughly square in most terminal fonts.
const (
	cellW = 4
	cellH = 2
)

var (
	styleDefault     = tcell.StyleDefault
	styleGrid        = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleObstacle    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleSteppable   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleCollectible = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleHUD         = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleTitle       = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
)

// Draw renders one frame. Screens smaller than the lattice degrade to
// the HUD line only.
func Draw(screen tcell.Screen, v View) {
	screen.Clear()
	w, h := screen.Size()
	if w <= 0 || h <= 0 {
		return
	}

	boardW := v.GridSize * cellW
	boardH := v.GridSize * cellH
	ox := (w - boardW) / 2
	oy := (h - boardH - 2) / 2
	if oy < 1 {
		oy = 1
	}

	drawText(screen, (w-len(v.Title))/2, 0, v.Title, styleTitle)

	if ox >= 0 && oy+boardH < h {
		drawBoard(screen, v, ox, oy)
		drawEntity(screen, v, ox, oy)
	}

	drawHUD(screen, v, w, h)
	screen.Show()
}

func drawBoard(screen tcell.Screen, v View, ox, oy int) {
	// Lattice dots mark cell centers
	for row := 0; row < v.GridSize; row++ {
		for col := 0; col < v.GridSize; col++ {
			screen.SetContent(ox+col*cellW, oy+row*cellH, '·', nil, styleGrid)
		}
	}

	obstacleStyle := styleObstacle
	obstacleRune := '█'
	if v.Steppable {
		obstacleStyle = styleSteppable
		obstacleRune = '▒'
	}
	for _, c := range v.Obstacles {
		screen.SetContent(ox+c.Col*cellW, oy+c.Row*cellH, obstacleRune, nil, obstacleStyle)
	}

	for _, it := range v.Collectibles {
		sx, sy := project(it.X, it.Z, v.CellSize, ox, oy)
		screen.SetContent(sx, sy, '*', nil, styleCollectible)
	}
}

func drawEntity(screen tcell.Screen, v View, ox, oy int) {
	sx, sy := project(v.EntityX, v.EntityZ, v.CellSize, ox, oy)

	glyph := '@'
	if v.ShowFacing {
		glyph = v.Facing.Glyph()
	}

	// Shade by altitude so jumps and drops read on a flat view
	style := styleDefault.Foreground(tcell.ColorTeal)
	switch {
	case v.Height > 1.5:
		style = styleDefault.Foreground(tcell.ColorWhite).Bold(true)
	case v.Height > 0.75:
		style = styleDefault.Foreground(tcell.ColorAqua).Bold(true)
	}
	screen.SetContent(sx, sy, glyph, nil, style)
}

func drawHUD(screen tcell.Screen, v View, w, h int) {
	hud := fmt.Sprintf(" %s | cell (%d,%d) | h %.2f", v.State, v.Cell.Col, v.Cell.Row, v.Height)
	if v.ShowFacing {
		hud += fmt.Sprintf(" | facing %s", v.Facing)
	}
	if v.ShowScore {
		hud += fmt.Sprintf(" | score %d | left %d", v.Score, len(v.Collectibles))
	}
	if v.Status != "" {
		hud += " | " + v.Status
	}
	drawText(screen, 0, h-1, hud, styleHUD)
}

// project maps a world position to screen coordinates, keeping the
// smoothed sub-cell motion visible.
func project(x, z, cellSize float64, ox, oy int) (int, int) {
	if cellSize <= 0 {
		cellSize = 1
	}
	sx := ox + int(x/cellSize*cellW+0.5)
	sy := oy + int(z/cellSize*cellH+0.5)
	return sx, sy
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	w, h := screen.Size()
	if y < 0 || y >= h {
		return
	}
	for i, r := range text {
		sx := x + i
		if sx >= 0 && sx < w {
			screen.SetContent(sx, y, r, nil, style)
		}
	}
}
