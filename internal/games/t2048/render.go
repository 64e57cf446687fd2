package t2048

import (
	"fmt"
	"math"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/tilt2048/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell including its left border; fits 6 digits
	cellHeight = 2 // Height of each cell including its top border
	hudHeight  = 3
)

// boardDimensions returns the on-screen size of a board with n cells per side.
func boardDimensions(n int) (w, h int) {
	return n*cellWidth + 1, n*cellHeight + 1
}

// tileColor picks a color per value, cycling hotter as tiles grow.
func tileColor(value int) core.Color {
	switch {
	case value <= 2:
		return core.ColorGray
	case value == 4:
		return core.ColorWhite
	case value == 8:
		return core.ColorYellow
	case value == 16:
		return core.ColorOrange
	case value == 32:
		return core.ColorRed
	case value == 64:
		return core.ColorBrightRed
	case value == 128:
		return core.ColorMagenta
	case value == 256:
		return core.ColorBrightMagenta
	case value == 512:
		return core.ColorBlue
	case value == 1024:
		return core.ColorCyan
	case value == 2048:
		return core.ColorBrightYellow
	default:
		return core.ColorBrightGreen
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.state == nil {
		return
	}

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW, boardH := boardDimensions(g.size)
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderGrid(dst, boardX, boardY)

	if g.phase == PhaseSlide {
		g.renderSliding(dst, boardX, boardY)
	} else {
		g.renderTiles(dst, boardX, boardY)
	}

	g.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the score and level info.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := g.Title()
	dst.DrawText(boardX+(boardW-len(title))/2, 0, title)

	scoreStr := "Score: " + humanize.Comma(int64(g.state.Score()))
	dst.DrawText(boardX, 1, scoreStr)

	var infoStr string
	switch g.variant.Mode {
	case ModeCampaign:
		infoStr = fmt.Sprintf("Level %d/%d  Target: %d", g.levelIndex+1, LevelCount(), g.currentTarget)
	case ModeClassic:
		infoStr = fmt.Sprintf("Target: %d", g.currentTarget)
	default:
		infoStr = fmt.Sprintf("Max: %d", g.state.MaxTile())
	}
	infoX := max(boardX+boardW-len(infoStr), boardX)
	dst.DrawText(infoX, 2, infoStr)

	movesStr := fmt.Sprintf("Moves: %d", g.moves)
	dst.DrawText(boardX, 2, movesStr)
}

// renderGrid draws the cell borders.
func (g *Game) renderGrid(dst *core.Screen, boardX, boardY int) {
	n := g.size
	for row := range n + 1 {
		for col := range n + 1 {
			px := boardX + col*cellWidth
			py := boardY + row*cellHeight

			var corner rune
			switch {
			case row == 0 && col == 0:
				corner = '┌'
			case row == 0 && col == n:
				corner = '┐'
			case row == n && col == 0:
				corner = '└'
			case row == n && col == n:
				corner = '┘'
			case row == 0:
				corner = '┬'
			case row == n:
				corner = '┴'
			case col == 0:
				corner = '├'
			case col == n:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.Set(px, py, corner)

			if col < n {
				for i := 1; i < cellWidth; i++ {
					dst.Set(px+i, py, '─')
				}
			}
			if row < n {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}
}

// renderTiles draws the settled board. A tile that is popping in is
// highlighted until its animation ends.
func (g *Game) renderTiles(dst *core.Screen, boardX, boardY int) {
	var popping *TileAnimation
	if g.phase == PhasePop && len(g.animations) > 0 {
		popping = &g.animations[0]
	}

	for y := range g.size {
		for x := range g.size {
			val := g.state.Value(x, y)
			if val == 0 {
				continue
			}
			color := tileColor(val)
			if popping != nil && popping.ToX == x && popping.ToY == y {
				color = core.ColorBrightCyan
			}
			g.drawTile(dst, boardX, boardY, float64(x), float64(y), val, color)
		}
	}
}

// renderSliding draws every tile at its interpolated position.
func (g *Game) renderSliding(dst *core.Screen, boardX, boardY int) {
	for i := range g.animations {
		a := &g.animations[i]
		x, y := a.interpolatePosition()
		g.drawTile(dst, boardX, boardY, x, y, a.Value, tileColor(a.Value))
	}
}

// drawTile writes a centered value for a tile at board position (x, y).
// Board y grows upward while screen rows grow downward.
func (g *Game) drawTile(dst *core.Screen, boardX, boardY int, x, y float64, value int, color core.Color) {
	row := float64(g.size-1) - y
	px := boardX + int(math.Round(x*cellWidth)) + 1
	py := boardY + int(math.Round(row*cellHeight)) + 1

	valStr := strconv.Itoa(value)
	padLeft := max((cellWidth-1-len(valStr))/2, 0)
	dst.DrawTextColored(px+padLeft, py, valStr, color)
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	switch {
	case g.paused:
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
	case g.levelCleared:
		targetStr := fmt.Sprintf("Target %d reached!", g.currentTarget)
		if g.levelIndex >= LevelCount()-1 {
			g.drawOverlay(dst, centerX, centerY, targetStr, "Final level complete!")
		} else {
			g.drawOverlay(dst, centerX, centerY, targetStr, fmt.Sprintf("Next: Level %d", g.levelIndex+2))
		}
	case g.won && g.variant.Mode == ModeCampaign:
		g.drawOverlay(dst, centerX, centerY, "CAMPAIGN COMPLETE!", "You are the champion!", "Press R to restart")
	case g.won:
		g.drawOverlay(dst, centerX, centerY, "YOU WIN!", fmt.Sprintf("Reached %d", g.currentTarget), "Press R to restart")
	case g.gameOver:
		maxStr := fmt.Sprintf("Max tile: %d", g.state.MaxTile())
		g.drawOverlay(dst, centerX, centerY, "GAME OVER", maxStr, "Press R to restart")
	}
}

// drawOverlay draws a centered text box.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := core.Rect{W: maxLen + 4, H: len(lines) + 2}
	box.X = centerX - box.W/2
	box.Y = centerY - box.H/2

	dst.FillRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD/HJKL: Move | P: Pause | R: Restart | Q: Quit"
}
