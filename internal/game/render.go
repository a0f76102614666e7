package game

import (
	"fmt"
	"math"

	"github.com/mkraev/tiltmaze/internal/core"
	"github.com/mkraev/tiltmaze/internal/geom"
)

// Visual characters for rendering
const (
	WallChar   = '▓'
	BallChar   = '●'
	CenterChar = '·'
	ExitChar   = '░'
)

// hudRows is reserved at the top of the screen for status text.
const hudRows = 2

// Render draws the current session state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH))
		return
	}

	g.renderHUD(dst)
	g.renderMaze(dst)
	g.renderBall(dst)
	g.renderOverlay(dst)
}

// renderHUD draws the attempt counter and session stats.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Attempt: %d", g.attempt))
	dst.DrawTextCentered(0, fmt.Sprintf("Escaped: %d", g.completed))

	elapsed := float64(g.tickCount) * g.stepper.TickInterval()
	timeText := fmt.Sprintf("%5.1fs", elapsed)
	dst.DrawText(dst.Width()-len(timeText)-1, 0, timeText)
}

// projection maps maze-local coordinates to screen cells.
type projection struct {
	cx, cy float64 // screen center in cells
	scale  float64 // cells per world unit, vertical
	sin    float64
	cos    float64
}

// newProjection fits the full maze into the drawable area. Terminal
// cells are roughly twice as tall as wide, so x gets double scale to
// keep the maze circular.
func (g *Game) newProjection(dst *core.Screen) projection {
	usableW := float64(dst.Width() - 2)
	usableH := float64(dst.Height() - hudRows - 1)
	outer := g.cfg.Maze.OuterRadius

	scale := usableH / 2 / outer
	if hScale := usableW / 4 / outer; hScale < scale {
		scale = hScale
	}

	return projection{
		cx:    float64(dst.Width()) / 2,
		cy:    float64(hudRows) + usableH/2,
		scale: scale,
		sin:   math.Sin(g.angle),
		cos:   math.Cos(g.angle),
	}
}

// cell rotates a maze-local point by the current maze angle and maps
// it to a screen cell.
func (p projection) cell(v geom.Vec2) (int, int) {
	rx := v.X*p.cos - v.Y*p.sin
	ry := v.X*p.sin + v.Y*p.cos
	x := p.cx + rx*p.scale*2
	y := p.cy + ry*p.scale
	return int(math.Round(x)), int(math.Round(y))
}

// renderMaze rasterizes the wall segments. Each segment is sampled at
// sub-cell steps so rotated walls stay contiguous on screen.
func (g *Game) renderMaze(dst *core.Screen) {
	p := g.newProjection(dst)

	step := 0.4 / p.scale
	for _, seg := range g.segments {
		d := seg.B.Sub(seg.A)
		length := d.Len()
		n := int(length/step) + 1
		for i := 0; i <= n; i++ {
			pt := seg.A.Add(d.Scale(float64(i) / float64(n)))
			x, y := p.cell(pt)
			dst.SetCell(x, y, WallChar, core.ColorGray)
		}
	}

	// Mark the exit opening on the rim so the player can aim for it.
	g.renderExit(dst, p)

	x, y := p.cell(geom.Vec2{})
	dst.SetCell(x, y, CenterChar, core.ColorBlue)
}

// renderExit draws the gap in the outer rim with a lighter shade.
func (g *Game) renderExit(dst *core.Screen, p projection) {
	cfg := g.labyrinth.Config
	exit := g.labyrinth.Exit
	sliceAngle := cfg.SliceAngle()

	a0 := float64(exit.SliceStart) * sliceAngle
	a1 := a0 + float64(exit.SliceCount)*sliceAngle
	span := a1 - a0

	steps := int(span/0.02) + 2
	for i := 0; i <= steps; i++ {
		a := a0 + span*float64(i)/float64(steps)
		pt := geom.Vec2{
			X: cfg.OuterRadius * math.Cos(a),
			Y: cfg.OuterRadius * math.Sin(a),
		}
		x, y := p.cell(pt)
		dst.SetCell(x, y, ExitChar, core.ColorGreen)
	}
}

// renderBall draws the ball at its current position.
func (g *Game) renderBall(dst *core.Screen) {
	p := g.newProjection(dst)
	x, y := p.cell(g.ball.Pos)
	dst.SetCell(x, y, BallChar, core.ColorYellow)
}

// renderOverlay draws session state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StatePaused:
		dst.DrawTextCentered(dst.Height()/2, "PAUSED")
		dst.DrawTextCentered(dst.Height()/2+1, "Press P to resume")

	case StateEscaped:
		dst.DrawTextColored((dst.Width()-8)/2, dst.Height()/2, "ESCAPED!", core.ColorGreen)
		stats := fmt.Sprintf("time %.1fs  bumps %d", g.lastSnap.Elapsed, g.lastSnap.Collisions)
		dst.DrawTextCentered(dst.Height()/2+1, stats)
	}
}
