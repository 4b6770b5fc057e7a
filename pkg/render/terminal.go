// pkg/render/terminal.go
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/opd-ai/go-stardrift/pkg/engine"
	"github.com/opd-ai/go-stardrift/pkg/entity"
	"github.com/opd-ai/go-stardrift/pkg/physics"
)

// TerminalRenderer provides a simple ASCII-based rendering for terminals.
// Ship and projectiles arrive in world space and are offset by the camera
// position; stars are already in viewport space.
type TerminalRenderer struct {
	width  int
	height int
	buffer [][]rune

	viewportWidth  float64
	viewportHeight float64
	cameraPos      physics.Vector2D

	out io.Writer
}

// NewTerminalRenderer creates a terminal renderer that maps the given
// viewport onto a width x height character grid.
func NewTerminalRenderer(width, height int, viewportWidth, viewportHeight float64) *TerminalRenderer {
	buffer := make([][]rune, height)
	for i := range buffer {
		buffer[i] = make([]rune, width)
	}

	return &TerminalRenderer{
		width:          width,
		height:         height,
		buffer:         buffer,
		viewportWidth:  viewportWidth,
		viewportHeight: viewportHeight,
		out:            os.Stdout,
	}
}

// SetOutput redirects frame output, mainly for tests.
func (r *TerminalRenderer) SetOutput(w io.Writer) {
	r.out = w
}

// SetCamera records the camera's top-left world position for this frame.
// Call it before DrawFrame.
func (r *TerminalRenderer) SetCamera(pos physics.Vector2D) {
	r.cameraPos = pos
}

// viewportToCell maps viewport coordinates onto the character grid.
func (r *TerminalRenderer) viewportToCell(pos physics.Vector2D) (int, int) {
	x := int(pos.X / r.viewportWidth * float64(r.width))
	y := int(pos.Y / r.viewportHeight * float64(r.height))
	return x, y
}

// worldToCell maps world coordinates through the camera onto the grid.
func (r *TerminalRenderer) worldToCell(pos physics.Vector2D) (int, int) {
	return r.viewportToCell(pos.Sub(r.cameraPos))
}

func (r *TerminalRenderer) put(x, y int, c rune) {
	if x >= 0 && x < r.width && y >= 0 && y < r.height {
		r.buffer[y][x] = c
	}
}

// Clear implements Renderer
func (r *TerminalRenderer) Clear() {
	for y := range r.buffer {
		for x := range r.buffer[y] {
			r.buffer[y][x] = ' '
		}
	}
}

// Present implements Renderer
func (r *TerminalRenderer) Present() {
	// Clear terminal
	fmt.Fprint(r.out, "\033[H\033[2J")

	fmt.Fprintln(r.out, "+"+strings.Repeat("-", r.width)+"+")
	for y := range r.buffer {
		fmt.Fprint(r.out, "|")
		for x := range r.buffer[y] {
			fmt.Fprint(r.out, string(r.buffer[y][x]))
		}
		fmt.Fprintln(r.out, "|")
	}
	fmt.Fprintln(r.out, "+"+strings.Repeat("-", r.width)+"+")
}

// RenderStar implements Renderer
func (r *TerminalRenderer) RenderStar(star engine.StarState) {
	x, y := r.viewportToCell(star.Position)

	symbol := '.'
	switch star.Shape {
	case entity.StarDiamond:
		symbol = '+'
	case entity.StarCross:
		symbol = 'x'
	}
	if star.Brightness < 0.6 {
		symbol = ','
	}
	r.put(x, y, symbol)
}

// RenderShip implements Renderer
func (r *TerminalRenderer) RenderShip(ship engine.ShipState) {
	x, y := r.worldToCell(ship.Position)

	symbol := '@'
	if ship.Mode == entity.ModeDisabled {
		symbol = '#'
	}
	r.put(x, y, symbol)
}

// RenderProjectile implements Renderer
func (r *TerminalRenderer) RenderProjectile(projectile engine.ProjectileState) {
	x, y := r.worldToCell(projectile.Position)

	symbol := '.'
	if projectile.Homing {
		symbol = '*'
	}
	r.put(x, y, symbol)
}
