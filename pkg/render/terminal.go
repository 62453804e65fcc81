package render

import (
	"io"
	"math"
	"strings"

	"github.com/opd-ai/go-spacewars/pkg/entity"
	"github.com/opd-ai/go-spacewars/pkg/physics"
)

// TerminalRenderer draws frames as ASCII art. World Y points up, so rows
// are flipped when drawn.
type TerminalRenderer struct {
	out         io.Writer
	width       int
	height      int
	buffer      [][]rune
	scale       float64 // world units per character
	centerPos   physics.Vector2D
	ClearScreen bool // emit an ANSI clear before each frame
	frames      uint64
}

// NewTerminalRenderer creates a renderer of width x height characters
func NewTerminalRenderer(out io.Writer, width, height int, scale float64) *TerminalRenderer {
	buffer := make([][]rune, height)
	for i := range buffer {
		buffer[i] = make([]rune, width)
	}

	r := &TerminalRenderer{
		out:    out,
		width:  width,
		height: height,
		buffer: buffer,
		scale:  scale,
	}
	r.Clear()
	return r
}

// FitTerminalRenderer sizes the view so bounds fill width characters.
// Terminal cells are about twice as tall as wide, so half as many rows are used.
func FitTerminalRenderer(out io.Writer, bounds physics.Bounds, width int) *TerminalRenderer {
	scale := 2 * bounds.HalfWidth / float64(width)
	height := int(math.Ceil(bounds.HalfHeight / scale))
	return NewTerminalRenderer(out, width, height, scale)
}

// SetCenter sets the center position of the view
func (r *TerminalRenderer) SetCenter(pos physics.Vector2D) {
	r.centerPos = pos
}

// worldToScreen converts world coordinates to buffer coordinates. Rows are
// twice the height of columns.
func (r *TerminalRenderer) worldToScreen(pos physics.Vector2D) (int, int) {
	screenX := int(math.Floor((pos.X-r.centerPos.X)/r.scale + float64(r.width)/2))
	screenY := int(math.Floor(-(pos.Y-r.centerPos.Y)/(2*r.scale) + float64(r.height)/2))
	return screenX, screenY
}

func (r *TerminalRenderer) plot(pos physics.Vector2D, glyph rune) {
	x, y := r.worldToScreen(pos)
	if x >= 0 && x < r.width && y >= 0 && y < r.height {
		r.buffer[y][x] = glyph
	}
}

// Clear implements entity.Renderer
func (r *TerminalRenderer) Clear() {
	for y := range r.buffer {
		for x := range r.buffer[y] {
			r.buffer[y][x] = ' '
		}
	}
}

// Present implements entity.Renderer. Write errors are ignored.
func (r *TerminalRenderer) Present() {
	var sb strings.Builder
	if r.ClearScreen {
		sb.WriteString("\033[H\033[2J")
	}

	border := "+" + strings.Repeat("-", r.width) + "+\n"
	sb.WriteString(border)
	for y := range r.buffer {
		sb.WriteByte('|')
		sb.WriteString(string(r.buffer[y]))
		sb.WriteString("|\n")
	}
	sb.WriteString(border)

	r.frames++
	_, _ = io.WriteString(r.out, sb.String())
}

// Frame returns the current buffer as lines, without borders
func (r *TerminalRenderer) Frame() []string {
	lines := make([]string, len(r.buffer))
	for i, row := range r.buffer {
		lines[i] = string(row)
	}
	return lines
}

// RenderSun implements entity.Renderer
func (r *TerminalRenderer) RenderSun(sun *entity.Sun) {
	for angle := 0.0; angle < 2*math.Pi; angle += math.Pi / 8 {
		r.plot(sun.Position.Add(physics.FromAngle(angle, sun.Radius)), '*')
	}
	r.plot(sun.Position, 'O')
}

// RenderRocket implements entity.Renderer. The glyph points along the heading.
func (r *TerminalRenderer) RenderRocket(rocket *entity.Rocket) {
	r.plot(rocket.Position, headingGlyph(rocket.Rotation))
}

// RenderProjectile implements entity.Renderer
func (r *TerminalRenderer) RenderProjectile(projectile *entity.Projectile) {
	r.plot(projectile.Position, '.')
}

var headingGlyphs = [...]rune{'>', '^', '<', 'v'}

func headingGlyph(rotation float64) rune {
	quadrant := int(math.Round(physics.NormalizeAngle(rotation)/(math.Pi/2))) % 4
	if quadrant < 0 {
		quadrant += 4
	}
	return headingGlyphs[quadrant]
}
