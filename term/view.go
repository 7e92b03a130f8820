package term

import (
	"math"

	"github.com/PrincetonUniversity/boidswarm"
	"github.com/gdamore/tcell/v2"
)

const (
	boidRune     = '●'
	personalRune = '◉'
	bitRune      = '▪'
)

var background = tcell.StyleDefault.Background(tcell.NewRGBColor(5, 5, 5))

// A view maps the swarm onto the cells of a screen.
// It is the Surface of the swarm it draws.
type view struct {
	screen tcell.Screen
	sx, sy float64 // pixels per cell
	styles map[string]tcell.Style
}

func newView(screen tcell.Screen, scale float64) *view {
	return &view{
		screen: screen,
		sx:     scale,
		sy:     2 * scale,
		styles: make(map[string]tcell.Style),
	}
}

// Size returns the size of the screen in pixels.
func (v *view) Size() (float64, float64) {
	w, h := v.screen.Size()
	return float64(w) * v.sx, float64(h) * v.sy
}

// toWorld returns the pixel at the center of cell (x, y).
func (v *view) toWorld(x, y int) (float64, float64) {
	return (float64(x) + 0.5) * v.sx, (float64(y) + 0.5) * v.sy
}

// toCell returns the cell containing p.
func (v *view) toCell(p boidswarm.Vec2) (int, int) {
	return int(math.Floor(p.X / v.sx)), int(math.Floor(p.Y / v.sy))
}

func (v *view) style(color string) tcell.Style {
	st, ok := v.styles[color]
	if !ok {
		r, g, b := boidswarm.RGB8(color)
		st = background.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
		v.styles[color] = st
	}
	return st
}

// draw paints the bits, then the boids on top, and shows the screen.
// Cells outside the screen are ignored by tcell.
func (v *view) draw(s *boidswarm.Swarm) {
	v.screen.Fill(' ', background)
	for _, b := range s.Bits {
		x, y := v.toCell(b.Pos)
		v.screen.SetContent(x, y, bitRune, nil, v.style(b.Color))
	}
	for _, b := range s.Boids {
		r := boidRune
		if b.Personal {
			r = personalRune
		}
		x, y := v.toCell(b.Pos)
		v.screen.SetContent(x, y, r, nil, v.style(b.Color))
	}
	v.screen.Show()
}
