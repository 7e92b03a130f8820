package boidswarm

import "math"

// A Region is a closed area of the plane.
type Region interface {
	Contains(x, y float64) bool
}

// A Rect is an axis-aligned rectangle [Min.X, Max.X) × [Min.Y, Max.Y).
type Rect struct {
	Min Vec2
	Max Vec2
}

// Dx returns the width of r.
func (r Rect) Dx() float64 { return r.Max.X - r.Min.X }

// Dy returns the height of r.
func (r Rect) Dy() float64 { return r.Max.Y - r.Min.Y }

// A Polygon is a closed polygon given by its vertices.
type Polygon []Vec2

// Contains reports whether (x, y) is inside p using the even-odd rule.
func (p Polygon) Contains(x, y float64) bool {
	in := false
	for i, j := 0, len(p)-1; i < len(p); j, i = i, i+1 {
		a, b := p[i], p[j]
		if (a.Y > y) != (b.Y > y) && x < (b.X-a.X)*(y-a.Y)/(b.Y-a.Y)+a.X {
			in = !in
		}
	}
	return in
}

// Bounds returns the smallest rectangle containing p.
func (p Polygon) Bounds() Rect {
	if len(p) == 0 {
		return Rect{}
	}
	r := Rect{Min: p[0], Max: p[0]}
	for _, v := range p[1:] {
		r.Min.X = math.Min(r.Min.X, v.X)
		r.Min.Y = math.Min(r.Min.Y, v.Y)
		r.Max.X = math.Max(r.Max.X, v.X)
		r.Max.Y = math.Max(r.Max.Y, v.Y)
	}
	return r
}

// Translate returns a copy of p moved by (dx, dy).
func (p Polygon) Translate(dx, dy float64) Polygon {
	q := make(Polygon, len(p))
	for i, v := range p {
		q[i] = Vec2{X: v.X + dx, Y: v.Y + dy}
	}
	return q
}

// ZLogo returns the outline of the "Z" logo in page coordinates
// (roughly 565..920 × 80..665). Rounded corners are approximated
// by short straight segments.
func ZLogo() Polygon {
	return Polygon{
		{565, 210}, {565, 80}, {870, 80},
		{900, 88}, {915, 110}, {914, 140}, {890, 182},
		{667, 606}, {920, 606}, {920, 665}, {605, 665},
		{578, 655}, {562, 632}, {558, 605},
		{800, 132}, {653, 132},
		{625, 140}, {608, 165}, {603, 200}, {603, 210},
	}
}

// PlacePatterned adds num default boids at random integer positions of box
// that lie inside r. It gives up after Params.PatternMaxTries rejected
// samples in a row and returns the number of boids placed.
func (s *Swarm) PlacePatterned(num int, r Region, box Rect) int {
	rng := s.random()
	sample := func(min, max float64) float64 {
		return math.Floor(rng.Float64()*(max-min) + min)
	}
	placed := 0
	for placed < num {
		ok := false
		for try := 0; try <= s.Params.PatternMaxTries; try++ {
			x, y := sample(box.Min.X, box.Max.X), sample(box.Min.Y, box.Max.Y)
			if r.Contains(x, y) {
				s.Boids = append(s.Boids, s.newBoid(x, y, s.Params.Color, s.Params.Radius))
				ok = true
				break
			}
		}
		if !ok {
			s.logger().Warnf("patterned spawn: region looks empty, placed %d of %d boids", placed, num)
			break
		}
		placed++
	}
	return placed
}

// PlaceLogo places num boids inside the Z logo centered on the world.
func (s *Swarm) PlaceLogo(num int) int {
	z := ZLogo()
	b := z.Bounds()
	dx := s.Width/2 - (b.Min.X+b.Max.X)/2
	dy := s.Height/2 - (b.Min.Y+b.Max.Y)/2
	z = z.Translate(dx, dy)
	return s.PlacePatterned(num, z, z.Bounds())
}
