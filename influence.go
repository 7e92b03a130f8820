package boidswarm

// A Predator scares away the boids that can see it.
type Predator struct {
	Pos Vec2
}

// MoveTo moves the predator to (x, y).
func (p *Predator) MoveTo(x, y float64) {
	p.Pos = Vec2{X: x, Y: y}
}

// An Attractor draws every boid toward it regardless of distance.
// While present it takes precedence over the predator.
type Attractor struct {
	Pos Vec2
}

// MoveTo moves the attractor to (x, y).
func (a *Attractor) MoveTo(x, y float64) {
	a.Pos = Vec2{X: x, Y: y}
}
