package boidswarm

import "math"

// State contains the full kinematic state of a boid.
type State struct {
	Pos Vec2    // position in pixels
	Dir float64 // heading in radians
}

// Parameters contains the motion parameters of a boid.
type Parameters struct {
	Speed   float64 // speed in pixels per step
	MaxTurn float64 // maximum turning rate in radians per step
	Vision  float64 // sensing radius in pixels
}

// Style contains the display properties of a boid.
type Style struct {
	Color  string  // color tag, e.g. "#006a6b"
	Radius float64 // visual radius in pixels
}

// A Boid has a state, parameters and a style.
type Boid struct {
	State
	Parameters
	Style

	Personal bool // the distinguished boid added by AddPersonal
	hold     int  // steps left before the boid starts moving
}

// Steer updates the heading of boid number self of s.
// view holds the states of all boids of s as they were at the start of the step.
func (b *Boid) Steer(s *Swarm, self int, view []State) {
	w, h := s.Width, s.Height

	// attractor overrides everything
	if s.Attractor != nil {
		b.Dir = turn(b.Dir, Bearing(b.Pos, s.Attractor.Pos), b.MaxTurn)
		return
	}

	// flee a visible predator
	if s.Predator != nil && ToroidalDistance(b.Pos, s.Predator.Pos, w, h) < b.Vision {
		b.Dir = turn(b.Dir, Bearing(s.Predator.Pos, b.Pos), b.MaxTurn)
		return
	}

	neighbors := b.Neighbors(s, self, view)
	if len(neighbors) == 0 {
		return
	}

	var meanh, mean, nearest Vec2
	mindist := math.Inf(1)
	for _, i := range neighbors {
		q := view[i]
		d := ToroidalDistance(b.Pos, q.Pos, w, h)
		sin, cos := math.Sincos(q.Dir)
		meanh.X += cos
		meanh.Y += sin
		mean.X += q.Pos.X
		mean.Y += q.Pos.Y
		if d < mindist {
			mindist = d
			nearest = q.Pos
		}
	}

	var target float64
	if mindist < 2*b.Radius {
		// keep away
		target = Bearing(nearest, b.Pos)
	} else {
		// match heading and move towards center, 3:1
		k := float64(len(neighbors))
		heading := math.Atan2(meanh.Y/k, meanh.X/k)
		center := Bearing(b.Pos, Vec2{X: mean.X / k, Y: mean.Y / k})
		target = MeanAngle([]float64{heading, heading, heading, center})
	}
	b.Dir = turn(b.Dir, target, b.MaxTurn)
}

// Move advances the boid along its heading and wraps it
// into the padded domain of s.
func (b *Boid) Move(s *Swarm) {
	if b.hold > 0 {
		b.hold--
		return
	}
	sin, cos := math.Sincos(b.Dir)
	p := s.Padding
	b.Pos.X = Wrap(b.Pos.X+cos*b.Speed, -p, s.Width+2*p)
	b.Pos.Y = Wrap(b.Pos.Y+sin*b.Speed, -p, s.Height+2*p)
}

// Neighbors returns the indices of the boids of view within vision range
// of boid number self.
func (b *Boid) Neighbors(s *Swarm, self int, view []State) []int {
	var out []int
	for i, q := range view {
		if i != self && ToroidalDistance(b.Pos, q.Pos, s.Width, s.Height) < b.Vision {
			out = append(out, i)
		}
	}
	return out
}
