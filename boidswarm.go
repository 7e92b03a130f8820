// Package boidswarm runs a real-time swarm of boids on a toroidal plane.
//
// Boids steer locally: they keep away from a neighbor that comes too close,
// otherwise they match the heading of their neighbors and drift toward
// their center. A pointer can act as a predator the boids flee, or as an
// attractor they all head to. Destroyed boids burst into short-lived bits.
//
// A Swarm is not safe for concurrent use. Hosts call Step at their own
// cadence and apply input between steps.
package boidswarm

import (
	"math"
	"math/rand"
	"time"
)

// A Surface reports the current size of the area the swarm is drawn on.
type Surface interface {
	Size() (width, height float64)
}

// A Swarm contains all the state and parameters of an animation.
type Swarm struct {
	Width   float64
	Height  float64
	Padding float64

	Boids     []*Boid
	Bits      []*Bit
	Predator  *Predator  // nil when absent
	Attractor *Attractor // nil when absent

	Params  Params
	Surface Surface    // if set, queried for the bounds at every step
	Rand    *rand.Rand // source of all randomness
	Log     Logger

	view []State // snapshot buffer reused across steps
}

// NewSwarm returns an empty swarm of the given size.
func NewSwarm(width, height float64, p Params) *Swarm {
	return &Swarm{
		Width:   width,
		Height:  height,
		Padding: p.Padding,
		Params:  p,
		Rand:    rand.New(rand.NewSource(time.Now().UnixNano())),
		Log:     NopLogger(),
	}
}

// Step runs a single animation step.
//
// Every boid decides its heading from the positions and headings all boids
// had at the start of the step, so the outcome does not depend on the order
// of the boids. Bits that reach the end of their life are dropped.
func (s *Swarm) Step() {
	if s.Surface != nil {
		// a minimized window reports an empty surface, keep the last bounds
		if w, h := s.Surface.Size(); w > 0 && h > 0 {
			s.Width, s.Height = w, h
		}
	}

	s.view = s.view[:0]
	for _, b := range s.Boids {
		s.view = append(s.view, b.State)
	}
	for i, b := range s.Boids {
		b.Steer(s, i, s.view)
		b.Move(s)
	}

	bits := s.Bits[:0]
	for _, b := range s.Bits {
		if b.Update() {
			bits = append(bits, b)
		}
	}
	for i := len(bits); i < len(s.Bits); i++ {
		s.Bits[i] = nil
	}
	s.Bits = bits
}

// Spawn adds n boids at (x, y) with random headings.
func (s *Swarm) Spawn(n int, x, y float64, color string, radius float64) {
	for i := 0; i < n; i++ {
		s.Boids = append(s.Boids, s.newBoid(x, y, color, radius))
	}
	if n > 0 {
		s.logger().Debugf("spawned %d boids at (%.0f, %.0f), population %d", n, x, y, len(s.Boids))
	}
}

// SpawnCenter adds n default boids at the center of the world.
func (s *Swarm) SpawnCenter(n int) {
	s.Spawn(n, s.Width/2, s.Height/2, s.Params.Color, s.Params.Radius)
}

// AddPersonal adds the personal boid at the center of the world.
// It stays still for a while before flying off.
// There is at most one personal boid; AddPersonal returns false if it already exists.
func (s *Swarm) AddPersonal() bool {
	for _, b := range s.Boids {
		if b.Personal {
			return false
		}
	}
	b := s.newBoid(s.Width/2, s.Height/2, s.Params.PersonalColor, s.Params.PersonalSize)
	b.Personal = true
	b.Speed = s.Params.PersonalSpeed
	b.hold = s.Params.PersonalHold
	s.Boids = append(s.Boids, b)
	return true
}

// DestroyAt removes every boid whose center is closer to (x, y) than its
// own radius along both axes and releases its bits.
// It returns the number of boids removed.
func (s *Swarm) DestroyAt(x, y float64) int {
	var n int
	boids := s.Boids[:0]
	for _, b := range s.Boids {
		if math.Abs(b.Pos.X-x) < b.Radius && math.Abs(b.Pos.Y-y) < b.Radius {
			s.shatter(b)
			n++
			continue
		}
		boids = append(boids, b)
	}
	for i := len(boids); i < len(s.Boids); i++ {
		s.Boids[i] = nil
	}
	s.Boids = boids
	if n > 0 {
		s.logger().Debugf("destroyed %d boids at (%.0f, %.0f)", n, x, y)
	}
	return n
}

// shatter releases the bits of a destroyed boid.
func (s *Swarm) shatter(b *Boid) {
	for i := s.Params.BitsPerBoid(b.Radius); i > 0; i-- {
		s.Bits = append(s.Bits, NewBit(b, &s.Params, s.random()))
	}
}

// SetPredator creates the predator at (x, y) or moves it there.
func (s *Swarm) SetPredator(x, y float64) {
	if s.Predator == nil {
		s.Predator = new(Predator)
	}
	s.Predator.MoveTo(x, y)
}

// ClearPredator removes the predator.
func (s *Swarm) ClearPredator() {
	s.Predator = nil
}

// SetAttractor creates the attractor at (x, y) or moves it there.
func (s *Swarm) SetAttractor(x, y float64) {
	if s.Attractor == nil {
		s.Attractor = new(Attractor)
	}
	s.Attractor.MoveTo(x, y)
}

// ClearAttractor removes the attractor.
func (s *Swarm) ClearAttractor() {
	s.Attractor = nil
}

// Clear removes all boids. Bits in flight are left alone.
func (s *Swarm) Clear() {
	s.Boids = nil
}

func (s *Swarm) newBoid(x, y float64, color string, radius float64) *Boid {
	return &Boid{
		State: State{
			Pos: Vec2{X: x, Y: y},
			Dir: 2*math.Pi*s.random().Float64() - math.Pi,
		},
		Parameters: Parameters{
			Speed:   s.Params.Speed,
			MaxTurn: s.Params.MaxTurn,
			Vision:  s.Params.Vision,
		},
		Style: Style{
			Color:  color,
			Radius: radius,
		},
	}
}

func (s *Swarm) random() *rand.Rand {
	if s.Rand == nil {
		s.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return s.Rand
}

func (s *Swarm) logger() Logger {
	if s.Log == nil {
		return NopLogger()
	}
	return s.Log
}
