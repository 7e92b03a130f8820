// Package input translates pointer events into swarm updates.
//
// Moving the pointer drives the predator. Holding the button down turns the
// pointer into an attractor and, after a while, keeps destroying the boids
// gathered under it. Releasing the button destroys the boids under the
// pointer. Leaving the drawing area removes both influences.
package input

import (
	"time"

	"github.com/PrincetonUniversity/boidswarm"
)

// Default timing of the destruction repeated while the button is held.
const (
	HoldDelay = 4 * time.Second
	HoldEvery = 1500 * time.Millisecond
)

// A Pointer applies pointer events to a swarm.
// All methods must be called from the goroutine that steps the swarm.
type Pointer struct {
	Swarm *boidswarm.Swarm
	Hold  Repeat // destruction while the button is held

	down bool
}

// NewPointer returns a pointer driving s with the default hold timing.
func NewPointer(s *boidswarm.Swarm) *Pointer {
	return &Pointer{
		Swarm: s,
		Hold:  Repeat{Delay: HoldDelay, Every: HoldEvery},
	}
}

// Move handles a pointer motion to (x, y).
func (p *Pointer) Move(x, y float64) {
	p.Swarm.SetPredator(x, y)
	if p.down {
		p.Swarm.SetAttractor(x, y)
	}
}

// Press handles a button press at (x, y).
func (p *Pointer) Press(x, y float64, now time.Time) {
	p.down = true
	p.Swarm.SetAttractor(x, y)
	p.Hold.Start(now)
}

// Release handles a button release at (x, y) and returns the number of
// boids destroyed.
func (p *Pointer) Release(x, y float64) int {
	p.down = false
	p.Swarm.ClearAttractor()
	p.Hold.Cancel()
	return p.Swarm.DestroyAt(x, y)
}

// Leave handles the pointer leaving the drawing area.
func (p *Pointer) Leave() {
	p.down = false
	p.Swarm.ClearPredator()
	p.Swarm.ClearAttractor()
	p.Hold.Cancel()
}

// Down reports whether the button is held.
func (p *Pointer) Down() bool {
	return p.down
}

// Update runs the held-button destruction if it is due and returns the
// number of boids destroyed.
func (p *Pointer) Update(now time.Time) int {
	a := p.Swarm.Attractor
	if a == nil {
		p.Hold.Cancel()
		return 0
	}
	if !p.Hold.Due(now) {
		return 0
	}
	return p.Swarm.DestroyAt(a.Pos.X, a.Pos.Y)
}
