package boidswarm

import (
	"math"
	"math/rand"
)

// A Bit is a short-lived fragment released when a boid is destroyed.
// It flies straight away from where the boid died and expires once it has
// traveled Life pixels. Bits never wrap around the world.
type Bit struct {
	Origin Vec2    // position of the destroyed boid
	Pos    Vec2    // current position
	Dir    float64 // heading in radians
	Speed  float64 // unit: px/step
	Size   float64 // side of the square, unit: px
	Life   float64 // maximum travel distance, unit: px
	Color  string  // inherited from the boid
}

// NewBit returns a bit released by b with randomized size, speed and life.
func NewBit(b *Boid, p *Params, r *rand.Rand) *Bit {
	return &Bit{
		Origin: b.Pos,
		Pos:    b.Pos,
		Dir:    2*math.Pi*r.Float64() - math.Pi,
		Speed:  float64(randInt(r, p.BitSpeedMin, p.BitSpeedMax)),
		Size:   float64(randInt(r, p.BitSizeMin, p.BitSizeMax)),
		Life:   float64(randInt(r, p.BitLifeMin, p.BitLifeMax)),
		Color:  b.Color,
	}
}

// Traveled returns the straight-line distance between the bit and its origin.
func (b *Bit) Traveled() float64 {
	return math.Hypot(b.Pos.X-b.Origin.X, b.Pos.Y-b.Origin.Y)
}

// Update advances the bit by one step.
// It returns false once the bit has traveled its whole life distance,
// in which case it must be discarded.
func (b *Bit) Update() bool {
	if b.Traveled() >= b.Life {
		return false
	}
	sin, cos := math.Sincos(b.Dir)
	b.Pos.X += cos * b.Speed
	b.Pos.Y += sin * b.Speed
	return b.Traveled() < b.Life
}

// randInt returns a uniform integer in [min, max].
func randInt(r *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + r.Intn(max-min+1)
}
