package boidswarm

import "math"

// Params holds the fixed constants of the animation.
// The zero value is not usable, start from DefaultParams.
type Params struct {
	// World
	Padding float64 // margin beyond the visible area before wrapping

	// Boids
	Speed         float64 // unit: px/step
	MaxTurn       float64 // unit: rad/step
	Vision        float64 // sensing radius, unit: px
	Radius        float64 // default visual radius, unit: px
	Color         string  // default color tag
	PersonalColor string  // color of the personal boid
	PersonalSize  float64 // radius of the personal boid
	PersonalSpeed float64 // speed of the personal boid once launched
	PersonalHold  int     // steps the personal boid waits before launch

	// Destroy bits
	DestroyBitsFactor float64 // bits per unit of radius
	BitSpeedMin       int     // unit: px/step
	BitSpeedMax       int     // unit: px/step
	BitLifeMin        int     // travel distance, unit: px
	BitLifeMax        int     // travel distance, unit: px
	BitSizeMin        int     // unit: px
	BitSizeMax        int     // unit: px

	// Patterned spawn
	PatternMaxTries int // rejected samples allowed per placed boid
}

// DefaultParams are the default parameters.
var DefaultParams = Params{
	Padding:           4,
	Speed:             12,
	MaxTurn:           math.Pi / 15,
	Vision:            100,
	Radius:            3,
	Color:             "#006a6b",
	PersonalColor:     "#00fcff",
	PersonalSize:      11,
	PersonalSpeed:     13,
	PersonalHold:      30,
	DestroyBitsFactor: 3.0,
	BitSpeedMin:       5,
	BitSpeedMax:       10,
	BitLifeMin:        50,
	BitLifeMax:        192,
	BitSizeMin:        2,
	BitSizeMax:        4,
	PatternMaxTries:   10000,
}

// BitsPerBoid returns the number of destroy bits released by a boid of radius r.
func (p *Params) BitsPerBoid(r float64) int {
	return int(math.Floor(r*p.DestroyBitsFactor)) + 1
}
