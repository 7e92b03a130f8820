package boidswarm

import "math"

// Stats summarizes the state of a swarm.
type Stats struct {
	Boids        int
	Bits         int
	Polarization float64 // length of the mean heading vector, 1 when all boids are aligned
}

// Stats returns a summary of the swarm.
func (s *Swarm) Stats() Stats {
	st := Stats{Boids: len(s.Boids), Bits: len(s.Bits)}
	if len(s.Boids) == 0 {
		return st
	}
	var x, y float64
	for _, b := range s.Boids {
		sin, cos := math.Sincos(b.Dir)
		x += cos
		y += sin
	}
	n := float64(len(s.Boids))
	st.Polarization = math.Hypot(x/n, y/n)
	return st
}
