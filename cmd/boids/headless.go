package main

import (
	"github.com/PrincetonUniversity/boidswarm"
)

// RunHeadless runs conf.Steps steps without any display and logs the
// state of the swarm every conf.StatsEvery steps.
func RunHeadless(conf *Config, s *boidswarm.Swarm, log *Logger) boidswarm.Stats {
	for k := 1; k <= conf.Steps; k++ {
		s.Step()
		if conf.StatsEvery > 0 && k%conf.StatsEvery == 0 {
			st := s.Stats()
			log.Infof("step %d: %d boids, %d bits, polarization %.3f", k, st.Boids, st.Bits, st.Polarization)
		}
	}
	st := s.Stats()
	log.Infof("done after %d steps: %d boids, polarization %.3f", conf.Steps, st.Boids, st.Polarization)
	return st
}
