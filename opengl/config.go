// Package opengl runs an interactive swarm in an OpenGL window.
//
// The pointer drives the predator, holding the left button turns it into
// an attractor and releasing it destroys the boids under the pointer.
// Keys: Esc quits, Space pauses, Right steps once while paused,
// N spawns boids at the center, Z spawns them in the logo, P adds the
// personal boid and C clears the swarm.
package opengl

import (
	"time"

	"github.com/PrincetonUniversity/boidswarm"
)

// Config holds the parameters of the OpenGL driver.
type Config struct {
	Title  string
	Width  int           // initial window width in screen coordinates
	Height int           // initial window height in screen coordinates
	Tick   time.Duration // duration of a step
	Paused bool          // start paused?

	SwarmSize int              // boids added by N and Z
	OnDestroy func(n int)      // called after boids are destroyed
	Log       boidswarm.Logger // may be nil
}

func (c *Config) tick() time.Duration {
	if c.Tick <= 0 {
		return 33 * time.Millisecond
	}
	return c.Tick
}

func (c *Config) logger() boidswarm.Logger {
	if c.Log == nil {
		return boidswarm.NopLogger()
	}
	return c.Log
}
