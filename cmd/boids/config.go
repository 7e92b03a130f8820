package main

import (
	"math"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/PrincetonUniversity/boidswarm"
	"github.com/pkg/errors"
)

// Config holds the various parameters required for running an animation.
type Config struct {
	// Frontend is one of opengl, terminal or headless.
	Frontend string

	Title      string
	Width      int     // unit: px (opengl window, headless world)
	Height     int     // unit: px
	TickMillis int     // duration of a step
	Scale      float64 // terminal only, unit: px per column
	Paused     bool    // start paused (interactive only)

	SwarmSize int   // number of boids
	Pattern   bool  // start with the boids inside the logo
	Personal  bool  // add the personal boid at start
	Seed      int64 // 0 seeds from the clock

	Steps      int // number of steps (headless only)
	StatsEvery int // log stats every so many steps (headless only), 0 disables

	Sound    bool   // pop when boids are destroyed
	LogLevel string // debug, info, warn or error

	Params boidswarm.Params
}

// DefaultConf are the default parameters.
var DefaultConf = Config{
	Frontend:   "opengl",
	Title:      "Boids",
	Width:      1150,
	Height:     700,
	TickMillis: 33,
	Scale:      8,
	SwarmSize:  150,
	Steps:      1000,
	StatsEvery: 100,
	Sound:      true,
	LogLevel:   "info",
	Params:     boidswarm.DefaultParams,
}

// ParseConfig parses the TOML config file whose path is provided.
func ParseConfig(path string) (*Config, error) {
	// config file overwrites default parameters
	conf := DefaultConf
	md, err := toml.DecodeFile(path, &conf)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot parse %s", path)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return nil, errors.Errorf("%s: unknown key %q", path, undec[0].String())
	}
	return &conf, conf.Validate()
}

// Tick returns the duration of a step.
func (c *Config) Tick() time.Duration {
	return time.Duration(c.TickMillis) * time.Millisecond
}

// Validate checks that the configuration makes sense.
func (c *Config) Validate() error {
	switch c.Frontend {
	case "opengl", "terminal", "headless":
	default:
		return errors.Errorf("bad frontend %q", c.Frontend)
	}
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Errorf("bad size %dx%d", c.Width, c.Height)
	case c.TickMillis <= 0:
		return errors.Errorf("bad tick %dms", c.TickMillis)
	case c.SwarmSize < 0:
		return errors.Errorf("bad swarm size %d", c.SwarmSize)
	case c.Frontend == "terminal" && !(c.Scale > 0 && !math.IsInf(c.Scale, 0)):
		return errors.Errorf("bad scale %g", c.Scale)
	}
	return validateParams(&c.Params)
}

func validateParams(p *boidswarm.Params) error {
	floats := []struct {
		name string
		v    float64
	}{
		{"Padding", p.Padding},
		{"Speed", p.Speed},
		{"MaxTurn", p.MaxTurn},
		{"Vision", p.Vision},
		{"Radius", p.Radius},
		{"PersonalSize", p.PersonalSize},
		{"PersonalSpeed", p.PersonalSpeed},
		{"DestroyBitsFactor", p.DestroyBitsFactor},
	}
	for _, f := range floats {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return errors.Errorf("params: %s is not a finite number", f.name)
		}
	}
	if p.Padding < 0 {
		return errors.Errorf("params: negative padding %g", p.Padding)
	}
	if p.Speed < 0 || p.PersonalSpeed < 0 {
		return errors.New("params: negative speed")
	}
	if p.MaxTurn <= 0 || p.Vision <= 0 || p.Radius <= 0 || p.PersonalSize <= 0 {
		return errors.New("params: turn rate, vision and radii must be positive")
	}
	if p.DestroyBitsFactor < 0 {
		return errors.Errorf("params: negative destroy bits factor %g", p.DestroyBitsFactor)
	}
	if p.PersonalHold < 0 {
		return errors.Errorf("params: negative personal hold %d", p.PersonalHold)
	}
	if p.PatternMaxTries < 0 {
		return errors.Errorf("params: negative pattern max tries %d", p.PatternMaxTries)
	}
	// a bit that does not move never expires
	if p.BitSpeedMin <= 0 {
		return errors.Errorf("params: bit speed must be positive, got %d", p.BitSpeedMin)
	}
	ranges := []struct {
		name     string
		min, max int
	}{
		{"bit speed", p.BitSpeedMin, p.BitSpeedMax},
		{"bit life", p.BitLifeMin, p.BitLifeMax},
		{"bit size", p.BitSizeMin, p.BitSizeMax},
	}
	for _, r := range ranges {
		if r.min < 0 || r.max < r.min {
			return errors.Errorf("params: bad %s range [%d, %d]", r.name, r.min, r.max)
		}
	}
	for _, tag := range []string{p.Color, p.PersonalColor} {
		if _, _, _, err := boidswarm.RGB(tag); err != nil {
			return errors.Wrap(err, "params")
		}
	}
	return nil
}
