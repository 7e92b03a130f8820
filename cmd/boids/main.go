// Command boids runs the boids animation.
//
// Usage
//
// The boids command takes one optional argument:
//
//	boids [config_file]
//
// It is the path to a TOML config file.
// If no config file is specified, an interactive animation
// with default parameters will run in an OpenGL window.
//
// Config file
//
// Every field of Config can be set at the top level of the file; the
// named parameters of the animation live in a [Params] table:
//
//	Frontend = "terminal"
//	SwarmSize = 300
//
//	[Params]
//	Speed = 10
//	Vision = 80
//
// Interactive mode
//
// Moving the pointer scares the boids away, holding the left button
// attracts them and releasing it destroys the boids under the pointer.
// Space pauses, right arrow steps once while paused, N adds boids,
// Z places them in the logo, P adds the personal boid, C clears the
// swarm and Esc quits.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/PrincetonUniversity/boidswarm"
	"github.com/PrincetonUniversity/boidswarm/opengl"
	"github.com/PrincetonUniversity/boidswarm/sound"
	"github.com/PrincetonUniversity/boidswarm/term"
)

const usage = `Usage: boids [config_file]

The first argument is optional and is the path to a TOML config file.
If no config file is specified, an interactive animation
with default parameters will run in an OpenGL window.
`

func init() {
	// Most OpenGL functions have to run from the main thread.
	// This is needed to arrange that main() runs on main thread.
	// See https://github.com/golang/go/wiki/LockOSThread for more info.
	runtime.LockOSThread()
}

func main() {
	var conf *Config
	var err error
	switch len(os.Args) {
	case 1:
		c := DefaultConf
		conf = &c
	case 2:
		conf, err = ParseConfig(os.Args[1])
	default:
		err = fmt.Errorf("%d arguments provided (0 required, 1 optional)\n\n%s", len(os.Args)-1, usage)
	}
	if err != nil {
		Fatal(err)
	}

	log := NewLogger(os.Stderr, conf.LogLevel)

	// setup animation
	s := setup(conf, log)

	player := sound.Player{Log: log}
	onDestroy := func(n int) {
		log.Debugf("%d boids destroyed", n)
		player.Pop(n)
	}
	if conf.Sound && conf.Frontend != "headless" {
		if err := player.Init(); err != nil {
			// non-fatal, the animation runs without sound
			log.Warnf("%v", err)
		}
	}

	switch conf.Frontend {
	case "opengl":
		err = opengl.Run(s, &opengl.Config{
			Title:     conf.Title,
			Width:     conf.Width,
			Height:    conf.Height,
			Tick:      conf.Tick(),
			Paused:    conf.Paused,
			SwarmSize: conf.SwarmSize,
			OnDestroy: onDestroy,
			Log:       log,
		})
	case "terminal":
		err = term.Run(s, &term.Config{
			Scale:     conf.Scale,
			Tick:      conf.Tick(),
			Paused:    conf.Paused,
			SwarmSize: conf.SwarmSize,
			OnDestroy: onDestroy,
			Log:       log,
		})
	case "headless":
		RunHeadless(conf, s, log)
	}
	if err != nil {
		Fatal(err)
	}
}

// Fatal prints an error on the standard error and exits with a non-zero status.
func Fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	os.Exit(1)
}

// setup creates the swarm and its initial population.
func setup(conf *Config, log *Logger) *boidswarm.Swarm {
	s := boidswarm.NewSwarm(float64(conf.Width), float64(conf.Height), conf.Params)
	s.Log = log
	seed := conf.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s.Rand = rand.New(rand.NewSource(seed))

	if conf.Pattern {
		n := s.PlaceLogo(conf.SwarmSize)
		log.Infof("placed %d boids in the logo", n)
	} else {
		s.SpawnCenter(conf.SwarmSize)
	}
	if conf.Personal {
		s.AddPersonal()
	}
	log.Infof("%s frontend, %d boids, seed %d", conf.Frontend, len(s.Boids), seed)
	return s
}
