// Package term runs an interactive swarm in a terminal.
//
// The world is measured in pixels like in the OpenGL driver: every cell
// covers Scale × 2·Scale pixels. Mouse and keys behave as in the OpenGL
// driver; losing the terminal focus acts as the pointer leaving.
package term

import (
	"time"

	"github.com/PrincetonUniversity/boidswarm"
	"github.com/PrincetonUniversity/boidswarm/input"
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// Config holds the parameters of the terminal driver.
type Config struct {
	Scale  float64       // pixels per column, a row is twice as tall
	Tick   time.Duration // duration of a step
	Paused bool          // start paused?

	SwarmSize int              // boids added by n and z
	OnDestroy func(n int)      // called after boids are destroyed
	Log       boidswarm.Logger // may be nil
}

// Run runs an interactive animation until the user quits.
func Run(s *boidswarm.Swarm, conf *Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "term: cannot create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "term: cannot initialize screen")
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.EnableFocus()
	screen.HideCursor()

	v := newView(screen, conf.scale())
	s.Surface = v
	s.Width, s.Height = v.Size()
	p := input.NewPointer(s)
	log := conf.logger()
	destroyed := func(n int) {
		if n > 0 && conf.OnDestroy != nil {
			conf.OnDestroy(n)
		}
	}

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(conf.tick())
	defer ticker.Stop()

	pause := conf.Paused
	var pressed bool
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
					return nil
				case ev.Key() == tcell.KeyRight:
					if pause {
						s.Step()
					}
				case ev.Key() == tcell.KeyRune:
					switch ev.Rune() {
					case ' ':
						pause = !pause
					case 'n':
						s.SpawnCenter(conf.SwarmSize)
					case 'z':
						s.PlaceLogo(conf.SwarmSize)
					case 'p':
						s.AddPersonal()
					case 'c':
						s.Clear()
					case 'q':
						return nil
					}
				}
			case *tcell.EventMouse:
				x, y := v.toWorld(ev.Position())
				down := ev.Buttons()&tcell.Button1 != 0
				switch {
				case down && !pressed:
					p.Press(x, y, time.Now())
				case !down && pressed:
					destroyed(p.Release(x, y))
				default:
					p.Move(x, y)
				}
				pressed = down
			case *tcell.EventFocus:
				if !ev.Focused {
					pressed = false
					p.Leave()
				}
			case *tcell.EventResize:
				screen.Sync()
				w, h := v.Size()
				log.Debugf("term: resized to %.0fx%.0f px", w, h)
			case *tcell.EventError:
				log.Warnf("term: %v", ev)
			}
		case now := <-ticker.C:
			destroyed(p.Update(now))
			if !pause {
				s.Step()
			}
		}
		v.draw(s)
	}
}

func (c *Config) scale() float64 {
	if c.Scale <= 0 {
		return 8
	}
	return c.Scale
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
