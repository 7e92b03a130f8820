// Package sound plays the pop heard when boids are destroyed.
package sound

import (
	"sync"
	"time"

	"github.com/PrincetonUniversity/boidswarm"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
)

const sampleRate = beep.SampleRate(44100)

// A Player plays short sound cues. The zero value is silent until Init succeeds.
type Player struct {
	Log boidswarm.Logger // may be nil

	mu    sync.Mutex
	ready bool
}

// Init opens the audio device.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ready {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return errors.Wrap(err, "sound: cannot open audio device")
	}
	p.ready = true
	return nil
}

// Pop plays a short tone whose pitch rises with the number of boids destroyed.
func (p *Player) Pop(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready || n <= 0 {
		return
	}
	pop, err := popTone(n)
	if err != nil {
		if p.Log != nil {
			p.Log.Warnf("%v", err)
		}
		return
	}
	speaker.Play(pop)
}

// popTone returns the 60ms tone played for n destroyed boids.
func popTone(n int) (beep.Streamer, error) {
	tone, err := generators.SineTone(sampleRate, Pitch(n))
	if err != nil {
		return nil, errors.Wrapf(err, "sound: cannot make a %.0f Hz tone", Pitch(n))
	}
	return beep.Take(sampleRate.N(60*time.Millisecond), tone), nil
}

// Pitch returns the frequency in Hz of the pop for n destroyed boids.
func Pitch(n int) float64 {
	f := 440.0
	for i := 1; i < n && f < 1760; i++ {
		f *= 1.0595 // one semitone
	}
	return f
}
