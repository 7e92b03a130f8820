package main

import (
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/PrincetonUniversity/boidswarm"
)

func writeConfig(t *testing.T, text string) string {
	path := filepath.Join(t.TempDir(), "boids.toml")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseConfig(t *testing.T) {
	path := writeConfig(t, `
Frontend = "headless"
SwarmSize = 300
TickMillis = 20
Seed = 42

[Params]
Speed = 10
Vision = 80.5
Color = "#ff8800"
`)
	conf, err := ParseConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if conf.Frontend != "headless" || conf.SwarmSize != 300 || conf.Seed != 42 {
		t.Errorf("top-level keys not decoded: %+v", conf)
	}
	if conf.Tick() != 20*time.Millisecond {
		t.Errorf("tick = %v, want 20ms", conf.Tick())
	}
	if conf.Params.Speed != 10 || conf.Params.Vision != 80.5 || conf.Params.Color != "#ff8800" {
		t.Errorf("params not decoded: %+v", conf.Params)
	}
	// untouched keys keep their defaults
	if conf.Width != 1150 || conf.Params.Radius != 3 || conf.Params.BitLifeMax != 192 {
		t.Errorf("defaults lost: %+v", conf)
	}
	if DefaultConf.SwarmSize != 150 || DefaultConf.Params.Speed != 12 {
		t.Error("parsing modified the defaults")
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name, text, msg string
	}{
		{"unknown key", "Swarmsize2 = 3\n", "unknown key"},
		{"syntax", "SwarmSize = \n", "cannot parse"},
		{"frontend", `Frontend = "vulkan"` + "\n", "bad frontend"},
		{"color", "[Params]\nColor = \"teal\"\n", "bad color"},
		{"bit range", "[Params]\nBitSpeedMin = 20\n", "bit speed"},
		{"nan speed", "[Params]\nSpeed = nan\n", "Speed is not a finite number"},
		{"inf padding", "[Params]\nPadding = inf\n", "Padding is not a finite number"},
		{"still bits", "[Params]\nBitSpeedMin = 0\nBitSpeedMax = 0\n", "bit speed must be positive"},
		{"pattern tries", "[Params]\nPatternMaxTries = -1\n", "pattern max tries"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig(writeConfig(t, tt.text))
			if err == nil {
				t.Fatal("no error")
			}
			if !strings.Contains(err.Error(), tt.msg) {
				t.Errorf("error %q does not mention %q", err, tt.msg)
			}
		})
	}
	if _, err := ParseConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("no error for a missing file")
	}
}

func TestValidate(t *testing.T) {
	if err := DefaultConf.Validate(); err != nil {
		t.Fatalf("default config is invalid: %v", err)
	}
	bad := []func(c *Config){
		func(c *Config) { c.Width = 0 },
		func(c *Config) { c.TickMillis = -1 },
		func(c *Config) { c.SwarmSize = -5 },
		func(c *Config) { c.Frontend, c.Scale = "terminal", 0 },
		func(c *Config) { c.Params.Vision = 0 },
		func(c *Config) { c.Params.Padding = -1 },
		func(c *Config) { c.Params.DestroyBitsFactor = -1 },
		func(c *Config) { c.Params.BitLifeMin = -1 },
		func(c *Config) { c.Params.Speed = math.NaN() },
		func(c *Config) { c.Params.Padding = math.NaN() },
		func(c *Config) { c.Params.Vision = math.Inf(1) },
		func(c *Config) { c.Params.MaxTurn = math.NaN() },
		func(c *Config) { c.Params.DestroyBitsFactor = math.Inf(1) },
		func(c *Config) { c.Params.PersonalSpeed = math.Inf(-1) },
		func(c *Config) { c.Frontend, c.Scale = "terminal", math.NaN() },
		func(c *Config) { c.Frontend, c.Scale = "terminal", math.Inf(1) },
		func(c *Config) { c.Params.BitSpeedMin, c.Params.BitSpeedMax = 0, 0 },
		func(c *Config) { c.Params.PatternMaxTries = -1 },
		func(c *Config) { c.Params.PersonalHold = -1 },
	}
	for i, f := range bad {
		c := DefaultConf
		f(&c)
		if err := c.Validate(); err == nil {
			t.Errorf("case %d: invalid config accepted", i)
		}
	}
}

func TestSetup(t *testing.T) {
	conf := DefaultConf
	conf.Frontend = "headless"
	conf.Seed = 1
	conf.SwarmSize = 40
	conf.Personal = true
	s := setup(&conf, NewLogger(io.Discard, "error"))
	if len(s.Boids) != 41 {
		t.Fatalf("%d boids, want 41", len(s.Boids))
	}
	if !s.Boids[40].Personal {
		t.Error("personal boid missing")
	}

	conf.Pattern = true
	conf.Personal = false
	s = setup(&conf, NewLogger(io.Discard, "error"))
	z := boidswarm.ZLogo().Bounds()
	for i, b := range s.Boids {
		// the logo is centered, so every boid is within its size of the center
		if dx := b.Pos.X - s.Width/2; dx < -z.Dx()/2 || dx > z.Dx()/2 {
			t.Errorf("boid %d at %v is off the logo", i, b.Pos)
		}
	}
}
