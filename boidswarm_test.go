package boidswarm

import (
	"math"
	"math/rand"
	"testing"
)

func TestDestroyAt(t *testing.T) {
	s := newTestSwarm(1000, 1000)
	addBoid(s, 10, 10, 0)
	addBoid(s, 12, 11, 0)
	far := addBoid(s, 20, 20, 0)

	if n := s.DestroyAt(10, 10); n != 2 {
		t.Fatalf("destroyed %d boids, want 2", n)
	}
	if len(s.Boids) != 1 || s.Boids[0] != far {
		t.Fatalf("remaining boids = %v", s.Boids)
	}
	// radius 3 and factor 3 give floor(9)+1 bits per boid
	if len(s.Bits) != 20 {
		t.Fatalf("released %d bits, want 20", len(s.Bits))
	}
	for _, b := range s.Bits {
		if b.Color != s.Params.Color {
			t.Errorf("bit color = %q", b.Color)
		}
		if b.Origin != (Vec2{X: 10, Y: 10}) && b.Origin != (Vec2{X: 12, Y: 11}) {
			t.Errorf("bit origin = %v", b.Origin)
		}
	}
}

func TestDestroyAtIsStrict(t *testing.T) {
	s := newTestSwarm(1000, 1000)
	addBoid(s, 10, 10, 0)
	if n := s.DestroyAt(13, 10); n != 0 {
		t.Errorf("destroyed %d boids exactly one radius away", n)
	}
	if n := s.DestroyAt(500, 500); n != 0 {
		t.Errorf("destroyed %d boids far away", n)
	}
	empty := newTestSwarm(100, 100)
	if n := empty.DestroyAt(1, 1); n != 0 || len(empty.Bits) != 0 {
		t.Errorf("destroyed %d boids in an empty swarm", n)
	}
}

func TestBitsPerBoid(t *testing.T) {
	p := DefaultParams
	for _, tt := range []struct {
		r    float64
		want int
	}{{3, 10}, {11, 34}, {2.5, 8}, {0, 1}} {
		if got := p.BitsPerBoid(tt.r); got != tt.want {
			t.Errorf("BitsPerBoid(%g) = %d, want %d", tt.r, got, tt.want)
		}
	}
}

func TestStepDropsExpiredBits(t *testing.T) {
	s := newTestSwarm(100, 100)
	s.Bits = []*Bit{
		{Speed: 5, Life: 10},
		{Speed: 1, Life: 100},
	}
	s.Step()
	if len(s.Bits) != 2 {
		t.Fatalf("%d bits after one step, want 2", len(s.Bits))
	}
	s.Step()
	if len(s.Bits) != 1 || s.Bits[0].Life != 100 {
		t.Fatalf("bits after two steps = %v", s.Bits)
	}
}

func TestInfluences(t *testing.T) {
	s := newTestSwarm(100, 100)
	s.SetPredator(1, 2)
	p := s.Predator
	s.SetPredator(3, 4)
	if s.Predator != p || s.Predator.Pos != (Vec2{X: 3, Y: 4}) {
		t.Errorf("predator = %+v", s.Predator)
	}
	s.ClearPredator()
	s.ClearPredator()
	if s.Predator != nil {
		t.Error("predator still set after clear")
	}

	s.SetAttractor(5, 6)
	if s.Attractor == nil || s.Attractor.Pos != (Vec2{X: 5, Y: 6}) {
		t.Errorf("attractor = %+v", s.Attractor)
	}
	s.ClearAttractor()
	if s.Attractor != nil {
		t.Error("attractor still set after clear")
	}
}

func TestClearKeepsBits(t *testing.T) {
	s := newTestSwarm(100, 100)
	s.SpawnCenter(5)
	s.Bits = append(s.Bits, &Bit{Speed: 1, Life: 100})
	s.Clear()
	if len(s.Boids) != 0 {
		t.Errorf("%d boids left after clear", len(s.Boids))
	}
	if len(s.Bits) != 1 {
		t.Errorf("%d bits left after clear, want 1", len(s.Bits))
	}
}

func TestSpawn(t *testing.T) {
	s := newTestSwarm(200, 100)
	s.Spawn(5, 10, 20, "#ff0000", 4)
	s.SpawnCenter(3)
	if len(s.Boids) != 8 {
		t.Fatalf("%d boids, want 8", len(s.Boids))
	}
	for i, b := range s.Boids {
		want := Vec2{X: 10, Y: 20}
		color, radius := "#ff0000", 4.0
		if i >= 5 {
			want = Vec2{X: 100, Y: 50}
			color, radius = s.Params.Color, s.Params.Radius
		}
		if b.Pos != want || b.Color != color || b.Radius != radius {
			t.Errorf("boid %d = %+v", i, b)
		}
		if b.Dir < -math.Pi || b.Dir >= math.Pi {
			t.Errorf("boid %d heading = %g", i, b.Dir)
		}
		if b.Speed != s.Params.Speed || b.Vision != s.Params.Vision || b.MaxTurn != s.Params.MaxTurn {
			t.Errorf("boid %d parameters = %+v", i, b.Parameters)
		}
	}
}

type fixedSurface struct{ w, h float64 }

func (f *fixedSurface) Size() (float64, float64) { return f.w, f.h }

func TestSurfaceResize(t *testing.T) {
	s := newTestSwarm(100, 100)
	surf := &fixedSurface{300, 200}
	s.Surface = surf
	s.Step()
	if s.Width != 300 || s.Height != 200 {
		t.Errorf("size = %gx%g, want 300x200", s.Width, s.Height)
	}
	surf.w, surf.h = 0, 0
	s.Step()
	if s.Width != 300 || s.Height != 200 {
		t.Errorf("size after minimize = %gx%g, want 300x200", s.Width, s.Height)
	}
}

func TestBoidsStayInDomain(t *testing.T) {
	s := newTestSwarm(300, 200)
	r := rand.New(rand.NewSource(9))
	for i := 0; i < 100; i++ {
		addBoid(s, r.Float64()*300, r.Float64()*200, 2*math.Pi*r.Float64()-math.Pi)
	}
	p := s.Padding
	for step := 0; step < 100; step++ {
		switch step {
		case 20:
			s.SetPredator(150, 100)
		case 50:
			s.SetAttractor(10, 10)
		case 80:
			s.ClearAttractor()
			s.ClearPredator()
		}
		s.Step()
		for i, b := range s.Boids {
			if b.Pos.X < -p || b.Pos.X >= s.Width+2*p || b.Pos.Y < -p || b.Pos.Y >= s.Height+2*p {
				t.Fatalf("step %d: boid %d out of domain at %v", step, i, b.Pos)
			}
			if b.Dir < -math.Pi || b.Dir >= math.Pi {
				t.Fatalf("step %d: boid %d heading %g", step, i, b.Dir)
			}
		}
	}
}

func TestSwarmLiteral(t *testing.T) {
	// a swarm built by hand has no random source or logger yet
	s := &Swarm{Width: 100, Height: 100, Params: DefaultParams}
	s.SpawnCenter(2)
	if n := s.DestroyAt(50, 50); n != 2 {
		t.Errorf("destroyed %d boids, want 2", n)
	}
}

func TestStats(t *testing.T) {
	s := newTestSwarm(100, 100)
	if st := s.Stats(); st != (Stats{}) {
		t.Errorf("empty stats = %+v", st)
	}
	addBoid(s, 1, 1, 0.4)
	addBoid(s, 50, 1, 0.4)
	s.Bits = append(s.Bits, &Bit{})
	st := s.Stats()
	if st.Boids != 2 || st.Bits != 1 || math.Abs(st.Polarization-1) > eps {
		t.Errorf("aligned stats = %+v", st)
	}
	s.Boids[1].Dir = 0.4 - math.Pi
	if st := s.Stats(); st.Polarization > eps {
		t.Errorf("opposite boids polarization = %g, want 0", st.Polarization)
	}
}
