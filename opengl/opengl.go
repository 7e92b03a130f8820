//go:build !nogl

package opengl

import (
	"fmt"
	"time"

	"github.com/PrincetonUniversity/boidswarm"
	"github.com/PrincetonUniversity/boidswarm/input"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"
)

// Run runs an interactive animation in an OpenGL window.
// It must be called from the main thread.
func Run(s *boidswarm.Swarm, conf *Config) error {
	// init GLFW and OpenGL
	if err := glfw.Init(); err != nil {
		return errors.Wrap(err, "opengl: cannot initialize GLFW")
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Samples, 4)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	w, err := glfw.CreateWindow(conf.Width, conf.Height, conf.Title, nil, nil)
	if err != nil {
		return errors.Wrap(err, "opengl: cannot create window")
	}
	w.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		return errors.Wrap(err, "opengl: cannot initialize OpenGL")
	}

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.ClearColor(background[0], background[1], background[2], 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	w.SwapBuffers()

	d, err := newDisplay()
	if err != nil {
		return err
	}

	// the world is measured in window coordinates, like the cursor
	s.Surface = windowSurface{w}
	if ww, wh := s.Surface.Size(); ww > 0 && wh > 0 {
		s.Width, s.Height = ww, wh
	}
	log := conf.logger()
	p := input.NewPointer(s)
	destroyed := func(n int) {
		if n > 0 && conf.OnDestroy != nil {
			conf.OnDestroy(n)
		}
	}

	w.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		p.Move(x, y)
	})
	w.SetCursorEnterCallback(func(_ *glfw.Window, entered bool) {
		if !entered {
			p.Leave()
		}
	})
	w.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if button != glfw.MouseButtonLeft {
			return
		}
		x, y := w.GetCursorPos()
		switch action {
		case glfw.Press:
			p.Press(x, y, time.Now())
		case glfw.Release:
			destroyed(p.Release(x, y))
		}
	})

	var quit, step bool
	pause := conf.Paused
	w.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action != glfw.Press && action != glfw.Repeat {
			return
		}
		switch key {
		case glfw.KeyEscape:
			quit = true
		case glfw.KeySpace:
			pause = !pause
		case glfw.KeyRight:
			if pause {
				step = true
			}
		case glfw.KeyN:
			s.SpawnCenter(conf.SwarmSize)
		case glfw.KeyZ:
			s.PlaceLogo(conf.SwarmSize)
		case glfw.KeyP:
			s.AddPersonal()
		case glfw.KeyC:
			s.Clear()
		}
	})

	tick := conf.tick()
	last := time.Now()
	var acc time.Duration
	for !(quit || w.ShouldClose()) {
		now := time.Now()
		acc += now.Sub(last)
		last = now
		if acc > maxLag*tick {
			log.Warnf("opengl: dropping %v of simulation time", acc-tick)
			acc = tick
		}

		destroyed(p.Update(now))
		switch {
		case step:
			step = false
			s.Step()
			acc = 0
		case pause:
			acc = 0
		default:
			for ; acc >= tick; acc -= tick {
				s.Step()
			}
		}

		d.draw(w, s)
		w.SwapBuffers()
		glfw.PollEvents()
	}
	return nil
}

// maxLag is the number of steps the animation may fall behind before
// catching up is abandoned.
const maxLag = 5

// background is the clear color (#050505).
var background = [3]float32{5.0 / 255, 5.0 / 255, 5.0 / 255}

// windowSurface reports the size of a window in screen coordinates.
type windowSurface struct {
	w *glfw.Window
}

func (ws windowSurface) Size() (float64, float64) {
	w, h := ws.w.GetSize()
	return float64(w), float64(h)
}

// display contains all the OpenGL objects required to draw the swarm.
type display struct {
	vao  uint32
	vbo  uint32
	prog uint32
	uni  struct {
		world int32 // size of the world
		scale int32 // framebuffer pixels per world unit
	}
	buf    []float32
	colors map[string][3]float32
}

// A vertex is made of position (2), point size (1), color (3) and a disc flag (1).
const vertexLen = 7

// draw uploads the boids and bits and draws them on screen.
func (d *display) draw(w *glfw.Window, s *boidswarm.Swarm) {
	fbw, fbh := w.GetFramebufferSize()
	ww, _ := w.GetSize()
	scale := float32(1)
	if ww > 0 {
		scale = float32(fbw) / float32(ww)
	}

	d.buf = d.buf[:0]
	for _, b := range s.Boids {
		d.push(b.Pos.X, b.Pos.Y, 2*b.Radius, b.Color, 1)
	}
	for _, b := range s.Bits {
		// squares are anchored at their top left corner
		d.push(b.Pos.X+b.Size/2, b.Pos.Y+b.Size/2, b.Size, b.Color, 0)
	}

	gl.Viewport(0, 0, int32(fbw), int32(fbh))
	gl.Clear(gl.COLOR_BUFFER_BIT)
	n := len(d.buf) / vertexLen
	if n == 0 {
		return
	}

	gl.UseProgram(d.prog)
	gl.Uniform2f(d.uni.world, float32(s.Width), float32(s.Height))
	gl.Uniform1f(d.uni.scale, scale)
	gl.BindVertexArray(d.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(d.buf)*4, gl.Ptr(d.buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(n))
}

// push appends a vertex to the upload buffer.
func (d *display) push(x, y, size float64, color string, disc float32) {
	c, ok := d.colors[color]
	if !ok {
		r, g, b, err := boidswarm.RGB(color)
		if err != nil {
			r, g, b = 1, 1, 1
		}
		c = [3]float32{float32(r), float32(g), float32(b)}
		d.colors[color] = c
	}
	d.buf = append(d.buf, float32(x), float32(y), float32(size), c[0], c[1], c[2], disc)
}

// newDisplay compiles the shaders and initializes a display.
func newDisplay() (*display, error) {
	d := &display{colors: make(map[string][3]float32)}

	var err error
	d.prog, err = makeProg([]shader{
		{"Vertex", vertexShader, gl.VERTEX_SHADER},
		{"Fragment", fragmentShader, gl.FRAGMENT_SHADER},
	})
	if err != nil {
		return nil, err
	}
	d.uni.world = gl.GetUniformLocation(d.prog, gl.Str("world\x00"))
	d.uni.scale = gl.GetUniformLocation(d.prog, gl.Str("scale\x00"))

	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)
	gl.GenBuffers(1, &d.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)

	// attribute locations are specified in the shaders with layout(location=n)
	const stride = vertexLen * 4
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 1, gl.FLOAT, false, stride, 2*4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointerWithOffset(3, 1, gl.FLOAT, false, stride, 6*4)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return d, nil
}

// A shader is the source of an OpenGL shader stage.
type shader struct {
	name string
	src  string
	kind uint32
}

// makeProg compiles and links an OpenGL program.
func makeProg(shaders []shader) (uint32, error) {
	var fail bool
	ids := make([]uint32, 0, len(shaders))
	for _, s := range shaders {
		id := gl.CreateShader(s.kind)
		src, free := gl.Strs(s.src + "\x00")
		gl.ShaderSource(id, 1, src, nil)
		free()
		gl.CompileShader(id)
		var status int32
		gl.GetShaderiv(id, gl.COMPILE_STATUS, &status)
		if status != gl.TRUE {
			var n int32
			gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &n)
			log := make([]uint8, n+1)
			gl.GetShaderInfoLog(id, n, &n, &log[0])
			fmt.Printf("### %s shader compilation error ###\n\n%s\n\n", s.name, gl.GoStr(&log[0]))
			fail = true
			gl.DeleteShader(id)
			continue
		}
		ids = append(ids, id)
	}
	if fail {
		return 0, errors.New("opengl: GLSL errors")
	}
	prog := gl.CreateProgram()
	for _, id := range ids {
		gl.AttachShader(prog, id)
	}
	gl.LinkProgram(prog)
	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status != gl.TRUE {
		return 0, errors.New("opengl: cannot link program")
	}
	for _, id := range ids {
		gl.DeleteShader(id)
	}
	return prog, nil
}

// Boids are drawn as point sprites: discs are cut out of the square
// sprite in the fragment shader, bits keep the full square.
const vertexShader = `#version 330 core
layout(location = 0) in vec2 pos;
layout(location = 1) in float size;
layout(location = 2) in vec3 color;
layout(location = 3) in float disc;

uniform vec2 world;
uniform float scale;

out vec3 vcolor;
out float vdisc;

void main() {
	gl_Position = vec4(2.0*pos.x/world.x - 1.0, 1.0 - 2.0*pos.y/world.y, 0.0, 1.0);
	gl_PointSize = max(size*scale, 1.0);
	vcolor = color;
	vdisc = disc;
}
`

const fragmentShader = `#version 330 core
in vec3 vcolor;
in float vdisc;

out vec4 frag;

void main() {
	if (vdisc > 0.5 && length(gl_PointCoord - vec2(0.5)) > 0.5) {
		discard;
	}
	frag = vec4(vcolor, 1.0);
}
`
