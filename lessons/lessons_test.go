package lessons

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/learngl/camera"
	"github.com/richinsley/learngl/graphics"
	"github.com/richinsley/learngl/renderer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamesSorted(t *testing.T) {
	assert.Equal(t, []string{
		"camera-orbit",
		"camera-walk",
		"coordinate-systems",
		"hello-triangle",
		"hello-triangle-exercise",
		"hello-window",
		"shaders-class",
		"shaders-uniform",
		"textures",
		"transformations",
	}, Names())
}

func TestGet(t *testing.T) {
	info, err := Get("hello-triangle")
	require.NoError(t, err)
	assert.Equal(t, "hello-triangle", info.Name)
	assert.NotEmpty(t, info.Summary)
	assert.IsType(t, &helloTriangle{}, info.New())

	_, err = Get("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"nope"`)
	assert.Contains(t, err.Error(), "camera-walk")
}

func TestDepthLessons(t *testing.T) {
	depth := map[string]bool{}
	for _, info := range All() {
		if d, ok := info.New().(renderer.DepthLesson); ok && d.UsesDepth() {
			depth[info.Name] = true
		}
	}
	assert.Equal(t, map[string]bool{
		"coordinate-systems": true,
		"camera-orbit":       true,
		"camera-walk":        true,
	}, depth)
}

func TestStepMix(t *testing.T) {
	assert.InDelta(t, 0.4, stepMix(0.2, mixStep), 1e-6)
	assert.InDelta(t, 0.0, stepMix(0.2, -mixStep), 1e-6)
	assert.Equal(t, float32(1), stepMix(0.9, mixStep))
	assert.Equal(t, float32(0), stepMix(0.1, -mixStep))
}

// keyContext records key callbacks the way the GLFW context does.
type keyContext struct {
	callbacks map[graphics.Key]func()
}

func (c *keyContext) MakeCurrent() {}
func (c *keyContext) Shutdown() {}
func (c *keyContext) ShouldClose() bool { return false }
func (c *keyContext) SetShouldClose(bool) {}
func (c *keyContext) EndFrame() {}
func (c *keyContext) GetFramebufferSize() (int, int) { return 800, 600 }
func (c *keyContext) Time() float64 { return 0 }
func (c *keyContext) Input() graphics.Input { return graphics.Input{} }
func (c *keyContext) RegisterKeyCallback(k graphics.Key, f func()) {
	c.callbacks[k] = f
}

func (c *keyContext) press(k graphics.Key, times int) {
	for i := 0; i < times; i++ {
		if f, ok := c.callbacks[k]; ok {
			f()
		}
	}
}

func TestTexturesKeyPresses(t *testing.T) {
	ctx := &keyContext{callbacks: map[graphics.Key]func(){}}
	l := &textures{mixAmount: 0.2}
	l.bindKeys(&renderer.Env{Context: ctx})
	require.Contains(t, ctx.callbacks, graphics.KeyUp)
	require.Contains(t, ctx.callbacks, graphics.KeyDown)

	ctx.press(graphics.KeyUp, 1)
	assert.InDelta(t, 0.4, l.mixAmount, 1e-6)

	ctx.press(graphics.KeyUp, 10)
	assert.Equal(t, float32(1), l.mixAmount)

	ctx.press(graphics.KeyDown, 10)
	assert.Equal(t, float32(0), l.mixAmount)
}

// uniformRecorder stands in for a program whose uniforms reset when it is relinked.
type uniformRecorder struct {
	uses int
	ints map[string]int32
}

func (p *uniformRecorder) Use() { p.uses++ }
func (p *uniformRecorder) SetInt(name string, value int32) {
	p.ints[name] = value
}
func (p *uniformRecorder) relink() { p.ints = map[string]int32{} }

func TestSamplersSurviveReload(t *testing.T) {
	p := &uniformRecorder{ints: map[string]int32{}}
	useWithSamplers(p)
	assert.Equal(t, map[string]int32{"texture1": 0, "texture2": 1}, p.ints)

	p.relink()
	useWithSamplers(p)
	assert.Equal(t, 2, p.uses)
	assert.Equal(t, map[string]int32{"texture1": 0, "texture2": 1}, p.ints)
}

func TestPulseColor(t *testing.T) {
	assert.InDelta(t, 0.5, pulseColor(0)[1], 1e-6)
	assert.InDelta(t, 1.0, pulseColor(math.Pi/2)[1], 1e-6)
	assert.InDelta(t, 0.0, pulseColor(3*math.Pi/2)[1], 1e-6)

	c := pulseColor(1.234)
	assert.Equal(t, float32(0), c[0])
	assert.Equal(t, float32(0), c[2])
	assert.Equal(t, float32(1), c[3])
}

func TestSpin(t *testing.T) {
	// At t=0 the quad sits at the translation.
	p := spin(0).Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDelta(t, 0.5, p[0], 1e-6)
	assert.InDelta(t, -0.5, p[1], 1e-6)

	// Translated first, then rotated: the centre circles the origin.
	p = spin(math.Pi/2).Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDelta(t, 0.5, p[0], 1e-5)
	assert.InDelta(t, 0.5, p[1], 1e-5)

	for _, a := range []float64{0.3, 1, math.Pi, 4} {
		c := spin(a).Mul4x1(mgl32.Vec4{0, 0, 0, 1})
		assert.InDelta(t, math.Sqrt(0.5), mgl32.Vec2{c[0], c[1]}.Len(), 1e-5)
	}

	want := mgl32.HomogRotate3DZ(1.25).Mul4(mgl32.Translate3D(0.5, -0.5, 0))
	assert.True(t, want.ApproxEqualThreshold(spin(1.25), 1e-6))
}

func TestSteer(t *testing.T) {
	c := camera.New(mgl32.Vec3{0, 0, 3})
	steer(c, graphics.Input{Down: map[graphics.Key]bool{graphics.KeyW: true}}, 1)
	assert.InDelta(t, 3-camera.DefaultSpeed, c.Position.Z(), 1e-5)

	steer(c, graphics.Input{Down: map[graphics.Key]bool{graphics.KeyD: true}}, 1)
	assert.InDelta(t, camera.DefaultSpeed, c.Position.X(), 1e-5)

	steer(c, graphics.Input{Down: map[graphics.Key]bool{graphics.KeyLeft: true}}, 1)
	assert.InDelta(t, 0, c.Position.X(), 1e-5)

	steer(c, graphics.Input{Down: map[graphics.Key]bool{graphics.KeyDown: true}}, 1)
	assert.InDelta(t, 3, c.Position.Z(), 1e-5)

	steer(c, graphics.Input{CursorDX: 100}, 0)
	assert.InDelta(t, camera.DefaultYaw+10, c.Yaw, 1e-4)

	steer(c, graphics.Input{CursorDY: 10000}, 0)
	assert.Equal(t, float32(camera.MaxPitch), c.Pitch)

	steer(c, graphics.Input{ScrollY: 5}, 0)
	assert.Equal(t, float32(camera.DefaultZoom-5), c.Zoom)
}
