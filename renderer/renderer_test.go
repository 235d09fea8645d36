package renderer

import (
	"flag"
	"testing"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/richinsley/learngl/graphics"
	"github.com/richinsley/learngl/options"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeContext closes after a fixed number of frames and advances time by a fixed step.
type fakeContext struct {
	frames    int
	ended     int
	now       float64
	step      float64
	closeFlag bool
	input     graphics.Input
}

func (c *fakeContext) MakeCurrent() {}
func (c *fakeContext) Shutdown() {}
func (c *fakeContext) ShouldClose() bool { return c.closeFlag || c.ended >= c.frames }
func (c *fakeContext) SetShouldClose(v bool) { c.closeFlag = v }
func (c *fakeContext) EndFrame() {
	c.ended++
	c.now += c.step
}
func (c *fakeContext) GetFramebufferSize() (int, int) { return 800, 600 }
func (c *fakeContext) Time() float64 { return c.now }
func (c *fakeContext) Input() graphics.Input { return c.input }

type fakeLesson struct {
	depth     bool
	inited    bool
	destroyed bool
	updates   []Frame
	draws     int
	env       *Env
}

func (l *fakeLesson) Init(env *Env) error {
	l.inited = true
	l.env = env
	return nil
}
func (l *fakeLesson) Update(f Frame) { l.updates = append(l.updates, f) }
func (l *fakeLesson) Draw(Frame) { l.draws++ }
func (l *fakeLesson) Destroy() { l.destroyed = true }
func (l *fakeLesson) UsesDepth() bool { return l.depth }

func testRenderer(t *testing.T, ctx graphics.Context, masks *[]uint32, args ...string) *Renderer {
	t.Helper()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	opts := options.Register(fs)
	require.NoError(t, fs.Parse(args))
	return &Renderer{
		context:  ctx,
		opts:     opts,
		clear:    func(mask uint32) { *masks = append(*masks, mask) },
		viewport: func(int, int) {},
	}
}

func TestRunDrivesLessonUntilClose(t *testing.T) {
	ctx := &fakeContext{frames: 3, now: 5, step: 0.25}
	ctx.input = graphics.Input{Down: map[graphics.Key]bool{graphics.KeyUp: true}}
	var masks []uint32
	r := testRenderer(t, ctx, &masks, "-assets", "testassets")

	l := &fakeLesson{}
	require.NoError(t, r.Run(l))

	assert.True(t, l.inited)
	assert.True(t, l.destroyed)
	assert.Equal(t, 3, l.draws)
	require.Len(t, l.updates, 3)
	assert.Equal(t, 3, ctx.ended)

	assert.Equal(t, 0.0, l.updates[0].Time)
	assert.Equal(t, 0.0, l.updates[0].Delta)
	assert.Equal(t, 0.5, l.updates[2].Time)
	assert.Equal(t, 0.25, l.updates[2].Delta)
	assert.Equal(t, int64(2), l.updates[2].Count)
	assert.True(t, l.updates[1].Input.KeyDown(graphics.KeyUp))
	assert.Equal(t, 800, l.updates[0].Width)

	assert.Equal(t, "testassets", l.env.AssetsDir)
	assert.False(t, l.env.Recording)
	for _, m := range masks {
		assert.Equal(t, uint32(gl.COLOR_BUFFER_BIT), m)
	}
}

func TestRunClearsDepthForDepthLessons(t *testing.T) {
	ctx := &fakeContext{frames: 1}
	var masks []uint32
	r := testRenderer(t, ctx, &masks)

	require.NoError(t, r.Run(&fakeLesson{depth: true}))
	require.Len(t, masks, 1)
	assert.Equal(t, uint32(gl.COLOR_BUFFER_BIT|gl.DEPTH_BUFFER_BIT), masks[0])
}

type closingLesson struct {
	fakeLesson
	ctx graphics.Context
}

func (l *closingLesson) Update(f Frame) {
	l.fakeLesson.Update(f)
	l.ctx.SetShouldClose(true)
}

func TestLessonCanRequestClose(t *testing.T) {
	ctx := &fakeContext{frames: 100}
	var masks []uint32
	r := testRenderer(t, ctx, &masks)

	l := &closingLesson{ctx: ctx}
	require.NoError(t, r.Run(l))
	assert.Equal(t, 1, l.draws)
}

func TestEnvWatchWithoutHotReloadIsNoop(t *testing.T) {
	var masks []uint32
	r := testRenderer(t, &fakeContext{}, &masks)
	r.env().Watch(nil)
	assert.Empty(t, r.watchers)
	(&Env{}).Watch(nil)
}

func TestFrameAspect(t *testing.T) {
	assert.InDelta(t, 800.0/600.0, Frame{Width: 800, Height: 600}.Aspect(), 1e-6)
	assert.Equal(t, float32(1), Frame{}.Aspect())
}

// keyContext is a fakeContext that also accepts key callbacks.
type keyContext struct {
	fakeContext
	callbacks map[graphics.Key]func()
}

func (c *keyContext) RegisterKeyCallback(k graphics.Key, f func()) {
	c.callbacks[k] = f
}

func TestEnvOnKeyPress(t *testing.T) {
	var masks []uint32
	plain := testRenderer(t, &fakeContext{}, &masks)
	assert.False(t, plain.env().OnKeyPress(graphics.KeyUp, func() {}))

	ctx := &keyContext{callbacks: map[graphics.Key]func(){}}
	r := testRenderer(t, ctx, &masks)
	pressed := 0
	require.True(t, r.env().OnKeyPress(graphics.KeyUp, func() { pressed++ }))
	require.Contains(t, ctx.callbacks, graphics.KeyUp)
	ctx.callbacks[graphics.KeyUp]()
	assert.Equal(t, 1, pressed)
}
