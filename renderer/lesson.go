package renderer

import (
	"github.com/richinsley/learngl/graphics"
	"github.com/richinsley/learngl/shader"
)

// Frame is the per-frame state handed to a lesson.
type Frame struct {
	Time   float64 // seconds since the loop started
	Delta  float64 // seconds since the previous frame
	Count  int64
	Width  int
	Height int
	Input  graphics.Input
}

// Aspect returns the framebuffer aspect ratio, or 1 for an empty framebuffer.
func (f Frame) Aspect() float32 {
	if f.Width <= 0 || f.Height <= 0 {
		return 1
	}
	return float32(f.Width) / float32(f.Height)
}

// Lesson is one self-contained demo driven by the render loop.
type Lesson interface {
	// Init creates the lesson's GPU objects. The GL context is current.
	Init(env *Env) error
	// Update handles input and advances lesson state.
	Update(f Frame)
	// Draw issues the lesson's draw calls after the framebuffer was cleared.
	Draw(f Frame)
	// Destroy frees the lesson's GPU objects.
	Destroy()
}

// DepthLesson is implemented by lessons that draw with the depth test enabled;
// the loop then clears the depth buffer as well.
type DepthLesson interface {
	UsesDepth() bool
}

// Env is what a lesson may use from its host during Init.
type Env struct {
	AssetsDir string
	Context   graphics.Context
	// Recording is set when frames go to a video file instead of a window.
	Recording bool

	renderer *Renderer
}

// OnKeyPress calls f each time k is pressed. It reports false when the context
// delivers no key events.
func (e *Env) OnKeyPress(k graphics.Key, f func()) bool {
	kn, ok := e.Context.(graphics.KeyNotifier)
	if !ok {
		return false
	}
	kn.RegisterKeyCallback(k, f)
	return true
}

// Watch rebuilds p whenever its source files change, if hot reload is enabled.
func (e *Env) Watch(p *shader.Program) {
	if e.renderer == nil {
		return
	}
	e.renderer.watch(p)
}
