package renderer

import (
	"fmt"
	"log"
	"sync"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/richinsley/learngl/graphics"
	"github.com/richinsley/learngl/options"
	"github.com/richinsley/learngl/shader"
)

// A package-level variable to ensure gl.Init() is called only once.
var glInitOnce sync.Once

// ClearColor is the background every lesson draws on.
var ClearColor = [4]float32{0.2, 0.3, 0.3, 1.0}

type Renderer struct {
	context   graphics.Context
	opts      *options.LessonOptions
	hotReload bool
	watchers  []*shader.Watcher

	// GL entry points the loop uses; replaced in tests.
	clear    func(mask uint32)
	viewport func(width, height int)
}

func NewRenderer(ctx graphics.Context, opts *options.LessonOptions) (*Renderer, error) {
	r := &Renderer{
		context:   ctx,
		opts:      opts,
		hotReload: *opts.HotReload,
		clear:     glClear,
		viewport:  glViewport,
	}

	// Make the context current BEFORE initializing OpenGL.
	r.context.MakeCurrent()

	var initErr error
	glInitOnce.Do(func() {
		initErr = gl.Init()
	})
	if initErr != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", initErr)
	}
	log.Printf("OpenGL version %s", gl.GoStr(gl.GetString(gl.VERSION)))

	return r, nil
}

func glClear(mask uint32) {
	gl.ClearColor(ClearColor[0], ClearColor[1], ClearColor[2], ClearColor[3])
	gl.Clear(mask)
}

func glViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func clearMask(l Lesson) uint32 {
	mask := uint32(gl.COLOR_BUFFER_BIT)
	if d, ok := l.(DepthLesson); ok && d.UsesDepth() {
		mask |= gl.DEPTH_BUFFER_BIT
	}
	return mask
}

func (r *Renderer) env() *Env {
	return &Env{
		AssetsDir: *r.opts.AssetsDir,
		Context:   r.context,
		Recording: r.opts.Recording(),
		renderer:  r,
	}
}

func (r *Renderer) watch(p *shader.Program) {
	if !r.hotReload {
		return
	}
	w, err := shader.Watch(p)
	if err != nil {
		log.Printf("Hot reload disabled for program: %v", err)
		return
	}
	r.watchers = append(r.watchers, w)
}

func (r *Renderer) pollWatchers() {
	for _, w := range r.watchers {
		w.Poll()
	}
}

// Run initializes lesson and drives it until the window is asked to close.
func (r *Renderer) Run(lesson Lesson) error {
	if err := lesson.Init(r.env()); err != nil {
		return fmt.Errorf("failed to initialize lesson: %w", err)
	}
	defer lesson.Destroy()

	mask := clearMask(lesson)
	var clock FrameClock
	for !r.context.ShouldClose() {
		elapsed, delta, count := clock.Tick(r.context.Time())
		width, height := r.context.GetFramebufferSize()
		f := Frame{
			Time:   elapsed,
			Delta:  delta,
			Count:  count,
			Width:  width,
			Height: height,
			Input:  r.context.Input(),
		}

		lesson.Update(f)
		r.pollWatchers()

		r.clear(mask)
		lesson.Draw(f)

		r.context.EndFrame()
	}
	return nil
}

// Shutdown stops any shader watchers. The context itself is shut down by its owner.
func (r *Renderer) Shutdown() {
	for _, w := range r.watchers {
		if err := w.Close(); err != nil {
			log.Printf("Error closing shader watcher: %v", err)
		}
	}
	r.watchers = nil
}
