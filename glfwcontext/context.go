package glfwcontext

import (
	"log"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/richinsley/learngl/graphics"
	options "github.com/richinsley/learngl/options"
)

var keyMap = map[glfw.Key]graphics.Key{
	glfw.KeyEscape: graphics.KeyEscape,
	glfw.KeyUp:     graphics.KeyUp,
	glfw.KeyDown:   graphics.KeyDown,
	glfw.KeyLeft:   graphics.KeyLeft,
	glfw.KeyRight:  graphics.KeyRight,
	glfw.KeyW:      graphics.KeyW,
	glfw.KeyA:      graphics.KeyA,
	glfw.KeyS:      graphics.KeyS,
	glfw.KeyD:      graphics.KeyD,
}

// Context tracks key, cursor and scroll state for the Input method.
type Context struct {
	window *glfw.Window
	// A map to store functions to be called on key presses.
	keyCallbacks map[graphics.Key]func()

	lastCursorX, lastCursorY float64
	firstCursor              bool
	cursorDX, cursorDY       float64
	scrollY                  float64
}

// New creates a GLFW window, makes its context current and returns a Context object.
func New(opts *options.LessonOptions, visible bool) (*Context, error) {
	// 4.1 core is the newest profile macOS offers.
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	if visible {
		glfw.WindowHint(glfw.Resizable, glfw.True)
		glfw.WindowHint(glfw.Visible, glfw.True)
	} else {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	win, err := glfw.CreateWindow(*opts.Width, *opts.Height, *opts.Title, nil, nil)
	if err != nil {
		return nil, err
	}
	win.MakeContextCurrent()

	c := &Context{
		window:       win,
		keyCallbacks: make(map[graphics.Key]func()),
		firstCursor:  true,
	}

	win.SetFramebufferSizeCallback(framebufferSizeCallback)
	win.SetKeyCallback(c.glfwKeyCallback)
	win.SetCursorPosCallback(c.glfwCursorPosCallback)
	win.SetScrollCallback(c.glfwScrollCallback)

	return c, nil
}

// The viewport does not follow the window on its own.
func framebufferSizeCallback(_ *glfw.Window, width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// RegisterKeyCallback implements graphics.KeyNotifier. f runs on the
// render thread from EndFrame whenever key is pressed.
func (c *Context) RegisterKeyCallback(key graphics.Key, f func()) {
	c.keyCallbacks[key] = f
}

func (c *Context) glfwKeyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		w.SetShouldClose(true)
	}

	if action == glfw.Press {
		if callback, ok := c.keyCallbacks[keyMap[key]]; ok {
			callback()
		}
	}
}

func (c *Context) glfwCursorPosCallback(_ *glfw.Window, x, y float64) {
	if c.firstCursor {
		c.lastCursorX, c.lastCursorY = x, y
		c.firstCursor = false
	}
	c.cursorDX += x - c.lastCursorX
	// Window y grows downwards.
	c.cursorDY += c.lastCursorY - y
	c.lastCursorX, c.lastCursorY = x, y
}

func (c *Context) glfwScrollCallback(_ *glfw.Window, _, yoff float64) {
	c.scrollY += yoff
}

// Input implements graphics.Context. Cursor and scroll deltas are reset on every call.
func (c *Context) Input() graphics.Input {
	in := graphics.Input{
		Down:     make(map[graphics.Key]bool, len(keyMap)),
		CursorDX: c.cursorDX,
		CursorDY: c.cursorDY,
		ScrollY:  c.scrollY,
	}
	for gk, k := range keyMap {
		if c.window.GetKey(gk) == glfw.Press {
			in.Down[k] = true
		}
	}
	c.cursorDX, c.cursorDY, c.scrollY = 0, 0, 0
	return in
}

// SetCursorDisabled hides and captures the cursor for mouse-look.
func (c *Context) SetCursorDisabled(disabled bool) {
	mode := glfw.CursorNormal
	if disabled {
		mode = glfw.CursorDisabled
	}
	c.window.SetInputMode(glfw.CursorMode, mode)
	c.firstCursor = true
}

// MakeCurrent makes the context current for the calling goroutine.
func (c *Context) MakeCurrent() {
	c.window.MakeContextCurrent()
}

// Shutdown only destroys the window.
func (c *Context) Shutdown() {
	c.window.Destroy()
}

func (c *Context) ShouldClose() bool {
	return c.window.ShouldClose()
}

func (c *Context) SetShouldClose(v bool) {
	c.window.SetShouldClose(v)
}

func (c *Context) EndFrame() {
	c.window.SwapBuffers()
	glfw.PollEvents()
}

func (c *Context) GetFramebufferSize() (int, int) {
	return c.window.GetFramebufferSize()
}

func (c *Context) Time() float64 {
	return glfw.GetTime()
}

// InitGraphics initializes GLFW. Must be called from the main thread.
func InitGraphics() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return err
	}
	log.Printf("GLFW Initialized")
	return nil
}

// TerminateGraphics shuts down GLFW. Must be called from the main thread.
func TerminateGraphics() {
	glfw.Terminate()
	log.Printf("GLFW Terminated")
}
