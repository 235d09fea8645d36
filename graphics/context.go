package graphics

// Key identifies a keyboard key independent of the windowing library.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyW
	KeyA
	KeyS
	KeyD
)

// Input is a snapshot of the input state taken once per frame.
type Input struct {
	// Down holds the keys currently held.
	Down map[Key]bool
	// CursorDX, CursorDY are the cursor movement since the previous frame, in screen pixels.
	// CursorDY grows upwards.
	CursorDX, CursorDY float64
	// ScrollY is the vertical scroll offset accumulated since the previous frame.
	ScrollY float64
}

// KeyDown reports whether k is held.
func (in Input) KeyDown(k Key) bool {
	return in.Down[k]
}

// Context defines the interface for an OpenGL context.
type Context interface {
	MakeCurrent()
	Shutdown()
	ShouldClose() bool
	SetShouldClose(bool)
	EndFrame()
	GetFramebufferSize() (int, int)
	Time() float64
	// Input returns the input state gathered since the previous call.
	Input() Input
}

// KeyNotifier is implemented by contexts that report individual key presses.
type KeyNotifier interface {
	RegisterKeyCallback(key Key, f func())
}

// CursorController is implemented by contexts that can capture the cursor for mouse-look.
type CursorController interface {
	SetCursorDisabled(disabled bool)
}
