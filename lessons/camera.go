package lessons

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/learngl/camera"
	"github.com/richinsley/learngl/graphics"
	"github.com/richinsley/learngl/renderer"
)

// cameraWalk is a fly camera. WASD or the arrow keys move, the mouse looks and scrolling zooms.
type cameraWalk struct {
	cubes
	camera *camera.Camera
	cursor graphics.CursorController
}

func init() {
	register("camera-walk", "WASD and mouse-look fly camera", func() renderer.Lesson { return &cameraWalk{} })
}

var walkKeys = []struct {
	key graphics.Key
	dir camera.Direction
}{
	{graphics.KeyW, camera.Forward},
	{graphics.KeyS, camera.Backward},
	{graphics.KeyA, camera.Left},
	{graphics.KeyD, camera.Right},
	{graphics.KeyUp, camera.Forward},
	{graphics.KeyDown, camera.Backward},
	{graphics.KeyLeft, camera.Left},
	{graphics.KeyRight, camera.Right},
}

// steer applies one frame of input to c.
func steer(c *camera.Camera, in graphics.Input, dt float64) {
	for _, k := range walkKeys {
		if in.KeyDown(k.key) {
			c.ProcessKeyboard(k.dir, float32(dt))
		}
	}
	if in.CursorDX != 0 || in.CursorDY != 0 {
		c.ProcessMouse(float32(in.CursorDX), float32(in.CursorDY), true)
	}
	if in.ScrollY != 0 {
		c.ProcessScroll(float32(in.ScrollY))
	}
}

func (l *cameraWalk) Init(env *renderer.Env) error {
	if err := l.init(env); err != nil {
		return err
	}
	l.camera = camera.New(mgl32.Vec3{0, 0, 3})
	if cc, ok := env.Context.(graphics.CursorController); ok && !env.Recording {
		l.cursor = cc
		cc.SetCursorDisabled(true)
	}
	return nil
}

func (l *cameraWalk) Update(f renderer.Frame) {
	steer(l.camera, f.Input, f.Delta)
	l.view = l.camera.ViewMatrix()
	l.projection = l.camera.Projection(f.Aspect())
}

func (l *cameraWalk) Destroy() {
	if l.cursor != nil {
		l.cursor.SetCursorDisabled(false)
	}
	l.cubes.Destroy()
}
