package lessons

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/learngl/camera"
	"github.com/richinsley/learngl/mesh"
	"github.com/richinsley/learngl/renderer"
)

// cubes draws the ten textured cubes with the depth test enabled.
// The embedding lesson supplies the view and projection.
type cubes struct {
	textured
	view       mgl32.Mat4
	projection mgl32.Mat4
}

func (c *cubes) init(env *renderer.Env) error {
	if err := c.textured.init(env, "mvp.vs", "textured.fs", mesh.Cube, nil, mesh.PositionTexture); err != nil {
		return err
	}
	gl.Enable(gl.DEPTH_TEST)
	c.view = mgl32.Ident4()
	c.projection = mgl32.Ident4()
	return nil
}

func (c *cubes) UsesDepth() bool { return true }

func (c *cubes) Draw(renderer.Frame) {
	c.bind()
	c.program.SetMat4("view", c.view)
	c.program.SetMat4("projection", c.projection)
	for i := range mesh.CubePositions {
		c.program.SetMat4("model", mesh.CubeModel(i))
		c.shape.Draw()
	}
}

func (c *cubes) Destroy() {
	gl.Disable(gl.DEPTH_TEST)
	c.destroy()
}

// coordinateSystems views the cubes from a fixed point three units back.
type coordinateSystems struct {
	cubes
}

// cameraOrbit circles the cubes at a fixed radius.
type cameraOrbit struct {
	cubes
	radius float32
}

func init() {
	register("coordinate-systems", "Ten cubes with model, view and projection", func() renderer.Lesson { return &coordinateSystems{} })
	register("camera-orbit", "Camera circling the cubes", func() renderer.Lesson { return &cameraOrbit{radius: 10} })
}

func perspective(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(camera.DefaultZoom), aspect, camera.Near, camera.Far)
}

func (l *coordinateSystems) Init(env *renderer.Env) error {
	if err := l.init(env); err != nil {
		return err
	}
	l.view = mgl32.Translate3D(0, 0, -3)
	return nil
}

func (l *coordinateSystems) Update(f renderer.Frame) {
	l.projection = perspective(f.Aspect())
}

func (l *cameraOrbit) Init(env *renderer.Env) error {
	return l.init(env)
}

func (l *cameraOrbit) Update(f renderer.Frame) {
	l.view = camera.Orbit(f.Time, l.radius)
	l.projection = perspective(f.Aspect())
}
