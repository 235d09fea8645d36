package lessons

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/learngl/mesh"
	"github.com/richinsley/learngl/renderer"
)

// transformations swings the textured quad around the centre of the window.
type transformations struct {
	textured
	transform mgl32.Mat4
}

func init() {
	register("transformations", "Textured quad circling about z", func() renderer.Lesson { return &transformations{} })
}

// spin rotates t radians about z, then translates by (0.5, -0.5).
// Applied to a vertex, the translation happens first, so the quad circles the origin.
func spin(t float64) mgl32.Mat4 {
	return mgl32.HomogRotate3DZ(float32(t)).Mul4(mgl32.Translate3D(0.5, -0.5, 0))
}

func (l *transformations) Init(env *renderer.Env) error {
	l.transform = mgl32.Ident4()
	return l.init(env, "transform.vs", "textured.fs", mesh.TextureQuad, mesh.QuadIndices, mesh.PositionTexture)
}

func (l *transformations) Update(f renderer.Frame) {
	l.transform = spin(f.Time)
}

func (l *transformations) Draw(renderer.Frame) {
	l.bind()
	l.program.SetMat4("transform", l.transform)
	l.shape.Draw()
}

func (l *transformations) Destroy() {
	l.destroy()
}
