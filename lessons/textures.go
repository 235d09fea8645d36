package lessons

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/learngl/graphics"
	"github.com/richinsley/learngl/mesh"
	"github.com/richinsley/learngl/renderer"
	"github.com/richinsley/learngl/shader"
	"github.com/richinsley/learngl/texture"
)

// mixStep is how far one press of Up or Down moves mixAmount.
const mixStep = 0.2

// samplerUnits binds the fragment shader samplers to texture units.
var samplerUnits = []struct {
	name string
	unit int32
}{
	{"texture1", 0},
	{"texture2", 1},
}

type samplerProgram interface {
	Use()
	SetInt(name string, value int32)
}

// useWithSamplers makes p current and points its samplers at their units.
// A reloaded program starts with every sampler on unit 0, so this runs each frame.
func useWithSamplers(p samplerProgram) {
	p.Use()
	for _, s := range samplerUnits {
		p.SetInt(s.name, s.unit)
	}
}

// textured is shared by the lessons that sample the container and face
// images from units 0 and 1.
type textured struct {
	program   *shader.Program
	shape     *mesh.Mesh
	container *texture.Texture
	face      *texture.Texture
}

func (q *textured) init(env *renderer.Env, vertex, fragment string, vertices []float32, indices []uint32, layout mesh.Layout) error {
	var err error
	if q.program, err = loadProgram(env, vertex, fragment); err != nil {
		return err
	}
	if q.shape, err = mesh.New(vertices, indices, layout); err != nil {
		return fmt.Errorf("failed to upload mesh: %w", err)
	}
	q.container = loadTexture(env, "container.png")
	q.face = loadTexture(env, "awesomeface.png")
	return nil
}

func (q *textured) bind() {
	q.container.Bind(0)
	q.face.Bind(1)
	useWithSamplers(q.program)
}

func (q *textured) destroy() {
	if q.shape != nil {
		q.shape.Delete()
	}
	for _, t := range []*texture.Texture{q.container, q.face} {
		if t != nil {
			t.Delete()
		}
	}
	if q.program != nil {
		q.program.Delete()
	}
}

// textures blends two textures. Up and Down step the blend factor.
type textures struct {
	textured
	mixAmount float32
}

func init() {
	register("textures", "Two textures mixed with Up/Down", func() renderer.Lesson { return &textures{mixAmount: 0.2} })
}

// stepMix moves mix by delta and keeps it within [0, 1].
func stepMix(mix, delta float32) float32 {
	return mgl32.Clamp(mix+delta, 0, 1)
}

// bindKeys steps the blend factor on each Up or Down press.
func (l *textures) bindKeys(env *renderer.Env) {
	env.OnKeyPress(graphics.KeyUp, func() { l.mixAmount = stepMix(l.mixAmount, mixStep) })
	env.OnKeyPress(graphics.KeyDown, func() { l.mixAmount = stepMix(l.mixAmount, -mixStep) })
}

func (l *textures) Init(env *renderer.Env) error {
	if err := l.init(env, "textures.vs", "textures.fs", mesh.ColorTextureQuad, mesh.QuadIndices, mesh.PositionColorTexture); err != nil {
		return err
	}
	l.bindKeys(env)
	return nil
}

func (l *textures) Update(renderer.Frame) {}

func (l *textures) Draw(renderer.Frame) {
	l.bind()
	l.program.SetFloat("mixAmount", l.mixAmount)
	l.shape.Draw()
}

func (l *textures) Destroy() {
	l.destroy()
}
