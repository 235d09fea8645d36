package lessons

import (
	"fmt"
	"log"
	"math"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/learngl/mesh"
	"github.com/richinsley/learngl/renderer"
	"github.com/richinsley/learngl/shader"
)

// shadersUniform colours a triangle from a uniform that pulses over time.
// Its shaders are GLSL ES 3.00 and go through the translator.
type shadersUniform struct {
	program  *shader.Program
	triangle *mesh.Mesh
	color    mgl32.Vec4
}

// shadersClass draws a triangle with per-vertex colours from shader files.
type shadersClass struct {
	program  *shader.Program
	triangle *mesh.Mesh
}

func init() {
	register("shaders-uniform", "Uniform colour driven by time", func() renderer.Lesson { return &shadersUniform{} })
	register("shaders-class", "Per-vertex colour through the shader loader", func() renderer.Lesson { return &shadersClass{} })
}

// pulseColor returns the green pulse at t seconds.
func pulseColor(t float64) mgl32.Vec4 {
	green := float32(math.Sin(t)/2.0 + 0.5)
	return mgl32.Vec4{0, green, 0, 1}
}

func (l *shadersUniform) Init(env *renderer.Env) error {
	var err error
	if l.program, err = loadProgram(env, "pulse.vs", "pulse.fs"); err != nil {
		return err
	}
	if l.triangle, err = mesh.New(mesh.Triangle, nil, mesh.Position); err != nil {
		return fmt.Errorf("failed to upload triangle: %w", err)
	}
	return nil
}

func (l *shadersUniform) Update(f renderer.Frame) {
	l.color = pulseColor(f.Time)
}

func (l *shadersUniform) Draw(renderer.Frame) {
	l.program.Use()
	l.program.SetVec4("ourColor", l.color)
	l.triangle.Draw()
}

func (l *shadersUniform) Destroy() {
	if l.triangle != nil {
		l.triangle.Delete()
	}
	if l.program != nil {
		l.program.Delete()
	}
}

func (l *shadersClass) Init(env *renderer.Env) error {
	var attribs int32
	gl.GetIntegerv(gl.MAX_VERTEX_ATTRIBS, &attribs)
	log.Printf("Maximum nr of vertex attributes supported: %d", attribs)

	var err error
	if l.program, err = loadProgram(env, "color.vs", "color.fs"); err != nil {
		return err
	}
	if l.triangle, err = mesh.New(mesh.ColorTriangle, nil, mesh.PositionColor); err != nil {
		return fmt.Errorf("failed to upload triangle: %w", err)
	}
	return nil
}

func (l *shadersClass) Update(renderer.Frame) {}

func (l *shadersClass) Draw(renderer.Frame) {
	l.program.Use()
	l.triangle.Draw()
}

func (l *shadersClass) Destroy() {
	if l.triangle != nil {
		l.triangle.Delete()
	}
	if l.program != nil {
		l.program.Delete()
	}
}
