package lessons

import (
	"fmt"

	"github.com/richinsley/learngl/mesh"
	"github.com/richinsley/learngl/renderer"
	"github.com/richinsley/learngl/shader"
)

const vertexShaderSource = `#version 410 core
layout (location = 0) in vec3 aPos;
void main() {
    gl_Position = vec4(aPos.x, aPos.y, aPos.z, 1.0);
}
`

const orangeFragmentShaderSource = `#version 410 core
out vec4 FragColor;
void main() {
    FragColor = vec4(1.0, 0.5, 0.2, 1.0);
}
`

const yellowFragmentShaderSource = `#version 410 core
out vec4 FragColor;
void main() {
    FragColor = vec4(1.0, 1.0, 0.0, 1.0);
}
`

type helloTriangle struct {
	program  *shader.Program
	triangle *mesh.Mesh
}

// helloTriangleExercise draws an indexed rectangle and a separate triangle
// with two programs.
type helloTriangleExercise struct {
	orange    *shader.Program
	yellow    *shader.Program
	rectangle *mesh.Mesh
	triangle  *mesh.Mesh
}

func init() {
	register("hello-triangle", "One triangle from inline shaders", func() renderer.Lesson { return &helloTriangle{} })
	register("hello-triangle-exercise", "Indexed rectangle plus a second VAO and program", func() renderer.Lesson { return &helloTriangleExercise{} })
}

func (l *helloTriangle) Init(*renderer.Env) error {
	var err error
	if l.program, err = shader.New(vertexShaderSource, orangeFragmentShaderSource); err != nil {
		return err
	}
	if l.triangle, err = mesh.New(mesh.Triangle, nil, mesh.Position); err != nil {
		return fmt.Errorf("failed to upload triangle: %w", err)
	}
	return nil
}

func (l *helloTriangle) Update(renderer.Frame) {}

func (l *helloTriangle) Draw(renderer.Frame) {
	l.program.Use()
	l.triangle.Draw()
}

func (l *helloTriangle) Destroy() {
	if l.triangle != nil {
		l.triangle.Delete()
	}
	if l.program != nil {
		l.program.Delete()
	}
}

func (l *helloTriangleExercise) Init(*renderer.Env) error {
	var err error
	if l.orange, err = shader.New(vertexShaderSource, orangeFragmentShaderSource); err != nil {
		return err
	}
	if l.yellow, err = shader.New(vertexShaderSource, yellowFragmentShaderSource); err != nil {
		return err
	}
	if l.rectangle, err = mesh.New(mesh.Rectangle, mesh.RectangleIndices, mesh.Position); err != nil {
		return fmt.Errorf("failed to upload rectangle: %w", err)
	}
	if l.triangle, err = mesh.New(mesh.SideTriangle, nil, mesh.Position); err != nil {
		return fmt.Errorf("failed to upload triangle: %w", err)
	}
	return nil
}

func (l *helloTriangleExercise) Update(renderer.Frame) {}

func (l *helloTriangleExercise) Draw(renderer.Frame) {
	l.orange.Use()
	l.rectangle.Draw()
	l.yellow.Use()
	l.triangle.Draw()
}

func (l *helloTriangleExercise) Destroy() {
	for _, m := range []*mesh.Mesh{l.rectangle, l.triangle} {
		if m != nil {
			m.Delete()
		}
	}
	for _, p := range []*shader.Program{l.orange, l.yellow} {
		if p != nil {
			p.Delete()
		}
	}
}
