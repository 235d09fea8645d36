package mesh

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

const floatSize = 4

// Attribute is one vertex attribute: the shader location it feeds and how
// many float components it takes.
type Attribute struct {
	Location uint32
	Size     int32
}

// Layout describes interleaved float vertex data, in attribute order.
type Layout []Attribute

// Floats returns the number of floats per vertex.
func (l Layout) Floats() int {
	n := 0
	for _, a := range l {
		n += int(a.Size)
	}
	return n
}

// Stride returns the size of one vertex in bytes.
func (l Layout) Stride() int32 {
	return int32(l.Floats() * floatSize)
}

// Offset returns the byte offset of attribute i within a vertex.
func (l Layout) Offset(i int) int {
	off := 0
	for _, a := range l[:i] {
		off += int(a.Size)
	}
	return off * floatSize
}

// VertexCount returns how many vertices n floats hold, or an error when n is
// not a whole number of vertices.
func (l Layout) VertexCount(n int) (int32, error) {
	w := l.Floats()
	if w == 0 {
		return 0, fmt.Errorf("layout has no attributes")
	}
	if n%w != 0 {
		return 0, fmt.Errorf("%d floats is not a multiple of the %d-float vertex", n, w)
	}
	return int32(n / w), nil
}

// Mesh owns a vertex array object, its vertex buffer and an optional element buffer.
type Mesh struct {
	vao, vbo, ebo uint32
	count         int32
	indexed       bool
}

// New uploads vertices (and indices, if any) and records the attribute layout in a new VAO.
func New(vertices []float32, indices []uint32, layout Layout) (*Mesh, error) {
	n, err := layout.VertexCount(len(vertices))
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, fmt.Errorf("mesh has no vertices")
	}

	m := &Mesh{count: n}
	gl.GenVertexArrays(1, &m.vao)
	gl.GenBuffers(1, &m.vbo)

	// Attribute pointers are recorded in whichever VAO is bound.
	gl.BindVertexArray(m.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*floatSize, gl.Ptr(vertices), gl.STATIC_DRAW)

	if len(indices) > 0 {
		gl.GenBuffers(1, &m.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
		m.count = int32(len(indices))
		m.indexed = true
	}

	stride := layout.Stride()
	for i, a := range layout {
		gl.VertexAttribPointerWithOffset(a.Location, a.Size, gl.FLOAT, false, stride, uintptr(layout.Offset(i)))
		gl.EnableVertexAttribArray(a.Location)
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	// The element buffer binding is VAO state, so unbind the VAO first.
	gl.BindVertexArray(0)

	return m, nil
}

// Draw binds the VAO and draws the mesh as triangles.
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	if m.indexed {
		gl.DrawElementsWithOffset(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, 0)
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, m.count)
	}
}

// Delete frees the GPU objects.
func (m *Mesh) Delete() {
	gl.DeleteVertexArrays(1, &m.vao)
	gl.DeleteBuffers(1, &m.vbo)
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
	}
	*m = Mesh{}
}
