package mesh

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutStrideAndOffsets(t *testing.T) {
	l := PositionColorTexture
	assert.Equal(t, 8, l.Floats())
	assert.Equal(t, int32(32), l.Stride())
	assert.Equal(t, 0, l.Offset(0))
	assert.Equal(t, 12, l.Offset(1))
	assert.Equal(t, 24, l.Offset(2))

	assert.Equal(t, int32(20), PositionTexture.Stride())
	assert.Equal(t, 12, PositionTexture.Offset(1))
}

func TestVertexCount(t *testing.T) {
	n, err := Position.VertexCount(len(Triangle))
	require.NoError(t, err)
	assert.Equal(t, int32(3), n)

	_, err = PositionColor.VertexCount(7)
	assert.Error(t, err)

	_, err = Layout{}.VertexCount(3)
	assert.Error(t, err)
}

func TestGeometryTablesMatchLayouts(t *testing.T) {
	cases := []struct {
		name     string
		data     []float32
		layout   Layout
		vertices int32
	}{
		{"triangle", Triangle, Position, 3},
		{"color triangle", ColorTriangle, PositionColor, 3},
		{"rectangle", Rectangle, Position, 4},
		{"side triangle", SideTriangle, Position, 3},
		{"color texture quad", ColorTextureQuad, PositionColorTexture, 4},
		{"texture quad", TextureQuad, PositionTexture, 4},
		{"cube", Cube, PositionTexture, 36},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n, err := tc.layout.VertexCount(len(tc.data))
			require.NoError(t, err)
			assert.Equal(t, tc.vertices, n)
		})
	}
}

func TestIndicesInRange(t *testing.T) {
	for _, idx := range RectangleIndices {
		assert.Less(t, idx, uint32(4))
	}
	for _, idx := range QuadIndices {
		assert.Less(t, idx, uint32(4))
	}
	assert.Len(t, RectangleIndices, 6)
	assert.Len(t, QuadIndices, 6)
}

func TestCubeModel(t *testing.T) {
	require.Len(t, CubePositions, 10)

	// The first cube is not rotated and sits at the origin.
	assert.True(t, CubeModel(0).ApproxEqual(mgl32.Ident4()))

	// Translation lands in the last column.
	m := CubeModel(3)
	assert.True(t, m.Col(3).Vec3().ApproxEqual(CubePositions[3]))
	// Rotation keeps lengths.
	v := m.Mul4x1(mgl32.Vec4{1, 0, 0, 0}).Vec3()
	assert.InDelta(t, 1.0, v.Len(), 1e-5)
}
