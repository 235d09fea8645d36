package mesh

import "github.com/go-gl/mathgl/mgl32"

// Common layouts. Locations match the layout qualifiers in the lesson shaders.
var (
	Position        = Layout{{Location: 0, Size: 3}}
	PositionColor   = Layout{{Location: 0, Size: 3}, {Location: 1, Size: 3}}
	PositionTexture = Layout{{Location: 0, Size: 3}, {Location: 1, Size: 2}}
	// PositionColorTexture feeds position, colour and texture coordinates at 0, 1, 2.
	PositionColorTexture = Layout{{Location: 0, Size: 3}, {Location: 1, Size: 3}, {Location: 2, Size: 2}}
)

// Triangle is a single triangle in normalized device coordinates.
var Triangle = []float32{
	-0.5, -0.5, 0.0,
	0.5, -0.5, 0.0,
	0.0, 0.5, 0.0,
}

// ColorTriangle carries a red, green and blue corner.
var ColorTriangle = []float32{
	// x, y, z, r, g, b
	0.0, 0.5, 0.0, 1.0, 0.0, 0.0,
	-0.5, -0.5, 0.0, 0.0, 1.0, 0.0,
	0.5, -0.5, 0.0, 0.0, 0.0, 1.0,
}

// Rectangle and RectangleIndices draw a quad as two indexed triangles.
var Rectangle = []float32{
	-0.5, 0.5, 0.0,
	-0.5, -0.5, 0.0,
	0.5, -0.5, 0.0,
	0.5, 0.5, 0.0,
}

var RectangleIndices = []uint32{
	0, 1, 2,
	0, 2, 3,
}

// SideTriangle sits to the right of Rectangle.
var SideTriangle = []float32{
	0.5, -0.5, 0.0,
	0.75, 0.5, 0.0,
	1.0, -0.5, 0.0,
}

// ColorTextureQuad is a quad with per-vertex colour and texture coordinates.
var ColorTextureQuad = []float32{
	// x, y, z, r, g, b, s, t
	0.5, 0.5, 0.0, 1.0, 0.0, 0.0, 1.0, 1.0,
	0.5, -0.5, 0.0, 0.0, 1.0, 0.0, 1.0, 0.0,
	-0.5, -0.5, 0.0, 0.0, 0.0, 1.0, 0.0, 0.0,
	-0.5, 0.5, 0.0, 1.0, 1.0, 0.0, 0.0, 1.0,
}

// TextureQuad is a quad with texture coordinates only.
var TextureQuad = []float32{
	// x, y, z, s, t
	0.5, 0.5, 0.0, 1.0, 1.0, // top right
	0.5, -0.5, 0.0, 1.0, 0.0, // bottom right
	-0.5, -0.5, 0.0, 0.0, 0.0, // bottom left
	-0.5, 0.5, 0.0, 0.0, 1.0, // top left
}

var QuadIndices = []uint32{
	0, 1, 3,
	1, 2, 3,
}

// Cube is a unit cube centred on the origin, 36 unindexed vertices with texture coordinates.
var Cube = []float32{
	-0.5, -0.5, -0.5, 0.0, 0.0,
	0.5, -0.5, -0.5, 1.0, 0.0,
	0.5, 0.5, -0.5, 1.0, 1.0,
	0.5, 0.5, -0.5, 1.0, 1.0,
	-0.5, 0.5, -0.5, 0.0, 1.0,
	-0.5, -0.5, -0.5, 0.0, 0.0,

	-0.5, -0.5, 0.5, 0.0, 0.0,
	0.5, -0.5, 0.5, 1.0, 0.0,
	0.5, 0.5, 0.5, 1.0, 1.0,
	0.5, 0.5, 0.5, 1.0, 1.0,
	-0.5, 0.5, 0.5, 0.0, 1.0,
	-0.5, -0.5, 0.5, 0.0, 0.0,

	-0.5, 0.5, 0.5, 1.0, 0.0,
	-0.5, 0.5, -0.5, 1.0, 1.0,
	-0.5, -0.5, -0.5, 0.0, 1.0,
	-0.5, -0.5, -0.5, 0.0, 1.0,
	-0.5, -0.5, 0.5, 0.0, 0.0,
	-0.5, 0.5, 0.5, 1.0, 0.0,

	0.5, 0.5, 0.5, 1.0, 0.0,
	0.5, 0.5, -0.5, 1.0, 1.0,
	0.5, -0.5, -0.5, 0.0, 1.0,
	0.5, -0.5, -0.5, 0.0, 1.0,
	0.5, -0.5, 0.5, 0.0, 0.0,
	0.5, 0.5, 0.5, 1.0, 0.0,

	-0.5, -0.5, -0.5, 0.0, 1.0,
	0.5, -0.5, -0.5, 1.0, 1.0,
	0.5, -0.5, 0.5, 1.0, 0.0,
	0.5, -0.5, 0.5, 1.0, 0.0,
	-0.5, -0.5, 0.5, 0.0, 0.0,
	-0.5, -0.5, -0.5, 0.0, 1.0,

	-0.5, 0.5, -0.5, 0.0, 1.0,
	0.5, 0.5, -0.5, 1.0, 1.0,
	0.5, 0.5, 0.5, 1.0, 0.0,
	0.5, 0.5, 0.5, 1.0, 0.0,
	-0.5, 0.5, 0.5, 0.0, 0.0,
	-0.5, 0.5, -0.5, 0.0, 1.0,
}

// CubePositions places the ten cubes of the coordinate-system and camera lessons.
var CubePositions = []mgl32.Vec3{
	{0.0, 0.0, 0.0},
	{2.0, 5.0, -15.0},
	{-1.5, -2.2, -2.5},
	{-3.8, -2.0, -12.3},
	{2.4, -0.4, -3.5},
	{-1.7, 3.0, -7.5},
	{1.3, -2.0, -2.5},
	{1.5, 2.0, -2.5},
	{1.5, 0.2, -1.5},
	{-1.3, 1.0, -1.5},
}

// CubeModel returns the model matrix for cube i: translated to its position and
// rotated 20° per index about (1, 0.3, 0.5).
func CubeModel(i int) mgl32.Mat4 {
	angle := mgl32.DegToRad(20.0 * float32(i))
	axis := mgl32.Vec3{1.0, 0.3, 0.5}.Normalize()
	return mgl32.Translate3D(CubePositions[i].Elem()).Mul4(mgl32.HomogRotate3D(angle, axis))
}
