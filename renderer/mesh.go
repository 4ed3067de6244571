package renderer

// Cube vertex layout: x y z u v.
const (
	floatSize      = 4
	vertexFloats   = 5
	positionFloats = 3
	uvFloats       = 2
	vertexStride   = vertexFloats * floatSize
)

// CubeVertices is the unit cube spanning [-1, 1] on every axis.
var CubeVertices = []float32{
	//  x     y     z    u    v
	-1.0, -1.0, +1.0, 0.0, 0.0,
	+1.0, -1.0, +1.0, 1.0, 0.0,
	+1.0, +1.0, +1.0, 1.0, 1.0,
	-1.0, +1.0, +1.0, 0.0, 1.0,
	-1.0, -1.0, -1.0, 0.0, 0.0,
	+1.0, -1.0, -1.0, 1.0, 0.0,
	+1.0, +1.0, -1.0, 1.0, 1.0,
	-1.0, +1.0, -1.0, 0.0, 1.0,
}

// CubeIndices lists 12 triangles, counter-clockwise when seen from outside.
var CubeIndices = []uint32{
	0, 1, 2, 2, 3, 0, // +z
	5, 4, 7, 7, 6, 5, // -z
	4, 0, 3, 3, 7, 4, // -x
	1, 5, 6, 6, 2, 1, // +x
	3, 2, 6, 6, 7, 3, // +y
	4, 5, 1, 1, 0, 4, // -y
}
