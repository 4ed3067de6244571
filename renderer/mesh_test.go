package renderer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"
)

func vertex(i uint32) mgl32.Vec3 {
	o := int(i) * vertexFloats
	return mgl32.Vec3{CubeVertices[o], CubeVertices[o+1], CubeVertices[o+2]}
}

func TestCubeShape(t *testing.T) {
	require.Len(t, CubeVertices, 8*vertexFloats)
	require.Len(t, CubeIndices, 36)

	for i := 0; i < 8; i++ {
		for j := 0; j < vertexFloats; j++ {
			v := CubeVertices[i*vertexFloats+j]
			if j < positionFloats {
				require.Contains(t, []float32{-1, 1}, v)
			} else {
				require.Contains(t, []float32{0, 1}, v)
			}
		}
	}
	for _, idx := range CubeIndices {
		require.Less(t, idx, uint32(8))
	}
}

func TestCubeWindingFacesOutward(t *testing.T) {
	for tri := 0; tri < len(CubeIndices); tri += 3 {
		a, b, c := vertex(CubeIndices[tri]), vertex(CubeIndices[tri+1]), vertex(CubeIndices[tri+2])
		normal := b.Sub(a).Cross(c.Sub(a))
		centroid := a.Add(b).Add(c).Mul(1.0 / 3.0)
		require.Greaterf(t, normal.Dot(centroid), float32(0), "triangle %d faces inward", tri/3)
	}
}

func TestCubeCoversEveryFaceTwice(t *testing.T) {
	faces := map[mgl32.Vec3]int{}
	for tri := 0; tri < len(CubeIndices); tri += 3 {
		a, b, c := vertex(CubeIndices[tri]), vertex(CubeIndices[tri+1]), vertex(CubeIndices[tri+2])
		faces[b.Sub(a).Cross(c.Sub(a)).Normalize()]++
	}
	require.Len(t, faces, 6)
	for n, count := range faces {
		require.Equalf(t, 2, count, "face %v", n)
	}
}
