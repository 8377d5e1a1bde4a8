// Package meshing turns activated chunks into indexed triangle meshes on a
// pool of worker goroutines.
package meshing

import (
	"github.com/go-gl/mathgl/mgl32"

	"terrain-gen/internal/world"
)

// FloatsPerVertex is the packed vertex layout: position xyz, normal xyz.
const FloatsPerVertex = 6

// Mesh is the triangulated surface of one chunk.
type Mesh struct {
	X, Y        int
	TerrainType world.TerrainType
	AllowTrees  bool
	Vertices    []float32
	Indices     []uint32
}

// VertexCount returns the number of packed vertices.
func (m Mesh) VertexCount() int { return len(m.Vertices) / FloatsPerVertex }

// TriangleCount returns the number of triangles.
func (m Mesh) TriangleCount() int { return len(m.Indices) / 3 }

// BuildMesh triangulates a height field. Every cell becomes two
// counter-clockwise triangles seen from +Z. Normals come from central
// differences, one-sided at the border.
func BuildMesh(c world.ChunkGeometry) Mesh {
	m := Mesh{X: c.X, Y: c.Y, TerrainType: c.TerrainType, AllowTrees: c.AllowTrees}
	f := c.HeightField
	rows := len(f)
	if rows == 0 || len(f[0]) == 0 {
		return m
	}
	cols := len(f[0])

	m.Vertices = make([]float32, 0, rows*cols*FloatsPerVertex)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			p := f[i][j]
			n := normalAt(f, i, j)
			m.Vertices = append(m.Vertices, p.X(), p.Y(), p.Z(), n.X(), n.Y(), n.Z())
		}
	}

	m.Indices = make([]uint32, 0, (rows-1)*(cols-1)*6)
	for i := 0; i < rows-1; i++ {
		for j := 0; j < cols-1; j++ {
			a := uint32(i*cols + j)
			b := uint32((i+1)*cols + j)
			c := uint32((i+1)*cols + j + 1)
			d := uint32(i*cols + j + 1)
			m.Indices = append(m.Indices, a, b, c, a, c, d)
		}
	}
	return m
}

func normalAt(f [][]mgl32.Vec3, i, j int) mgl32.Vec3 {
	i0, i1 := max(i-1, 0), min(i+1, len(f)-1)
	j0, j1 := max(j-1, 0), min(j+1, len(f[i])-1)

	var dzdx, dzdy float32
	if dx := f[i1][j].X() - f[i0][j].X(); dx != 0 {
		dzdx = (f[i1][j].Z() - f[i0][j].Z()) / dx
	}
	if dy := f[i][j1].Y() - f[i][j0].Y(); dy != 0 {
		dzdy = (f[i][j1].Z() - f[i][j0].Z()) / dy
	}
	return mgl32.Vec3{-dzdx, -dzdy, 1}.Normalize()
}
