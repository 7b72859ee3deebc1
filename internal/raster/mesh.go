package raster

import (
	"github.com/passabilities/space3"
)

// Tri references three vertex positions and three texture coordinates.
type Tri struct {
	V [3]int
	T [3]int
}

// Mesh is an indexed triangle mesh with shared UV coordinates.
type Mesh struct {
	Verts []space3.Vector3
	UVs   [][2]float64
	Tris  []Tri
}

// quad splits a four-corner face into two triangles sharing the full UV square.
func quad(a, b, c, d int) [2]Tri {
	return [2]Tri{
		{V: [3]int{a, b, c}, T: [3]int{0, 1, 2}},
		{V: [3]int{a, c, d}, T: [3]int{0, 2, 3}},
	}
}

// Cube returns an axis-aligned cube with the given half-extent, centered at
// the origin. Every face maps to the full texture square.
func Cube(half float64) *Mesh {
	h := half
	verts := []space3.Vector3{
		{-h, -h, -h}, {h, -h, -h}, {h, h, -h}, {-h, h, -h},
		{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h},
	}
	uvs := [][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	faces := [][4]int{
		{0, 1, 2, 3}, // -z
		{5, 4, 7, 6}, // +z
		{4, 5, 1, 0}, // -y
		{3, 2, 6, 7}, // +y
		{4, 0, 3, 7}, // -x
		{1, 5, 6, 2}, // +x
	}
	tris := make([]Tri, 0, len(faces)*2)
	for _, f := range faces {
		pair := quad(f[0], f[1], f[2], f[3])
		tris = append(tris, pair[0], pair[1])
	}

	return &Mesh{Verts: verts, UVs: uvs, Tris: tris}
}
