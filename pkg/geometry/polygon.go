package geometry

import (
	"github.com/df07/go-ascii-raytracer/pkg/core"
)

// Polygon represents a planar, consistently wound face of a mesh.
// Normal is the cached unit plane normal; it is zero until the owning
// mesh has been annotated and is read-only during rendering.
type Polygon struct {
	Vertices []core.Vec3
	Normal   core.Vec3
}

// NewPolygon creates a polygon from its vertices
func NewPolygon(vertices ...core.Vec3) *Polygon {
	return &Polygon{Vertices: vertices}
}

// Mesh represents an ordered collection of polygons
type Mesh struct {
	Polygons []*Polygon
}

// NewMesh creates a mesh from a list of polygons
func NewMesh(polygons ...*Polygon) *Mesh {
	return &Mesh{Polygons: polygons}
}

// computeNormal derives the unit plane normal from the first three
// vertices: normalize((v1-v0) x (v2-v0)). Returns false for degenerate
// polygons (fewer than 3 vertices, or collinear leading vertices).
func (p *Polygon) computeNormal() (core.Vec3, bool) {
	if len(p.Vertices) < 3 {
		return core.Vec3{}, false
	}
	edge1 := p.Vertices[1].Subtract(p.Vertices[0])
	edge2 := p.Vertices[2].Subtract(p.Vertices[0])
	cross := edge1.Cross(edge2)
	if cross.Length() == 0 {
		return core.Vec3{}, false
	}
	return cross.Normalize(), true
}

// AnnotateNormals computes and caches the plane normal of every polygon.
// Degenerate polygons are dropped so that NaN normals never reach the
// intersection loop. The pass is idempotent: re-annotating an already
// annotated mesh recomputes identical normals.
func (m *Mesh) AnnotateNormals() {
	kept := m.Polygons[:0]
	for _, polygon := range m.Polygons {
		normal, ok := polygon.computeNormal()
		if !ok {
			continue
		}
		polygon.Normal = normal
		kept = append(kept, polygon)
	}
	m.Polygons = kept
}

// PolygonCount returns the number of polygons in the mesh
func (m *Mesh) PolygonCount() int {
	return len(m.Polygons)
}
