package geometry

import (
	"math"

	"github.com/df07/go-ascii-raytracer/pkg/core"
)

// SurfaceEpsilon is the minimum distance from a ray origin at which a hit
// is accepted. It keeps shadow rays that originate exactly on a surface
// from re-hitting that surface, at the cost of missing genuinely
// near-surface intersections closer than this distance.
const SurfaceEpsilon = 1e-6

// SurfaceHit describes the nearest intersection of a ray with a mesh
type SurfaceHit struct {
	Point    core.Vec3
	Polygon  *Polygon
	Distance float64
}

// IntersectPlane computes the parametric distance t at which a ray meets
// the plane through point with the given normal. Returns false if the ray
// is parallel to the plane or the intersection lies behind (or at) the
// ray origin.
func IntersectPlane(ray core.Ray, point, normal core.Vec3) (float64, bool) {
	denom := ray.Direction.Dot(normal)
	if denom == 0 {
		return 0, false
	}
	d := -normal.Dot(point)
	t := -(normal.Dot(ray.Origin) + d) / denom
	if t <= 0 {
		return 0, false
	}
	return t, true
}

// dominantAxis returns the index of the normal component with the largest
// magnitude. Ties resolve toward the higher axis (Z over Y over X), which
// fixes the projection used by Contains.
func dominantAxis(normal core.Vec3) int {
	axis := 0
	maxMag := math.Abs(normal.X)
	if mag := math.Abs(normal.Y); mag >= maxMag {
		axis = 1
		maxMag = mag
	}
	if mag := math.Abs(normal.Z); mag >= maxMag {
		axis = 2
	}
	return axis
}

// project2D drops the given axis from a 3-vector
func project2D(v core.Vec3, axis int) (float64, float64) {
	switch axis {
	case 0:
		return v.Y, v.Z
	case 1:
		return v.X, v.Z
	default:
		return v.X, v.Y
	}
}

// Contains reports whether a point, assumed to lie on the polygon's plane,
// falls inside the polygon. Both are projected to 2D by dropping the axis
// of the normal's largest-magnitude component, then a horizontal ray cast
// counts edge crossings; the point is inside iff the count is odd. Points
// exactly on an edge may land on either side of the parity test.
func (p *Polygon) Contains(point core.Vec3) bool {
	axis := dominantAxis(p.Normal)
	px, py := project2D(point, axis)

	crossings := 0
	n := len(p.Vertices)
	for i := 0; i < n; i++ {
		ax, ay := project2D(p.Vertices[i], axis)
		bx, by := project2D(p.Vertices[(i+1)%n], axis)
		if ay > by {
			ax, ay, bx, by = bx, by, ax, ay
		}
		if py < ay || py > by {
			continue
		}
		if px >= math.Max(ax, bx) {
			continue
		}
		if px < math.Min(ax, bx) {
			crossings++
			continue
		}
		// Point is inside the edge's X span: compare slopes to decide
		// which side of the edge line it falls on.
		edgeSlope := (by - ay) / (bx - ax)
		pointSlope := (py - ay) / (px - ax)
		if edgeSlope < pointSlope {
			crossings++
		}
	}
	return crossings%2 == 1
}

// Hit finds the nearest intersection of a ray with the mesh by brute force
// over all polygons. Hits closer than SurfaceEpsilon to the ray origin are
// rejected to avoid self-intersection artifacts.
func (m *Mesh) Hit(ray core.Ray) (*SurfaceHit, bool) {
	var closest *SurfaceHit
	for _, polygon := range m.Polygons {
		if len(polygon.Vertices) < 3 {
			continue
		}
		t, ok := IntersectPlane(ray, polygon.Vertices[0], polygon.Normal)
		if !ok {
			continue
		}
		point := ray.At(t)
		distance := point.Subtract(ray.Origin).Length()
		if distance < SurfaceEpsilon {
			continue
		}
		if !polygon.Contains(point) {
			continue
		}
		if closest == nil || distance < closest.Distance {
			closest = &SurfaceHit{Point: point, Polygon: polygon, Distance: distance}
		}
	}
	return closest, closest != nil
}
