package scene

import (
	"io"
	"math"

	"github.com/df07/go-ascii-raytracer/pkg/core"
	"github.com/df07/go-ascii-raytracer/pkg/geometry"
	"github.com/df07/go-ascii-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Mesh    *geometry.Mesh
	Light   core.Vec3
	Palette []rune
	Camera  renderer.CameraConfig
}

// Render annotates the mesh with plane normals and renders the scene to w
func (s *Scene) Render(w io.Writer) error {
	s.Mesh.AnnotateNormals()
	camera := renderer.NewCamera(s.Camera)
	return renderer.NewRenderer(s.Mesh, s.Light, s.Palette).Render(camera, w)
}

// NewCubeScene creates a unit cube viewed from above and to the side,
// lit from the upper right
func NewCubeScene() *Scene {
	corners := []core.Vec3{
		core.NewVec3(-0.5, -0.5, -0.5),
		core.NewVec3(0.5, -0.5, -0.5),
		core.NewVec3(0.5, 0.5, -0.5),
		core.NewVec3(-0.5, 0.5, -0.5),
		core.NewVec3(-0.5, -0.5, 0.5),
		core.NewVec3(0.5, -0.5, 0.5),
		core.NewVec3(0.5, 0.5, 0.5),
		core.NewVec3(-0.5, 0.5, 0.5),
	}
	faces := [][4]int{
		{0, 1, 2, 3}, // back
		{4, 5, 6, 7}, // front
		{0, 1, 5, 4}, // bottom
		{3, 2, 6, 7}, // top
		{0, 3, 7, 4}, // left
		{1, 2, 6, 5}, // right
	}

	polygons := make([]*geometry.Polygon, 0, len(faces))
	for _, face := range faces {
		polygons = append(polygons, geometry.NewPolygon(
			corners[face[0]], corners[face[1]], corners[face[2]], corners[face[3]]))
	}

	return &Scene{
		Mesh:  geometry.NewMesh(polygons...),
		Light: core.NewVec3(2, 4, 3),
		Camera: renderer.CameraConfig{
			VFov: math.Pi / 4,
			CameraToWorld: core.RotateY(0.6).
				Mul(core.Translate(0, 0.9, 2.8)).
				Mul(core.RotateX(-0.3)),
		},
	}
}

// NewTriangleScene creates a single triangle facing the camera, lit head-on
func NewTriangleScene() *Scene {
	triangle := geometry.NewPolygon(
		core.NewVec3(-1, -1, 0),
		core.NewVec3(1, -1, 0),
		core.NewVec3(0, 1, 0),
	)

	return &Scene{
		Mesh:  geometry.NewMesh(triangle),
		Light: core.NewVec3(0, 0, 5),
		Camera: renderer.CameraConfig{
			VFov:          math.Pi / 2,
			CameraToWorld: core.Translate(0, 0, 3),
		},
	}
}

// MeshScene wraps a loaded mesh with a default camera and light
func MeshScene(mesh *geometry.Mesh) *Scene {
	return &Scene{
		Mesh:  mesh,
		Light: core.NewVec3(3, 5, 4),
		Camera: renderer.CameraConfig{
			VFov: math.Pi / 3,
			CameraToWorld: core.Translate(0, 1, 4).
				Mul(core.RotateX(-0.2)),
		},
	}
}
