package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-ascii-raytracer/pkg/core"
)

func TestCamera_CenterPixelLooksDownNegativeZ(t *testing.T) {
	camera := NewCamera(CameraConfig{
		Width:         1,
		Height:        1,
		PixelAspect:   1,
		VFov:          math.Pi / 2,
		CameraToWorld: core.Identity(),
	})

	ray := camera.RayForPixel(0, 0)
	expected := core.NewVec3(0, 0, -1)

	const tolerance = 1e-9
	if ray.Direction.Subtract(expected).Length() > tolerance {
		t.Errorf("Expected direction %v, got %v", expected, ray.Direction)
	}
	if !ray.Origin.Equals(core.NewVec3(0, 0, 0)) {
		t.Errorf("Expected origin at world origin, got %v", ray.Origin)
	}
}

func TestCamera_VerticalAxisIsFlipped(t *testing.T) {
	camera := NewCamera(CameraConfig{
		Width:         3,
		Height:        3,
		PixelAspect:   1,
		VFov:          math.Pi / 2,
		CameraToWorld: core.Identity(),
	})

	top := camera.RayForPixel(1, 0)
	bottom := camera.RayForPixel(1, 2)

	if top.Direction.Y <= 0 {
		t.Errorf("Expected top row ray to point up, got Y=%v", top.Direction.Y)
	}
	if bottom.Direction.Y >= 0 {
		t.Errorf("Expected bottom row ray to point down, got Y=%v", bottom.Direction.Y)
	}
}

func TestCamera_DirectionsAreNormalized(t *testing.T) {
	camera := NewCamera(CameraConfig{
		Width:         5,
		Height:        4,
		PixelAspect:   0.5,
		VFov:          math.Pi / 3,
		CameraToWorld: core.Translate(2, 1, 5).Mul(core.RotateY(0.7)),
	})

	const tolerance = 1e-12
	for y := 0; y < 4; y++ {
		for x := 0; x < 5; x++ {
			ray := camera.RayForPixel(x, y)
			if math.Abs(ray.Direction.Length()-1) > tolerance {
				t.Fatalf("Pixel (%d,%d): direction length %v", x, y, ray.Direction.Length())
			}
		}
	}
}

func TestCamera_TransformMovesOrigin(t *testing.T) {
	camera := NewCamera(CameraConfig{
		Width:         1,
		Height:        1,
		VFov:          math.Pi / 2,
		CameraToWorld: core.Translate(0, 0, 3),
	})

	if !camera.Origin().Equals(core.NewVec3(0, 0, 3)) {
		t.Errorf("Expected origin (0,0,3), got %v", camera.Origin())
	}
}
