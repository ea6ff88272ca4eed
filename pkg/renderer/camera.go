package renderer

import (
	"math"

	"github.com/df07/go-ascii-raytracer/pkg/core"
)

// CameraConfig contains the camera intrinsics and pose
type CameraConfig struct {
	Width         int       // Image width in characters
	Height        int       // Image height in characters
	PixelAspect   float64   // Correction for non-square character cells (defaults to 1)
	VFov          float64   // Vertical field of view in radians
	CameraToWorld core.Mat4 // Affine camera-to-world transform
}

// Camera generates one normalized world-space primary ray per pixel
type Camera struct {
	config CameraConfig
	origin core.Vec3 // World-space camera position
	scale  float64   // tan(vfov/2)
	aspect float64   // Image aspect ratio (width/height)
}

// NewCamera creates a pinhole camera from the given configuration
func NewCamera(config CameraConfig) *Camera {
	if config.Width <= 0 || config.Height <= 0 {
		panic("Camera resolution must be positive")
	}
	if config.PixelAspect == 0 {
		config.PixelAspect = 1
	}

	return &Camera{
		config: config,
		origin: config.CameraToWorld.TransformPoint(core.NewVec3(0, 0, 0)),
		scale:  math.Tan(config.VFov / 2),
		aspect: float64(config.Width) / float64(config.Height),
	}
}

// Origin returns the camera's world-space position
func (c *Camera) Origin() core.Vec3 {
	return c.origin
}

// RayForPixel generates the normalized primary ray through pixel (x, y).
// The camera looks down -Z in camera space; the vertical axis is flipped
// so that y=0 is the top row.
func (c *Camera) RayForPixel(x, y int) core.Ray {
	px := (2*(float64(x)+0.5)/float64(c.config.Width) - 1) * c.aspect * c.config.PixelAspect * c.scale
	py := (1 - 2*(float64(y)+0.5)/float64(c.config.Height)) * c.scale

	target := c.config.CameraToWorld.TransformPoint(core.NewVec3(px, py, -1))
	direction := target.Subtract(c.origin).Normalize()

	return core.NewRay(c.origin, direction)
}
