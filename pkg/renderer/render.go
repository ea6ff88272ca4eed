package renderer

import (
	"bufio"
	"io"
	"math"

	"github.com/df07/go-ascii-raytracer/pkg/core"
	"github.com/df07/go-ascii-raytracer/pkg/geometry"
)

// DefaultPalette returns the standard glyph ramp from darkest to brightest
func DefaultPalette() []rune {
	return []rune(" .:-=+*#%@")
}

// Renderer shades a normal-annotated mesh against a single point light and
// quantizes the result into a glyph palette
type Renderer struct {
	Mesh    *geometry.Mesh
	Light   core.Vec3 // Point light position
	Palette []rune    // Glyphs ordered darkest to brightest, at least 2
}

// NewRenderer creates a renderer. A nil palette selects DefaultPalette.
func NewRenderer(mesh *geometry.Mesh, light core.Vec3, palette []rune) *Renderer {
	if palette == nil {
		palette = DefaultPalette()
	}
	if len(palette) < 2 {
		panic("Palette must contain at least 2 glyphs")
	}

	return &Renderer{
		Mesh:    mesh,
		Light:   light,
		Palette: palette,
	}
}

// Render traces one primary ray per pixel in row-major order and writes
// the resulting glyph grid to w, one line per pixel row
func (r *Renderer) Render(camera *Camera, w io.Writer) error {
	out := bufio.NewWriter(w)

	for y := 0; y < camera.config.Height; y++ {
		if y > 0 {
			if _, err := out.WriteRune('\n'); err != nil {
				return err
			}
		}
		for x := 0; x < camera.config.Width; x++ {
			glyph := r.shadePixel(camera.RayForPixel(x, y))
			if _, err := out.WriteRune(glyph); err != nil {
				return err
			}
		}
	}

	return out.Flush()
}

// shadePixel traces a primary ray and, on a hit, a shadow ray toward the
// light, then quantizes the surface intensity into the palette
func (r *Renderer) shadePixel(ray core.Ray) rune {
	hit, ok := r.Mesh.Hit(ray)
	if !ok {
		return r.Palette[0]
	}

	lightDir := r.Light.Subtract(hit.Point).Normalize()
	shadowRay := core.NewRay(hit.Point, lightDir)
	if _, occluded := r.Mesh.Hit(shadowRay); occluded {
		return r.Palette[1]
	}

	intensity := math.Abs(hit.Polygon.Normal.Dot(lightDir))
	return r.Palette[r.quantize(intensity)]
}

// quantize maps an intensity in [0,1] to a palette index. Index 0 is
// reserved for background and index 1 doubles as the shadow glyph; lit
// surfaces land on 1..len-1. The index is clamped so that out-of-range
// intensities cannot escape the palette.
func (r *Renderer) quantize(intensity float64) int {
	index := 1 + int(math.Round(intensity*float64(len(r.Palette)-2)))
	if index < 0 {
		return 0
	}
	if index >= len(r.Palette) {
		return len(r.Palette) - 1
	}
	return index
}
