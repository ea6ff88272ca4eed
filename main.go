package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/df07/go-ascii-raytracer/pkg/loaders"
	"github.com/df07/go-ascii-raytracer/pkg/scene"
)

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "cube", "Built-in scene: 'cube' or 'triangle'")
	meshFile := flag.String("mesh", "", "Path to an ASCII PLY mesh (overrides -scene)")
	width := flag.Int("width", 120, "Output width in characters")
	height := flag.Int("height", 40, "Output height in characters")
	fov := flag.Float64("fov", 0, "Vertical field of view in degrees (0 keeps the scene default)")
	pixelAspect := flag.Float64("aspect", 0.5, "Character cell aspect correction (terminal cells are tall)")
	outFile := flag.String("out", "", "Output file (default stdout)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("ASCII Raytracer")
		fmt.Println("Usage: asciiray [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  cube     - Unit cube lit from the upper right")
		fmt.Println("  triangle - Single triangle facing the camera")
		return
	}

	// Pick the scene: a loaded mesh file wins over the built-ins
	var selectedScene *scene.Scene
	switch {
	case *meshFile != "":
		mesh, err := loaders.LoadPLYFile(*meshFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading mesh: %v\n", err)
			os.Exit(1)
		}
		selectedScene = scene.MeshScene(mesh)
	case *sceneType == "triangle":
		selectedScene = scene.NewTriangleScene()
	case *sceneType == "cube":
		selectedScene = scene.NewCubeScene()
	default:
		fmt.Fprintf(os.Stderr, "Unknown scene type: %s. Using cube scene.\n", *sceneType)
		selectedScene = scene.NewCubeScene()
	}

	selectedScene.Camera.Width = *width
	selectedScene.Camera.Height = *height
	selectedScene.Camera.PixelAspect = *pixelAspect
	if *fov > 0 {
		selectedScene.Camera.VFov = *fov * math.Pi / 180
	}

	out := os.Stdout
	if *outFile != "" {
		file, err := os.Create(*outFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating file: %v\n", err)
			os.Exit(1)
		}
		defer file.Close()
		out = file
	}

	startTime := time.Now()
	if err := selectedScene.Render(out); err != nil {
		fmt.Fprintf(os.Stderr, "Render failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintln(out)

	fmt.Fprintf(os.Stderr, "Rendered %d polygons at %dx%d in %v\n",
		selectedScene.Mesh.PolygonCount(), *width, *height, time.Since(startTime))
}
