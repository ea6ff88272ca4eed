package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/df07/go-ascii-raytracer/pkg/core"
	"github.com/df07/go-ascii-raytracer/pkg/geometry"
)

// plyHeader holds the element counts declared by a PLY header
type plyHeader struct {
	VertexCount int
	FaceCount   int
}

// LoadPLYFile loads an ASCII PLY mesh from a file
func LoadPLYFile(filename string) (*geometry.Mesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open PLY file: %v", err)
	}
	defer file.Close()

	return ReadPLY(file)
}

// ReadPLY parses an ASCII PLY mesh from a reader. The parser runs as a
// two-state machine: header lines up to the end_header terminator, then
// vertex lines followed by face lines in the declared counts. Vertices
// are loaded with their 2nd and 3rd coordinates swapped so that Y is
// vertical and Z is depth in the scene.
//
// Malformed or truncated data lines yield a partial mesh rather than a
// parse error; only reader-level failures are reported.
func ReadPLY(r io.Reader) (*geometry.Mesh, error) {
	scanner := bufio.NewScanner(r)

	header, err := parseHeader(scanner)
	if err != nil {
		return nil, err
	}

	vertices := make([]core.Vec3, 0, header.VertexCount)
	for len(vertices) < header.VertexCount && scanner.Scan() {
		if vertex, ok := parseVertexLine(scanner.Text()); ok {
			vertices = append(vertices, vertex)
		}
	}

	polygons := make([]*geometry.Polygon, 0, header.FaceCount)
	for len(polygons) < header.FaceCount && scanner.Scan() {
		if polygon, ok := parseFaceLine(scanner.Text(), vertices); ok {
			polygons = append(polygons, polygon)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read PLY data: %v", err)
	}

	return geometry.NewMesh(polygons...), nil
}

// parseHeader consumes header lines up to and including end_header
func parseHeader(scanner *bufio.Scanner) (*plyHeader, error) {
	header := &plyHeader{}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "end_header" {
			return header, nil
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "ply", "format", "comment", "property":
			// No bearing on the element counts
		case "element":
			if len(parts) < 3 {
				continue
			}
			count, err := strconv.Atoi(parts[2])
			if err != nil {
				continue
			}
			switch parts[1] {
			case "vertex":
				header.VertexCount = count
			case "face":
				header.FaceCount = count
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read PLY header: %v", err)
	}
	// Input ended before end_header: empty mesh
	return header, nil
}

// parseVertexLine parses 3 coordinates, swapping the 2nd and 3rd
func parseVertexLine(line string) (core.Vec3, bool) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return core.Vec3{}, false
	}

	var coords [3]float64
	for i := 0; i < 3; i++ {
		value, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return core.Vec3{}, false
		}
		coords[i] = value
	}
	return core.NewVec3(coords[0], coords[2], coords[1]), true
}

// parseFaceLine parses a vertex count followed by that many indices and
// resolves them against the vertex table
func parseFaceLine(line string, vertices []core.Vec3) (*geometry.Polygon, bool) {
	fields := strings.Fields(line)
	if len(fields) < 1 {
		return nil, false
	}

	count, err := strconv.Atoi(fields[0])
	if err != nil || count < 1 || len(fields) < 1+count {
		return nil, false
	}

	resolved := make([]core.Vec3, 0, count)
	for _, field := range fields[1 : 1+count] {
		index, err := strconv.Atoi(field)
		if err != nil || index < 0 || index >= len(vertices) {
			return nil, false
		}
		resolved = append(resolved, vertices[index])
	}
	return geometry.NewPolygon(resolved...), true
}
