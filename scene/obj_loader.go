package scene

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"sceneview/core"
	"sceneview/math"
)

// objIndex references one face corner: 0-based position / UV / normal
// indices, -1 when absent.
type objIndex struct {
	v, vt, vn int
}

// LoadOBJ parses a Wavefront .obj file into a single mesh. Every object and
// group is merged; materials are ignored since entities carry their own.
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open obj %q: %w", path, err)
	}
	defer f.Close()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	mesh, err := ParseOBJ(name, f)
	if err != nil {
		return nil, fmt.Errorf("load obj %q: %w", path, err)
	}
	slog.Debug("loaded obj", "path", path, "vertices", len(mesh.Vertices), "triangles", mesh.TriangleCount())
	return mesh, nil
}

// ParseOBJ reads OBJ text from r. Polygons are fan-triangulated and negative
// (relative) indices are resolved against the data read so far.
func ParseOBJ(name string, r io.Reader) (*Mesh, error) {
	var (
		positions []math.Vector3
		normals   []math.Vector3
		uvs       []math.Vector2
		corners   []objIndex
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "v":
			v, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			positions = append(positions, math.Vector3{v[0], v[1], v[2]})

		case "vn":
			v, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			normals = append(normals, math.Vector3{v[0], v[1], v[2]})

		case "vt":
			v, err := parseFloats(fields[1:], 2)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			uvs = append(uvs, math.Vector2{v[0], v[1]})

		case "f":
			if len(fields) < 4 {
				continue
			}
			face := make([]objIndex, 0, len(fields)-1)
			for _, tok := range fields[1:] {
				idx, err := parseFaceVertex(tok, len(positions), len(uvs), len(normals))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				face = append(face, idx)
			}
			// Fan triangulation: 0-1-2, 0-2-3, 0-3-4, ...
			for i := 1; i+1 < len(face); i++ {
				corners = append(corners, face[0], face[i], face[i+1])
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan obj: %w", err)
	}
	if len(corners) == 0 {
		return nil, ErrNoGeometry
	}

	return buildMeshFromOBJ(name, corners, positions, normals, uvs), nil
}

func parseFloats(fields []string, n int) ([]float32, error) {
	if len(fields) < n {
		return nil, fmt.Errorf("want %d values, got %d", n, len(fields))
	}
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", fields[i], err)
		}
		out[i] = float32(f)
	}
	return out, nil
}

// parseFaceVertex parses one face vertex token: "v", "v/vt", "v//vn", "v/vt/vn".
func parseFaceVertex(tok string, nv, nvt, nvn int) (objIndex, error) {
	parseIdx := func(s string, count int) (int, error) {
		if s == "" {
			return -1, nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return -1, fmt.Errorf("face index %q: %w", s, err)
		}
		switch {
		case n > 0:
			n--
		case n < 0:
			n += count
		default:
			return -1, fmt.Errorf("face index 0 in %q", tok)
		}
		if n < 0 || n >= count {
			return -1, fmt.Errorf("face index %q out of range", s)
		}
		return n, nil
	}

	parts := strings.Split(tok, "/")
	res := objIndex{v: -1, vt: -1, vn: -1}
	var err error
	if res.v, err = parseIdx(parts[0], nv); err != nil {
		return res, err
	}
	if res.v < 0 {
		return res, fmt.Errorf("face vertex %q has no position", tok)
	}
	if len(parts) > 1 {
		if res.vt, err = parseIdx(parts[1], nvt); err != nil {
			return res, err
		}
	}
	if len(parts) > 2 {
		if res.vn, err = parseIdx(parts[2], nvn); err != nil {
			return res, err
		}
	}
	return res, nil
}

// buildMeshFromOBJ deduplicates face corners into an indexed mesh.
func buildMeshFromOBJ(name string, corners []objIndex, positions, normals []math.Vector3, uvs []math.Vector2) *Mesh {
	vertMap := map[objIndex]uint32{}
	vertices := make([]core.Vertex, 0, len(corners))
	indices := make([]uint32, 0, len(corners))
	missingNormals := false

	for _, k := range corners {
		if idx, ok := vertMap[k]; ok {
			indices = append(indices, idx)
			continue
		}
		v := core.Vertex{Position: positions[k.v]}
		if k.vt >= 0 {
			v.UV = uvs[k.vt]
		}
		if k.vn >= 0 {
			v.Normal = normals[k.vn]
		} else {
			missingNormals = true
		}
		idx := uint32(len(vertices))
		vertices = append(vertices, v)
		vertMap[k] = idx
		indices = append(indices, idx)
	}

	if missingNormals {
		generateNormals(vertices, indices)
	}
	return NewMesh(name, vertices, indices)
}

// generateNormals writes area-weighted smooth normals into vertices that
// have none.
func generateNormals(vertices []core.Vertex, indices []uint32) {
	accum := make([]math.Vector3, len(vertices))
	for i := 0; i+2 < len(indices); i += 3 {
		i0, i1, i2 := indices[i], indices[i+1], indices[i+2]
		p0 := vertices[i0].Position
		n := vertices[i1].Position.Sub(p0).Cross(vertices[i2].Position.Sub(p0))
		accum[i0] = accum[i0].Add(n)
		accum[i1] = accum[i1].Add(n)
		accum[i2] = accum[i2].Add(n)
	}
	for i := range vertices {
		if vertices[i].Normal != (math.Vector3{}) {
			continue
		}
		if accum[i].Length() > 0 {
			vertices[i].Normal = accum[i].Normalize()
		} else {
			vertices[i].Normal = math.Vector3{0, 1, 0}
		}
	}
}
