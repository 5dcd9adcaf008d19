package geometry

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// LoadOBJ parses a Wavefront .obj file and returns one Mesh per object or
// group. Polygons are fan-triangulated; texture coordinates, normals and
// materials are ignored.
func LoadOBJ(path string) ([]*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open obj %q", path)
	}
	defer f.Close()

	var positions []float32

	type objObject struct {
		name  string
		faces []int // 0-based position indices, three per triangle
	}
	var objects []objObject
	cur := &objObject{name: "default"}

	scanner := bufio.NewScanner(f)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, errors.Errorf("obj %q line %d: vertex needs three coordinates", path, lineNo)
			}
			for _, s := range fields[1:4] {
				c, err := strconv.ParseFloat(s, 32)
				if err != nil {
					return nil, errors.Wrapf(err, "obj %q line %d", path, lineNo)
				}
				positions = append(positions, float32(c))
			}

		case "o", "g":
			if len(cur.faces) > 0 {
				objects = append(objects, *cur)
			}
			name := "default"
			if len(fields) > 1 {
				name = fields[1]
			}
			cur = &objObject{name: name}

		case "f":
			if len(fields) < 4 {
				continue
			}
			count := len(positions) / 3
			idx := make([]int, 0, len(fields)-1)
			for _, tok := range fields[1:] {
				i, err := parseOBJIndex(tok, count)
				if err != nil {
					return nil, errors.Wrapf(err, "obj %q line %d", path, lineNo)
				}
				idx = append(idx, i)
			}
			// fan: 0-1-2, 0-2-3, ...
			for i := 1; i+1 < len(idx); i++ {
				cur.faces = append(cur.faces, idx[0], idx[i], idx[i+1])
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "scan obj")
	}

	if len(cur.faces) > 0 {
		objects = append(objects, *cur)
	}
	if len(objects) == 0 {
		return nil, errors.Errorf("no geometry found in %q", path)
	}

	meshes := make([]*Mesh, 0, len(objects))
	for _, obj := range objects {
		meshes = append(meshes, compactOBJ(obj.name, obj.faces, positions))
	}
	return meshes, nil
}

// parseOBJIndex reads the position part of a face token ("v", "v/vt",
// "v//vn", "v/vt/vn"). OBJ indices are 1-based; negative ones count back
// from the last vertex read so far.
func parseOBJIndex(tok string, count int) (int, error) {
	v := tok
	if i := strings.IndexByte(tok, '/'); i >= 0 {
		v = tok[:i]
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.Wrapf(err, "face vertex %q", tok)
	}
	switch {
	case n > 0:
		n--
	case n < 0:
		n += count
	default:
		return 0, errors.Errorf("face vertex %q: index 0", tok)
	}
	if n < 0 || n >= count {
		return 0, errors.Errorf("face vertex %q out of range", tok)
	}
	return n, nil
}

// compactOBJ copies only the positions a set of faces uses into a new mesh.
func compactOBJ(name string, faces []int, positions []float32) *Mesh {
	remap := make(map[int]uint32)
	var vertices []float32
	indices := make([]uint32, 0, len(faces))
	for _, p := range faces {
		idx, ok := remap[p]
		if !ok {
			idx = uint32(len(vertices) / 3)
			remap[p] = idx
			vertices = append(vertices, positions[p*3], positions[p*3+1], positions[p*3+2])
		}
		indices = append(indices, idx)
	}
	return NewMesh(name, vertices, indices)
}

// Load reads a mesh file, choosing the format from its extension.
func Load(path string) ([]*Mesh, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".obj":
		return LoadOBJ(path)
	case ".gltf", ".glb":
		return LoadGLTF(path)
	default:
		return nil, errors.Errorf("unsupported mesh format %q", path)
	}
}
