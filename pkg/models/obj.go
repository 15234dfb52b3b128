package models

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/taigrr/objsvg/pkg/math3d"
)

// InvalidIndex marks a face index token that could not be read as an
// integer. It is never a valid vertex index, so the face is dropped at
// render time.
const InvalidIndex = -1

var (
	// ErrMalformedVertex reports a "v" line whose coordinates are missing or
	// not numeric. Only returned by a strict OBJLoader.
	ErrMalformedVertex = errors.New("malformed vertex")
	// ErrMalformedFace reports an "f" line with a non-integer index.
	// Only returned by a strict OBJLoader.
	ErrMalformedFace = errors.New("malformed face")
)

// ParseError describes the line a strict parse stopped at.
type ParseError struct {
	Line int    // 1-based line number
	Text string // trimmed line content
	Err  error  // ErrMalformedVertex or ErrMalformedFace
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// OBJLoader reads the vertex/face subset of the Wavefront OBJ format:
//
//	v x y z          vertex position
//	f i1 i2 ... in   face, 1-based indices, "i/vt/vn" refs use i only
//	# ...            comment
//
// Every other directive is ignored. Faces with more than three indices are
// fan-triangulated around their first vertex, which is only correct for
// convex planar polygons.
type OBJLoader struct {
	// Strict makes malformed numeric tokens a *ParseError instead of NaN
	// coordinates or InvalidIndex entries.
	Strict bool
}

// NewOBJLoader creates a lenient OBJ loader.
func NewOBJLoader() *OBJLoader {
	return &OBJLoader{}
}

// ParseOBJ parses mesh text leniently. It never fails: malformed
// coordinates become NaN and malformed indices become InvalidIndex.
func ParseOBJ(text string) *Mesh {
	// A strings.Reader never errors and lenient mode reports nothing.
	mesh, _ := NewOBJLoader().Parse(strings.NewReader(text))
	return mesh
}

// LoadOBJ loads an OBJ file with a lenient loader.
func LoadOBJ(path string) (*Mesh, error) {
	return NewOBJLoader().Load(path)
}

// Load reads and parses the OBJ file at path.
func (l *OBJLoader) Load(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open obj: %w", err)
	}
	defer f.Close()

	mesh, err := l.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	mesh.Name = filepath.Base(path)
	return mesh, nil
}

// Parse reads mesh text from r. Vertices and faces keep the order in which
// they appear.
func (l *OBJLoader) Parse(r io.Reader) (*Mesh, error) {
	mesh := NewMesh("")

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

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
			v, ok := parseVertex(fields[1:])
			if !ok && l.Strict {
				return nil, &ParseError{Line: lineNo, Text: line, Err: ErrMalformedVertex}
			}
			mesh.Vertices = append(mesh.Vertices, v)
		case "f":
			indices, ok := parseFaceIndices(fields[1:])
			if !ok && l.Strict {
				return nil, &ParseError{Line: lineNo, Text: line, Err: ErrMalformedFace}
			}
			mesh.Faces = append(mesh.Faces, triangulateFan(indices)...)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read obj: %w", err)
	}

	mesh.CalculateBounds()
	return mesh, nil
}

// parseVertex reads x, y, z from the tokens after "v". Each coordinate is
// the leading number of its token ("1.5mm" reads as 1.5). Missing or
// non-numeric coordinates become NaN so later vertex indices stay aligned
// with the source; ok reports whether all three were plain numbers.
func parseVertex(args []string) (v math3d.Vec3, ok bool) {
	var c [3]float64
	ok = true
	for i := range c {
		if i >= len(args) {
			c[i] = math.NaN()
			ok = false
			continue
		}
		f, whole, valid := leadingFloat(args[i])
		if !valid {
			f = math.NaN()
		}
		ok = ok && whole
		c[i] = f
	}
	return math3d.V3(c[0], c[1], c[2]), ok
}

// leadingFloat parses the decimal number (or "Infinity") at the start of
// s. Out-of-range values become ±Inf. whole reports whether the number
// spans all of s; valid is false when s does not start with a number.
func leadingFloat(s string) (f float64, whole, valid bool) {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if strings.HasPrefix(s[i:], "Infinity") {
		end := i + len("Infinity")
		return math.Copysign(math.Inf(1), signOf(s)), end == len(s), true
	}

	start := i
	i = skipDigits(s, i)
	mantissa := i - start
	if i < len(s) && s[i] == '.' {
		j := skipDigits(s, i+1)
		mantissa += j - i - 1
		if mantissa > 0 {
			i = j
		}
	}
	if mantissa == 0 {
		return 0, false, false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if k := skipDigits(s, j); k > j {
			i = k
		}
	}

	f, err := strconv.ParseFloat(strings.TrimSuffix(s[:i], "."), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false, false
	}
	return f, i == len(s), true
}

func skipDigits(s string, i int) int {
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i
}

func signOf(s string) float64 {
	if strings.HasPrefix(s, "-") {
		return -1
	}
	return 1
}

// parseFaceIndices converts face tokens to 0-based vertex indices.
// Only the part before the first '/' is used, and of that only the leading
// integer, so "2.0" reads as 2. ok reports whether every reference was a
// plain integer.
func parseFaceIndices(args []string) (indices []int, ok bool) {
	indices = make([]int, len(args))
	ok = true
	for i, s := range args {
		ref, _, _ := strings.Cut(s, "/")
		n, whole, valid := leadingInt(ref)
		if !valid {
			indices[i] = InvalidIndex
			ok = false
			continue
		}
		if !whole {
			ok = false
		}
		indices[i] = n - 1
	}
	return indices, ok
}

// leadingInt parses an optionally signed run of digits at the start of s.
// whole reports whether the run spans all of s; valid is false when s does
// not start with an integer or the integer overflows.
func leadingInt(s string) (n int, whole, valid bool) {
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false, false
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false, false
	}
	return n, end == len(s), true
}

// triangulateFan splits a polygon into triangles that all share its first
// vertex: (i0,i1,i2), (i0,i2,i3), ... Fewer than three indices yield nothing.
func triangulateFan(indices []int) []Face {
	if len(indices) < 3 {
		return nil
	}

	faces := make([]Face, 0, len(indices)-2)
	for i := 1; i < len(indices)-1; i++ {
		faces = append(faces, Face{V: [3]int{indices[0], indices[i], indices[i+1]}})
	}
	return faces
}
