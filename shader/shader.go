package shader

import (
	"fmt"
	"os"
	"strings"
)

// Stage identifies which shader of a program a diagnostic belongs to.
type Stage int

const (
	Vertex Stage = iota
	Fragment
)

func (s Stage) String() string {
	switch s {
	case Vertex:
		return "vertex"
	case Fragment:
		return "fragment"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// Attribute locations and uniform names shared with the GLSL sources.
const (
	PositionAttrib = 0 // vec3
	UVAttrib       = 1 // vec2

	ProjMatrixUniform = "proj_matrix"
	MVMatrixUniform   = "mv_matrix"
)

// ────────────────────────────────── Sources ──────────────────────────────────

// LoadSource reads a GLSL file. Line endings are normalized to "\n" and the
// result always ends with a newline.
func LoadSource(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read shader %s: %w", path, err)
	}
	src := strings.ReplaceAll(string(b), "\r\n", "\n")
	if src != "" && !strings.HasSuffix(src, "\n") {
		src += "\n"
	}
	return src, nil
}

// ──────────────────────────────── Diagnostics ────────────────────────────────

// CompileError carries the info log of a shader that failed to compile.
type CompileError struct {
	Stage Stage
	Log   string
}

func (e *CompileError) Error() string {
	if e.Log == "" {
		return fmt.Sprintf("%s shader: compilation failed", e.Stage)
	}
	return fmt.Sprintf("%s shader: compilation failed: %s", e.Stage, e.Log)
}

// LinkError carries the info log of a program that failed to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	if e.Log == "" {
		return "program link failed"
	}
	return "program link failed: " + e.Log
}

// CleanLog trims the NUL padding and trailing whitespace GL leaves in info logs.
func CleanLog(raw string) string {
	if i := strings.IndexByte(raw, 0); i >= 0 {
		raw = raw[:i]
	}
	return strings.TrimRight(raw, " \t\r\n")
}
