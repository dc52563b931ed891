package reflection

import "strings"

// VertexOutputUses records which optional vertex outputs a shader writes.
type VertexOutputUses struct {
	PointSize    bool `json:"pointSize"`
	ClipDistance bool `json:"clipDistance"`
}

// CheckVertexOutputUses scans shader sources for writes to gl_PointSize and
// gl_ClipDistance. A builtin counts as written when an '=' follows it
// before the next ';' or the end of the source.
func CheckVertexOutputUses(sources []string) VertexOutputUses {
	var u VertexOutputUses
	for _, s := range sources {
		u.PointSize = u.PointSize || assigned(s, "gl_PointSize")
		u.ClipDistance = u.ClipDistance || assigned(s, "gl_ClipDistance")
	}
	return u
}

func assigned(src, builtin string) bool {
	for off := 0; ; {
		i := strings.Index(src[off:], builtin)
		if i < 0 {
			return false
		}
		off += i + len(builtin)
		stmt := src[off:]
		if end := strings.IndexByte(stmt, ';'); end >= 0 {
			stmt = stmt[:end]
		}
		if strings.IndexByte(stmt, '=') >= 0 {
			return true
		}
	}
}
