package reflection

import (
	"fmt"
	"strconv"
	"strings"
)

// segment is one structure step of an encoded variable path: "lights[2]."
// yields {name: "lights", index: 2}, "material." yields {name: "material",
// index: -1}.
type segment struct {
	name  string
	index int
}

func (s segment) indexed() bool { return s.index >= 0 }

// nameCursor walks an encoded variable name without modifying it. Every
// method returns a new cursor.
type nameCursor struct {
	name string
	pos  int
}

func newNameCursor(name string) nameCursor { return nameCursor{name: name} }

// rest is the unread part of the name.
func (c nameCursor) rest() string { return c.name[c.pos:] }

// atLeaf reports whether no separator remains, leaving only the leaf name.
func (c nameCursor) atLeaf() bool { return !strings.ContainsAny(c.rest(), ".[") }

// next reads one segment up to and including its trailing '.'.
func (c nameCursor) next() (segment, nameCursor, error) {
	rest := c.rest()
	sep := strings.IndexAny(rest, ".[")
	if sep < 0 {
		return segment{}, c, fmt.Errorf("no segment left in %q", rest)
	}
	if sep == 0 {
		return segment{}, c, fmt.Errorf("empty segment at offset %d", c.pos)
	}

	seg := segment{name: rest[:sep], index: -1}
	if rest[sep] == '.' {
		return seg, nameCursor{name: c.name, pos: c.pos + sep + 1}, nil
	}

	// rest[sep] == '['
	digits := sep + 1
	end := digits
	for end < len(rest) && rest[end] >= '0' && rest[end] <= '9' {
		end++
	}
	if end == digits || end >= len(rest) || rest[end] != ']' {
		return segment{}, c, fmt.Errorf("bad array index at offset %d", c.pos+sep)
	}
	idx, err := strconv.Atoi(rest[digits:end])
	if err != nil {
		return segment{}, c, fmt.Errorf("array index at offset %d: %w", c.pos+sep, err)
	}
	seg.index = idx

	// an indexed segment must continue into a member
	if end+1 >= len(rest) || rest[end+1] != '.' {
		return segment{}, c, fmt.Errorf("indexed %q has no member continuation", seg.name)
	}
	return seg, nameCursor{name: c.name, pos: c.pos + end + 2}, nil
}

// parsePath splits an encoded name into structure segments and the leaf
// name. Reading stops after the first segment indexed above zero; that
// record only grows the element count, so the rest of the name is never
// looked at and the leaf is empty. Nothing is returned on error so that a
// malformed record never inserts part of its path.
func parsePath(name string) ([]segment, string, error) {
	var path []segment
	c := newNameCursor(name)
	for !c.atLeaf() {
		seg, next, err := c.next()
		if err != nil {
			return nil, "", err
		}
		path = append(path, seg)
		if seg.index > 0 {
			return path, "", nil
		}
		c = next
	}
	if c.rest() == "" {
		return nil, "", fmt.Errorf("empty leaf name")
	}
	return path, c.rest(), nil
}
