// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jbind

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// A Segment is a single step of a Path: either the name of an object member
// or the offset of an array element. The zero Segment denotes the document
// root, and is not a valid step of a path.
type Segment struct {
	name  string
	index int // -1 for a name, 0 for the root
	elem  bool
}

// Name returns a segment denoting the object member with the given name.
func Name(name string) Segment { return Segment{name: name, index: -1} }

// Index returns a segment denoting the array element at offset i ≥ 0.
func Index(i int) Segment {
	if i < 0 {
		panic("negative array index")
	}
	return Segment{index: i, elem: true}
}

// IsIndex reports whether s denotes an array element.
func (s Segment) IsIndex() bool { return s.elem }

// IsRoot reports whether s is the zero Segment.
func (s Segment) IsRoot() bool { return s == Segment{} }

// Name returns the member name of s, or "" if s is not a name.
func (s Segment) Name() string { return s.name }

// Index returns the array offset of s, or -1 if s is not an index.
func (s Segment) Index() int {
	if !s.elem {
		return -1
	}
	return s.index
}

// String renders s as a single path step, e.g., ".name", "['a b']", or "[3]".
// The root segment renders as "$".
func (s Segment) String() string {
	if s.IsRoot() {
		return "$"
	} else if s.elem {
		return "[" + strconv.Itoa(s.index) + "]"
	} else if nameRE.MatchString(s.name) {
		return "." + s.name
	}
	return "['" + qnameEscaper.Replace(s.name) + "']"
}

// A Path is a sequence of segments locating a value relative to the root of a
// document. The zero value is the root.
type Path []Segment

// Append returns a new path consisting of p followed by segs. The result
// never shares storage with p.
func (p Path) Append(segs ...Segment) Path {
	out := make(Path, len(p), len(p)+len(segs))
	copy(out, p)
	return append(out, segs...)
}

// Clone returns a copy of p that does not share storage.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	return slices.Clone(p)
}

// Last returns the final segment of p, and reports whether p is non-empty.
func (p Path) Last() (Segment, bool) {
	if len(p) == 0 {
		return Segment{}, false
	}
	return p[len(p)-1], true
}

// Equal reports whether p and q contain the same segments.
func (p Path) Equal(q Path) bool { return slices.Equal(p, q) }

func (p Path) String() string {
	var buf strings.Builder
	buf.WriteString("$")
	for _, s := range p {
		buf.WriteString(s.String())
	}
	return buf.String()
}

/*
Grammar:

  path = root steps
  root = "$"
 steps = step [steps]
  step = "." WORD
  step = "[" INDEX "]"
  step = "[" "'" QTEXT "'" "]"

  WORD = RE `\w+`
 QTEXT = RE `([^'\\]|\\.)*`
 INDEX = RE `\d+`
*/

// ParsePath parses s as a path expression, e.g., "$.items[2]['first name']".
func ParsePath(s string) (Path, error) {
	t, ok := strings.CutPrefix(s, "$")
	if !ok {
		return nil, errors.New("missing root marker")
	}
	var p Path
	for t != "" {
		seg, rest, err := parseStep(t)
		if err != nil {
			return nil, fmt.Errorf("at %q: %w", t, err)
		}
		p = append(p, seg)
		t = rest
	}
	return p, nil
}

func parseStep(s string) (_ Segment, rest string, _ error) {
	if t, ok := strings.CutPrefix(s, "."); ok {
		if m := wordRE.FindString(t); m != "" {
			return Name(m), t[len(m):], nil
		}
		return Segment{}, s, errors.New("invalid .name")
	}
	if t, ok := strings.CutPrefix(s, "["); ok {
		var seg Segment
		if m := indexRE.FindString(t); m != "" {
			v, err := strconv.Atoi(m)
			if err != nil {
				return Segment{}, s, fmt.Errorf("invalid index: %w", err)
			}
			seg, t = Index(v), t[len(m):]
		} else if m := quoteRE.FindStringSubmatch(t); m != nil {
			seg, t = Name(unescapeQName(m[1])), t[len(m[0]):]
		} else {
			return Segment{}, s, errors.New("invalid index or quoted name")
		}
		u, ok := strings.CutPrefix(t, "]")
		if !ok {
			return Segment{}, t, errors.New("missing close bracket")
		}
		return seg, u, nil
	}
	return Segment{}, s, errors.New("invalid path step")
}

func unescapeQName(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var buf strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		buf.WriteByte(s[i])
	}
	return buf.String()
}

var qnameEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

var (
	nameRE  = regexp.MustCompile(`^\w+$`)
	wordRE  = regexp.MustCompile(`^\w+`)
	indexRE = regexp.MustCompile(`^\d+`)
	quoteRE = regexp.MustCompile(`^'((?:[^'\\]|\\.)*)'`)
)
