// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jbind_test

import (
	"testing"

	"github.com/creachadair/jbind"
	"github.com/creachadair/mds/mtest"
	"github.com/google/go-cmp/cmp"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		input string
		want  jbind.Path
	}{
		{"$", nil},
		{"$.store", jbind.Path{jbind.Name("store")}},
		{"$.store.book[0]", jbind.Path{jbind.Name("store"), jbind.Name("book"), jbind.Index(0)}},
		{"$[3][14]", jbind.Path{jbind.Index(3), jbind.Index(14)}},
		{"$['apple sauce'].pearPlum", jbind.Path{jbind.Name("apple sauce"), jbind.Name("pearPlum")}},
		{`$['it\'s']['a\\b']`, jbind.Path{jbind.Name("it's"), jbind.Name(`a\b`)}},
		{"$['']", jbind.Path{jbind.Name("")}},
	}
	for _, test := range tests {
		got, err := jbind.ParsePath(test.input)
		if err != nil {
			t.Errorf("ParsePath %q: %v", test.input, err)
			continue
		}
		if !got.Equal(test.want) {
			t.Errorf("ParsePath %q: got %v, want %v", test.input, got, test.want)
		}

		// Formatting a parsed path gives back the input.
		if s := got.String(); s != test.input {
			t.Errorf("ParsePath %q:\n got %q\nwant %q", test.input, s, test.input)
		}
	}
}

func TestParsePathErrors(t *testing.T) {
	for _, input := range []string{
		"", "store", "$.", "$..a", "$[", "$[1", "$[-1]", "$[*]", "$['abc]", "$.a b",
	} {
		if p, err := jbind.ParsePath(input); err == nil {
			t.Errorf("ParsePath %q: got %v, want error", input, p)
		}
	}
}

func TestSegment(t *testing.T) {
	var root jbind.Segment
	if !root.IsRoot() || root.String() != "$" {
		t.Errorf("Zero segment: IsRoot=%v String=%q, want true, $", root.IsRoot(), root.String())
	}

	i0 := jbind.Index(0)
	if i0.IsRoot() || !i0.IsIndex() || i0.Index() != 0 || i0.String() != "[0]" {
		t.Errorf("Index(0): got %+v %q", i0, i0.String())
	}

	n := jbind.Name("a-b")
	if n.IsIndex() || n.Index() != -1 || n.Name() != "a-b" || n.String() != "['a-b']" {
		t.Errorf("Name(a-b): got %+v %q", n, n.String())
	}

	mtest.MustPanic(t, func() { jbind.Index(-1) })
}

func TestPathAppend(t *testing.T) {
	base := make(jbind.Path, 1, 8)
	base[0] = jbind.Name("a")

	p := base.Append(jbind.Index(1))
	q := base.Append(jbind.Name("b"))
	if diff := cmp.Diff("$.a[1]", p.String()); diff != "" {
		t.Errorf("Append p (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff("$.a.b", q.String()); diff != "" {
		t.Errorf("Append q (-want, +got):\n%s", diff)
	}

	last, ok := q.Last()
	if !ok || last != jbind.Name("b") {
		t.Errorf("Last: got %v, %v; want .b, true", last, ok)
	}
	if _, ok := jbind.Path(nil).Last(); ok {
		t.Error("Last of root: got true, want false")
	}
}
