// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jbind_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/creachadair/jbind"
)

// syntaxError reports whether err is a *jbind.SyntaxError, and returns it.
func syntaxError(t *testing.T, err error) *jbind.SyntaxError {
	t.Helper()
	var serr *jbind.SyntaxError
	if !errors.As(err, &serr) {
		t.Fatalf("Got error %v (%T), want *SyntaxError", err, err)
	}
	return serr
}

func TestCursorBasics(t *testing.T) {
	c := jbind.NewCursor([]byte(" \t\r\n x"))
	if c.Pos() != 0 || c.AtEnd() {
		t.Fatalf("New cursor: pos=%d atEnd=%v, want 0, false", c.Pos(), c.AtEnd())
	}
	c.SkipSpace()
	if c.Pos() != 5 {
		t.Errorf("SkipSpace: pos=%d, want 5", c.Pos())
	}
	c.SkipSpace() // idempotent
	if c.Pos() != 5 {
		t.Errorf("SkipSpace again: pos=%d, want 5", c.Pos())
	}
	if b, err := c.Peek(); err != nil || b != 'x' {
		t.Errorf("Peek: got %q, %v; want 'x', nil", b, err)
	}
	if err := c.Expect('y'); err == nil {
		t.Error("Expect('y'): got nil, want error")
	} else if serr := syntaxError(t, err); serr.Message != `expected 'y', found 'x'` || serr.Offset != 5 {
		t.Errorf("Expect('y'): got %v", serr)
	}
	if err := c.Expect('x'); err != nil {
		t.Errorf("Expect('x'): unexpected error: %v", err)
	}
	if !c.AtEnd() {
		t.Error("AtEnd: got false, want true")
	}
	_, err := c.Peek()
	if serr := syntaxError(t, err); serr.Message != "unexpected end of input" || serr.Offset != 6 {
		t.Errorf("Peek at end: got %v", serr)
	}
}

func TestSkipValue(t *testing.T) {
	tests := []struct {
		input string
		kind  jbind.Kind
		pos   int // offset after skipping
	}{
		{`true`, jbind.Bool, 4},
		{`false,`, jbind.Bool, 5},
		{`null `, jbind.Null, 4},
		{`"" x`, jbind.String, 2},
		{`"a\"b" x`, jbind.String, 6},
		{`"a\\" x`, jbind.String, 5},
		{`-15.3e+4]`, jbind.Number, 8},
		{`1as`, jbind.Number, 3},
		{`1-2-3,`, jbind.Number, 5},
		{`[]`, jbind.Array, 2},
		{`[1, [2, [3]], "]"] x`, jbind.Array, 18},
		{`{}`, jbind.Object, 2},
		{`{"a}": {"b": [1, 2]}, "c": "{"}, 1`, jbind.Object, 31},
	}
	for _, test := range tests {
		c := jbind.NewCursor([]byte(test.input))
		kind, err := c.SkipValue()
		if err != nil {
			t.Errorf("SkipValue(%#q): unexpected error: %v", test.input, err)
			continue
		}
		if kind != test.kind || c.Pos() != test.pos {
			t.Errorf("SkipValue(%#q): got %v at %d, want %v at %d", test.input, kind, c.Pos(), test.kind, test.pos)
		}
	}
}

func TestSkipValueErrors(t *testing.T) {
	tests := []struct {
		input  string
		offset int
		msg    string
	}{
		{``, 0, "unexpected end of input"},
		{`:`, 0, `unexpected ':', expected one of '{', '[', '"', 't', 'f', 'n', '-' or a digit`},
		{`nul`, 0, `expected null, found 'n'`},
		{`nullx`, 0, `expected null, found 'n'`},
		{`tru`, 0, `expected boolean, found 't'`},
		{`falsewq`, 0, `expected boolean, found 'f'`},
		{`"abc`, 4, "unterminated string"},
		{`"abc\`, 5, "unterminated string"},
		{`[1, 2`, 5, "unterminated array"},
		{`{"a": [1}`, 8, `expected ']', found '}'`},
		{`[1, 2}`, 5, `expected ']', found '}'`},
		{`[1, {"a": 2]}`, 11, `expected '}', found ']'`},
		{`[[[]]`, 5, "unterminated array"},
		{`["]`, 3, "unterminated string"},
	}
	for _, test := range tests {
		c := jbind.NewCursor([]byte(test.input))
		_, err := c.SkipValue()
		if err == nil {
			t.Errorf("SkipValue(%#q): got nil, want error", test.input)
			continue
		}
		serr := syntaxError(t, err)
		if serr.Offset != test.offset || serr.Message != test.msg {
			t.Errorf("SkipValue(%#q): got (%d, %q), want (%d, %q)",
				test.input, serr.Offset, serr.Message, test.offset, test.msg)
		}
		if c.Pos() != serr.Offset {
			t.Errorf("SkipValue(%#q): cursor at %d, error at %d", test.input, c.Pos(), serr.Offset)
		}
	}
}

func TestSkipDeeplyNested(t *testing.T) {
	const depth = 100000
	for _, tc := range []struct{ open, close string }{{"[", "]"}, {"{", "}"}} {
		input := []byte(strings.Repeat(tc.open, depth) + strings.Repeat(tc.close, depth))
		c := jbind.NewCursor(input)
		if _, err := c.SkipValue(); err != nil {
			t.Errorf("SkipValue %s×%d: unexpected error: %v", tc.open, depth, err)
		} else if !c.AtEnd() {
			t.Errorf("SkipValue %s×%d: stopped at %d of %d", tc.open, depth, c.Pos(), len(input))
		}
	}

	// Unterminated nesting fails cleanly.
	c := jbind.NewCursor([]byte(strings.Repeat("[", depth)))
	if err := c.SkipArray(); err == nil {
		t.Error("SkipArray unterminated: got nil, want error")
	}
}

func TestPeekKind(t *testing.T) {
	tests := []struct {
		input string
		want  jbind.Kind
	}{
		{`{`, jbind.Object}, {`[`, jbind.Array}, {`"`, jbind.String},
		{`-`, jbind.Number}, {`0`, jbind.Number}, {`9`, jbind.Number},
		{`t`, jbind.Bool}, {`f`, jbind.Bool}, {`n`, jbind.Null},
	}
	for _, test := range tests {
		c := jbind.NewCursor([]byte(test.input))
		got, err := c.PeekKind()
		if err != nil || got != test.want {
			t.Errorf("PeekKind(%#q): got %v, %v; want %v", test.input, got, err, test.want)
		}
		if c.Pos() != 0 {
			t.Errorf("PeekKind(%#q) advanced to %d", test.input, c.Pos())
		}
	}
	if _, err := jbind.NewCursor([]byte("+1")).PeekKind(); err == nil {
		t.Error("PeekKind(+1): got nil, want error")
	}
}

func TestSyntaxErrorPosition(t *testing.T) {
	input := []byte("{\n  \"a\": 1,\n  \"b\": ?\n}")
	c := jbind.NewCursor(input)
	_, err := jbind.ScanObject(c, func(*jbind.Cursor, []byte) error { return nil })
	serr := syntaxError(t, err)
	if got, want := serr.Position(input), (jbind.LineCol{Line: 3, Column: 7}); got != want {
		t.Errorf("Position: got %v, want %v", got, want)
	}
	if got, want := serr.Error(), `at offset 19: unexpected '?', expected one of '{', '[', '"', 't', 'f', 'n', '-' or a digit`; got != want {
		t.Errorf("Error:\n got %q\nwant %q", got, want)
	}
}
