// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jbind_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/creachadair/jbind"
	"github.com/google/go-cmp/cmp"
)

// eventRecorder is a jbind.Visitor that records a text description of each
// event it receives.
type eventRecorder struct {
	events []string
}

func (r *eventRecorder) add(format string, args ...any) error {
	r.events = append(r.events, fmt.Sprintf(format, args...))
	return nil
}

func (r *eventRecorder) BeginObject(pos int) error    { return r.add("{@%d", pos) }
func (r *eventRecorder) EndObject(s jbind.Span) error { return r.add("}%v", s) }
func (r *eventRecorder) BeginArray(pos int) error     { return r.add("[@%d", pos) }
func (r *eventRecorder) EndArray(s jbind.Span) error  { return r.add("]%v", s) }
func (r *eventRecorder) Member(name []byte) error     { return r.add("m:%s", name) }

func (r *eventRecorder) Value(k jbind.Kind, text []byte, s jbind.Span) error {
	return r.add("%v:%s@%v", k, text, s)
}

func TestWalk(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{`true`, []string{"boolean:true@0-4"}},
		{` "a\nb" `, []string{`string:a\nb@1-7`}},
		{`[]`, []string{"[@0", "]0-2"}},
		{`{"a": [1, -2.5e3], "b": {}, "c": null}`, []string{
			"{@0",
			"m:a", "[@6", "number:1@7-8", "number:-2.5e3@10-16", "]6-17",
			"m:b", "{@24", "}24-26",
			"m:c", "null:null@33-37",
			"}0-38",
		}},
	}
	for _, test := range tests {
		var rec eventRecorder
		if err := jbind.Walk(jbind.NewCursor([]byte(test.input)), &rec, 0); err != nil {
			t.Errorf("Walk(%#q): unexpected error: %v", test.input, err)
			continue
		}
		if diff := cmp.Diff(test.want, rec.events); diff != "" {
			t.Errorf("Walk(%#q) events (-want, +got):\n%s", test.input, diff)
		}
	}
}

func TestWalkVisitorError(t *testing.T) {
	errStop := errors.New("stop here")
	v := stopAt{name: "b", err: errStop}
	err := jbind.Walk(jbind.NewCursor([]byte(`{"a": 1, "b": 2, "c": 3}`)), v, 0)
	if !errors.Is(err, errStop) {
		t.Errorf("Walk: got error %v, want %v", err, errStop)
	}
}

type stopAt struct {
	jbind.NoopVisitor
	name string
	err  error
}

func (s stopAt) Member(name []byte) error {
	if string(name) == s.name {
		return s.err
	}
	return nil
}

func TestCheckDocument(t *testing.T) {
	deep := strings.Repeat("[", 50) + strings.Repeat("]", 50)
	tests := []struct {
		input    string
		maxDepth int
		msg      string // "" for success
	}{
		{`{"a": [1, 2.5, "x", true, false, null, {}]}`, 0, ""},
		{" \n 17 \n", 0, ""},
		{deep, 0, ""},
		{deep, 50, ""},
		{deep, 49, "nesting exceeds depth 49"},
		{`[01]`, 0, "extra leading zeroes"},
		{`[1-2-3]`, 0, "invalid '-' in number"},
		{"[\"\xff\"]", 0, "invalid UTF-8 in string"},
		{`{"a" 1}`, 0, "expected ':', found '1'"},
		{`[true false]`, 0, "expected ',' or ']', found 'f'"},
		{`1 2`, 0, "unexpected '2' after top-level value"},
		{``, 0, "unexpected end of input"},
		{`[1}`, 0, "expected ',' or ']', found '}'"},
		{`{"a": 1]`, 0, "expected ',' or '}', found ']'"},
		{`[1,]`, 0, `unexpected ']', expected one of '{', '[', '"', 't', 'f', 'n', '-' or a digit`},
		{`{"a": 1,}`, 0, "expected property name, found '}'"},

		// Strings and names are checked for escapes and control characters.
		{`"a\"\\\/\b\f\n\r\t\u00e9\uD83D\ude00"`, 0, ""},
		{`"\q"`, 0, "invalid 'q' after escape"},
		{`["\x"]`, 0, "invalid 'x' after escape"},
		{`"\u12zz"`, 0, "invalid Unicode escape"},
		{`"\u12"`, 0, "invalid Unicode escape"},
		{"\"a\nb\"", 0, `unescaped control '\n'`},
		{"\"\x00\"", 0, `unescaped control '\x00'`},
		{"{\"a\tb\": 1}", 0, `unescaped control '\t'`},
		{`"abc\`, 0, "unterminated string"},
	}
	for _, test := range tests {
		err := jbind.CheckDocument([]byte(test.input), test.maxDepth)
		if test.msg == "" {
			if err != nil {
				t.Errorf("CheckDocument(%#q): unexpected error: %v", test.input, err)
			}
			continue
		}
		var serr *jbind.SyntaxError
		if !errors.As(err, &serr) {
			t.Errorf("CheckDocument(%#q): got %v, want *SyntaxError", test.input, err)
		} else if serr.Message != test.msg {
			t.Errorf("CheckDocument(%#q): got %q, want %q", test.input, serr.Message, test.msg)
		}
	}
}

func TestCheckDocumentDeep(t *testing.T) {
	const depth = 1000000
	for _, tc := range []struct{ open, close string }{{"[", "]"}, {`{"a":`, "}"}} {
		input := []byte(strings.Repeat(tc.open, depth) + "1" + strings.Repeat(tc.close, depth))
		if err := jbind.CheckDocument(input, 0); err != nil {
			t.Errorf("CheckDocument %s×%d: unexpected error: %v", tc.open, depth, err)
		}
	}

	input := []byte(strings.Repeat("[", depth) + strings.Repeat("]", depth-1))
	err := jbind.CheckDocument(input, 0)
	var serr *jbind.SyntaxError
	if !errors.As(err, &serr) || serr.Message != "unexpected end of input" {
		t.Errorf("CheckDocument unterminated: got %v, want end of input", err)
	}
}

func TestLocateSpan(t *testing.T) {
	data := []byte("ab\ncd\n\nefg")
	tests := []struct {
		span jbind.Span
		want string
	}{
		{jbind.Span{Pos: 0, End: 1}, "1:0-1"},
		{jbind.Span{Pos: 3, End: 5}, "2:0-2"},
		{jbind.Span{Pos: 1, End: 8}, "1:1-4:1"},
		{jbind.Span{Pos: 7, End: 100}, "4:0-3"},
	}
	for _, test := range tests {
		if got := jbind.LocateSpan(data, test.span).String(); got != test.want {
			t.Errorf("LocateSpan(%v): got %q, want %q", test.span, got, test.want)
		}
	}
}
