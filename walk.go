// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jbind

import "unicode/utf8"

// A Visitor receives events from Walk describing the structure of a value.
// If a method reports an error, the walk stops and that error is returned to
// the caller. Text and name slices alias the input, and are only valid for
// the duration of the call.
type Visitor interface {
	// Begin a new object, whose open brace is at pos.
	BeginObject(pos int) error

	// End the most-recently-opened object, whose value spans span.
	EndObject(span Span) error

	// Begin a new array, whose open bracket is at pos.
	BeginArray(pos int) error

	// End the most-recently-opened array, whose value spans span.
	EndArray(span Span) error

	// Begin a new object member with the given raw (undecoded) name. The
	// member's value follows.
	Member(name []byte) error

	// Report a string, number, Boolean, or null value. The text is undecoded;
	// the text of a string does not include its quotation marks.
	Value(kind Kind, text []byte, span Span) error
}

// Walk scans a single value of any kind at c, checking it strictly against
// the JSON grammar, and reports its structure to v. Unlike Cursor.SkipValue,
// Walk checks numbers, the escape sequences and UTF-8 encoding of strings and
// names, and the punctuation of nested values.
//
// Walk does not recur on nesting, so the depth of its input is bounded only
// by memory. Nesting deeper than maxDepth is reported as a syntax error; if
// maxDepth ≤ 0 there is no limit.
func Walk(c *Cursor, v Visitor, maxDepth int) error {
	w := walker{c: c, v: v, max: maxDepth}
	for {
		done, err := w.value()
		if err != nil {
			return err
		}
		for done {
			if len(w.stack) == 0 {
				return nil
			}
			more, err := w.next()
			if err != nil {
				return err
			}
			done = !more
		}
	}
}

type walker struct {
	c     *Cursor
	v     Visitor
	max   int
	stack []frame // open containers, innermost last
}

type frame struct {
	kind  Kind
	start int
}

// value scans a scalar value, or opens an array or object. It reports true
// if a complete value was consumed, false if the first element or member of
// a new container follows.
func (w *walker) value() (bool, error) {
	c := w.c
	ch, err := c.begin()
	if err != nil {
		return false, err
	}
	start := c.pos
	switch k := kindOf(ch); k {
	case Object, Array:
		if w.max > 0 && len(w.stack) >= w.max {
			return false, c.failf("nesting exceeds depth %d", w.max)
		}
		if k == Object {
			err = w.v.BeginObject(start)
		} else {
			err = w.v.BeginArray(start)
		}
		if err != nil {
			return false, err
		}
		c.pos++
		w.stack = append(w.stack, frame{kind: k, start: start})
		if c.skipSpaceTo(closer(k)) {
			c.pos++
			return true, w.end()
		} else if k == Object {
			return false, w.member()
		}
		return false, nil

	case String:
		text, err := c.scanStrictString()
		if err != nil {
			return false, err
		}
		return true, w.v.Value(String, text, Span{Pos: start, End: c.pos})

	case Number:
		text, _, err := c.scanNumber()
		if err != nil {
			return false, err
		}
		return true, w.v.Value(Number, text, Span{Pos: start, End: c.pos})

	case Bool, Null:
		if _, err := c.SkipValue(); err != nil {
			return false, err
		}
		return true, w.v.Value(k, c.data[start:c.pos], Span{Pos: start, End: c.pos})
	}
	return false, c.errStart(ch)
}

// member scans the name of an object member and the colon following it.
func (w *walker) member() error {
	c := w.c
	ch, err := c.begin()
	if err != nil {
		return err
	} else if ch != '"' {
		return c.failf("expected property name, found %q", ch)
	}
	name, err := c.scanStrictString()
	if err != nil {
		return err
	}
	c.SkipSpace()
	if err := c.Expect(':'); err != nil {
		return err
	}
	return w.v.Member(name)
}

// next consumes the delimiter after a value in the innermost open container.
// It reports true if another element or member follows.
func (w *walker) next() (bool, error) {
	c := w.c
	top := w.stack[len(w.stack)-1]
	ch, err := c.begin()
	if err != nil {
		return false, err
	}
	switch ch {
	case ',':
		c.pos++
		if top.kind == Object {
			return true, w.member()
		}
		return true, nil
	case closer(top.kind):
		c.pos++
		return false, w.end()
	}
	return false, c.failf("expected ',' or %q, found %q", closer(top.kind), ch)
}

// end closes the innermost open container, whose closing delimiter has been
// consumed.
func (w *walker) end() error {
	top := w.stack[len(w.stack)-1]
	w.stack = w.stack[:len(w.stack)-1]
	span := Span{Pos: top.start, End: w.c.pos}
	if top.kind == Object {
		return w.v.EndObject(span)
	}
	return w.v.EndArray(span)
}

// scanStrictString is as scanString, but also rejects unescaped control
// characters and malformed escape sequences.
func (c *Cursor) scanStrictString() ([]byte, error) {
	c.pos++ // opening quote
	start := c.pos
	for c.pos < len(c.data) {
		switch ch := c.data[c.pos]; {
		case ch == '"':
			c.pos++
			return c.data[start : c.pos-1], nil
		case ch == '\\':
			c.pos++
			if c.pos >= len(c.data) {
				break
			}
			switch e := c.data[c.pos]; e {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
				c.pos++
			case 'u':
				if !isHex4(c.data[c.pos+1:]) {
					return nil, c.failf("invalid Unicode escape")
				}
				c.pos += 5
			default:
				return nil, c.failf("invalid %q after escape", e)
			}
		case ch < ' ':
			return nil, c.failf("unescaped control %q", ch)
		case ch < utf8.RuneSelf:
			c.pos++
		default:
			r, n := utf8.DecodeRune(c.data[c.pos:])
			if r == utf8.RuneError && n <= 1 {
				return nil, c.failf("invalid UTF-8 in string")
			}
			c.pos += n
		}
	}
	c.pos = len(c.data)
	return nil, c.failf("unterminated string")
}

func isHex4(b []byte) bool {
	if len(b) < 4 {
		return false
	}
	for _, ch := range b[:4] {
		if !isDigit(ch) && !('a' <= ch && ch <= 'f') && !('A' <= ch && ch <= 'F') {
			return false
		}
	}
	return true
}

// NoopVisitor is a Visitor whose methods do nothing. It may be embedded in
// other types to provide default methods.
type NoopVisitor struct{}

func (NoopVisitor) BeginObject(int) error          { return nil }
func (NoopVisitor) EndObject(Span) error           { return nil }
func (NoopVisitor) BeginArray(int) error           { return nil }
func (NoopVisitor) EndArray(Span) error            { return nil }
func (NoopVisitor) Member([]byte) error            { return nil }
func (NoopVisitor) Value(Kind, []byte, Span) error { return nil }

// CheckDocument reports whether data consists of exactly one JSON value,
// optionally surrounded by whitespace, that is well-formed according to Walk.
func CheckDocument(data []byte, maxDepth int) error {
	c := NewCursor(data)
	if err := Walk(c, NoopVisitor{}, maxDepth); err != nil {
		return err
	}
	if c.SkipSpace(); !c.AtEnd() {
		return c.failf("unexpected %q after top-level value", c.data[c.pos])
	}
	return nil
}
