// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jbind

import "fmt"

// A Cursor is a read position in an immutable buffer of JSON text. Each
// top-level parse owns its own Cursor, and passes it by pointer to every
// scanner it calls. The offset of a cursor only ever moves forward.
//
// The buffer of a cursor is never modified, so a single buffer may be shared
// by concurrent parses provided each has its own Cursor.
type Cursor struct {
	data []byte
	pos  int
}

// NewCursor constructs a cursor positioned at the start of data.
func NewCursor(data []byte) *Cursor { return &Cursor{data: data} }

// Pos returns the current offset of c.
func (c *Cursor) Pos() int { return c.pos }

// Data returns the complete buffer scanned by c.
func (c *Cursor) Data() []byte { return c.data }

// AtEnd reports whether c has consumed all its input.
func (c *Cursor) AtEnd() bool { return c.pos >= len(c.data) }

// SkipSpace advances c past any whitespace.
func (c *Cursor) SkipSpace() {
	for c.pos < len(c.data) && isSpace(c.data[c.pos]) {
		c.pos++
	}
}

// Peek returns the byte at the current offset without advancing. It reports
// an error if the input is exhausted.
func (c *Cursor) Peek() (byte, error) {
	if c.pos >= len(c.data) {
		return 0, c.errEnd()
	}
	return c.data[c.pos], nil
}

// PeekKind reports the kind of the value beginning at the current offset,
// without advancing. It reports an error if the input is exhausted or the
// current byte cannot begin a value.
func (c *Cursor) PeekKind() (Kind, error) {
	ch, err := c.Peek()
	if err != nil {
		return Invalid, err
	}
	if k := kindOf(ch); k != Invalid {
		return k, nil
	}
	return Invalid, c.errStart(ch)
}

// Expect consumes the byte b at the current offset, or reports an error.
func (c *Cursor) Expect(b byte) error {
	ch, err := c.Peek()
	if err != nil {
		return err
	} else if ch != b {
		return c.failf("expected %q, found %q", b, ch)
	}
	c.pos++
	return nil
}

// SkipString consumes a quoted string. The cursor must be positioned at the
// opening quotation mark. A backslash escapes the byte that follows it, but
// escape sequences are not otherwise checked.
func (c *Cursor) SkipString() error {
	if err := c.Expect('"'); err != nil {
		return err
	}
	for c.pos < len(c.data) {
		switch c.data[c.pos] {
		case '\\':
			c.pos += 2
		case '"':
			c.pos++
			return nil
		default:
			c.pos++
		}
	}
	c.pos = len(c.data) // an escape at the end may have overshot
	return c.failf("unterminated string")
}

// SkipArray consumes an array. The cursor must be positioned at the opening
// bracket. Nesting is tracked without recursion, so deeply-nested input does
// not grow the call stack.
func (c *Cursor) SkipArray() error {
	if err := c.Expect('['); err != nil {
		return err
	}
	return c.skipNested(Array)
}

// SkipObject consumes an object. The cursor must be positioned at the
// opening brace. Like SkipArray, it does not recur on nesting.
func (c *Cursor) SkipObject() error {
	if err := c.Expect('{'); err != nil {
		return err
	}
	return c.skipNested(Object)
}

// skipNested consumes the remainder of an array or object whose opening
// delimiter has already been consumed. Pending closing delimiters are kept on
// a stack whose length is the nesting depth, and each close must match the
// most recent open.
func (c *Cursor) skipNested(kind Kind) error {
	var buf [64]byte
	want := append(buf[:0], closer(kind))
	for c.pos < len(c.data) {
		switch ch := c.data[c.pos]; ch {
		case '"':
			if err := c.SkipString(); err != nil {
				return err
			}
			continue
		case '[':
			want = append(want, ']')
		case '{':
			want = append(want, '}')
		case ']', '}':
			top := want[len(want)-1]
			if ch != top {
				return c.failf("expected %q, found %q", top, ch)
			}
			want = want[:len(want)-1]
			if len(want) == 0 {
				c.pos++
				return nil
			}
		}
		c.pos++
	}
	return c.failf("unterminated %v", kind)
}

// closer returns the closing delimiter for an array or object.
func closer(kind Kind) byte {
	if kind == Object {
		return '}'
	}
	return ']'
}

// SkipNumber consumes bytes up to the next terminator or the end of input.
// The cursor must be positioned at the first byte of the number. The bytes
// consumed are not checked against the number grammar.
func (c *Cursor) SkipNumber() {
	for c.pos < len(c.data) && !isTerminator(c.data[c.pos]) {
		c.pos++
	}
}

// SkipLiteral consumes the constant lit, which must be followed by a
// terminator or the end of the input. If lit is not present, it reports an
// error at the current offset labeled with kind, and does not advance.
func (c *Cursor) SkipLiteral(lit string, kind Kind) error {
	ch, err := c.Peek()
	if err != nil {
		return err
	}
	end := c.pos + len(lit)
	if end > len(c.data) || string(c.data[c.pos:end]) != lit ||
		(end < len(c.data) && !isTerminator(c.data[end])) {
		return c.failf("expected %v, found %q", kind, ch)
	}
	c.pos = end
	return nil
}

// SkipValue consumes a single value of any kind, and reports the kind of the
// value consumed. The cursor must be positioned at the first byte of the
// value.
func (c *Cursor) SkipValue() (Kind, error) {
	k, err := c.PeekKind()
	if err != nil {
		return Invalid, err
	}
	switch k {
	case Object:
		err = c.SkipObject()
	case Array:
		err = c.SkipArray()
	case String:
		err = c.SkipString()
	case Number:
		c.SkipNumber()
	case Null:
		err = c.SkipLiteral("null", Null)
	case Bool:
		if c.data[c.pos] == 't' {
			err = c.SkipLiteral("true", Bool)
		} else {
			err = c.SkipLiteral("false", Bool)
		}
	}
	return k, err
}

// skipSpaceTo skips whitespace and reports whether the next byte is b.
func (c *Cursor) skipSpaceTo(b byte) bool {
	c.SkipSpace()
	return c.pos < len(c.data) && c.data[c.pos] == b
}

func (c *Cursor) errEnd() error {
	return &SyntaxError{Offset: c.pos, Message: "unexpected end of input"}
}

func (c *Cursor) errStart(ch byte) error {
	return c.failf(`unexpected %q, expected one of '{', '[', '"', 't', 'f', 'n', '-' or a digit`, ch)
}

func (c *Cursor) failf(msg string, args ...any) error {
	return &SyntaxError{Offset: c.pos, Message: fmt.Sprintf(msg, args...)}
}
