// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jbind

import (
	"bytes"
	"errors"
	"unicode/utf8"

	"github.com/creachadair/jbind/internal/escape"

	"go4.org/mem"
)

// ScanRawString scans a string value at c, and returns the contents of the
// string without the enclosing quotation marks. Escape sequences are not
// decoded. The returned slice aliases the input buffer.
//
// The contents of the string must be valid UTF-8; otherwise ScanRawString
// reports a syntax error.
func ScanRawString(c *Cursor) (Result[[]byte], error) {
	const typ = "string"
	ch, err := c.begin()
	if err != nil {
		return Result[[]byte]{}, err
	} else if ch == 'n' {
		if err := c.SkipLiteral("null", Null); err != nil {
			return Result[[]byte]{}, err
		}
		return isNull[[]byte](typ), nil
	} else if ch != '"' {
		return mismatch[[]byte](c, typ)
	}
	text, err := c.scanString()
	if err != nil {
		return Result[[]byte]{}, err
	}
	return matched(text, typ), nil
}

// ScanString scans a string value at c, and returns its contents with escape
// sequences decoded. Invalid escapes are replaced by the Unicode replacement
// rune; an incomplete escape sequence is a syntax error.
func ScanString(c *Cursor) (Result[string], error) {
	raw, err := ScanRawString(c)
	if err != nil || raw.Outcome != Matched {
		return recast[string](raw), err
	}
	if bytes.IndexByte(raw.Value, '\\') < 0 {
		return matched(string(raw.Value), raw.Type), nil
	}
	dec, err := escape.Unquote(mem.B(raw.Value))
	if err != nil {
		// Report the problem at its offset in the input. The contents of the
		// string end just before the closing quote.
		var e *escape.Error
		if errors.As(err, &e) {
			start := c.pos - 1 - len(raw.Value)
			return Result[string]{}, &SyntaxError{Offset: start + e.Offset, Message: e.Message}
		}
		return Result[string]{}, c.failf("invalid string: %v", err)
	}
	return matched(string(dec), raw.Type), nil
}

// ScanRaw scans a value of any kind at c, and returns its complete text. The
// returned slice aliases the input buffer. The value is checked only as far
// as needed to find its end (see Cursor.SkipValue).
func ScanRaw(c *Cursor) (Result[[]byte], error) {
	const typ = "value"
	ch, err := c.begin()
	if err != nil {
		return Result[[]byte]{}, err
	} else if ch == 'n' {
		if err := c.SkipLiteral("null", Null); err != nil {
			return Result[[]byte]{}, err
		}
		return isNull[[]byte](typ), nil
	}
	start := c.pos
	if _, err := c.SkipValue(); err != nil {
		return Result[[]byte]{}, err
	}
	return matched(c.data[start:c.pos], typ), nil
}

// scanString consumes a quoted string, checking that its contents are valid
// UTF-8, and returns the contents without quotation marks. The cursor must be
// positioned at the opening quotation mark.
func (c *Cursor) scanString() ([]byte, error) {
	c.pos++ // opening quote
	start := c.pos
	for c.pos < len(c.data) {
		switch ch := c.data[c.pos]; {
		case ch == '"':
			c.pos++
			return c.data[start : c.pos-1], nil
		case ch == '\\':
			// A multi-byte escaped rune is checked by the next iteration.
			if c.pos+1 < len(c.data) && c.data[c.pos+1] < utf8.RuneSelf {
				c.pos++
			}
			c.pos++
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
