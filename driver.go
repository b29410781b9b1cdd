// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jbind

// ScanName scans the quoted name of an object member at c, and returns its
// raw contents without quotation marks. Escape sequences are not decoded (see
// Unquote), and the returned slice aliases the input buffer.
func ScanName(c *Cursor) ([]byte, error) {
	ch, err := c.begin()
	if err != nil {
		return nil, err
	} else if ch != '"' {
		return nil, c.failf("expected property name, found %q", ch)
	}
	return c.scanString()
}

// ScanObject scans an object at c, calling member for each member of the
// object with the cursor positioned at the start of the member's value.
//
// If member returns without consuming the value, ScanObject skips it, so that
// members the caller does not recognize never abort the scan. If member
// reports an error, scanning stops and that error is returned.
//
// If the value at c is null or is not an object, member is not called, and
// the value is consumed and reported as IsNull or Mismatch respectively.
func ScanObject(c *Cursor, member func(c *Cursor, name []byte) error) (Result[struct{}], error) {
	const typ = "object"
	var done struct{}

	ch, err := c.begin()
	if err != nil {
		return Result[struct{}]{}, err
	} else if ch == 'n' {
		if err := c.SkipLiteral("null", Null); err != nil {
			return Result[struct{}]{}, err
		}
		return isNull[struct{}](typ), nil
	} else if ch != '{' {
		return mismatch[struct{}](c, typ)
	}

	c.pos++ // open brace
	if c.skipSpaceTo('}') {
		c.pos++
		return matched(done, typ), nil // empty object
	}
	for {
		// Parse a single member: "key": value
		name, err := ScanName(c)
		if err != nil {
			return Result[struct{}]{}, err
		}
		c.SkipSpace()
		if err := c.Expect(':'); err != nil {
			return Result[struct{}]{}, err
		}
		if err := c.callValue(func(c *Cursor) error { return member(c, name) }); err != nil {
			return Result[struct{}]{}, err
		}

		// Check whether we have more members (",") or are done ("}").
		ch, err := c.begin()
		if err != nil {
			return Result[struct{}]{}, err
		}
		switch ch {
		case ',':
			c.pos++
		case '}':
			c.pos++
			return matched(done, typ), nil
		default:
			return Result[struct{}]{}, c.failf("expected ',' or '}', found %q", ch)
		}
	}
}

// ScanArray scans an array at c, calling elem for each element of the array
// with the cursor positioned at the start of the element and its 0-based
// offset in the array. On success, the value of the result is the number of
// elements in the array.
//
// As with ScanObject, an element not consumed by elem is skipped, and a null
// or non-array value is reported without calling elem.
func ScanArray(c *Cursor, elem func(c *Cursor, index int) error) (Result[int], error) {
	const typ = "array"

	ch, err := c.begin()
	if err != nil {
		return Result[int]{}, err
	} else if ch == 'n' {
		if err := c.SkipLiteral("null", Null); err != nil {
			return Result[int]{}, err
		}
		return isNull[int](typ), nil
	} else if ch != '[' {
		return mismatch[int](c, typ)
	}

	c.pos++ // open bracket
	if c.skipSpaceTo(']') {
		c.pos++
		return matched(0, typ), nil // empty array
	}
	for i := 0; ; i++ {
		if err := c.callValue(func(c *Cursor) error { return elem(c, i) }); err != nil {
			return Result[int]{}, err
		}

		// Check whether we have more elements (",") or are done ("]").
		ch, err := c.begin()
		if err != nil {
			return Result[int]{}, err
		}
		switch ch {
		case ',':
			c.pos++
		case ']':
			c.pos++
			return matched(i+1, typ), nil
		default:
			return Result[int]{}, c.failf("expected ',' or ']', found %q", ch)
		}
	}
}

// callValue calls f with c positioned at the start of a value, and skips the
// value if f did not consume any input.
func (c *Cursor) callValue(f func(*Cursor) error) error {
	c.SkipSpace()
	start := c.pos
	if err := f(c); err != nil {
		return err
	} else if c.pos == start {
		_, err := c.SkipValue()
		return err
	}
	return nil
}
