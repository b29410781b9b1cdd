// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jbind

// ScanBool scans a Boolean value at c.
func ScanBool(c *Cursor) (Result[bool], error) {
	const typ = "boolean"
	ch, err := c.begin()
	if err != nil {
		return Result[bool]{}, err
	}
	switch ch {
	case 'n':
		if err := c.SkipLiteral("null", Null); err != nil {
			return Result[bool]{}, err
		}
		return isNull[bool](typ), nil
	case 't':
		if err := c.SkipLiteral("true", Bool); err != nil {
			return Result[bool]{}, err
		}
		return matched(true, typ), nil
	case 'f':
		if err := c.SkipLiteral("false", Bool); err != nil {
			return Result[bool]{}, err
		}
		return matched(false, typ), nil
	}
	return mismatch[bool](c, typ)
}
