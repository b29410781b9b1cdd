// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jbind

import (
	"errors"
	"math"
	"reflect"
	"strconv"
	"unsafe"
)

// Signed is the set of signed integer types supported by ScanInt.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the set of unsigned integer types supported by ScanInt.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is the set of integer types supported by ScanInt.
type Integer interface{ Signed | Unsigned }

// Float is the set of floating-point types supported by ScanFloat.
type Float interface{ ~float32 | ~float64 }

// typeName returns the name of the underlying kind of V, e.g., "int16".
func typeName[V any]() string { return reflect.TypeFor[V]().Kind().String() }

// ScanInt scans an integer value of type V at c.
//
// The number must be a JSON integer, without a fraction or exponent; other
// numbers are reported as a Mismatch. If the number does not fit in V, the
// outcome is TooLarge or TooSmall.
func ScanInt[V Integer](c *Cursor) (Result[V], error) {
	typ := typeName[V]()
	ch, err := c.begin()
	if err != nil {
		return Result[V]{}, err
	} else if ch == 'n' {
		if err := c.SkipLiteral("null", Null); err != nil {
			return Result[V]{}, err
		}
		return isNull[V](typ), nil
	} else if !isNumStart(ch) {
		return mismatch[V](c, typ)
	}

	text, isInt, err := c.scanNumber()
	if err != nil {
		return Result[V]{}, err
	} else if !isInt {
		return Result[V]{Outcome: Mismatch, Found: Number, Type: typ}, nil
	}
	neg := text[0] == '-'
	if neg {
		text = text[1:]
	}
	mag, ok := parseMagnitude(text)
	if !ok {
		return Result[V]{Outcome: outOfRange(neg), Type: typ}, nil
	}
	v, out := fitInt[V](neg, mag)
	return Result[V]{Outcome: out, Value: v, Type: typ}, nil
}

// parseMagnitude parses a string of decimal digits. It reports false if the
// value exceeds the range of a uint64.
func parseMagnitude(digits []byte) (uint64, bool) {
	const cutoff = (1<<64-1)/10 + 1

	var v uint64
	for _, d := range digits {
		if v >= cutoff {
			return 0, false
		}
		w := v*10 + uint64(d-'0')
		if w < v {
			return 0, false
		}
		v = w
	}
	return v, true
}

// fitInt converts a magnitude and sign to a value of type V, reporting
// TooLarge or TooSmall if it does not fit.
func fitInt[V Integer](neg bool, mag uint64) (V, Outcome) {
	var zero V
	bits := 8 * uint(unsafe.Sizeof(zero))
	if signed := ^zero < 0; signed {
		limit := ^uint64(0) >> (65 - bits) // largest positive value
		if !neg {
			if mag > limit {
				return zero, TooLarge
			}
			return V(mag), Matched
		} else if mag > limit+1 {
			return zero, TooSmall
		}
		return V(-int64(mag)), Matched
	}
	if neg && mag != 0 {
		return zero, TooSmall
	} else if mag > ^uint64(0)>>(64-bits) {
		return zero, TooLarge
	}
	return V(mag), Matched
}

func outOfRange(neg bool) Outcome {
	if neg {
		return TooSmall
	}
	return TooLarge
}

// ScanFloat scans a floating-point value of type V at c. Integers are
// accepted. The result is the nearest value of V to the decimal text of the
// input. If the number is out of range for V, the outcome is TooLarge or
// TooSmall.
func ScanFloat[V Float](c *Cursor) (Result[V], error) {
	typ := typeName[V]()
	ch, err := c.begin()
	if err != nil {
		return Result[V]{}, err
	} else if ch == 'n' {
		if err := c.SkipLiteral("null", Null); err != nil {
			return Result[V]{}, err
		}
		return isNull[V](typ), nil
	} else if !isNumStart(ch) {
		return mismatch[V](c, typ)
	}

	text, _, err := c.scanNumber()
	if err != nil {
		return Result[V]{}, err
	}
	var zero V
	f, err := strconv.ParseFloat(string(text), 8*int(unsafe.Sizeof(zero)))
	if math.IsInf(f, 0) {
		return Result[V]{Outcome: outOfRange(f < 0), Type: typ}, nil
	} else if err != nil && !errors.Is(err, strconv.ErrRange) {
		// The grammar has already been checked, so this should not occur.
		return Result[V]{}, &SyntaxError{Offset: c.pos, Message: err.Error()}
	}
	return matched(V(f), typ), nil
}

// scanNumber consumes a number, which must conform to the JSON grammar and be
// followed by a terminator or the end of input. It returns the text of the
// number, and reports whether the number is an integer (having neither a
// fraction nor an exponent).
func (c *Cursor) scanNumber() (text []byte, isInt bool, err error) {
	start := c.pos
	if c.data[c.pos] == '-' {
		c.pos++
	}

	// Integer part. Extra leading zeroes are disallowed by the grammar.
	// That is: 0.12 is OK, 01.2 is not.
	first := c.pos
	if c.digits() == 0 {
		return nil, false, c.errWant("digit")
	} else if c.data[first] == '0' && c.pos-first > 1 {
		return nil, false, c.failf("extra leading zeroes")
	}
	isInt = true

	// If a decimal point follows, consume a fractional part.
	if c.pos < len(c.data) && c.data[c.pos] == '.' {
		c.pos++
		if c.digits() == 0 {
			return nil, false, c.failf("no digits after decimal point")
		}
		isInt = false
	}

	// If an exponent follows, consume it.
	if c.pos < len(c.data) && (c.data[c.pos] == 'e' || c.data[c.pos] == 'E') {
		c.pos++
		if c.pos < len(c.data) && (c.data[c.pos] == '+' || c.data[c.pos] == '-') {
			c.pos++
		}
		if c.digits() == 0 {
			return nil, false, c.failf("missing exponent digits")
		}
		isInt = false
	}

	if c.pos < len(c.data) && !isTerminator(c.data[c.pos]) {
		return nil, false, c.failf("invalid %q in number", c.data[c.pos])
	}
	return c.data[start:c.pos], isInt, nil
}

// digits consumes a run of decimal digits and returns its length.
func (c *Cursor) digits() int {
	start := c.pos
	for c.pos < len(c.data) && isDigit(c.data[c.pos]) {
		c.pos++
	}
	return c.pos - start
}

// errWant reports that the current byte (or the end of input) is not what was
// wanted.
func (c *Cursor) errWant(label string) error {
	if c.pos >= len(c.data) {
		return c.errEnd()
	}
	return c.failf("expected %s, found %q", label, c.data[c.pos])
}
