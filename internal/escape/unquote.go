// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting and unquoting of JSON strings.
package escape

import (
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"go4.org/mem"
)

// An Error reports a problem decoding the contents of a string.
type Error struct {
	Offset  int // offset of the escape in the undecoded input
	Message string
}

func (e *Error) Error() string { return fmt.Sprintf("%s at offset %d", e.Message, e.Offset) }

// Unquote decodes the contents of a JSON string, which must have the
// enclosing quotation marks already removed.
//
// Escape sequences are replaced with their unescaped equivalents. A \u escape
// for a UTF-16 surrogate pair is combined into a single rune. Invalid escapes
// and unpaired surrogates are replaced by the Unicode replacement rune.
// Unquote reports an *Error for an incomplete escape sequence.
func Unquote(src mem.RO) ([]byte, error) {
	return AppendUnquote(make([]byte, 0, src.Len()), src)
}

// AppendUnquote is as Unquote, but appends the decoded string to dst.
func AppendUnquote(dst []byte, src mem.RO) ([]byte, error) {
	putRune := func(r rune) { dst = utf8.AppendRune(dst, r) }

	pos := 0
	for src.Len() != 0 {
		i := mem.IndexByte(src, '\\')
		if i < 0 {
			return mem.Append(dst, src), nil
		}
		dst = mem.Append(dst, src.SliceTo(i))
		pos += i
		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, &Error{Offset: pos, Message: "incomplete escape sequence"}
		}

		// Escapes are ASCII; anything else is invalid, but consumes the whole
		// rune so we do not split it.
		r, n := mem.DecodeRune(src)
		if n == 0 {
			n = 1
		}
		src = src.SliceFrom(n)
		used := 1 + n
		switch r {
		case '"', '\\', '/':
			dst = append(dst, byte(r))
		case 'b':
			dst = append(dst, '\b')
		case 'f':
			dst = append(dst, '\f')
		case 'n':
			dst = append(dst, '\n')
		case 'r':
			dst = append(dst, '\r')
		case 't':
			dst = append(dst, '\t')
		case 'u':
			v, ok, err := hex4(src, pos)
			if err != nil {
				return nil, err
			}
			src = src.SliceFrom(4)
			used += 4
			if !ok {
				putRune(utf8.RuneError)
				break
			}
			r := rune(v)
			if utf16.IsSurrogate(r) {
				// Look for the low half of a pair: \uXXXX.
				if src.Len() >= 6 && src.At(0) == '\\' && src.At(1) == 'u' {
					if lo, ok, _ := hex4(src.SliceFrom(2), pos); ok {
						if p := utf16.DecodeRune(r, rune(lo)); p != utf8.RuneError {
							putRune(p)
							src = src.SliceFrom(6)
							used += 6
							break
						}
					}
				}
				r = utf8.RuneError
			}
			putRune(r)
		default:
			putRune(utf8.RuneError)
		}
		pos += used
	}
	return dst, nil
}

// hex4 decodes four hexadecimal digits from the front of src. It reports
// false if the digits are present but not all valid, and an error if fewer
// than four bytes remain.
func hex4(src mem.RO, pos int) (uint16, bool, error) {
	if src.Len() < 4 {
		return 0, false, &Error{Offset: pos, Message: "incomplete Unicode escape"}
	}
	var v uint16
	for i := range 4 {
		b := src.At(i)
		v <<= 4
		switch {
		case '0' <= b && b <= '9':
			v += uint16(b - '0')
		case 'a' <= b && b <= 'f':
			v += uint16(b - 'a' + 10)
		case 'A' <= b && b <= 'F':
			v += uint16(b - 'A' + 10)
		default:
			return 0, false, nil
		}
	}
	return v, true, nil
}
