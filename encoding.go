// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jbind

import (
	"github.com/creachadair/jbind/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as a JSON string value. The contents are escaped and
// double quotation marks are added.
func Quote(src string) string { return string(escape.AppendQuote(nil, mem.S(src))) }

// Unquote decodes the raw contents of a JSON string, as reported by
// ScanRawString or ScanName, replacing escape sequences with their unescaped
// equivalents.
//
// Invalid escapes are replaced by the Unicode replacement rune. Unquote
// reports an error for an incomplete escape sequence.
func Unquote(raw []byte) (string, error) {
	dec, err := escape.Unquote(mem.B(raw))
	if err != nil {
		return "", err
	}
	return string(dec), nil
}
