// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jbind

// Kind is the type of a JSON value, as determined by its first byte.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid Kind = iota // invalid value
	Object              // object "{...}"
	Array               // array "[...]"
	String              // quoted string
	Number              // number
	Bool                // constant: true or false
	Null                // constant: null
)

var kindStr = [...]string{
	Invalid: "invalid value",
	Object:  "object",
	Array:   "array",
	String:  "string",
	Number:  "number",
	Bool:    "boolean",
	Null:    "null",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[v]
}

// kindOf classifies the value beginning with ch, or returns Invalid.
func kindOf(ch byte) Kind {
	switch {
	case ch == '{':
		return Object
	case ch == '[':
		return Array
	case ch == '"':
		return String
	case ch == 't' || ch == 'f':
		return Bool
	case ch == 'n':
		return Null
	case isNumStart(ch):
		return Number
	}
	return Invalid
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

// isTerminator reports whether ch may follow a constant or number.
func isTerminator(ch byte) bool {
	return ch == ',' || ch == '}' || ch == ']' || isSpace(ch)
}

func isNumStart(ch byte) bool { return ch == '-' || isDigit(ch) }
func isDigit(ch byte) bool    { return '0' <= ch && ch <= '9' }
