// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jbind

import (
	"fmt"
	"strings"
)

// SyntaxError is the concrete type of errors reporting structural problems in
// the input: unexpected bytes, unexpected end of input, or invalid UTF-8.
// A syntax error is always fatal to the parse that reports it.
type SyntaxError struct {
	Offset  int    // the offset of the cursor when the error was detected
	Message string // a description of the problem
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at offset %d: %s", s.Offset, s.Message)
}

// Position returns the line and column of the error in data, which should be
// the input whose scan reported s.
func (s *SyntaxError) Position(data []byte) LineCol { return Locate(data, s.Offset) }

// ValidationError is the concrete type of errors reporting semantic problems
// with a well-formed value: a value of the wrong type, a null or missing
// field, a number out of range, or a rejection by a Validator.
type ValidationError struct {
	Target  Segment // the member name or array index of the offending value
	Path    Path    // the location of the offending value, from the root
	Message string  // a description of the problem

	err error
}

// Error satisfies the error interface.
func (v *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Path, v.Message)
}

// Unwrap supports error wrapping. It returns the error reported by the
// Validator that produced v, if any.
func (v *ValidationError) Unwrap() error { return v.err }

// NewValidationError constructs a validation error for the value at path. The
// target of the error is the last segment of the path. The error retains its
// own copy of path.
func NewValidationError(path Path, msg string, args ...any) *ValidationError {
	tgt, _ := path.Last()
	return &ValidationError{Target: tgt, Path: path.Clone(), Message: fmt.Sprintf(msg, args...)}
}

// ValidationErrors is the error reported by accumulating parses when one or
// more values fail validation. Errors are in the order they were detected.
type ValidationErrors []*ValidationError

// Error satisfies the error interface.
func (v ValidationErrors) Error() string {
	switch len(v) {
	case 0:
		return "no validation errors"
	case 1:
		return v[0].Error()
	}
	var buf strings.Builder
	fmt.Fprintf(&buf, "%d validation errors:", len(v))
	for _, e := range v {
		buf.WriteString("\n\t")
		buf.WriteString(e.Error())
	}
	return buf.String()
}

// Unwrap supports error wrapping for errors.Is and errors.As.
func (v ValidationErrors) Unwrap() []error {
	out := make([]error, len(v))
	for i, e := range v {
		out[i] = e
	}
	return out
}
