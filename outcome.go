// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jbind

// Outcome is the type of a scan result.
type Outcome byte

// Constants defining the valid Outcome values.
const (
	Matched  Outcome = iota // a value of the expected type was scanned
	IsNull                  // an explicit null was scanned
	Mismatch                // a value of some other type was skipped
	TooLarge                // a number was too large for the target type
	TooSmall                // a number was too small for the target type
)

var outcomeStr = [...]string{
	Matched:  "matched",
	IsNull:   "null",
	Mismatch: "mismatch",
	TooLarge: "too large",
	TooSmall: "too small",
}

func (o Outcome) String() string {
	if int(o) >= len(outcomeStr) {
		return "invalid outcome"
	}
	return outcomeStr[o]
}

// A Result is the outcome of scanning a single value of type V.
//
// Syntax errors are not outcomes: a scanner that finds malformed input
// reports a *SyntaxError instead of a Result. In all other cases the value
// has been completely consumed when the scanner returns, so the caller may
// continue with the next value regardless of the outcome.
type Result[V any] struct {
	Outcome Outcome

	// Value is the value scanned, if Outcome == Matched.
	Value V

	// Found is the kind of the value skipped, if Outcome == Mismatch.
	Found Kind

	// Type is the name of the expected type, e.g., "boolean" or "int16".
	// For TooLarge and TooSmall it names the width the number did not fit.
	Type string
}

// OK reports whether r is a match.
func (r Result[V]) OK() bool { return r.Outcome == Matched }

func matched[V any](v V, typ string) Result[V] {
	return Result[V]{Outcome: Matched, Value: v, Type: typ}
}

func isNull[V any](typ string) Result[V] { return Result[V]{Outcome: IsNull, Type: typ} }

// recast converts the outcome of r to a result of another type. The value is
// not converted.
func recast[W, V any](r Result[V]) Result[W] {
	return Result[W]{Outcome: r.Outcome, Found: r.Found, Type: r.Type}
}

// mismatch skips the value at c and reports it as a mismatch for typ.
func mismatch[V any](c *Cursor, typ string) (Result[V], error) {
	k, err := c.SkipValue()
	if err != nil {
		return Result[V]{}, err
	}
	return Result[V]{Outcome: Mismatch, Found: k, Type: typ}, nil
}

// begin skips whitespace and returns the first byte of the value at c.
func (c *Cursor) begin() (byte, error) {
	c.SkipSpace()
	return c.Peek()
}
