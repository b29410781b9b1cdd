// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jbind implements a byte-level JSON scanner and a validation engine
// that binds JSON objects to Go values without reflection.
//
// # Scanning
//
// A Cursor is a read position in an immutable buffer of JSON text. The Scan
// functions consume a single value at a cursor and report its outcome:
//
//	c := jbind.NewCursor(input)
//	r, err := jbind.ScanInt[int32](c)
//	if err != nil {
//	   log.Fatalf("Syntax error: %v", err) // *jbind.SyntaxError
//	}
//	switch r.Outcome {
//	case jbind.Matched:
//	   log.Printf("Value: %d", r.Value)
//	case jbind.IsNull, jbind.Mismatch, jbind.TooLarge, jbind.TooSmall:
//	   log.Printf("Not an int32: %v", r.Outcome)
//	}
//
// Malformed input is reported as an error of concrete type *SyntaxError. All
// other outcomes, including a value of the wrong type, are reported in the
// Result, and the value has been consumed so that scanning may continue.
//
// ScanObject and ScanArray drive the scan of containers, calling a function
// for each member or element. Values the callback does not consume are
// skipped. Skipping tracks nesting without recursion, so deeply nested input
// cannot exhaust the stack, and checks that brackets and braces pair up.
//
// # Binding
//
// A Schema binds the members of an object to the fields of a Go value:
//
//	type Point struct{ X, Y int }
//
//	var pointSchema = jbind.NewSchema(
//	   jbind.Bind("x", jbind.IntValue[int](), func(p *Point, v int) { p.X = v }).Required(),
//	   jbind.Bind("y", jbind.IntValue[int](), func(p *Point, v int) { p.Y = v }),
//	)
//
//	pt, err := pointSchema.Parse([]byte(`{"x": 1, "y": 2}`))
//
// A Schema has four entry points. Parse and ParseLocale stop at the first
// validation error, and report it as a *ValidationError. ParseAll and
// ParseAllLocale continue past validation errors, and report all of them as a
// ValidationErrors value. A syntax error stops any parse.
//
// # Validation
//
// A Validator checks a value after it has been scanned. Validators may also
// implement MultiValidator, LocalizedValidator, or LocalizedMultiValidator,
// and the method best suited to the mode of the parse is called. Messages for
// built-in problems are drawn from a Catalog, which selects among languages
// by locale using golang.org/x/text/language.
package jbind
