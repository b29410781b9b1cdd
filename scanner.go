// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jbind

// A Scanner scans a value of type V at c, reporting validation problems found
// inside the value (for example, in the elements of an array) to s.
//
// As with the Scan functions, a Scanner reports a syntax error as an error,
// and all other outcomes as a Result. A Scanner may also return an error
// reported by s, which the caller must propagate.
type Scanner[V any] func(c *Cursor, s *Sink) (Result[V], error)

// Lift converts a scan function such as ScanBool into a Scanner.
func Lift[V any](scan func(*Cursor) (Result[V], error)) Scanner[V] {
	return func(c *Cursor, _ *Sink) (Result[V], error) { return scan(c) }
}

// BoolValue returns a Scanner for Boolean values.
func BoolValue() Scanner[bool] { return Lift(ScanBool) }

// IntValue returns a Scanner for integer values of type V.
func IntValue[V Integer]() Scanner[V] { return Lift(ScanInt[V]) }

// FloatValue returns a Scanner for floating-point values of type V.
func FloatValue[V Float]() Scanner[V] { return Lift(ScanFloat[V]) }

// StringValue returns a Scanner for string values, with escapes decoded.
func StringValue() Scanner[string] { return Lift(ScanString) }

// RawValue returns a Scanner for values of any kind, reporting their
// undecoded text. The text is copied out of the input.
func RawValue() Scanner[[]byte] {
	return func(c *Cursor, _ *Sink) (Result[[]byte], error) {
		r, err := ScanRaw(c)
		if r.Outcome == Matched {
			r.Value = append([]byte(nil), r.Value...)
		}
		return r, err
	}
}

// ArrayOf returns a Scanner for arrays whose elements are scanned by elem.
// An element that does not match is reported to the sink, located by its
// index in the array.
//
// The result for an empty array is an empty, non-nil slice.
func ArrayOf[E any](elem Scanner[E]) Scanner[[]E] {
	return func(c *Cursor, s *Sink) (Result[[]E], error) {
		out := make([]E, 0)
		r, err := ScanArray(c, func(c *Cursor, i int) error {
			s.Push(Index(i))
			defer s.Pop()

			er, err := elem(c, s)
			if err != nil {
				return err
			} else if er.Outcome != Matched {
				return ReportResult(s, er)
			}
			out = append(out, er.Value)
			return nil
		})
		if err != nil || r.Outcome != Matched {
			return recast[[]E](r), err
		}
		return matched(out, r.Type), nil
	}
}

// ObjectOf returns a Scanner for objects bound by schema.
func ObjectOf[T any](schema *Schema[T]) Scanner[T] { return schema.scan }

// Optional returns a Scanner that reports null as a match with a nil pointer,
// and a match by scan as a pointer to the value.
func Optional[V any](scan Scanner[V]) Scanner[*V] {
	return func(c *Cursor, s *Sink) (Result[*V], error) {
		r, err := scan(c, s)
		if err != nil {
			return Result[*V]{}, err
		}
		switch r.Outcome {
		case IsNull:
			return matched[*V](nil, r.Type), nil
		case Matched:
			return matched(&r.Value, r.Type), nil
		}
		return recast[*V](r), nil
	}
}

// Checked returns a Scanner that applies the validators vs to each value
// matched by scan. A value rejected by a validator is reported to the sink.
func Checked[V any](scan Scanner[V], vs ...Validator[V]) Scanner[V] {
	if len(vs) == 0 {
		return scan
	}
	return func(c *Cursor, s *Sink) (Result[V], error) {
		r, err := scan(c, s)
		if err != nil || r.Outcome != Matched {
			return r, err
		}
		return r, Validate(s, r.Value, vs...)
	}
}
