// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jbind

import "fmt"

// A Field binds the member of a JSON object with a given name to part of a
// value of type T. Construct fields with Bind.
type Field[T any] struct {
	name string

	// decode scans the value of the member and stores it in dst.
	decode func(c *Cursor, s *Sink, dst *T) error

	// absent handles the case where the member does not occur.
	absent func(s *Sink, dst *T) error
}

// Name returns the member name bound by f.
func (f Field[T]) Name() string { return f.name }

// A FieldOption configures the handling of a field whose value has type V.
type FieldOption[V any] func(*fieldConfig[V])

type fieldConfig[V any] struct {
	hasDef bool
	def    V
	checks []Validator[V]
}

// Default specifies a value to store when the member is not present.
func Default[V any](v V) FieldOption[V] {
	return func(fc *fieldConfig[V]) { fc.hasDef = true; fc.def = v }
}

// Check adds validators to be applied to the value of the member.
func Check[V any](vs ...Validator[V]) FieldOption[V] {
	return func(fc *fieldConfig[V]) { fc.checks = append(fc.checks, vs...) }
}

// Bind constructs a Field binding the member called name to a value of type
// V, scanned by scan and stored by set.
//
// A member whose value does not match is reported to the sink. This includes
// null, unless scan accepts null (see Optional). A missing member is left
// unset, unless it has a Default (see also Field.Required).
func Bind[T, V any](name string, scan Scanner[V], set func(*T, V), opts ...FieldOption[V]) Field[T] {
	var fc fieldConfig[V]
	for _, opt := range opts {
		opt(&fc)
	}
	scan = Checked(scan, fc.checks...)
	f := Field[T]{
		name: name,
		decode: func(c *Cursor, s *Sink, dst *T) error {
			r, err := scan(c, s)
			if err != nil {
				return err
			} else if r.Outcome != Matched {
				return ReportResult(s, r)
			}
			set(dst, r.Value)
			return nil
		},
	}
	if fc.hasDef {
		f.absent = func(_ *Sink, dst *T) error { set(dst, fc.def); return nil }
	} else {
		f.absent = func(*Sink, *T) error { return nil }
	}
	return f
}

// Required returns a copy of f that reports a missing member to the sink,
// replacing any Default.
func (f Field[T]) Required() Field[T] {
	name := f.name
	f.absent = func(s *Sink, _ *T) error { return s.Report(MsgMissing, Quote(name)) }
	return f
}

// A Schema is a dispatch table binding the members of a JSON object to the
// fields of a value of type T. Members are matched to fields by comparing
// their undecoded names byte-for-byte. Members that do not match any field
// are skipped.
//
// A Schema is safe for concurrent use by multiple parses, once it has been
// configured.
type Schema[T any] struct {
	fields []Field[T]
	index  map[string]int
	checks []Validator[T]
	cat    *Catalog
}

// NewSchema constructs a schema from the given fields. It panics if two
// fields have the same name.
func NewSchema[T any](fields ...Field[T]) *Schema[T] {
	index := make(map[string]int, len(fields))
	for i, f := range fields {
		if _, ok := index[f.name]; ok {
			panic(fmt.Sprintf("duplicate field name %q", f.name))
		}
		index[f.name] = i
	}
	return &Schema[T]{fields: fields, index: index, cat: DefaultCatalog}
}

// UseCatalog configures sc to draw validation messages from cat.
// If cat == nil, DefaultCatalog is used.
func (sc *Schema[T]) UseCatalog(cat *Catalog) {
	if cat == nil {
		cat = DefaultCatalog
	}
	sc.cat = cat
}

// Check adds validators to be applied to each complete value of T, after all
// its fields have been scanned.
func (sc *Schema[T]) Check(vs ...Validator[T]) { sc.checks = append(sc.checks, vs...) }

// Fields returns the names of the fields of sc, in order of declaration.
func (sc *Schema[T]) Fields() []string {
	out := make([]string, len(sc.fields))
	for i, f := range sc.fields {
		out[i] = f.name
	}
	return out
}

// Parse parses a single object from data, stopping at the first validation
// error. Messages are in the default language of the catalog.
func (sc *Schema[T]) Parse(data []byte) (T, error) {
	return sc.parse(data, NewSink(sc.cat))
}

// ParseLocale is as Parse, but messages are in the language of the catalog
// that best matches locale.
func (sc *Schema[T]) ParseLocale(data []byte, locale string) (T, error) {
	return sc.parse(data, NewSink(sc.cat).Localize(locale))
}

// ParseAll parses a single object from data, collecting all validation
// errors. If any were found, the error has concrete type ValidationErrors.
// Messages are in the default language of the catalog.
func (sc *Schema[T]) ParseAll(data []byte) (T, error) {
	return sc.parse(data, NewSink(sc.cat).Accumulate())
}

// ParseAllLocale is as ParseAll, but messages are in the language of the
// catalog that best matches locale.
func (sc *Schema[T]) ParseAllLocale(data []byte, locale string) (T, error) {
	return sc.parse(data, NewSink(sc.cat).Accumulate().Localize(locale))
}

// ScanWith scans an object bound by sc at c, reporting validation problems to
// s. It is the building block for the Parse methods, for use when the object
// is part of a larger document.
func (sc *Schema[T]) ScanWith(c *Cursor, s *Sink) (Result[T], error) { return sc.scan(c, s) }

// parse scans a complete document consisting of a single object. A syntax
// error always takes precedence over validation errors.
func (sc *Schema[T]) parse(data []byte, s *Sink) (T, error) {
	var zero T
	c := NewCursor(data)
	r, err := sc.scan(c, s)
	if err != nil {
		return zero, err
	}
	if c.SkipSpace(); !c.AtEnd() {
		return zero, c.failf("unexpected %q after top-level value", c.data[c.pos])
	}
	if err := ReportResult(s, r); err != nil {
		return zero, err
	} else if err := s.Err(); err != nil {
		return zero, err
	}
	return r.Value, nil
}

func (sc *Schema[T]) scan(c *Cursor, s *Sink) (Result[T], error) {
	var dst T
	seen := make([]bool, len(sc.fields))
	r, err := ScanObject(c, func(c *Cursor, name []byte) error {
		i, ok := sc.index[string(name)]
		if !ok {
			return nil // skipped by ScanObject
		}
		f := sc.fields[i]
		seen[i] = true
		s.Push(Name(f.name))
		defer s.Pop()
		return f.decode(c, s, &dst)
	})
	if err != nil || r.Outcome != Matched {
		return recast[T](r), err
	}

	for i, f := range sc.fields {
		if seen[i] {
			continue
		}
		s.Push(Name(f.name))
		err := f.absent(s, &dst)
		s.Pop()
		if err != nil {
			return Result[T]{}, err
		}
	}
	if err := Validate(s, dst, sc.checks...); err != nil {
		return Result[T]{}, err
	}
	return matched(dst, r.Type), nil
}
