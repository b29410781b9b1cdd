// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jbind

import (
	"errors"

	"golang.org/x/text/language"
)

// A Sink collects the validation errors of a single parse, and tracks the
// path to the value currently being scanned.
//
// A sink is either fail-fast (the default) or accumulating. When a value fails
// validation, a fail-fast sink returns the error from Report or Add so that
// the caller stops and returns it; an accumulating sink records the error and
// returns nil so the caller continues with the next value.
//
// A Sink is owned by a single parse, and must not be shared.
type Sink struct {
	cat       *Catalog
	lang      language.Tag
	localized bool
	all       bool

	path Path
	errs ValidationErrors
}

// NewSink constructs a fail-fast sink whose messages are drawn from the
// default language of cat. If cat == nil, DefaultCatalog is used.
func NewSink(cat *Catalog) *Sink {
	if cat == nil {
		cat = DefaultCatalog
	}
	return &Sink{cat: cat, lang: cat.Default()}
}

// Accumulate configures s to record all validation errors, and returns s.
func (s *Sink) Accumulate() *Sink { s.all = true; return s }

// Localize configures s to draw messages from the language of its catalog
// that best matches locale, and returns s. If locale is not recognized, the
// default language is used.
func (s *Sink) Localize(locale string) *Sink {
	s.localized = true
	s.lang = s.cat.Resolve(locale)
	return s
}

// Accumulating reports whether s records all validation errors.
func (s *Sink) Accumulating() bool { return s.all }

// Localized reports whether s was configured with a locale.
func (s *Sink) Localized() bool { return s.localized }

// Language reports the language of messages generated by s.
func (s *Sink) Language() language.Tag { return s.lang }

// Path returns a copy of the path to the current value.
func (s *Sink) Path() Path { return s.path.Clone() }

// Push adds seg to the end of the current path.
func (s *Sink) Push(seg Segment) { s.path = append(s.path, seg) }

// Pop removes the last segment of the current path.
func (s *Sink) Pop() { s.path = s.path[:len(s.path)-1] }

// Report records a validation error for the current value, whose message is
// the catalog message for key formatted with args.
func (s *Sink) Report(key MessageKey, args ...any) error {
	return s.record(s.newError(s.cat.Format(s.lang, key, args...), nil))
}

// Add records err, reported by a Validator, as a validation error for the
// current value. If err is a *ValidationError it is recorded with its own
// message, and located at the current value if it has no path of its own.
// Otherwise the text of err is reported as an invalid value.
func (s *Sink) Add(err error) error {
	var ve *ValidationError
	if !errors.As(err, &ve) {
		return s.record(s.newError(s.cat.Format(s.lang, MsgInvalid, err.Error()), err))
	} else if ve.Path == nil {
		loc := s.newError(ve.Message, ve.err)
		return s.record(loc)
	}
	return s.record(ve)
}

// Errors returns the validation errors recorded by s.
func (s *Sink) Errors() ValidationErrors { return s.errs }

// Err returns the validation errors recorded by s, or nil if there are none.
func (s *Sink) Err() error {
	if len(s.errs) == 0 {
		return nil
	}
	return s.errs
}

func (s *Sink) newError(msg string, err error) *ValidationError {
	tgt, _ := s.path.Last()
	return &ValidationError{Target: tgt, Path: s.path.Clone(), Message: msg, err: err}
}

func (s *Sink) record(ve *ValidationError) error {
	if s.all {
		s.errs = append(s.errs, ve)
		return nil
	}
	return ve
}

// ReportResult records a validation error for the current value describing
// why r is not a match. It returns nil without effect if r is a match.
func ReportResult[V any](s *Sink, r Result[V]) error {
	switch r.Outcome {
	case IsNull:
		return s.Report(MsgNull, r.Type)
	case Mismatch:
		return s.Report(MsgMismatch, r.Type, r.Found)
	case TooLarge:
		return s.Report(MsgTooLarge, r.Type)
	case TooSmall:
		return s.Report(MsgTooSmall, r.Type)
	}
	return nil
}
