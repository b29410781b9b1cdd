// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jbind

import "golang.org/x/text/language"

// A Validator checks a value of type V that has been successfully scanned.
// The path locates the value in the document. Validate reports nil if the
// value is acceptable.
//
// A non-nil error that is not a *ValidationError is reported with the
// MsgInvalid message of the active language, and may be recovered from the
// resulting *ValidationError with errors.Unwrap.
//
// A Validator may also implement MultiValidator, LocalizedValidator or
// LocalizedMultiValidator to refine its behavior in the corresponding parsing
// modes. In modes whose method a validator does not implement, its Validate
// method is used instead.
type Validator[V any] interface {
	Validate(value V, path Path) error
}

// A MultiValidator is a Validator that can report more than one problem with
// a value. ValidateAll is used in accumulating modes.
type MultiValidator[V any] interface {
	Validator[V]
	ValidateAll(value V, path Path) []error
}

// A LocalizedValidator is a Validator that can produce messages in a chosen
// language. ValidateLocale is used in localized modes, and is passed the
// language resolved from the locale of the parse.
type LocalizedValidator[V any] interface {
	Validator[V]
	ValidateLocale(value V, path Path, lang language.Tag) error
}

// A LocalizedMultiValidator combines MultiValidator and LocalizedValidator,
// and is used in localized accumulating modes.
type LocalizedMultiValidator[V any] interface {
	Validator[V]
	ValidateAllLocale(value V, path Path, lang language.Tag) []error
}

// ValidatorFunc adapts a function to the Validator interface.
type ValidatorFunc[V any] func(value V, path Path) error

// Validate satisfies the Validator interface.
func (f ValidatorFunc[V]) Validate(value V, path Path) error { return f(value, path) }

// Validate applies the validators vs to value, which is located at the
// current path of s, in the mode of s. In a fail-fast sink, Validate returns
// the first error reported; in an accumulating sink, all errors are recorded
// and Validate returns nil.
func Validate[V any](s *Sink, value V, vs ...Validator[V]) error {
	for _, v := range vs {
		for _, err := range runValidator(s, value, v) {
			if err == nil {
				continue
			} else if err := s.Add(err); err != nil {
				return err
			}
		}
	}
	return nil
}

// runValidator calls the method of v best suited to the mode of s.
func runValidator[V any](s *Sink, value V, v Validator[V]) []error {
	path := s.Path()
	if s.Accumulating() {
		if s.Localized() {
			if m, ok := v.(LocalizedMultiValidator[V]); ok {
				return m.ValidateAllLocale(value, path, s.Language())
			}
		}
		if m, ok := v.(MultiValidator[V]); ok {
			return m.ValidateAll(value, path)
		}
	}
	if s.Localized() {
		if m, ok := v.(LocalizedValidator[V]); ok {
			return []error{m.ValidateLocale(value, path, s.Language())}
		}
	}
	return []error{v.Validate(value, path)}
}
