// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jbind

import (
	"cmp"
	"fmt"
	"maps"
	"slices"

	"golang.org/x/text/language"
)

// A MessageKey identifies the text of a validation error message.
type MessageKey int

// Constants defining the valid MessageKey values. The comment on each key
// gives the arguments its message is formatted with.
const (
	MsgMismatch MessageKey = iota // expected type, found kind
	MsgNull                       // expected type
	MsgMissing                    // quoted member name
	MsgTooLarge                   // target type
	MsgTooSmall                   // target type
	MsgInvalid                    // detail text

	numMessageKeys
)

// Messages maps message keys to fmt-style format strings.
type Messages map[MessageKey]string

// A Catalog is a set of Messages indexed by language. A catalog has a
// default language, whose messages are used when a locale is not recognized,
// or when the messages for a locale lack a key. A Catalog is immutable, and
// safe for concurrent use.
type Catalog struct {
	def     language.Tag
	tags    []language.Tag // tags[0] == def
	msgs    map[language.Tag]Messages
	matcher language.Matcher
}

// NewCatalog constructs a catalog with the given default language and
// messages. The default messages must define every MessageKey.
func NewCatalog(def language.Tag, msgs map[language.Tag]Messages) *Catalog {
	dm, ok := msgs[def]
	if !ok {
		panic(fmt.Sprintf("no messages for default language %v", def))
	}
	for k := range numMessageKeys {
		if _, ok := dm[k]; !ok {
			panic(fmt.Sprintf("default messages lack key %d", k))
		}
	}
	tags := []language.Tag{def}
	for _, tag := range slices.SortedFunc(maps.Keys(msgs), func(a, b language.Tag) int {
		return cmp.Compare(a.String(), b.String())
	}) {
		if tag != def {
			tags = append(tags, tag)
		}
	}
	return &Catalog{
		def:     def,
		tags:    tags,
		msgs:    maps.Clone(msgs),
		matcher: language.NewMatcher(tags),
	}
}

// Default returns the default language of c.
func (c *Catalog) Default() language.Tag { return c.def }

// Languages returns the languages defined by c, default first.
func (c *Catalog) Languages() []language.Tag { return slices.Clone(c.tags) }

// Resolve returns the language of c that best matches the given locale key,
// e.g., "de" or "fr-CA". If locale cannot be parsed or does not match any
// language of c, Resolve returns the default language.
func (c *Catalog) Resolve(locale string) language.Tag {
	tag, err := language.Parse(locale)
	if err != nil {
		return c.def
	}
	_, i, conf := c.matcher.Match(tag)
	if conf == language.No {
		return c.def
	}
	return c.tags[i]
}

// Format returns the message for key in the given language, formatted with
// args. If the language does not define key, the default language is used.
func (c *Catalog) Format(tag language.Tag, key MessageKey, args ...any) string {
	msg, ok := c.msgs[tag][key]
	if !ok {
		msg = c.msgs[c.def][key]
	}
	return fmt.Sprintf(msg, args...)
}

// DefaultCatalog is the catalog used by a Schema unless another is set. It
// defines messages for English (the default), German, and French.
var DefaultCatalog = NewCatalog(language.English, map[language.Tag]Messages{
	language.English: {
		MsgMismatch: "expected %s, found %s",
		MsgNull:     "expected %s, found null",
		MsgMissing:  "missing required field %s",
		MsgTooLarge: "number is too large for %s",
		MsgTooSmall: "number is too small for %s",
		MsgInvalid:  "invalid value: %s",
	},
	language.German: {
		MsgMismatch: "%s erwartet, %s gefunden",
		MsgNull:     "%s erwartet, null gefunden",
		MsgMissing:  "Pflichtfeld %s fehlt",
		MsgTooLarge: "Zahl ist zu groß für %s",
		MsgTooSmall: "Zahl ist zu klein für %s",
		MsgInvalid:  "ungültiger Wert: %s",
	},
	language.French: {
		MsgMismatch: "%s attendu, %s trouvé",
		MsgNull:     "%s attendu, null trouvé",
		MsgMissing:  "champ obligatoire %s manquant",
		MsgTooLarge: "nombre trop grand pour %s",
		MsgTooSmall: "nombre trop petit pour %s",
		MsgInvalid:  "valeur invalide : %s",
	},
})
