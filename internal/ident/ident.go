// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ident derives Go identifiers and shortcode aliases from the
// descriptive emoji names of the Unicode data files.
package ident

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// replacer spells out characters and tokens that would otherwise be lost
// when everything outside [A-Za-z0-9] is dropped. The letter entries cover
// the few Latin letters that do not decompose into letter plus combining
// mark.
var replacer = strings.NewReplacer(
	"*", "asterisk",
	"#", "hash",
	"&", "and",
	"1st", "first",
	"2nd", "second",
	"3rd", "third",
	"U.S.", "US",
	"ß", "ss",
	"Ø", "O",
	"ø", "o",
	"Đ", "Dj",
	"đ", "dj",
	"Þ", "B",
	"þ", "b",
	"ð", "d",
)

// stripMarks removes diacritics by decomposing and dropping the combining
// marks, turning "Curaçao" into "Curacao".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

var title = cases.Title(language.English)

// Constant converts a descriptive name such as "woman and man holding
// hands" into an exported Go identifier, "WomanAndManHoldingHands".
//
// Words are recognized at spaces, punctuation, and existing CamelCase
// boundaries, which makes Constant idempotent: identifiers that were
// adapted by string surgery (placeholder substitution, attribute suffixes)
// can be passed through again to restore canonical form.
func Constant(name string) string {
	s := replacer.Replace(name)
	if t, _, err := transform.String(stripMarks, s); err == nil {
		s = t
	}

	var b strings.Builder
	b.Grow(len(s))
	rs := []rune(s)
	for i, r := range rs {
		if !isAlnum(r) {
			b.WriteByte(' ')
			continue
		}
		if i > 0 && unicode.IsUpper(r) {
			prev := rs[i-1]
			switch {
			case unicode.IsLower(prev) || unicode.IsDigit(prev):
				b.WriteByte(' ')
			case unicode.IsUpper(prev) && i+1 < len(rs) && unicode.IsLower(rs[i+1]):
				// An upper-case run followed by a lower-case letter
				// starts a new word at its last letter, as in
				// "AButton" or "USVirgin".
				b.WriteByte(' ')
			}
		}
		b.WriteRune(r)
	}

	return strings.Join(strings.Fields(title.String(b.String())), "")
}

// Alias converts an identifier produced by Constant into its snake_case
// shortcode form: "WomanAndManHoldingHands" becomes
// "woman_and_man_holding_hands".
func Alias(id string) string {
	var b strings.Builder
	b.Grow(len(id) + 8)
	prev := rune(0)
	for _, r := range id {
		if prev != 0 {
			if unicode.IsUpper(r) || (unicode.IsDigit(r) && !unicode.IsDigit(prev)) {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
		prev = r
	}
	return b.String()
}

func isAlnum(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9'
}

// Placeholder words stand in for the people of an emoji concept whose
// gender is not specified, such as "person astronaut" covering both "man
// astronaut" and "woman astronaut".
const (
	One = "Person"
	Two = "People"
)

// placeholderAt reports whether a placeholder word starts at index i of id
// and returns its length.
func placeholderAt(id string, i int) (int, bool) {
	for _, p := range []string{One, Two} {
		if !strings.HasPrefix(id[i:], p) {
			continue
		}
		rest := id[i+len(p):]
		if rest == "" || rest[0] >= 'A' && rest[0] <= 'Z' || rest[0] >= '0' && rest[0] <= '9' {
			return len(p), true
		}
	}
	return 0, false
}

// findPlaceholder returns the position and length of the first placeholder
// word of id, or ok == false if there is none. A word only counts at a
// CamelCase word boundary: "PersonalTrainer" and "Spokesperson" contain no
// placeholder.
func findPlaceholder(id string) (start, length int, ok bool) {
	for i := range id {
		if id[i] != 'P' {
			continue
		}
		if n, ok := placeholderAt(id, i); ok {
			return i, n, true
		}
	}
	return 0, 0, false
}

// HasPlaceholder reports whether id contains a placeholder word.
func HasPlaceholder(id string) bool {
	_, _, ok := findPlaceholder(id)
	return ok
}

// StripPlaceholder removes the first placeholder word from id, so that
// "PersonAstronaut" relates to "Astronaut". The second return is false if
// id contains no placeholder.
func StripPlaceholder(id string) (string, bool) {
	i, n, ok := findPlaceholder(id)
	if !ok {
		return id, false
	}
	return Constant(id[:i] + " " + id[i+n:]), true
}

// ReplacePlaceholder substitutes repl, a descriptive phrase such as "man"
// or "men with girls", for the first placeholder word of id and
// recanonicalizes the result. The second return is false if id contains no
// placeholder.
func ReplacePlaceholder(id, repl string) (string, bool) {
	i, n, ok := findPlaceholder(id)
	if !ok {
		return id, false
	}
	return Constant(id[:i] + " " + repl + " " + id[i+n:]), true
}
