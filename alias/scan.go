// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alias

import "strings"

// A Scanner splits a text into fragments, replacing every recognized
// :name: alias with its emoji grapheme and passing all other text through
// unchanged. Unrecognized or unterminated aliases stay literal text, so
// scanning is safe on arbitrary input:
//
//	s := alias.NewScanner(table, "Hello :waving_hand:!")
//	for s.Scan() {
//		fmt.Print(s.Text())
//	}
type Scanner struct {
	table Table
	text  string

	// pos is the next byte to process; atAlias records that text[pos-1] is a
	// colon which may open an alias.
	pos     int
	atAlias bool
	frag    string
}

// NewScanner returns a Scanner over text resolving aliases through t.
func NewScanner(t Table, text string) *Scanner {
	return &Scanner{table: t, text: text}
}

// Scan advances to the next fragment. It returns false when the text is
// exhausted.
func (s *Scanner) Scan() bool {
	switch {
	case s.atAlias:
		s.frag = s.scanAlias()
	case s.pos < len(s.text):
		s.frag = s.untilColon(s.pos, 0)
	default:
		return false
	}
	return true
}

// Text returns the current fragment: either a run of plain text or the
// grapheme of a resolved alias.
func (s *Scanner) Text() string {
	return s.frag
}

// scanAlias processes a fragment opened by the colon at pos-1.
func (s *Scanner) scanAlias() string {
	start := s.pos - 1
	for i := s.pos; i < len(s.text); i++ {
		switch c := s.text[i]; {
		case c == ':':
			if e, ok := s.table.Parse(s.text[start : i+1]); ok {
				s.atAlias = false
				s.pos = i + 1
				return e.Grapheme
			}
			// Possibly misspelled. Emit it as plain text, but let the
			// closing colon open the next fragment.
			s.atAlias = true
			s.pos = i + 1
			return s.text[start:i]
		case validAliasByte(c):
		default:
			return s.untilColon(start, 1)
		}
	}
	// Ran out of text before a closing colon.
	s.atAlias = false
	s.pos = len(s.text)
	return s.text[start:]
}

// untilColon emits plain text from start up to the next colon, skipping the
// first skip bytes when searching.
func (s *Scanner) untilColon(start, skip int) string {
	if i := strings.IndexByte(s.text[start+skip:], ':'); i >= 0 {
		colon := start + skip + i
		s.atAlias = true
		s.pos = colon + 1
		return s.text[start:colon]
	}
	s.atAlias = false
	s.pos = len(s.text)
	return s.text[start:]
}

func validAliasByte(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' ||
		c == '_' || c == '+' || c == '-'
}

// Replace substitutes every recognized :name: alias in text with its
// grapheme and returns the result.
func (t Table) Replace(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for s := NewScanner(t, text); s.Scan(); {
		sb.WriteString(s.Text())
	}
	return sb.String()
}
