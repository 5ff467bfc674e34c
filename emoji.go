// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emoji

import "fmt"

// Version identifies the Unicode emoji release that introduced an emoji,
// such as 0.6 or 13.1.
type Version struct {
	Major, Minor uint16
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Before reports whether v was released before w.
func (v Version) Before(w Version) bool {
	if v.Major != w.Major {
		return v.Major < w.Major
	}
	return v.Minor < w.Minor
}

// An Emoji is a single emoji variant: one descriptive name and the fully
// qualified codepoint sequence that renders it.
type Emoji struct {
	// Name is the descriptive name from the Unicode data file, such as
	// "woman astronaut: medium skin tone".
	Name string

	// Since is the emoji release that introduced this variant.
	Since Version

	// Grapheme is the rendered codepoint sequence.
	Grapheme string
}

// String returns the grapheme, so an Emoji prints as the emoji itself.
func (e Emoji) String() string {
	return e.Grapheme
}
