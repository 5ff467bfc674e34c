// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package alias resolves colon-fenced emoji names like :crab: in the style
// popularized by github/gemoji.
//
// The generated flat package provides a Table covering every generated
// constant under its snake_case name together with the gemoji alias list;
// this package holds only the lookup and text-scanning machinery so that it
// can be compiled, and tested, independently of the generated data.
package alias // import "golang.org/x/emoji/alias"

import "golang.org/x/emoji"

// A Table maps alias names, without their colon fences, to emoji.
type Table map[string]emoji.Emoji

// Parse resolves an alias of the form ":name:". The name must be ASCII and
// non-empty; anything else reports false.
func (t Table) Parse(s string) (emoji.Emoji, bool) {
	if len(s) <= 2 || s[0] != ':' || s[len(s)-1] != ':' {
		return emoji.Emoji{}, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return emoji.Emoji{}, false
		}
	}
	e, ok := t[s[1:len(s)-1]]
	return e, ok
}
