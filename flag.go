// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emoji

import (
	"fmt"
	"strings"
)

const (
	regionalIndicatorBase = 0x1F1E6 // REGIONAL INDICATOR SYMBOL LETTER A
	blackFlag             = 0x1F3F4
	tagBase               = 0xE0000
	cancelTag             = 0xE007F
)

// CountryFlag composes the flag emoji for a two-letter ISO 3166-1 country
// code such as "EU" or "br". The code is not checked against the list of
// assigned codes, so unassigned combinations yield a sequence that most
// renderers display as the bare letters.
func CountryFlag(code string) (string, error) {
	if len(code) != 2 {
		return "", fmt.Errorf("emoji: country code %q is not two letters", code)
	}
	var sb strings.Builder
	for _, r := range strings.ToUpper(code) {
		if r < 'A' || r > 'Z' {
			return "", fmt.Errorf("emoji: country code %q is not two letters", code)
		}
		sb.WriteRune(regionalIndicatorBase + r - 'A')
	}
	return sb.String(), nil
}

// RegionalFlag composes the flag emoji for an ISO 3166-2 region code such as
// "GB-SCT": a black flag carrying the code as a tag sequence. Hyphens are
// dropped and letters lowercased, per the flag emoji tag sequence rules. As
// with CountryFlag, assignment of the code is not checked.
func RegionalFlag(code string) (string, error) {
	var sb strings.Builder
	sb.WriteRune(blackFlag)
	n := 0
	for _, r := range strings.ToLower(code) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(tagBase + r)
			n++
		case r == '-':
			// Separators are conventional and carry no tag.
		default:
			return "", fmt.Errorf("emoji: region code %q contains %q", code, r)
		}
	}
	if n == 0 {
		return "", fmt.Errorf("emoji: empty region code")
	}
	sb.WriteRune(cancelTag)
	return sb.String(), nil
}
