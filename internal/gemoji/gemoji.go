// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gemoji reads the emoji database of the gemoji project, which
// records the shortcode aliases in wide use on GitHub and elsewhere, such
// as :thumbsup: and :+1: for 👍.
package gemoji

import (
	"encoding/json"
	"fmt"
	"io"

	goversion "github.com/hashicorp/go-version"
)

// An Entry describes one emoji of the gemoji database.
type Entry struct {
	Emoji          string   `json:"emoji"`
	Description    string   `json:"description"`
	Category       string   `json:"category"`
	Aliases        []string `json:"aliases"`
	Tags           []string `json:"tags"`
	UnicodeVersion string   `json:"unicode_version"`
	IOSVersion     string   `json:"ios_version"`
	SkinTones      bool     `json:"skin_tones,omitempty"`
}

// Introduced returns the Unicode version that introduced the entry, or nil
// if the database does not record one.
func (e *Entry) Introduced() *goversion.Version {
	if e.UnicodeVersion == "" {
		return nil
	}
	v, err := goversion.NewVersion(e.UnicodeVersion)
	if err != nil {
		return nil
	}
	return v
}

// Parse decodes the gemoji emoji.json database. Entries without a grapheme,
// which gemoji uses for GitHub's custom images like :octocat:, are dropped.
func Parse(r io.Reader) ([]Entry, error) {
	var entries []Entry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("gemoji: %v", err)
	}
	out := entries[:0]
	for _, e := range entries {
		if e.Emoji == "" {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}
