// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emoji

import "testing"

func TestVersionString(t *testing.T) {
	tests := []struct {
		v    Version
		want string
	}{
		{Version{0, 6}, "0.6"},
		{Version{1, 0}, "1.0"},
		{Version{13, 1}, "13.1"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("Version%v.String() = %q; want %q", tt.v, got, tt.want)
		}
	}
}

func TestVersionBefore(t *testing.T) {
	tests := []struct {
		v, w Version
		want bool
	}{
		{Version{0, 6}, Version{1, 0}, true},
		{Version{1, 0}, Version{0, 6}, false},
		{Version{12, 0}, Version{12, 1}, true},
		{Version{12, 1}, Version{12, 1}, false},
		{Version{13, 1}, Version{12, 1}, false},
	}
	for _, tt := range tests {
		if got := tt.v.Before(tt.w); got != tt.want {
			t.Errorf("%v.Before(%v) = %v; want %v", tt.v, tt.w, got, tt.want)
		}
	}
}

func TestEmojiString(t *testing.T) {
	e := Emoji{Name: "grinning face", Since: Version{1, 0}, Grapheme: "\U0001F600"}
	if got := e.String(); got != "\U0001F600" {
		t.Errorf("String() = %q; want %q", got, "\U0001F600")
	}
}
