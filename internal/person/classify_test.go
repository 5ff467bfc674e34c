// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package person

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"golang.org/x/emoji"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		want Match
		ok   bool
	}{
		{"man", Match{Adults: []string{"man"}}, true},
		{"person", Match{Adults: []string{"person"}}, true},
		{"people hugging", Match{Adults: []string{"people"}, Post: "hugging"}, true},
		{"woman in manual wheelchair", Match{Adults: []string{"woman"}, Post: "in manual wheelchair"}, true},
		{
			"men holding hands: light skin tone, medium skin tone",
			Match{Adults: []string{"men"}, Post: "holding hands", Tones: []string{"light", "medium"}},
			true,
		},
		{
			"woman and man holding hands: medium-light skin tone",
			Match{Adults: []string{"woman", "man"}, Post: "holding hands", Tones: []string{"medium-light"}},
			true,
		},
		{"man: red hair", Match{Adults: []string{"man"}, Hair: "red"}, true},
		{"man: beard", Match{Adults: []string{"man"}, Hair: "beard"}, true},
		{
			"person: light skin tone, blond hair",
			Match{Adults: []string{"person"}, Tones: []string{"light"}, Hair: "blond"},
			true,
		},
		{
			"woman: dark skin tone, bald",
			Match{Adults: []string{"woman"}, Tones: []string{"dark"}, Hair: "bald"},
			true,
		},
		{"kiss: woman, man", Match{Pre: "kiss", Adults: []string{"woman", "man"}}, true},
		{
			"kiss: person, person, light skin tone, medium skin tone",
			Match{Pre: "kiss", Adults: []string{"person", "person"}, Tones: []string{"light", "medium"}},
			true,
		},
		{
			"family: man, woman, girl, boy",
			Match{Pre: "family", Adults: []string{"man", "woman"}, Children: []string{"girl", "boy"}},
			true,
		},
		{"old man: medium skin tone", Match{Pre: "old man", Tones: []string{"medium"}}, true},
		{
			"handshake: light skin tone, dark skin tone",
			Match{Pre: "handshake", Tones: []string{"light", "dark"}},
			true,
		},

		{"grinning face", Match{}, false},
		{"old man", Match{}, false},
		{"man's shoe", Match{}, false},
		{"woman's hat", Match{}, false},
		{"manual wheelchair", Match{}, false},
		{"person:", Match{}, false},
		{"flag: Scotland", Match{}, false},
		{"keycap: 10", Match{}, false},
		{"input latin letters", Match{}, false},
	}

	c := NewClassifier()
	for _, tt := range tests {
		got, ok := c.Classify(tt.name)
		if ok != tt.ok {
			t.Errorf("Classify(%q) = %v; want %v", tt.name, ok, tt.ok)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Classify(%q) mismatch (-want +got):\n%s", tt.name, diff)
		}
	}
}

func TestClassifyArity(t *testing.T) {
	tests := []string{
		"wedding: man, man, man",
		"wedding: boy, boy, boy",
		"wedding: light skin tone, medium skin tone, dark skin tone",
		"wedding: beard, bald",
	}
	c := NewClassifier()
	for _, name := range tests {
		if _, ok := c.Classify(name); ok {
			t.Errorf("Classify(%q) matched; want no match", name)
		}
	}
}

func TestExtract(t *testing.T) {
	v13 := emoji.Version{Major: 13, Minor: 1}
	tests := []struct {
		name     string
		identity string
		key      Key
	}{
		{"man", "person", Key{}.WithPeople(emoji.One(emoji.Male))},
		{"person", "person", Key{}},
		{
			"men holding hands: light skin tone, medium skin tone",
			"person holding hands",
			Key{}.WithPeople(emoji.Two(emoji.Males)).WithTone(emoji.Light).WithSecondTone(emoji.Medium),
		},
		{
			"people holding hands",
			"person holding hands",
			Key{},
		},
		{
			"man dancing",
			"person dancing",
			Key{}.WithPeople(emoji.One(emoji.Male)),
		},
		{
			"kiss: woman, man, light skin tone",
			"kiss",
			Key{}.WithPeople(emoji.Two(emoji.Mixed)).WithTone(emoji.Light),
		},
		{
			"family: man, girl, girl",
			"family",
			Key{}.WithPeople(emoji.One(emoji.Male)).WithChildren(emoji.Two(emoji.Females)),
		},
		{
			"man: light skin tone, red hair",
			"person",
			Key{}.WithPeople(emoji.One(emoji.Male)).WithTone(emoji.Light).WithHair(emoji.Red),
		},
		{"old man: medium skin tone", "old man", Key{}.WithTone(emoji.Medium)},
	}

	c := NewClassifier()
	for _, tt := range tests {
		m, ok := c.Classify(tt.name)
		if !ok {
			t.Errorf("Classify(%q) did not match", tt.name)
			continue
		}
		e, err := Extract(m, tt.name, "\U0001F9D1", v13)
		if err != nil {
			t.Errorf("Extract(%q): %v", tt.name, err)
			continue
		}
		want := Entry{
			Identity: tt.identity,
			Key:      tt.key,
			Variant:  Variant{Name: tt.name, Since: v13, Grapheme: "\U0001F9D1"},
		}
		if e != want {
			t.Errorf("Extract(%q) = %+v; want %+v", tt.name, e, want)
		}
	}
}

func TestExtractSameTonePair(t *testing.T) {
	m := Match{Pre: "kiss", Adults: []string{"person", "person"}, Tones: []string{"light", "light"}}
	e, err := Extract(m, "kiss: person, person, light skin tone, light skin tone", "💏", emoji.Version{})
	if err != nil {
		t.Fatal(err)
	}
	if e.Key != (Key{}.WithTone(emoji.Light)) {
		t.Errorf("same-tone pair key = %v; want lone light tone", e.Key)
	}
}

func TestExtractErrors(t *testing.T) {
	tests := []struct {
		desc string
		m    Match
	}{
		{"children without adults", Match{Pre: "family", Children: []string{"boy"}}},
		{"children with generic adults", Match{Pre: "family", Adults: []string{"person"}, Children: []string{"boy"}}},
		{"unsupported adult combination", Match{Adults: []string{"person", "man"}}},
		{"unsupported child combination", Match{Pre: "family", Adults: []string{"man"}, Children: []string{"boy", "child"}}},
		{"unknown tone word", Match{Pre: "kiss", Tones: []string{"pink"}}},
		{"unknown hair word", Match{Adults: []string{"man"}, Hair: "green"}},
	}
	for _, tt := range tests {
		if _, err := Extract(tt.m, "x", "x", emoji.Version{}); err == nil {
			t.Errorf("%s: Extract succeeded; want error", tt.desc)
		}
	}
}
