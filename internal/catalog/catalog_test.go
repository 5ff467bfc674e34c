// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

import (
	"strings"
	"testing"

	"golang.org/x/emoji"
	"golang.org/x/emoji/internal/person"
)

func newCatalog(t *testing.T) *Catalog {
	t.Helper()
	return New(person.NewClassifier())
}

func add(t *testing.T, c *Catalog, subgroup, name, grapheme string) {
	t.Helper()
	if err := c.Add("People & Body", subgroup, name, grapheme, emoji.Version{Major: 12}); err != nil {
		t.Fatalf("Add(%q): %v", name, err)
	}
}

// entry finds the single entry with the given identifier, anywhere.
func entry(t *testing.T, c *Catalog, id string) *Entry {
	t.Helper()
	for _, g := range c.Groups() {
		for _, sg := range g.Subgroups {
			for _, en := range sg.Entries {
				if en.ID == id {
					return en
				}
			}
		}
	}
	t.Fatalf("no entry %s", id)
	return nil
}

func ids(sg *Subgroup) []string {
	var out []string
	for _, en := range sg.Entries {
		out = append(out, en.ID)
	}
	return out
}

func TestCatalogRouting(t *testing.T) {
	c := newCatalog(t)
	add(t, c, "person-sport", "snowboarder", "\U0001F3C2")
	add(t, c, "person-sport", "person golfing", "\U0001F3CC\uFE0F")
	if err := c.Finalize(); err != nil {
		t.Fatal(err)
	}

	plain := entry(t, c, "Snowboarder")
	if plain.Plain == nil || plain.Family != nil {
		t.Errorf("snowboarder routed as %+v; want a plain emoji", plain)
	}
	if plain.Plain.Name != "snowboarder" || plain.Plain.Grapheme != "\U0001F3C2" {
		t.Errorf("plain payload = %+v", plain.Plain)
	}
	if plain.Plain.Since != (emoji.Version{Major: 12}) {
		t.Errorf("plain Since = %v; want 12.0", plain.Plain.Since)
	}

	fam := entry(t, c, "PersonGolfing")
	if fam.Family == nil {
		t.Fatalf("person golfing routed as %+v; want a family", fam)
	}
	if !fam.Family.Qualified() {
		t.Error("finalized family is not qualified")
	}
}

func TestCatalogMergesBaseAndIdentities(t *testing.T) {
	c := newCatalog(t)
	add(t, c, "person-role", "astronaut", "\U0001F9D1\u200D\U0001F680")
	tones := []string{
		"light skin tone", "medium-light skin tone", "medium skin tone",
		"medium-dark skin tone", "dark skin tone",
	}
	for i, tone := range tones {
		add(t, c, "person-role", "astronaut: "+tone, "A"+string(rune('0'+i)))
	}
	add(t, c, "person-role", "man astronaut", "\U0001F468\u200D\U0001F680")
	for i, tone := range tones {
		add(t, c, "person-role", "man astronaut: "+tone, "M"+string(rune('0'+i)))
	}
	add(t, c, "person-role", "woman astronaut", "\U0001F469\u200D\U0001F680")
	for i, tone := range tones {
		add(t, c, "person-role", "woman astronaut: "+tone, "W"+string(rune('0'+i)))
	}
	if err := c.Finalize(); err != nil {
		t.Fatal(err)
	}

	sg := c.Groups()[0].Subgroups[0]
	if got := ids(sg); len(got) != 1 || got[0] != "Astronaut" {
		t.Fatalf("subgroup entries = %v; want the single merged Astronaut", got)
	}

	f := entry(t, c, "Astronaut").Family
	if f == nil {
		t.Fatal("Astronaut is not a family")
	}
	if f.Len() != 18 {
		t.Errorf("Astronaut has %d variants; want 18", f.Len())
	}
	if f.Name() != "astronaut" {
		t.Errorf("Name() = %q; want astronaut", f.Name())
	}
	if g, ok := f.DefaultGrapheme(); !ok || g != "\U0001F9D1\u200D\U0001F680" {
		t.Errorf("DefaultGrapheme() = %q, %v; want the folded base emoji", g, ok)
	}

	d, err := f.Declaration()
	if err != nil {
		t.Fatal(err)
	}
	want := "emoji.With[emoji.Gender, emoji.With[emoji.Tone, emoji.Emoji]]"
	if d.Type != want {
		t.Errorf("Type = %q; want %q", d.Type, want)
	}
}

func TestCatalogSharedIdentity(t *testing.T) {
	c := newCatalog(t)
	add(t, c, "person-activity", "people holding hands", "\U0001F9D1\u200D\U0001F91D\u200D\U0001F9D1")
	add(t, c, "person-activity", "men holding hands", "\U0001F46C")
	add(t, c, "person-activity", "woman and man holding hands", "\U0001F46B")
	add(t, c, "person-activity", "women holding hands", "\U0001F46D")
	if err := c.Finalize(); err != nil {
		t.Fatal(err)
	}

	f := entry(t, c, "PersonHoldingHands").Family
	if f == nil {
		t.Fatal("PersonHoldingHands is not a family")
	}
	if f.Len() != 4 {
		t.Errorf("family has %d variants; want 4", f.Len())
	}
	d, err := f.Declaration()
	if err != nil {
		t.Fatal(err)
	}
	if d.Type != "emoji.With[emoji.Pair, emoji.Emoji]" {
		t.Errorf("Type = %q; want pair accessors", d.Type)
	}
}

func TestCatalogFamilyCross(t *testing.T) {
	c := newCatalog(t)
	add(t, c, "family", "family", "\U0001F46A")
	adults := []string{"man", "woman", "man, man", "man, woman", "woman, woman"}
	children := []string{"boy", "girl", "boy, boy", "boy, girl", "girl, girl"}
	for i, a := range adults {
		for j, ch := range children {
			add(t, c, "family", "family: "+a+", "+ch, "F"+string(rune('0'+i))+string(rune('0'+j)))
		}
	}
	if err := c.Finalize(); err != nil {
		t.Fatal(err)
	}

	f := entry(t, c, "Family").Family
	if f == nil {
		t.Fatal("Family is not a family record")
	}
	if f.Len() != 26 {
		t.Errorf("family has %d variants; want 26", f.Len())
	}
	d, err := f.Declaration()
	if err != nil {
		t.Fatal(err)
	}
	if d.Type != "emoji.With[emoji.Family, emoji.Emoji]" {
		t.Errorf("Type = %q; want the parent and children cross", d.Type)
	}
	if g, ok := f.DefaultGrapheme(); !ok || g != "\U0001F46A" {
		t.Errorf("DefaultGrapheme() = %q, %v; want the folded base emoji", g, ok)
	}
}

func TestCatalogSplitEntries(t *testing.T) {
	c := newCatalog(t)
	add(t, c, "person", "person: beard", "\U0001F9D4")
	add(t, c, "person", "person: red hair", "\U0001F9D1\u200D\U0001F9B0")
	if err := c.Finalize(); err != nil {
		t.Fatal(err)
	}

	sg := c.Groups()[0].Subgroups[0]
	got := ids(sg)
	want := []string{"PersonWithBeard", "PersonWithRedHair"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("entries = %v; want %v", got, want)
	}
}

func TestCatalogDuplicates(t *testing.T) {
	c := newCatalog(t)
	add(t, c, "face-smiling", "grinning face", "\U0001F600")
	err := c.Add("People & Body", "face-smiling", "grinning face", "\U0001F600", emoji.Version{})
	if err == nil {
		t.Error("duplicate plain emoji accepted")
	}

	add(t, c, "person", "man: red hair", "\U0001F468\u200D\U0001F9B0")
	err = c.Add("People & Body", "person", "man: red hair", "\U0001F468\u200D\U0001F9B0", emoji.Version{})
	if err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("duplicate variant error = %v; want a duplicate report", err)
	}
}

func TestCatalogRejectsUnsupportedCombination(t *testing.T) {
	c := newCatalog(t)
	if err := c.Add("People & Body", "family", "kiss: person, boy", "\U0001F48F", emoji.Version{}); err == nil {
		t.Error("children without gendered adults accepted")
	}
}

func TestCatalogOrder(t *testing.T) {
	c := newCatalog(t)
	if err := c.Add("Symbols", "arrow", "up arrow", "⬆", emoji.Version{}); err != nil {
		t.Fatal(err)
	}
	if err := c.Add("Flags", "flag", "chequered flag", "\U0001F3C1", emoji.Version{}); err != nil {
		t.Fatal(err)
	}
	if err := c.Add("Flags", "country-flag", "flag: France", "\U0001F1EB\U0001F1F7", emoji.Version{}); err != nil {
		t.Fatal(err)
	}
	if err := c.Add("Flags", "country-flag", "flag: Chad", "\U0001F1F9\U0001F1E9", emoji.Version{}); err != nil {
		t.Fatal(err)
	}
	if err := c.Finalize(); err != nil {
		t.Fatal(err)
	}

	groups := c.Groups()
	if len(groups) != 2 || groups[0].Name != "Flags" || groups[1].Name != "Symbols" {
		t.Fatalf("groups = %v, %v; want Flags, Symbols", groups[0].Name, groups[1].Name)
	}
	subs := groups[0].Subgroups
	if len(subs) != 2 || subs[0].Name != "country-flag" || subs[1].Name != "flag" {
		t.Fatalf("subgroups = %v; want country-flag, flag", []string{subs[0].Name, subs[1].Name})
	}
	got := ids(subs[0])
	if len(got) != 2 || got[0] != "FlagChad" || got[1] != "FlagFrance" {
		t.Errorf("entries = %v; want FlagChad, FlagFrance", got)
	}
}

func TestCatalogLock(t *testing.T) {
	c := newCatalog(t)
	add(t, c, "person", "man", "\U0001F468")

	func() {
		defer func() {
			if recover() == nil {
				t.Error("Groups before Finalize did not panic")
			}
		}()
		c.Groups()
	}()

	if err := c.Finalize(); err != nil {
		t.Fatal(err)
	}

	func() {
		defer func() {
			if recover() == nil {
				t.Error("Add after Finalize did not panic")
			}
		}()
		c.Add("People & Body", "person", "woman", "\U0001F469", emoji.Version{})
	}()

	func() {
		defer func() {
			if recover() == nil {
				t.Error("second Finalize did not panic")
			}
		}()
		c.Finalize()
	}()
}
