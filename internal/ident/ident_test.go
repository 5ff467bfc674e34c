// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ident

import "testing"

func TestConstant(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"grinning face", "GrinningFace"},
		{"woman and man holding hands", "WomanAndManHoldingHands"},
		{"keycap: *", "KeycapAsterisk"},
		{"keycap: #", "KeycapHash"},
		{"keycap: 10", "Keycap10"},
		{"1st place medal", "FirstPlaceMedal"},
		{"2nd place medal", "SecondPlaceMedal"},
		{"3rd place medal", "ThirdPlaceMedal"},
		{"flag: U.S. Virgin Islands", "FlagUsVirginIslands"},
		{"flag: Curaçao", "FlagCuracao"},
		{"flag: Åland Islands", "FlagAlandIslands"},
		{"flag: São Tomé & Príncipe", "FlagSaoTomeAndPrincipe"},
		{"A button (blood type)", "AButtonBloodType"},
		{"woman’s clothes", "WomanSClothes"},
		{"pool 8 ball", "Pool8Ball"},
		{"ON! arrow", "OnArrow"},
		{"OK hand", "OkHand"},
		{"person: red hair", "PersonRedHair"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := Constant(tc.name); got != tc.want {
			t.Errorf("Constant(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestConstantIdempotent(t *testing.T) {
	names := []string{
		"woman and man holding hands",
		"keycap: 10",
		"pool 8 ball",
		"OK hand",
		"flag: São Tomé & Príncipe",
		"A button (blood type)",
		"woman’s clothes",
		"man astronaut with red hair and light skin tone",
	}
	for _, name := range names {
		id := Constant(name)
		if again := Constant(id); again != id {
			t.Errorf("Constant(Constant(%q)): %q != %q", name, again, id)
		}
	}
}

func TestConstantAdapted(t *testing.T) {
	// Identifier surgery splices phrases into CamelCase identifiers;
	// Constant restores canonical form.
	tests := []struct {
		adapted string
		want    string
	}{
		{"manFeedingBaby", "ManFeedingBaby"},
		{"WomanDancing with dark skin tone", "WomanDancingWithDarkSkinTone"},
		{"Kiss with light skin tone & medium skin tone", "KissWithLightSkinToneAndMediumSkinTone"},
	}
	for _, tc := range tests {
		if got := Constant(tc.adapted); got != tc.want {
			t.Errorf("Constant(%q) = %q, want %q", tc.adapted, got, tc.want)
		}
	}
}

func TestAlias(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"GrinningFace", "grinning_face"},
		{"WomanAndManHoldingHands", "woman_and_man_holding_hands"},
		{"Keycap10", "keycap_10"},
		{"OkHand", "ok_hand"},
		{"Pool8Ball", "pool_8_ball"},
		{"A", "a"},
	}
	for _, tc := range tests {
		if got := Alias(tc.id); got != tc.want {
			t.Errorf("Alias(%q) = %q, want %q", tc.id, got, tc.want)
		}
	}
}

func TestPlaceholder(t *testing.T) {
	tests := []struct {
		id       string
		stripped string
		ok       bool
	}{
		{"PersonAstronaut", "Astronaut", true},
		{"Person", "", true},
		{"PeopleHoldingHands", "HoldingHands", true},
		{"PersonFeedingBaby", "FeedingBaby", true},
		{"Astronaut", "Astronaut", false},
		{"PersonalTrainer", "PersonalTrainer", false},
		{"Spokesperson", "Spokesperson", false},
		{"Keycap10", "Keycap10", false},
	}
	for _, tc := range tests {
		got, ok := StripPlaceholder(tc.id)
		if got != tc.stripped || ok != tc.ok {
			t.Errorf("StripPlaceholder(%q) = %q, %v, want %q, %v", tc.id, got, ok, tc.stripped, tc.ok)
		}
		if has := HasPlaceholder(tc.id); has != tc.ok {
			t.Errorf("HasPlaceholder(%q) = %v, want %v", tc.id, has, tc.ok)
		}
	}
}

func TestReplacePlaceholder(t *testing.T) {
	tests := []struct {
		id   string
		repl string
		want string
		ok   bool
	}{
		{"PersonAstronaut", "man", "ManAstronaut", true},
		{"PeopleHoldingHands", "women", "WomenHoldingHands", true},
		{"Person", "man with boys", "ManWithBoys", true},
		{"Kiss", "men", "Kiss", false},
	}
	for _, tc := range tests {
		got, ok := ReplacePlaceholder(tc.id, tc.repl)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ReplacePlaceholder(%q, %q) = %q, %v, want %q, %v",
				tc.id, tc.repl, got, ok, tc.want, tc.ok)
		}
	}
}
