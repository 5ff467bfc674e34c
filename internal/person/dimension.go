// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package person

import (
	"fmt"

	"golang.org/x/emoji"
	"golang.org/x/emoji/internal/ident"
)

// A selector addresses a subset of a family's keys. Each slot holds 0 to
// select any value of its dimension, 1 to select only keys with the
// dimension absent, or 1+c to select exactly the keys whose slot code is
// c. Like Key, byte comparison of the slots yields the natural order.
type selector struct {
	hair   uint8
	people uint8
	tone   uint8
}

// selectorOf returns the selector matching exactly k.
func selectorOf(k Key) selector {
	return selector{hair: k.hair + 1, people: k.people + 1, tone: k.tone + 1}
}

func (s selector) selects(k Key) bool {
	return (s.hair == 0 || s.hair == k.hair+1) &&
		(s.people == 0 || s.people == k.people+1) &&
		(s.tone == 0 || s.tone == k.tone+1)
}

func (s selector) less(o selector) bool {
	if s.hair != o.hair {
		return s.hair < o.hair
	}
	if s.people != o.people {
		return s.people < o.people
	}
	return s.tone < o.tone
}

// slotParts unpacks a two-part slot code into its primary value and
// optional secondary value.
func slotParts(c uint8) (primary, secondary uint8, hasSecondary bool) {
	p, s := (c-1)/6, (c-1)%6
	if s == 0 {
		return p, 0, false
	}
	return p, s - 1, true
}

// slotCode packs a primary value and an optional secondary value into a
// two-part slot code.
func slotCode(primary, secondary uint8, hasSecondary bool) uint8 {
	c := 1 + 6*primary
	if hasSecondary {
		c += 1 + secondary
	}
	return c
}

// A dimension describes one attribute level of the qualification
// recursion: how to read and write its slot on keys and selectors, how
// many concrete slot codes it has, and which sets of codes count as
// complete. Finalize walks the dimensions list in order, outermost first.
type dimension struct {
	codes  uint8 // concrete slot codes run 1..codes
	keySet func(Key, uint8) Key
	selGet func(selector) uint8
	selSet func(selector, uint8) selector
	sets   []qualifierSet
}

// A qualifierSet is one recognized complete set of slot codes for a
// dimension. A bucket whose concrete codes exactly cover members
// collapses into a container tagged typeName; constArg and pubArg render
// the accessor argument selecting each code, with constArg spelling the
// value fully and pubArg preferring the form a caller would write.
// normalize, when present, rewrites matched codes to their canonical form
// before variants are ordered: a lone primary tone stands for the same
// tone applied to both people.
type qualifierSet struct {
	members   []uint8
	typeName  string
	constArg  func(uint8) string
	pubArg    func(uint8) string
	normalize func(uint8) uint8
}

var dimensions = []dimension{
	{
		codes:  6,
		keySet: func(k Key, c uint8) Key { k.hair = c; return k },
		selGet: func(s selector) uint8 { return s.hair },
		selSet: func(s selector, c uint8) selector { s.hair = c; return s },
		sets:   hairSets,
	},
	{
		codes:  30,
		keySet: func(k Key, c uint8) Key { k.people = c; return k },
		selGet: func(s selector) uint8 { return s.people },
		selSet: func(s selector, c uint8) selector { s.people = c; return s },
		sets:   peopleSets,
	},
	{
		codes:  30,
		keySet: func(k Key, c uint8) Key { k.tone = c; return k },
		selGet: func(s selector) uint8 { return s.tone },
		selSet: func(s selector, c uint8) selector { s.tone = c; return s },
		sets:   toneSets,
	},
}

// Constant names in the emoji package, by value order.
var (
	toneConsts   = [...]string{"Light", "MediumLight", "Medium", "MediumDark", "Dark"}
	genderConsts = [...]string{"Male", "Female"}
	pairConsts   = [...]string{"Males", "Mixed", "Females"}
	hairConsts   = [...]string{"Beard", "Blond", "Red", "Curly", "White", "Bald"}
)

func toneExpr(t uint8) string { return "emoji." + toneConsts[t] }

func oneOrTwoExpr(o uint8) string {
	if int(o) < len(genderConsts) {
		return "emoji.One(emoji." + genderConsts[o] + ")"
	}
	return "emoji.Two(emoji." + pairConsts[int(o)-len(genderConsts)] + ")"
}

// The recognized tone sets, most complete first: every ordered pair, then
// unordered pairs, then single tones. The feed writes the diagonal of a
// pair as a lone tone ("kiss: light skin tone"), so the pair sets list the
// diagonal as a lone code and normalize it after matching.
var toneSets = []qualifierSet{
	{
		members:   tonePairMembers(),
		typeName:  "TonePair",
		normalize: normalizeLoneTone,
		constArg:  tonePairArg,
		pubArg: func(c uint8) string {
			if l, r, _ := slotParts(c); l == r {
				return "emoji.SameTone(" + toneExpr(l) + ")"
			}
			return tonePairArg(c)
		},
	},
	{
		members:   reducedTonePairMembers(),
		typeName:  "TonePairReduced",
		normalize: normalizeLoneTone,
		constArg:  reducedTonePairArg,
		pubArg:    reducedTonePairArg,
	},
	{
		members:  loneToneMembers(),
		typeName: "Tone",
		constArg: loneToneArg,
		pubArg:   loneToneArg,
	},
}

func tonePairMembers() []uint8 {
	var m []uint8
	for t := uint8(0); t < 5; t++ {
		for s := uint8(0); s < 5; s++ {
			m = append(m, slotCode(t, s, s != t))
		}
	}
	return m
}

func reducedTonePairMembers() []uint8 {
	var m []uint8
	for t := uint8(0); t < 5; t++ {
		m = append(m, slotCode(t, 0, false))
		for s := t + 1; s < 5; s++ {
			m = append(m, slotCode(t, s, true))
		}
	}
	return m
}

func loneToneMembers() []uint8 {
	var m []uint8
	for t := uint8(0); t < 5; t++ {
		m = append(m, slotCode(t, 0, false))
	}
	return m
}

func normalizeLoneTone(c uint8) uint8 {
	if t, _, ok := slotParts(c); !ok {
		return slotCode(t, t, true)
	}
	return c
}

func tonePairArg(c uint8) string {
	l, r, _ := slotParts(c)
	return fmt.Sprintf("emoji.TonePair{Left: %s, Right: %s}", toneExpr(l), toneExpr(r))
}

func reducedTonePairArg(c uint8) string {
	l, r, _ := slotParts(c)
	return fmt.Sprintf("emoji.TonePairReduced{Left: %s, Right: %s}", toneExpr(l), toneExpr(r))
}

func loneToneArg(c uint8) string {
	t, _, _ := slotParts(c)
	return toneExpr(t)
}

// The recognized people sets, most complete first: the full parents by
// children cross, every one-or-two composition, pairs only, single
// genders only, and same-gender couples addressed by a single gender.
var peopleSets = []qualifierSet{
	{
		members:  familyMembers(),
		typeName: "Family",
		constArg: familyArg,
		pubArg:   familyArg,
	},
	{
		members:  oneOrTwoMembers(0, 5),
		typeName: "OneOrTwo",
		constArg: oneOrTwoArg,
		pubArg:   oneOrTwoArg,
	},
	{
		members:  oneOrTwoMembers(2, 5),
		typeName: "Pair",
		constArg: func(c uint8) string { p, _, _ := slotParts(c); return "emoji." + pairConsts[p-2] },
		pubArg:   func(c uint8) string { p, _, _ := slotParts(c); return "emoji." + pairConsts[p-2] },
	},
	{
		members:  oneOrTwoMembers(0, 2),
		typeName: "Gender",
		constArg: func(c uint8) string { p, _, _ := slotParts(c); return "emoji." + genderConsts[p] },
		pubArg:   func(c uint8) string { p, _, _ := slotParts(c); return "emoji." + genderConsts[p] },
	},
	{
		members:  []uint8{slotCode(2, 0, false), slotCode(4, 0, false)},
		typeName: "Gender",
		constArg: coupleGenderArg,
		pubArg:   coupleGenderArg,
	},
}

func familyMembers() []uint8 {
	var m []uint8
	for p := uint8(0); p < 5; p++ {
		for c := uint8(0); c < 5; c++ {
			m = append(m, slotCode(p, c, true))
		}
	}
	return m
}

// oneOrTwoMembers returns the lone codes for one-or-two values in [lo, hi).
func oneOrTwoMembers(lo, hi uint8) []uint8 {
	var m []uint8
	for o := lo; o < hi; o++ {
		m = append(m, slotCode(o, 0, false))
	}
	return m
}

func familyArg(c uint8) string {
	p, ch, _ := slotParts(c)
	return fmt.Sprintf("emoji.Family{Parents: %s, Children: %s}", oneOrTwoExpr(p), oneOrTwoExpr(ch))
}

func oneOrTwoArg(c uint8) string {
	p, _, _ := slotParts(c)
	return oneOrTwoExpr(p)
}

func coupleGenderArg(c uint8) string {
	if p, _, _ := slotParts(c); p == 2 {
		return "emoji.Male"
	}
	return "emoji.Female"
}

// The single recognized hair set: all six styles.
var hairSets = []qualifierSet{
	{
		members:  []uint8{1, 2, 3, 4, 5, 6},
		typeName: "Hair",
		constArg: func(c uint8) string { return "emoji." + hairConsts[c-1] },
		pubArg:   func(c uint8) string { return "emoji." + hairConsts[c-1] },
	},
}

// adaptIdentifier disambiguates the identifier of a family split along one
// or more dimensions by working the selector's concrete values into it.
// The people description substitutes for the generalized person word when
// the identifier contains one; everything else is appended.
func adaptIdentifier(id string, sel selector) string {
	with := false
	connector := func() string {
		if with {
			return " and "
		}
		with = true
		return " with "
	}

	if p, c, hasC := slotParts(sel.people - 1); sel.people >= 2 {
		desc := emoji.OneOrTwo(p).String()
		if hasC {
			desc += " with " + emoji.OneOrTwo(c).ChildName()
		}
		if r, ok := ident.ReplacePlaceholder(id, desc); ok {
			id = r
		} else {
			id += connector() + desc
		}
	}
	if sel.hair >= 2 {
		id += connector() + emoji.Hair(sel.hair-2).String()
	}
	if t, s, hasS := slotParts(sel.tone - 1); sel.tone >= 2 {
		id += connector() + emoji.Tone(t).String()
		if hasS {
			id += " & " + emoji.Tone(s).String()
		}
	}
	return ident.Constant(id)
}
