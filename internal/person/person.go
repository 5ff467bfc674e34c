// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package person implements the variant engine for person emoji.
//
// Person emoji are semantically one concept rendered in many variants that
// differ by skin tone, people composition, and hair style. The feed lists
// every variant as an independent line. This package classifies the lines
// (Classifier, Extract), gathers the variants of one concept into a Family
// keyed by attribute combination, and decides through Finalize which
// dimensions form complete, independently selectable sets. A consistent
// family collapses into a single accessor tree over the composition
// containers of golang.org/x/emoji; an inconsistent one is split into
// several independent families so that no accessor is generated for a
// combination the feed does not define.
package person

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/emoji"
	"golang.org/x/emoji/internal/ident"
)

// A Key identifies one variant within a family by its combination of
// attribute values. The zero Key is the fully generic variant.
//
// Each dimension occupies one slot; a zero slot means the dimension is
// absent. The people and tone slots carry a primary value and an optional
// secondary value (the children of a family emoji, the second tone of a
// two-person pair) packed as 1 + 6*primary + secondary, with secondary
// zero when there is none. The packing preserves the natural value order
// under byte comparison, which keeps every sort in this package aligned
// with the variant order of the runtime containers.
type Key struct {
	hair   uint8
	people uint8
	tone   uint8
}

// WithHair returns k with the hair dimension set to h.
func (k Key) WithHair(h emoji.Hair) Key {
	k.hair = 1 + uint8(h)
	return k
}

// WithPeople returns k with the people dimension set to o and no children.
func (k Key) WithPeople(o emoji.OneOrTwo) Key {
	k.people = 1 + 6*uint8(o)
	return k
}

// WithChildren returns k with a children value added to the people
// dimension, which must already be set.
func (k Key) WithChildren(c emoji.OneOrTwo) Key {
	if k.people == 0 {
		panic("person: children on a key without people")
	}
	k.people = k.people - (k.people-1)%6 + 1 + uint8(c)
	return k
}

// WithTone returns k with the tone dimension set to t and no second tone.
func (k Key) WithTone(t emoji.Tone) Key {
	k.tone = 1 + 6*uint8(t)
	return k
}

// WithSecondTone returns k with a second tone added to the tone dimension,
// which must already be set.
func (k Key) WithSecondTone(t emoji.Tone) Key {
	if k.tone == 0 {
		panic("person: second tone on a key without a tone")
	}
	k.tone = k.tone - (k.tone-1)%6 + 1 + uint8(t)
	return k
}

// Hair returns the hair value and whether the dimension is set.
func (k Key) Hair() (emoji.Hair, bool) {
	if k.hair == 0 {
		return 0, false
	}
	return emoji.Hair(k.hair - 1), true
}

// People returns the primary people value and whether the dimension is set.
func (k Key) People() (emoji.OneOrTwo, bool) {
	if k.people == 0 {
		return 0, false
	}
	return emoji.OneOrTwo((k.people - 1) / 6), true
}

// Children returns the children value and whether one is set.
func (k Key) Children() (emoji.OneOrTwo, bool) {
	if k.people == 0 || (k.people-1)%6 == 0 {
		return 0, false
	}
	return emoji.OneOrTwo((k.people-1)%6 - 1), true
}

// Tone returns the primary tone and whether the dimension is set.
func (k Key) Tone() (emoji.Tone, bool) {
	if k.tone == 0 {
		return 0, false
	}
	return emoji.Tone((k.tone - 1) / 6), true
}

// SecondTone returns the second tone and whether one is set.
func (k Key) SecondTone() (emoji.Tone, bool) {
	if k.tone == 0 || (k.tone-1)%6 == 0 {
		return 0, false
	}
	return emoji.Tone((k.tone-1)%6 - 1), true
}

// genericness scores how generic a key is: points are awarded per absent
// slot, weighted so that an absent tone outranks absent people, which
// outrank absent hair. The fully generic key scores highest, 31.
func (k Key) genericness() int {
	n := 0
	if k.hair == 0 {
		n++
	}
	switch {
	case k.people == 0:
		n += 4 + 2
	case (k.people-1)%6 == 0:
		n += 2
	}
	switch {
	case k.tone == 0:
		n += 16 + 8
	case (k.tone-1)%6 == 0:
		n += 8
	}
	return n
}

func (k Key) less(o Key) bool {
	if k.hair != o.hair {
		return k.hair < o.hair
	}
	if k.people != o.people {
		return k.people < o.people
	}
	return k.tone < o.tone
}

// String renders the key for diagnostics.
func (k Key) String() string {
	var parts []string
	if p, ok := k.People(); ok {
		s := p.String()
		if c, ok := k.Children(); ok {
			s += " with " + c.ChildName()
		}
		parts = append(parts, s)
	}
	if t, ok := k.Tone(); ok {
		s := t.String()
		if u, ok := k.SecondTone(); ok {
			s += " & " + u.String()
		}
		parts = append(parts, s)
	}
	if h, ok := k.Hair(); ok {
		parts = append(parts, h.String())
	}
	if len(parts) == 0 {
		return "generic"
	}
	return strings.Join(parts, ", ")
}

// A Variant is one concrete rendering of a family member.
type Variant struct {
	Name     string // full descriptive name from the feed
	Since    emoji.Version
	Grapheme string
}

// An Entry is one classified feed line: the identity of the family it
// belongs to, its attribute key within that family, and its rendering.
type Entry struct {
	Identity string // descriptive name with the people words generalized
	Key      Key
	Variant  Variant
}

// A Family is the set of variants of one person emoji concept, keyed by
// attribute combination. Families are filled through Add and Absorb and
// turned into one or more qualified families by Finalize. Only a qualified
// family can answer Declaration and Accessors.
type Family struct {
	id       string
	name     string
	variants map[Key]Variant
	tree     node
}

// NewFamily returns an empty family named by an identity. The exported
// identifier is derived from the name.
func NewFamily(name string) *Family {
	return &Family{
		id:       ident.Constant(name),
		name:     name,
		variants: map[Key]Variant{},
	}
}

// ID returns the family's exported identifier.
func (f *Family) ID() string { return f.id }

// Name returns the family's descriptive name.
func (f *Family) Name() string { return f.name }

// Len returns the number of variants.
func (f *Family) Len() int { return len(f.variants) }

// Variant returns the variant stored under k.
func (f *Family) Variant(k Key) (Variant, bool) {
	v, ok := f.variants[k]
	return v, ok
}

// Keys returns the attribute keys of all variants, sorted.
func (f *Family) Keys() []Key {
	keys := make([]Key, 0, len(f.variants))
	for k := range f.variants {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].less(keys[j]) })
	return keys
}

// Add inserts one variant. Inserting a key that is already present is an
// error: the feed never describes the same combination of one concept
// twice, so a duplicate means two distinct concepts were conflated.
func (f *Family) Add(k Key, v Variant) error {
	if prev, ok := f.variants[k]; ok {
		return fmt.Errorf("person: %s: duplicate variant [%v]: %q and %q", f.id, k, prev.Name, v.Name)
	}
	f.variants[k] = v
	return nil
}

// Absorb moves every variant of g into f, leaving g empty.
func (f *Family) Absorb(g *Family) error {
	for _, k := range g.Keys() {
		if err := f.Add(k, g.variants[k]); err != nil {
			return err
		}
	}
	g.variants = map[Key]Variant{}
	return nil
}

// defaultKeys returns the keys of the most generic variants, sorted.
func (f *Family) defaultKeys() []Key {
	var keys []Key
	best := -1
	for k := range f.variants {
		switch n := k.genericness(); {
		case n > best:
			best = n
			keys = append(keys[:0], k)
		case n == best:
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].less(keys[j]) })
	return keys
}

// Defaults returns the most generic variants, those rendered when no
// attribute is selected. There is usually exactly one; a family whose top
// genericness level is tied lists all its holders.
func (f *Family) Defaults() []Variant {
	keys := f.defaultKeys()
	vs := make([]Variant, len(keys))
	for i, k := range keys {
		vs[i] = f.variants[k]
	}
	return vs
}

// DefaultGrapheme returns the grapheme of the single most generic variant,
// or false when several variants are equally generic.
func (f *Family) DefaultGrapheme() (string, bool) {
	ds := f.Defaults()
	if len(ds) != 1 {
		return "", false
	}
	return ds[0].Grapheme, true
}

// Graphemes returns the default variants' graphemes concatenated.
func (f *Family) Graphemes() string {
	var b strings.Builder
	for _, v := range f.Defaults() {
		b.WriteString(v.Grapheme)
	}
	return b.String()
}

// Qualified reports whether f has been produced by Finalize and carries an
// accessor tree.
func (f *Family) Qualified() bool { return f.tree != nil }
