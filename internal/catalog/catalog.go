// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package catalog arranges the records of an emoji data file into its
// group and subgroup structure, folding person emoji variants into
// families along the way.
//
// Records stream in through Add. A record whose descriptive name denotes
// a person concept joins the family of its identity within the current
// subgroup; any other record becomes a plain emoji entry. Finalize then
// merges families with their standalone base emoji and with identity
// counterparts that spell out the generalized person word, validates
// every family, and fixes the catalog into the deterministic order the
// generated source uses.
package catalog

import (
	"fmt"
	"sort"

	"golang.org/x/emoji"
	"golang.org/x/emoji/internal/ident"
	"golang.org/x/emoji/internal/person"
)

// A Plain is an emoji without person attribute variants.
type Plain struct {
	Name     string // full descriptive name from the feed
	Grapheme string
	Since    emoji.Version
}

// An Entry is one output constant of a subgroup: a plain emoji or a
// family of person emoji variants. Exactly one of Plain and Family is
// set.
type Entry struct {
	ID     string
	Plain  *Plain
	Family *person.Family
}

// A Subgroup holds the entries below one "# subgroup:" header.
type Subgroup struct {
	Name    string
	Entries []*Entry
}

// A Group holds the subgroups below one "# group:" header.
type Group struct {
	Name      string
	Subgroups []*Subgroup
}

// A Catalog aggregates data file records. The zero value is not usable;
// see New.
type Catalog struct {
	classifier *person.Classifier
	groups     []*Group
	finalized  bool
}

// New returns an empty catalog that routes person records through c.
func New(c *person.Classifier) *Catalog {
	return &Catalog{classifier: c}
}

// Add routes one record into the subgroup it belongs to. The returned
// error reports a record that cannot be cataloged, such as a duplicate
// name or an unsupported attribute combination; the caller is free to
// skip the record and continue.
func (c *Catalog) Add(group, subgroup, name, grapheme string, since emoji.Version) error {
	if c.finalized {
		panic("catalog: Add after Finalize")
	}
	sg := c.group(group).subgroup(subgroup)

	if m, ok := c.classifier.Classify(name); ok {
		e, err := person.Extract(m, name, grapheme, since)
		if err != nil {
			return err
		}
		return sg.addPerson(e)
	}
	return sg.addPlain(name, grapheme, since)
}

// Groups returns the cataloged groups, sorted by name, with subgroups
// and entries likewise sorted. It must not be called before Finalize.
func (c *Catalog) Groups() []*Group {
	if !c.finalized {
		panic("catalog: Groups before Finalize")
	}
	return c.groups
}

// Finalize merges and validates every subgroup, sorts the catalog and
// locks it against further records. Merge collisions and families
// without a usable variant set are generator bugs or data regressions;
// both surface as errors here.
func (c *Catalog) Finalize() error {
	if c.finalized {
		panic("catalog: Finalize twice")
	}
	for _, g := range c.groups {
		for _, sg := range g.Subgroups {
			if err := sg.finalize(); err != nil {
				return err
			}
		}
	}

	sort.Slice(c.groups, func(i, j int) bool { return c.groups[i].Name < c.groups[j].Name })
	for _, g := range c.groups {
		sort.Slice(g.Subgroups, func(i, j int) bool { return g.Subgroups[i].Name < g.Subgroups[j].Name })
		for _, sg := range g.Subgroups {
			sort.Slice(sg.Entries, func(i, j int) bool { return sg.Entries[i].ID < sg.Entries[j].ID })
		}
	}
	c.finalized = true
	return nil
}

func (c *Catalog) group(name string) *Group {
	for _, g := range c.groups {
		if g.Name == name {
			return g
		}
	}
	g := &Group{Name: name}
	c.groups = append(c.groups, g)
	return g
}

func (g *Group) subgroup(name string) *Subgroup {
	for _, sg := range g.Subgroups {
		if sg.Name == name {
			return sg
		}
	}
	sg := &Subgroup{Name: name}
	g.Subgroups = append(g.Subgroups, sg)
	return sg
}

func (s *Subgroup) addPerson(e person.Entry) error {
	id := ident.Constant(e.Identity)
	for _, en := range s.Entries {
		if en.Family != nil && en.ID == id {
			return en.Family.Add(e.Key, e.Variant)
		}
	}
	f := person.NewFamily(e.Identity)
	if err := f.Add(e.Key, e.Variant); err != nil {
		return err
	}
	s.Entries = append(s.Entries, &Entry{ID: f.ID(), Family: f})
	return nil
}

func (s *Subgroup) addPlain(name, grapheme string, since emoji.Version) error {
	id := ident.Constant(name)
	for _, en := range s.Entries {
		if en.Plain != nil && en.ID == id {
			return fmt.Errorf("catalog: duplicate emoji %s (%q)", id, name)
		}
	}
	s.Entries = append(s.Entries, &Entry{
		ID:    id,
		Plain: &Plain{Name: name, Grapheme: grapheme, Since: since},
	})
	return nil
}

// finalize runs the merge steps over the subgroup and replaces every
// family with its finalized output families.
func (s *Subgroup) finalize() error {
	if err := s.mergeBases(); err != nil {
		return err
	}
	if err := s.mergeIdentities(); err != nil {
		return err
	}

	var out []*Entry
	seen := map[string]bool{}
	for _, en := range s.Entries {
		if en.Family == nil {
			out = append(out, en)
			continue
		}
		fams, err := en.Family.Finalize()
		if err != nil {
			return err
		}
		for _, f := range fams {
			out = append(out, &Entry{ID: f.ID(), Family: f})
		}
	}
	for _, en := range out {
		if seen[en.ID] {
			return fmt.Errorf("catalog: %s: constant %s generated twice", s.Name, en.ID)
		}
		seen[en.ID] = true
	}
	s.Entries = out
	return nil
}

// mergeBases folds every plain emoji that is the standalone base of a
// family into that family as its generic variant. The base matches the
// family identifier either exactly, as in "astronaut" next to the
// toned astronaut variants, or with the family's person word stripped.
func (s *Subgroup) mergeBases() error {
	folded := map[*Entry]bool{}
	for _, en := range s.Entries {
		if en.Family == nil {
			continue
		}
		pe := s.findPlain(en.ID, folded)
		if pe == nil {
			if stripped, ok := ident.StripPlaceholder(en.ID); ok {
				pe = s.findPlain(stripped, folded)
			}
		}
		if pe == nil {
			continue
		}
		v := person.Variant{Name: pe.Plain.Name, Since: pe.Plain.Since, Grapheme: pe.Plain.Grapheme}
		if err := en.Family.Add(person.Key{}, v); err != nil {
			return err
		}
		folded[pe] = true
	}
	s.drop(folded)
	return nil
}

// mergeIdentities merges every family whose identifier spells out the
// generalized person word into the family named without it, reuniting a
// gender-neutral concept with its gendered counterparts. The identifier
// without the word survives.
func (s *Subgroup) mergeIdentities() error {
	merged := map[*Entry]bool{}
	for _, en := range s.Entries {
		if en.Family == nil || merged[en] {
			continue
		}
		stripped, ok := ident.StripPlaceholder(en.ID)
		if !ok {
			continue
		}
		for _, target := range s.Entries {
			if target.Family == nil || target.ID != stripped || merged[target] {
				continue
			}
			if err := target.Family.Absorb(en.Family); err != nil {
				return err
			}
			merged[en] = true
			break
		}
	}
	s.drop(merged)
	return nil
}

func (s *Subgroup) findPlain(id string, skip map[*Entry]bool) *Entry {
	for _, en := range s.Entries {
		if en.Plain != nil && en.ID == id && !skip[en] {
			return en
		}
	}
	return nil
}

func (s *Subgroup) drop(gone map[*Entry]bool) {
	if len(gone) == 0 {
		return
	}
	kept := s.Entries[:0]
	for _, en := range s.Entries {
		if !gone[en] {
			kept = append(kept, en)
		}
	}
	s.Entries = kept
}
