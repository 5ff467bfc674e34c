// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package person

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/emoji"
)

// A Match is a descriptive name broken into its person-related parts.
// Pre holds the activity of an "activity: descriptors" name, Post the
// trailing activity of a name that leads with its people. The remaining
// fields hold raw descriptor words: one or two adults, zero to two
// children, zero to two tone words, at most one hair word.
type Match struct {
	Pre      string
	Post     string
	Adults   []string
	Children []string
	Tones    []string
	Hair     string
}

// A Classifier decides whether a descriptive name denotes a person
// emoji. It holds its compiled patterns, so one Classifier can be built
// at startup and shared by every caller.
type Classifier struct {
	person *regexp.Regexp
	item   *regexp.Regexp
}

// NewClassifier compiles the two phrase grammars of person emoji names.
func NewClassifier() *Classifier {
	return &Classifier{
		// One or two adult words, an optional trailing activity, and an
		// optional descriptor list. "woman and man holding hands: light
		// skin tone, medium skin tone" carries all four parts.
		person: regexp.MustCompile(
			`^(person|people|man|men|woman|women)(?:(?:, | and )(person|man|woman))?( [^:]+)?(?:: (.+))?$`),
		// A single descriptor of a colon list.
		item: regexp.MustCompile(
			`^(?:(person|people|man|men|woman|women)|(child|children|boy|boys|girl|girls)|(light|medium-light|medium|medium-dark|dark) skin tone|(beard|bald)|(blond|red|curly|white) hair)$`),
	}
}

// Classify matches name against the person name grammars, trying the
// leading-people form first and the "activity: descriptors" form second.
// The second form only matches when every descriptor of the list parses,
// which keeps names such as "flag: Scotland" or "keycap: 10" out. If
// neither grammar matches, the name denotes a plain emoji.
func (c *Classifier) Classify(name string) (Match, bool) {
	if sub := c.person.FindStringSubmatch(name); sub != nil {
		m := Match{Post: strings.TrimPrefix(sub[3], " ")}
		m.Adults = append(m.Adults, sub[1])
		if sub[2] != "" {
			m.Adults = append(m.Adults, sub[2])
		}
		if c.gather(sub[4], &m) {
			return m, true
		}
	}

	activity, list, colon := strings.Cut(name, ": ")
	if colon && activity != "" && list != "" {
		m := Match{Pre: activity}
		if c.gather(list, &m) {
			return m, true
		}
	}

	return Match{}, false
}

// gather parses a ", "-separated descriptor list into m. It reports
// false when any descriptor does not parse or a descriptor class
// overflows its arity.
func (c *Classifier) gather(list string, m *Match) bool {
	if list == "" {
		return true
	}
	for _, item := range strings.Split(list, ", ") {
		sub := c.item.FindStringSubmatch(strings.ToLower(item))
		switch {
		case sub == nil:
			return false
		case sub[1] != "":
			m.Adults = append(m.Adults, sub[1])
		case sub[2] != "":
			m.Children = append(m.Children, sub[2])
		case sub[3] != "":
			m.Tones = append(m.Tones, sub[3])
		default:
			if m.Hair != "" {
				return false
			}
			if m.Hair = sub[4]; m.Hair == "" {
				m.Hair = sub[5]
			}
		}
	}
	return len(m.Adults) <= 2 && len(m.Children) <= 2 && len(m.Tones) <= 2
}

// Extract converts a Match into an Entry: the descriptor words become a
// typed attribute key, and the name becomes the family identity with the
// adult words replaced by the placeholder. The original name, grapheme,
// and version ride along unchanged as the variant payload.
//
// Word combinations the attribute model cannot hold, such as children
// without gendered adults, are reported as errors.
func Extract(m Match, name, grapheme string, since emoji.Version) (Entry, error) {
	var k Key

	adults, haveAdults, err := parseAdults(m.Adults)
	if err != nil {
		return Entry{}, fmt.Errorf("person: %q: %v", name, err)
	}
	if haveAdults {
		k = k.WithPeople(adults)
	}

	children, haveChildren, err := parseChildren(m.Children)
	if err != nil {
		return Entry{}, fmt.Errorf("person: %q: %v", name, err)
	}
	if haveChildren {
		if !haveAdults {
			return Entry{}, fmt.Errorf("person: %q: children without gendered adults", name)
		}
		k = k.WithChildren(children)
	}

	if len(m.Tones) > 0 {
		t, err := parseTone(m.Tones[0])
		if err != nil {
			return Entry{}, fmt.Errorf("person: %q: %v", name, err)
		}
		k = k.WithTone(t)
		if len(m.Tones) > 1 {
			s, err := parseTone(m.Tones[1])
			if err != nil {
				return Entry{}, fmt.Errorf("person: %q: %v", name, err)
			}
			// An explicit same-tone pair names the same emoji as the
			// single tone word, so it collapses onto that key.
			if s != t {
				k = k.WithSecondTone(s)
			}
		}
	}

	if m.Hair != "" {
		h, err := parseHair(m.Hair)
		if err != nil {
			return Entry{}, fmt.Errorf("person: %q: %v", name, err)
		}
		k = k.WithHair(h)
	}

	identity := m.Pre
	if identity == "" {
		identity = "person"
		if m.Post != "" {
			identity += " " + m.Post
		}
	}

	return Entry{
		Identity: identity,
		Key:      k,
		Variant:  Variant{Name: name, Since: since, Grapheme: grapheme},
	}, nil
}

func parseAdults(words []string) (emoji.OneOrTwo, bool, error) {
	switch strings.Join(words, " ") {
	case "", "person", "people", "person person":
		return 0, false, nil
	case "man":
		return emoji.One(emoji.Male), true, nil
	case "woman":
		return emoji.One(emoji.Female), true, nil
	case "men", "man man":
		return emoji.Two(emoji.Males), true, nil
	case "women", "woman woman":
		return emoji.Two(emoji.Females), true, nil
	case "man woman", "woman man":
		return emoji.Two(emoji.Mixed), true, nil
	}
	return 0, false, fmt.Errorf("unsupported adults %q", words)
}

func parseChildren(words []string) (emoji.OneOrTwo, bool, error) {
	switch strings.Join(words, " ") {
	case "", "child", "children", "child child":
		return 0, false, nil
	case "boy":
		return emoji.One(emoji.Male), true, nil
	case "girl":
		return emoji.One(emoji.Female), true, nil
	case "boys", "boy boy":
		return emoji.Two(emoji.Males), true, nil
	case "girls", "girl girl":
		return emoji.Two(emoji.Females), true, nil
	case "boy girl", "girl boy":
		return emoji.Two(emoji.Mixed), true, nil
	}
	return 0, false, fmt.Errorf("unsupported children %q", words)
}

func parseTone(word string) (emoji.Tone, error) {
	switch word {
	case "light":
		return emoji.Light, nil
	case "medium-light":
		return emoji.MediumLight, nil
	case "medium":
		return emoji.Medium, nil
	case "medium-dark":
		return emoji.MediumDark, nil
	case "dark":
		return emoji.Dark, nil
	}
	return 0, fmt.Errorf("unsupported skin tone %q", word)
}

func parseHair(word string) (emoji.Hair, error) {
	switch word {
	case "beard":
		return emoji.Beard, nil
	case "blond":
		return emoji.Blond, nil
	case "red":
		return emoji.Red, nil
	case "curly":
		return emoji.Curly, nil
	case "white":
		return emoji.White, nil
	case "bald":
		return emoji.Bald, nil
	}
	return 0, fmt.Errorf("unsupported hair %q", word)
}
