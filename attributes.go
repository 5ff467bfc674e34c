// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emoji

// An Attribute is a value along one of the customization dimensions a
// customizable emoji may have: skin tone, gender or pair composition,
// family composition, or hair style. The interface is sealed; the only
// implementations are the types in this package.
type Attribute interface {
	// index returns the position of the value within its dimension.
	index() int
	// domain returns the number of values in the dimension.
	domain() int
}

// Tone is a skin tone, following the Fitzpatrick scale.
type Tone int

const (
	Light Tone = iota
	MediumLight
	Medium
	MediumDark
	Dark
)

// AllTones lists the skin tones in their canonical order.
var AllTones = [...]Tone{Light, MediumLight, Medium, MediumDark, Dark}

var toneNames = [...]string{
	"light skin tone",
	"medium-light skin tone",
	"medium skin tone",
	"medium-dark skin tone",
	"dark skin tone",
}

func (t Tone) index() int  { return int(t) }
func (t Tone) domain() int { return len(AllTones) }

// String returns the descriptive name of the tone, such as
// "medium-light skin tone".
func (t Tone) String() string { return toneNames[t] }

// A TonePair is an independent skin tone per person of a two-person emoji.
// The left tone belongs to the leftmost person of the rendered emoji.
type TonePair struct {
	Left, Right Tone
}

// SameTone returns the pair that applies t to both people.
func SameTone(t Tone) TonePair { return TonePair{t, t} }

func (p TonePair) index() int  { return p.Left.index()*len(AllTones) + p.Right.index() }
func (p TonePair) domain() int { return len(AllTones) * len(AllTones) }

func (p TonePair) String() string {
	if p.Left == p.Right {
		return p.Left.String()
	}
	return p.Left.String() + ", " + p.Right.String()
}

// A TonePairReduced is a skin tone pair of a two-person emoji whose
// rendering does not distinguish left from right. The pair (a, b) and
// its mirror (b, a) name the same emoji.
type TonePairReduced struct {
	Left, Right Tone
}

func (p TonePairReduced) ordered() (Tone, Tone) {
	if p.Left > p.Right {
		return p.Right, p.Left
	}
	return p.Left, p.Right
}

func (p TonePairReduced) index() int {
	l, r := p.ordered()
	// Row offsets of a triangular matrix: all pairs with a smaller
	// low tone precede those with this one.
	return len(AllTones)*l.index() - l.index()*(l.index()+1)/2 + r.index()
}

func (p TonePairReduced) domain() int {
	return len(AllTones) * (len(AllTones) + 1) / 2
}

func (p TonePairReduced) String() string {
	l, r := p.ordered()
	return TonePair{l, r}.String()
}

// Gender is the gender of a single person.
type Gender int

const (
	Male Gender = iota
	Female
)

// AllGenders lists the genders in their canonical order.
var AllGenders = [...]Gender{Male, Female}

var genderNames = [...]struct{ adult, child string }{
	{"man", "boy"},
	{"woman", "girl"},
}

func (g Gender) index() int  { return int(g) }
func (g Gender) domain() int { return len(AllGenders) }

// String returns the adult reading of the gender: "man" or "woman".
func (g Gender) String() string { return genderNames[g].adult }

// ChildName returns the child reading of the gender: "boy" or "girl".
func (g Gender) ChildName() string { return genderNames[g].child }

// Pair is the gender composition of a two-person emoji.
type Pair int

const (
	Males Pair = iota
	Mixed
	Females
)

// AllPairs lists the pair compositions in their canonical order.
var AllPairs = [...]Pair{Males, Mixed, Females}

var pairNames = [...]struct{ adult, child string }{
	{"men", "boys"},
	{"man & woman", "boy & girl"},
	{"women", "girls"},
}

func (p Pair) index() int  { return int(p) }
func (p Pair) domain() int { return len(AllPairs) }

// String returns the adult reading of the composition, such as "man & woman".
func (p Pair) String() string { return pairNames[p].adult }

// ChildName returns the child reading of the composition, such as
// "boy & girl".
func (p Pair) ChildName() string { return pairNames[p].child }

// OneOrTwo describes who appears in a person emoji: either one person of a
// given gender or two people of a given pair composition.
type OneOrTwo int

// One returns the OneOrTwo for a single person of gender g.
func One(g Gender) OneOrTwo { return OneOrTwo(g.index()) }

// Two returns the OneOrTwo for two people of composition p.
func Two(p Pair) OneOrTwo { return OneOrTwo(len(AllGenders) + p.index()) }

// AllOneOrTwo lists the five people compositions in their canonical order:
// single people first, then pairs.
var AllOneOrTwo = [...]OneOrTwo{
	One(Male), One(Female),
	Two(Males), Two(Mixed), Two(Females),
}

func (o OneOrTwo) index() int  { return int(o) }
func (o OneOrTwo) domain() int { return len(AllOneOrTwo) }

// IsPair reports whether o describes two people.
func (o OneOrTwo) IsPair() bool { return int(o) >= len(AllGenders) }

// Gender returns the gender of a single person and reports whether o
// describes one.
func (o OneOrTwo) Gender() (Gender, bool) {
	if o.IsPair() {
		return 0, false
	}
	return Gender(o), true
}

// Pair returns the composition of a two-person value and reports whether o
// describes one.
func (o OneOrTwo) Pair() (Pair, bool) {
	if !o.IsPair() {
		return 0, false
	}
	return Pair(int(o) - len(AllGenders)), true
}

// String returns the adult reading of the composition, such as "woman" or
// "men".
func (o OneOrTwo) String() string {
	if p, ok := o.Pair(); ok {
		return p.String()
	}
	return Gender(o).String()
}

// ChildName returns the child reading of the composition, such as "girl" or
// "boys".
func (o OneOrTwo) ChildName() string {
	if p, ok := o.Pair(); ok {
		return p.ChildName()
	}
	return Gender(o).ChildName()
}

// A Family is the composition of a family emoji: the people appearing as
// parents and the people appearing as children.
type Family struct {
	Parents, Children OneOrTwo
}

func (f Family) index() int  { return f.Parents.index()*len(AllOneOrTwo) + f.Children.index() }
func (f Family) domain() int { return len(AllOneOrTwo) * len(AllOneOrTwo) }

// String returns the descriptive name of the family composition, such as
// "man & woman with girl".
func (f Family) String() string {
	return f.Parents.String() + " with " + f.Children.ChildName()
}

// Hair is a hair style. Beard counts as a hair style in the Unicode data
// even though it is technically facial hair.
type Hair int

const (
	Beard Hair = iota
	Blond
	Red
	Curly
	White
	Bald
)

// AllHairs lists the hair styles in their canonical order.
var AllHairs = [...]Hair{Beard, Blond, Red, Curly, White, Bald}

var hairNames = [...]string{
	"beard",
	"blond hair",
	"red hair",
	"curly hair",
	"white hair",
	"no hair",
}

func (h Hair) index() int  { return int(h) }
func (h Hair) domain() int { return len(AllHairs) }

// String returns the descriptive name of the hair style, such as "red hair".
func (h Hair) String() string { return hairNames[h] }
