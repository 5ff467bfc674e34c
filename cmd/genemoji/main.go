// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// genemoji generates the flat package from the Unicode emoji-test.txt data
// file and the gemoji alias database: one variable per emoji concept, a
// grouped index mirroring the data file's sections, and a table of
// shortcode aliases.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	goversion "github.com/hashicorp/go-version"

	"golang.org/x/emoji"
	"golang.org/x/emoji/internal/catalog"
	"golang.org/x/emoji/internal/emojitest"
	"golang.org/x/emoji/internal/gemoji"
	"golang.org/x/emoji/internal/gen"
	"golang.org/x/emoji/internal/ident"
	"golang.org/x/emoji/internal/person"
	"golang.org/x/text/unicode/runenames"
)

// See the internal/gen package for flags.

func main() {
	gen.Init()

	cat := catalog.New(person.NewClassifier())
	fill(cat, gen.OpenEmojiTestFile())
	if err := cat.Finalize(); err != nil {
		log.Fatal(err)
	}

	if err := os.MkdirAll(gen.OutputDir(), 0777); err != nil {
		log.Fatalf("Could not create output directory: %v", err)
	}

	w := gen.NewCodeWriter()
	genTables(w, cat)
	w.WriteGoFile("tables.go", "flat")

	w = gen.NewCodeWriter()
	genGroups(w, cat)
	w.WriteGoFile("groups.go", "flat")

	w = gen.NewCodeWriter()
	genAliases(w, cat, gen.OpenGemojiFile())
	w.WriteGoFile("aliases.go", "flat")
}

// fill routes every fully-qualified and component line of the data file
// into the catalog. Lines of other qualification levels repeat fully
// qualified sequences with presentation selectors stripped and carry no
// emoji of their own.
func fill(cat *catalog.Catalog, r io.ReadCloser) {
	skipped := 0
	emojitest.Parse(r, func(p *emojitest.Parser) {
		switch p.Status() {
		case emojitest.FullyQualified, emojitest.Component:
		default:
			return
		}
		if err := cat.Add(p.Group(), p.Subgroup(), p.Name(), p.Grapheme(), p.Version()); err != nil {
			log.Print(err)
			skipped++
		}
	})
	if skipped > 0 {
		log.Printf("skipped %d data lines", skipped)
	}
}

// genTables writes one variable per emoji concept, in catalog order.
func genTables(w *gen.CodeWriter, cat *catalog.Catalog) {
	fmt.Fprintln(w, `import "golang.org/x/emoji"`)

	gen.WriteUnicodeVersion(w)

	for _, g := range cat.Groups() {
		for _, s := range g.Subgroups {
			for _, e := range s.Entries {
				if e.Plain != nil {
					w.WriteComment("%s", varDoc(e.ID, e.Plain.Name, e.Plain.Grapheme, nil))
					w.WriteTypedVar(e.ID, "emoji.Emoji", plainExpr(e.Plain))
					continue
				}
				d, err := e.Family.Declaration()
				if err != nil {
					log.Fatal(err)
				}
				w.WriteComment("%s", varDoc(e.ID, e.Family.Name(), e.Family.Graphemes(), d.Docs))
				w.WriteTypedVar(e.ID, d.Type, d.Value)
			}
		}
	}
}

// varDoc builds the doc comment of a generated variable: the descriptive
// name, the rendering, the character the sequence opens with, and for
// customizable emoji up to three accessor examples.
func varDoc(id, name, graphemes string, docs []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s is the %q emoji (%s).\n", id, name, graphemes)
	r, _ := utf8.DecodeRuneInString(graphemes)
	fmt.Fprintf(&b, "The sequence opens with U+%04X %s.", r, runenames.Name(r))

	var examples []string
	for _, d := range docs {
		if strings.HasPrefix(d, id+" ") {
			continue
		}
		examples = append(examples, "\t"+d)
		if len(examples) == 3 {
			break
		}
	}
	if len(examples) > 0 {
		b.WriteString("\n\nFor example:\n\n")
		b.WriteString(strings.Join(examples, "\n"))
	}
	return b.String()
}

func plainExpr(p *catalog.Plain) string {
	return fmt.Sprintf("emoji.Emoji{Name: %q, Since: %s, Grapheme: %s}",
		p.Name, versionExpr(p.Since), gen.QuoteGrapheme(p.Grapheme))
}

func versionExpr(v emoji.Version) string {
	if v == (emoji.Version{}) {
		return "emoji.Version{}"
	}
	return fmt.Sprintf("emoji.Version{Major: %d, Minor: %d}", v.Major, v.Minor)
}

// genGroups writes the grouped index of the generated variables.
func genGroups(w *gen.CodeWriter, cat *catalog.Catalog) {
	fmt.Fprintln(w, `import "golang.org/x/emoji"`)

	fmt.Fprintln(w, `
// A Group is one thematic section of the Unicode emoji ordering, such as
// "Smileys & Emotion".
type Group struct {
	Name      string
	Subgroups []Subgroup
}

// A Subgroup is one run of closely related emoji within a Group, such as
// "face-smiling". Customizable emoji are listed by their default variant.
type Subgroup struct {
	Name  string
	Emoji []emoji.Emoji
}`)

	var b strings.Builder
	b.WriteString("[]Group{\n")
	for _, g := range cat.Groups() {
		fmt.Fprintf(&b, "{Name: %q, Subgroups: []Subgroup{\n", g.Name)
		for _, s := range g.Subgroups {
			fmt.Fprintf(&b, "// %s: %s\n", s.Name, preview(s))
			fmt.Fprintf(&b, "{Name: %q, Emoji: []emoji.Emoji{\n", s.Name)
			for _, e := range s.Entries {
				for _, expr := range defaultExprs(e) {
					b.WriteString(expr)
					b.WriteString(",\n")
				}
			}
			b.WriteString("}},\n")
		}
		b.WriteString("}},\n")
	}
	b.WriteString("}")

	w.WriteComment("Groups lists every emoji of this package in the group and subgroup\nstructure of the Unicode emoji ordering.")
	w.WriteVar("Groups", b.String())
}

// preview renders the first graphemes of a subgroup.
func preview(s *catalog.Subgroup) string {
	var gs []string
	for _, e := range s.Entries {
		if e.Plain != nil {
			gs = append(gs, e.Plain.Grapheme)
		} else {
			gs = append(gs, e.Family.Graphemes())
		}
		if len(gs) == 3 {
			break
		}
	}
	if len(s.Entries) > len(gs) {
		gs = append(gs, "...")
	}
	return strings.Join(gs, " ")
}

// defaultExprs returns the expressions rendering an entry's default
// variants: the variable itself for a plain emoji, the default accessor
// paths for a customizable one.
func defaultExprs(e *catalog.Entry) []string {
	if e.Plain != nil {
		return []string{e.ID}
	}
	acc, err := e.Family.DefaultAccessors()
	if err != nil {
		log.Fatal(err)
	}
	exprs := make([]string, len(acc))
	for i, a := range acc {
		exprs[i] = a.Const
	}
	return exprs
}

// genAliases writes the alias table: the snake_case alias of every
// generated variable, extended with the gemoji shortcode list.
func genAliases(w *gen.CodeWriter, cat *catalog.Catalog, gem io.ReadCloser) {
	table := map[string]string{}      // alias to rendering expression
	byGrapheme := map[string]string{} // grapheme to rendering expression
	record := func(grapheme, expr string) {
		g := stripPresentation(grapheme)
		if _, ok := byGrapheme[g]; !ok {
			byGrapheme[g] = expr
		}
	}

	tied := 0
	for _, g := range cat.Groups() {
		for _, s := range g.Subgroups {
			for _, e := range s.Entries {
				if e.Plain != nil {
					table[ident.Alias(e.ID)] = e.ID
					record(e.Plain.Grapheme, e.ID)
					continue
				}
				acc, err := e.Family.Accessors()
				if err != nil {
					log.Fatal(err)
				}
				for _, a := range acc {
					if v, ok := e.Family.Variant(a.Key); ok {
						record(v.Grapheme, a.Const)
					}
				}
				def, err := e.Family.DefaultAccessors()
				if err != nil {
					log.Fatal(err)
				}
				if len(def) != 1 {
					tied++
					continue
				}
				table[ident.Alias(e.ID)] = def[0].Const
			}
		}
	}
	if tied > 0 {
		log.Printf("%d emoji with tied default variants have no alias", tied)
	}

	mergeGemoji(table, byGrapheme, gem)

	aliases := make([]string, 0, len(table))
	for a := range table {
		aliases = append(aliases, a)
	}
	sort.Strings(aliases)

	var b strings.Builder
	needEmoji := false
	b.WriteString("alias.Table{\n")
	for _, a := range aliases {
		expr := table[a]
		if strings.Contains(expr, "emoji.") {
			needEmoji = true
		}
		fmt.Fprintf(&b, "%q: %s,\n", a, expr)
	}
	b.WriteString("}")

	if needEmoji {
		fmt.Fprintln(w, `import (
	"golang.org/x/emoji"
	"golang.org/x/emoji/alias"
)`)
	} else {
		fmt.Fprintln(w, `import "golang.org/x/emoji/alias"`)
	}

	w.WriteComment("Aliases maps shortcode names, written between colons in running text,\nto emoji. Customizable emoji resolve to their default variant.")
	w.WriteVar("Aliases", b.String())
}

// mergeGemoji folds the gemoji alias list into table. Gemoji never
// overrides a generated alias. Entries beyond the pinned Unicode version
// and entries whose emoji has no generated constant are dropped.
func mergeGemoji(table, byGrapheme map[string]string, r io.ReadCloser) {
	defer r.Close()
	entries, err := gemoji.Parse(r)
	if err != nil {
		log.Fatal(err)
	}

	pinned := goversion.Must(goversion.NewVersion(gen.UnicodeVersion()))
	gated, unresolved := 0, 0
	for _, e := range entries {
		if v := e.Introduced(); v != nil && v.GreaterThan(pinned) {
			gated++
			continue
		}
		expr, ok := byGrapheme[stripPresentation(e.Emoji)]
		if !ok {
			unresolved++
			continue
		}
		for _, a := range e.Aliases {
			if _, ok := table[a]; !ok {
				table[a] = expr
			}
		}
	}
	if gated > 0 {
		log.Printf("gemoji: dropped %d entries beyond Unicode %s", gated, gen.UnicodeVersion())
	}
	if unresolved > 0 {
		log.Printf("gemoji: dropped %d entries without a matching constant", unresolved)
	}
}

// stripPresentation removes the emoji presentation selector so that
// sequences written with and without U+FE0F compare equal.
func stripPresentation(s string) string {
	return strings.ReplaceAll(s, "\ufe0f", "")
}
