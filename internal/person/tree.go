// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package person

import (
	"fmt"
	"strings"

	"golang.org/x/emoji"
	"golang.org/x/emoji/internal/gen"
)

// A node is one level of a qualified family's accessor tree: either a
// container over one attribute dimension or a single concrete variant.
type node interface {
	// decl renders the node as generated source: the Go type of the
	// node, the expression constructing it, and one documentation line
	// per reachable variant. accessor is the explicit accessor path
	// leading to the node.
	decl(accessor string, variants map[Key]Variant) (typ, value string, docs []string, err error)

	// walk appends an Accessor per reachable variant.
	walk(constPath, pubPath string, out []Accessor) []Accessor
}

// A branch is one concrete sub-entry of a qualNode: the accessor
// arguments selecting it and the subtree below it.
type branch struct {
	constArg string
	pubArg   string
	n        node
}

// A qualNode is a container level covering one complete attribute set.
type qualNode struct {
	typeName string
	def      node // nil when the dimension has no default variant
	subs     []branch
}

func (n *qualNode) decl(accessor string, variants map[Key]Variant) (string, string, []string, error) {
	generic, ctor := "emoji.With", "emoji.NewWith"
	if n.def == nil {
		generic, ctor = "emoji.WithNoDef", "emoji.NewWithNoDef"
	}

	var (
		value   strings.Builder
		docs    []string
		subType string
	)
	fmt.Fprintf(&value, "%s[emoji.%s](", ctor, n.typeName)

	if n.def != nil {
		t, v, d, err := n.def.decl(accessor+".Default", variants)
		if err != nil {
			return "", "", nil, err
		}
		subType = t
		docs = append(docs, d...)
		value.WriteString(v)
		value.WriteString(",\n")
	}
	for _, b := range n.subs {
		t, v, d, err := b.n.decl(accessor+".Get("+b.pubArg+")", variants)
		if err != nil {
			return "", "", nil, err
		}
		if subType == "" {
			subType = t
		} else if t != subType {
			return "", "", nil, fmt.Errorf("person: %s: sibling types %s and %s differ", accessor, subType, t)
		}
		docs = append(docs, d...)
		value.WriteString(v)
		value.WriteString(",\n")
	}
	value.WriteString(")")

	typ := fmt.Sprintf("%s[emoji.%s, %s]", generic, n.typeName, subType)
	return typ, value.String(), docs, nil
}

func (n *qualNode) walk(constPath, pubPath string, out []Accessor) []Accessor {
	if n.def != nil {
		out = n.def.walk(constPath+".Default", pubPath+".Default", out)
	}
	for _, b := range n.subs {
		out = b.n.walk(constPath+".Get("+b.constArg+")", pubPath+".Get("+b.pubArg+")", out)
	}
	return out
}

// A leaf is a single concrete variant.
type leaf struct {
	key Key
}

func (l leaf) decl(accessor string, variants map[Key]Variant) (string, string, []string, error) {
	v, ok := variants[l.key]
	if !ok {
		return "", "", nil, fmt.Errorf("person: no variant [%v] behind %s", l.key, accessor)
	}
	value := fmt.Sprintf("emoji.Emoji{Name: %q, Since: %s, Grapheme: %s}",
		v.Name, versionExpr(v.Since), gen.QuoteGrapheme(v.Grapheme))
	return "emoji.Emoji", value, []string{trimDefaults(accessor) + " // " + v.Grapheme}, nil
}

func (l leaf) walk(constPath, pubPath string, out []Accessor) []Accessor {
	return append(out, Accessor{Const: constPath, Pub: trimDefaults(pubPath), Key: l.key})
}

// trimDefaults drops trailing default selections. A partial accessor path
// is itself a valid expression and renders the default variant below it.
func trimDefaults(path string) string {
	for strings.HasSuffix(path, ".Default") {
		path = strings.TrimSuffix(path, ".Default")
	}
	return path
}

func versionExpr(v emoji.Version) string {
	if v == (emoji.Version{}) {
		return "emoji.Version{}"
	}
	return fmt.Sprintf("emoji.Version{Major: %d, Minor: %d}", v.Major, v.Minor)
}

// A Declaration is the generated form of a qualified family: the Go type
// of its constant, the expression constructing it, and one documentation
// line per reachable variant.
type Declaration struct {
	Type  string
	Value string
	Docs  []string
}

// Declaration renders the family's declaration. It reports an error when
// the tree is structurally unsound, such as sibling subtrees of unequal
// types. Calling it on an unqualified family is a bug and panics.
func (f *Family) Declaration() (Declaration, error) {
	if f.tree == nil {
		panic("person: Declaration on unqualified family " + f.id)
	}
	typ, value, docs, err := f.tree.decl(f.id, f.variants)
	if err != nil {
		return Declaration{}, err
	}
	return Declaration{Type: typ, Value: value, Docs: docs}, nil
}

// An Accessor locates one concrete variant of a qualified family. Const
// reaches it with every selection explicit, naming default branches
// through .Default. Pub is the path a caller would write: branch
// arguments in their idiomatic spelling and trailing default selections
// left implicit.
type Accessor struct {
	Const string
	Pub   string
	Key   Key
}

// Accessors returns one Accessor per variant of a qualified family, in
// tree order, with paths rooted at the family identifier. Calling it on
// an unqualified family is a bug and panics.
func (f *Family) Accessors() ([]Accessor, error) {
	if f.tree == nil {
		panic("person: Accessors on unqualified family " + f.id)
	}
	acc := f.tree.walk(f.id, f.id, nil)
	for _, a := range acc {
		if _, ok := f.variants[a.Key]; !ok {
			return nil, fmt.Errorf("person: %s: no variant [%v] behind %s", f.id, a.Key, a.Const)
		}
	}
	return acc, nil
}

// DefaultAccessors returns the Accessors of the most generic variants,
// the same variants Defaults reports.
func (f *Family) DefaultAccessors() ([]Accessor, error) {
	acc, err := f.Accessors()
	if err != nil {
		return nil, err
	}
	want := map[Key]bool{}
	for _, k := range f.defaultKeys() {
		want[k] = true
	}
	var out []Accessor
	for _, a := range acc {
		if want[a.Key] {
			out = append(out, a)
		}
	}
	return out, nil
}
