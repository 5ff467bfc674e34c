// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package person

import (
	"fmt"
	"sort"
)

// qualified pairs a selector with the subtree covering the keys it
// selects.
type qualified struct {
	sel selector
	n   node
}

// Finalize checks the consistency of the family's attribute combinations
// and converts it into one or more qualified families. A family whose
// combinations form complete sets along every dimension yields a single
// family carrying an accessor tree. Otherwise the irregular combinations
// are separated into families of their own, each with the distinguishing
// attribute values worked into its identifier, so that every emitted
// accessor reaches a variant the feed defines.
func (f *Family) Finalize() ([]*Family, error) {
	if len(f.variants) == 0 {
		return nil, fmt.Errorf("person: %s: missing default variant", f.id)
	}

	out := []*Family{}
	for _, q := range f.qualifyFrom(0, Key{}) {
		nf := &Family{
			id:       adaptIdentifier(f.id, q.sel),
			name:     f.name,
			variants: map[Key]Variant{},
			tree:     q.n,
		}
		for k, v := range f.variants {
			if q.sel.selects(k) {
				nf.variants[k] = v
			}
		}
		out = append(out, nf)
	}
	return out, nil
}

// qualifyFrom enumerates every key that extends k across the dimensions
// from depth on, collects the variants that exist, and folds them into
// qualified groups dimension by dimension on the way back up.
func (f *Family) qualifyFrom(depth int, k Key) []qualified {
	if depth == len(dimensions) {
		if _, ok := f.variants[k]; !ok {
			return nil
		}
		return []qualified{{sel: selectorOf(k), n: leaf{key: k}}}
	}
	d := &dimensions[depth]
	var subs []qualified
	for c := uint8(0); c <= d.codes; c++ {
		subs = append(subs, f.qualifyFrom(depth+1, d.keySet(k, c))...)
	}
	return d.qualify(subs)
}

// qualify buckets groups by their selector with this dimension wildcarded
// and validates each bucket against the dimension's recognized sets.
func (d *dimension) qualify(subs []qualified) []qualified {
	buckets := map[selector]map[selector]node{}
	for _, q := range subs {
		gen := d.selSet(q.sel, 0)
		b := buckets[gen]
		if b == nil {
			b = map[selector]node{}
			buckets[gen] = b
		}
		b[q.sel] = q.n
	}

	gens := make([]selector, 0, len(buckets))
	for gen := range buckets {
		gens = append(gens, gen)
	}
	sort.Slice(gens, func(i, j int) bool { return gens[i].less(gens[j]) })

	var out []qualified
	for _, gen := range gens {
		out = append(out, d.validate(gen, buckets[gen])...)
	}
	return out
}

// validate tries the dimension's qualifier sets in priority order. The
// first set whose codes exactly cover the bucket's concrete members wins:
// the bucket collapses into a single node, with the dimension-absent
// member, if any, as the node's default branch. A bucket covered by no
// set is handed back member by member, which splits the family when the
// recursion unwinds.
func (d *dimension) validate(gen selector, bucket map[selector]node) []qualified {
	concrete := 0
	for s := range bucket {
		if d.selGet(s) >= 2 {
			concrete++
		}
	}

sets:
	for _, qs := range d.sets {
		if len(qs.members) != concrete {
			continue
		}
		for _, m := range qs.members {
			if _, ok := bucket[d.selSet(gen, m+1)]; !ok {
				continue sets
			}
		}

		n := &qualNode{typeName: qs.typeName}
		if def, ok := bucket[d.selSet(gen, 1)]; ok {
			n.def = def
		}
		type member struct {
			code uint8
			n    node
		}
		ms := make([]member, 0, concrete)
		for s, sub := range bucket {
			c := d.selGet(s)
			if c < 2 {
				continue
			}
			code := c - 1
			if qs.normalize != nil {
				code = qs.normalize(code)
			}
			ms = append(ms, member{code: code, n: sub})
		}
		sort.Slice(ms, func(i, j int) bool { return ms[i].code < ms[j].code })
		for _, m := range ms {
			n.subs = append(n.subs, branch{
				constArg: qs.constArg(m.code),
				pubArg:   qs.pubArg(m.code),
				n:        m.n,
			})
		}
		return []qualified{{sel: gen, n: n}}
	}

	out := make([]qualified, 0, len(bucket))
	for s, n := range bucket {
		out = append(out, qualified{sel: s, n: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].sel.less(out[j].sel) })
	return out
}
