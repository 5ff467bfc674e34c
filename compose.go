// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emoji

import "fmt"

// With is a customizable emoji: a default variant plus one variant per value
// of the attribute dimension A. Dimensions nest, so a two-dimensional emoji
// such as a gendered, tonable profession has type
// With[Gender, With[Tone, Emoji]].
//
// The zero value is not meaningful; values are constructed by generated code
// through NewWith.
type With[A Attribute, T any] struct {
	// Default is the variant used when no value of A is selected.
	Default T

	variants []T
}

// NewWith returns a customizable emoji with the given default and one
// variant per value of A, in the dimension's canonical order. It panics if
// the number of variants does not cover the dimension exactly.
func NewWith[A Attribute, T any](def T, variants ...T) With[A, T] {
	var a A
	if len(variants) != a.domain() {
		panic(fmt.Sprintf("emoji: %d variants for a dimension of %d", len(variants), a.domain()))
	}
	return With[A, T]{Default: def, variants: variants}
}

// Get returns the variant for the attribute value a.
func (w With[A, T]) Get(a A) T {
	return w.variants[a.index()]
}

// String renders the default variant.
func (w With[A, T]) String() string {
	return fmt.Sprint(w.Default)
}

// WithNoDef is a customizable emoji without a neutral default: every use
// must select a value of the attribute dimension A.
//
// The zero value is not meaningful; values are constructed by generated code
// through NewWithNoDef.
type WithNoDef[A Attribute, T any] struct {
	variants []T
}

// NewWithNoDef returns a customizable emoji with one variant per value of A,
// in the dimension's canonical order. It panics if the number of variants
// does not cover the dimension exactly.
func NewWithNoDef[A Attribute, T any](variants ...T) WithNoDef[A, T] {
	var a A
	if len(variants) != a.domain() {
		panic(fmt.Sprintf("emoji: %d variants for a dimension of %d", len(variants), a.domain()))
	}
	return WithNoDef[A, T]{variants: variants}
}

// Get returns the variant for the attribute value a.
func (w WithNoDef[A, T]) Get(a A) T {
	return w.variants[a.index()]
}
