// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:generate go run golang.org/x/emoji/cmd/genemoji

// Package emoji provides the types shared by the generated emoji constant
// tables and the tools to compose emoji at runtime.
//
// The constants themselves live in the generated flat package, one exported
// variable per emoji concept. A concept that Unicode defines in several
// variants, such as a skin tone for each person shown or a gendered
// rendering, is grouped into a single customizable value whose variants are
// reached through Get:
//
//	flat.WavingHand.Get(emoji.Medium)        // 👋🏽
//	flat.PersonHoldingHands.Get(emoji.Mixed) // 👫
//	flat.Person.Get(emoji.Red)               // 🧑‍🦰
//
// Tables are generated from the Unicode emoji-test.txt data file by
// cmd/genemoji; see that command for regeneration.
package emoji // import "golang.org/x/emoji"
