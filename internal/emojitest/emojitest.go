// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package emojitest provides a parser for the Unicode emoji-test.txt data
// file format.
//
// The file lists one emoji sequence per line together with a qualification
// status and a trailing comment carrying the rendered emoji, the release
// that introduced it, and its descriptive name:
//
//	1F9D1 200D 1F692 ; fully-qualified # 🧑‍🚒 E12.1 firefighter
//
// Lines are grouped by "# group:" and "# subgroup:" header comments, which
// the parser tracks as state.
package emojitest

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	goversion "github.com/hashicorp/go-version"

	"golang.org/x/emoji"
)

// Status is the qualification status of a sequence.
type Status int

const (
	FullyQualified Status = iota
	MinimallyQualified
	Unqualified
	Component
)

var statusValues = map[string]Status{
	"fully-qualified":     FullyQualified,
	"minimally-qualified": MinimallyQualified,
	"unqualified":         Unqualified,
	"component":           Component,
}

func (s Status) String() string {
	for name, v := range statusValues {
		if v == s {
			return name
		}
	}
	return "unknown"
}

// A Parser parses an emoji-test.txt data file.
type Parser struct {
	scanner *bufio.Scanner
	line    int
	err     error
	report  func(error)

	group    string
	subgroup string

	seq      []rune
	status   Status
	name     string
	version  emoji.Version
	grapheme string
}

// An Option configures a Parser.
type Option func(p *Parser)

// Reporter sets the callback invoked with a descriptive error for every
// malformed data line. Malformed lines are always skipped; the default
// reporter logs them.
func Reporter(f func(error)) Option {
	return func(p *Parser) { p.report = f }
}

// New returns a Parser for the given data file.
func New(r io.Reader, opts ...Option) *Parser {
	p := &Parser{
		scanner: bufio.NewScanner(r),
		report:  func(err error) { log.Print(err) },
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Parse calls f for every well-formed data line and closes r. It aborts the
// program if reading fails; a generator has nothing to do with a truncated
// data file.
func Parse(r io.ReadCloser, f func(p *Parser)) {
	defer r.Close()
	p := New(r)
	for p.Next() {
		f(p)
	}
	if err := p.Err(); err != nil {
		log.Fatal(err)
	}
}

// Next advances to the next well-formed data line. Malformed lines are
// reported and skipped.
func (p *Parser) Next() bool {
	for p.scanner.Scan() {
		p.line++
		line := strings.TrimSpace(p.scanner.Text())
		switch {
		case line == "":
		case line[0] == '#':
			p.comment(line)
		default:
			if err := p.parse(line); err != nil {
				p.report(fmt.Errorf("emojitest: line %d: %v", p.line, err))
				continue
			}
			return true
		}
	}
	p.err = p.scanner.Err()
	return false
}

// Err reports the first read error encountered.
func (p *Parser) Err() error {
	return p.err
}

func (p *Parser) comment(line string) {
	if s, ok := strings.CutPrefix(line, "# group:"); ok {
		p.group = strings.TrimSpace(s)
		p.subgroup = ""
	} else if s, ok := strings.CutPrefix(line, "# subgroup:"); ok {
		p.subgroup = strings.TrimSpace(s)
	}
}

func (p *Parser) parse(line string) error {
	cps, rest, ok := strings.Cut(line, ";")
	if !ok {
		return fmt.Errorf("no status field in %q", line)
	}

	p.seq = p.seq[:0]
	for _, f := range strings.Fields(cps) {
		v, err := strconv.ParseUint(f, 16, 32)
		if err != nil {
			return fmt.Errorf("bad codepoint %q", f)
		}
		p.seq = append(p.seq, rune(v))
	}
	if len(p.seq) == 0 {
		return fmt.Errorf("no codepoints in %q", line)
	}
	p.grapheme = string(p.seq)

	statusStr, comment, _ := strings.Cut(rest, "#")
	status, ok := statusValues[strings.TrimSpace(statusStr)]
	if !ok {
		return fmt.Errorf("unknown status %q", strings.TrimSpace(statusStr))
	}
	p.status = status

	// The comment has the form "<emoji> [E<version>] <name>".
	fields := strings.Fields(comment)
	if len(fields) < 2 {
		return fmt.Errorf("no name in %q", line)
	}
	fields = fields[1:] // the rendered emoji; the sequence already has it
	p.version = emoji.Version{}
	if v, ok := parseVersion(fields[0]); ok {
		p.version = v
		fields = fields[1:]
		if len(fields) == 0 {
			return fmt.Errorf("no name in %q", line)
		}
	}
	p.name = strings.Join(fields, " ")
	return nil
}

// parseVersion parses an introduction version token like "E12.1". Tokens
// not of this shape are part of the name; versions were only added to the
// file format in Unicode 12.1.
func parseVersion(tok string) (emoji.Version, bool) {
	if len(tok) < 2 || tok[0] != 'E' || tok[1] < '0' || tok[1] > '9' {
		return emoji.Version{}, false
	}
	v, err := goversion.NewVersion(tok[1:])
	if err != nil {
		return emoji.Version{}, false
	}
	seg := v.Segments()
	return emoji.Version{Major: uint16(seg[0]), Minor: uint16(seg[1])}, true
}

// Sequence returns the codepoint sequence of the current line. The slice is
// only valid until the next call to Next.
func (p *Parser) Sequence() []rune { return p.seq }

// Grapheme returns the codepoint sequence of the current line as a string.
func (p *Parser) Grapheme() string { return p.grapheme }

// Status returns the qualification status of the current line.
func (p *Parser) Status() Status { return p.status }

// Name returns the descriptive name of the current line, such as
// "woman astronaut: medium skin tone".
func (p *Parser) Name() string { return p.name }

// Version returns the emoji release that introduced the current sequence,
// or the zero Version for data files predating version annotations.
func (p *Parser) Version() emoji.Version { return p.version }

// Group returns the group the current line belongs to, from the most recent
// "# group:" header.
func (p *Parser) Group() string { return p.group }

// Subgroup returns the subgroup the current line belongs to, from the most
// recent "# subgroup:" header.
func (p *Parser) Subgroup() string { return p.subgroup }
