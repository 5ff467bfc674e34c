// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gen

import (
	"bytes"
	"fmt"
	"hash"
	"hash/fnv"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"
)

// This file contains utilities for writing the generated table files.

// CodeWriter is a utility for writing structured code. It computes the
// content hash and size of written content. It ensures there are newlines
// between written code blocks.
type CodeWriter struct {
	buf  bytes.Buffer
	Size int
	Hash hash.Hash32 // content hash
	// For comments we skip the usual one-line separator if they are followed
	// by a code block.
	skipSep bool
}

// NewCodeWriter returns a new CodeWriter.
func NewCodeWriter() *CodeWriter {
	return &CodeWriter{Hash: fnv.New32()}
}

func (w *CodeWriter) Write(p []byte) (n int, err error) {
	return w.buf.Write(p)
}

// WriteGoFile appends the buffer with the total size of all created
// structures and writes it as a Go file to the given file in the output
// directory with the given package name.
func (w *CodeWriter) WriteGoFile(filename, pkg string) {
	f, err := os.Create(filepath.Join(*outputDir, filename))
	if err != nil {
		log.Fatalf("Could not create file %s: %v", filename, err)
	}
	defer f.Close()
	if _, err = w.WriteGo(f, pkg); err != nil {
		log.Fatalf("Error writing file %s: %v", filename, err)
	}
}

// WriteGo appends the buffer with the total size of all created structures
// and writes it as a Go file to the given writer with the given package
// name.
func (w *CodeWriter) WriteGo(out io.Writer, pkg string) (n int, err error) {
	if sz := w.Size; sz > 0 {
		w.WriteComment("Total table size %d bytes (%dKiB); checksum: %X\n", sz, sz/1024, w.Hash.Sum32())
	}
	defer w.buf.Reset()
	return WriteGo(out, pkg, w.buf.Bytes())
}

func (w *CodeWriter) printf(f string, x ...interface{}) {
	fmt.Fprintf(w, f, x...)
}

func (w *CodeWriter) insertSep() {
	if w.skipSep {
		w.skipSep = false
		return
	}
	// Use at least two newlines to ensure a blank space between the previous
	// block. WriteGoFile will remove extraneous newlines.
	w.printf("\n\n")
}

// WriteComment writes a comment block. All line starts are prefixed with
// "//". Initial empty lines are gobbled. The indentation for the first line
// is stripped from consecutive lines.
func (w *CodeWriter) WriteComment(comment string, args ...interface{}) {
	s := fmt.Sprintf(comment, args...)
	s = strings.Trim(s, "\n")

	// Use at least two newlines to ensure a blank space between the previous
	// block. WriteGoFile will remove extraneous newlines.
	w.printf("\n\n// ")
	w.skipSep = true

	// strip first indent level.
	sep := "\n"
	for ; len(s) > 0 && (s[0] == '\t' || s[0] == ' '); s = s[1:] {
		sep += s[:1]
	}

	strings.NewReplacer(sep, "\n// ", "\n", "\n// ").WriteString(w, s)

	w.printf("\n")
}

// WriteConst writes a constant of the given name with a literal value.
func (w *CodeWriter) WriteConst(name, expr string) {
	w.insertSep()
	io.WriteString(w.Hash, expr)
	w.printf("const %s = %s\n", name, expr)
}

// WriteVar writes a variable of the given name initialized by the given
// expression. The expression contributes to the content hash and the total
// table size.
func (w *CodeWriter) WriteVar(name, expr string) {
	w.insertSep()
	io.WriteString(w.Hash, expr)
	w.Size += len(expr)
	w.printf("var %s = %s\n", name, expr)
}

// WriteTypedVar writes a variable of the given name and explicit type
// initialized by the given expression. The expression contributes to the
// content hash and the total table size.
func (w *CodeWriter) WriteTypedVar(name, typ, expr string) {
	w.insertSep()
	io.WriteString(w.Hash, expr)
	w.Size += len(expr)
	w.printf("var %s %s = %s\n", name, typ, expr)
}

// QuoteGrapheme renders an emoji grapheme as a Go string literal with every
// non-ASCII rune escaped. Emoji sequences are full of joiners, variation
// selectors and tags that are invisible or direction-confusing when written
// raw, so generated expressions spell all of them out.
func QuoteGrapheme(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for p := 0; p < len(s); {
		r, sz := utf8.DecodeRuneInString(s[p:])
		switch {
		case r == utf8.RuneError && sz == 1:
			fmt.Fprintf(&sb, `\x%02x`, s[p])
		case r == '"', r == '\\':
			sb.WriteByte('\\')
			sb.WriteRune(r)
		case r < utf8.RuneSelf:
			if strconv.IsPrint(r) {
				sb.WriteRune(r)
			} else {
				fmt.Fprintf(&sb, `\x%02x`, r)
			}
		case r <= 0xFFFF:
			fmt.Fprintf(&sb, `\u%04x`, r)
		default:
			fmt.Fprintf(&sb, `\U%08x`, r)
		}
		p += sz
	}
	sb.WriteByte('"')
	return sb.String()
}
