// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gen contains common code for the emoji table generator.
// It fetches the Unicode emoji data files and the gemoji alias database,
// and provides the CodeWriter the generator emits Go files with.
package gen

import (
	"flag"
	"fmt"
	"go/format"
	"io"
	"log"
	"net/http"
	"os"
	"path"
	"path/filepath"
)

// emojiVersion is the Unicode emoji release the tables are generated from.
const emojiVersion = "13.1"

var (
	url = flag.String("url",
		"https://unicode.org/Public/emoji/"+emojiVersion,
		"URL of the Unicode emoji data directory")
	gemojiURL = flag.String("gemoji",
		"https://raw.githubusercontent.com/github/gemoji/master/db/emoji.json",
		"URL of the gemoji alias database")
	localFiles = flag.Bool("local",
		false,
		"data files have been copied to the current directory; for debugging only")
	outputDir = flag.String("output",
		"flat",
		"directory the generated files are written to")
)

// Init performs common initialization for a generator. It must be called
// before any other call into this package.
func Init() {
	log.SetPrefix("genemoji: ")
	log.SetFlags(0)
	flag.Parse()
}

// UnicodeVersion reports the Unicode emoji version the generator is pinned
// to.
func UnicodeVersion() string {
	return emojiVersion
}

// IsLocal reports whether data files are read from the local directory
// instead of the network.
func IsLocal() bool {
	return *localFiles
}

// OutputDir returns the directory generated files are written to.
func OutputDir() string {
	return *outputDir
}

// OpenEmojiTestFile opens the emoji-test.txt data file for the pinned
// version. It aborts the program on failure: a generator cannot proceed
// without its input.
func OpenEmojiTestFile() io.ReadCloser {
	if *localFiles {
		return openLocal("emoji-test.txt")
	}
	return get(*url + "/emoji-test.txt")
}

// OpenGemojiFile opens the gemoji database. See OpenEmojiTestFile for the
// failure policy.
func OpenGemojiFile() io.ReadCloser {
	if *localFiles {
		return openLocal(path.Base(*gemojiURL))
	}
	return get(*gemojiURL)
}

func openLocal(file string) io.ReadCloser {
	f, err := os.Open(file)
	if err != nil {
		log.Fatalf("Could not open local data file: %v", err)
	}
	return f
}

func get(url string) io.ReadCloser {
	resp, err := http.Get(url)
	if err != nil {
		log.Fatalf("HTTP GET: %v", err)
	}
	if resp.StatusCode != 200 {
		log.Fatalf("Bad GET status for %q: %q", url, resp.Status)
	}
	return resp.Body
}

const header = `// Code generated by running "go generate" in golang.org/x/emoji. DO NOT EDIT.

`

// WriteGoFile prepends a standard file comment and package statement to the
// given bytes, applies gofmt, and writes them to a file with the given name.
// It will call log.Fatal if there are any errors.
func WriteGoFile(filename, pkg string, b []byte) {
	w, err := os.Create(filepath.Join(*outputDir, filename))
	if err != nil {
		log.Fatalf("Could not create file %s: %v", filename, err)
	}
	defer w.Close()
	if _, err = WriteGo(w, pkg, b); err != nil {
		log.Fatalf("Error writing file %s: %v", filename, err)
	}
}

// WriteGo prepends a standard file comment and package statement to the
// given bytes, applies gofmt, and writes them to w.
func WriteGo(w io.Writer, pkg string, b []byte) (n int, err error) {
	src := []byte(header)
	src = append(src, fmt.Sprintf("package %s\n\n", pkg)...)
	src = append(src, b...)
	formatted, err := format.Source(src)
	if err != nil {
		// Print the generated code even in case of an error so that the
		// returned error can be found in context.
		w.Write(src)
		return 0, fmt.Errorf("error formatting Go code: %v", err)
	}
	return w.Write(formatted)
}

// WriteUnicodeVersion writes a constant for the emoji version from which the
// tables are generated.
func WriteUnicodeVersion(w io.Writer) {
	fmt.Fprintf(w, "// UnicodeVersion is the Unicode emoji version from which the tables in this package are derived.\n")
	fmt.Fprintf(w, "const UnicodeVersion = %q\n", UnicodeVersion())
}
