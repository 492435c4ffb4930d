// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package discordmd

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"
)

// Each testdata file holds pairs: an N.md input and the N.tree it
// parses to, in the s-expression form printed by dump.
func TestGoldens(t *testing.T) {
	files, err := filepath.Glob("testdata/*.txt")
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no testdata files")
	}
	for _, file := range files {
		t.Run(strings.TrimSuffix(filepath.Base(file), ".txt"), func(t *testing.T) {
			a, err := txtar.ParseFile(file)
			if err != nil {
				t.Fatal(err)
			}
			if len(a.Files)%2 != 0 {
				t.Fatalf("%s: odd number of files", file)
			}
			for i := 0; i < len(a.Files); i += 2 {
				in, out := a.Files[i], a.Files[i+1]
				name := strings.TrimSuffix(in.Name, ".md")
				if in.Name != name+".md" || out.Name != name+".tree" {
					t.Fatalf("%s: unexpected file pair %q, %q", file, in.Name, out.Name)
				}
				t.Run(name, func(t *testing.T) {
					// txtar guarantees a final newline; it is not
					// part of the input.
					text := strings.TrimSuffix(string(in.Data), "\n")
					got := dump(Parse(text))
					if got != string(out.Data) {
						t.Errorf("Parse(%q):\ngot:\n%swant:\n%s", text, got, out.Data)
					}
				})
			}
		})
	}
}

// Constructors shared by the package tests.

func tree(nodes ...Node) *Root { return &Root{Children: nodes} }

func txt(s string) Node { return &Text{Text: s} }

func em(kind EmphasisKind, children ...Node) Node {
	return &Emphasis{Kind: kind, Children: children}
}

func checkParse(t *testing.T, in string, want *Root) {
	t.Helper()
	got := Parse(in)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse(%q) mismatch (-want +got):\n%s", in, diff)
	}
}
