// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package discordmd

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWalk(t *testing.T) {
	root := Parse("> *a* b")
	var got []string
	Walk(root, func(n Node) bool {
		switch x := n.(type) {
		case *Root:
			got = append(got, "root")
		case *BlockQuote:
			got = append(got, "quote")
		case *Emphasis:
			got = append(got, x.Kind.String())
		case *Text:
			got = append(got, "text:"+x.Text)
		}
		return true
	})
	want := []string{"root", "quote", "italic", "text:a", "text: b"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Walk order mismatch (-want +got):\n%s", diff)
	}
}

func TestWalkPrune(t *testing.T) {
	root := Parse("*a* `b`")
	var got []string
	Walk(root, func(n Node) bool {
		switch n.(type) {
		case *Emphasis:
			// Skip the span's children.
			got = append(got, "italic")
			return false
		case *Text:
			got = append(got, "text")
		case *InlineCode:
			got = append(got, "code")
		}
		return true
	})
	want := []string{"italic", "text", "code"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Walk with pruning mismatch (-want +got):\n%s", diff)
	}
}

func TestTransform(t *testing.T) {
	root := Parse("*a* b <@123>")
	got := Transform(root, func(n Node) Node {
		if t, ok := n.(*Text); ok {
			return &Text{Text: strings.ToUpper(t.Text)}
		}
		return n
	})
	want := tree(em(Italic, txt("A")), txt(" B "), &UserMention{ID: 123})
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Transform mismatch (-want +got):\n%s", diff)
	}
	// The original tree is untouched.
	if diff := cmp.Diff(tree(em(Italic, txt("a")), txt(" b "), &UserMention{ID: 123}), root); diff != "" {
		t.Errorf("Transform mutated its input (-want +got):\n%s", diff)
	}
}

func TestTransformSharing(t *testing.T) {
	root := Parse("**deep *tree*** <@123>")
	// An identity rewrite returns the very same root.
	if got := Transform(root, func(n Node) Node { return n }); got != Node(root) {
		t.Errorf("identity Transform did not return the original tree")
	}
	// Rewriting one branch keeps the untouched branch by reference.
	got := Transform(root, func(n Node) Node {
		if _, ok := n.(*UserMention); ok {
			return &UserMention{ID: 456}
		}
		return n
	}).(*Root)
	if got == root {
		t.Fatalf("Transform returned the original root for a changed tree")
	}
	if got.Children[0] != root.Children[0] {
		t.Errorf("unchanged subtree was rebuilt instead of shared")
	}
}
