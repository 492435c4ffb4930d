// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package discordmd

import "testing"

func FuzzParse(f *testing.F) {
	for _, s := range []string{
		"",
		"*foo **bar* baz**",
		"__\\__",
		"> *a\n> b*",
		"```x\ny\n```",
		"* a\n    1. b\n    c",
		"<@123> <t:5:R> </a b:1> <:pog:9>",
		"[a](b) https://x.y) <https://e.co>",
		"#   ",
		"*# t*x",
		"_>>> a\nb_c",
		"_foo_bar",
		"~~\\~~ ||| `` ` 🥺",
	} {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		root := Parse(s)
		if root == nil {
			t.Fatal("Parse returned nil")
		}
		if d := depthOf(root); d > 70 {
			t.Fatalf("tree depth %d for %q", d, s)
		}
		// Rendering and reparsing must give the tree back.
		if again := Parse(Format(root)); dump(again) != dump(root) {
			t.Errorf("reparse of Format changes the tree for %q:\nbefore %s\nafter  %s",
				s, dump(root), dump(again))
		}
	})
}
