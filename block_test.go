// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package discordmd

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func h(level int, children ...Node) Node { return &Heading{Level: level, Children: children} }

func quote(children ...Node) Node { return &BlockQuote{Children: children} }

func list(items ...[]Node) Node { return &List{Items: items} }

func olist(start int, items ...[]Node) Node {
	return &List{Ordered: true, Start: start, Items: items}
}

func item(children ...Node) []Node { return children }

func TestHeading(t *testing.T) {
	checkParse(t, "# foo", tree(h(1, txt("foo"))))
	checkParse(t, "## foo", tree(h(2, txt("foo"))))
	checkParse(t, "### foo", tree(h(3, txt("foo"))))
	checkParse(t, "#### foo", tree(txt("#### foo")))
	checkParse(t, "#foo", tree(txt("#foo")))
	checkParse(t, " # foo", tree(txt(" # foo")))
	checkParse(t, "# # foo", tree(txt("# # foo")))
	checkParse(t, "# foo\nbar", tree(h(1, txt("foo")), txt("bar")))
	checkParse(t, "a\n# foo", tree(txt("a\n"), h(1, txt("foo"))))
	checkParse(t, "# *foo*", tree(h(1, em(Italic, txt("foo")))))
	// The whitespace after the marker may include the newline.
	checkParse(t, "#\nfoo", tree(h(1, txt("foo"))))
	// Trailing hashes are decoration, trimmed with the space around them.
	checkParse(t, "#    foo #   ####   ", tree(h(1, txt("foo #"))))
}

func TestSubtext(t *testing.T) {
	checkParse(t, "-# foo", tree(&Subtext{Children: []Node{txt("foo")}}))
	checkParse(t, "-#foo", tree(txt("-#foo")))
	checkParse(t, " -# foo", tree(txt(" -# foo")))
	// Unlike headings, the space cannot be a newline.
	checkParse(t, "-#\nfoo", tree(txt("-#\nfoo")))
	checkParse(t, "-# -# foo", tree(txt("-# -# foo")))
	checkParse(t, "-# foo\nbar", tree(&Subtext{Children: []Node{txt("foo")}}, txt("bar")))
}

func TestQuote(t *testing.T) {
	checkParse(t, "> foo", tree(quote(txt("foo"))))
	checkParse(t, "> foo\n> bar", tree(quote(txt("foo\nbar"))))
	checkParse(t, "> foo\nbar", tree(quote(txt("foo")), txt("bar")))
	checkParse(t, ">foo", tree(txt(">foo")))
	checkParse(t, ">> foo", tree(txt(">> foo")))
	checkParse(t, "> ", tree(quote()))
	checkParse(t, "> foo  ", tree(quote(txt("foo"))))
	checkParse(t, "  > foo", tree(txt("  "), quote(txt("foo"))))
	// Quotes do not nest.
	checkParse(t, "> > foo", tree(quote(txt("> foo"))))
	// Emphasis can span quoted lines.
	checkParse(t, "> *a\n> b*", tree(quote(em(Italic, txt("a\nb")))))
}

func TestBigQuote(t *testing.T) {
	checkParse(t, ">>> foo\nbar\n> baz",
		tree(quote(txt("foo\nbar\n> baz"))))
	checkParse(t, "a\n>>> b", tree(txt("a\n"), quote(txt("b"))))
}

func TestBlocksInEmphasis(t *testing.T) {
	// A span opener at the start of a line passes that position to
	// its content, so block constructs open inside the span.
	checkParse(t, "*# foo*ing", tree(em(Italic, h(1, txt("foo"))), txt("ing")))
	checkParse(t, "*-# foo*ing",
		tree(em(Italic, &Subtext{Children: []Node{txt("foo")}}), txt("ing")))
	checkParse(t, "*> a*", tree(em(Italic, quote(txt("a")))))
	checkParse(t, "_>>> a\nb_c", tree(em(Italic, quote(txt("a\nb"))), txt("c")))
	checkParse(t, "*```x```*", tree(em(Italic, &CodeBlock{Text: "x"})))

	// Text before the opener keeps the content inline, and spaces
	// alone allow quotes but not headings or fences.
	checkParse(t, "a *# foo*", tree(txt("a "), em(Italic, txt("# foo"))))
	checkParse(t, " *# foo*", tree(txt(" "), em(Italic, txt("# foo"))))
	checkParse(t, " *> a*", tree(txt(" "), em(Italic, quote(txt("a")))))
	checkParse(t, "a *```x```*", tree(txt("a "), em(Italic, &InlineCode{Text: "x"})))

	// A quote inside a span owns its lines; what it does not claim
	// stays in the span as text.
	checkParse(t, "*> ```\nfoo```*",
		tree(em(Italic, quote(&CodeBlock{}), txt("foo```"))))
}

func TestCodeBlock(t *testing.T) {
	checkParse(t, "```go\nx := 1\n```", tree(&CodeBlock{Lang: "go", Text: "x := 1"}))
	checkParse(t, "```\nfoo\n```", tree(&CodeBlock{Text: "foo"}))
	checkParse(t, "```\nfoo\nbar\n```", tree(&CodeBlock{Text: "foo\nbar"}))
	// No closing fence: the rest of the message is the block.
	checkParse(t, "```\nfoo", tree(&CodeBlock{Text: "foo"}))
	// A close on the opening line ends the block there, with no
	// language, and the rest of the line is ordinary text.
	checkParse(t, "```foo```", tree(&CodeBlock{Text: "foo"}))
	checkParse(t, "```foo``` bar", tree(&CodeBlock{Text: "foo"}, txt(" bar")))
	// An opening line that cannot be a language tag is content.
	checkParse(t, "```x y\nfoo\n```", tree(&CodeBlock{Text: "x y\nfoo"}))
	// Everything inside is verbatim.
	checkParse(t, "```\n*foo* <@123>\n```", tree(&CodeBlock{Text: "*foo* <@123>"}))
}

func TestList(t *testing.T) {
	checkParse(t, "- a", tree(list(item(txt("a")))))
	checkParse(t, "* a", tree(list(item(txt("a")))))
	checkParse(t, "- a\n- b", tree(list(item(txt("a")), item(txt("b")))))
	checkParse(t, "- a\n* b", tree(list(item(txt("a")), item(txt("b")))))
	checkParse(t, "-a", tree(txt("-a")))
	checkParse(t, "1. a\n2. b", tree(olist(1, item(txt("a")), item(txt("b")))))
	checkParse(t, "2. a", tree(olist(2, item(txt("a")))))
	checkParse(t, "0. a", tree(olist(1, item(txt("a")))))
	checkParse(t, "9999999999. a", tree(olist(1000000000, item(txt("a")))))
	checkParse(t, "10000000000. a", tree(txt("10000000000. a")))
}

func TestListContinuation(t *testing.T) {
	// Indented lines continue the item, unindented by at most the
	// marker width.
	checkParse(t, "- a\n b", tree(list(item(txt("a\nb")))))
	checkParse(t, "- a\n      b", tree(list(item(txt("a\n    b")))))
	checkParse(t, "- a\nb", tree(list(item(txt("a"))), txt("b")))
	// A change of style starts a fresh list.
	checkParse(t, "- a\n1. b",
		tree(list(item(txt("a"))), olist(1, item(txt("b")))))
	// A blank line ends the list.
	checkParse(t, "- a\n\n- b",
		tree(list(item(txt("a"))), txt("\n"), list(item(txt("b")))))
	// Blocks nest inside items, but headings do not.
	checkParse(t, "- > a", tree(list(item(quote(txt("a"))))))
	checkParse(t, "- # a", tree(list(item(txt("# a")))))
}

func TestListNesting(t *testing.T) {
	checkParse(t, "- a\n  - b",
		tree(list(item(txt("a\n"), list(item(txt("b")))))))
	checkParse(t, "* a\n    b\n    1. c\n    2. d\n    c",
		tree(list(item(
			txt("a\n  b\n  "),
			olist(1, item(
				txt("c\n"),
				olist(2, item(txt("d"))),
				txt("c"),
			)),
		))))

	// Markers stop nesting eleven levels down.
	in := strings.Repeat("- ", 12) + "a"
	got := Parse(in)
	if d := depthOf(got); d != 13 {
		t.Errorf("Parse(%q): tree depth %d, want 13", in, d)
	}
	n := got.Children[0]
	for i := 0; i < 10; i++ {
		l, ok := n.(*List)
		if !ok || len(l.Items) != 1 {
			t.Fatalf("Parse(%q): unexpected shape %s", in, dump(got))
		}
		n = l.Items[0][0]
	}
	l, ok := n.(*List)
	if !ok {
		t.Fatalf("Parse(%q): unexpected shape %s", in, dump(got))
	}
	if diff := cmp.Diff(item(txt("- a")), l.Items[0]); diff != "" {
		t.Errorf("innermost item mismatch (-want +got):\n%s", diff)
	}
}

func TestCRLF(t *testing.T) {
	checkParse(t, "# a\r\nb", tree(h(1, txt("a")), txt("b")))
}
