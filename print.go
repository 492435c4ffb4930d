// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package discordmd

import (
	"bytes"
	"fmt"
	"strings"
)

// A printer accumulates rendered markup.
type printer struct {
	bytes.Buffer
	noEscape bool // inside a masked link label, where escapes do not work
}

// dump renders a tree as s-expressions, one top-level child per line.
// The test goldens are written in this form.
func dump(r *Root) string {
	var b strings.Builder
	for _, c := range r.Children {
		dumpTo(&b, c)
		b.WriteByte('\n')
	}
	return b.String()
}

func dumpNodes(b *strings.Builder, nodes []Node) {
	for _, c := range nodes {
		b.WriteByte(' ')
		dumpTo(b, c)
	}
}

func dumpTo(b *strings.Builder, n Node) {
	switch x := n.(type) {
	case *Root:
		b.WriteString("(root")
		dumpNodes(b, x.Children)
		b.WriteString(")")
	case *Text:
		fmt.Fprintf(b, "(text %q)", x.Text)
	case *Emphasis:
		fmt.Fprintf(b, "(%s", x.Kind)
		dumpNodes(b, x.Children)
		b.WriteString(")")
	case *InlineCode:
		fmt.Fprintf(b, "(code %q)", x.Text)
	case *CodeBlock:
		fmt.Fprintf(b, "(codeblock %q %q)", x.Lang, x.Text)
	case *BlockQuote:
		b.WriteString("(quote")
		dumpNodes(b, x.Children)
		b.WriteString(")")
	case *Heading:
		fmt.Fprintf(b, "(h%d", x.Level)
		dumpNodes(b, x.Children)
		b.WriteString(")")
	case *Subtext:
		b.WriteString("(subtext")
		dumpNodes(b, x.Children)
		b.WriteString(")")
	case *List:
		if x.Ordered {
			fmt.Fprintf(b, "(list %d", x.Start)
		} else {
			b.WriteString("(list")
		}
		for _, item := range x.Items {
			b.WriteString(" (item")
			dumpNodes(b, item)
			b.WriteString(")")
		}
		b.WriteString(")")
	case *Link:
		fmt.Fprintf(b, "(link %q", x.Target)
		dumpNodes(b, x.Label)
		b.WriteString(")")
	case *AutoLink:
		if x.Suppressed {
			fmt.Fprintf(b, "(url noembed %q)", x.URL)
		} else {
			fmt.Fprintf(b, "(url %q)", x.URL)
		}
	case *UserMention:
		if x.Nick {
			fmt.Fprintf(b, "(user nick %d)", x.ID)
		} else {
			fmt.Fprintf(b, "(user %d)", x.ID)
		}
	case *RoleMention:
		fmt.Fprintf(b, "(role %d)", x.ID)
	case *ChannelMention:
		fmt.Fprintf(b, "(channel %d)", x.ID)
	case *EveryoneMention:
		b.WriteString("(everyone)")
	case *HereMention:
		b.WriteString("(here)")
	case *CustomEmoji:
		if x.Animated {
			fmt.Fprintf(b, "(emoji animated %q %d)", x.Name, x.ID)
		} else {
			fmt.Fprintf(b, "(emoji %q %d)", x.Name, x.ID)
		}
	case *UnicodeEmoji:
		fmt.Fprintf(b, "(uemoji %q)", x.Emoji)
	case *Timestamp:
		fmt.Fprintf(b, "(time %d %c)", x.Unix, x.Style)
	case *SlashCommand:
		fmt.Fprintf(b, "(command %q", x.Name)
		for _, seg := range x.Path {
			fmt.Fprintf(b, " %q", seg)
		}
		fmt.Fprintf(b, " %d)", x.ID)
	}
}
