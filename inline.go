// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package discordmd

import "unicode/utf8"

// inline parses a paragraph run into inline nodes. The scanner walks
// left to right, trying a recognizer at each byte that can begin a
// construct; the leftmost successful match wins and scanning resumes
// after it. Bytes claimed by no construct accumulate into Text.
func (p *parser) inline(s string, ctx blockContext) []Node {
	if s == "" {
		return nil
	}
	if ctx.depth >= p.maxDepth {
		return []Node{&Text{Text: literalText(s)}}
	}

	var out []Node
	start := 0
	appendText := func(t string) {
		if len(out) > 0 {
			if lt, ok := out[len(out)-1].(*Text); ok {
				lt.Text += t
				return
			}
		}
		out = append(out, &Text{Text: t})
	}
	emit := func(end int) {
		if start < end {
			appendText(literalText(s[start:end]))
		}
	}

	for i := 0; i < len(s); {
		var n Node
		var end int
		switch c := s[i]; c {
		case '\\':
			// An escape pair is plain text either way; literalText
			// decides whether the backslash survives.
			if ni := skipEscape(s, i); ni > i {
				i = ni
			} else {
				i++
			}
			continue
		case '*', '_':
			n, end = p.parseEmphasis(s, i, ctx)
		case '~':
			n, end = p.parsePair(s, i, Strikethrough, ctx)
		case '|':
			n, end = p.parsePair(s, i, Spoiler, ctx)
		case '`':
			n, end = parseCodeSpan(s, i)
			if n == nil {
				// An unclosed backtick run is literal, and its ticks
				// cannot seed a shorter span.
				i = end
				continue
			}
		case '<':
			n, end = parseAngle(s, i)
		case '@':
			n, end = parseAtMention(s, i)
		case 'h', 's':
			n, end = parseURL(s, i)
		case '[':
			n, end = p.parseMaskedLink(s, i, ctx)
		default:
			if c >= utf8.RuneSelf {
				n, end = parseEmoji(s, i)
				if n == nil {
					_, size := utf8.DecodeRuneInString(s[i:])
					i += size
					continue
				}
			}
		}
		if n == nil {
			i++
			continue
		}
		emit(i)
		if t, ok := n.(*Text); ok {
			// A recognizer that degrades its span to plain text, like
			// a steam:// URL, merges with neighboring text.
			appendText(t.Text)
		} else {
			out = append(out, n)
		}
		i = end
		start = i
	}
	emit(len(s))
	return out
}

// parseEmphasis matches emphasis opening at s[i], where s[i] is '*'
// or '_'. The single form (italic) and the double form (bold or
// underline) are matched independently, each with the shortest
// content that lets it close; of the two the longer match wins,
// and a tie goes to the single form. The content goes back through
// the block pass, carrying the opener's position on its line, so an
// opener at a line start admits headings and quotes in the span.
func (p *parser) parseEmphasis(s string, i int, ctx blockContext) (Node, int) {
	c := s[i]
	kind := Italic
	content, end, ok := scanSingle(s, i, c)
	if runLength(s, i, c) >= 2 {
		if dc, de, dok := scanDouble(s, i, c); dok && (!ok || de > end) {
			content, end, ok = dc, de, true
			if c == '*' {
				kind = Bold
			} else {
				kind = Underline
			}
		}
	}
	if !ok {
		return nil, 0
	}
	cctx := ctx
	cctx.depth++
	cctx.lineStart = openerLineStart(s, i, ctx.lineStart)
	return &Emphasis{Kind: kind, Children: p.blocks(content, cctx)}, end
}

// openerLineStart reports what precedes position i on its line.
// base applies when the walk runs off the front of s, which happens
// when s is itself span content cut from a longer line.
func openerLineStart(s string, i int, base lineStart) lineStart {
	ls := atLineStart
	for j := i - 1; j >= 0; j-- {
		if s[j] == '\n' {
			return ls
		}
		if s[j] != ' ' {
			return inLine
		}
		ls = afterSpaces
	}
	if base > ls {
		return base
	}
	return ls
}

// scanSingle finds the close of an italic span opened by the single
// delimiter s[i]. Backslash pairs inside the span are opaque, an even
// run of delimiters is absorbed into the content, and the first odd
// run closes at its final delimiter. For '*' the opener must not be
// followed by whitespace and the content may end with at most two
// spaces; '_' has no whitespace rules.
func scanSingle(s string, i int, c byte) (content string, end int, ok bool) {
	j := i + 1
	if c == '*' && (j >= len(s) || isSpace(s[j])) {
		return "", 0, false
	}
	for j < len(s) {
		if s[j] == '\\' {
			nj := skipEscape(s, j)
			if nj == j {
				// A bare trailing backslash cannot be span content.
				return "", 0, false
			}
			j = nj
			continue
		}
		if s[j] != c {
			j++
			continue
		}
		k := runLength(s, j, c)
		if k%2 == 0 {
			j += k
			continue
		}
		close := j + k - 1
		content = s[i+1 : close]
		if content == "" {
			return "", 0, false
		}
		if c == '*' {
			sp := 0
			for sp < len(content) && content[len(content)-1-sp] == ' ' {
				sp++
			}
			if sp > 2 || sp == len(content) {
				return "", 0, false
			}
			if b := content[len(content)-1-sp]; b == '\t' || b == '\n' {
				return "", 0, false
			}
		}
		return content, close + 1, true
	}
	return "", 0, false
}

// scanDouble finds the close of a bold or underline span opened by
// the two delimiters at s[i]. The close is the last two delimiters of
// the first run of at least two, except that a run that would leave
// the content empty is absorbed instead.
func scanDouble(s string, i int, c byte) (content string, end int, ok bool) {
	j := i + 2
	for j < len(s) {
		if s[j] == '\\' {
			nj := skipEscape(s, j)
			if nj == j {
				return "", 0, false
			}
			j = nj
			continue
		}
		if s[j] != c {
			j++
			continue
		}
		k := runLength(s, j, c)
		if k < 2 || j+k-2 == i+2 {
			j += k
			continue
		}
		close := j + k - 2
		return s[i+2 : close], close + 2, true
	}
	return "", 0, false
}

// parsePair matches a strikethrough or spoiler span, delimited by the
// doubled byte at s[i]. Unlike emphasis these spans close at the very
// first doubled delimiter, and backslashes inside are ordinary
// characters, so the content can end with one.
func (p *parser) parsePair(s string, i int, kind EmphasisKind, ctx blockContext) (Node, int) {
	c := s[i]
	if i+1 >= len(s) || s[i+1] != c {
		return nil, 0
	}
	for j := i + 2; j+1 < len(s); j++ {
		if s[j] == c && s[j+1] == c && j > i+2 {
			cctx := ctx
			cctx.depth++
			cctx.lineStart = openerLineStart(s, i, ctx.lineStart)
			return &Emphasis{Kind: kind, Children: p.blocks(s[i+2:j], cctx)}, j + 2
		}
	}
	return nil, 0
}

// parseCodeSpan matches a backtick span opened by the run at s[i].
// The close is the first later run of exactly the same length; an
// opener with no close returns nil and the index past its run, and
// the content between matching runs is taken verbatim.
func parseCodeSpan(s string, i int) (Node, int) {
	n := runLength(s, i, '`')
	for j := i + n; j < len(s); {
		if s[j] != '`' {
			j++
			continue
		}
		k := runLength(s, j, '`')
		if k == n {
			return &InlineCode{Text: s[i+n : j]}, j + k
		}
		j += k
	}
	return nil, i + n
}
