// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package discordmd parses Discord-flavored message markup into a tree.
//
// The dialect is not Markdown. Emphasis uses lazy matching with
// per-character tie-breaking, block constructs are line-anchored, and
// the grammar embeds Discord's structured tokens such as <@id> user
// mentions and <t:seconds> timestamps. Parsing never fails: spans
// that do not match degrade to literal text.
package discordmd

import "strings"

// A Parser is a message parser. The zero value is ready to use.
type Parser struct {
	// MaxDepth bounds the nesting depth of the parsed tree.
	// Spans nested deeper degrade to literal text.
	// Zero means the default of 64.
	MaxDepth int
}

// Parse parses text with default settings.
func Parse(text string) *Root {
	var p Parser
	return p.Parse(text)
}

// Parse parses a single message. It always returns a tree;
// there is no error result.
func (ps *Parser) Parse(text string) *Root {
	d := ps.MaxDepth
	if d <= 0 {
		d = 64
	}
	p := &parser{maxDepth: d}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return &Root{Children: p.blocks(text, blockContext{})}
}

// The exported Parser is only settings. An internal parser carries
// those settings through a single Parse call.
type parser struct {
	maxDepth int
}

// A lineStart describes what precedes a position on its line.
// Span contents inherit the status of their opener, so a heading can
// live inside *# foo* but not inside a *# foo*.
type lineStart int

const (
	atLineStart lineStart = iota // nothing before on the line
	afterSpaces                  // only spaces before
	inLine                       // other text before
)

// A blockContext records which constructs are reachable at the
// current point of recursion. Quote contents cannot open another
// line quote, list items cannot hold headings or subtext, and
// lineStart positions the first character of the current input
// relative to its line.
type blockContext struct {
	inQuote   bool
	inList    bool
	listDepth int
	depth     int
	lineStart lineStart
}

// blocks splits s into block constructs and inline runs.
// Line prefixes decide blocks; everything else accumulates into
// paragraph text that is handed to the inline pass.
func (p *parser) blocks(s string, ctx blockContext) []Node {
	if s == "" {
		return nil
	}
	if ctx.depth >= p.maxDepth {
		return []Node{&Text{Text: literalText(s)}}
	}

	var out []Node
	var para strings.Builder
	paraLS := ctx.lineStart
	flush := func() {
		if para.Len() > 0 {
			pctx := ctx
			pctx.lineStart = paraLS
			out = append(out, p.inline(para.String(), pctx)...)
			para.Reset()
		}
		paraLS = atLineStart
	}

	i := 0
	for i < len(s) {
		j := len(s) // end of this line
		next := j   // start of the following line
		if eol := strings.IndexByte(s[i:], '\n'); eol >= 0 {
			j = i + eol
			next = j + 1
		}
		line := s[i:j]

		// Only the first line can begin mid-line, when s is span
		// content cut out of a longer line.
		ls := atLineStart
		if i == 0 {
			ls = ctx.lineStart
		}

		indent := runLength(line, 0, ' ')
		rest := line[indent:]

		if indent == 0 && ls == atLineStart && strings.HasPrefix(line, "```") {
			flush()
			n, ni, trailing := p.startFence(s, i, j, next)
			out = append(out, n)
			if trailing != "" {
				// Text after a same-line closing fence stays in the
				// paragraph flow, with the line's newline if any.
				paraLS = inLine
				para.WriteString(trailing)
				if next > j {
					para.WriteByte('\n')
				}
			}
			i = ni
			continue
		}

		if !ctx.inQuote && ls != inLine && strings.HasPrefix(rest, ">>> ") {
			para.WriteString(line[:indent])
			flush()
			qctx := ctx
			qctx.inQuote = true
			qctx.depth++
			qctx.lineStart = atLineStart
			if indent > 0 || ls == afterSpaces {
				qctx.lineStart = afterSpaces
			}
			content := strings.TrimRight(s[i+indent+4:], " ")
			out = append(out, &BlockQuote{Children: p.blocks(content, qctx)})
			i = len(s)
			continue
		}

		if !ctx.inQuote && ls != inLine && strings.HasPrefix(rest, "> ") {
			para.WriteString(line[:indent])
			flush()
			qctx := ctx
			qctx.lineStart = atLineStart
			if indent > 0 || ls == afterSpaces {
				qctx.lineStart = afterSpaces
			}
			n, ni := p.startQuote(s, i+indent, qctx)
			out = append(out, n)
			i = ni
			continue
		}

		if indent == 0 && ls == atLineStart && !ctx.inList && strings.HasPrefix(line, "#") {
			if n, ni, ok := p.startHeading(s, i, ctx); ok {
				flush()
				out = append(out, n)
				i = ni
				continue
			}
		}

		if indent == 0 && ls == atLineStart && !ctx.inList && strings.HasPrefix(line, "-#") {
			if n, ni, ok := p.startSubtext(line, next, ctx); ok {
				flush()
				out = append(out, n)
				i = ni
				continue
			}
		}

		if ls != inLine && ctx.listDepth < maxListDepth {
			if _, _, _, ok := parseListMarker(rest); ok {
				para.WriteString(line[:indent])
				flush()
				n, ni := p.startList(s, i+indent, ctx)
				out = append(out, n)
				i = ni
				continue
			}
		}

		para.WriteString(line)
		if next > j {
			para.WriteByte('\n')
		}
		i = next
	}
	flush()
	return out
}
