// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package discordmd

import "strings"

// startHeading matches a "# " heading beginning at s[i], which is
// known to start with '#' at column zero. The whitespace after the
// marker may include a newline, so "#\ntitle" is a heading too;
// the title is whatever remains of the line it starts on.
func (p *parser) startHeading(s string, i int, ctx blockContext) (Node, int, bool) {
	level := runLength(s, i, '#')
	if level > 3 {
		return nil, 0, false
	}
	j := i + level
	if j >= len(s) || !isSpace(s[j]) {
		return nil, 0, false
	}
	for j < len(s) && isSpace(s[j]) {
		j++
	}
	if j < len(s) && s[j] == '#' {
		return nil, 0, false
	}

	end := len(s)
	ni := end
	if eol := strings.IndexByte(s[j:], '\n'); eol >= 0 {
		end = j + eol
		ni = end + 1
	}
	title := strings.TrimRight(s[j:end], " \t")
	title = strings.TrimRight(title, "#")
	title = strings.TrimRight(title, " \t")

	// Titles are inline only; a span in a title never reopens blocks.
	hctx := ctx
	hctx.depth++
	hctx.lineStart = inLine
	return &Heading{Level: level, Children: p.inline(title, hctx)}, ni, true
}

// startSubtext matches a "-# " subtext line. Unlike headings the
// space must be on the same line, and the body must not itself
// begin with the marker.
func (p *parser) startSubtext(line string, next int, ctx blockContext) (Node, int, bool) {
	j := 2
	if j >= len(line) || (line[j] != ' ' && line[j] != '\t') {
		return nil, 0, false
	}
	for j < len(line) && (line[j] == ' ' || line[j] == '\t') {
		j++
	}
	if strings.HasPrefix(line[j:], "-#") {
		return nil, 0, false
	}

	body := strings.TrimRight(line[j:], " \t")
	sctx := ctx
	sctx.depth++
	sctx.lineStart = inLine
	return &Subtext{Children: p.inline(body, sctx)}, next, true
}
