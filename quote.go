// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package discordmd

import "strings"

// startQuote consumes a group of contiguous "> " lines beginning at
// s[i] and returns the quote and the index past its last line.
// Only the first line may be indented; continuation lines must carry
// the marker at column zero or the quote ends.
func (p *parser) startQuote(s string, i int, ctx blockContext) (Node, int) {
	var lines []string
	for {
		j := len(s)
		next := j
		if eol := strings.IndexByte(s[i:], '\n'); eol >= 0 {
			j = i + eol
			next = j + 1
		}
		lines = append(lines, s[i+2:j])
		i = next
		if !strings.HasPrefix(s[i:], "> ") {
			break
		}
	}

	// Quoted lines re-parse as a unit, so emphasis can span them,
	// but a quote cannot open inside another quote.
	qctx := ctx
	qctx.inQuote = true
	qctx.depth++
	content := strings.TrimRight(strings.Join(lines, "\n"), " ")
	return &BlockQuote{Children: p.blocks(content, qctx)}, i
}
