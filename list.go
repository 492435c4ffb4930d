// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package discordmd

import (
	"strconv"
	"strings"
)

// Lists nest at most this many levels; a deeper marker stays text.
const maxListDepth = 11

// parseListMarker matches a bullet at the start of line.
// The marker is "-", "*", or up to ten digits and a dot, followed by
// at least one space. Width is the marker plus its spaces, which is
// how far continuation lines are unindented.
func parseListMarker(line string) (width int, ordered bool, start int64, ok bool) {
	m := 0
	switch {
	case len(line) > 0 && (line[0] == '-' || line[0] == '*'):
		m = 1
	default:
		m = scanDigits(line, 0)
		if m == 0 || m > 10 || m >= len(line) || line[m] != '.' {
			return 0, false, 0, false
		}
		ordered = true
		start, _ = strconv.ParseInt(line[:m], 10, 64)
		m++
	}
	sp := runLength(line, m, ' ')
	if sp == 0 {
		return 0, false, 0, false
	}
	return m + sp, ordered, start, true
}

// startList consumes a list whose first marker is at s[i] and returns
// the list and the index past its last line. A line continues the
// current item when it is indented, or unconditionally while the item
// is still empty; a column-zero marker of the same style begins the
// next item; anything else, including a different marker style or a
// blank line, ends the list.
func (p *parser) startList(s string, i int, ctx blockContext) (Node, int) {
	var items []string
	var ordered bool
	var start int64
	var width int

	item := -1 // index into items of the item being built
	for i < len(s) {
		j := len(s)
		next := j
		if eol := strings.IndexByte(s[i:], '\n'); eol >= 0 {
			j = i + eol
			next = j + 1
		}
		line := s[i:j]

		if item < 0 {
			width, ordered, start, _ = parseListMarker(line)
			items = append(items, line[width:])
			item = 0
			i = next
			continue
		}

		if line == "" {
			break
		}
		if indent := runLength(line, 0, ' '); indent > 0 {
			items[item] += "\n" + line[min(indent, width):]
			i = next
			continue
		}
		if w, ord, _, ok := parseListMarker(line); ok {
			if ord != ordered {
				break
			}
			width = w
			items = append(items, line[w:])
			item++
			i = next
			continue
		}
		if items[item] == "" {
			// An empty item grabs the next line no matter its shape.
			items[item] = "\n" + line
			i = next
			continue
		}
		break
	}

	if start < 1 {
		start = 1
	} else if start > 1000000000 {
		start = 1000000000
	}
	if !ordered {
		start = 0
	}

	ictx := ctx
	ictx.inList = true
	ictx.listDepth++
	ictx.depth++
	ictx.lineStart = atLineStart
	n := &List{Ordered: ordered, Start: int(start), Items: make([][]Node, len(items))}
	for k, content := range items {
		n.Items[k] = p.blocks(content, ictx)
	}
	return n, i
}
