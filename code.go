// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package discordmd

import "strings"

// isFenceLang reports whether s can be a fence language tag.
func isFenceLang(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !isLetter(c) && !isDigit(c) && c != '_' && c != '+' && c != '.' && c != '-' {
			return false
		}
	}
	return true
}

// startFence consumes a ``` code fence whose opening line is s[i:j],
// with next the start of the following line. It returns the block,
// the index to resume at, and any text after a same-line close that
// must rejoin the paragraph flow.
//
// A close on the opening line ends the fence immediately and the
// text between the fences has no language. Otherwise the rest of
// the opening line is the language tag if it looks like one, or the
// first content line if not, and the fence runs until a line that
// is exactly ``` or until the end of input.
func (p *parser) startFence(s string, i, j, next int) (Node, int, string) {
	opening := s[i+3 : j]

	if k := strings.Index(opening, "```"); k > 0 {
		content := opening[:k]
		trailing := opening[k+3:]
		return &CodeBlock{Text: content}, next, trailing
	}

	lang := ""
	var lines []string
	if isFenceLang(opening) {
		lang = opening
	} else {
		lines = append(lines, opening)
	}

	i = next
	for i < len(s) {
		j = len(s)
		next = j
		if eol := strings.IndexByte(s[i:], '\n'); eol >= 0 {
			j = i + eol
			next = j + 1
		}
		line := s[i:j]
		i = next
		if line == "```" {
			break
		}
		lines = append(lines, line)
	}
	return &CodeBlock{Lang: lang, Text: strings.Join(lines, "\n")}, i, ""
}
