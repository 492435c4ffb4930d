// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package discordmd

import "strings"

// parseURL matches a bare URL at s[i]. The candidate runs to the
// first whitespace or '<', then backs off over closing punctuation;
// at least two characters must remain after the scheme. A steam://
// URL still claims its span but renders as plain text.
func parseURL(s string, i int) (Node, int) {
	var scheme string
	for _, pre := range []string{"https://", "http://", "steam://"} {
		if strings.HasPrefix(s[i:], pre) {
			scheme = pre
			break
		}
	}
	if scheme == "" {
		return nil, 0
	}
	j := i + len(scheme)
	e := j
	for e < len(s) && !isSpace(s[e]) && s[e] != '<' {
		e++
	}
	for e > j && strings.IndexByte(`.,:;"'`, s[e-1]) >= 0 {
		e--
	}
	if e-j < 2 {
		return nil, 0
	}
	url := s[i:e]

	// A trailing ')' is part of the URL only when a '(' before it
	// accounts for it; otherwise one is given back to the text.
	k := 0
	for k < len(url) && url[len(url)-1-k] == ')' {
		k++
	}
	if k > strings.Count(url, "(") {
		url = url[:len(url)-1]
		e--
	}

	if scheme == "steam://" {
		return &Text{Text: url}, e
	}
	return &AutoLink{URL: url}, e
}

// parseSuppressedLink matches <url>, which renders the URL without
// its embed. Only http and https count here.
func parseSuppressedLink(s string, i int) (Node, int) {
	j := i + 1
	e := j
	for e < len(s) && s[e] != '>' && !isSpace(s[e]) {
		e++
	}
	if e >= len(s) || s[e] != '>' {
		return nil, 0
	}
	url := s[j:e]
	var body string
	switch {
	case strings.HasPrefix(url, "https://"):
		body = url[len("https://"):]
	case strings.HasPrefix(url, "http://"):
		body = url[len("http://"):]
	default:
		return nil, 0
	}
	if len(body) < 2 {
		return nil, 0
	}
	return &AutoLink{URL: url, Suppressed: true}, e + 1
}

// parseMaskedLink matches [label](target) at s[i]. The label runs to
// the first ']' and is parsed as markup; the target runs to the first
// ')' and is kept verbatim, with no validation.
func (p *parser) parseMaskedLink(s string, i int, ctx blockContext) (Node, int) {
	close := strings.IndexByte(s[i:], ']')
	if close < 0 {
		return nil, 0
	}
	label := s[i+1 : i+close]
	j := i + close + 1
	if j >= len(s) || s[j] != '(' {
		return nil, 0
	}
	end := strings.IndexByte(s[j:], ')')
	if end < 0 {
		return nil, 0
	}
	cctx := ctx
	cctx.depth++
	cctx.lineStart = inLine
	return &Link{Label: p.inline(label, cctx), Target: s[j+1 : j+end]}, j + end + 1
}
