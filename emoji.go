// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package discordmd

import (
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// parseCustomEmoji matches <:name:id> or <a:name:id> at s[i].
// Names are 2 to 32 word characters.
func parseCustomEmoji(s string, i int) (Node, int) {
	j := i + 1
	animated := false
	if s[j] == 'a' {
		animated = true
		j++
	}
	if j >= len(s) || s[j] != ':' {
		return nil, 0
	}
	j++
	k := j
	for k < len(s) && isWord(s[k]) {
		k++
	}
	if k-j < 2 || k-j > 32 || k >= len(s) || s[k] != ':' {
		return nil, 0
	}
	id, e, ok := parseID(s, k+1)
	if !ok {
		return nil, 0
	}
	return &CustomEmoji{Name: s[j:k], ID: id, Animated: animated}, e
}

// isEmojiRune reports whether r is a rune with default emoji
// presentation, meaning it displays as an emoji with no variation
// selector. Text-presentation symbols like ™ do not count.
func isEmojiRune(r rune) bool {
	return unicode.Is(emojiPresentation, r)
}

// parseEmoji matches a Unicode emoji beginning at s[i]. The node
// takes the whole grapheme cluster, so skin tones, ZWJ sequences,
// and flag pairs stay in one piece.
func parseEmoji(s string, i int) (Node, int) {
	r, _ := utf8.DecodeRuneInString(s[i:])
	if !isEmojiRune(r) {
		return nil, 0
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(s[i:], -1)
	return &UnicodeEmoji{Emoji: cluster}, i + len(cluster)
}
