// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package discordmd

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

// isWord reports whether c is a word character in the ASCII sense
// used by mention boundaries and token names.
func isWord(c byte) bool {
	return isDigit(c) || isLetter(c) || c == '_'
}

func isWordRune(r rune) bool {
	if r < utf8.RuneSelf {
		return isWord(byte(r))
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isPunct(c byte) bool {
	return '!' <= c && c <= '/' || ':' <= c && c <= '@' || '[' <= c && c <= '`' || '{' <= c && c <= '~'
}

func isUnicodePunct(r rune) bool {
	if r < utf8.RuneSelf {
		return isPunct(byte(r))
	}
	return unicode.In(r, unicode.P, unicode.S)
}

// isSpace reports whether c is a space character for delimiter rules.
// Carriage returns never reach the scanner; input is normalized first.
func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n'
}

// isEscapable reports whether a backslash before r consumes the
// backslash and makes r literal. Anything else keeps the backslash.
func isEscapable(r rune) bool {
	return isUnicodePunct(r) || isEmojiRune(r)
}

// runLength returns the number of consecutive c bytes at s[i:].
func runLength(s string, i int, c byte) int {
	j := i
	for j < len(s) && s[j] == c {
		j++
	}
	return j - i
}

// maxRunLength returns the length of the longest run of c anywhere in s.
func maxRunLength(s string, c byte) int {
	max := 0
	for i := 0; i < len(s); {
		if s[i] != c {
			i++
			continue
		}
		n := runLength(s, i, c)
		if n > max {
			max = n
		}
		i += n
	}
	return max
}

// skipEscape returns the index just past the escape pair starting at
// s[i], or i if s[i] does not begin one. A backslash pairs with any
// following rune; whether the backslash survives is decided later by
// literalText.
func skipEscape(s string, i int) int {
	if i < len(s) && s[i] == '\\' && i+1 < len(s) {
		_, size := utf8.DecodeRuneInString(s[i+1:])
		return i + 1 + size
	}
	return i
}

// scanDigits returns the index past the run of ASCII digits at s[i:].
func scanDigits(s string, i int) int {
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return i
}

// literalText converts a raw source span into the text it displays as:
// backslashes before escapable runes are removed, other backslashes
// stay, and runs of spaces immediately before a newline are dropped.
func literalText(s string) string {
	if !strings.ContainsAny(s, "\\\n") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		c := s[i]
		if c == '\\' && i+1 < len(s) {
			r, size := utf8.DecodeRuneInString(s[i+1:])
			if isEscapable(r) {
				b.WriteString(s[i+1 : i+1+size])
				i += 1 + size
				continue
			}
		}
		if c == '\n' {
			// Trailing spaces on a line do not display.
			out := b.String()
			n := len(out)
			for n > 0 && out[n-1] == ' ' {
				n--
			}
			if n < len(out) {
				b.Reset()
				b.WriteString(out[:n])
			}
		}
		b.WriteByte(c)
		i++
	}
	return b.String()
}
