// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package discordmd

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// parseAngle dispatches the <...> token forms on the byte after the
// bracket. A form that does not validate claims nothing, so the
// bracket and everything after it stay literal text.
func parseAngle(s string, i int) (Node, int) {
	if i+1 >= len(s) {
		return nil, 0
	}
	switch s[i+1] {
	case '@':
		j := i + 2
		if j < len(s) && s[j] == '&' {
			if id, e, ok := parseID(s, j+1); ok {
				return &RoleMention{ID: id}, e
			}
			return nil, 0
		}
		if j < len(s) && s[j] == '!' {
			if id, e, ok := parseID(s, j+1); ok {
				return &UserMention{ID: id, Nick: true}, e
			}
			return nil, 0
		}
		if id, e, ok := parseID(s, j); ok {
			return &UserMention{ID: id}, e
		}
	case '#':
		if id, e, ok := parseID(s, i+2); ok {
			return &ChannelMention{ID: id}, e
		}
	case ':', 'a':
		return parseCustomEmoji(s, i)
	case 't':
		return parseTimestamp(s, i)
	case '/':
		return parseSlashCommand(s, i)
	case 'h':
		return parseSuppressedLink(s, i)
	}
	return nil, 0
}

// parseID parses a run of digits at s[j:] closed by '>' into a
// snowflake. IDs too large for uint64 do not validate.
func parseID(s string, j int) (uint64, int, bool) {
	e := scanDigits(s, j)
	if e == j || e >= len(s) || s[e] != '>' {
		return 0, 0, false
	}
	id, err := strconv.ParseUint(s[j:e], 10, 64)
	if err != nil {
		return 0, 0, false
	}
	return id, e + 1, true
}

// parseAtMention matches a literal @everyone or @here at s[i].
// Both need a non-word character on each side, so an address like
// a@here.example stays text.
func parseAtMention(s string, i int) (Node, int) {
	if i > 0 {
		r, _ := utf8.DecodeLastRuneInString(s[:i])
		if isWordRune(r) {
			return nil, 0
		}
	}
	if strings.HasPrefix(s[i:], "@everyone") && !wordAt(s, i+len("@everyone")) {
		return &EveryoneMention{}, i + len("@everyone")
	}
	if strings.HasPrefix(s[i:], "@here") && !wordAt(s, i+len("@here")) {
		return &HereMention{}, i + len("@here")
	}
	return nil, 0
}

func wordAt(s string, i int) bool {
	if i >= len(s) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return isWordRune(r)
}
