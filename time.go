// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package discordmd

import (
	"strconv"
	"strings"
)

// maxTimestamp bounds <t:...> seconds to what the client can display,
// about 275760-09-13 either side of the epoch.
const maxTimestamp = 8_640_000_000_000

// parseTimestamp matches <t:seconds> or <t:seconds:style> at s[i].
// Seconds may be negative. A style outside tTdDfFR, or seconds out
// of range, does not validate.
func parseTimestamp(s string, i int) (Node, int) {
	j := i + 2
	if j >= len(s) || s[j] != ':' {
		return nil, 0
	}
	j++
	k := j
	if k < len(s) && s[k] == '-' {
		k++
	}
	e := scanDigits(s, k)
	if e == k {
		return nil, 0
	}
	v, err := strconv.ParseInt(s[j:e], 10, 64)
	if err != nil || v > maxTimestamp || v < -maxTimestamp {
		return nil, 0
	}
	style := StyleShortDateTime
	if e < len(s) && s[e] == ':' {
		if e+1 >= len(s) || !strings.ContainsRune("tTdDfFR", rune(s[e+1])) {
			return nil, 0
		}
		style = TimestampStyle(s[e+1])
		e += 2
	}
	if e >= len(s) || s[e] != '>' {
		return nil, 0
	}
	return &Timestamp{Unix: v, Style: style}, e + 1
}
