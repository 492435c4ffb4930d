// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package discordmd

// parseSlashCommand matches a command reference </name:id> at s[i],
// with up to two space-separated subcommand segments before the id.
// Segments are 1 to 32 characters of word characters and hyphens.
func parseSlashCommand(s string, i int) (Node, int) {
	j := i + 2
	var segs []string
	for {
		k := j
		for k < len(s) && (isWord(s[k]) || s[k] == '-') {
			k++
		}
		if k == j || k-j > 32 {
			return nil, 0
		}
		segs = append(segs, s[j:k])
		j = k
		if j < len(s) && s[j] == ' ' && len(segs) < 3 {
			j++
			continue
		}
		break
	}
	if j >= len(s) || s[j] != ':' {
		return nil, 0
	}
	id, e, ok := parseID(s, j+1)
	if !ok {
		return nil, 0
	}
	path := segs[1:]
	if len(path) == 0 {
		path = nil
	}
	return &SlashCommand{Name: segs[0], Path: path, ID: id}, e
}
