// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package discordmd

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Format renders a tree back into markup. Parsing the result yields
// an equivalent tree for any tree produced by [Parse]; trees built
// by hand may contain text no markup can express, such as a code
// span whose content starts with a backtick, and render approximately.
func Format(n Node) string {
	var p printer
	n.printMarkup(&p, nil)
	return p.String()
}

func printNodes(p *printer, nodes []Node) {
	for i, n := range nodes {
		var next Node
		if i+1 < len(nodes) {
			next = nodes[i+1]
		}
		n.printMarkup(p, next)
	}
}

func (x *Root) printMarkup(p *printer, _ Node) {
	printNodes(p, x.Children)
}

func (x *Text) printMarkup(p *printer, _ Node) {
	s := x.Text
	if p.noEscape {
		p.WriteString(s)
		return
	}
	// Position on the output line: 0 at the start, 1 after spaces
	// only, 2 past other text. Quote, heading, and list markers only
	// open in the first two states, so only there do they need
	// escaping.
	pos := 0
	for b, k := p.Bytes(), p.Len()-1; k >= 0; k-- {
		if b[k] == '\n' {
			break
		}
		if b[k] != ' ' {
			pos = 2
			break
		}
		pos = 1
	}
	for i := 0; i < len(s); {
		c := s[i]
		switch c {
		case '*', '_', '<', '@', ':', '[', '`', '\\':
			p.WriteByte('\\')
			p.WriteByte(c)
			pos = 2
			i++
		case '|', '~':
			// Only the doubled form means anything.
			if i+1 < len(s) && s[i+1] == c {
				p.WriteByte('\\')
				p.WriteByte(c)
				p.WriteByte(c)
				i += 2
			} else {
				p.WriteByte(c)
				i++
			}
			pos = 2
		case '>':
			if pos < 2 {
				p.WriteByte('\\')
			}
			p.WriteByte(c)
			pos = 2
			i++
		case '#':
			if pos == 0 {
				p.WriteByte('\\')
			}
			p.WriteByte(c)
			pos = 2
			i++
		case '-':
			if pos < 2 && i+1 < len(s) && (s[i+1] == ' ' || s[i+1] == '#') {
				p.WriteByte('\\')
			}
			p.WriteByte(c)
			pos = 2
			i++
		case '\n':
			p.WriteByte(c)
			pos = 0
			i++
		case ' ':
			p.WriteByte(c)
			if pos == 0 {
				pos = 1
			}
			i++
		default:
			if pos < 2 && c >= '0' && c <= '9' {
				// A digit run and a dot at a line start would become
				// an ordered list marker. The digits cannot take a
				// backslash, but the dot can.
				if m := scanDigits(s, i); m-i <= 10 && m+1 < len(s) && s[m] == '.' && s[m+1] == ' ' {
					p.WriteString(s[i:m])
					p.WriteString(`\.`)
					pos = 2
					i = m + 1
					continue
				}
			}
			if c < utf8.RuneSelf {
				p.WriteByte(c)
				pos = 2
				i++
			} else {
				r, size := utf8.DecodeRuneInString(s[i:])
				if isEmojiRune(r) {
					p.WriteByte('\\')
				}
				p.WriteString(s[i : i+size])
				pos = 2
				i += size
			}
		}
	}
}

func (x *Emphasis) printMarkup(p *printer, next Node) {
	var q printer
	q.noEscape = p.noEscape
	printNodes(&q, x.Children)
	body := q.String()

	var d string
	switch x.Kind {
	case Bold:
		d = "**"
	case Italic:
		// Underscores read badly flush against a following word,
		// so fall back to stars when the next text begins with one
		// and the body can live between single stars.
		d = "_"
		if t, ok := next.(*Text); ok && t.Text != "" {
			if r, _ := utf8.DecodeRuneInString(t.Text); isWordRune(r) && starSafe(body) {
				d = "*"
			}
		}
	case Underline:
		d = "__"
	case Strikethrough:
		d = "~~"
	case Spoiler:
		d = "||"
	}
	p.WriteString(d)
	p.WriteString(body)
	p.WriteString(d)
}

// starSafe reports whether body can sit between single stars: the
// opener must not precede whitespace, and the content may end with
// at most two spaces on a printing character.
func starSafe(body string) bool {
	if body == "" || isSpace(body[0]) {
		return false
	}
	sp := 0
	for sp < len(body) && body[len(body)-1-sp] == ' ' {
		sp++
	}
	if sp > 2 || sp == len(body) {
		return false
	}
	b := body[len(body)-1-sp]
	return b != '\t' && b != '\n'
}

func (x *InlineCode) printMarkup(p *printer, _ Node) {
	fence := strings.Repeat("`", maxRunLength(x.Text, '`')+1)
	pad := ""
	if strings.HasPrefix(x.Text, "`") || strings.HasSuffix(x.Text, "`") {
		pad = " "
	}
	p.WriteString(fence)
	p.WriteString(pad)
	p.WriteString(x.Text)
	p.WriteString(pad)
	p.WriteString(fence)
}

func (x *CodeBlock) printMarkup(p *printer, _ Node) {
	p.WriteString("```")
	p.WriteString(x.Lang)
	p.WriteByte('\n')
	p.WriteString(x.Text)
	p.WriteString("\n```\n")
}

// indented renders children on their own and returns the lines,
// for the block forms that prefix every line.
func indented(nodes []Node) []string {
	var q printer
	printNodes(&q, nodes)
	return strings.Split(strings.TrimSuffix(q.String(), "\n"), "\n")
}

func (x *BlockQuote) printMarkup(p *printer, _ Node) {
	for _, line := range indented(x.Children) {
		p.WriteString("> ")
		p.WriteString(line)
		p.WriteByte('\n')
	}
}

func (x *Heading) printMarkup(p *printer, _ Node) {
	p.WriteString(strings.Repeat("#", x.Level))
	if len(x.Children) == 0 {
		// A bare marker reads back as an empty heading; a closing
		// marker alone would not.
		p.WriteByte('\n')
		return
	}
	p.WriteByte(' ')
	printNodes(p, x.Children)
	// A closing marker keeps following text out of the title.
	p.WriteString(" #\n")
}

func (x *Subtext) printMarkup(p *printer, _ Node) {
	p.WriteString("-# ")
	printNodes(p, x.Children)
	p.WriteByte('\n')
}

func (x *List) printMarkup(p *printer, _ Node) {
	bullet := "- "
	if x.Ordered {
		bullet = strconv.Itoa(x.Start) + ". "
	}
	indent := strings.Repeat(" ", len(bullet))
	for _, item := range x.Items {
		for k, line := range indented(item) {
			if k == 0 {
				p.WriteString(bullet)
			} else {
				p.WriteString(indent)
			}
			p.WriteString(line)
			p.WriteByte('\n')
		}
	}
}

func (x *Link) printMarkup(p *printer, _ Node) {
	p.WriteByte('[')
	save := p.noEscape
	p.noEscape = true
	printNodes(p, x.Label)
	p.noEscape = save
	p.WriteString("](")
	p.WriteString(x.Target)
	p.WriteByte(')')
}

func (x *AutoLink) printMarkup(p *printer, _ Node) {
	if x.Suppressed {
		p.WriteByte('<')
		p.WriteString(x.URL)
		p.WriteByte('>')
	} else {
		p.WriteString(x.URL)
	}
}

func (x *UserMention) printMarkup(p *printer, _ Node) {
	if x.Nick {
		fmt.Fprintf(p, "<@!%d>", x.ID)
	} else {
		fmt.Fprintf(p, "<@%d>", x.ID)
	}
}

func (x *RoleMention) printMarkup(p *printer, _ Node) {
	fmt.Fprintf(p, "<@&%d>", x.ID)
}

func (x *ChannelMention) printMarkup(p *printer, _ Node) {
	fmt.Fprintf(p, "<#%d>", x.ID)
}

func (x *EveryoneMention) printMarkup(p *printer, _ Node) {
	p.WriteString("@everyone")
}

func (x *HereMention) printMarkup(p *printer, _ Node) {
	p.WriteString("@here")
}

func (x *CustomEmoji) printMarkup(p *printer, _ Node) {
	if x.Animated {
		fmt.Fprintf(p, "<a:%s:%d>", x.Name, x.ID)
	} else {
		fmt.Fprintf(p, "<:%s:%d>", x.Name, x.ID)
	}
}

func (x *UnicodeEmoji) printMarkup(p *printer, _ Node) {
	p.WriteString(x.Emoji)
}

func (x *Timestamp) printMarkup(p *printer, _ Node) {
	if x.Style == StyleShortDateTime {
		fmt.Fprintf(p, "<t:%d>", x.Unix)
	} else {
		fmt.Fprintf(p, "<t:%d:%c>", x.Unix, x.Style)
	}
}

func (x *SlashCommand) printMarkup(p *printer, _ Node) {
	p.WriteString("</")
	p.WriteString(x.Name)
	for _, seg := range x.Path {
		p.WriteByte(' ')
		p.WriteString(seg)
	}
	fmt.Fprintf(p, ":%d>", x.ID)
}
