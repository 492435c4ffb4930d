// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package discordmd

// A Node is an element of a parsed message tree, one of
// [Root], [Text], [Emphasis], [InlineCode], [CodeBlock],
// [BlockQuote], [Heading], [Subtext], [List], [Link], [AutoLink],
// [UserMention], [RoleMention], [ChannelMention],
// [EveryoneMention], [HereMention],
// [CustomEmoji], [UnicodeEmoji], [Timestamp], and [SlashCommand].
//
// The method set is unexported, so the set of kinds is closed:
// a type switch over the list above is exhaustive.
type Node interface {
	node()

	printMarkup(p *printer, next Node)
}

// A Root is the top of a parsed message tree.
type Root struct {
	Children []Node
}

// A Text is a leaf holding literal text, with escapes already removed.
type Text struct {
	Text string
}

// An EmphasisKind identifies one of the five styling spans.
type EmphasisKind int

const (
	Bold          EmphasisKind = iota // **text**
	Italic                            // *text* or _text_
	Underline                         // __text__
	Strikethrough                     // ~~text~~
	Spoiler                           // ||text||
)

func (k EmphasisKind) String() string {
	switch k {
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case Underline:
		return "underline"
	case Strikethrough:
		return "strikethrough"
	case Spoiler:
		return "spoiler"
	}
	return "emphasis"
}

// An Emphasis is a styling span containing more markup.
type Emphasis struct {
	Kind     EmphasisKind
	Children []Node
}

// An InlineCode is a backtick code span. Text is verbatim:
// nothing inside a code span is recognized as markup.
type InlineCode struct {
	Text string
}

// A CodeBlock is a fenced code block. Lang is the language tag
// following the opening fence, or empty. Text is verbatim.
type CodeBlock struct {
	Lang string
	Text string
}

// A BlockQuote is one or more quoted lines, either a group of
// contiguous "> " lines or a ">>> " rest-of-message quote.
type BlockQuote struct {
	Children []Node
}

// A Heading is a "# "-prefixed line. Level is 1 through 3.
type Heading struct {
	Level    int
	Children []Node
}

// A Subtext is a "-# "-prefixed line, displayed as small text.
type Subtext struct {
	Children []Node
}

// A List is a group of list items. For ordered lists, Start is the
// number of the first marker, clamped to [1, 1000000000];
// for unordered lists it is zero.
type List struct {
	Ordered bool
	Start   int
	Items   [][]Node
}

// A Link is a masked link "[label](target)". Target is taken verbatim
// from the source and is not validated.
type Link struct {
	Label  []Node
	Target string
}

// An AutoLink is a bare URL recognized without markup.
// Suppressed marks the <url> form, which disables the embed.
type AutoLink struct {
	URL        string
	Suppressed bool
}

// A UserMention is <@id> or <@!id>. Nick reports the <@!id> form.
// Only the ID appears in message content; resolving it to a name
// is the caller's concern.
type UserMention struct {
	ID   uint64
	Nick bool
}

// A RoleMention is <@&id>.
type RoleMention struct {
	ID uint64
}

// A ChannelMention is <#id>.
type ChannelMention struct {
	ID uint64
}

// An EveryoneMention is a literal @everyone.
//
// This reflects how the text renders, not whether it pings:
// \@everyone renders as plain text but still pings.
type EveryoneMention struct{}

// A HereMention is a literal @here.
type HereMention struct{}

// A CustomEmoji is <:name:id> or, when Animated, <a:name:id>.
type CustomEmoji struct {
	Name     string
	ID       uint64
	Animated bool
}

// A UnicodeEmoji is a single emoji grapheme cluster from the text.
type UnicodeEmoji struct {
	Emoji string
}

// A TimestampStyle is the single-character display style of a Timestamp.
type TimestampStyle byte

const (
	StyleShortTime     TimestampStyle = 't'
	StyleLongTime      TimestampStyle = 'T'
	StyleShortDate     TimestampStyle = 'd'
	StyleLongDate      TimestampStyle = 'D'
	StyleShortDateTime TimestampStyle = 'f' // the default
	StyleLongDateTime  TimestampStyle = 'F'
	StyleRelative      TimestampStyle = 'R'
)

// A Timestamp is <t:seconds> or <t:seconds:style>.
// Style is always set; the bare form stores StyleShortDateTime.
type Timestamp struct {
	Unix  int64
	Style TimestampStyle
}

// A SlashCommand is a command reference </name:id> or, with
// subcommands, </name group sub:id>; Path holds the segments
// after the first.
type SlashCommand struct {
	Name string
	Path []string
	ID   uint64
}

func (*Root) node()            {}
func (*Text) node()            {}
func (*Emphasis) node()        {}
func (*InlineCode) node()      {}
func (*CodeBlock) node()       {}
func (*BlockQuote) node()      {}
func (*Heading) node()         {}
func (*Subtext) node()         {}
func (*List) node()            {}
func (*Link) node()            {}
func (*AutoLink) node()        {}
func (*UserMention) node()     {}
func (*RoleMention) node()     {}
func (*ChannelMention) node()  {}
func (*EveryoneMention) node() {}
func (*HereMention) node()     {}
func (*CustomEmoji) node()     {}
func (*UnicodeEmoji) node()    {}
func (*Timestamp) node()       {}
func (*SlashCommand) node()    {}
