package markup

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// ErrMalformedMarkup reports a tokenization failure in the input stream.
var ErrMalformedMarkup = errors.New("markup tokenization failed")

// blockTags maps each semantic start tag to the kind of Block it opens.
var blockTags = map[string]BlockKind{
	"p":          Paragraph,
	"h1":         Heading,
	"h2":         Heading,
	"h3":         Heading,
	"li":         ListItem,
	"blockquote": Quote,
}

// headingLevels gives the level carried by each heading tag.
var headingLevels = map[string]int{"h1": 1, "h2": 2, "h3": 3}

// parser is the streaming state: at most one open block tag, one active
// list container, and a single inline buffer owned until the next flush.
type parser struct {
	blocks []Block
	buf    strings.Builder

	open    bool
	openTag string
	kind    BlockKind
	level   int

	list     ListKind
	listOpen bool
}

// Parse consumes restricted-tag HTML and returns the emitted Blocks in
// document order. It streams through the tokenizer without backtracking:
// tags outside the semantic set are ignored as tags while their enclosed
// text still flows into the current buffer, and trailing unterminated
// content is flushed at end of input rather than lost.
func Parse(content string) ([]Block, error) {
	p := &parser{}
	z := html.NewTokenizer(strings.NewReader(content))

	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return nil, fmt.Errorf("%w: %v", ErrMalformedMarkup, err)
			}
			// Equivalent to closing any still-open block.
			p.flush()
			return p.blocks, nil

		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			p.startTag(string(name))

		case html.EndTagToken:
			name, _ := z.TagName()
			p.endTag(string(name))

		case html.TextToken:
			p.buf.Write(z.Text())
		}
	}
}

// startTag handles a semantic start tag. Opening a block tag while another
// block is open forces the previous one to flush first.
func (p *parser) startTag(name string) {
	switch name {
	case "ul":
		p.list, p.listOpen = Bullet, true
	case "ol":
		p.list, p.listOpen = Number, true
	case "br":
		p.buf.WriteByte('\n')
	default:
		kind, ok := blockTags[name]
		if !ok {
			return
		}
		p.flush()
		p.open = true
		p.openTag = name
		p.kind = kind
		p.level = headingLevels[name]
	}
}

// endTag closes the active list container or flushes the open block.
func (p *parser) endTag(name string) {
	switch name {
	case "ul", "ol":
		p.listOpen = false
	default:
		if p.open && name == p.openTag {
			p.flush()
		}
	}
}

// flush hands the buffered text off into a Block and resets the buffer.
// Whitespace-only content is discarded: no Block is emitted for it. Text
// accumulated outside any open block is likewise dropped.
func (p *parser) flush() {
	text := strings.TrimSpace(p.buf.String())
	p.buf.Reset()

	open := p.open
	p.open = false
	if !open || text == "" {
		return
	}

	b := Block{Kind: p.kind, Text: text}
	switch p.kind {
	case Heading:
		b.Level = p.level
	case ListItem:
		// An item with no open container keeps the numbered style.
		b.List = Number
		if p.listOpen {
			b.List = p.list
		}
	}
	p.blocks = append(p.blocks, b)
}
