// Package markup parses the restricted-tag HTML produced by the editor into
// an ordered sequence of Blocks. Only the tags {p, h1, h2, h3, li, ul, ol,
// blockquote, br} carry semantic meaning; everything else is structurally
// transparent. Character references are decoded by the tokenizer.
package markup

// BlockKind identifies the semantic role of a Block.
type BlockKind int

const (
	Paragraph BlockKind = iota
	Heading
	ListItem
	Quote
)

// String returns the kind name for diagnostics.
func (k BlockKind) String() string {
	switch k {
	case Paragraph:
		return "paragraph"
	case Heading:
		return "heading"
	case ListItem:
		return "list item"
	case Quote:
		return "quote"
	}
	return "unknown"
}

// ListKind identifies the marker style of a list container.
type ListKind int

const (
	Bullet ListKind = iota
	Number
)

// String returns the list kind name for diagnostics.
func (k ListKind) String() string {
	if k == Bullet {
		return "bullet"
	}
	return "number"
}

// Block is one semantic content unit. Blocks are transient: created at
// block close (or the end-of-input flush), consumed immediately by a
// renderer, never mutated after creation.
type Block struct {
	Kind  BlockKind
	Level int      // heading level 1-3, set iff Kind == Heading
	List  ListKind // marker style, set iff Kind == ListItem
	Text  string   // trimmed inline text, never empty
}
