// Package flow builds the print story: the ordered flowables handed to the
// page layout engine. The engine owns pagination; this package only decides
// which flowables exist and in what order.
package flow

import (
	"fmt"
	"html"
	"strings"

	"github.com/alnah/go-htmldoc/internal/markup"
)

// Flowable is one print-layout primitive the engine arranges across pages.
type Flowable interface {
	appendHTML(b *strings.Builder)
}

// ParaStyle selects the visual treatment of a flow paragraph.
type ParaStyle int

const (
	StyleBody ParaStyle = iota
	StyleHeading1
	StyleHeading2
	StyleHeading3
	StyleQuote
)

// Para is a single flow paragraph.
type Para struct {
	Style ParaStyle
	Text  string
}

// Spacer is fixed vertical space trailing another flowable.
type Spacer struct {
	Points int
}

// List is a grouped list flowable: every item of one list container in a
// single unit. The engine renders markers per list, not per item, so
// emitting items independently would break marker alignment and numbering.
type List struct {
	Kind  markup.ListKind
	Items []string
}

// Trailing spacer heights in points. Space below a heading shrinks as the
// level increases, which is what produces the visual hierarchy.
const (
	spacerAfterH1   = 12
	spacerAfterH2   = 10
	spacerAfterH3   = 8
	spacerAfterBody = 6
)

// PlaceholderText is emitted when the model is empty; the layout engine
// rejects a story with no flowables.
const PlaceholderText = "Empty document"

// BuildStory maps the Block sequence to flowables. List items are buffered
// and materialized as one grouped List when their container closes or a
// non-list block begins. An empty model produces a single placeholder
// paragraph so the output is always structurally valid.
func BuildStory(blocks []markup.Block) []Flowable {
	var story []Flowable
	var pending *List

	flushList := func() {
		if pending == nil {
			return
		}
		story = append(story, *pending, Spacer{Points: spacerAfterBody})
		pending = nil
	}

	for _, b := range blocks {
		if b.Kind == markup.ListItem {
			if pending == nil || pending.Kind != b.List {
				flushList()
				pending = &List{Kind: b.List}
			}
			pending.Items = append(pending.Items, b.Text)
			continue
		}

		flushList()
		switch b.Kind {
		case markup.Heading:
			story = append(story,
				Para{Style: headingStyle(b.Level), Text: b.Text},
				Spacer{Points: headingSpacer(b.Level)},
			)
		case markup.Quote:
			story = append(story,
				Para{Style: StyleQuote, Text: b.Text},
				Spacer{Points: spacerAfterBody},
			)
		default:
			story = append(story,
				Para{Style: StyleBody, Text: b.Text},
				Spacer{Points: spacerAfterBody},
			)
		}
	}
	flushList()

	if len(story) == 0 {
		story = append(story, Para{Style: StyleBody, Text: PlaceholderText})
	}
	return story
}

func headingStyle(level int) ParaStyle {
	switch level {
	case 1:
		return StyleHeading1
	case 3:
		return StyleHeading3
	default:
		return StyleHeading2
	}
}

func headingSpacer(level int) int {
	switch level {
	case 1:
		return spacerAfterH1
	case 3:
		return spacerAfterH3
	default:
		return spacerAfterH2
	}
}

// escape encodes text for the engine, turning line-break markers into <br/>.
func escape(text string) string {
	return strings.ReplaceAll(html.EscapeString(text), "\n", "<br/>")
}

func (p Para) appendHTML(b *strings.Builder) {
	switch p.Style {
	case StyleHeading1:
		fmt.Fprintf(b, "<h1>%s</h1>\n", escape(p.Text))
	case StyleHeading2:
		fmt.Fprintf(b, "<h2>%s</h2>\n", escape(p.Text))
	case StyleHeading3:
		fmt.Fprintf(b, "<h3>%s</h3>\n", escape(p.Text))
	case StyleQuote:
		fmt.Fprintf(b, `<p class="quote">%s</p>`+"\n", escape(p.Text))
	default:
		fmt.Fprintf(b, "<p>%s</p>\n", escape(p.Text))
	}
}

func (s Spacer) appendHTML(b *strings.Builder) {
	fmt.Fprintf(b, `<div style="height: %dpt"></div>`+"\n", s.Points)
}

func (l List) appendHTML(b *strings.Builder) {
	tag := "ul"
	if l.Kind == markup.Number {
		tag = "ol"
	}
	fmt.Fprintf(b, "<%s>\n", tag)
	for _, item := range l.Items {
		fmt.Fprintf(b, "<li>%s</li>\n", escape(item))
	}
	fmt.Fprintf(b, "</%s>\n", tag)
}
