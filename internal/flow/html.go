package flow

import "strings"

// storyCSS is the fixed styling the story relies on. Block margins are
// zeroed so the explicit spacers own the vertical rhythm; the quote style
// is indented, gray and italic.
const storyCSS = `body { font-family: Helvetica, Arial, sans-serif; font-size: 11pt; line-height: 1.3; }
p, h1, h2, h3, ul, ol { margin: 0; }
h1 { font-size: 18pt; }
h2 { font-size: 15pt; }
h3 { font-size: 13pt; }
p.quote { margin-left: 20pt; color: #555555; font-style: italic; }
ul, ol { padding-left: 24pt; }
li { margin-bottom: 2pt; }
`

// htmlPrologue and htmlEpilogue wrap the story in a complete HTML5 document
// for the layout engine.
const (
	htmlPrologue = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Document</title>
<style>
` + storyCSS + `</style>
</head>
<body>
`
	htmlEpilogue = `</body>
</html>
`
)

// StoryHTML serializes the story for the layout engine.
func StoryHTML(story []Flowable) string {
	var b strings.Builder
	b.WriteString(htmlPrologue)
	for _, f := range story {
		f.appendHTML(&b)
	}
	b.WriteString(htmlEpilogue)
	return b.String()
}
