package htmltext

import (
	"regexp"
	"strings"
)

var (
	// Line-break tags, with optional whitespace and self-closing slash.
	lineBreakRe = regexp.MustCompile(`(?i)<br\s*/?\s*>`)

	// Closing block tags that imply a line break.
	blockCloseRe = regexp.MustCompile(`(?i)</\s*(?:div|p)\s*>`)

	// Any remaining tag, opening or otherwise.
	tagRe = regexp.MustCompile(`<[^>]*>`)

	// Runs of spaces and tabs. Newlines are handled separately.
	spaceRunRe = regexp.MustCompile(`[ \t]+`)

	// A newline, any number of whitespace-only lines, and another newline.
	blankLineRe = regexp.MustCompile(`\n(?:[ \t]*\n)+`)
)

// ToPlainText flattens a rendered HTML address to plain text. Break and
// closing block tags become newlines, every other tag is stripped, entities
// are decoded, and whitespace is normalized. The order is significant: tags
// are stripped before entities are decoded, and space collapsing runs after
// decoding so a decoded &nbsp; collapses like any other space. The result is
// stable under re-rendering.
func ToPlainText(html string) string {
	if html == "" {
		return ""
	}

	text := lineBreakRe.ReplaceAllString(html, "\n")
	text = blockCloseRe.ReplaceAllString(text, "\n")
	text = tagRe.ReplaceAllString(text, "")
	text = DecodeEntities(text)
	text = spaceRunRe.ReplaceAllString(text, " ")
	text = blankLineRe.ReplaceAllString(text, "\n")
	return strings.TrimSpace(text)
}
