// Package htmltext converts the HTML address snippets delivered by the GPN
// API into plain text suitable for a single cell or tool result.
package htmltext

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// entityReplacer maps the named entities the GPN renderer emits to their
// literal characters. The set is fixed; anything outside it is either a
// numeric reference or passes through untouched. Replacement happens in a
// single pass, so decoded output is never re-scanned (e.g. "&amp;lt;"
// becomes "&lt;", not "<").
var entityReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#039;", "'",
	"&apos;", "'",
	"&nbsp;", " ",
	"&ndash;", "–",
	"&mdash;", "—",
	"&ouml;", "ö",
	"&uuml;", "ü",
	"&auml;", "ä",
	"&Ouml;", "Ö",
	"&Uuml;", "Ü",
	"&Auml;", "Ä",
	"&szlig;", "ß",
)

var (
	decimalRefRe = regexp.MustCompile(`&#([0-9]+);`)
	hexRefRe     = regexp.MustCompile(`&#[xX]([0-9a-fA-F]+);`)
)

// DecodeEntities decodes the fixed named-entity table and then numeric
// character references (&#65; and &#x41; forms). Malformed references are
// left as-is.
func DecodeEntities(text string) string {
	text = entityReplacer.Replace(text)
	text = decimalRefRe.ReplaceAllStringFunc(text, func(ref string) string {
		return decodeCodePoint(ref, ref[2:len(ref)-1], 10)
	})
	text = hexRefRe.ReplaceAllStringFunc(text, func(ref string) string {
		return decodeCodePoint(ref, ref[3:len(ref)-1], 16)
	})
	return text
}

// decodeCodePoint converts a numeric reference body to its character.
// Out-of-range code points keep the original reference text.
func decodeCodePoint(ref, digits string, base int) string {
	n, err := strconv.ParseInt(digits, base, 32)
	if err != nil || !utf8.ValidRune(rune(n)) {
		return ref
	}
	return string(rune(n))
}
