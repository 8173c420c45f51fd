// Package markup flattens presentation text runs and paragraphs into
// HTML-like markup strings. Inline tags always nest in the fixed order
// bold, italic, underline, strikethrough, outermost first, no matter
// how the source attributes are ordered.
package markup

import (
	"strconv"
	"strings"

	"github.com/tsawler/slidenotes/dom"
)

// Markers used for indented paragraphs.
const (
	IndentMarker = "\t"
	BulletMarker = "•"
)

// inlineStyles lists the run-property attributes in canonical nesting
// order. Opening tags are appended to the prefix and closing tags
// prepended to the suffix in this same order, which is what keeps the
// nesting deterministic.
var inlineStyles = []struct {
	attr string
	tag  string
	set  func(v string, ok bool) bool
}{
	{"b", "b", boldSet},
	{"i", "i", italicSet},
	{"u", "u", underlineSet},
	{"strike", "s", strikeSet},
}

// boldSet reports whether a bold attribute is set: present and parsing
// as a nonzero integer. Malformed values degrade to "not set".
func boldSet(v string, ok bool) bool {
	return nonzeroInt(v, ok)
}

// italicSet has the same nonzero-integer semantics as boldSet.
func italicSet(v string, ok bool) bool {
	return nonzeroInt(v, ok)
}

// underlineSet reports whether an underline attribute is set: present
// and not the "none" sentinel.
func underlineSet(v string, ok bool) bool {
	return ok && v != "none"
}

// strikeSet reports whether a strikethrough attribute is set: present
// and not the "noStrike" sentinel.
func strikeSet(v string, ok bool) bool {
	return ok && v != "noStrike"
}

func nonzeroInt(v string, ok bool) bool {
	if !ok {
		return false
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	return err == nil && n != 0
}

// Run formats a single run element (an "r" node). A run with no rPr
// child is returned as its bare text. A run with run properties is
// wrapped in the tags for every flag that is set; a structurally
// absent text element renders as the empty string inside the tags.
func Run(r *dom.Node) string {
	var text string
	if t := r.Child("t"); t != nil {
		text = t.Text()
	}

	props := r.Child("rPr")
	if props == nil {
		return text
	}

	var prefix strings.Builder
	var suffix string
	for _, style := range inlineStyles {
		if style.set(props.Attr(style.attr)) {
			prefix.WriteString("<")
			prefix.WriteString(style.tag)
			prefix.WriteString(">")
			suffix = "</" + style.tag + ">" + suffix
		}
	}

	return prefix.String() + text + suffix
}

// Paragraph formats a paragraph element (a "p" node) as a <p> block.
// An indent level n > 0 produces n tab markers and one bullet marker;
// level 0 or a missing/non-numeric level produces no prefix. Every run
// contributes a leading space, even when its formatted output is empty.
func Paragraph(p *dom.Node) string {
	var b strings.Builder
	b.WriteString("<p>")
	b.WriteString(indentPrefix(p))
	for _, r := range p.ChildElements("r") {
		b.WriteString(" ")
		b.WriteString(Run(r))
	}
	b.WriteString("</p>")
	return b.String()
}

// indentPrefix reads the indent level from the paragraph-properties
// child. Absent container, absent attribute, a non-numeric value, or
// level zero all yield an empty prefix.
func indentPrefix(p *dom.Node) string {
	props := p.Child("pPr")
	if props == nil {
		return ""
	}
	v, ok := props.Attr("lvl")
	if !ok {
		return ""
	}
	lvl, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || lvl <= 0 {
		return ""
	}
	return strings.Repeat(IndentMarker, lvl) + BulletMarker
}
