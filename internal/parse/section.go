package parse

import (
	"strings"
	"unicode"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/proplens/proplens/internal/report"
)

// RawSection is one split part of the report: a top-level heading line and
// the raw body text that follows it, up to the next top-level heading.
type RawSection struct {
	Heading string
	Body    string
}

// SplitSections splits the full report text at top-level heading lines
// (markdown levels one and two), tolerant of emoji prefixes, bold markers
// and surrounding whitespace. Parts with an empty body after trimming are
// discarded, so input with no headings, or with only headings and no bodies,
// yields an empty list. Splitting never fails.
func SplitSections(input string) []RawSection {
	src := []byte(input)
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	type mark struct {
		title     string
		lineStart int // byte offset of the heading line itself
		bodyStart int // byte offset just past the heading line
	}
	var marks []mark

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		h, ok := n.(*ast.Heading)
		if !ok || h.Level > 2 || h.Lines().Len() == 0 {
			continue
		}
		seg := h.Lines().At(0)
		lineStart := lineStartBefore(src, seg.Start)
		marks = append(marks, mark{
			title:     cleanHeading(string(h.Text(src))),
			lineStart: lineStart,
			bodyStart: lineEndAfter(src, lineStart),
		})
	}

	trimmed := strings.TrimSpace(input)
	var sections []RawSection
	for i, m := range marks {
		end := len(src)
		if i+1 < len(marks) {
			end = marks[i+1].lineStart
		}
		body := strings.TrimSpace(string(src[m.bodyStart:end]))
		if body == "" || m.title == "" {
			continue
		}
		// Degenerate split: no real heading was found and the "heading"
		// is the entire input. Dropping it avoids re-emitting the whole
		// raw report as one section.
		if m.title == trimmed {
			continue
		}
		sections = append(sections, RawSection{Heading: m.title, Body: body})
	}
	return sections
}

// Classify maps a heading to its section kind by case-insensitive substring
// match against a fixed vocabulary. Unmatched headings are Generic.
func Classify(heading string) report.SectionKind {
	h := strings.ToLower(heading)
	switch {
	case strings.Contains(h, "property overview"):
		return report.KindOverview
	case strings.Contains(h, "price history"):
		return report.KindPriceHistory
	case strings.Contains(h, "suburb profile") || strings.Contains(h, "demographic"):
		return report.KindSuburb
	case strings.Contains(h, "school catchment"):
		return report.KindSchools
	case strings.Contains(h, "investment") || strings.Contains(h, "value"):
		return report.KindInvestment
	default:
		return report.KindGeneric
	}
}

// cleanHeading drops the emoji prefix and bold artifacts goldmark has not
// already stripped, leaving the title text.
func cleanHeading(s string) string {
	s = strings.TrimSpace(strings.ReplaceAll(s, "**", ""))
	return strings.TrimSpace(strings.TrimLeftFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	}))
}

// lineStartBefore walks back from offset to the start of its line.
func lineStartBefore(src []byte, offset int) int {
	for offset > 0 && src[offset-1] != '\n' {
		offset--
	}
	return offset
}

// lineEndAfter walks forward from offset past the end of its line.
func lineEndAfter(src []byte, offset int) int {
	for offset < len(src) && src[offset] != '\n' {
		offset++
	}
	if offset < len(src) {
		offset++
	}
	return offset
}
