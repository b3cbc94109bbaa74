package parse

import (
	"strings"

	"github.com/proplens/proplens/internal/report"
)

// maxSubsectionTitle rejects accidental full-paragraph "titles" produced
// when the model drops a subsection marker mid-prose.
const maxSubsectionTitle = 80

// ParseSuburb splits a suburb-profile body into titled narrative blocks.
// A new block starts at a level-three heading marker or a bold-emphasis
// marker at line start. Blocks with an empty, over-long or bodyless title
// are dropped.
func ParseSuburb(body string) ([]report.SuburbSubsection, []string) {
	var subsections []report.SuburbSubsection

	var title string
	var content strings.Builder

	flush := func() {
		text := strings.TrimSpace(content.String())
		if title != "" && len(title) <= maxSubsectionTitle && text != "" {
			subsections = append(subsections, report.SuburbSubsection{
				Title:   title,
				Content: text,
			})
		}
		content.Reset()
	}

	for _, line := range strings.Split(body, "\n") {
		if t, ok := subsectionTitle(line); ok {
			flush()
			title = t
			continue
		}
		content.WriteString(line)
		content.WriteString("\n")
	}
	flush()

	// The suburb parser has no per-field diagnostics: its blocks are prose.
	return subsections, nil
}

// subsectionTitle reports whether a line introduces a new subsection and
// returns its cleaned title.
func subsectionTitle(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	switch {
	case strings.HasPrefix(trimmed, "###"):
		return strings.TrimSpace(strings.TrimLeft(trimmed, "# ")), true
	case strings.HasPrefix(trimmed, "**"):
		rest := trimmed[2:]
		if i := strings.Index(rest, "**"); i >= 0 {
			rest = rest[:i]
		}
		return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(rest), ":")), true
	}
	return "", false
}
