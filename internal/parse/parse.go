// Package parse converts loosely formatted, model-generated report text into
// the typed document model in internal/report. Parsing is a pure function of
// the input text: it holds no state, performs no I/O, and never fails on
// malformed input — missing fields become absent values, unmatched lines are
// skipped, and unrecognized sections pass through as raw text.
package parse

import (
	"github.com/proplens/proplens/internal/report"
)

// Parse splits the report text into sections, dispatches each to the record
// parser matching its kind, and assembles the final document. Source order
// of headings is preserved; reordering into tab order is the consumer's
// concern.
func Parse(input string) report.Document {
	var doc report.Document
	for _, raw := range SplitSections(input) {
		doc.Sections = append(doc.Sections, buildSection(raw))
	}
	return doc
}

func buildSection(raw RawSection) report.Section {
	sec := report.Section{
		Title: raw.Heading,
		Kind:  Classify(raw.Heading),
		Raw:   raw.Body,
	}

	switch sec.Kind {
	case report.KindOverview:
		sec.Overview, sec.Missing = ParseOverview(raw.Body)
	case report.KindPriceHistory:
		sec.Prices, sec.Missing = ParsePriceHistory(raw.Body)
	case report.KindInvestment:
		sec.Investment, sec.Missing = ParseInvestment(raw.Body)
	case report.KindSchools:
		sec.Schools, sec.Missing = ParseSchools(raw.Body)
	case report.KindSuburb:
		sec.Suburb, sec.Missing = ParseSuburb(raw.Body)
	}
	return sec
}
