package parse

import (
	"testing"

	"github.com/proplens/proplens/internal/report"
)

const sampleReport = `## 🏠 Property Overview

- Type: House
- Bedrooms: 4
- Bathrooms: 2
- Land Size: 600 sqm
- Key Features: Pool, Solar Panels, Deck
- Latitude: -27.4698
- Longitude: 152.9770

## 📈 Price History

- Date: 2021-03-15, Price: $1,250,000, Type: Sale, Event: Sold
- Date: 2016-08-02, Price: $890,000, Type: Sale, Event: Sold

## 💰 Investment Insights

- Metric: Estimated Value, Property: $1.2M, Suburb_Average: $1.1M, Comparison: Above Average
- Address: 12 Smith St, Sold_Price: $980,000, Sold_Date: 2023-11-02, Features: POOL

## 🏘️ Suburb Profile

### Demographics & Community

A young family suburb.

## 🎓 School Catchment

- Name: Kenmore State High, Type: Public, Rating: 82/100, Distance: 1.2km
`

func TestParseFullReport(t *testing.T) {
	doc := Parse(sampleReport)
	if len(doc.Sections) != 5 {
		t.Fatalf("got %d sections, want 5", len(doc.Sections))
	}

	wantKinds := []report.SectionKind{
		report.KindOverview,
		report.KindPriceHistory,
		report.KindInvestment,
		report.KindSuburb,
		report.KindSchools,
	}
	for i, want := range wantKinds {
		if doc.Sections[i].Kind != want {
			t.Errorf("section %d kind = %q, want %q", i, doc.Sections[i].Kind, want)
		}
		if !doc.Sections[i].HasPayload() {
			t.Errorf("section %d (%s) has no payload", i, want)
		}
		if doc.Sections[i].Raw == "" {
			t.Errorf("section %d raw content empty", i)
		}
	}

	if doc.Sections[0].Overview == nil || doc.Sections[0].Overview.Bedrooms != "4" {
		t.Errorf("overview payload: %#v", doc.Sections[0].Overview)
	}
	if len(doc.Sections[1].Prices) != 2 {
		t.Errorf("price payload: %#v", doc.Sections[1].Prices)
	}
	if doc.Sections[2].Investment == nil {
		t.Error("investment payload missing")
	}
	if len(doc.Sections[3].Suburb) != 1 {
		t.Errorf("suburb payload: %#v", doc.Sections[3].Suburb)
	}
	if len(doc.Sections[4].Schools) != 1 {
		t.Errorf("schools payload: %#v", doc.Sections[4].Schools)
	}
}

func TestParsePreservesSourceOrder(t *testing.T) {
	input := "## 🎓 School Catchment\n\n- Name: A, Type: Public, Rating: 1/100\n\n## 🏠 Property Overview\n\n- Type: House\n"
	doc := Parse(input)
	if len(doc.Sections) != 2 {
		t.Fatalf("got %d sections", len(doc.Sections))
	}
	if doc.Sections[0].Kind != report.KindSchools || doc.Sections[1].Kind != report.KindOverview {
		t.Errorf("source order not preserved: %q, %q", doc.Sections[0].Kind, doc.Sections[1].Kind)
	}
}

func TestParseUnknownHeadingIsGeneric(t *testing.T) {
	doc := Parse("## Neighbourhood Gossip\n\nEntirely unstructured chatter.\n")
	if len(doc.Sections) != 1 {
		t.Fatalf("got %d sections", len(doc.Sections))
	}
	sec := doc.Sections[0]
	if sec.Kind != report.KindGeneric {
		t.Errorf("kind = %q, want generic", sec.Kind)
	}
	if sec.HasPayload() {
		t.Error("generic section must not carry a payload")
	}
	if sec.Raw != "Entirely unstructured chatter." {
		t.Errorf("raw = %q", sec.Raw)
	}
}

func TestParseUpstreamFailureStubDegrades(t *testing.T) {
	// A failed generation is substituted upstream with a stub section; the
	// parser sees ordinary unparsable text and degrades it to Generic.
	doc := Parse("## ⚠️ Section Unavailable\n\nPrice history data could not be generated. Please try again later.\n")
	if len(doc.Sections) != 1 {
		t.Fatalf("got %d sections", len(doc.Sections))
	}
	if doc.Sections[0].Kind != report.KindGeneric {
		t.Errorf("kind = %q, want generic", doc.Sections[0].Kind)
	}
	if doc.Sections[0].HasPayload() {
		t.Error("stub section must fall back to raw content")
	}
}

func TestParseKnownKindWithoutRecordsKeepsRaw(t *testing.T) {
	doc := Parse("## 📈 Price History\n\nNo transaction records could be located for this address.\n")
	sec := doc.Sections[0]
	if sec.Kind != report.KindPriceHistory {
		t.Fatalf("kind = %q", sec.Kind)
	}
	if sec.HasPayload() {
		t.Error("payload should be absent")
	}
	if sec.Raw == "" {
		t.Error("raw fallback missing")
	}
}
