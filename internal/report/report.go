// Package report defines the document model produced by the parsing engine.
// Every value here is immutable once constructed: parsers build records fresh
// on each call and never mutate them afterwards.
package report

// SectionKind identifies which analysis category a section belongs to.
type SectionKind string

const (
	KindOverview     SectionKind = "overview"
	KindPriceHistory SectionKind = "price_history"
	KindInvestment   SectionKind = "investment"
	KindSchools      SectionKind = "schools"
	KindSuburb       SectionKind = "suburb"
	KindGeneric      SectionKind = "generic"
)

// Label returns a human-readable label for the section kind.
func (k SectionKind) Label() string {
	switch k {
	case KindOverview:
		return "Property Overview"
	case KindPriceHistory:
		return "Price History"
	case KindInvestment:
		return "Investment Insights"
	case KindSchools:
		return "School Catchment"
	case KindSuburb:
		return "Suburb Profile"
	default:
		return "Report"
	}
}

// Icon returns the display glyph the UI shows next to the section title.
func (k SectionKind) Icon() string {
	switch k {
	case KindOverview:
		return "🏠"
	case KindPriceHistory:
		return "📈"
	case KindInvestment:
		return "💰"
	case KindSchools:
		return "🎓"
	case KindSuburb:
		return "🏘️"
	default:
		return "📄"
	}
}

// Document is an ordered sequence of sections plus the deduplicated web
// sources that grounded the generated text. It is produced once per
// successful analysis and owned by the caller for one display cycle.
type Document struct {
	Sections []Section         `json:"sections"`
	Sources  []GroundingSource `json:"sources,omitempty"`
}

// Section is one titled block of report text. At most one of the payload
// fields is set; when none is, Raw is the fallback display source.
type Section struct {
	Title string      `json:"title"`
	Kind  SectionKind `json:"kind"`
	Raw   string      `json:"raw"`

	Overview   *PropertyAttributes `json:"overview,omitempty"`
	Prices     []PricePoint        `json:"prices,omitempty"`
	Investment *InvestmentAnalysis `json:"investment,omitempty"`
	Schools    []School            `json:"schools,omitempty"`
	Suburb     []SuburbSubsection  `json:"suburb,omitempty"`

	// Missing lists known fields the parser expected for this kind but never
	// saw anywhere in the section body. It exists for tests and monitoring;
	// it is not part of the rendered document.
	Missing []string `json:"-"`
}

// HasPayload reports whether structured records were extracted for this
// section.
func (s Section) HasPayload() bool {
	return s.Overview != nil || len(s.Prices) > 0 || s.Investment != nil ||
		len(s.Schools) > 0 || len(s.Suburb) > 0
}

// PropertyAttributes holds the fields reported in a property overview.
// Every field is independently optional: an empty string (or nil pointer)
// means "not reported by the model", never zero.
type PropertyAttributes struct {
	Type             string   `json:"type,omitempty"`
	Bedrooms         string   `json:"bedrooms,omitempty"`
	Bathrooms        string   `json:"bathrooms,omitempty"`
	LivingAreas      string   `json:"living_areas,omitempty"`
	CarportSpaces    string   `json:"carport_spaces,omitempty"`
	LandSize         string   `json:"land_size,omitempty"`
	BuildingSize     string   `json:"building_size,omitempty"`
	BuildingCoverage string   `json:"building_coverage,omitempty"`
	GroundElevation  string   `json:"ground_elevation,omitempty"`
	RoofHeight       string   `json:"roof_height,omitempty"`
	Solar            string   `json:"solar,omitempty"`
	Latitude         *float64 `json:"latitude,omitempty"`
	Longitude        *float64 `json:"longitude,omitempty"`
	Features         []string `json:"features,omitempty"`
}

// PriceKind distinguishes sale events from rental events in the timeline.
type PriceKind string

const (
	PriceSale PriceKind = "sale"
	PriceRent PriceKind = "rent"
)

// PricePoint is one event on the price-history timeline. Amount is nil
// whenever numeric parsing failed; Display is always populated and falls
// back to "N/A".
type PricePoint struct {
	Date    string    `json:"date"`
	Amount  *float64  `json:"amount,omitempty"`
	Display string    `json:"display"`
	Event   string    `json:"event,omitempty"`
	Kind    PriceKind `json:"kind"`
}

// School is one catchment school. Rating is opaque display text (often
// "82/100") and is never compared across schools.
type School struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Rating   string `json:"rating"`
	Distance string `json:"distance,omitempty"`
}

// ComparisonDirection classifies an investment metric's property-vs-suburb
// comparison text.
type ComparisonDirection string

const (
	ComparisonAbove   ComparisonDirection = "above"
	ComparisonBelow   ComparisonDirection = "below"
	ComparisonAverage ComparisonDirection = "average"
	ComparisonUnknown ComparisonDirection = "unknown"
)

// InvestmentMetric compares one property measure against the suburb average.
// Comparison keeps the model's free text; Direction is its classification.
type InvestmentMetric struct {
	Label         string              `json:"label"`
	PropertyValue string              `json:"property_value,omitempty"`
	SuburbAverage string              `json:"suburb_average,omitempty"`
	Comparison    string              `json:"comparison,omitempty"`
	Direction     ComparisonDirection `json:"direction"`
}

// Comparable is a recently sold property used as a valuation reference.
type Comparable struct {
	Address   string   `json:"address"`
	SoldPrice string   `json:"sold_price,omitempty"`
	SoldDate  string   `json:"sold_date,omitempty"`
	Features  string   `json:"features,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// InvestmentAnalysis groups the two record collections an investment
// section can carry.
type InvestmentAnalysis struct {
	Metrics     []InvestmentMetric `json:"metrics,omitempty"`
	Comparables []Comparable       `json:"comparables,omitempty"`
}

// SuburbSubsection is a titled narrative block within a suburb profile.
type SuburbSubsection struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// GroundingSource is a web citation returned alongside generated text.
type GroundingSource struct {
	URI   string `json:"uri"`
	Title string `json:"title,omitempty"`
}
