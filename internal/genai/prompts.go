package genai

import (
	"fmt"
	"strings"
)

// SectionPrompt describes one of the independent generation calls that make
// up a full report. Label doubles as the stub text's subject when the call
// ultimately fails.
type SectionPrompt struct {
	Label    string
	Template string
}

// SectionPrompts lists the five report sections in canonical presentation
// order. The pipeline dispatches them concurrently and reassembles the
// responses in this order.
var SectionPrompts = []SectionPrompt{
	{
		Label: "Property Overview",
		Template: `Research the property at "%s" and produce a section starting with the exact heading line "## 🏠 Property Overview".
Then list every attribute you can verify, one bullet per line, as "Key: Value" pairs using these keys where known:
Type, Bedrooms, Bathrooms, Living Areas, Carport Spaces, Land Size, Building Size, Building Coverage, Ground Elevation, Roof Height, Solar, Latitude, Longitude.
Finish with "- Key Features:" followed by a comma-separated feature list. Omit any attribute you cannot verify. Example:
- Type: House
- Bedrooms: 4
- Land Size: 600 sqm
- Latitude: -27.4698`,
	},
	{
		Label: "Price History",
		Template: `Research the sale and rental history of "%s" and produce a section starting with the exact heading line "## 📈 Price History".
List one event per line, most recent first, in the form:
- Date: YYYY-MM-DD, Price: $X, Type: Sale|Rent, Event: short description
Use "Price: N/A" when the amount is unknown. List nothing you cannot date.`,
	},
	{
		Label: "Investment Insights",
		Template: `Analyse "%s" as an investment and produce a section starting with the exact heading line "## 💰 Investment Insights".
First list metrics, one per line:
- Metric: name, Property: value, Suburb_Average: value, Comparison: Above Average|Below Average|Average
Then list recently sold comparable properties, one per line:
- Address: street address, Sold_Price: $X, Sold_Date: YYYY-MM-DD, Features: FLAG, FLAG, Lat: decimal, Lng: decimal`,
	},
	{
		Label: "Suburb Profile",
		Template: `Describe the suburb of "%s" and produce a section starting with the exact heading line "## 🏘️ Suburb Profile".
Write short narrative subsections, each introduced by a level-three heading such as:
### Demographics & Community
### Lifestyle & Amenities
### Growth & Development`,
	},
	{
		Label: "School Catchment",
		Template: `Research the school catchment for "%s" and produce a section starting with the exact heading line "## 🎓 School Catchment".
List one school per line, in the form:
- Name: school name, Type: Public|Private, Rating: score/100, Distance: X.Xkm
Skip any school whose rating you cannot find.`,
	},
}

// BuildPrompt fills a section prompt template with the property address.
func (p SectionPrompt) BuildPrompt(address string) string {
	return fmt.Sprintf(p.Template, strings.TrimSpace(address))
}

// StubSection is the placeholder substituted for a section whose generation
// ultimately failed. Its heading deliberately matches no known category, so
// the parser passes it through as raw text.
func StubSection(label string) string {
	return fmt.Sprintf("## ⚠️ Section Unavailable\n\n%s data could not be generated right now. Please try again later.\n", label)
}
