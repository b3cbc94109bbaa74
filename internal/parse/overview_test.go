package parse

import (
	"reflect"
	"slices"
	"testing"
)

func TestParseOverview(t *testing.T) {
	body := `- Type: House
- Bedrooms: 4
- Bathrooms: 2
- Living Areas: 2
- Carport Spaces: 1
- Land Size: 600 sqm
- Building Size: 240 sqm
- Key Features: Pool, Solar Panels, Deck
- Latitude: -27.4698
- Longitude: 152.9770`

	attrs, missing := ParseOverview(body)
	if attrs == nil {
		t.Fatal("expected attributes, got nil")
	}
	if attrs.Type != "House" {
		t.Errorf("Type = %q", attrs.Type)
	}
	if attrs.Bedrooms != "4" || attrs.Bathrooms != "2" {
		t.Errorf("beds/baths = %q/%q", attrs.Bedrooms, attrs.Bathrooms)
	}
	if attrs.LandSize != "600 sqm" {
		t.Errorf("LandSize = %q", attrs.LandSize)
	}
	if want := []string{"Pool", "Solar Panels", "Deck"}; !reflect.DeepEqual(attrs.Features, want) {
		t.Errorf("Features = %#v, want %#v", attrs.Features, want)
	}
	if attrs.Latitude == nil || *attrs.Latitude != -27.4698 {
		t.Errorf("Latitude = %v", attrs.Latitude)
	}
	if attrs.Longitude == nil || *attrs.Longitude != 152.9770 {
		t.Errorf("Longitude = %v", attrs.Longitude)
	}

	// Fields not present in the body are reported missing, matched ones are not.
	if !slices.Contains(missing, "roof height") {
		t.Errorf("missing should include roof height: %v", missing)
	}
	if slices.Contains(missing, "bedrooms") {
		t.Errorf("missing should not include bedrooms: %v", missing)
	}
}

func TestParseOverviewFieldOrderIrrelevant(t *testing.T) {
	a, _ := ParseOverview("- Type: House\n- Bedrooms: 4")
	b, _ := ParseOverview("- Bedrooms: 4\n- Type: House")
	if !reflect.DeepEqual(a, b) {
		t.Errorf("field order changed output: %#v vs %#v", a, b)
	}
}

func TestParseOverviewScatteredFields(t *testing.T) {
	// The overview parser is single-shot over the whole block: fields on one
	// line and fields spread across several both work.
	oneLine, _ := ParseOverview("Type: House, Bedrooms: 4, Bathrooms: 2")
	multi, _ := ParseOverview("- Type: House\nsome prose\n- Bedrooms: 4\n- Bathrooms: 2")
	if !reflect.DeepEqual(oneLine, multi) {
		t.Errorf("one-line and scattered blocks disagree: %#v vs %#v", oneLine, multi)
	}
}

func TestParseOverviewNoFields(t *testing.T) {
	attrs, missing := ParseOverview("Nothing here resembles a property attribute.")
	if attrs != nil {
		t.Errorf("expected nil attributes, got %#v", attrs)
	}
	if len(missing) != len(overviewKeys) {
		t.Errorf("all %d fields should be missing, got %d", len(overviewKeys), len(missing))
	}
}

func TestParseOverviewNonDigitCounts(t *testing.T) {
	attrs, _ := ParseOverview("- Type: House\n- Bedrooms: several\n- Bathrooms: 2")
	if attrs == nil {
		t.Fatal("expected attributes")
	}
	if attrs.Bedrooms != "" {
		t.Errorf("non-digit bedrooms = %q, want absent", attrs.Bedrooms)
	}
	if attrs.Bathrooms != "2" {
		t.Errorf("Bathrooms = %q", attrs.Bathrooms)
	}
}
