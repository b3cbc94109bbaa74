package parse

import (
	"github.com/proplens/proplens/internal/fieldline"
	"github.com/proplens/proplens/internal/report"
)

// overviewKeys are the known property-overview fields, in display order.
var overviewKeys = []string{
	fieldline.KeyType,
	fieldline.KeyBedrooms,
	fieldline.KeyBathrooms,
	fieldline.KeyLivingAreas,
	fieldline.KeyCarportSpaces,
	fieldline.KeyLandSize,
	fieldline.KeyBuildingSize,
	fieldline.KeyBuildingCoverage,
	fieldline.KeyGroundElevation,
	fieldline.KeyRoofHeight,
	fieldline.KeySolar,
	fieldline.KeyLatitude,
	fieldline.KeyLongitude,
	fieldline.KeyFeatures,
}

// ParseOverview extracts property attributes from a whole overview block.
// Fields may be scattered across lines with varying delimiters, so the
// block is tokenized as one unit rather than line by line. Returns nil when
// zero known fields matched; the second result lists the known fields that
// were expected but not found.
func ParseOverview(body string) (*report.PropertyAttributes, []string) {
	pairs := fieldline.SplitBlock(body)

	attrs := report.PropertyAttributes{}
	matched := 0
	get := func(key string) string {
		v, ok := pairs.Get(key)
		if ok {
			matched++
		}
		return v
	}
	digits := func(key string) string {
		v, ok := pairs.Digits(key)
		if ok {
			matched++
		}
		return v
	}

	attrs.Type = get(fieldline.KeyType)
	attrs.Bedrooms = digits(fieldline.KeyBedrooms)
	attrs.Bathrooms = digits(fieldline.KeyBathrooms)
	attrs.LivingAreas = digits(fieldline.KeyLivingAreas)
	attrs.CarportSpaces = digits(fieldline.KeyCarportSpaces)
	attrs.LandSize = get(fieldline.KeyLandSize)
	attrs.BuildingSize = get(fieldline.KeyBuildingSize)
	attrs.BuildingCoverage = get(fieldline.KeyBuildingCoverage)
	attrs.GroundElevation = get(fieldline.KeyGroundElevation)
	attrs.RoofHeight = get(fieldline.KeyRoofHeight)
	attrs.Solar = get(fieldline.KeySolar)
	if attrs.Latitude = pairs.Decimal(fieldline.KeyLatitude); attrs.Latitude != nil {
		matched++
	}
	if attrs.Longitude = pairs.Decimal(fieldline.KeyLongitude); attrs.Longitude != nil {
		matched++
	}
	if attrs.Features = pairs.List(fieldline.KeyFeatures); len(attrs.Features) > 0 {
		matched++
	}

	missing := missingKeys(pairs, overviewKeys)
	if matched == 0 {
		return nil, missing
	}
	return &attrs, missing
}

// missingKeys returns the subset of keys never captured in pairs.
func missingKeys(pairs fieldline.Pairs, keys []string) []string {
	var missing []string
	for _, k := range keys {
		if pairs.Index(k) < 0 {
			missing = append(missing, k)
		}
	}
	return missing
}
