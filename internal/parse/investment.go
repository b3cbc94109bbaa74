package parse

import (
	"strings"

	"github.com/proplens/proplens/internal/fieldline"
	"github.com/proplens/proplens/internal/report"
)

var investmentKeys = []string{
	fieldline.KeyMetric,
	fieldline.KeyProperty,
	fieldline.KeySuburbAverage,
	fieldline.KeyComparison,
	fieldline.KeyAddress,
	fieldline.KeySoldPrice,
	fieldline.KeySoldDate,
}

// ParseInvestment runs two independent line-by-line passes over the same
// body: one collecting metric lines, one collecting comparable-sale lines.
// Both passes always run, even when the other finds nothing. Returns nil
// when neither pass produced records.
func ParseInvestment(body string) (*report.InvestmentAnalysis, []string) {
	lines := strings.Split(body, "\n")
	seen := fieldline.Pairs{}

	var metrics []report.InvestmentMetric
	for _, line := range lines {
		pairs := fieldline.Split(line)
		seen = append(seen, pairs...)

		label, ok := pairs.Get(fieldline.KeyMetric)
		if !ok {
			continue
		}
		propertyValue, okProp := pairs.Get(fieldline.KeyProperty)
		suburbAvg, okAvg := pairs.Get(fieldline.KeySuburbAverage)
		comparison, okCmp := pairs.Get(fieldline.KeyComparison)
		if !okProp && !okAvg && !okCmp {
			continue
		}
		metrics = append(metrics, report.InvestmentMetric{
			Label:         label,
			PropertyValue: propertyValue,
			SuburbAverage: suburbAvg,
			Comparison:    comparison,
			Direction:     ClassifyComparison(comparison),
		})
	}

	var comparables []report.Comparable
	for _, line := range lines {
		pairs := fieldline.Split(line)

		address, ok := pairs.Get(fieldline.KeyAddress)
		if !ok {
			continue
		}
		soldPrice, okPrice := pairs.Get(fieldline.KeySoldPrice)
		if !okPrice {
			continue
		}
		soldDate, _ := pairs.Get(fieldline.KeySoldDate)
		features, _ := pairs.Get(fieldline.KeyFeatures)
		comparables = append(comparables, report.Comparable{
			Address:   address,
			SoldPrice: soldPrice,
			SoldDate:  soldDate,
			Features:  features,
			Latitude:  pairs.Decimal(fieldline.KeyLatitude),
			Longitude: pairs.Decimal(fieldline.KeyLongitude),
		})
	}

	missing := missingKeys(seen, investmentKeys)
	if len(metrics) == 0 && len(comparables) == 0 {
		return nil, missing
	}
	return &report.InvestmentAnalysis{Metrics: metrics, Comparables: comparables}, missing
}

// ClassifyComparison maps free comparison text ("Above Average", "slightly
// below suburb") onto a typed direction by case-insensitive substring match.
func ClassifyComparison(text string) report.ComparisonDirection {
	t := strings.ToLower(text)
	switch {
	case strings.Contains(t, "above"):
		return report.ComparisonAbove
	case strings.Contains(t, "below"):
		return report.ComparisonBelow
	case strings.Contains(t, "average") || strings.Contains(t, "on par") || strings.Contains(t, "in line"):
		return report.ComparisonAverage
	default:
		return report.ComparisonUnknown
	}
}
