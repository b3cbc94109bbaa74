package parse

import (
	"regexp"
	"strings"

	"github.com/proplens/proplens/internal/fieldline"
	"github.com/proplens/proplens/internal/money"
	"github.com/proplens/proplens/internal/report"
)

var datePattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)

var priceHistoryKeys = []string{
	fieldline.KeyDate,
	fieldline.KeyPrice,
	fieldline.KeyType,
	fieldline.KeyEvent,
}

// ParsePriceHistory extracts timeline points line by line. A line is only a
// candidate when it carries a recognizable date token; everything else is
// skipped without aborting the section. A point is Rent when its type or
// event mentions renting or leasing, otherwise Sale.
func ParsePriceHistory(body string) ([]report.PricePoint, []string) {
	var points []report.PricePoint
	seen := fieldline.Pairs{}

	for _, line := range strings.Split(body, "\n") {
		pairs := fieldline.Split(line)
		seen = append(seen, pairs...)

		date := datePattern.FindString(line)
		if v, ok := pairs.Get(fieldline.KeyDate); ok {
			if m := datePattern.FindString(v); m != "" {
				date = m
			}
		}
		if date == "" {
			continue
		}

		priceText, _ := pairs.Get(fieldline.KeyPrice)
		amount := money.Normalize(priceText)
		event, _ := pairs.Get(fieldline.KeyEvent)
		typeText, _ := pairs.Get(fieldline.KeyType)

		points = append(points, report.PricePoint{
			Date:    date,
			Amount:  amount.Value,
			Display: amount.DisplayOr("N/A"),
			Event:   event,
			Kind:    classifyPriceKind(typeText, event),
		})
	}
	return points, missingKeys(seen, priceHistoryKeys)
}

func classifyPriceKind(typeText, event string) report.PriceKind {
	for _, s := range []string{typeText, event} {
		s = strings.ToLower(s)
		if strings.Contains(s, "rent") || strings.Contains(s, "lease") {
			return report.PriceRent
		}
	}
	return report.PriceSale
}
