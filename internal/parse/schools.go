package parse

import (
	"strings"

	"github.com/proplens/proplens/internal/fieldline"
	"github.com/proplens/proplens/internal/report"
)

var schoolKeys = []string{
	fieldline.KeyName,
	fieldline.KeyType,
	fieldline.KeyRating,
	fieldline.KeyDistance,
}

// ParseSchools extracts catchment schools line by line. A line matches only
// when it carries name, type and rating in that order; distance is optional.
// Lines missing any of the three core fields are skipped entirely — there
// are no partial School records.
func ParseSchools(body string) ([]report.School, []string) {
	var schools []report.School
	seen := fieldline.Pairs{}

	for _, line := range strings.Split(body, "\n") {
		pairs := fieldline.Split(line)
		seen = append(seen, pairs...)

		name, okName := pairs.Get(fieldline.KeyName)
		typ, okType := pairs.Get(fieldline.KeyType)
		rating, okRating := pairs.Get(fieldline.KeyRating)
		if !okName || !okType || !okRating {
			continue
		}
		if !ordered(pairs, fieldline.KeyName, fieldline.KeyType, fieldline.KeyRating) {
			continue
		}

		distance, _ := pairs.Get(fieldline.KeyDistance)
		schools = append(schools, report.School{
			Name:     name,
			Type:     typ,
			Rating:   rating,
			Distance: distance,
		})
	}
	return schools, missingKeys(seen, schoolKeys)
}

// ordered reports whether the given keys appear in pairs in the given order.
func ordered(pairs fieldline.Pairs, keys ...string) bool {
	last := -1
	for _, k := range keys {
		idx := pairs.Index(k)
		if idx < last {
			return false
		}
		last = idx
	}
	return true
}
