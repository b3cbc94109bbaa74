// Package fieldline implements the line grammar shared by every record
// parser: a tokenizer that splits a bullet line into ordered key/value pairs
// on recognized delimiters, plus typed coercions over the captured values.
//
// The generator nominally emits lines like
//
//	- Date: 2021-03-15, Price: $1,250,000, Type: Sale, Event: Sold
//
// but drifts constantly: bold markers around keys, dashes instead of colons,
// underscores in key names, inconsistent casing. All of that tolerance lives
// here, in one place, instead of being re-implemented per category.
package fieldline

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Canonical field keys. Parsers address captured values by these names.
const (
	KeyType             = "type"
	KeyBedrooms         = "bedrooms"
	KeyBathrooms        = "bathrooms"
	KeyLivingAreas      = "living areas"
	KeyCarportSpaces    = "carport spaces"
	KeyLandSize         = "land size"
	KeyBuildingSize     = "building size"
	KeyBuildingCoverage = "building coverage"
	KeyGroundElevation  = "ground elevation"
	KeyRoofHeight       = "roof height"
	KeySolar            = "solar"
	KeyLatitude         = "latitude"
	KeyLongitude        = "longitude"
	KeyFeatures         = "features"
	KeyDate             = "date"
	KeyPrice            = "price"
	KeyEvent            = "event"
	KeyName             = "name"
	KeyRating           = "rating"
	KeyDistance         = "distance"
	KeyMetric           = "metric"
	KeyProperty         = "property"
	KeySuburbAverage    = "suburb average"
	KeyComparison       = "comparison"
	KeyAddress          = "address"
	KeySoldPrice        = "sold price"
	KeySoldDate         = "sold date"
)

// vocabulary maps each canonical key to the spellings the generator has been
// observed to use for it. Synonyms are matched case-insensitively, with
// spaces and underscores interchangeable.
var vocabulary = map[string][]string{
	KeyType:             {"type", "property type"},
	KeyBedrooms:         {"bedrooms", "beds"},
	KeyBathrooms:        {"bathrooms", "baths"},
	KeyLivingAreas:      {"living areas", "living area"},
	KeyCarportSpaces:    {"carport spaces", "carports", "car spaces", "garage spaces"},
	KeyLandSize:         {"land size", "land area"},
	KeyBuildingSize:     {"building size", "building area", "floor area"},
	KeyBuildingCoverage: {"building coverage"},
	KeyGroundElevation:  {"ground elevation", "elevation"},
	KeyRoofHeight:       {"roof height"},
	KeySolar:            {"solar", "solar panels", "solar description"},
	KeyLatitude:         {"latitude", "lat"},
	KeyLongitude:        {"longitude", "lng", "lon", "long"},
	KeyFeatures:         {"key features", "features"},
	KeyDate:             {"date"},
	KeyPrice:            {"price"},
	KeyEvent:            {"event"},
	KeyName:             {"name", "school name", "school"},
	KeyRating:           {"rating", "score"},
	KeyDistance:         {"distance"},
	KeyMetric:           {"metric", "label"},
	KeyProperty:         {"property", "property value"},
	KeySuburbAverage:    {"suburb average", "suburb avg"},
	KeyComparison:       {"comparison", "compared"},
	KeyAddress:          {"address"},
	KeySoldPrice:        {"sold price"},
	KeySoldDate:         {"sold date"},
}

var (
	keyPattern *regexp.Regexp
	canonical  map[string]string

	bulletPattern  = regexp.MustCompile(`^\s*(?:[-*•]|\d+[.)])\s*`)
	decimalPattern = regexp.MustCompile(`-?\d+(?:\.\d+)?`)
	spacePattern   = regexp.MustCompile(`[\s_]+`)
)

func init() {
	canonical = make(map[string]string)
	var alts []string
	for canon, syns := range vocabulary {
		for _, syn := range syns {
			canonical[syn] = canon
			quoted := regexp.QuoteMeta(syn)
			// Spaces and underscores are interchangeable in key names.
			alts = append(alts, strings.ReplaceAll(quoted, ` `, `[ _]+`))
		}
	}
	// Longest alternatives first so "land size" wins over a bare "land".
	sort.Slice(alts, func(i, j int) bool { return len(alts[i]) > len(alts[j]) })

	// A key boundary is: start of line or a comma/semicolon, optional bold
	// markers, a known key name, then a colon or dash separator. The value
	// runs greedily from the end of one boundary to the start of the next,
	// so punctuation inside a value (thousands separators) survives.
	keyPattern = regexp.MustCompile(
		`(?i)(?:^|[,;])\s*(?:\*\*)?\s*(` + strings.Join(alts, "|") + `)\s*(?:\*\*)?\s*[:\-–]\s*`)
}

// Pair is one captured key/value, with Key already canonicalized.
type Pair struct {
	Key   string
	Value string
}

// Pairs is the ordered list of fields captured from one line or block.
type Pairs []Pair

// Split tokenizes a single line into ordered key/value pairs. Lines that
// carry no recognized key yield nil. Unmatched text is simply not captured;
// tokenizing never fails.
func Split(line string) Pairs {
	line = bulletPattern.ReplaceAllString(line, "")
	matches := keyPattern.FindAllStringSubmatchIndex(line, -1)
	if len(matches) == 0 {
		return nil
	}

	pairs := make(Pairs, 0, len(matches))
	for i, m := range matches {
		key := canonicalKey(line[m[2]:m[3]])
		end := len(line)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		value := cleanValue(line[m[1]:end])
		pairs = append(pairs, Pair{Key: key, Value: value})
	}
	return pairs
}

// SplitBlock tokenizes every line of a multi-line block and concatenates the
// captured pairs. Used by parsers whose fields may be scattered across lines.
func SplitBlock(block string) Pairs {
	var pairs Pairs
	for _, line := range strings.Split(block, "\n") {
		pairs = append(pairs, Split(line)...)
	}
	return pairs
}

func canonicalKey(raw string) string {
	k := strings.ToLower(strings.TrimSpace(raw))
	k = spacePattern.ReplaceAllString(k, " ")
	if canon, ok := canonical[k]; ok {
		return canon
	}
	return k
}

func cleanValue(v string) string {
	v = strings.TrimSpace(v)
	v = strings.TrimRight(v, ",;")
	v = strings.TrimSpace(v)
	v = strings.TrimSuffix(v, "**")
	v = strings.TrimPrefix(v, "**")
	return strings.TrimSpace(v)
}

// Get returns the first value captured for key. The second return is false
// when the key was not seen or its value is empty.
func (p Pairs) Get(key string) (string, bool) {
	for _, pair := range p {
		if pair.Key == key && pair.Value != "" {
			return pair.Value, true
		}
	}
	return "", false
}

// Index returns the position of the first pair with key, or -1.
func (p Pairs) Index(key string) int {
	for i, pair := range p {
		if pair.Key == key {
			return i
		}
	}
	return -1
}

// Digits returns the value for key only when it contains at least one digit.
// Numeric-only fields (bedrooms, bathrooms) treat non-digit captures as
// absent rather than trusting stray prose.
func (p Pairs) Digits(key string) (string, bool) {
	v, ok := p.Get(key)
	if !ok || !strings.ContainsAny(v, "0123456789") {
		return "", false
	}
	return v, true
}

// Decimal parses the value for key as a decimal number (optional leading
// minus, optional fractional part). Unparsable captures are absent.
func (p Pairs) Decimal(key string) *float64 {
	v, ok := p.Get(key)
	if !ok {
		return nil
	}
	tok := decimalPattern.FindString(v)
	if tok == "" {
		return nil
	}
	n, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return nil
	}
	return &n
}

// List splits the value for key on commas, trims each entry and drops
// empties.
func (p Pairs) List(key string) []string {
	v, ok := p.Get(key)
	if !ok {
		return nil
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
