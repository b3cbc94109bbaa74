// Package money normalizes free-text currency and numeric strings produced
// by the report generator into canonical numeric values.
package money

import (
	"strconv"
	"strings"
)

// Amount is the result of normalizing one currency string. Value is nil when
// the input did not parse as a number; Display always retains the original
// input untouched so the UI can still render it.
type Amount struct {
	Value   *float64 `json:"value,omitempty"`
	Display string   `json:"display"`
}

var symbolReplacer = strings.NewReplacer(
	"$", "",
	"€", "",
	"£", "",
	",", "",
	"aud", "",
	"usd", "",
	" ", "",
)

// Normalize converts strings like "$1,200,000", "850k" or "1.1m" into a
// canonical numeric value while preserving the original display text.
// Re-normalizing the Display of a prior result yields the same Value.
func Normalize(s string) Amount {
	a := Amount{Display: s}

	work := strings.ToLower(strings.TrimSpace(s))
	work = symbolReplacer.Replace(work)
	if work == "" {
		return a
	}

	multiplier := 1.0
	switch {
	case strings.HasSuffix(work, "k"):
		multiplier = 1_000
		work = strings.TrimSuffix(work, "k")
	case strings.HasSuffix(work, "m"):
		multiplier = 1_000_000
		work = strings.TrimSuffix(work, "m")
	}

	n, err := strconv.ParseFloat(work, 64)
	if err != nil {
		return a
	}

	v := n * multiplier
	a.Value = &v
	return a
}

// DisplayOr returns the display text, or fallback when the input was blank.
func (a Amount) DisplayOr(fallback string) string {
	if strings.TrimSpace(a.Display) == "" {
		return fallback
	}
	return a.Display
}
