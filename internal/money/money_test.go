package money

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
		none  bool
	}{
		{name: "plain currency", input: "$1,200,000", want: 1200000},
		{name: "thousands suffix", input: "850k", want: 850000},
		{name: "millions suffix", input: "1.1m", want: 1100000},
		{name: "uppercase suffix", input: "$1.2M", want: 1200000},
		{name: "suffix with symbol", input: "$850K", want: 850000},
		{name: "bare integer", input: "980000", want: 980000},
		{name: "internal spaces", input: "1 200 000", want: 1200000},
		{name: "not available", input: "N/A", none: true},
		{name: "empty", input: "", none: true},
		{name: "prose", input: "price withheld", none: true},
		{name: "lone suffix", input: "k", none: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got.Display != tt.input {
				t.Errorf("Display = %q, want original %q", got.Display, tt.input)
			}
			if tt.none {
				if got.Value != nil {
					t.Fatalf("Value = %v, want absent", *got.Value)
				}
				return
			}
			if got.Value == nil {
				t.Fatalf("Value absent, want %v", tt.want)
			}
			if *got.Value != tt.want {
				t.Errorf("Value = %v, want %v", *got.Value, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"$1,200,000", "850k", "1.1m", "N/A", "$980,000"}
	for _, in := range inputs {
		first := Normalize(in)
		second := Normalize(first.Display)
		switch {
		case first.Value == nil && second.Value == nil:
		case first.Value == nil || second.Value == nil:
			t.Errorf("%q: presence changed across re-normalization", in)
		case *first.Value != *second.Value:
			t.Errorf("%q: value changed: %v -> %v", in, *first.Value, *second.Value)
		}
	}
}

func TestDisplayOr(t *testing.T) {
	if got := Normalize("").DisplayOr("N/A"); got != "N/A" {
		t.Errorf("DisplayOr on empty = %q, want N/A", got)
	}
	if got := Normalize("$500k").DisplayOr("N/A"); got != "$500k" {
		t.Errorf("DisplayOr = %q, want original", got)
	}
}
