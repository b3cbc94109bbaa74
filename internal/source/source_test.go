package source

import (
	"strings"
	"testing"
)

func TestForFile(t *testing.T) {
	tests := []struct {
		filename string
		wantErr  bool
	}{
		{filename: "report.md"},
		{filename: "report.markdown"},
		{filename: "report.txt"},
		{filename: "report.html"},
		{filename: "report.HTM"},
		{filename: "report.pdf"},
		{filename: "report.docx"},
		{filename: "report.csv", wantErr: true},
		{filename: "report", wantErr: true},
	}
	for _, tt := range tests {
		r, err := ForFile(tt.filename)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ForFile(%q): expected error", tt.filename)
			}
			continue
		}
		if err != nil {
			t.Errorf("ForFile(%q): %v", tt.filename, err)
		}
		if r == nil {
			t.Errorf("ForFile(%q): nil reader", tt.filename)
		}
		if !IsSupportedExtension(tt.filename) {
			t.Errorf("IsSupportedExtension(%q) = false", tt.filename)
		}
	}
}

func TestTextReaderPassesThrough(t *testing.T) {
	input := "## 🏠 Property Overview\n\n- Type: House\n"
	got, err := (&TextReader{}).Read(strings.NewReader(input), "report.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != input {
		t.Errorf("markdown must pass through untouched:\n%q", got)
	}
}

func TestHTMLReaderRestoresHeadings(t *testing.T) {
	input := `<html><head><title>Report</title><style>h2{color:red}</style></head><body>
<h2>🏠 Property Overview</h2>
<ul><li>Type: House</li><li>Bedrooms: 4</li></ul>
<h2>📈 Price History</h2>
<p>Date: 2021-03-15, Price: $1,250,000</p>
<script>ignore()</script>
</body></html>`

	got, err := (&HTMLReader{}).Read(strings.NewReader(input), "report.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{
		"## 🏠 Property Overview",
		"- Type: House",
		"- Bedrooms: 4",
		"## 📈 Price History",
		"Date: 2021-03-15, Price: $1,250,000",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "ignore()") || strings.Contains(got, "color:red") {
		t.Errorf("script/style content leaked into output:\n%s", got)
	}
}
