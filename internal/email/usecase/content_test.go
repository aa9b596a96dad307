package usecase

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestStripHTML(t *testing.T) {
	in := `<HTML><body>
		<style>.x{}</style>
		<div>Hello   <b>team</b>,</div>
		<p>Fees &amp; forms are due.</p>
		<script type="text/javascript">var a = "<p>";</script>
	</body></html>`

	got := prepareContent(in)
	want := "Hello team, Fees & forms are due."
	if got != want {
		t.Errorf("prepareContent() = %q, want %q", got, want)
	}
}

func TestPrepareContentPlainText(t *testing.T) {
	in := "Line one.\n<b>not html</b>"
	if got := prepareContent(in); got != in {
		t.Errorf("plain text changed: %q", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"short", "One. Two.", 20, "One. Two."},
		{"sentence boundary", "One. Two three four", 12, "One." + truncatedMarker},
		{"newline boundary", "one two\nthree four", 12, "one two" + truncatedMarker},
		{"hard cut", "abcdefghij", 4, "abcd" + truncatedMarker},
		{"multibyte hard cut", "ééééé", 3, "ééé" + truncatedMarker},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.in, tt.max); got != tt.want {
				t.Errorf("truncate() = %q, want %q", got, tt.want)
			}
		})
	}

	long := strings.Repeat("word ", maxContentLength)
	got := prepareContent(long)
	if n := utf8.RuneCountInString(strings.TrimSuffix(got, truncatedMarker)); n > maxContentLength {
		t.Errorf("kept %d characters", n)
	}
}

func TestSanitizeJSON(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"Here you go: {\"a\":1} bye", `{"a":1}`},
		{`{"a":{"b":2}}`, `{"a":{"b":2}}`},
		{"no json", "no json"},
	}
	for _, tt := range tests {
		if got := sanitizeJSON(tt.in); got != tt.want {
			t.Errorf("sanitizeJSON(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
