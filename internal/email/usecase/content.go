package usecase

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// prepareContent turns the submitted body into prompt-ready text: HTML is reduced
// to its visible text and long bodies are cut at a sentence boundary.
func prepareContent(content string) string {
	if looksLikeHTML(content) {
		content = stripHTML(content)
	}
	return truncate(content, maxContentLength)
}

func looksLikeHTML(s string) bool {
	lower := strings.ToLower(s)
	return strings.Contains(lower, "<html") || strings.Contains(lower, "<body")
}

// stripHTML drops script and style elements and joins the remaining non-empty lines with spaces.
func stripHTML(s string) string {
	z := html.NewTokenizer(strings.NewReader(s))
	var (
		b    strings.Builder
		skip int
	)
	for {
		switch z.Next() {
		case html.ErrorToken:
			return collapseLines(b.String())
		case html.StartTagToken:
			name, _ := z.TagName()
			switch atom.Lookup(name) {
			case atom.Script, atom.Style:
				skip++
			case atom.Br, atom.P, atom.Div, atom.Li, atom.Tr:
				b.WriteByte('\n')
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if a := atom.Lookup(name); (a == atom.Script || a == atom.Style) && skip > 0 {
				skip--
			}
		case html.TextToken:
			if skip == 0 {
				b.Write(z.Text())
			}
		}
	}
}

func collapseLines(s string) string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.Join(strings.Fields(line), " "); line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, " ")
}

// truncate keeps at most max characters, preferring to stop after the last
// full stop, then the last newline, and appends a marker when it cut anything.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	head := string([]rune(s)[:max])

	cut := strings.LastIndexByte(head, '.')
	if cut >= 0 {
		cut++
	} else {
		cut = strings.LastIndexByte(head, '\n')
	}
	if cut <= 0 {
		cut = len(head)
	}
	return head[:cut] + truncatedMarker
}
