package desde

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// LineBreak joins the lines of a wrapped label.
const LineBreak = "<br>"

var breakMarkup = regexp.MustCompile(`<br\s*/?>`)

// NormalizeProject replaces line-break markup in a project name with a space.
func NormalizeProject(s string) string {
	return breakMarkup.ReplaceAllString(s, " ")
}

// WrapLabel greedily packs the words of text into lines of at most maxChars
// characters joined by LineBreak. A word longer than maxChars is kept whole
// on its own line. Blank text is returned unchanged.
func WrapLabel(text string, maxChars int) string {
	if strings.TrimSpace(text) == "" {
		return text
	}
	if maxChars <= 0 {
		maxChars = DefaultMaxLabelChars
	}

	var lines []string
	current := ""
	for _, w := range strings.Fields(text) {
		switch {
		case current == "":
			current = w
		case utf8.RuneCountInString(current)+1+utf8.RuneCountInString(w) <= maxChars:
			current += " " + w
		default:
			lines = append(lines, current)
			current = w
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return strings.Join(lines, LineBreak)
}

// LabelLines splits a wrapped label back into its lines.
func LabelLines(label string) []string {
	if label == "" {
		return nil
	}
	return strings.Split(label, LineBreak)
}
