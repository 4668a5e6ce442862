package schema

import (
	"regexp"
	"strings"
)

var splitWordsPattern = regexp.MustCompile(`[_\-\s]+`)

// Label turns a property name into a human readable label, splitting on
// underscores, dashes and camelCase boundaries: "publishedAt" becomes
// "Published at".
func Label(name string) string {
	words := splitWordsPattern.Split(strings.TrimSpace(name), -1)
	segments := make([]string, 0, len(words))
	for _, word := range words {
		if word == "" {
			continue
		}
		segments = append(segments, splitCamel(word))
	}
	if len(segments) == 0 {
		return ""
	}
	sentence := strings.ToLower(strings.Join(segments, " "))
	return strings.ToUpper(sentence[:1]) + sentence[1:]
}

func splitCamel(input string) string {
	var out strings.Builder
	for i, r := range input {
		if i > 0 && isBoundary(rune(input[i-1]), r) {
			out.WriteRune(' ')
		}
		out.WriteRune(r)
	}
	return out.String()
}

func isBoundary(prev, r rune) bool {
	return (isLower(prev) && isUpper(r)) || (isLetter(prev) && isDigit(r)) || (isDigit(prev) && isLetter(r))
}

func isUpper(r rune) bool  { return r >= 'A' && r <= 'Z' }
func isLower(r rune) bool  { return r >= 'a' && r <= 'z' }
func isDigit(r rune) bool  { return r >= '0' && r <= '9' }
func isLetter(r rune) bool { return isUpper(r) || isLower(r) }
