package analysis

import "strings"

const maxKeywordTerms = 3

// ParseKeywords turns an LLM keyword answer into a search query: terms are
// split on commas and newlines, trimmed, the first three non-empty ones kept
// and rejoined with ", ".
func ParseKeywords(raw string) string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '\n' || r == '\r'
	})
	terms := make([]string, 0, maxKeywordTerms)
	for _, f := range fields {
		term := strings.TrimSpace(f)
		if term == "" {
			continue
		}
		terms = append(terms, term)
		if len(terms) == maxKeywordTerms {
			break
		}
	}
	return strings.Join(terms, ", ")
}
