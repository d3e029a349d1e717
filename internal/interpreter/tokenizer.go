package interpreter

import "strings"

// tokenize splits the normalized query into the residual search-term list.
// Single characters, stop-words, intent-words, and bare numbers (with an
// optional thousands suffix, e.g. "50k") are dropped: they either carry no
// text signal or were already consumed into the intent record.
func tokenize(q string) []string {
	fields := strings.Fields(q)
	tokens := make([]string, 0, len(fields))
	for _, tok := range fields {
		tok = strings.Trim(tok, ".,!?()[]{}:;\"'")
		if len(tok) <= 1 {
			continue
		}
		if _, ok := stopWords[tok]; ok {
			continue
		}
		if _, ok := intentWords[tok]; ok {
			continue
		}
		if bareNumberRe.MatchString(tok) {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}
