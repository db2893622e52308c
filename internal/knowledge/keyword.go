package knowledge

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Trailing particles removed from tokens, longest first.
var particles = []string{
	"에서는", "으로는", "에게서",
	"에서", "에게", "으로", "이랑", "하고", "까지", "부터", "처럼",
	"은", "는", "을", "를", "에", "의", "와", "과", "도", "로", "랑", "가",
}

var stopwords = map[string]struct{}{
	"알려줘": {}, "알려주세요": {}, "대해": {}, "대해서": {}, "어떻게": {}, "무엇": {},
	"뭐야": {}, "있어": {}, "있나요": {}, "추천": {}, "추천해줘": {}, "해줘": {}, "궁금해요": {},
	"어디": {}, "어디야": {}, "주세요": {}, "뭔가요": {}, "무엇인가요": {},
}

// ExtractKeyword picks the grounding keyword for a chat message: the longest
// dictionary term of two or more runes contained in it, else the longest
// content token.
func ExtractKeyword(message string, d Dictionaries) string {
	message = strings.TrimSpace(message)
	if message == "" {
		return ""
	}

	best := ""
	for _, dict := range []Dictionary{d.Species, d.Districts, d.Categories} {
		for _, e := range dict.entries {
			n := utf8.RuneCountInString(e.Term)
			if n >= 2 && n > utf8.RuneCountInString(best) && strings.Contains(message, e.Term) {
				best = e.Term
			}
		}
	}
	if best != "" {
		return best
	}

	for _, raw := range strings.Fields(message) {
		tok := stripParticle(strings.TrimFunc(raw, func(r rune) bool {
			return unicode.IsPunct(r) || unicode.IsSymbol(r)
		}))
		if utf8.RuneCountInString(tok) < 2 {
			continue
		}
		if _, stop := stopwords[tok]; stop {
			continue
		}
		if utf8.RuneCountInString(tok) > utf8.RuneCountInString(best) {
			best = tok
		}
	}
	if best == "" {
		best = SanitizeText(message)
	}
	return best
}

func stripParticle(tok string) string {
	for _, p := range particles {
		if strings.HasSuffix(tok, p) {
			rest := strings.TrimSuffix(tok, p)
			if utf8.RuneCountInString(rest) >= 2 {
				return rest
			}
			return tok
		}
	}
	return tok
}
