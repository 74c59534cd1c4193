package langid

import (
	"strings"
	"unicode"
)

// Classifier assigns one of its candidate languages to a text, or Unknown
// when no candidate reaches the confidence floor. A classifier restricted
// to a candidate subset never returns a language outside that subset.
type Classifier struct {
	candidates map[Language]bool
}

// New builds a classifier over the given candidates. An empty candidate
// list means the full supported set.
func New(candidates ...Language) *Classifier {
	if len(candidates) == 0 {
		candidates = All()
	}
	set := make(map[Language]bool, len(candidates))
	for _, l := range candidates {
		if l != Unknown {
			set[l] = true
		}
	}
	return &Classifier{candidates: set}
}

// Classify returns the detected language and true, or (Unknown, false)
// when the text is empty, too ambiguous, or matches no candidate.
// Classification is deterministic: equal inputs yield equal outputs.
func (c *Classifier) Classify(text string) (Language, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Unknown, false
	}

	var latin, han, kana, letters int
	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		letters++
		switch {
		case unicode.In(r, unicode.Hiragana), unicode.In(r, unicode.Katakana):
			kana++
		case unicode.In(r, unicode.Han):
			han++
		case unicode.In(r, unicode.Latin):
			latin++
		}
	}
	if letters == 0 {
		return Unknown, false
	}

	// Script-level decisions first: kana is unambiguously Japanese, and
	// Han without kana reads as Chinese within this candidate set.
	if kana > 0 && c.candidates[Japanese] {
		return Japanese, true
	}
	if han > 0 && kana == 0 {
		if c.candidates[Chinese] {
			return Chinese, true
		}
		return Unknown, false
	}
	if latin == 0 {
		return Unknown, false
	}
	return c.classifyLatin(text)
}

// classifyLatin disambiguates English, French and Spanish from stopwords
// and distinctive diacritics. Ties and low scores resolve to Unknown.
func (c *Classifier) classifyLatin(text string) (Language, bool) {
	scores := map[Language]int{}
	for _, r := range text {
		if l, ok := diacriticLang[r]; ok {
			scores[l] += 2
		}
		if r == '¿' || r == '¡' {
			scores[Spanish] += 3
		}
	}
	for _, tok := range tokenize(text) {
		for _, l := range []Language{English, French, Spanish} {
			if stopwords[l][tok] {
				scores[l] += 2
			}
		}
	}

	best, bestScore, tied := Unknown, 0, false
	for _, l := range []Language{English, French, Spanish} {
		if !c.candidates[l] {
			continue
		}
		s := scores[l]
		switch {
		case s > bestScore:
			best, bestScore, tied = l, s, false
		case s == bestScore && s > 0:
			tied = true
		}
	}
	if bestScore < minScore || tied {
		return Unknown, false
	}
	return best, true
}

// minScore is the confidence floor: one stopword or one strong diacritic
const minScore = 2

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

var diacriticLang = map[rune]Language{
	'à': French, 'â': French, 'ç': French, 'è': French, 'ê': French,
	'ë': French, 'î': French, 'ï': French, 'ô': French, 'û': French,
	'ù': French, 'œ': French,
	'ñ': Spanish, 'á': Spanish, 'í': Spanish, 'ó': Spanish, 'ú': Spanish,
	'ü': Spanish,
}

var stopwords = map[Language]map[string]bool{
	English: toSet("the", "and", "you", "is", "are", "this", "that", "what",
		"not", "have", "was", "with", "your", "for", "it", "but", "just",
		"like", "they", "how", "why", "can", "do", "dont", "im", "its"),
	French: toSet("le", "la", "les", "un", "une", "des", "est", "et", "je",
		"tu", "il", "elle", "nous", "vous", "pas", "que", "qui", "pour",
		"dans", "avec", "mais", "sur", "ce", "cette", "mon", "ton", "trop",
		"tres", "quoi", "oui", "non", "merci", "bonjour", "salut"),
	Spanish: toSet("el", "la", "los", "las", "un", "una", "es", "y", "yo",
		"tu", "el", "ella", "nosotros", "no", "si", "que", "quien", "por",
		"para", "en", "con", "pero", "sobre", "este", "esta", "mi", "muy",
		"hola", "gracias", "bueno", "como", "cuando", "donde"),
}

func toSet(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}
