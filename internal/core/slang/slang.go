// Package slang flattens chat slang and idioms into plain literal phrasing
// before translation, so the seq2seq model is not asked to decode memes.
//
// Substitution is a single left-to-right scan per text: at each position the
// longest dictionary pattern wins, replaced spans are never rescanned, and
// non-matching spans pass through byte-identical.
package slang

import (
	"strings"
	"unicode"

	"streamlate/internal/core/langid"
)

type table struct {
	ac   *acAutomaton
	repl []string
}

func newTable(entries [][2]string) *table {
	t := &table{ac: newAutomaton()}
	for _, e := range entries {
		if _, ok := t.ac.AddPattern([]byte(e[0])); ok {
			t.repl = append(t.repl, e[1])
		}
	}
	t.ac.Build()
	return t
}

func (t *table) replaceAll(text string) string {
	matches := selectLeftmostLongest(t.ac.findAll([]byte(text)))
	if len(matches) == 0 {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	pos := 0
	for _, m := range matches {
		b.WriteString(text[pos:m.start])
		b.WriteString(t.repl[m.id])
		pos = m.end
	}
	b.WriteString(text[pos:])
	return b.String()
}

// Normalizer holds one substitution table per dictionary language.
// It is immutable after New and safe for concurrent use
type Normalizer struct {
	tables map[langid.Language]*table
}

// New builds the automatons for every bundled dictionary. Tables are
// built once here; Normalize never mutates them
func New() *Normalizer {
	return &Normalizer{tables: map[langid.Language]*table{
		langid.French:   newTable(dictFR),
		langid.Japanese: newTable(dictJA),
		langid.Chinese:  newTable(dictZH),
	}}
}

// Normalize rewrites slang in text for the given language. Languages
// without a dictionary pass through unchanged
func (n *Normalizer) Normalize(lang langid.Language, text string) string {
	t, ok := n.tables[lang]
	if !ok {
		return text
	}
	return t.replaceAll(text)
}

// universal is internet slang that reads the same in every chat, so
// messages made of nothing else skip the whole pipeline
var universal = map[string]bool{
	"lol": true, "lmao": true, "lmfao": true, "rofl": true, "lul": true,
	"lulw": true, "lel": true, "kek": true, "kekw": true, "xd": true,
	"xdd": true, "bruh": true, "pog": true, "poggers": true, "pogchamp": true,
	"omegalul": true, "sadge": true, "haha": true, "hahaha": true,
	"jaja": true, "jajaja": true, "www": true, "ww": true, "gg": true,
	"ggs": true, "wp": true, "ez": true, "o7": true, "f": true, "rip": true,
	"omg": true, "wtf": true, "monkas": true, "pepega": true,
}

// IsUniversal reports whether text is composed solely of universal slang
// tokens. Tokens are compared lowercased with non-alphanumeric runes
// stripped; punctuation-only tokens are skipped. At least one slang token
// is required, so empty or punctuation-only text never qualifies
func IsUniversal(text string) bool {
	hit := false
	for _, tok := range strings.Fields(text) {
		tok = strings.Map(func(r rune) rune {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				return unicode.ToLower(r)
			}
			return -1
		}, tok)
		if tok == "" {
			continue
		}
		if !universal[tok] {
			return false
		}
		hit = true
	}
	return hit
}
