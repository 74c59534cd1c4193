// Package langid provides closed-set language classification for short chat text
package langid

import (
	"golang.org/x/text/language"
)

// Language is one of the preloaded candidate languages
type Language int

// Candidate languages. Unknown is never a candidate; it is the
// "no confident match" result
const (
	Unknown Language = iota
	English
	French
	Japanese
	Chinese
	Spanish
)

// String returns the human label used in results and replies
func (l Language) String() string {
	switch l {
	case English:
		return "English"
	case French:
		return "French"
	case Japanese:
		return "Japanese"
	case Chinese:
		return "Chinese"
	case Spanish:
		return "Spanish"
	default:
		return "Unknown"
	}
}

// Tag returns the BCP-47 tag for the language
func (l Language) Tag() language.Tag {
	switch l {
	case English:
		return language.English
	case French:
		return language.French
	case Japanese:
		return language.Japanese
	case Chinese:
		return language.Chinese
	case Spanish:
		return language.Spanish
	default:
		return language.Und
	}
}

// All is the full supported enumeration, in declaration order
func All() []Language {
	return []Language{English, French, Japanese, Chinese, Spanish}
}
