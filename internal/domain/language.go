// Package domain contains the core business entities and value objects.
// These structs are framework-agnostic and represent the heart of the application.
package domain

import "strings"

// Language is the reply style the assistant answers in.
type Language string

const (
	LanguageEnglish  Language = "english"
	LanguageHinglish Language = "hinglish"
)

// hinglishMarkers are common Hindi words written in Latin script.
// A single substring hit anywhere in the text classifies it as Hinglish.
var hinglishMarkers = []string{
	"hai", "kya", "nahi", "kar", "par", "ka", "ki", "se", "mein", "ho",
	"raha", "gaya", "bhai", "aap", "kyun", "kyunki", "sab", "toh", "ab",
	"tum", "hum", "yeh", "woh",
}

// HinglishMarkers returns a copy of the detector's keyword list.
func HinglishMarkers() []string {
	out := make([]string, len(hinglishMarkers))
	copy(out, hinglishMarkers)
	return out
}

// DetectLanguage classifies text as Hinglish or English.
// Matching is case-insensitive and has no word-boundary check, so "about"
// counts as Hinglish because it contains "ab".
func DetectLanguage(text string) Language {
	lower := strings.ToLower(text)
	for _, marker := range hinglishMarkers {
		if strings.Contains(lower, marker) {
			return LanguageHinglish
		}
	}
	return LanguageEnglish
}

// ResolveLanguage returns the explicit language when one was given and
// falls back to detection on the message otherwise. Any explicit value
// other than "hinglish" resolves to English.
func ResolveLanguage(explicit, message string) Language {
	explicit = strings.TrimSpace(explicit)
	if explicit == "" {
		return DetectLanguage(message)
	}
	if Language(strings.ToLower(explicit)) == LanguageHinglish {
		return LanguageHinglish
	}
	return LanguageEnglish
}
