// Package domain contains the core business entities and value objects.
package domain

import (
	"fmt"
	"sort"
	"strings"
)

// ProfileName identifies a built-in assistant profile.
type ProfileName string

const (
	ProfileIndia  ProfileName = "india"
	ProfileGlobal ProfileName = "global"
)

// LocalizedText holds one piece of copy per supported language.
type LocalizedText struct {
	English  string
	Hinglish string
}

// For returns the text for lang, defaulting to English.
func (t LocalizedText) For(lang Language) string {
	if lang == LanguageHinglish && t.Hinglish != "" {
		return t.Hinglish
	}
	return t.English
}

// FallbackRule maps disaster keywords to a canned safety tip.
type FallbackRule struct {
	// Topic is a short label used in logs.
	Topic string

	// Keywords trigger the rule on a case-insensitive substring match.
	Keywords []string

	Reply LocalizedText
}

// Matches reports whether any keyword occurs in the lower-cased message.
func (r FallbackRule) Matches(lowerMessage string) bool {
	for _, kw := range r.Keywords {
		if strings.Contains(lowerMessage, kw) {
			return true
		}
	}
	return false
}

// ErrorReplies is the user-facing copy for absorbed provider failures.
type ErrorReplies struct {
	Unauthorized string
	NotFound     string
	BadRequest   string
	Generic      string
}

// Profile is the data table that drives prompt assembly and the local
// fallback ladder. Variants differ only in data, never in code paths.
type Profile struct {
	Name ProfileName

	// BaseInstruction restricts the assistant to disaster-management topics.
	BaseInstruction string

	// LanguageClause is appended after the base instruction.
	LanguageClause LocalizedText

	// LocationClause is a format string taking the user's location.
	LocationClause string

	// DefaultLocationClause is used when no location was supplied.
	DefaultLocationClause string

	// Rules are checked in order; the first match wins.
	Rules []FallbackRule

	// Greeting is the fallback reply when no rule matches.
	Greeting LocalizedText

	Errors ErrorReplies
}

// SystemInstruction assembles the per-request instruction: base text,
// then the language clause, then the location clause.
func (p Profile) SystemInstruction(lang Language, location string) string {
	var b strings.Builder
	b.WriteString(p.BaseInstruction)
	b.WriteString(p.LanguageClause.For(lang))
	if loc := strings.TrimSpace(location); loc != "" {
		b.WriteString(fmt.Sprintf(p.LocationClause, loc))
	} else {
		b.WriteString(p.DefaultLocationClause)
	}
	return b.String()
}

// FallbackReply walks the keyword ladder for a message.
func (p Profile) FallbackReply(message string, lang Language) string {
	lower := strings.ToLower(message)
	for _, rule := range p.Rules {
		if rule.Matches(lower) {
			return rule.Reply.For(lang)
		}
	}
	return p.Greeting.For(lang)
}

// MatchTopic returns the topic of the first matching rule, or "" if none.
func (p Profile) MatchTopic(message string) string {
	lower := strings.ToLower(message)
	for _, rule := range p.Rules {
		if rule.Matches(lower) {
			return rule.Topic
		}
	}
	return ""
}

var profiles = map[ProfileName]Profile{
	ProfileIndia:  indiaProfile,
	ProfileGlobal: globalProfile,
}

// LookupProfile returns the built-in profile registered under name.
func LookupProfile(name ProfileName) (Profile, bool) {
	p, ok := profiles[name]
	return p, ok
}

// ProfileNames lists the registered profiles in sorted order.
func ProfileNames() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, string(name))
	}
	sort.Strings(names)
	return names
}

var indiaProfile = Profile{
	Name: ProfileIndia,
	BaseInstruction: "You are a disaster management assistant specifically for India. " +
		"Only answer questions related to disaster preparedness, response, recovery, and safety in the Indian context. " +
		"Always provide India-specific emergency numbers, protocols, and advice. " +
		"Use Indian emergency services like 112 (National Emergency Number), 100 (Police), 101 (Fire), 102 (Ambulance), 108 (Emergency Response), NDRF, SDRF, and local Indian authorities. " +
		"Mention Indian government schemes, Indian Red Cross, and India-specific disaster management protocols. " +
		"If a question is not about disaster management, politely refuse.",
	LanguageClause: LocalizedText{
		English:  " Reply in English but with Indian context, emergency numbers, and protocols.",
		Hinglish: " Reply in Hinglish (mix of Hindi and English) using Indian context and terminology.",
	},
	LocationClause:        " The user's location is: %s, India. Provide location-specific advice for this Indian state/city.",
	DefaultLocationClause: " Assume the user is in India and provide India-specific advice.",
	Rules: []FallbackRule{
		{
			Topic:    "earthquake",
			Keywords: []string{"earthquake"},
			Reply: LocalizedText{
				English:  "During an earthquake: Drop, Cover, and Hold! Call 112 for emergencies. Contact NDRF and local Indian authorities. Stay away from buildings and go to open areas.",
				Hinglish: "Bhai, earthquake ke time Drop-Cover-Hold karo! 112 pe call karo emergency ke liye. NDRF aur local authorities ko inform karo.",
			},
		},
		{
			Topic:    "flood",
			Keywords: []string{"flood"},
			Reply: LocalizedText{
				English:  "During floods: Stay away from flood water! Call 112 or 108. Contact SDRF and local disaster management teams. Move to higher ground immediately.",
				Hinglish: "Flood mein paani se door raho bhai! 112 ya 108 call karo. SDRF aur local disaster management team ko contact karo. High ground pe jao.",
			},
		},
		{
			Topic:    "fire",
			Keywords: []string{"fire"},
			Reply: LocalizedText{
				English:  "Fire emergency: Call 101 for Fire Services! Inform local fire brigade. Crawl low to avoid smoke inhalation.",
				Hinglish: "Fire emergency mein 101 call karo! Fire brigade ko inform karo. Smoke se bachne ke liye neeche crawl karo.",
			},
		},
		{
			Topic:    "cyclone",
			Keywords: []string{"cyclone", "storm"},
			Reply: LocalizedText{
				English:  "Cyclone alert: Follow IMD (Indian Meteorological Department) warnings! Call 112. Stay indoors, close all windows and doors.",
				Hinglish: "Cyclone alert mein IMD ki warnings suno! 112 call karo. Ghar ke andar raho, windows band karo.",
			},
		},
	},
	Greeting: LocalizedText{
		English:  "I can help with Indian disaster management! Emergency numbers: 112 - National Emergency, 100 - Police, 101 - Fire, 102 - Ambulance, 108 - Emergency Response. Ask me anything about disaster preparedness in India!",
		Hinglish: "Main India ke disaster management ke baare mein help kar sakta hu! 112 - National Emergency, 100 - Police, 101 - Fire, 102 - Ambulance. Kuch bhi pooch sakte ho!",
	},
	Errors: ErrorReplies{
		Unauthorized: "Error: Invalid API key. Please check the key is set up correctly in Render environment variables.",
		NotFound:     "Error: API endpoint not found. Please check the API key and deployment settings.",
		BadRequest:   "Error: Bad request to API. Please check the request format.",
		Generic:      "Sorry, there was an error processing your request. Please try again later.",
	},
}

var globalProfile = Profile{
	Name: ProfileGlobal,
	BaseInstruction: "You are a disaster management assistant. " +
		"Only answer questions related to disaster preparedness, response, recovery, and safety. " +
		"Always point users to their local emergency number and official civil-protection agencies. " +
		"If a question is not about disaster management, politely refuse.",
	LanguageClause: LocalizedText{
		English:  " Reply in English.",
		Hinglish: " Reply in Hinglish (mix of Hindi and English).",
	},
	LocationClause:        " The user's location is: %s. Provide location-specific advice for this place.",
	DefaultLocationClause: " The user's location is unknown; give general advice.",
	Rules: []FallbackRule{
		{
			Topic:    "earthquake",
			Keywords: []string{"earthquake"},
			Reply: LocalizedText{
				English:  "During an earthquake: Drop, Cover, and Hold On! Stay away from windows and move to open ground once the shaking stops.",
				Hinglish: "Earthquake ke time Drop-Cover-Hold karo! Shaking rukne ke baad open area mein jao.",
			},
		},
		{
			Topic:    "flood",
			Keywords: []string{"flood"},
			Reply: LocalizedText{
				English:  "During floods: Move to higher ground and never walk or drive through flood water.",
				Hinglish: "Flood mein high ground pe jao aur paani mein chalne ya gaadi chalane se bacho.",
			},
		},
		{
			Topic:    "fire",
			Keywords: []string{"fire"},
			Reply: LocalizedText{
				English:  "Fire emergency: Get out, stay out, and call your local emergency number. Crawl low under smoke.",
				Hinglish: "Fire emergency mein turant bahar niklo aur local emergency number call karo. Smoke ke neeche crawl karo.",
			},
		},
		{
			Topic:    "cyclone",
			Keywords: []string{"cyclone", "storm"},
			Reply: LocalizedText{
				English:  "Storm alert: Follow official weather warnings, stay indoors, and keep away from windows.",
				Hinglish: "Storm alert mein official warnings follow karo, ghar ke andar raho aur windows se door raho.",
			},
		},
	},
	Greeting: LocalizedText{
		English:  "I can help with disaster preparedness and safety. In an emergency, call your local emergency number right away.",
		Hinglish: "Main disaster preparedness aur safety mein help kar sakta hu. Emergency mein turant local emergency number call karo.",
	},
	Errors: ErrorReplies{
		Unauthorized: "Error: Invalid API key. Please check the provider credentials in the server environment.",
		NotFound:     "Error: API endpoint not found. Please check the API key and deployment settings.",
		BadRequest:   "Error: Bad request to API. Please check the request format.",
		Generic:      "Sorry, there was an error processing your request. Please try again later.",
	},
}
