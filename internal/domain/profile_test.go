package domain

import (
	"strings"
	"testing"
)

func mustProfile(t *testing.T, name ProfileName) Profile {
	t.Helper()
	p, ok := LookupProfile(name)
	if !ok {
		t.Fatalf("LookupProfile(%q) not found", name)
	}
	return p
}

func TestProfile_SystemInstruction(t *testing.T) {
	india := mustProfile(t, ProfileIndia)

	tests := []struct {
		name     string
		lang     Language
		location string
		suffix   string
	}{
		{
			name:   "english without location",
			lang:   LanguageEnglish,
			suffix: " Reply in English but with Indian context, emergency numbers, and protocols. Assume the user is in India and provide India-specific advice.",
		},
		{
			name:   "hinglish without location",
			lang:   LanguageHinglish,
			suffix: " Reply in Hinglish (mix of Hindi and English) using Indian context and terminology. Assume the user is in India and provide India-specific advice.",
		},
		{
			name:     "english with location",
			lang:     LanguageEnglish,
			location: "Chennai",
			suffix:   " Reply in English but with Indian context, emergency numbers, and protocols. The user's location is: Chennai, India. Provide location-specific advice for this Indian state/city.",
		},
		{
			name:     "location is trimmed",
			lang:     LanguageHinglish,
			location: "  Assam ",
			suffix:   " terminology. The user's location is: Assam, India. Provide location-specific advice for this Indian state/city.",
		},
		{
			name:     "blank location counts as absent",
			lang:     LanguageEnglish,
			location: "   ",
			suffix:   " Assume the user is in India and provide India-specific advice.",
		},
		{
			name:     "percent sign in location is literal",
			lang:     LanguageEnglish,
			location: "100%s",
			suffix:   " The user's location is: 100%s, India. Provide location-specific advice for this Indian state/city.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := india.SystemInstruction(tt.lang, tt.location)
			if !strings.HasPrefix(got, india.BaseInstruction) {
				t.Errorf("instruction does not start with base text: %q", got)
			}
			if !strings.HasSuffix(got, tt.suffix) {
				t.Errorf("instruction = %q, want suffix %q", got, tt.suffix)
			}
		})
	}
}

func TestProfile_SystemInstruction_IndiaFraming(t *testing.T) {
	got := mustProfile(t, ProfileIndia).SystemInstruction(LanguageEnglish, "")

	for _, want := range []string{"112", "100", "101", "102", "108", "NDRF", "SDRF", "Indian Red Cross", "politely refuse"} {
		if !strings.Contains(got, want) {
			t.Errorf("instruction missing %q", want)
		}
	}
}

func TestProfile_FallbackReply(t *testing.T) {
	india := mustProfile(t, ProfileIndia)

	tests := []struct {
		name    string
		message string
		lang    Language
		want    string
	}{
		{name: "earthquake english", message: "What to do in an EarthQuake", lang: LanguageEnglish, want: india.Rules[0].Reply.English},
		{name: "earthquake hinglish", message: "earthquake aa gaya", lang: LanguageHinglish, want: india.Rules[0].Reply.Hinglish},
		{name: "flood", message: "FLOOD warning", lang: LanguageEnglish, want: india.Rules[1].Reply.English},
		{name: "fire", message: "there is a fire", lang: LanguageHinglish, want: india.Rules[2].Reply.Hinglish},
		{name: "cyclone", message: "Cyclone coming", lang: LanguageEnglish, want: india.Rules[3].Reply.English},
		{name: "storm maps to cyclone", message: "big storm tonight", lang: LanguageEnglish, want: india.Rules[3].Reply.English},
		{name: "flood beats fire", message: "fire after the flood", lang: LanguageEnglish, want: india.Rules[1].Reply.English},
		{name: "earthquake beats everything", message: "storm, fire, flood, earthquake", lang: LanguageEnglish, want: india.Rules[0].Reply.English},
		{name: "substring without boundary", message: "fireworks tonight", lang: LanguageEnglish, want: india.Rules[2].Reply.English},
		{name: "no match english", message: "hello", lang: LanguageEnglish, want: india.Greeting.English},
		{name: "no match hinglish", message: "namaste", lang: LanguageHinglish, want: india.Greeting.Hinglish},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := india.FallbackReply(tt.message, tt.lang); got != tt.want {
				t.Errorf("FallbackReply(%q) = %q, want %q", tt.message, got, tt.want)
			}
		})
	}
}

func TestProfile_FallbackReply_Deterministic(t *testing.T) {
	india := mustProfile(t, ProfileIndia)
	first := india.FallbackReply("flood", LanguageEnglish)
	for i := 0; i < 10; i++ {
		if got := india.FallbackReply("flood", LanguageEnglish); got != first {
			t.Fatalf("call %d returned %q, want %q", i, got, first)
		}
	}
}

func TestProfile_MatchTopic(t *testing.T) {
	india := mustProfile(t, ProfileIndia)

	if got := india.MatchTopic("Storm!"); got != "cyclone" {
		t.Errorf("MatchTopic(Storm!) = %q, want cyclone", got)
	}
	if got := india.MatchTopic("hello"); got != "" {
		t.Errorf("MatchTopic(hello) = %q, want empty", got)
	}
}

func TestBuiltInProfilesAreComplete(t *testing.T) {
	for _, name := range ProfileNames() {
		p := mustProfile(t, ProfileName(name))

		t.Run(name, func(t *testing.T) {
			if p.BaseInstruction == "" || p.DefaultLocationClause == "" {
				t.Error("instruction text missing")
			}
			if !strings.Contains(p.LocationClause, "%s") {
				t.Errorf("LocationClause %q has no %%s verb", p.LocationClause)
			}
			for _, text := range []LocalizedText{p.LanguageClause, p.Greeting} {
				if text.English == "" || text.Hinglish == "" {
					t.Errorf("localized text incomplete: %+v", text)
				}
			}
			for _, rule := range p.Rules {
				if len(rule.Keywords) == 0 || rule.Reply.English == "" || rule.Reply.Hinglish == "" {
					t.Errorf("rule %q incomplete", rule.Topic)
				}
			}
			errs := []string{p.Errors.Unauthorized, p.Errors.NotFound, p.Errors.BadRequest, p.Errors.Generic}
			seen := make(map[string]bool)
			for _, e := range errs {
				if e == "" || seen[e] {
					t.Errorf("error replies must be non-empty and distinct: %v", errs)
				}
				seen[e] = true
			}
		})
	}
}

func TestLocalizedText_For(t *testing.T) {
	text := LocalizedText{English: "en"}
	if got := text.For(LanguageHinglish); got != "en" {
		t.Errorf("For(hinglish) with no hinglish copy = %q, want en", got)
	}
}
