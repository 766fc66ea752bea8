package chat

import "fmt"

// HeroSuggestions are the one-click prompts under the hero chat.
var HeroSuggestions = []string{
	"What are your main skills?",
	"Tell me about your experience",
	"What's your background?",
}

// SectionSuggestions are the prompts of the full-width chat section.
var SectionSuggestions = []string{
	"What are your main technical skills?",
	"Tell me about your recent experience",
	"What projects have you worked on?",
	"What's your education background?",
}

// Variant selects which flavour of the widget a session gets. A variant fixes
// both its suggestion list and its placeholder wording.
type Variant string

const (
	VariantHero    Variant = "hero"
	VariantSection Variant = "section"
)

// ParseVariant accepts "hero", "section" or an empty string (hero).
func ParseVariant(s string) (Variant, error) {
	switch Variant(s) {
	case "", VariantHero:
		return VariantHero, nil
	case VariantSection:
		return VariantSection, nil
	default:
		return "", fmt.Errorf("unknown chat variant %q", s)
	}
}

// Suggestions returns a copy of the variant's one-click prompts.
func (v Variant) Suggestions() []string {
	if v == VariantSection {
		return append([]string(nil), SectionSuggestions...)
	}
	return append([]string(nil), HeroSuggestions...)
}

// PlaceholderReply renders the variant's canned acknowledgement for query.
func (v Variant) PlaceholderReply(query string) string {
	if v == VariantSection {
		return fmt.Sprintf("Thanks for your question about \"%s\". This is a placeholder response. To enable AI-powered responses with RAG capabilities, the backend needs to be configured.", query)
	}
	return fmt.Sprintf("Thanks for asking about \"%s\". This is a placeholder. Scroll down to explore my skills, experience, and education below!", query)
}

func containsSuggestion(list []string, text string) bool {
	for _, item := range list {
		if item == text {
			return true
		}
	}
	return false
}
