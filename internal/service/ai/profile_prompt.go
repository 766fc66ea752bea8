package ai

import (
	"fmt"
	"strings"

	"github.com/dakotaradigan/resume-site/backend/internal/model/profile"
)

// PromptTemplate defines the fixed parts of the résumé assistant prompt.
type PromptTemplate struct {
	SystemPrompt string
	StyleHints   []string
	ContextRules []string
}

// DefaultPromptTemplate is the template used for the résumé assistant.
func DefaultPromptTemplate() PromptTemplate {
	return PromptTemplate{
		SystemPrompt: "You are the assistant on %s's personal résumé site. Visitors are recruiters, hiring managers and peers who want to learn about %s's professional background.",
		StyleHints: []string{
			"Answer in two to four sentences unless the visitor asks for detail",
			"Speak about the candidate in the third person",
			"Prefer concrete numbers and outcomes from the facts over adjectives",
		},
		ContextRules: []string{
			"Only use the facts listed below; never invent employers, dates, titles or metrics",
			"If the facts do not answer the question, say so and suggest contacting the candidate by email",
			"Decline politely when asked about topics unrelated to the candidate's professional background",
		},
	}
}

// BuildSystemPrompt renders tmpl with the facts of p.
func BuildSystemPrompt(tmpl PromptTemplate, p profile.Profile) string {
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf(tmpl.SystemPrompt, p.Name, p.Name))
	builder.WriteString("\n\nStyle:\n- ")
	builder.WriteString(strings.Join(tmpl.StyleHints, "\n- "))
	builder.WriteString("\n\nRules:\n- ")
	builder.WriteString(strings.Join(tmpl.ContextRules, "\n- "))

	builder.WriteString("\n\nFacts:\n")
	for _, fact := range p.Facts() {
		builder.WriteString("- ")
		builder.WriteString(fact)
		builder.WriteString("\n")
	}

	return strings.TrimRight(builder.String(), "\n")
}
