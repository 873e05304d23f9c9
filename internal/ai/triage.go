package ai

import (
	"strings"

	"healthtrack-app-server/internal/models"
)

// Trigger phrases, checked in order: any high match wins before the medium
// list is consulted. Matching is plain case-folded substring search, so
// negations ("no chest pain") still trigger.
var highUrgencyKeywords = []string{
	"emergency", "severe", "chest pain", "difficulty breathing", "unconscious",
	"bleeding", "broken", "fracture", "heart attack", "stroke", "immediate",
	"call 911", "ambulance", "urgent care", "emergency room",
}

var mediumUrgencyKeywords = []string{
	"pain", "fever", "infection", "swelling", "rash", "dizziness",
	"nausea", "vomiting", "diarrhea", "headache", "consult doctor",
}

// DetermineUrgency classifies the exchange by scanning the user message and
// the assistant reply together against the keyword lists.
func DetermineUrgency(userMessage, assistantReply string) models.Urgency {
	combined := strings.ToLower(userMessage + " " + assistantReply)
	for _, keyword := range highUrgencyKeywords {
		if strings.Contains(combined, keyword) {
			return models.UrgencyHigh
		}
	}
	for _, keyword := range mediumUrgencyKeywords {
		if strings.Contains(combined, keyword) {
			return models.UrgencyMedium
		}
	}
	return models.UrgencyLow
}

// suggestionTriggers maps reply phrases to the fixed suggestion appended when
// the phrase is present. Checks are independent; order here is output order.
var suggestionTriggers = []struct {
	phrase     string
	suggestion string
}{
	{"see a doctor", "Schedule an appointment with your doctor"},
	{"emergency", "Seek immediate medical attention"},
	{"rest", "Get adequate rest"},
	{"hydration", "Stay hydrated"},
}

// ExtractSuggestedActions collects the suggestions whose trigger phrase
// appears in the assistant reply.
func ExtractSuggestedActions(assistantReply string) []string {
	lowered := strings.ToLower(assistantReply)
	var suggestions []string
	for _, trigger := range suggestionTriggers {
		if strings.Contains(lowered, trigger.phrase) {
			suggestions = append(suggestions, trigger.suggestion)
		}
	}
	return suggestions
}
