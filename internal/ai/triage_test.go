package ai

import (
	"testing"

	"healthtrack-app-server/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestDetermineUrgency(t *testing.T) {
	tests := []struct {
		name    string
		message string
		reply   string
		want    models.Urgency
	}{
		{"chest pain is high", "I have chest pain", "Please seek help.", models.UrgencyHigh},
		{"headache is medium", "I have a headache", "Try to relax.", models.UrgencyMedium},
		{"greeting is low", "hello there", "Hi! How can I help you today?", models.UrgencyLow},
		{"high wins over medium", "headache and chest pain", "Take care.", models.UrgencyHigh},
		{"keyword in reply counts", "what should I do?", "This sounds like an emergency.", models.UrgencyHigh},
		{"negation still matches", "I have no chest pain at all", "Good to hear.", models.UrgencyHigh},
		{"case folded", "SEVERE cramps", "Take care.", models.UrgencyHigh},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetermineUrgency(tt.message, tt.reply))
		})
	}
}

func TestExtractSuggestedActions(t *testing.T) {
	reply := "You should see a doctor. Until then, rest and focus on hydration."
	assert.Equal(t, []string{
		"Schedule an appointment with your doctor",
		"Get adequate rest",
		"Stay hydrated",
	}, ExtractSuggestedActions(reply))
}

func TestExtractSuggestedActionsOrderIsFixed(t *testing.T) {
	// Trigger order decides output order, not position in the reply.
	reply := "Hydration first, then rest, and in an emergency see a doctor."
	assert.Equal(t, []string{
		"Schedule an appointment with your doctor",
		"Seek immediate medical attention",
		"Get adequate rest",
		"Stay hydrated",
	}, ExtractSuggestedActions(reply))
}

func TestExtractSuggestedActionsNone(t *testing.T) {
	assert.Empty(t, ExtractSuggestedActions("Take it easy today."))
}
