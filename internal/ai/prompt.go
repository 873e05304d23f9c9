package ai

import (
	"fmt"
	"strings"
	"time"

	"healthtrack-app-server/internal/models"
)

// MedicalSystemPrompt is the fixed instruction block sent on every chat
// request, ahead of the per-user context.
const MedicalSystemPrompt = `You are an AI medical assistant designed to help users with their health-related questions and concerns. Your role is to:

1. Provide general health information and education
2. Help users understand their symptoms
3. Suggest when to seek professional medical attention
4. Assist with medication reminders and health tracking
5. Answer questions about medical procedures and conditions

IMPORTANT GUIDELINES:
- Always emphasize that you are not a replacement for professional medical advice
- If symptoms are severe or life-threatening, immediately recommend seeking emergency medical care
- Be empathetic and supportive while maintaining medical accuracy
- Ask clarifying questions when needed to better understand the user's situation
- Provide evidence-based information when possible
- Respect user privacy and maintain confidentiality

When responding, consider the user's medical history, current medications, and any context they provide.`

// SystemPrompt combines the fixed instructions with the user context block.
func SystemPrompt(user models.User) string {
	return MedicalSystemPrompt + "\n\n" + UserContext(user)
}

// UserContext renders the profile details the assistant is given about the
// user: name, age, history, allergies, medications and emergency contact.
func UserContext(user models.User) string {
	age := "Not specified"
	if user.DateOfBirth != "" {
		if years, ok := CalculateAge(user.DateOfBirth, time.Now()); ok {
			age = fmt.Sprintf("%d", years)
		}
	}
	contact := "Not specified"
	if user.EmergencyContact != nil {
		contact = fmt.Sprintf("%s (%s)", user.EmergencyContact.Name, user.EmergencyContact.Relationship)
	}
	return fmt.Sprintf(`
User Information:
- Name: %s %s
- Age: %s
- Medical History: %s
- Allergies: %s
- Current Medications: %s
- Emergency Contact: %s
`,
		user.FirstName, user.LastName,
		age,
		joinOrNone(user.MedicalHistory),
		joinOrNone(user.Allergies),
		joinOrNone(user.Medications),
		contact,
	)
}

// ConversationPrompt renders the trimmed history window followed by the
// current message. history should already include the current message as its
// last turn; only the last historyWindow turns are kept, oldest first.
func ConversationPrompt(messages []models.Message, current string) string {
	window := messages
	if len(window) > historyWindow {
		window = window[len(window)-historyWindow:]
	}
	lines := make([]string, 0, len(window))
	for _, msg := range window {
		lines = append(lines, fmt.Sprintf("%s: %s", msg.Role, msg.Content))
	}
	return fmt.Sprintf("Conversation History:\n%s\n\nCurrent Message: %s", strings.Join(lines, "\n"), current)
}

// historyWindow is the number of trailing conversation turns sent to the
// completion API. Stored history is unbounded.
const historyWindow = 10

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "None specified"
	}
	return strings.Join(items, ", ")
}

// CalculateAge returns whole years between dateOfBirth and now. The second
// return is false when the date cannot be parsed.
func CalculateAge(dateOfBirth string, now time.Time) (int, bool) {
	birth, err := time.Parse("2006-01-02", dateOfBirth)
	if err != nil {
		birth, err = time.Parse(time.RFC3339, dateOfBirth)
		if err != nil {
			return 0, false
		}
	}
	years := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		years--
	}
	return years, true
}
