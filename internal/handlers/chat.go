package handlers

import (
	"healthtrack-app-server/internal/ai"
	"healthtrack-app-server/internal/models"
	"healthtrack-app-server/internal/store"
	"healthtrack-app-server/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ChatHandler handles requests to the AI chat assistant.
type ChatHandler struct {
	Users         *store.Collection
	Conversations *store.Collection
	AI            ai.Completer
	Log           zerolog.Logger
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(users, conversations *store.Collection, completer ai.Completer, log zerolog.Logger) *ChatHandler {
	return &ChatHandler{Users: users, Conversations: conversations, AI: completer, Log: log}
}

// ChatContext carries optional client-supplied situation details.
type ChatContext struct {
	Symptoms           []string `json:"symptoms,omitempty"`
	CurrentMedications []string `json:"currentMedications,omitempty"`
	RecentAppointments []string `json:"recentAppointments,omitempty"`
}

// ChatRequest represents the request body for a chat turn.
type ChatRequest struct {
	UserID         string       `json:"userId"`
	Message        string       `json:"message"`
	ConversationID string       `json:"conversationId"`
	Context        *ChatContext `json:"context"`
}

// ChatResponse is the assistant's reply plus triage output.
type ChatResponse struct {
	ConversationID  string         `json:"conversationId"`
	Message         string         `json:"message"`
	Suggestions     []string       `json:"suggestions,omitempty"`
	Urgency         models.Urgency `json:"urgency,omitempty"`
	ShouldSeeDoctor bool           `json:"shouldSeeDoctor"`
}

// Chat runs one assistant turn: load the user for context, load or start the
// conversation, append the inbound message, call the completion API once,
// classify the reply, and persist the whole conversation by overwrite. A
// failure at any step persists nothing, because the single store write
// happens last.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "User ID and message are required")
		return
	}
	if req.UserID == "" || req.Message == "" {
		utils.BadRequest(c, "User ID and message are required")
		return
	}

	ctx := c.Request.Context()

	var user models.User
	found, err := h.Users.Get(ctx, req.UserID, &user)
	if err != nil {
		h.Log.Error().Err(err).Str("userId", req.UserID).Msg("fetching user for chat")
		utils.InternalServerError(c)
		return
	}
	if !found {
		utils.NotFound(c, "User not found")
		return
	}

	now := nowISO()
	conversation := models.Conversation{
		ConversationID: req.ConversationID,
		UserID:         req.UserID,
		Messages:       []models.Message{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if req.ConversationID != "" {
		// An unresolvable conversationId starts a fresh conversation under
		// that id rather than failing the request.
		if _, err := h.Conversations.Get(ctx, req.ConversationID, &conversation); err != nil {
			h.Log.Error().Err(err).Str("conversationId", req.ConversationID).Msg("fetching conversation")
			utils.InternalServerError(c)
			return
		}
	} else {
		conversation.ConversationID = uuid.New().String()
	}

	conversation.Messages = append(conversation.Messages, models.Message{
		MessageID: uuid.New().String(),
		Role:      models.RoleUser,
		Content:   req.Message,
		Timestamp: now,
	})

	systemPrompt := ai.SystemPrompt(user)
	userPrompt := ai.ConversationPrompt(conversation.Messages, req.Message)

	reply, err := h.AI.Complete(ctx, systemPrompt, userPrompt)
	if err != nil {
		h.Log.Error().Err(err).Str("conversationId", conversation.ConversationID).Msg("completion API call failed")
		utils.InternalServerError(c)
		return
	}
	if reply == "" {
		reply = ai.FallbackReply
	}

	urgency := ai.DetermineUrgency(req.Message, reply)
	suggestions := ai.ExtractSuggestedActions(reply)

	conversation.Messages = append(conversation.Messages, models.Message{
		MessageID: uuid.New().String(),
		Role:      models.RoleAssistant,
		Content:   reply,
		Timestamp: nowISO(),
		Metadata: &models.MessageMetadata{
			Urgency:          urgency,
			SuggestedActions: suggestions,
		},
	})
	conversation.UpdatedAt = nowISO()

	if err := h.Conversations.Create(ctx, conversation); err != nil {
		h.Log.Error().Err(err).Str("conversationId", conversation.ConversationID).Msg("saving conversation")
		utils.InternalServerError(c)
		return
	}

	utils.Success(c, "", ChatResponse{
		ConversationID:  conversation.ConversationID,
		Message:         reply,
		Suggestions:     suggestions,
		Urgency:         urgency,
		ShouldSeeDoctor: urgency == models.UrgencyHigh,
	})
}
