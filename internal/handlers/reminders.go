package handlers

import (
	"net/http"
	"sort"

	"healthtrack-app-server/internal/models"
	"healthtrack-app-server/internal/store"
	"healthtrack-app-server/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ReminderHandler handles reminder related requests.
type ReminderHandler struct {
	Reminders *store.Collection
	Log       zerolog.Logger
}

// NewReminderHandler creates a new ReminderHandler.
func NewReminderHandler(reminders *store.Collection, log zerolog.Logger) *ReminderHandler {
	return &ReminderHandler{Reminders: reminders, Log: log}
}

// GetReminders handles fetching all reminders for a user, sorted by
// scheduled time ascending. An unknown user yields an empty list.
func (h *ReminderHandler) GetReminders(c *gin.Context) {
	userID := c.Param("userId")
	if userID == "" {
		utils.BadRequest(c, "User ID is required")
		return
	}

	var reminders []models.Reminder
	if err := h.Reminders.Query(c.Request.Context(), "userId", userID, &reminders); err != nil {
		h.Log.Error().Err(err).Str("userId", userID).Msg("querying reminders")
		utils.InternalServerError(c)
		return
	}

	sort.Slice(reminders, func(i, j int) bool {
		return parseWhen(reminders[i].ScheduledTime).Before(parseWhen(reminders[j].ScheduledTime))
	})

	utils.Success(c, "", reminders)
}

// SaveReminderRequest is the trimmed payload accepted by the save endpoint.
type SaveReminderRequest struct {
	UserID string `json:"userId"`
	Time   string `json:"time"`
	Note   string `json:"note"`
}

// SaveReminder writes a reminder in the legacy ad hoc shape: the document
// carries only userId, time and note, is keyed by userId (so each save
// replaces the user's previous one), and the response is a bare
// {"success":true}. This diverges from the canonical Reminder schema; see
// models.CreateReminderRequest. Kept as-is pending a decision on unifying
// the two write paths.
func (h *ReminderHandler) SaveReminder(c *gin.Context) {
	var req SaveReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		return
	}
	if req.UserID == "" || req.Time == "" || req.Note == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		return
	}

	item := map[string]interface{}{
		"userId": req.UserID,
		"time":   req.Time,
		"note":   req.Note,
	}
	if err := h.Reminders.Put(c.Request.Context(), req.UserID, item); err != nil {
		h.Log.Error().Err(err).Str("userId", req.UserID).Msg("saving reminder")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
