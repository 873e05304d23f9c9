package handlers

import (
	"sort"
	"time"

	"healthtrack-app-server/internal/models"
	"healthtrack-app-server/internal/store"
	"healthtrack-app-server/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// MedicalRecordHandler handles medical record related requests.
type MedicalRecordHandler struct {
	Records *store.Collection
	Users   *store.Collection
	Log     zerolog.Logger
}

// NewMedicalRecordHandler creates a new MedicalRecordHandler.
func NewMedicalRecordHandler(records, users *store.Collection, log zerolog.Logger) *MedicalRecordHandler {
	return &MedicalRecordHandler{Records: records, Users: users, Log: log}
}

// CreateMedicalRecordRequest represents the request body for creating a
// medical record.
type CreateMedicalRecordRequest struct {
	UserID      string                   `json:"userId" binding:"required"`
	Type        models.MedicalRecordType `json:"type" binding:"required,oneof=appointment test_result prescription symptom vaccination surgery"`
	Title       string                   `json:"title" binding:"required,min=1,max=200"`
	Description string                   `json:"description" binding:"required,min=1,max=2000"`
	Date        string                   `json:"date" binding:"required,isodate"`
	Doctor      string                   `json:"doctor"`
	Hospital    string                   `json:"hospital"`
	Attachments []string                 `json:"attachments"`
	Tags        []string                 `json:"tags"`
}

// CreateMedicalRecord handles creating a new medical record. The referenced
// user must exist; beyond that existence check there is no referential
// integrity between collections.
func (h *MedicalRecordHandler) CreateMedicalRecord(c *gin.Context) {
	var req CreateMedicalRecordRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	ctx := c.Request.Context()

	found, err := h.Users.Get(ctx, req.UserID, nil)
	if err != nil {
		h.Log.Error().Err(err).Str("userId", req.UserID).Msg("verifying user for record")
		utils.InternalServerError(c)
		return
	}
	if !found {
		utils.NotFound(c, "User not found")
		return
	}

	if req.Attachments == nil {
		req.Attachments = []string{}
	}
	if req.Tags == nil {
		req.Tags = []string{}
	}

	now := nowISO()
	record := models.MedicalRecord{
		RecordID:    uuid.New().String(),
		UserID:      req.UserID,
		Type:        req.Type,
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Doctor:      req.Doctor,
		Hospital:    req.Hospital,
		Attachments: req.Attachments,
		Tags:        req.Tags,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := h.Records.Create(ctx, record); err != nil {
		h.Log.Error().Err(err).Str("recordId", record.RecordID).Msg("creating medical record")
		utils.InternalServerError(c)
		return
	}

	utils.Created(c, "Medical record created successfully", record)
}

// GetMedicalRecords handles fetching all medical records for a user, newest
// first. A user with no records yields an empty list, never a 404.
func (h *MedicalRecordHandler) GetMedicalRecords(c *gin.Context) {
	userID := c.Param("userId")
	if userID == "" {
		utils.BadRequest(c, "User ID is required")
		return
	}

	var records []models.MedicalRecord
	if err := h.Records.Query(c.Request.Context(), "userId", userID, &records); err != nil {
		h.Log.Error().Err(err).Str("userId", userID).Msg("querying medical records")
		utils.InternalServerError(c)
		return
	}

	sort.Slice(records, func(i, j int) bool {
		return parseWhen(records[i].Date).After(parseWhen(records[j].Date))
	})

	utils.Success(c, "", records)
}

// UpdateMedicalRecordRequest represents the request body for updating a
// medical record. All fields optional; only supplied fields are merged.
type UpdateMedicalRecordRequest struct {
	Type        *models.MedicalRecordType `json:"type" binding:"omitempty,oneof=appointment test_result prescription symptom vaccination surgery"`
	Title       *string                   `json:"title" binding:"omitempty,min=1,max=200"`
	Description *string                   `json:"description" binding:"omitempty,min=1,max=2000"`
	Date        *string                   `json:"date" binding:"omitempty,isodate"`
	Doctor      *string                   `json:"doctor"`
	Hospital    *string                   `json:"hospital"`
	Attachments []string                  `json:"attachments"`
	Tags        []string                  `json:"tags"`
}

// UpdateMedicalRecord handles partial updates of a medical record by ID.
func (h *MedicalRecordHandler) UpdateMedicalRecord(c *gin.Context) {
	recordID := c.Param("recordId")
	if recordID == "" {
		utils.BadRequest(c, "Record ID is required")
		return
	}

	var req UpdateMedicalRecordRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	ctx := c.Request.Context()

	found, err := h.Records.Get(ctx, recordID, nil)
	if err != nil {
		h.Log.Error().Err(err).Str("recordId", recordID).Msg("fetching record for update")
		utils.InternalServerError(c)
		return
	}
	if !found {
		utils.NotFound(c, "Medical record not found")
		return
	}

	updates := map[string]interface{}{}
	if req.Type != nil {
		updates["type"] = *req.Type
	}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Date != nil {
		updates["date"] = *req.Date
	}
	if req.Doctor != nil {
		updates["doctor"] = *req.Doctor
	}
	if req.Hospital != nil {
		updates["hospital"] = *req.Hospital
	}
	if req.Attachments != nil {
		updates["attachments"] = req.Attachments
	}
	if req.Tags != nil {
		updates["tags"] = req.Tags
	}
	updates["updatedAt"] = nowISO()

	var updated models.MedicalRecord
	if err := h.Records.Update(ctx, recordID, updates, &updated); err != nil {
		if err == store.ErrNotFound {
			utils.NotFound(c, "Medical record not found")
			return
		}
		h.Log.Error().Err(err).Str("recordId", recordID).Msg("updating medical record")
		utils.InternalServerError(c)
		return
	}

	utils.Success(c, "Medical record updated successfully", updated)
}

// DeleteMedicalRecord handles deleting a medical record by ID. The existence
// check runs before the delete, so a second delete of the same record is a
// 404.
func (h *MedicalRecordHandler) DeleteMedicalRecord(c *gin.Context) {
	recordID := c.Param("recordId")
	if recordID == "" {
		utils.BadRequest(c, "Record ID is required")
		return
	}

	ctx := c.Request.Context()

	found, err := h.Records.Get(ctx, recordID, nil)
	if err != nil {
		h.Log.Error().Err(err).Str("recordId", recordID).Msg("fetching record for delete")
		utils.InternalServerError(c)
		return
	}
	if !found {
		utils.NotFound(c, "Medical record not found")
		return
	}

	if err := h.Records.Delete(ctx, recordID); err != nil {
		h.Log.Error().Err(err).Str("recordId", recordID).Msg("deleting medical record")
		utils.InternalServerError(c)
		return
	}

	utils.Success(c, "Medical record deleted successfully", nil)
}

// parseWhen parses the stored ISO-8601 value; unparsable values sort last.
func parseWhen(value string) time.Time {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t
	}
	return time.Time{}
}
