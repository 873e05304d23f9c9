package handlers

import (
	"time"

	"healthtrack-app-server/internal/models"
	"healthtrack-app-server/internal/store"
	"healthtrack-app-server/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// nowISO returns the current time as an ISO-8601 string with millisecond
// precision, the timestamp format stored on every entity.
func nowISO() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000Z")
}

// UserHandler handles user-related requests.
type UserHandler struct {
	Users *store.Collection
	Log   zerolog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users *store.Collection, log zerolog.Logger) *UserHandler {
	return &UserHandler{Users: users, Log: log}
}

// CreateUserRequest represents the request body for creating a user.
type CreateUserRequest struct {
	Email            string                   `json:"email" binding:"required,email"`
	FirstName        string                   `json:"firstName" binding:"required,min=1,max=50"`
	LastName         string                   `json:"lastName" binding:"required,min=1,max=50"`
	DateOfBirth      string                   `json:"dateOfBirth" binding:"omitempty,isodate"`
	PhoneNumber      string                   `json:"phoneNumber" binding:"omitempty,phone"`
	EmergencyContact *models.EmergencyContact `json:"emergencyContact" binding:"omitempty"`
}

// CreateUser handles creating a new user. Email uniqueness is enforced by a
// query before the insert; the check and the write are separate operations,
// so two concurrent creates with the same email can both succeed.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	ctx := c.Request.Context()

	var existing []models.User
	if err := h.Users.Query(ctx, "email", req.Email, &existing); err != nil {
		h.Log.Error().Err(err).Msg("querying users by email")
		utils.InternalServerError(c)
		return
	}
	if len(existing) > 0 {
		utils.Conflict(c, "User with this email already exists")
		return
	}

	now := nowISO()
	user := models.User{
		UserID:           uuid.New().String(),
		Email:            req.Email,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		DateOfBirth:      req.DateOfBirth,
		PhoneNumber:      req.PhoneNumber,
		EmergencyContact: req.EmergencyContact,
		MedicalHistory:   []string{},
		Allergies:        []string{},
		Medications:      []string{},
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := h.Users.Create(ctx, user); err != nil {
		h.Log.Error().Err(err).Str("userId", user.UserID).Msg("creating user")
		utils.InternalServerError(c)
		return
	}

	utils.Created(c, "User created successfully", user)
}

// GetUser handles fetching a single user by ID.
func (h *UserHandler) GetUser(c *gin.Context) {
	userID := c.Param("userId")
	if userID == "" {
		utils.BadRequest(c, "User ID is required")
		return
	}

	var user models.User
	found, err := h.Users.Get(c.Request.Context(), userID, &user)
	if err != nil {
		h.Log.Error().Err(err).Str("userId", userID).Msg("fetching user")
		utils.InternalServerError(c)
		return
	}
	if !found {
		utils.NotFound(c, "User not found")
		return
	}

	utils.Success(c, "", user)
}

// UpdateUserRequest represents the request body for updating a user. Every
// field is optional; only supplied fields are merged into the stored record.
// Email is immutable.
type UpdateUserRequest struct {
	FirstName        *string                  `json:"firstName" binding:"omitempty,min=1,max=50"`
	LastName         *string                  `json:"lastName" binding:"omitempty,min=1,max=50"`
	DateOfBirth      *string                  `json:"dateOfBirth" binding:"omitempty,isodate"`
	PhoneNumber      *string                  `json:"phoneNumber" binding:"omitempty,phone"`
	EmergencyContact *models.EmergencyContact `json:"emergencyContact" binding:"omitempty"`
	MedicalHistory   []string                 `json:"medicalHistory"`
	Allergies        []string                 `json:"allergies"`
	Medications      []string                 `json:"medications"`
}

// UpdateUser handles partial updates of a user by ID.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	userID := c.Param("userId")
	if userID == "" {
		utils.BadRequest(c, "User ID is required")
		return
	}

	var req UpdateUserRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	ctx := c.Request.Context()

	found, err := h.Users.Get(ctx, userID, nil)
	if err != nil {
		h.Log.Error().Err(err).Str("userId", userID).Msg("fetching user for update")
		utils.InternalServerError(c)
		return
	}
	if !found {
		utils.NotFound(c, "User not found")
		return
	}

	updates := map[string]interface{}{}
	if req.FirstName != nil {
		updates["firstName"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["lastName"] = *req.LastName
	}
	if req.DateOfBirth != nil {
		updates["dateOfBirth"] = *req.DateOfBirth
	}
	if req.PhoneNumber != nil {
		updates["phoneNumber"] = *req.PhoneNumber
	}
	if req.EmergencyContact != nil {
		updates["emergencyContact"] = req.EmergencyContact
	}
	if req.MedicalHistory != nil {
		updates["medicalHistory"] = req.MedicalHistory
	}
	if req.Allergies != nil {
		updates["allergies"] = req.Allergies
	}
	if req.Medications != nil {
		updates["medications"] = req.Medications
	}
	updates["updatedAt"] = nowISO()

	var updated models.User
	if err := h.Users.Update(ctx, userID, updates, &updated); err != nil {
		if err == store.ErrNotFound {
			utils.NotFound(c, "User not found")
			return
		}
		h.Log.Error().Err(err).Str("userId", userID).Msg("updating user")
		utils.InternalServerError(c)
		return
	}

	utils.Success(c, "User updated successfully", updated)
}
