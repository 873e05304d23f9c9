package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"healthtrack-app-server/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	env := newTestEnv(t)

	rec, resp := env.request(t, http.MethodPost, "/users", gin.H{
		"email":       "ada@example.com",
		"firstName":   "Ada",
		"lastName":    "Lovelace",
		"dateOfBirth": "1990-12-10",
		"phoneNumber": "+44 20 7946 0123",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, resp.Success)

	var user models.User
	require.NoError(t, json.Unmarshal(resp.Data, &user))
	assert.NotEmpty(t, user.UserID)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.NotNil(t, user.MedicalHistory)
	assert.Empty(t, user.MedicalHistory)
	assert.Empty(t, user.Allergies)
	assert.Empty(t, user.Medications)
	assert.NotEmpty(t, user.CreatedAt)
}

func TestCreateUserGeneratesFreshIDs(t *testing.T) {
	env := newTestEnv(t)

	first := env.createUser(t, "one@example.com")
	second := env.createUser(t, "two@example.com")
	assert.NotEqual(t, first.UserID, second.UserID)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)

	env.createUser(t, "dup@example.com")
	rec, resp := env.request(t, http.MethodPost, "/users", gin.H{
		"email":     "dup@example.com",
		"firstName": "Second",
		"lastName":  "User",
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "User with this email already exists", resp.Message)
}

func TestCreateUserValidation(t *testing.T) {
	env := newTestEnv(t)

	rec, resp := env.request(t, http.MethodPost, "/users", gin.H{
		"firstName": "No",
		"lastName":  "Email",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, resp.Error, "Email")

	rec, resp = env.request(t, http.MethodPost, "/users", gin.H{
		"email":       "bad-date@example.com",
		"firstName":   "Bad",
		"lastName":    "Date",
		"dateOfBirth": "not-a-date",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, resp.Error, "DateOfBirth")
}

func TestCreateUserEmergencyContactRequiresAllFields(t *testing.T) {
	env := newTestEnv(t)

	rec, _ := env.request(t, http.MethodPost, "/users", gin.H{
		"email":            "contact@example.com",
		"firstName":        "With",
		"lastName":         "Contact",
		"emergencyContact": gin.H{"name": "Grace"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetUserNotFound(t *testing.T) {
	env := newTestEnv(t)

	rec, resp := env.request(t, http.MethodGet, "/users/missing-id", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", resp.Message)
}

func TestGetUser(t *testing.T) {
	env := newTestEnv(t)
	created := env.createUser(t, "get@example.com")

	rec, resp := env.request(t, http.MethodGet, "/users/"+created.UserID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var user models.User
	require.NoError(t, json.Unmarshal(resp.Data, &user))
	assert.Equal(t, created.UserID, user.UserID)
	assert.Equal(t, "get@example.com", user.Email)
}

func TestUpdateUserMergesOnlySuppliedFields(t *testing.T) {
	env := newTestEnv(t)
	created := env.createUser(t, "update@example.com")

	time.Sleep(5 * time.Millisecond)

	rec, resp := env.request(t, http.MethodPut, "/users/"+created.UserID, gin.H{
		"firstName": "Renamed",
		"allergies": []string{"pollen"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.User
	require.NoError(t, json.Unmarshal(resp.Data, &updated))
	assert.Equal(t, "Renamed", updated.FirstName)
	assert.Equal(t, "User", updated.LastName)
	assert.Equal(t, "update@example.com", updated.Email)
	assert.Equal(t, []string{"pollen"}, updated.Allergies)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Greater(t, updated.UpdatedAt, created.UpdatedAt)
}

func TestUpdateUserNotFound(t *testing.T) {
	env := newTestEnv(t)

	rec, _ := env.request(t, http.MethodPut, "/users/missing-id", gin.H{"firstName": "X"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
