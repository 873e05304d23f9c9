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

func (e *testEnv) createRecord(t *testing.T, userID, title, date string) models.MedicalRecord {
	t.Helper()
	rec, resp := e.request(t, http.MethodPost, "/medical-records", gin.H{
		"userId":      userID,
		"type":        "symptom",
		"title":       title,
		"description": "test description",
		"date":        date,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var record models.MedicalRecord
	require.NoError(t, json.Unmarshal(resp.Data, &record))
	return record
}

func TestCreateMedicalRecord(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "records@example.com")

	record := env.createRecord(t, user.UserID, "Annual checkup", "2025-03-01")
	assert.NotEmpty(t, record.RecordID)
	assert.Equal(t, user.UserID, record.UserID)
	assert.NotNil(t, record.Attachments)
	assert.NotNil(t, record.Tags)
}

func TestCreateMedicalRecordUserMissing(t *testing.T) {
	env := newTestEnv(t)

	rec, resp := env.request(t, http.MethodPost, "/medical-records", gin.H{
		"userId":      "missing-user",
		"type":        "symptom",
		"title":       "Headache",
		"description": "mild",
		"date":        "2025-03-01",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", resp.Message)
}

func TestCreateMedicalRecordInvalidType(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "badtype@example.com")

	rec, resp := env.request(t, http.MethodPost, "/medical-records", gin.H{
		"userId":      user.UserID,
		"type":        "unknown_type",
		"title":       "Something",
		"description": "desc",
		"date":        "2025-03-01",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, resp.Error, "Type")
}

func TestGetMedicalRecordsEmpty(t *testing.T) {
	env := newTestEnv(t)

	rec, resp := env.request(t, http.MethodGet, "/medical-records/nobody", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var records []models.MedicalRecord
	require.NoError(t, json.Unmarshal(resp.Data, &records))
	assert.Empty(t, records)
}

func TestGetMedicalRecordsSortedByDateDesc(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "sorted@example.com")

	env.createRecord(t, user.UserID, "middle", "2024-06-15")
	target := env.createRecord(t, user.UserID, "newest", "2025-01-20")
	env.createRecord(t, user.UserID, "oldest", "2023-02-05")

	_, resp := env.request(t, http.MethodGet, "/medical-records/"+user.UserID, nil)
	var records []models.MedicalRecord
	require.NoError(t, json.Unmarshal(resp.Data, &records))
	require.Len(t, records, 3)
	assert.Equal(t, "newest", records[0].Title)
	assert.Equal(t, "middle", records[1].Title)
	assert.Equal(t, "oldest", records[2].Title)

	seen := 0
	for _, r := range records {
		if r.RecordID == target.RecordID {
			seen++
		}
	}
	assert.Equal(t, 1, seen)
}

func TestUpdateMedicalRecordPartial(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "partial@example.com")
	record := env.createRecord(t, user.UserID, "original title", "2025-03-01")

	time.Sleep(5 * time.Millisecond)

	rec, resp := env.request(t, http.MethodPut, "/medical-records/"+record.RecordID, gin.H{
		"title": "X",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.MedicalRecord
	require.NoError(t, json.Unmarshal(resp.Data, &updated))
	assert.Equal(t, "X", updated.Title)
	assert.Equal(t, record.Description, updated.Description)
	assert.Equal(t, record.Date, updated.Date)
	assert.Equal(t, record.Type, updated.Type)
	assert.Greater(t, updated.UpdatedAt, record.UpdatedAt)
}

func TestUpdateMedicalRecordNotFound(t *testing.T) {
	env := newTestEnv(t)

	rec, _ := env.request(t, http.MethodPut, "/medical-records/missing-record", gin.H{"title": "X"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteMedicalRecordTwice(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "delete@example.com")
	record := env.createRecord(t, user.UserID, "to delete", "2025-03-01")

	rec, resp := env.request(t, http.MethodDelete, "/medical-records/"+record.RecordID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)

	rec, resp = env.request(t, http.MethodDelete, "/medical-records/"+record.RecordID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Medical record not found", resp.Message)
}
