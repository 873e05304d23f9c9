// Package client is a typed HTTP client for the healthtrack API, used by the
// healthctl terminal client.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"healthtrack-app-server/internal/models"
)

// APIError is a non-success response from the server.
type APIError struct {
	StatusCode int
	Message    string
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api: %s (%s)", e.Message, e.Detail)
	}
	return fmt.Sprintf("api: %s", e.Message)
}

// envelope is the standard response wrapper used by every endpoint.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

// Client calls the healthtrack API at a base URL.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New creates a client for the given base URL, e.g. http://localhost:3001.
func New(baseURL string) *Client {
	return &Client{BaseURL: baseURL, HTTPClient: http.DefaultClient}
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("decoding response from %s %s: %w", method, path, err)
	}
	if resp.StatusCode >= 400 || !env.Success {
		return &APIError{StatusCode: resp.StatusCode, Message: env.Message, Detail: env.Error}
	}
	if out != nil && len(env.Data) > 0 {
		return json.Unmarshal(env.Data, out)
	}
	return nil
}

// CreateUserParams is the payload for CreateUser.
type CreateUserParams struct {
	Email            string                   `json:"email"`
	FirstName        string                   `json:"firstName"`
	LastName         string                   `json:"lastName"`
	DateOfBirth      string                   `json:"dateOfBirth,omitempty"`
	PhoneNumber      string                   `json:"phoneNumber,omitempty"`
	EmergencyContact *models.EmergencyContact `json:"emergencyContact,omitempty"`
}

// CreateUser registers a new user.
func (c *Client) CreateUser(ctx context.Context, params CreateUserParams) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodPost, "/users", params, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUser fetches a user by id.
func (c *Client) GetUser(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/users/"+userID, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUserParams is the payload for UpdateUser. Nil fields are omitted and
// left unchanged on the server.
type UpdateUserParams struct {
	FirstName        *string                  `json:"firstName,omitempty"`
	LastName         *string                  `json:"lastName,omitempty"`
	DateOfBirth      *string                  `json:"dateOfBirth,omitempty"`
	PhoneNumber      *string                  `json:"phoneNumber,omitempty"`
	EmergencyContact *models.EmergencyContact `json:"emergencyContact,omitempty"`
	MedicalHistory   []string                 `json:"medicalHistory,omitempty"`
	Allergies        []string                 `json:"allergies,omitempty"`
	Medications      []string                 `json:"medications,omitempty"`
}

// UpdateUser merges the supplied fields into the user record.
func (c *Client) UpdateUser(ctx context.Context, userID string, params UpdateUserParams) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodPut, "/users/"+userID, params, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateMedicalRecordParams is the payload for CreateMedicalRecord.
type CreateMedicalRecordParams struct {
	UserID      string                   `json:"userId"`
	Type        models.MedicalRecordType `json:"type"`
	Title       string                   `json:"title"`
	Description string                   `json:"description"`
	Date        string                   `json:"date"`
	Doctor      string                   `json:"doctor,omitempty"`
	Hospital    string                   `json:"hospital,omitempty"`
	Attachments []string                 `json:"attachments,omitempty"`
	Tags        []string                 `json:"tags,omitempty"`
}

// CreateMedicalRecord adds a record to a user's health history.
func (c *Client) CreateMedicalRecord(ctx context.Context, params CreateMedicalRecordParams) (*models.MedicalRecord, error) {
	var record models.MedicalRecord
	if err := c.do(ctx, http.MethodPost, "/medical-records", params, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// ListMedicalRecords fetches a user's records, newest first.
func (c *Client) ListMedicalRecords(ctx context.Context, userID string) ([]models.MedicalRecord, error) {
	var records []models.MedicalRecord
	if err := c.do(ctx, http.MethodGet, "/medical-records/"+userID, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// UpdateMedicalRecordParams is the payload for UpdateMedicalRecord.
type UpdateMedicalRecordParams struct {
	Type        *models.MedicalRecordType `json:"type,omitempty"`
	Title       *string                   `json:"title,omitempty"`
	Description *string                   `json:"description,omitempty"`
	Date        *string                   `json:"date,omitempty"`
	Doctor      *string                   `json:"doctor,omitempty"`
	Hospital    *string                   `json:"hospital,omitempty"`
	Attachments []string                  `json:"attachments,omitempty"`
	Tags        []string                  `json:"tags,omitempty"`
}

// UpdateMedicalRecord merges the supplied fields into the record.
func (c *Client) UpdateMedicalRecord(ctx context.Context, recordID string, params UpdateMedicalRecordParams) (*models.MedicalRecord, error) {
	var record models.MedicalRecord
	if err := c.do(ctx, http.MethodPut, "/medical-records/"+recordID, params, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// DeleteMedicalRecord removes a record.
func (c *Client) DeleteMedicalRecord(ctx context.Context, recordID string) error {
	return c.do(ctx, http.MethodDelete, "/medical-records/"+recordID, nil, nil)
}

// ListReminders fetches a user's reminders, soonest first.
func (c *Client) ListReminders(ctx context.Context, userID string) ([]models.Reminder, error) {
	var reminders []models.Reminder
	if err := c.do(ctx, http.MethodGet, "/reminders/"+userID, nil, &reminders); err != nil {
		return nil, err
	}
	return reminders, nil
}

// SaveReminder writes a reminder via the legacy save endpoint.
func (c *Client) SaveReminder(ctx context.Context, userID, when, note string) error {
	payload := map[string]string{"userId": userID, "time": when, "note": note}
	return c.do(ctx, http.MethodPost, "/reminders", payload, nil)
}

// ChatParams is the payload for one chat turn.
type ChatParams struct {
	UserID         string `json:"userId"`
	Message        string `json:"message"`
	ConversationID string `json:"conversationId,omitempty"`
}

// ChatResult is the assistant's reply plus triage output.
type ChatResult struct {
	ConversationID  string         `json:"conversationId"`
	Message         string         `json:"message"`
	Suggestions     []string       `json:"suggestions,omitempty"`
	Urgency         models.Urgency `json:"urgency,omitempty"`
	ShouldSeeDoctor bool           `json:"shouldSeeDoctor"`
}

// Chat sends a message to the AI assistant.
func (c *Client) Chat(ctx context.Context, params ChatParams) (*ChatResult, error) {
	var result ChatResult
	if err := c.do(ctx, http.MethodPost, "/chat", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
