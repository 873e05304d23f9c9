package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"healthtrack-app-server/internal/config"
	"healthtrack-app-server/internal/models"
	"healthtrack-app-server/internal/routes"
	"healthtrack-app-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// fakeCompleter stands in for the completion API.
type fakeCompleter struct {
	CompleteFunc func(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

func (f *fakeCompleter) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if f.CompleteFunc != nil {
		return f.CompleteFunc(ctx, systemPrompt, userPrompt)
	}
	return "Thanks for your message.", nil
}

// apiResponse mirrors the standard response envelope.
type apiResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

type testEnv struct {
	router        *gin.Engine
	store         *store.Store
	completer     *fakeCompleter
	users         *store.Collection
	records       *store.Collection
	conversations *store.Collection
	reminders     *store.Collection
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st, err := store.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	cfg := &config.Config{
		Tables: config.TableConfig{
			Users:          "Users-test",
			MedicalRecords: "MedicalRecords-test",
			Conversations:  "Conversations-test",
			Reminders:      "Reminders-test",
		},
	}
	completer := &fakeCompleter{}

	router := gin.New()
	routes.SetupRoutes(router, st, cfg, completer, zerolog.Nop())

	return &testEnv{
		router:        router,
		store:         st,
		completer:     completer,
		users:         st.Collection(cfg.Tables.Users, "userId"),
		records:       st.Collection(cfg.Tables.MedicalRecords, "recordId"),
		conversations: st.Collection(cfg.Tables.Conversations, "conversationId"),
		reminders:     st.Collection(cfg.Tables.Reminders, "reminderId"),
	}
}

func (e *testEnv) request(t *testing.T, method, path string, body interface{}) (*httptest.ResponseRecorder, apiResponse) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)

	var env apiResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func (e *testEnv) createUser(t *testing.T, email string) models.User {
	t.Helper()
	rec, env := e.request(t, http.MethodPost, "/users", gin.H{
		"email":     email,
		"firstName": "Test",
		"lastName":  "User",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var user models.User
	require.NoError(t, json.Unmarshal(env.Data, &user))
	return user
}
