package service

import (
	"encoding/json"
	"lms_backend/internal/config"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAITestServer(t *testing.T, status int, reply string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req ChatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "user", req.Messages[1].Role)

		w.WriteHeader(status)
		if status == http.StatusOK {
			json.NewEncoder(w).Encode(ChatCompletionResponse{
				Choices: []struct {
					Message AIChatMessage `json:"message"`
				}{
					{Message: AIChatMessage{Role: "assistant", Content: reply}},
				},
			})
		} else {
			w.Write([]byte(`{"error":{"message":"boom"}}`))
		}
	}))
}

func TestGenerateCourseDescription(t *testing.T) {
	srv := newAITestServer(t, http.StatusOK, "An introductory course on Go.")
	defer srv.Close()

	svc := NewAIService(config.AIConfig{
		BaseURL: srv.URL,
		APIKey:  "test-key",
		Model:   "test-model",
	})

	desc, err := svc.GenerateCourseDescription("Go Basics", "beginner")
	require.NoError(t, err)
	assert.Equal(t, "An introductory course on Go.", desc)
}

func TestChatAPIError(t *testing.T) {
	srv := newAITestServer(t, http.StatusInternalServerError, "")
	defer srv.Close()

	svc := NewAIService(config.AIConfig{
		BaseURL: srv.URL,
		APIKey:  "test-key",
		Model:   "test-model",
	})

	_, err := svc.Chat("system", "user")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "AI API error")
}

func TestChatNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	svc := NewAIService(config.AIConfig{BaseURL: srv.URL, APIKey: "test-key"})
	_, err := svc.Chat("system", "user")
	assert.Error(t, err)
}
