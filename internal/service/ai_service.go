package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"lms_backend/internal/config"
	"net/http"
	"time"
)

// AIService calls an OpenAI-compatible chat-completions endpoint. It is used
// to draft course descriptions when an instructor leaves the field empty.
type AIService struct {
	config config.AIConfig
	client *http.Client
}

func NewAIService(cfg config.AIConfig) *AIService {
	return &AIService{
		config: cfg,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

type AIChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionRequest struct {
	Model    string          `json:"model"`
	Messages []AIChatMessage `json:"messages"`
}

type ChatCompletionResponse struct {
	Choices []struct {
		Message AIChatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (s *AIService) Chat(systemPrompt, userPrompt string) (string, error) {
	messages := []AIChatMessage{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: userPrompt},
	}

	reqBody := ChatCompletionRequest{
		Model:    s.config.Model,
		Messages: messages,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest("POST", s.config.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("AI API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result ChatCompletionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", err
	}

	if len(result.Choices) > 0 {
		return result.Choices[0].Message.Content, nil
	}

	return "", fmt.Errorf("AI returned no choices")
}

// GenerateCourseDescription drafts a description from the course name and
// difficulty level.
func (s *AIService) GenerateCourseDescription(name string, difficulty string) (string, error) {
	systemPrompt := "You write concise, engaging course descriptions for a learning platform. " +
		"Given a course name and difficulty level, produce a single-paragraph description " +
		"appropriate for that level. Do not include headings or markdown."
	userPrompt := fmt.Sprintf("Write the description of a course.\nname: %s\ndifficulty_level: %s\n", name, difficulty)
	return s.Chat(systemPrompt, userPrompt)
}
