// services/ai_service.go
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/Sahithi-Sritha/FSAD-Project/config"
	"github.com/Sahithi-Sritha/FSAD-Project/models"
)

const (
	defaultOllamaBaseURL = "http://localhost:11434"
	defaultOllamaModel   = "llama3.2:3b"
	chatHistoryWindow    = 20
)

// AIService answers diet questions through a local Ollama instance,
// grounding each conversation in the user's current goals and today's
// analysis so the model talks about this user, not diets in general.
type AIService struct {
	analysis *AnalysisService
	goals    *GoalService
	client   *http.Client
	baseURL  string
	model    string
}

func NewAIService(analysis *AnalysisService, goals *GoalService) *AIService {
	baseURL := os.Getenv("OLLAMA_BASE_URL")
	if baseURL == "" {
		baseURL = defaultOllamaBaseURL
	}
	model := os.Getenv("OLLAMA_MODEL")
	if model == "" {
		model = defaultOllamaModel
	}
	return &AIService{
		analysis: analysis,
		goals:    goals,
		client:   &http.Client{Timeout: 60 * time.Second},
		baseURL:  baseURL,
		model:    model,
	}
}

type ollamaMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaChatRequest struct {
	Model    string          `json:"model"`
	Messages []ollamaMessage `json:"messages"`
	Stream   bool            `json:"stream"`
}

type ollamaChatResponse struct {
	Message ollamaMessage `json:"message"`
}

// Chat sends one user message, with recent history and a nutrition
// context prompt, and persists both sides of the exchange.
func (s *AIService) Chat(ctx context.Context, userID uint, content string) (*models.ChatMessage, error) {
	history, err := s.History(userID, chatHistoryWindow)
	if err != nil {
		return nil, err
	}

	messages := []ollamaMessage{{Role: "system", Content: s.systemPrompt(userID)}}
	for _, m := range history {
		messages = append(messages, ollamaMessage{Role: m.Role, Content: m.Content})
	}
	messages = append(messages, ollamaMessage{Role: "user", Content: content})

	body, err := json.Marshal(ollamaChatRequest{Model: s.model, Messages: messages, Stream: false})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ollama request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ollama returned status %d", resp.StatusCode)
	}

	var out ollamaChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("ollama response decode failed: %w", err)
	}

	userMsg := models.ChatMessage{UserID: userID, Role: "user", Content: content}
	if err := config.DB.Create(&userMsg).Error; err != nil {
		return nil, err
	}
	reply := models.ChatMessage{UserID: userID, Role: "assistant", Content: out.Message.Content}
	if err := config.DB.Create(&reply).Error; err != nil {
		return nil, err
	}
	return &reply, nil
}

func (s *AIService) History(userID uint, limit int) ([]models.ChatMessage, error) {
	if limit <= 0 {
		limit = chatHistoryWindow
	}
	var messages []models.ChatMessage
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	// reverse to chronological order
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

// systemPrompt summarizes the user's goals and today's intake. A failed
// analysis degrades to a generic prompt rather than blocking the chat.
func (s *AIService) systemPrompt(userID uint) string {
	prompt := "You are a nutrition assistant for a diet-tracking app. " +
		"Answer briefly and practically. Do not give medical advice."

	goals, err := s.goals.GetGoals(userID)
	if err == nil {
		prompt += fmt.Sprintf(
			"\nDaily goals: %.0f kcal, %.0fg protein, %.0fg carbs, %.0fg fat, %.0fg fiber.",
			goals.CalorieGoal, goals.ProteinGoal, goals.CarbsGoal, goals.FatGoal, goals.FiberGoal)
	}

	analysis, err := s.analysis.AnalyzeToday(userID)
	if err == nil && analysis.MealCount > 0 {
		prompt += fmt.Sprintf(
			"\nToday so far: %.0f kcal over %d meals.", analysis.TotalCalories, analysis.MealCount)
		for _, m := range analysis.Macronutrients {
			prompt += fmt.Sprintf(" %s at %.0f%% of goal (%s).", m.Name, m.Percentage, m.Status)
		}
	}
	return prompt
}
