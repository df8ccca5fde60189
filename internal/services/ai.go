package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hometrack/hometrack-api/internal/constants"
	"github.com/hometrack/hometrack-api/internal/dto"
	"github.com/hometrack/hometrack-api/internal/models"
	"github.com/sashabaranov/go-openai"
)

var (
	ErrAIServiceNotConfigured = errors.New("AI service is not configured")
	ErrAIRequestFailed        = errors.New("AI request failed")
)

// AIConfig configures the OpenAI client. BaseURL is only set to point the
// client at a compatible endpoint.
type AIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

type AIService struct {
	client *openai.Client
	model  string
	now    func() time.Time
}

type generatedTask struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
}

// NewAIService creates an AIService. Without an API key every call fails
// with ErrAIServiceNotConfigured.
func NewAIService(cfg AIConfig) *AIService {
	s := &AIService{
		model: cfg.Model,
		now:   time.Now,
	}
	if s.model == "" {
		s.model = openai.GPT4o
	}
	if cfg.APIKey == "" {
		return s
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	s.client = openai.NewClientWithConfig(clientConfig)
	return s
}

// Configured reports whether an API key is set
func (s *AIService) Configured() bool {
	return s != nil && s.client != nil
}

// SuggestTasks extracts household tasks from free text using OpenAI GPT.
// Unknown categories become Other and unknown priorities Medium.
func (s *AIService) SuggestTasks(ctx context.Context, text string) ([]dto.SuggestedTask, error) {
	if !s.Configured() {
		return nil, ErrAIServiceNotConfigured
	}

	currentTime := s.now().UTC().Format(time.RFC3339)
	prompt := fmt.Sprintf(`You are a household task extraction assistant. Extract concrete household tasks from the text below.

Current time: %s

Text:
%s

Return a JSON array of the extracted tasks in this format:
[
  {
    "title": "short task title",
    "description": "details of the task",
    "category": "one of Cooking, Billing, Cleaning, Work, Other",
    "priority": "one of Low, Medium, High",
    "due_date": "deadline in ISO8601, e.g. 2025-10-28T23:59:59Z, or null when none is stated"
  }
]

Notes:
- Return an empty array [] when there are no tasks
- Convert relative expressions such as "tomorrow" or "next week" into concrete dates
- Return JSON only, without any explanation`, currentTime, text)

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: s.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: 0.3,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAIRequestFailed, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no response from OpenAI", ErrAIRequestFailed)
	}

	content := stripCodeFence(resp.Choices[0].Message.Content)

	var generated []generatedTask
	if err := json.Unmarshal([]byte(content), &generated); err != nil {
		return nil, fmt.Errorf("%w: failed to parse AI response: %v", ErrAIRequestFailed, err)
	}

	return normalizeSuggestions(generated), nil
}

func normalizeSuggestions(generated []generatedTask) []dto.SuggestedTask {
	tasks := make([]dto.SuggestedTask, 0, len(generated))
	for _, g := range generated {
		title := strings.TrimSpace(g.Title)
		if title == "" {
			continue
		}

		category := models.TaskCategory(strings.TrimSpace(g.Category))
		if !category.IsValid() {
			category = models.TaskCategoryOther
		}
		priority := models.Priority(strings.TrimSpace(g.Priority))
		if !priority.IsValid() {
			priority = models.PriorityMedium
		}

		task := dto.SuggestedTask{
			Title:       title,
			Description: strings.TrimSpace(g.Description),
			Category:    category,
			Priority:    priority,
		}
		if g.DueDate != nil {
			due := g.DueDate.UTC()
			task.DueDate = &due
		}

		tasks = append(tasks, task)
		if len(tasks) == constants.MaxSuggestedTasks {
			break
		}
	}
	return tasks
}

// stripCodeFence removes a surrounding ```json fence some models add.
func stripCodeFence(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimPrefix(content, "json")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}
