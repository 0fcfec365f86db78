package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/sashabaranov/go-openai"
)

const maxSuggestions = 3

// resultSchema constrains the model output to {label, suggestions<=3}.
const resultSchema = `{
	"type": "object",
	"properties": {
		"label": {"type": "string"},
		"suggestions": {"type": "array", "items": {"type": "string"}, "maxItems": 3}
	},
	"required": ["label", "suggestions"],
	"additionalProperties": false
}`

// CategorySource provides the category vocabulary for a user.
type CategorySource interface {
	GetNamesByUser(userID string) ([]string, error)
}

// Result is the model's structured answer: one label from the user's
// vocabulary plus up to three alternative tag suggestions.
type Result struct {
	Label       string   `json:"label"`
	Suggestions []string `json:"suggestions"`
}

type Classifier struct {
	client     *openai.Client
	categories CategorySource
	model      string
}

func NewClassifier(apiKey string, categories CategorySource) *Classifier {
	return &Classifier{
		client:     openai.NewClient(apiKey),
		categories: categories,
		model:      openai.GPT4o,
	}
}

// Run classifies extracted page text against the user's categories. The
// intent hint is captured by the caller and echoed back in the response; it
// is not folded into the prompt.
func (c *Classifier) Run(ctx context.Context, content, userID, intent string) (*Result, error) {
	categories, err := c.categories.GetNamesByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories for user: %w", err)
	}
	if len(categories) == 0 {
		return nil, fmt.Errorf("user has no categories to classify into")
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: buildPrompt(content, categories),
			},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   "text_classification",
				Schema: json.RawMessage(resultSchema),
				Strict: true,
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, fmt.Errorf("model returned no classification")
	}

	result, err := parseResult(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}

	slog.Debug("Content classified",
		"user_id", userID,
		"label", result.Label,
		"suggestions", len(result.Suggestions))

	return result, nil
}

func parseResult(raw string) (*Result, error) {
	var result Result
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("failed to decode classification: %w", err)
	}

	if result.Label == "" {
		return nil, fmt.Errorf("model returned an empty label")
	}

	if len(result.Suggestions) > maxSuggestions {
		result.Suggestions = result.Suggestions[:maxSuggestions]
	}

	return &result, nil
}
