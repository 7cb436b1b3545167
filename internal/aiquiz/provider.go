package aiquiz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/neet-mastery/mastery-lambda/internal/config"
	"google.golang.org/genai"
)

type Provider interface {
	SendPrompt(ctx context.Context, system, user string) ([]Question, error)
}

type geminiProvider struct {
	client *genai.Client
	model  string
}

func NewGeminiProvider(client *genai.Client, model string) Provider {
	return &geminiProvider{client: client, model: model}
}

// questionListSchema constrains the model to the Question JSON shape.
var questionListSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"question": {Type: genai.TypeString},
			"options": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
			"correctAnswer": {
				Type:        genai.TypeInteger,
				Description: "Index of the correct option (0-3)",
			},
			"explanation": {Type: genai.TypeString},
		},
		Required: []string{"question", "options", "correctAnswer", "explanation"},
	},
}

func (p *geminiProvider) SendPrompt(ctx context.Context, system, user string) ([]Question, error) {
	log := config.WithContext(ctx)

	result, err := p.client.Models.GenerateContent(
		ctx,
		p.model,
		genai.Text(user),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
			ResponseMIMEType:  "application/json",
			ResponseSchema:    questionListSchema,
		},
	)
	if err != nil {
		log.WithError(err).Error("Gemini content generation failed")
		return nil, fmt.Errorf("generate content: %w", err)
	}

	raw := result.Text()
	log.Debugf("[AIQUIZ] Raw Gemini response:\n%s", raw)

	if raw == "" {
		return nil, errors.New("empty response from model")
	}

	questions, err := DecodeQuestions(raw)
	if err != nil {
		log.WithError(err).Errorf("[AIQUIZ] Failed to decode JSON. Content:\n%s", raw)
		return nil, err
	}

	log.Infof("[AIQUIZ] Generated %d questions", len(questions))
	return questions, nil
}

// DecodeQuestions parses a model reply, tolerating markdown code fences around the JSON.
func DecodeQuestions(raw string) ([]Question, error) {
	clean := strings.TrimSpace(raw)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimSuffix(clean, "```")
	clean = strings.Trim(clean, "`")
	clean = strings.TrimSpace(clean)

	var questions []Question
	if err := json.Unmarshal([]byte(clean), &questions); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedQuestion, err)
	}
	return questions, nil
}
