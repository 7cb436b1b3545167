package aiquiz

import (
	"github.com/neet-mastery/mastery-lambda/internal/chapter"
	"google.golang.org/genai"
)

type AIQuizContainer struct {
	Handler *Handler
	Service Service
}

func NewAIQuizContainer(client *genai.Client, model string, chapters chapter.Service) *AIQuizContainer {
	provider := NewGeminiProvider(client, model)
	service := NewService(provider)
	handler := NewHandler(service, chapters)

	return &AIQuizContainer{
		Handler: handler,
		Service: service,
	}
}
