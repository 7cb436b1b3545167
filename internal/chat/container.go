package chat

import (
	"github.com/neet-mastery/mastery-lambda/internal/companion"
	"google.golang.org/genai"
)

type ChatContainer struct {
	Handler *Handler
	Service ChatService
}

func NewChatContainer(client *genai.Client, model string, modes companion.ModeStore) *ChatContainer {
	service := NewService(NewGeminiStreamer(client, model), modes)
	handler := NewHandler(service)

	return &ChatContainer{
		Handler: handler,
		Service: service,
	}
}
