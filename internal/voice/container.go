package voice

import (
	"github.com/neet-mastery/mastery-lambda/internal/companion"
	"google.golang.org/genai"
)

type VoiceContainer struct {
	Handler *Handler
}

func NewVoiceContainer(client *genai.Client, model string, modes companion.ModeStore, allowedOrigins []string) *VoiceContainer {
	return &VoiceContainer{
		Handler: NewHandler(NewGeminiDialer(client, model), modes, allowedOrigins),
	}
}
