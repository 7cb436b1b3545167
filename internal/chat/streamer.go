package chat

import (
	"context"
	"iter"

	"google.golang.org/genai"
)

type Conversation interface {
	SendStream(ctx context.Context, text string) iter.Seq2[Chunk, error]
}

// Streamer opens model conversations bound to one system instruction and tool set.
type Streamer interface {
	NewConversation(ctx context.Context, instruction string, useSearch bool) (Conversation, error)
}

type geminiStreamer struct {
	client *genai.Client
	model  string
}

func NewGeminiStreamer(client *genai.Client, model string) Streamer {
	return &geminiStreamer{client: client, model: model}
}

func (g *geminiStreamer) NewConversation(ctx context.Context, instruction string, useSearch bool) (Conversation, error) {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(instruction, genai.RoleUser),
		ThinkingConfig: &genai.ThinkingConfig{
			ThinkingBudget: genai.Ptr[int32](0),
		},
	}
	if useSearch {
		cfg.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	}

	session, err := g.client.Chats.Create(ctx, g.model, cfg, nil)
	if err != nil {
		return nil, err
	}
	return &geminiConversation{chat: session}, nil
}

type geminiConversation struct {
	chat *genai.Chat
}

func (c *geminiConversation) SendStream(ctx context.Context, text string) iter.Seq2[Chunk, error] {
	return func(yield func(Chunk, error) bool) {
		for resp, err := range c.chat.SendMessageStream(ctx, genai.Part{Text: text}) {
			if err != nil {
				yield(Chunk{}, err)
				return
			}
			if !yield(chunkFromResponse(resp), nil) {
				return
			}
		}
	}
}

func chunkFromResponse(resp *genai.GenerateContentResponse) Chunk {
	c := Chunk{Text: resp.Text()}

	if len(resp.Candidates) == 0 || resp.Candidates[0].GroundingMetadata == nil {
		return c
	}
	raw := resp.Candidates[0].GroundingMetadata.GroundingChunks
	if len(raw) == 0 {
		return c
	}

	c.Grounding = make([]GroundingLink, 0, len(raw))
	for _, g := range raw {
		if g == nil || g.Web == nil {
			continue
		}
		c.Grounding = append(c.Grounding, GroundingLink{URI: g.Web.URI, Title: g.Web.Title})
	}
	return c
}
