package voice

import (
	"context"
	"sync"

	"github.com/neet-mastery/mastery-lambda/internal/companion"
	"google.golang.org/genai"
)

// ServerMessage is one event from the live model, reduced to what the session acts on.
type ServerMessage struct {
	InputTranscript  string
	OutputTranscript string
	Audio            [][]byte
	Interrupted      bool
	TurnComplete     bool
}

type LiveConn interface {
	SendAudio(pcm []byte) error
	Receive() (*ServerMessage, error)
	Close() error
}

type Dialer interface {
	Dial(ctx context.Context, mode companion.BehaviorMode) (LiveConn, error)
}

const voiceName = "Kore"

type geminiDialer struct {
	client *genai.Client
	model  string
}

func NewGeminiDialer(client *genai.Client, model string) Dialer {
	return &geminiDialer{client: client, model: model}
}

func (d *geminiDialer) Dial(ctx context.Context, mode companion.BehaviorMode) (LiveConn, error) {
	cfg := &genai.LiveConnectConfig{
		ResponseModalities: []genai.Modality{genai.ModalityAudio},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: voiceName},
			},
		},
		SystemInstruction:        genai.NewContentFromText(companion.VoiceInstruction(mode), genai.RoleUser),
		InputAudioTranscription:  &genai.AudioTranscriptionConfig{},
		OutputAudioTranscription: &genai.AudioTranscriptionConfig{},
	}

	session, err := d.client.Live.Connect(ctx, d.model, cfg)
	if err != nil {
		return nil, err
	}
	return &geminiConn{session: session}, nil
}

type geminiConn struct {
	session   *genai.Session
	closeOnce sync.Once
	closeErr  error
}

func (c *geminiConn) SendAudio(pcm []byte) error {
	return c.session.SendRealtimeInput(genai.LiveRealtimeInput{
		Audio: &genai.Blob{Data: pcm, MIMEType: CaptureMIME},
	})
}

func (c *geminiConn) Receive() (*ServerMessage, error) {
	msg, err := c.session.Receive()
	if err != nil {
		return nil, err
	}

	out := &ServerMessage{}
	sc := msg.ServerContent
	if sc == nil {
		return out, nil
	}
	if sc.InputTranscription != nil {
		out.InputTranscript = sc.InputTranscription.Text
	}
	if sc.OutputTranscription != nil {
		out.OutputTranscript = sc.OutputTranscription.Text
	}
	if sc.ModelTurn != nil {
		for _, part := range sc.ModelTurn.Parts {
			if part != nil && part.InlineData != nil && len(part.InlineData.Data) > 0 {
				out.Audio = append(out.Audio, part.InlineData.Data)
			}
		}
	}
	out.Interrupted = sc.Interrupted
	out.TurnComplete = sc.TurnComplete
	return out, nil
}

func (c *geminiConn) Close() error {
	c.closeOnce.Do(func() {
		c.closeErr = c.session.Close()
	})
	return c.closeErr
}
