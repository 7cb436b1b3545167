package chat_test

import (
	"context"
	"errors"
	"iter"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/neet-mastery/mastery-lambda/internal/auth"
	"github.com/neet-mastery/mastery-lambda/internal/chat"
	"github.com/neet-mastery/mastery-lambda/internal/companion"
	"github.com/neet-mastery/mastery-lambda/internal/store"
)

type scriptedStep struct {
	chunk chat.Chunk
	err   error
}

type fakeConversation struct {
	steps []scriptedStep
}

func (c *fakeConversation) SendStream(context.Context, string) iter.Seq2[chat.Chunk, error] {
	return func(yield func(chat.Chunk, error) bool) {
		for _, s := range c.steps {
			if !yield(s.chunk, s.err) {
				return
			}
			if s.err != nil {
				return
			}
		}
	}
}

type fakeStreamer struct {
	steps        []scriptedStep
	err          error
	instructions []string
	searchFlags  []bool
}

func (f *fakeStreamer) NewConversation(_ context.Context, instruction string, useSearch bool) (chat.Conversation, error) {
	f.instructions = append(f.instructions, instruction)
	f.searchFlags = append(f.searchFlags, useSearch)
	if f.err != nil {
		return nil, f.err
	}
	return &fakeConversation{steps: f.steps}, nil
}

func newService(streamer chat.Streamer) (chat.ChatService, companion.ModeStore) {
	modes := companion.NewModeStore(store.NewLocal(store.NewMemoryKV()))
	return chat.NewService(streamer, modes), modes
}

func collect(events *[]chat.Event) func(chat.Event) {
	return func(e chat.Event) { *events = append(*events, e) }
}

func TestSendStreamsDeltas(t *testing.T) {
	ctx := context.Background()
	links := []chat.GroundingLink{{URI: "https://ncert.nic.in", Title: "NCERT"}}
	streamer := &fakeStreamer{steps: []scriptedStep{
		{chunk: chat.Chunk{Text: "Hello, "}},
		{chunk: chat.Chunk{Text: "aspirant.", Grounding: []chat.GroundingLink{{URI: "https://old", Title: "old"}}}},
		{chunk: chat.Chunk{Text: "", Grounding: links}},
	}}
	svc, _ := newService(streamer)

	var events []chat.Event
	final, err := svc.Send(ctx, "u1", "hi", true, collect(&events))
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if final.Text != "Hello, aspirant." {
		t.Fatalf("unexpected text %q", final.Text)
	}
	if len(final.GroundingURLs) != 1 || final.GroundingURLs[0].URI != "https://ncert.nic.in" {
		t.Fatalf("citations must be replaced by the latest set, got %+v", final.GroundingURLs)
	}
	if events[0].Type != chat.EventPending || events[len(events)-1].Type != chat.EventDone {
		t.Fatalf("unexpected event sequence: %+v", events)
	}

	history := svc.History(ctx, "u1")
	if len(history) != 2 || history[0].Role != chat.RoleUser || history[1].Text != "Hello, aspirant." {
		t.Fatalf("unexpected history: %+v", history)
	}
}

func TestSendAbortedStreamFallsBack(t *testing.T) {
	ctx := context.Background()
	streamer := &fakeStreamer{steps: []scriptedStep{
		{chunk: chat.Chunk{Text: "Hello, I"}},
		{err: errors.New("connection reset")},
	}}
	svc, _ := newService(streamer)

	var events []chat.Event
	final, err := svc.Send(ctx, "u1", "how do I revise genetics?", false, collect(&events))
	if err != nil {
		t.Fatalf("aborted stream must not surface an error: %v", err)
	}
	if final.Text != chat.FallbackText {
		t.Fatalf("expected fallback, got %q", final.Text)
	}

	history := svc.History(ctx, "u1")
	if len(history) != 2 {
		t.Fatalf("expected user message and fallback only, got %+v", history)
	}
	for _, m := range history {
		if strings.Contains(m.Text, "Hello, I") {
			t.Fatalf("partial reply must be dropped: %+v", history)
		}
	}
	if events[len(events)-1].Type != chat.EventFallback {
		t.Fatalf("expected trailing fallback event, got %+v", events)
	}
}

func TestSendConversationOpenFails(t *testing.T) {
	svc, _ := newService(&fakeStreamer{err: errors.New("no api key")})

	final, err := svc.Send(context.Background(), "u1", "hello", false, func(chat.Event) {})
	if err != nil || final.Text != chat.FallbackText {
		t.Fatalf("expected fallback, got %+v %v", final, err)
	}
}

func TestModeSwitch(t *testing.T) {
	ctx := context.Background()
	streamer := &fakeStreamer{steps: []scriptedStep{{chunk: chat.Chunk{Text: "Breathe."}}}}
	svc, modes := newService(streamer)

	if _, err := svc.Send(ctx, "u1", "hi", false, func(chat.Event) {}); err != nil {
		t.Fatalf("send: %v", err)
	}
	final, err := svc.Send(ctx, "u1", "Dark mode on", false, func(chat.Event) {})
	if err != nil {
		t.Fatalf("send: %v", err)
	}

	if final.Text != "Mode switched to DARK. I'm here for you. Breathe." {
		t.Fatalf("unexpected reply %q", final.Text)
	}
	if got := modes.Mode(ctx, "u1"); got != companion.ModeDark {
		t.Fatalf("mode not persisted, got %s", got)
	}
	if len(streamer.instructions) != 2 || !strings.Contains(streamer.instructions[1], "DARK MODE") {
		t.Fatalf("conversation should be recreated with the dark instruction: %d opened", len(streamer.instructions))
	}

	// same mode and search flag reuse the conversation
	_, _ = svc.Send(ctx, "u1", "thanks", false, func(chat.Event) {})
	if len(streamer.instructions) != 2 {
		t.Fatalf("conversation should be reused, opened %d", len(streamer.instructions))
	}
	_, _ = svc.Send(ctx, "u1", "search this", true, func(chat.Event) {})
	if len(streamer.instructions) != 3 || !streamer.searchFlags[2] {
		t.Fatal("toggling search should open a new conversation")
	}
}

func TestSendEmpty(t *testing.T) {
	svc, _ := newService(&fakeStreamer{})
	if _, err := svc.Send(context.Background(), "u1", "   ", false, func(chat.Event) {}); !errors.Is(err, chat.ErrEmptyMessage) {
		t.Fatalf("expected ErrEmptyMessage, got %v", err)
	}
}

func TestSendMessageHandlerStreamsSSE(t *testing.T) {
	streamer := &fakeStreamer{steps: []scriptedStep{{chunk: chat.Chunk{Text: "Hi"}}}}
	svc, _ := newService(streamer)
	h := chat.NewHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/messages", strings.NewReader(`{"text":"hello"}`))
	req = req.WithContext(auth.WithUserClaims(req.Context(), &auth.Claims{UserID: "u1"}))
	rec := httptest.NewRecorder()
	chat.Routes(h).ServeHTTP(rec, req)

	if ct := rec.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("expected event stream, got %q", ct)
	}
	body := rec.Body.String()
	for _, want := range []string{"event: pending", "event: delta", "event: done", `"text":"Hi"`} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q:\n%s", want, body)
		}
	}
}
