package chat

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/neet-mastery/mastery-lambda/internal/companion"
	"github.com/neet-mastery/mastery-lambda/internal/config"
	"github.com/neet-mastery/mastery-lambda/internal/metrics"
)

const FallbackText = "I am here, just taking a deep breath. How are you feeling now?"

var (
	ErrEmptyMessage = errors.New("message is empty")
	ErrBusy         = errors.New("a reply is still streaming")
)

type ChatService interface {
	// Send delivers text and streams the reply through emit. A failed stream is not an
	// error: the reply is replaced by the fallback message.
	Send(ctx context.Context, userID, text string, useSearch bool, emit func(Event)) (Message, error)
	History(ctx context.Context, userID string) []Message
}

type conversationState struct {
	sending sync.Mutex

	mu         sync.Mutex
	messages   []Message
	conv       Conversation
	convMode   companion.BehaviorMode
	convSearch bool
}

type chatService struct {
	streamer Streamer
	modes    companion.ModeStore
	now      func() time.Time

	mu    sync.Mutex
	users map[string]*conversationState
}

func NewService(streamer Streamer, modes companion.ModeStore) ChatService {
	return &chatService{
		streamer: streamer,
		modes:    modes,
		now:      time.Now,
		users:    make(map[string]*conversationState),
	}
}

func (s *chatService) Send(ctx context.Context, userID, text string, useSearch bool, emit func(Event)) (Message, error) {
	log := config.WithContext(ctx).WithField("user_id", userID)

	if strings.TrimSpace(text) == "" {
		return Message{}, ErrEmptyMessage
	}

	st := s.state(userID)
	if !st.sending.TryLock() {
		return Message{}, ErrBusy
	}
	defer st.sending.Unlock()

	mode := s.modes.Mode(ctx, userID)
	switched, ok := companion.DetectModeSwitch(text)
	if ok {
		mode = switched
		s.modes.SetMode(ctx, userID, mode)
		log.Infof("Behavior mode switched to %s", mode)
	}

	placeholder := Message{Role: RoleModel, Timestamp: s.now()}
	if ok {
		placeholder.Text = companion.SwitchNotice(mode)
	}

	st.mu.Lock()
	st.messages = append(st.messages, Message{Role: RoleUser, Text: text, Timestamp: s.now()})
	st.messages = append(st.messages, placeholder)
	idx := len(st.messages) - 1
	st.mu.Unlock()

	emit(Event{Type: EventPending, Message: placeholder})

	conv, err := s.conversation(ctx, st, mode, useSearch)
	if err == nil {
		err = s.stream(ctx, st, idx, conv, text, emit)
	}
	if err != nil {
		log.WithError(err).Warn("Chat stream failed, answering with fallback")
		metrics.ChatStreams.WithLabelValues("fallback").Inc()
		return s.fallback(st, idx, emit), nil
	}

	st.mu.Lock()
	final := st.messages[idx]
	st.mu.Unlock()

	metrics.ChatStreams.WithLabelValues("success").Inc()
	emit(Event{Type: EventDone, Message: final})
	return final, nil
}

func (s *chatService) History(_ context.Context, userID string) []Message {
	st := s.state(userID)
	st.mu.Lock()
	defer st.mu.Unlock()
	return append([]Message{}, st.messages...)
}

func (s *chatService) state(userID string) *conversationState {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.users[userID]
	if !ok {
		st = &conversationState{}
		s.users[userID] = st
	}
	return st
}

// conversation reuses the open model conversation unless the mode or the search flag
// changed since it was created.
func (s *chatService) conversation(ctx context.Context, st *conversationState, mode companion.BehaviorMode, useSearch bool) (Conversation, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if st.conv != nil && st.convMode == mode && st.convSearch == useSearch {
		return st.conv, nil
	}

	conv, err := s.streamer.NewConversation(ctx, companion.ChatInstruction(mode), useSearch)
	if err != nil {
		st.conv = nil
		return nil, err
	}
	st.conv, st.convMode, st.convSearch = conv, mode, useSearch
	return conv, nil
}

func (s *chatService) stream(ctx context.Context, st *conversationState, idx int, conv Conversation, text string, emit func(Event)) error {
	for chunk, err := range conv.SendStream(ctx, text) {
		if err != nil {
			return err
		}

		st.mu.Lock()
		msg := &st.messages[idx]
		msg.Text += chunk.Text
		if chunk.Grounding != nil {
			msg.GroundingURLs = append([]GroundingLink(nil), chunk.Grounding...)
		}
		snapshot := *msg
		st.mu.Unlock()

		emit(Event{Type: EventDelta, Delta: chunk.Text, Message: snapshot})
	}
	return nil
}

// fallback drops the reply being built, partial text included, and appends the static
// fallback message in its place.
func (s *chatService) fallback(st *conversationState, idx int, emit func(Event)) Message {
	msg := Message{Role: RoleModel, Text: FallbackText, Timestamp: s.now()}

	st.mu.Lock()
	st.messages = append(st.messages[:idx], st.messages[idx+1:]...)
	st.messages = append(st.messages, msg)
	st.mu.Unlock()

	emit(Event{Type: EventFallback, Message: msg})
	return msg
}
