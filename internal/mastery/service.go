package mastery

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/neet-mastery/mastery-lambda/internal/chapter"
	"github.com/neet-mastery/mastery-lambda/internal/config"
	"github.com/neet-mastery/mastery-lambda/internal/event"
	"github.com/neet-mastery/mastery-lambda/internal/exam"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrChapterLocked   = errors.New("chapter requires an active subscription")
)

type MasteryService interface {
	Start(ctx context.Context, userID, chapterID string, lastMarks int) (*Snapshot, error)
	Get(ctx context.Context, userID, sessionID string) (*Snapshot, error)
	Answer(ctx context.Context, userID, sessionID string, option int) (*AnswerResult, error)
	Next(ctx context.Context, userID, sessionID string) (*Snapshot, error)
	Proceed(ctx context.Context, userID, sessionID string) (*Snapshot, error)
	Abandon(ctx context.Context, userID, sessionID string) error
}

type session struct {
	userID string
	engine *Engine
}

type masteryService struct {
	chapters      chapter.Service
	subscriptions chapter.SubscriptionChecker
	generator     Generator
	exams         exam.ExamService
	publisher     event.Publisher

	mu       sync.Mutex
	sessions map[string]*session
	byUser   map[string]string
}

func NewService(
	chapters chapter.Service,
	subscriptions chapter.SubscriptionChecker,
	generator Generator,
	exams exam.ExamService,
	publisher event.Publisher,
) MasteryService {
	return &masteryService{
		chapters:      chapters,
		subscriptions: subscriptions,
		generator:     generator,
		exams:         exams,
		publisher:     publisher,
		sessions:      make(map[string]*session),
		byUser:        make(map[string]string),
	}
}

// Start opens a new run for chapterID and loads level 1. A learner has at most one run:
// any previous one is abandoned first.
func (s *masteryService) Start(ctx context.Context, userID, chapterID string, lastMarks int) (*Snapshot, error) {
	log := config.WithContext(ctx)

	ch, err := s.chapters.Get(chapterID)
	if err != nil {
		return nil, err
	}
	if !s.chapters.CanAccess(ch, s.subscriptions.IsSubscribed(ctx, userID)) {
		log.Warnf("User %s tried to open locked chapter %s", userID, chapterID)
		return nil, ErrChapterLocked
	}

	engine := NewEngine(uuid.NewString(), ch, lastMarks, s.generator, s.completion(userID))

	s.mu.Lock()
	if prev, ok := s.byUser[userID]; ok {
		if old := s.sessions[prev]; old != nil {
			old.engine.Abandon()
		}
		delete(s.sessions, prev)
	}
	s.sessions[engine.ID()] = &session{userID: userID, engine: engine}
	s.byUser[userID] = engine.ID()
	s.mu.Unlock()

	log.Infof("Mastery session %s started for chapter %s", engine.ID(), ch.ID)

	// A failed load leaves the session in the error state, which the snapshot reports.
	if err := engine.Load(ctx); errors.Is(err, ErrAbandoned) {
		return nil, ErrSessionNotFound
	}
	return engine.Snapshot(), nil
}

func (s *masteryService) Get(_ context.Context, userID, sessionID string) (*Snapshot, error) {
	engine, err := s.lookup(userID, sessionID)
	if err != nil {
		return nil, err
	}
	return engine.Snapshot(), nil
}

func (s *masteryService) Answer(_ context.Context, userID, sessionID string, option int) (*AnswerResult, error) {
	engine, err := s.lookup(userID, sessionID)
	if err != nil {
		return nil, err
	}
	correct, err := engine.Answer(option)
	if err != nil {
		return nil, err
	}
	return &AnswerResult{Correct: correct, Snapshot: engine.Snapshot()}, nil
}

func (s *masteryService) Next(ctx context.Context, userID, sessionID string) (*Snapshot, error) {
	engine, err := s.lookup(userID, sessionID)
	if err != nil {
		return nil, err
	}
	if err := engine.Next(ctx); err != nil {
		return nil, err
	}
	return engine.Snapshot(), nil
}

func (s *masteryService) Proceed(ctx context.Context, userID, sessionID string) (*Snapshot, error) {
	engine, err := s.lookup(userID, sessionID)
	if err != nil {
		return nil, err
	}
	if err := engine.Proceed(ctx); err != nil {
		switch {
		case errors.Is(err, ErrIllegalTransition), errors.Is(err, ErrAbandoned):
			return nil, err
		}
		// generation failures are reported through the error state
	}
	return engine.Snapshot(), nil
}

func (s *masteryService) Abandon(ctx context.Context, userID, sessionID string) error {
	engine, err := s.lookup(userID, sessionID)
	if err != nil {
		return err
	}
	engine.Abandon()

	s.mu.Lock()
	delete(s.sessions, sessionID)
	if s.byUser[userID] == sessionID {
		delete(s.byUser, userID)
	}
	s.mu.Unlock()

	config.WithContext(ctx).Infof("Mastery session %s abandoned", sessionID)
	return nil
}

func (s *masteryService) lookup(userID, sessionID string) (*Engine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok || sess.userID != userID {
		return nil, ErrSessionNotFound
	}
	return sess.engine, nil
}

func (s *masteryService) completion(userID string) CompletionFunc {
	return func(ctx context.Context, rec exam.ExamRecord) {
		s.exams.Record(ctx, userID, rec)

		e := event.New(event.TypeExamCompleted, userID, map[string]any{
			"chapter_id": rec.ChapterID,
			"score":      rec.Score,
			"total":      rec.Total,
		})
		if err := s.publisher.Publish(ctx, e); err != nil {
			config.WithContext(ctx).WithError(err).Warn("Failed to publish exam completion")
		}
	}
}
