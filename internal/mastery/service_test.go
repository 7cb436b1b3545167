package mastery_test

import (
	"context"
	"errors"
	"testing"

	"github.com/neet-mastery/mastery-lambda/internal/aiquiz"
	"github.com/neet-mastery/mastery-lambda/internal/chapter"
	"github.com/neet-mastery/mastery-lambda/internal/event"
	"github.com/neet-mastery/mastery-lambda/internal/exam"
	"github.com/neet-mastery/mastery-lambda/internal/mastery"
	"github.com/neet-mastery/mastery-lambda/internal/store"
)

type subscriptions map[string]bool

func (s subscriptions) IsSubscribed(_ context.Context, userID string) bool { return s[userID] }

// shortGenerator returns a single question per level.
type shortGenerator struct{}

func (shortGenerator) GenerateLevel(context.Context, aiquiz.LevelRequest) ([]aiquiz.Question, error) {
	return []aiquiz.Question{{
		Question:      "Q",
		Options:       []string{"a", "b", "c", "d"},
		CorrectAnswer: 3,
	}}, nil
}

func newTestService(subs subscriptions) (mastery.MasteryService, exam.ExamService, *event.Recorder) {
	exams := exam.NewService(exam.NewRepository(store.NewLocal(store.NewMemoryKV())))
	rec := event.NewRecorder()
	svc := mastery.NewService(chapter.NewService(), subs, shortGenerator{}, exams, rec)
	return svc, exams, rec
}

func TestStartGating(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(subscriptions{"paid": true})

	if _, err := svc.Start(ctx, "free", "p11_3", 0); !errors.Is(err, mastery.ErrChapterLocked) {
		t.Fatalf("expected ErrChapterLocked, got %v", err)
	}
	if _, err := svc.Start(ctx, "free", "p11_2", 0); err != nil {
		t.Fatalf("second physics chapter is free: %v", err)
	}
	if _, err := svc.Start(ctx, "paid", "p11_3", 0); err != nil {
		t.Fatalf("subscriber should access p11_3: %v", err)
	}
	if _, err := svc.Start(ctx, "free", "zz", 0); !errors.Is(err, chapter.ErrChapterNotFound) {
		t.Fatalf("expected ErrChapterNotFound, got %v", err)
	}
}

func TestSessionsAreScopedToUser(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(subscriptions{})

	snap, err := svc.Start(ctx, "u1", "b11_1", 0)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if snap.State != mastery.StateActive {
		t.Fatalf("expected active, got %s", snap.State)
	}
	if _, err := svc.Get(ctx, "u2", snap.ID); !errors.Is(err, mastery.ErrSessionNotFound) {
		t.Fatalf("other users must not see the session, got %v", err)
	}

	second, _ := svc.Start(ctx, "u1", "b11_2", 0)
	if _, err := svc.Get(ctx, "u1", snap.ID); !errors.Is(err, mastery.ErrSessionNotFound) {
		t.Fatalf("starting again must replace the previous session, got %v", err)
	}
	if err := svc.Abandon(ctx, "u1", second.ID); err != nil {
		t.Fatalf("abandon: %v", err)
	}
	if _, err := svc.Get(ctx, "u1", second.ID); !errors.Is(err, mastery.ErrSessionNotFound) {
		t.Fatalf("abandoned session must be gone, got %v", err)
	}
}

func TestCompletionRecordsAndPublishes(t *testing.T) {
	ctx := context.Background()
	svc, exams, rec := newTestService(subscriptions{})

	snap, err := svc.Start(ctx, "u1", "p11_1", 0)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	for level := 1; level <= chapter.Levels; level++ {
		if _, err := svc.Answer(ctx, "u1", snap.ID, 3); err != nil {
			t.Fatalf("answer level %d: %v", level, err)
		}
		s, err := svc.Next(ctx, "u1", snap.ID)
		if err != nil {
			t.Fatalf("next level %d: %v", level, err)
		}
		if level < chapter.Levels {
			if s.State != mastery.StateLevelComplete {
				t.Fatalf("expected levelComplete after level %d, got %s", level, s.State)
			}
			if _, err := svc.Proceed(ctx, "u1", snap.ID); err != nil {
				t.Fatalf("proceed: %v", err)
			}
		} else if s.State != mastery.StateResult || s.Result == nil {
			t.Fatalf("expected result, got %+v", s)
		}
	}

	records := exams.List(ctx, "u1")
	if len(records) != 1 || records[0].Score != 5 || records[0].Total != 150 {
		t.Fatalf("unexpected records: %+v", records)
	}
	events := rec.Events()
	if len(events) != 1 || events[0].Type != event.TypeExamCompleted {
		t.Fatalf("expected one exam.completed event, got %+v", events)
	}
}
