package plan_test

import (
	"context"
	"errors"
	"testing"

	"github.com/neet-mastery/mastery-lambda/internal/plan"
	"github.com/neet-mastery/mastery-lambda/internal/user"
)

type fakeSubscriber struct {
	marked []string
}

func (f *fakeSubscriber) MarkSubscribed(_ context.Context, id string) (*user.Profile, error) {
	if id == "ghost" {
		return nil, user.ErrUserNotFound
	}
	f.marked = append(f.marked, id)
	return &user.Profile{ID: id, IsSubscribed: true}, nil
}

func TestList(t *testing.T) {
	plans := plan.NewService(&fakeSubscriber{}).List()
	if len(plans) != 4 {
		t.Fatalf("expected 4 plans, got %d", len(plans))
	}
	if plans[0].Price != 99 || plans[3].Price != 699 || plans[3].Duration != "1 Year Access" {
		t.Fatalf("unexpected plans: %+v", plans)
	}
}

func TestSubscribe(t *testing.T) {
	ctx := context.Background()
	sub := &fakeSubscriber{}
	svc := plan.NewService(sub)

	res, err := svc.Subscribe(ctx, "u1", "2")
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	if !res.IsSubscribed || res.Plan.Price != 199 || len(sub.marked) != 1 {
		t.Fatalf("unexpected result: %+v", res)
	}

	if _, err := svc.Subscribe(ctx, "u1", "9"); !errors.Is(err, plan.ErrPlanNotFound) {
		t.Fatalf("expected ErrPlanNotFound, got %v", err)
	}
	if _, err := svc.Subscribe(ctx, "ghost", "1"); !errors.Is(err, user.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
