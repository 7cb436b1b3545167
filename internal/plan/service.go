package plan

import (
	"context"
	"errors"

	"github.com/neet-mastery/mastery-lambda/internal/config"
	"github.com/neet-mastery/mastery-lambda/internal/user"
)

var ErrPlanNotFound = errors.New("plan not found")

// Subscriber is the part of the user service a purchase needs.
type Subscriber interface {
	MarkSubscribed(ctx context.Context, id string) (*user.Profile, error)
}

type PlanService interface {
	List() []Plan
	Subscribe(ctx context.Context, userID, planID string) (*SubscribeResponse, error)
}

type planService struct {
	subscriber Subscriber
}

func NewService(subscriber Subscriber) PlanService {
	return &planService{subscriber: subscriber}
}

func (s *planService) List() []Plan {
	return append([]Plan(nil), plans...)
}

// Subscribe completes a simulated checkout: there is no payment provider, success is
// immediate.
func (s *planService) Subscribe(ctx context.Context, userID, planID string) (*SubscribeResponse, error) {
	var chosen *Plan
	for i := range plans {
		if plans[i].ID == planID {
			chosen = &plans[i]
			break
		}
	}
	if chosen == nil {
		return nil, ErrPlanNotFound
	}

	p, err := s.subscriber.MarkSubscribed(ctx, userID)
	if err != nil {
		return nil, err
	}

	config.WithContext(ctx).WithField("user_id", userID).Infof("Subscribed to plan %s (%s)", chosen.ID, chosen.Duration)
	return &SubscribeResponse{Plan: *chosen, IsSubscribed: p.IsSubscribed}, nil
}
