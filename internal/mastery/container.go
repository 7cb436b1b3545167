package mastery

import (
	"github.com/neet-mastery/mastery-lambda/internal/chapter"
	"github.com/neet-mastery/mastery-lambda/internal/event"
	"github.com/neet-mastery/mastery-lambda/internal/exam"
)

type MasteryContainer struct {
	Handler *Handler
	Service MasteryService
}

func NewMasteryContainer(
	chapters chapter.Service,
	subscriptions chapter.SubscriptionChecker,
	generator Generator,
	exams exam.ExamService,
	publisher event.Publisher,
) *MasteryContainer {
	service := NewService(chapters, subscriptions, generator, exams, publisher)
	handler := NewHandler(service)

	return &MasteryContainer{
		Handler: handler,
		Service: service,
	}
}
