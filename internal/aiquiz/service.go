package aiquiz

import (
	"context"

	"github.com/neet-mastery/mastery-lambda/internal/config"
	"github.com/neet-mastery/mastery-lambda/internal/metrics"
)

type Service interface {
	GenerateLevel(ctx context.Context, req LevelRequest) ([]Question, error)
	GeneratePractice(ctx context.Context, chapterName string, biology bool, mode PracticeMode) ([]Question, error)
}

type service struct {
	provider Provider
}

func NewService(provider Provider) Service {
	return &service{provider: provider}
}

func (s *service) GenerateLevel(ctx context.Context, req LevelRequest) ([]Question, error) {
	return s.generate(ctx, "level", BuildLevelPrompt(req))
}

func (s *service) GeneratePractice(ctx context.Context, chapterName string, biology bool, mode PracticeMode) ([]Question, error) {
	return s.generate(ctx, "practice", BuildPracticePrompt(chapterName, biology, mode))
}

func (s *service) generate(ctx context.Context, kind, user string) ([]Question, error) {
	log := config.WithContext(ctx).WithField("kind", kind)

	questions, err := s.provider.SendPrompt(ctx, systemPrompt, user)
	if err == nil {
		err = Validate(questions)
	}
	if err != nil {
		metrics.QuestionGenerations.WithLabelValues(kind, "error").Inc()
		log.WithError(err).Warn("Question generation failed")
		return nil, err
	}

	metrics.QuestionGenerations.WithLabelValues(kind, "success").Inc()
	return questions, nil
}
