package exam

import (
	"context"

	"github.com/neet-mastery/mastery-lambda/internal/config"
	"github.com/neet-mastery/mastery-lambda/internal/metrics"
	"github.com/sirupsen/logrus"
)

type ExamService interface {
	Record(ctx context.Context, userID string, rec ExamRecord)
	List(ctx context.Context, userID string) []ExamRecord
	BestScore(ctx context.Context, userID, chapterID string) int
}

type examService struct {
	repo ExamRepository
}

func NewService(repo ExamRepository) ExamService {
	return &examService{repo: repo}
}

func (s *examService) Record(ctx context.Context, userID string, rec ExamRecord) {
	log := config.WithContext(ctx).WithFields(logrus.Fields{
		"user_id":    userID,
		"chapter_id": rec.ChapterID,
		"score":      rec.Score,
		"total":      rec.Total,
	})

	if err := s.repo.Append(ctx, userID, rec); err != nil {
		log.WithError(err).Warn("Exam history unreadable, record not saved")
		return
	}
	metrics.ExamRecords.Inc()
	log.Info("Exam record saved")
}

func (s *examService) List(ctx context.Context, userID string) []ExamRecord {
	return s.repo.ListByUser(ctx, userID)
}

// BestScore is the highest score recorded for chapterID, or 0 when there is none.
func (s *examService) BestScore(ctx context.Context, userID, chapterID string) int {
	best := 0
	for _, rec := range s.repo.ListByUser(ctx, userID) {
		if rec.ChapterID == chapterID && rec.Score > best {
			best = rec.Score
		}
	}
	return best
}
