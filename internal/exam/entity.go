package exam

import "time"

// ExamRecord is one completed mastery session. Records are never edited or removed.
type ExamRecord struct {
	ChapterID string    `json:"chapterId"`
	Score     int       `json:"score"`
	Total     int       `json:"total"`
	Timestamp time.Time `json:"timestamp"`
}

type BestScoreResponse struct {
	ChapterID string `json:"chapterId"`
	Score     int    `json:"score"`
}
