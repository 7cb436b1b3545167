package mastery

import (
	"github.com/neet-mastery/mastery-lambda/internal/aiquiz"
	"github.com/neet-mastery/mastery-lambda/internal/chapter"
	"github.com/neet-mastery/mastery-lambda/internal/exam"
)

// LevelScoreVector holds the correct-answer count of each level, index 0 being level 1.
type LevelScoreVector [chapter.Levels]int

func (v LevelScoreVector) Sum() int {
	total := 0
	for _, s := range v {
		total += s
	}
	return total
}

// QuestionView is a question as the learner may see it: the answer and explanation are
// only revealed once the question is locked.
type QuestionView struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	Selected      *int     `json:"selected,omitempty"`
	CorrectAnswer *int     `json:"correctAnswer,omitempty"`
	Explanation   string   `json:"explanation,omitempty"`
}

type Snapshot struct {
	ID            string           `json:"id"`
	ChapterID     string           `json:"chapterId"`
	ChapterName   string           `json:"chapterName"`
	State         State            `json:"state"`
	Level         int              `json:"level"`
	QuestionIndex int              `json:"questionIndex"`
	QuestionCount int              `json:"questionCount"`
	Question      *QuestionView    `json:"question,omitempty"`
	Scores        LevelScoreVector `json:"scores"`
	Result        *exam.ExamRecord `json:"result,omitempty"`
	Error         string           `json:"error,omitempty"`
}

type AnswerResult struct {
	Correct  bool      `json:"correct"`
	Snapshot *Snapshot `json:"session"`
}

func newQuestionView(q aiquiz.Question, selected *int) *QuestionView {
	v := &QuestionView{Question: q.Question, Options: q.Options}
	if selected != nil {
		sel := *selected
		correct := q.CorrectAnswer
		v.Selected = &sel
		v.CorrectAnswer = &correct
		v.Explanation = q.Explanation
	}
	return v
}
