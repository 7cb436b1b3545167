package mastery

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/neet-mastery/mastery-lambda/internal/aiquiz"
	"github.com/neet-mastery/mastery-lambda/internal/chapter"
	"github.com/neet-mastery/mastery-lambda/internal/config"
	"github.com/neet-mastery/mastery-lambda/internal/exam"
)

var (
	ErrNotAnswered   = errors.New("current question has not been answered")
	ErrInvalidOption = errors.New("option index out of range")
	ErrAbandoned     = errors.New("session abandoned")
	ErrLoadInFlight  = errors.New("questions are already being loaded")
)

type Generator interface {
	GenerateLevel(ctx context.Context, req aiquiz.LevelRequest) ([]aiquiz.Question, error)
}

// CompletionFunc receives the record of a finished run. It is called at most once per engine.
type CompletionFunc func(ctx context.Context, rec exam.ExamRecord)

// Engine drives one learner through the five levels of a chapter.
type Engine struct {
	mu sync.Mutex

	id        string
	chapter   chapter.Chapter
	lastMarks int
	generator Generator
	onResult  CompletionFunc
	now       func() time.Time

	state     State
	level     int
	index     int
	questions []aiquiz.Question
	selected  *int
	scores    LevelScoreVector
	result    *exam.ExamRecord
	errMsg    string
	loading   bool
	abandoned bool
}

func NewEngine(id string, ch chapter.Chapter, lastMarks int, generator Generator, onResult CompletionFunc) *Engine {
	return &Engine{
		id:        id,
		chapter:   ch,
		lastMarks: lastMarks,
		generator: generator,
		onResult:  onResult,
		now:       time.Now,
		state:     StateLoading,
		level:     1,
	}
}

func (e *Engine) ID() string { return e.id }

func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Load fetches the question set for the current level. The generator runs without the
// engine lock held, so Snapshot stays responsive while a level is being prepared.
func (e *Engine) Load(ctx context.Context) error {
	e.mu.Lock()
	if e.abandoned {
		e.mu.Unlock()
		return ErrAbandoned
	}
	if e.state != StateLoading {
		err := fmt.Errorf("%w: load in state %s", ErrIllegalTransition, e.state)
		e.mu.Unlock()
		return err
	}
	if e.loading {
		e.mu.Unlock()
		return ErrLoadInFlight
	}
	e.loading = true
	req := aiquiz.LevelRequest{
		ChapterName: e.chapter.Name,
		SubjectHint: e.chapter.SubjectHint(),
		Count:       e.chapter.QuestionCount(e.level),
		Level:       e.level,
		FinalLevel:  chapter.Levels,
		LastMarks:   e.lastMarks,
	}
	e.mu.Unlock()

	questions, genErr := e.generator.GenerateLevel(ctx, req)
	if genErr == nil {
		genErr = aiquiz.Validate(questions)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.loading = false

	if e.abandoned {
		return ErrAbandoned
	}

	if genErr != nil {
		config.WithContext(ctx).WithError(genErr).Errorf("Failed to load level %d for %s", e.level, e.chapter.ID)
		e.state = StateError
		e.errMsg = "Failed to generate questions. Please try again."
		return genErr
	}

	// The level count is a ceiling: a short set is played as delivered, a long one is cut.
	if len(questions) > req.Count {
		questions = questions[:req.Count]
	}

	e.questions = questions
	e.index = 0
	e.selected = nil
	e.state = StateActive
	return nil
}

// Answer locks the current question on its first selection. Later calls report the
// locked outcome and change nothing.
func (e *Engine) Answer(option int) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.checkActive(); err != nil {
		return false, err
	}
	q := e.questions[e.index]

	if e.selected != nil {
		return *e.selected == q.CorrectAnswer, nil
	}
	if option < 0 || option >= len(q.Options) {
		return false, ErrInvalidOption
	}

	sel := option
	e.selected = &sel
	correct := option == q.CorrectAnswer
	if correct && e.scores[e.level-1] < e.chapter.QuestionCount(e.level) {
		e.scores[e.level-1]++
	}
	return correct, nil
}

// Next moves past the current, answered question.
func (e *Engine) Next(ctx context.Context) error {
	e.mu.Lock()

	if err := e.checkActive(); err != nil {
		e.mu.Unlock()
		return err
	}
	if e.selected == nil {
		e.mu.Unlock()
		return ErrNotAnswered
	}

	if e.index+1 < len(e.questions) {
		e.index++
		e.selected = nil
		e.mu.Unlock()
		return nil
	}

	if e.level < chapter.Levels {
		e.state = StateLevelComplete
		e.mu.Unlock()
		return nil
	}

	rec := exam.ExamRecord{
		ChapterID: e.chapter.ID,
		Score:     e.scores.Sum(),
		Total:     e.chapter.TotalQuestions(),
		Timestamp: e.now().UTC(),
	}
	e.state = StateResult
	e.result = &rec
	e.mu.Unlock()

	if e.onResult != nil {
		e.onResult(ctx, rec)
	}
	return nil
}

// Proceed starts the next level after a levelComplete pause and loads it.
func (e *Engine) Proceed(ctx context.Context) error {
	e.mu.Lock()
	if e.abandoned {
		e.mu.Unlock()
		return ErrAbandoned
	}
	if err := transition(e.state, StateLoading); err != nil {
		e.mu.Unlock()
		return err
	}
	e.level++
	e.state = StateLoading
	e.questions = nil
	e.index = 0
	e.selected = nil
	e.mu.Unlock()

	return e.Load(ctx)
}

// Abandon discards the run. Nothing is persisted and an in-flight load is ignored.
func (e *Engine) Abandon() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.abandoned = true
	e.questions = nil
}

func (e *Engine) Snapshot() *Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := &Snapshot{
		ID:            e.id,
		ChapterID:     e.chapter.ID,
		ChapterName:   e.chapter.Name,
		State:         e.state,
		Level:         e.level,
		QuestionIndex: e.index,
		QuestionCount: len(e.questions),
		Scores:        e.scores,
		Error:         e.errMsg,
	}
	if e.state == StateActive && e.index < len(e.questions) {
		s.Question = newQuestionView(e.questions[e.index], e.selected)
	}
	if e.result != nil {
		rec := *e.result
		s.Result = &rec
	}
	return s
}

func (e *Engine) checkActive() error {
	if e.abandoned {
		return ErrAbandoned
	}
	if e.state != StateActive {
		return fmt.Errorf("%w: not active (%s)", ErrIllegalTransition, e.state)
	}
	return nil
}
