package aiquiz

// OptionCount is the number of answer options every question must carry.
const OptionCount = 4

type Question struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// LevelRequest asks for the question set of one mastery level.
type LevelRequest struct {
	ChapterName string
	SubjectHint string
	Count       int
	Level       int
	FinalLevel  int
	LastMarks   int
}

type PracticeMode string

const (
	PracticeModePractice PracticeMode = "practice"
	PracticeModeTest     PracticeMode = "test"
)

// PracticeRequest is the body of the one-shot practice quiz endpoint.
type PracticeRequest struct {
	ChapterID string       `json:"chapter_id"`
	Mode      PracticeMode `json:"mode"`
}

type PracticeResponse struct {
	ChapterID string     `json:"chapter_id"`
	Mode      string     `json:"mode"`
	Questions []Question `json:"questions"`
}
