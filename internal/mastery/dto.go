package mastery

type StartRequest struct {
	ChapterID string `json:"chapterId"`
	LastMarks int    `json:"lastMarks"`
}

type AnswerRequest struct {
	Option *int `json:"option"`
}
