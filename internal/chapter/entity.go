package chapter

import "strings"

type Subject string

const (
	SubjectBiology   Subject = "Biology"
	SubjectPhysics   Subject = "Physics"
	SubjectChemistry Subject = "Chemistry"
)

var AllSubjects = []Subject{
	SubjectBiology,
	SubjectPhysics,
	SubjectChemistry,
}

func (s Subject) IsValid() bool {
	for _, v := range AllSubjects {
		if s == v {
			return true
		}
	}
	return false
}

// Levels is the number of difficulty stages in a mastery session.
const Levels = 5

type Chapter struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Class      string  `json:"class"`
	Difficulty string  `json:"difficulty"`
	Subject    Subject `json:"subject"`
}

func (c Chapter) IsBiology() bool {
	return strings.HasPrefix(c.ID, "b")
}

// QuestionCount is the number of questions served at level (1..Levels).
func (c Chapter) QuestionCount(level int) int {
	if c.IsBiology() {
		if level == Levels {
			return 100
		}
		return 50
	}
	if level == Levels {
		return 50
	}
	return 25
}

func (c Chapter) TotalQuestions() int {
	total := 0
	for level := 1; level <= Levels; level++ {
		total += c.QuestionCount(level)
	}
	return total
}

// SubjectHint is the subject line sent with generation requests.
func (c Chapter) SubjectHint() string {
	if c.IsBiology() {
		return "Biology (NCERT based)"
	}
	return "Physics/Chemistry (NCERT based)"
}

type ChapterView struct {
	Chapter
	Free   bool `json:"free"`
	Locked bool `json:"locked"`
}
