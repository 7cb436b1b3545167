package aiquiz

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a NEET-UG question setter. You write multiple choice questions strictly based on
the NCERT syllabus.

Rules:
1. Every question has exactly 4 options and exactly one correct option.
2. "correctAnswer" is the zero-based index (0-3) of the correct option.
3. "explanation" briefly explains why the correct option is right, citing the NCERT concept.
4. Do not make the correct option obvious: keep options of similar length and structure and use
   plausible distractors.
5. Never reveal the answer inside the question text.
6. Reply with a pure JSON array of {question, options, correctAnswer, explanation} objects and
   nothing else.`

// MaxMarks is the maximum score of a full NEET mock test.
const MaxMarks = 720

const practiceQuestionCount = 5

func BuildLevelPrompt(req LevelRequest) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Generate exactly %d NEET-UG level MCQs for Level %d of the chapter: %q.\n",
		req.Count, req.Level, req.ChapterName)
	fmt.Fprintf(&sb, "Subject: %s.\n\n", req.SubjectHint)

	sb.WriteString("Structure Requirement:\n")
	if req.Level < req.FinalLevel {
		fmt.Fprintf(&sb, "- Level %d/%d: Focus on specific topic-wise sub-sections of the chapter for deep practice.\n",
			req.Level, req.FinalLevel-1)
	} else {
		fmt.Fprintf(&sb, "- Level %d/%d (MASTERY): This is the FINAL GRADUATION test. Include questions from the FULL CHAPTER COMBINED, covering every possible NCERT line.\n",
			req.Level, req.FinalLevel)
	}

	sb.WriteString("\nStudent Context:\n")
	fmt.Fprintf(&sb, "- Latest Mock Score: %d/%d. Adjust difficulty to be challenging yet instructional.\n",
		clampMarks(req.LastMarks), MaxMarks)

	sb.WriteString("\nFormat: JSON array of objects with {question, options, correctAnswer (0-3), explanation}.")
	return sb.String()
}

func BuildPracticePrompt(chapterName string, biology bool, mode PracticeMode) string {
	subject := "Science"
	if biology {
		subject = "Biology/Science"
	}
	focus := "Include conceptual and diagrammatic reasoning questions."
	if mode == PracticeModeTest {
		focus = "Focus on high-yield exam-pattern questions."
	}
	return fmt.Sprintf(
		"Generate %d high-quality NEET-UG level MCQs for the chapter: %q (Subject: %s).\n%s\n"+
			"Each question must have exactly 4 options. Format the response as JSON.",
		practiceQuestionCount, chapterName, subject, focus,
	)
}

func clampMarks(marks int) int {
	if marks < 0 {
		return 0
	}
	if marks > MaxMarks {
		return MaxMarks
	}
	return marks
}
