package chapter_test

import (
	"errors"
	"testing"

	"github.com/neet-mastery/mastery-lambda/internal/chapter"
)

func TestQuestionCounts(t *testing.T) {
	svc := chapter.NewService()

	testCases := []struct {
		id     string
		counts [chapter.Levels]int
		total  int
	}{
		{"b11_1", [chapter.Levels]int{50, 50, 50, 50, 100}, 300},
		{"b12_38", [chapter.Levels]int{50, 50, 50, 50, 100}, 300},
		{"p11_3", [chapter.Levels]int{25, 25, 25, 25, 50}, 150},
		{"c12_1", [chapter.Levels]int{25, 25, 25, 25, 50}, 150},
	}

	for _, tc := range testCases {
		t.Run(tc.id, func(t *testing.T) {
			c, err := svc.Get(tc.id)
			if err != nil {
				t.Fatalf("Get(%s): %v", tc.id, err)
			}
			for level := 1; level <= chapter.Levels; level++ {
				if got := c.QuestionCount(level); got != tc.counts[level-1] {
					t.Errorf("level %d: want %d questions, got %d", level, tc.counts[level-1], got)
				}
			}
			if got := c.TotalQuestions(); got != tc.total {
				t.Errorf("want total %d, got %d", tc.total, got)
			}
		})
	}
}

func TestGetUnknownChapter(t *testing.T) {
	if _, err := chapter.NewService().Get("x99"); !errors.Is(err, chapter.ErrChapterNotFound) {
		t.Errorf("want ErrChapterNotFound, got %v", err)
	}
}

func TestList(t *testing.T) {
	svc := chapter.NewService()

	if got := len(svc.List(chapter.SubjectBiology, "", "")); got != 38 {
		t.Errorf("want 38 biology chapters, got %d", got)
	}
	if got := len(svc.List(chapter.SubjectBiology, "12", "")); got != 14 {
		t.Errorf("want 14 class 12 biology chapters, got %d", got)
	}

	found := svc.List(chapter.SubjectPhysics, "", "OPTICS")
	if len(found) != 1 || found[0].ID != "p12_3" {
		t.Errorf("case-insensitive search failed: %+v", found)
	}
}

func TestFreeAccessIsPositional(t *testing.T) {
	svc := chapter.NewService()

	testCases := []struct {
		id   string
		free bool
	}{
		{"b12_30", true},
		{"p11_1", true},
		{"p11_2", true},
		{"p11_3", false},
		{"c11_1", true},
		{"c11_3", false},
		{"c12_1", false},
	}

	for _, tc := range testCases {
		t.Run(tc.id, func(t *testing.T) {
			c, _ := svc.Get(tc.id)
			if got := svc.IsFree(c); got != tc.free {
				t.Errorf("IsFree: want %v, got %v", tc.free, got)
			}
			if !svc.CanAccess(c, true) {
				t.Error("subscribers must access every chapter")
			}
			if got := svc.CanAccess(c, false); got != tc.free {
				t.Errorf("CanAccess unsubscribed: want %v, got %v", tc.free, got)
			}
		})
	}
}
