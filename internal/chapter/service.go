package chapter

import (
	"errors"
	"strings"
)

var ErrChapterNotFound = errors.New("chapter not found")

type Service interface {
	List(subject Subject, class, query string) []Chapter
	Get(id string) (Chapter, error)
	IsFree(c Chapter) bool
	CanAccess(c Chapter, subscribed bool) bool
}

type service struct {
	chapters map[Subject][]Chapter
}

func NewService() Service {
	return &service{chapters: catalog}
}

func (s *service) List(subject Subject, class, query string) []Chapter {
	query = strings.ToLower(strings.TrimSpace(query))

	var out []Chapter
	for _, c := range s.chapters[subject] {
		if class != "" && c.Class != class {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(c.Name), query) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func (s *service) Get(id string) (Chapter, error) {
	for _, subject := range AllSubjects {
		for _, c := range s.chapters[subject] {
			if c.ID == id {
				return c, nil
			}
		}
	}
	return Chapter{}, ErrChapterNotFound
}

// IsFree reports whether c is open without a subscription: all of Biology, and the first
// two chapters of every other subject table.
func (s *service) IsFree(c Chapter) bool {
	if c.Subject == SubjectBiology {
		return true
	}
	for i, other := range s.chapters[c.Subject] {
		if other.ID == c.ID {
			return i < 2
		}
	}
	return false
}

func (s *service) CanAccess(c Chapter, subscribed bool) bool {
	return subscribed || s.IsFree(c)
}
