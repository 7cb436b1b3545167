package aiquiz

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyResponse     = errors.New("no questions returned from engine")
	ErrMalformedQuestion = errors.New("malformed question")
)

// Validate rejects anything a quiz cannot be played with. The whole set fails if one
// question is bad; callers treat that as a failed generation.
func Validate(questions []Question) error {
	if len(questions) == 0 {
		return ErrEmptyResponse
	}
	for i, q := range questions {
		if strings.TrimSpace(q.Question) == "" {
			return fmt.Errorf("%w: question %d has no text", ErrMalformedQuestion, i+1)
		}
		if len(q.Options) != OptionCount {
			return fmt.Errorf("%w: question %d has %d options", ErrMalformedQuestion, i+1, len(q.Options))
		}
		for j, opt := range q.Options {
			if strings.TrimSpace(opt) == "" {
				return fmt.Errorf("%w: question %d option %d is empty", ErrMalformedQuestion, i+1, j+1)
			}
		}
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= OptionCount {
			return fmt.Errorf("%w: question %d correct answer %d out of range", ErrMalformedQuestion, i+1, q.CorrectAnswer)
		}
	}
	return nil
}
