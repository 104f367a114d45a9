package valueobject

import (
	"strings"

	"github.com/yurvon-screamo/origa-sub001/internal/knerr"
)

// Question is the validated front side of a card: non-empty after trimming.
type Question struct {
	text string
}

// NewQuestion trims text and fails with InvalidQuestion when the result is empty.
func NewQuestion(text string) (Question, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Question{}, &knerr.InvalidValueError{Field: "Question", Reason: "text is empty after trimming"}
	}
	return Question{text: trimmed}, nil
}

func (q Question) Text() string   { return q.text }
func (q Question) String() string { return q.text }

// Answer is the validated back side of a card: non-empty after trimming.
type Answer struct {
	text string
}

// NewAnswer trims text and fails with InvalidAnswer when the result is empty.
func NewAnswer(text string) (Answer, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Answer{}, &knerr.InvalidValueError{Field: "Answer", Reason: "text is empty after trimming"}
	}
	return Answer{text: trimmed}, nil
}

func (a Answer) Text() string   { return a.text }
func (a Answer) String() string { return a.text }
