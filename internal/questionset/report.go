package questionset

import (
	"strings"

	"github.com/abhisek/praclab/internal/quiz"
)

// Skipped describes a row dropped while loading a set.
type Skipped struct {
	// Location identifies the row within the source (e.g. "line 4").
	Location string

	// Reason explains why the row was dropped.
	Reason string
}

// Report is the outcome of parsing one question set.
type Report struct {
	SetID     string
	Questions []quiz.Question
	Skipped   []Skipped

	placeholder string
}

// add keeps a row when both question and answer are non-blank.
func (r *Report) add(location, question, answer, explanation string) {
	question = strings.TrimSpace(question)
	explanation = strings.TrimSpace(explanation)
	switch {
	case question == "":
		r.skip(location, "missing question")
		return
	case strings.TrimSpace(answer) == "":
		r.skip(location, "missing answer")
		return
	}
	if explanation == "" {
		explanation = r.placeholder
		if explanation == "" {
			explanation = quiz.DefaultExplanation
		}
	}
	r.Questions = append(r.Questions, quiz.Question{
		Text:        question,
		Answer:      answer,
		Explanation: explanation,
	})
}

func (r *Report) skip(location, reason string) {
	r.Skipped = append(r.Skipped, Skipped{Location: location, Reason: reason})
}
