// Package examflow tracks answers while an exam is being taken and turns
// them into a submission.
package examflow

import (
	"context"

	"github.com/kadirkilicoglu/PrepAI/internal/api"
	"github.com/kadirkilicoglu/PrepAI/internal/domain/exam"
	"github.com/kadirkilicoglu/PrepAI/internal/domain/result"
)

// Sheet is the in-progress answer set for one exam. Answers may be changed
// freely until submission; unanswered questions are simply absent.
type Sheet struct {
	exam    *exam.Exam
	answers map[string]string
}

func NewSheet(e *exam.Exam) *Sheet {
	return &Sheet{
		exam:    e,
		answers: map[string]string{},
	}
}

func (s *Sheet) Exam() *exam.Exam {
	return s.exam
}

// SetAnswer records or replaces the answer for a question. An empty answer
// clears it, so the question counts as unanswered again.
func (s *Sheet) SetAnswer(questionID, answer string) {
	if answer == "" {
		delete(s.answers, questionID)
		return
	}
	s.answers[questionID] = answer
}

func (s *Sheet) Answer(questionID string) (string, bool) {
	a, ok := s.answers[questionID]
	return a, ok
}

func (s *Sheet) AnsweredCount() int {
	return len(s.answers)
}

func (s *Sheet) TotalQuestions() int {
	return len(s.exam.Questions)
}

func (s *Sheet) UnansweredCount() int {
	return s.TotalQuestions() - s.AnsweredCount()
}

// IsComplete reports whether every question has an answer. Incomplete sheets
// can still be submitted, the caller is expected to confirm first.
func (s *Sheet) IsComplete() bool {
	return s.UnansweredCount() == 0
}

// Answers returns the recorded answers in the exam's question order.
// Unanswered questions are skipped rather than sent empty.
func (s *Sheet) Answers() []result.Answer {
	out := make([]result.Answer, 0, len(s.answers))
	for _, q := range s.exam.Questions {
		if a, ok := s.answers[q.ID]; ok {
			out = append(out, result.Answer{QuestionID: q.ID, UserAnswer: a})
		}
	}
	return out
}

// Submit sends the sheet for grading and returns the scored result.
func (s *Sheet) Submit(ctx context.Context, client *api.Client) (*result.Result, error) {
	return client.SubmitExam(ctx, s.exam.ID, s.Answers())
}
