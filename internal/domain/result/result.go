package result

import (
	"math"
	"time"
)

// DeletedExamTitle is shown when a result references an exam that no longer
// exists. Orphaned results stay listed; only the title degrades.
const DeletedExamTitle = "Deleted exam"

// Answer is one submitted {question, answer} pair.
type Answer struct {
	QuestionID string `json:"question_id"`
	UserAnswer string `json:"user_answer"`
}

// Feedback is the backend's per-question verdict.
type Feedback struct {
	QuestionID    string `json:"question_id"`
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer"`
	IsCorrect     bool   `json:"is_correct"`
	Explanation   string `json:"explanation,omitempty"`
}

// Result is the scored outcome of one exam submission.
type Result struct {
	ID             string     `json:"id"`
	ExamID         string     `json:"exam_id"`
	UserID         string     `json:"user_id,omitempty"`
	Score          float64    `json:"score"` // 0-100
	TotalQuestions int        `json:"total_questions"`
	CorrectAnswers int        `json:"correct_answers"`
	Answers        []Answer   `json:"answers,omitempty"`
	Feedback       []Feedback `json:"feedback"`
	SubmittedAt    time.Time  `json:"submitted_at"`
}

// RoundedScore is the integer score shown everywhere in the UI.
func (r Result) RoundedScore() int {
	return int(math.Round(r.Score))
}

func (r Result) WrongAnswers() int {
	return r.TotalQuestions - r.CorrectAnswers
}

// Tier buckets a score for display emphasis.
type Tier string

const (
	TierHigh Tier = "high" // score >= 80
	TierMid  Tier = "mid"  // 50 <= score < 80
	TierLow  Tier = "low"  // score < 50
)

// TierFor maps a raw score to its display tier.
func TierFor(score float64) Tier {
	switch {
	case score >= 80:
		return TierHigh
	case score >= 50:
		return TierMid
	default:
		return TierLow
	}
}
