package exam

import (
	"encoding/base64"
	"time"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// QuestionType is the closed set of question kinds the backend generates.
// The type alone decides how a question is rendered and what answer shape
// is expected; callers must not poke at Options or ImageData directly but
// go through Choices/ImageBytes, which gate on the type.
type QuestionType string

const (
	MultipleChoice QuestionType = "multiple_choice"
	TrueFalse      QuestionType = "true_false"
	FillBlank      QuestionType = "fill_blank"
	OpenEnded      QuestionType = "open_ended"
	ImageBased     QuestionType = "image_based"
)

func (t QuestionType) Valid() bool {
	switch t {
	case MultipleChoice, TrueFalse, FillBlank, OpenEnded, ImageBased:
		return true
	}
	return false
}

// HasChoices reports whether the type carries a fixed option list.
func (t QuestionType) HasChoices() bool {
	return t == MultipleChoice || t == ImageBased
}

// HasImage reports whether the type may carry an embedded image.
func (t QuestionType) HasImage() bool {
	return t == ImageBased
}

// Label returns a human-readable name for the question type.
func (t QuestionType) Label() string {
	switch t {
	case MultipleChoice:
		return "Multiple Choice"
	case TrueFalse:
		return "True / False"
	case FillBlank:
		return "Fill in the Blank"
	case OpenEnded:
		return "Open Ended"
	case ImageBased:
		return "Image Based"
	}
	return string(t)
}

type Question struct {
	ID            string       `json:"id"`
	Text          string       `json:"question_text"`
	Type          QuestionType `json:"question_type"`
	Options       []string     `json:"options,omitempty"`
	CorrectAnswer string       `json:"correct_answer,omitempty"`
	Explanation   string       `json:"explanation,omitempty"`
	ImageData     string       `json:"image_data,omitempty"` // base64-encoded raster image
}

// Choices returns the option list for choice-backed question types and nil
// for every other type, regardless of what the payload carried.
func (q Question) Choices() []string {
	if !q.Type.HasChoices() {
		return nil
	}
	return q.Options
}

// ImageBytes decodes the embedded image for image-based questions.
// Returns nil for types that never carry an image.
func (q Question) ImageBytes() ([]byte, error) {
	if !q.Type.HasImage() || q.ImageData == "" {
		return nil, nil
	}
	return base64.StdEncoding.DecodeString(q.ImageData)
}

// Exam is a generated question set. FolderID is empty for root-level exams.
type Exam struct {
	ID         string     `json:"id"`
	UserID     string     `json:"user_id,omitempty"`
	Title      string     `json:"title"`
	ExamType   string     `json:"exam_type,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	Questions  []Question `json:"questions"`
	PDFName    string     `json:"pdf_name,omitempty"`
	FolderID   string     `json:"folder_id,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// QuestionByID looks a question up by its identifier.
func (e *Exam) QuestionByID(id string) (Question, bool) {
	for _, q := range e.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}
