package exam_test

import (
	"encoding/base64"
	"testing"

	"github.com/kadirkilicoglu/PrepAI/internal/domain/exam"
)

func TestQuestionType_Valid(t *testing.T) {
	valid := []exam.QuestionType{
		exam.MultipleChoice, exam.TrueFalse, exam.FillBlank, exam.OpenEnded, exam.ImageBased,
	}
	for _, qt := range valid {
		if !qt.Valid() {
			t.Errorf("expected %q to be valid", qt)
		}
	}

	if exam.QuestionType("essay").Valid() {
		t.Error("expected unknown type to be invalid")
	}
	if exam.QuestionType("").Valid() {
		t.Error("expected empty type to be invalid")
	}
}

func TestQuestionType_HasChoices(t *testing.T) {
	if !exam.MultipleChoice.HasChoices() {
		t.Error("expected multiple_choice to have choices")
	}
	if !exam.ImageBased.HasChoices() {
		t.Error("expected image_based to have choices")
	}
	for _, qt := range []exam.QuestionType{exam.TrueFalse, exam.FillBlank, exam.OpenEnded} {
		if qt.HasChoices() {
			t.Errorf("expected %q to have no choices", qt)
		}
	}
}

func TestChoices_GatedByType(t *testing.T) {
	// A payload can carry options on any type; only choice types expose them.
	q := exam.Question{
		Type:    exam.OpenEnded,
		Options: []string{"should", "not", "leak"},
	}
	if q.Choices() != nil {
		t.Error("expected open_ended question to expose no choices")
	}

	q.Type = exam.MultipleChoice
	if got := q.Choices(); len(got) != 3 {
		t.Errorf("expected 3 choices, got %d", len(got))
	}
}

func TestImageBytes_GatedByType(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("raw-image"))

	q := exam.Question{Type: exam.MultipleChoice, ImageData: payload}
	data, err := q.ImageBytes()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data != nil {
		t.Error("expected non-image type to return no image bytes")
	}

	q.Type = exam.ImageBased
	data, err = q.ImageBytes()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "raw-image" {
		t.Errorf("expected decoded payload, got %q", data)
	}
}

func TestImageBytes_BadBase64(t *testing.T) {
	q := exam.Question{Type: exam.ImageBased, ImageData: "!!!not-base64!!!"}
	if _, err := q.ImageBytes(); err == nil {
		t.Error("expected decode error for malformed payload")
	}
}

func TestQuestionByID(t *testing.T) {
	e := &exam.Exam{
		Questions: []exam.Question{
			{ID: "q1", Text: "first"},
			{ID: "q2", Text: "second"},
		},
	}

	q, ok := e.QuestionByID("q2")
	if !ok || q.Text != "second" {
		t.Errorf("expected to find q2, got %v %v", q, ok)
	}

	if _, ok := e.QuestionByID("missing"); ok {
		t.Error("expected lookup of unknown id to fail")
	}
}
