// Package upload validates source PDFs and generation options before they
// are sent to the backend.
package upload

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MaxPDFSize caps uploads at 20 MB, matching the backend's limit.
const MaxPDFSize = 20 << 20

var (
	ErrNotPDF   = errors.New("file is not a PDF")
	ErrTooLarge = fmt.Errorf("file exceeds %d MB", MaxPDFSize>>20)
)

var validate = validator.New()

// ExamOptions are the generation parameters for a new exam.
type ExamOptions struct {
	ExamType     string `validate:"oneof=mixed multiple_choice true_false fill_blank open_ended image_based"`
	Difficulty   string `validate:"oneof=easy medium hard"`
	NumQuestions int    `validate:"gte=5,lte=50"`
	FolderID     string
}

// DefaultExamOptions mirrors the form's initial state.
func DefaultExamOptions() ExamOptions {
	return ExamOptions{
		ExamType:     "mixed",
		Difficulty:   "medium",
		NumQuestions: 10,
	}
}

// Validate reports the first invalid option field.
func (o ExamOptions) Validate() error {
	if err := validate.Struct(o); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("invalid %s", strings.ToLower(verrs[0].Field()))
		}
		return err
	}
	return nil
}

// CheckPDF verifies that path names a real PDF within the size limit. The
// extension alone is not trusted, the file must start with the PDF magic.
func CheckPDF(path string) error {
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return ErrNotPDF
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.Size() > MaxPDFSize {
		return ErrTooLarge
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	magic := make([]byte, 4)
	if _, err := io.ReadFull(f, magic); err != nil {
		return ErrNotPDF
	}
	if string(magic) != "%PDF" {
		return ErrNotPDF
	}
	return nil
}
