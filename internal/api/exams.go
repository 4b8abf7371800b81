package api

import (
	"context"
	"io"
	"strconv"

	"github.com/kadirkilicoglu/PrepAI/internal/domain/exam"
	"github.com/kadirkilicoglu/PrepAI/internal/domain/result"
)

// ExamOptions are the generation options sent alongside the uploaded PDF.
type ExamOptions struct {
	ExamType     string
	Difficulty   string
	NumQuestions int
	FolderID     string // empty = root
}

func (c *Client) ListExams(ctx context.Context) ([]exam.Exam, error) {
	var out []exam.Exam
	resp, err := c.http.R().SetContext(ctx).SetResult(&out).Get("/api/exams")
	if err != nil {
		return nil, err
	}
	if err := responseError(resp); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetExam(ctx context.Context, id string) (*exam.Exam, error) {
	var out exam.Exam
	resp, err := c.http.R().SetContext(ctx).SetResult(&out).Get("/api/exams/" + id)
	if err != nil {
		return nil, err
	}
	if err := responseError(resp); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteExam(ctx context.Context, id string) error {
	resp, err := c.http.R().SetContext(ctx).Delete("/api/exams/" + id)
	if err != nil {
		return err
	}
	return responseError(resp)
}

// CreateExam uploads a PDF and blocks until the backend has generated the
// exam. Generation can take a while; the transport default timeout applies.
func (c *Client) CreateExam(ctx context.Context, pdf io.Reader, filename string, opts ExamOptions) (*exam.Exam, error) {
	form := map[string]string{
		"exam_type":     opts.ExamType,
		"difficulty":    opts.Difficulty,
		"num_questions": strconv.Itoa(opts.NumQuestions),
	}
	if opts.FolderID != "" {
		form["folder_id"] = opts.FolderID
	}

	var out exam.Exam
	resp, err := c.http.R().
		SetContext(ctx).
		SetFileReader("pdf", filename, pdf).
		SetFormData(form).
		SetResult(&out).
		Post("/api/exams/create")
	if err != nil {
		return nil, err
	}
	if err := responseError(resp); err != nil {
		return nil, err
	}
	return &out, nil
}

// SubmitExam sends the answer batch and returns the scored result.
// Unanswered questions are simply absent from the batch.
func (c *Client) SubmitExam(ctx context.Context, examID string, answers []result.Answer) (*result.Result, error) {
	body := struct {
		ExamID  string          `json:"exam_id"`
		Answers []result.Answer `json:"answers"`
	}{ExamID: examID, Answers: answers}

	var out result.Result
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&out).
		Post("/api/exams/submit")
	if err != nil {
		return nil, err
	}
	if err := responseError(resp); err != nil {
		return nil, err
	}
	return &out, nil
}
