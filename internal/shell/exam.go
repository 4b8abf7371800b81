// internal/shell/exam.go
package shell

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kadirkilicoglu/PrepAI/internal/api"
	"github.com/kadirkilicoglu/PrepAI/internal/dashboard"
	"github.com/kadirkilicoglu/PrepAI/internal/domain/exam"
	"github.com/kadirkilicoglu/PrepAI/internal/domain/result"
	"github.com/kadirkilicoglu/PrepAI/internal/examflow"
	"github.com/kadirkilicoglu/PrepAI/internal/upload"
)

func (a *App) runCreateExam(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("create-exam", flag.ContinueOnError)
	fs.SetOutput(a.Stdout)
	opts := upload.DefaultExamOptions()
	fs.StringVar(&opts.ExamType, "type", opts.ExamType, "question type, or mixed")
	fs.StringVar(&opts.Difficulty, "difficulty", opts.Difficulty, "easy, medium or hard")
	fs.IntVar(&opts.NumQuestions, "questions", opts.NumQuestions, "number of questions (5-50)")
	folderName := fs.String("folder", "", "store the exam in this folder")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: create-exam PDF [flags]")
	}
	path := fs.Arg(0)

	if err := opts.Validate(); err != nil {
		return err
	}
	if err := upload.CheckPDF(path); err != nil {
		return err
	}
	folderID, err := a.resolveFolder(ctx, *folderName)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	a.printf("Generating exam, this can take a while...\n")
	ex, err := a.Client.CreateExam(ctx, f, filepath.Base(path), api.ExamOptions{
		ExamType:     opts.ExamType,
		Difficulty:   opts.Difficulty,
		NumQuestions: opts.NumQuestions,
		FolderID:     folderID,
	})
	if err != nil {
		return err
	}

	a.printf("Created exam %q with %d questions (id %s)\n", ex.Title, len(ex.Questions), ex.ID)
	return nil
}

// runTake walks through an exam question by question. Answers can be left
// blank; submitting an incomplete sheet asks for confirmation first.
func (a *App) runTake(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: take EXAM_ID")
	}

	ex, err := a.Client.GetExam(ctx, args[0])
	if err != nil {
		return err
	}
	return a.takeExam(ctx, ex)
}

func (a *App) takeExam(ctx context.Context, ex *exam.Exam) error {
	sheet := examflow.NewSheet(ex)
	a.printf("%s (%d questions, %s)\n", ex.Title, len(ex.Questions), ex.Difficulty)

	all := make([]int, len(ex.Questions))
	for i := range all {
		all[i] = i
	}
	if err := a.askQuestions(sheet, all); err != nil {
		return err
	}

	// Declining a partial submission keeps every answer and returns to the
	// open questions.
	for !sheet.IsComplete() {
		msg := fmt.Sprintf("%d of %d questions unanswered, submit anyway?",
			sheet.UnansweredCount(), sheet.TotalQuestions())
		if a.confirm(msg) {
			break
		}
		open := openQuestions(sheet)
		a.printf("Returning to %d unanswered question(s)\n", len(open))
		if err := a.askQuestions(sheet, open); err != nil {
			return err
		}
	}

	for {
		res, err := sheet.Submit(ctx, a.Client)
		if err == nil {
			a.printResult(ex, res)
			return nil
		}
		if errors.Is(err, api.ErrUnauthorized) {
			return err
		}
		a.printf("Submission failed: %v\n", err)
		if !a.confirm("Retry submission?") {
			a.printf("Submission abandoned\n")
			return nil
		}
	}
}

// askQuestions prompts for the questions at the given exam indices and
// records the answers on the sheet.
func (a *App) askQuestions(sheet *examflow.Sheet, indices []int) error {
	ex := sheet.Exam()
	for _, i := range indices {
		q := ex.Questions[i]
		a.printf("\n%d/%d [%s] %s\n", i+1, len(ex.Questions), q.Type.Label(), q.Text)
		if q.Type.HasImage() {
			a.printf("  (question includes an image, use `export blank` to view it)\n")
		}
		for j, opt := range q.Choices() {
			a.printf("  %c) %s\n", 'a'+j, opt)
		}

		answer, err := a.promptAnswer(q)
		if err != nil {
			return err
		}
		sheet.SetAnswer(q.ID, answer)
	}
	return nil
}

// openQuestions lists the exam indices still without an answer.
func openQuestions(sheet *examflow.Sheet) []int {
	var out []int
	for i, q := range sheet.Exam().Questions {
		if _, ok := sheet.Answer(q.ID); !ok {
			out = append(out, i)
		}
	}
	return out
}

// promptAnswer reads one answer, mapping option letters back to the option
// text for choice questions. Blank input leaves the question unanswered.
func (a *App) promptAnswer(q exam.Question) (string, error) {
	raw, err := a.prompt("Answer (blank to skip)")
	if err != nil {
		return "", err
	}
	if raw == "" {
		return "", nil
	}

	if choices := q.Choices(); len(choices) > 0 && len(raw) == 1 {
		idx := int(strings.ToLower(raw)[0] - 'a')
		if idx >= 0 && idx < len(choices) {
			return choices[idx], nil
		}
	}
	if q.Type == exam.TrueFalse {
		switch strings.ToLower(raw) {
		case "t", "true":
			return "True", nil
		case "f", "false":
			return "False", nil
		}
	}
	return raw, nil
}

func (a *App) runResults(ctx context.Context, _ []string) error {
	agg := dashboard.New(a.Client, a.Logger)
	entries, err := agg.History(ctx)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		a.printf("No results yet\n")
		return nil
	}

	for _, e := range entries {
		a.printf("%s  %3d%%  %-32s %s\n",
			e.Result.SubmittedAt.Format("2006-01-02 15:04"),
			e.Result.RoundedScore(),
			truncate(e.ExamTitle, 32),
			e.Result.ID)
	}
	return nil
}

func (a *App) runResult(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: result RESULT_ID")
	}
	return a.showResult(ctx, args[0])
}

// runOpen is the exam card's click-through: a taken exam opens its stored
// result, an untaken one starts the exam.
func (a *App) runOpen(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: open EXAM_ID")
	}

	agg := dashboard.New(a.Client, a.Logger)
	snap, err := agg.Load(ctx)
	if err != nil {
		return err
	}

	target := snap.ExamTarget(args[0])
	if target.ResultID != "" {
		return a.showResult(ctx, target.ResultID)
	}

	ex, err := a.Client.GetExam(ctx, target.ExamID)
	if err != nil {
		return err
	}
	return a.takeExam(ctx, ex)
}

func (a *App) showResult(ctx context.Context, id string) error {
	res, err := a.Client.GetResult(ctx, id)
	if err != nil {
		return err
	}

	ex, err := a.Client.GetExam(ctx, res.ExamID)
	if err != nil {
		// The exam may have been deleted; the feedback still stands alone.
		ex = &exam.Exam{ID: res.ExamID, Title: result.DeletedExamTitle}
	}

	a.printResult(ex, res)
	return nil
}

func (a *App) printResult(ex *exam.Exam, res *result.Result) {
	a.printf("\n%s: %d%% (%d/%d correct, %d wrong)\n",
		ex.Title, res.RoundedScore(), res.CorrectAnswers, res.TotalQuestions, res.WrongAnswers())

	for i, fb := range res.Feedback {
		mark := "✗"
		if fb.IsCorrect {
			mark = "✓"
		}
		text := fb.QuestionID
		if q, ok := ex.QuestionByID(fb.QuestionID); ok {
			text = q.Text
		}
		a.printf("\n%s %d. %s\n", mark, i+1, text)
		a.printf("   your answer: %s\n", orBlank(fb.UserAnswer))
		if !fb.IsCorrect {
			a.printf("   correct answer: %s\n", fb.CorrectAnswer)
		}
		if fb.Explanation != "" {
			a.printf("   %s\n", fb.Explanation)
		}
	}
}

func orBlank(s string) string {
	if s == "" {
		return "(blank)"
	}
	return s
}

// resolveFolder maps a folder name to its ID, creating nothing. Empty name
// means root.
func (a *App) resolveFolder(ctx context.Context, name string) (string, error) {
	if name == "" {
		return "", nil
	}
	folders, err := a.Client.ListFolders(ctx)
	if err != nil {
		return "", err
	}
	for _, f := range folders {
		if f.Name == name {
			return f.ID, nil
		}
	}
	return "", fmt.Errorf("no folder named %q", name)
}
