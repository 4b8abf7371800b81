// internal/shell/export.go
package shell

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/kadirkilicoglu/PrepAI/internal/domain/exam"
	"github.com/kadirkilicoglu/PrepAI/internal/domain/result"
	"github.com/kadirkilicoglu/PrepAI/internal/report"
)

// runExport renders one document as a PDF file. blank takes an exam ID,
// report a result ID, summary a summary ID.
func (a *App) runExport(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.SetOutput(a.Stdout)
	out := fs.String("out", "", "output file (default: derived from the title)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("usage: export blank|report|summary ID [--out FILE]")
	}
	mode, id := fs.Arg(0), fs.Arg(1)

	var (
		data     []byte
		filename string
		err      error
	)
	switch mode {
	case "blank":
		var ex *exam.Exam
		ex, err = a.Client.GetExam(ctx, id)
		if err != nil {
			return err
		}
		data, err = a.Exporter.BlankTest(ex)
		filename = report.Filename(ex.Title, "exam")

	case "report":
		var res *result.Result
		res, err = a.Client.GetResult(ctx, id)
		if err != nil {
			return err
		}
		ex, exErr := a.Client.GetExam(ctx, res.ExamID)
		if exErr != nil {
			// Feedback alone still makes a useful report.
			ex = &exam.Exam{ID: res.ExamID, Title: result.DeletedExamTitle}
		}
		data, err = a.Exporter.ScoredReport(ex, res)
		filename = report.Filename(ex.Title+"_result", "result")

	case "summary":
		s, sErr := a.Client.GetSummary(ctx, id)
		if sErr != nil {
			return sErr
		}
		data, err = a.Exporter.SummaryDocument(s)
		filename = report.Filename(s.Title, "summary")

	default:
		return fmt.Errorf("unknown export mode %q", mode)
	}
	if err != nil {
		return err
	}

	if *out != "" {
		filename = *out
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return err
	}

	a.printf("Wrote %s (%d bytes)\n", filename, len(data))
	return nil
}
