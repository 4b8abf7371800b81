// internal/dashboard/aggregator.go
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/kadirkilicoglu/PrepAI/internal/api"
	"github.com/kadirkilicoglu/PrepAI/internal/domain/exam"
	"github.com/kadirkilicoglu/PrepAI/internal/domain/flashcard"
	"github.com/kadirkilicoglu/PrepAI/internal/domain/folder"
	"github.com/kadirkilicoglu/PrepAI/internal/domain/result"
	"github.com/kadirkilicoglu/PrepAI/internal/domain/summary"
	"github.com/kadirkilicoglu/PrepAI/internal/worker"
)

// NoScoreData is the average-score sentinel when no results exist. The
// average is never rendered as "0.0" for an empty set.
const NoScoreData = "-"

// Snapshot is one loaded view of the user's content: the five collections
// plus derived state. Collections that failed to fetch are simply empty.
type Snapshot struct {
	Exams         []exam.Exam // newest first
	Summaries     []summary.Summary
	FlashcardSets []flashcard.Set
	Folders       []folder.Folder

	// ResultsByExam keys each result by its exam ID; multiple submissions
	// for one exam collapse to a single entry (last fetched wins).
	ResultsByExam map[string]result.Result
	AverageScore  string // "82.5", or NoScoreData
}

// ResultFor returns the result shown for an exam, if any.
func (s *Snapshot) ResultFor(examID string) (result.Result, bool) {
	r, ok := s.ResultsByExam[examID]
	return r, ok
}

// FolderName resolves a folder ID for display; empty when unknown.
func (s *Snapshot) FolderName(id string) string {
	for _, f := range s.Folders {
		if f.ID == id {
			return f.Name
		}
	}
	return ""
}

// Target is where clicking an exam card leads: the stored result when the
// exam has been taken, the exam itself otherwise.
type Target struct {
	ResultID string // set when the exam has a result ("review")
	ExamID   string // set when it does not ("start")
}

func (s *Snapshot) ExamTarget(examID string) Target {
	if r, ok := s.ResultsByExam[examID]; ok {
		return Target{ResultID: r.ID}
	}
	return Target{ExamID: examID}
}

// Aggregator fetches the dashboard's collections and merges them.
type Aggregator struct {
	client *api.Client
	logger *slog.Logger
}

func New(client *api.Client, logger *slog.Logger) *Aggregator {
	return &Aggregator{client: client, logger: logger}
}

// Load issues the five collection fetches concurrently and joins them with
// all-settled semantics: a failing collection logs and stays empty without
// failing the view. The one exception is a 401 from any source, which
// returns ErrUnauthorized so the caller can clear the session.
func (a *Aggregator) Load(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{
		ResultsByExam: map[string]result.Result{},
		AverageScore:  NoScoreData,
	}
	var results []result.Result

	// Each job writes a distinct snapshot field, so no locking is needed.
	jobs := map[string]worker.Job[error]{
		"exams": func() error {
			xs, err := a.client.ListExams(ctx)
			if err != nil {
				return err
			}
			snap.Exams = newestFirst(xs)
			return nil
		},
		"results": func() error {
			rs, err := a.client.ListResults(ctx)
			if err != nil {
				return err
			}
			results = rs
			return nil
		},
		"summaries": func() error {
			ss, err := a.client.ListSummaries(ctx)
			if err != nil {
				return err
			}
			snap.Summaries = ss
			return nil
		},
		"flashcards": func() error {
			fs, err := a.client.ListFlashcardSets(ctx)
			if err != nil {
				return err
			}
			snap.FlashcardSets = fs
			return nil
		},
		"folders": func() error {
			fs, err := a.client.ListFolders(ctx)
			if err != nil {
				return err
			}
			snap.Folders = fs
			return nil
		},
	}

	for name, err := range worker.Gather(len(jobs), jobs) {
		if err == nil {
			continue
		}
		if errors.Is(err, api.ErrUnauthorized) {
			return nil, api.ErrUnauthorized
		}
		a.logger.Warn("dashboard fetch failed", "collection", name, "error", err)
	}

	snap.ResultsByExam, snap.AverageScore = buildResultIndex(results)
	return snap, nil
}

// buildResultIndex keys results by exam ID and computes the mean score to
// one decimal place. Keeping the collapse here makes a future
// most-recent-by-timestamp policy a local change.
func buildResultIndex(results []result.Result) (map[string]result.Result, string) {
	index := make(map[string]result.Result, len(results))
	total := 0.0
	for _, r := range results {
		index[r.ExamID] = r
		total += r.Score
	}
	if len(results) == 0 {
		return index, NoScoreData
	}
	return index, fmt.Sprintf("%.1f", total/float64(len(results)))
}

// newestFirst reverses the backend's insertion order for display.
func newestFirst(exams []exam.Exam) []exam.Exam {
	out := make([]exam.Exam, len(exams))
	for i, e := range exams {
		out[len(exams)-1-i] = e
	}
	return out
}
