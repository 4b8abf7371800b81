// internal/dashboard/history.go
package dashboard

import (
	"context"
	"errors"
	"sort"

	"github.com/kadirkilicoglu/PrepAI/internal/api"
	"github.com/kadirkilicoglu/PrepAI/internal/domain/result"
	"github.com/kadirkilicoglu/PrepAI/internal/worker"
)

// HistoryEntry is one row of the results page: a stored result joined with
// the title of the exam it belongs to.
type HistoryEntry struct {
	Result    result.Result
	ExamTitle string
}

// History fetches results and exams together and joins them, newest
// submission first. Results whose exam has since been deleted keep their row
// under result.DeletedExamTitle. A failed exam fetch degrades every title
// the same way; a failed results fetch is fatal, there is nothing to show.
func (a *Aggregator) History(ctx context.Context) ([]HistoryEntry, error) {
	var (
		results []result.Result
		titles  = map[string]string{}
	)

	fetchErr := worker.Gather(2, map[string]worker.Job[error]{
		"results": func() error {
			rs, err := a.client.ListResults(ctx)
			if err != nil {
				return err
			}
			results = rs
			return nil
		},
		"exams": func() error {
			xs, err := a.client.ListExams(ctx)
			if err != nil {
				return err
			}
			for _, e := range xs {
				titles[e.ID] = e.Title
			}
			return nil
		},
	})

	for name, err := range fetchErr {
		if err == nil {
			continue
		}
		if errors.Is(err, api.ErrUnauthorized) {
			return nil, api.ErrUnauthorized
		}
		if name == "results" {
			return nil, err
		}
		a.logger.Warn("history fetch failed", "collection", name, "error", err)
	}

	entries := make([]HistoryEntry, 0, len(results))
	for _, r := range results {
		title, ok := titles[r.ExamID]
		if !ok {
			title = result.DeletedExamTitle
		}
		entries = append(entries, HistoryEntry{Result: r, ExamTitle: title})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Result.SubmittedAt.After(entries[j].Result.SubmittedAt)
	})
	return entries, nil
}
