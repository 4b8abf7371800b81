// internal/shell/dashboard.go
package shell

import (
	"context"
	"flag"
	"fmt"

	"github.com/kadirkilicoglu/PrepAI/internal/dashboard"
	"github.com/kadirkilicoglu/PrepAI/internal/domain/result"
)

func (a *App) runDashboard(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("dashboard", flag.ContinueOnError)
	fs.SetOutput(a.Stdout)
	filter := fs.String("filter", "all", "content filter: all, exam, summary, flashcard")
	folderName := fs.String("folder", "", "show only this folder's content")
	if err := fs.Parse(args); err != nil {
		return err
	}

	agg := dashboard.New(a.Client, a.Logger)
	snap, err := agg.Load(ctx)
	if err != nil {
		return err
	}

	view := dashboard.NewView()
	switch dashboard.Filter(*filter) {
	case dashboard.FilterAll:
	case dashboard.FilterExam, dashboard.FilterSummary, dashboard.FilterFlashcard:
		view.Toggle(dashboard.Filter(*filter))
	default:
		return fmt.Errorf("unknown filter %q", *filter)
	}
	if *folderName != "" {
		found := false
		for _, f := range snap.Folders {
			if f.Name == *folderName {
				view.OpenFolder(f)
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("no folder named %q", *folderName)
		}
	}

	a.printf("Average score: %s\n", snap.AverageScore)

	if folders := view.VisibleFolders(snap); len(folders) > 0 {
		a.printf("\nFolders:\n")
		for _, f := range folders {
			a.printf("  %-24s %s\n", f.Name, f.ID)
		}
	}

	if exams := view.VisibleExams(snap); len(exams) > 0 {
		a.printf("\nExams:\n")
		for _, e := range exams {
			status := "not taken"
			if r, ok := snap.ResultFor(e.ID); ok {
				status = fmt.Sprintf("%d%% (%s)", r.RoundedScore(), result.TierFor(r.Score))
			}
			a.printf("  %-32s %-12s %-10s %s\n", truncate(e.Title, 32), e.Difficulty, status, e.ID)
		}
	}

	if summaries := view.VisibleSummaries(snap); len(summaries) > 0 {
		a.printf("\nSummaries:\n")
		for _, s := range summaries {
			a.printf("  %-32s %s\n", truncate(s.Title, 32), s.ID)
		}
	}

	if sets := view.VisibleFlashcardSets(snap); len(sets) > 0 {
		a.printf("\nFlashcard sets:\n")
		for _, s := range sets {
			a.printf("  %-32s %3d cards  %s\n", truncate(s.Title, 32), len(s.Cards), s.ID)
		}
	}

	return nil
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
