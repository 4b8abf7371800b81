package dashboard_test

import (
	"testing"

	"github.com/kadirkilicoglu/PrepAI/internal/dashboard"
	"github.com/kadirkilicoglu/PrepAI/internal/domain/exam"
	"github.com/kadirkilicoglu/PrepAI/internal/domain/flashcard"
	"github.com/kadirkilicoglu/PrepAI/internal/domain/folder"
	"github.com/kadirkilicoglu/PrepAI/internal/domain/summary"
)

func testSnapshot() *dashboard.Snapshot {
	return &dashboard.Snapshot{
		Exams: []exam.Exam{
			{ID: "e1", Title: "Root exam"},
			{ID: "e2", Title: "Filed exam", FolderID: "f1"},
		},
		Summaries: []summary.Summary{
			{ID: "s1", Title: "Root summary"},
			{ID: "s2", Title: "Filed summary", FolderID: "f1"},
		},
		FlashcardSets: []flashcard.Set{
			{ID: "c1", Title: "Root set"},
		},
		Folders: []folder.Folder{
			{ID: "f1", Name: "Biology"},
		},
	}
}

func TestToggle_SameFilterDeactivates(t *testing.T) {
	v := dashboard.NewView()

	v.Toggle(dashboard.FilterExam)
	if v.Filter() != dashboard.FilterExam {
		t.Fatalf("expected exam filter, got %q", v.Filter())
	}

	v.Toggle(dashboard.FilterExam)
	if v.Filter() != dashboard.FilterAll {
		t.Errorf("expected toggling twice to return to all, got %q", v.Filter())
	}
}

func TestToggle_SwitchingFiltersDirectly(t *testing.T) {
	v := dashboard.NewView()

	v.Toggle(dashboard.FilterExam)
	v.Toggle(dashboard.FilterSummary)
	if v.Filter() != dashboard.FilterSummary {
		t.Errorf("expected summary filter, got %q", v.Filter())
	}
}

func TestToggle_TypeFilterLeavesFolder(t *testing.T) {
	v := dashboard.NewView()
	v.OpenFolder(folder.Folder{ID: "f1", Name: "Biology"})

	v.Toggle(dashboard.FilterExam)
	if v.Folder() != nil {
		t.Error("expected entering a type filter to leave the folder")
	}
}

func TestVisibleExams_TypeFilterIgnoresFolder(t *testing.T) {
	snap := testSnapshot()
	v := dashboard.NewView()

	v.Toggle(dashboard.FilterExam)
	if got := v.VisibleExams(snap); len(got) != 2 {
		t.Errorf("expected all 2 exams under the exam filter, got %d", len(got))
	}
}

func TestVisibleExams_FolderScoped(t *testing.T) {
	snap := testSnapshot()
	v := dashboard.NewView()
	v.OpenFolder(snap.Folders[0])

	got := v.VisibleExams(snap)
	if len(got) != 1 || got[0].ID != "e2" {
		t.Errorf("expected only the filed exam, got %v", got)
	}
}

func TestVisibleExams_HiddenUnderOtherFilter(t *testing.T) {
	snap := testSnapshot()
	v := dashboard.NewView()

	v.Toggle(dashboard.FilterSummary)
	if got := v.VisibleExams(snap); got != nil {
		t.Errorf("expected no exams under the summary filter, got %v", got)
	}
}

func TestVisibleSummaries_RootShowsEverything(t *testing.T) {
	snap := testSnapshot()
	v := dashboard.NewView()

	if got := v.VisibleSummaries(snap); len(got) != 2 {
		t.Errorf("expected 2 summaries at root, got %d", len(got))
	}
}

func TestVisibleFolders_OnlyOnHomeView(t *testing.T) {
	snap := testSnapshot()
	v := dashboard.NewView()

	if got := v.VisibleFolders(snap); len(got) != 1 {
		t.Fatalf("expected folder card at root, got %d", len(got))
	}

	v.OpenFolder(snap.Folders[0])
	if got := v.VisibleFolders(snap); got != nil {
		t.Error("expected no folder cards inside a folder")
	}

	v.GoHome()
	v.Toggle(dashboard.FilterExam)
	if got := v.VisibleFolders(snap); got != nil {
		t.Error("expected no folder cards under a type filter")
	}
}

func TestGoHome_ClearsFolder(t *testing.T) {
	v := dashboard.NewView()
	v.OpenFolder(folder.Folder{ID: "f1"})
	v.GoHome()

	if v.Folder() != nil {
		t.Error("expected GoHome to clear the folder")
	}
}
