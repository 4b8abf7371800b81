// internal/dashboard/view.go
package dashboard

import (
	"github.com/kadirkilicoglu/PrepAI/internal/domain/exam"
	"github.com/kadirkilicoglu/PrepAI/internal/domain/flashcard"
	"github.com/kadirkilicoglu/PrepAI/internal/domain/folder"
	"github.com/kadirkilicoglu/PrepAI/internal/domain/summary"
)

// Filter selects which content type the dashboard shows.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterExam      Filter = "exam"
	FilterSummary   Filter = "summary"
	FilterFlashcard Filter = "flashcard"
)

// View holds the dashboard's display state: the active type filter and the
// folder the user has drilled into. The zero value is the home view.
type View struct {
	filter Filter
	folder *folder.Folder
}

func NewView() *View {
	return &View{filter: FilterAll}
}

func (v *View) Filter() Filter {
	if v.filter == "" {
		return FilterAll
	}
	return v.filter
}

// Folder returns the open folder, nil at root.
func (v *View) Folder() *folder.Folder {
	return v.folder
}

// Toggle activates a type filter, or deactivates it when it is already the
// active one. Entering any non-all filter leaves the current folder: type
// filters always show the full collection.
func (v *View) Toggle(f Filter) {
	if v.Filter() == f {
		v.filter = FilterAll
		return
	}
	v.filter = f
	if f != FilterAll {
		v.folder = nil
	}
}

func (v *View) OpenFolder(f folder.Folder) {
	v.folder = &f
}

func (v *View) GoHome() {
	v.folder = nil
}

// VisibleExams applies the filter rules: an active exam filter shows every
// exam regardless of folder; the all filter scopes to the open folder, or to
// everything at root; any other type filter hides exams entirely.
func (v *View) VisibleExams(s *Snapshot) []exam.Exam {
	switch v.Filter() {
	case FilterExam:
		return s.Exams
	case FilterAll:
		if v.folder == nil {
			return s.Exams
		}
		var out []exam.Exam
		for _, e := range s.Exams {
			if e.FolderID == v.folder.ID {
				out = append(out, e)
			}
		}
		return out
	default:
		return nil
	}
}

func (v *View) VisibleSummaries(s *Snapshot) []summary.Summary {
	switch v.Filter() {
	case FilterSummary:
		return s.Summaries
	case FilterAll:
		if v.folder == nil {
			return s.Summaries
		}
		var out []summary.Summary
		for _, sm := range s.Summaries {
			if sm.FolderID == v.folder.ID {
				out = append(out, sm)
			}
		}
		return out
	default:
		return nil
	}
}

func (v *View) VisibleFlashcardSets(s *Snapshot) []flashcard.Set {
	switch v.Filter() {
	case FilterFlashcard:
		return s.FlashcardSets
	case FilterAll:
		if v.folder == nil {
			return s.FlashcardSets
		}
		var out []flashcard.Set
		for _, set := range s.FlashcardSets {
			if set.FolderID == v.folder.ID {
				out = append(out, set)
			}
		}
		return out
	default:
		return nil
	}
}

// VisibleFolders lists folders only on the all-filter home view; inside a
// folder or under a type filter the folder cards disappear.
func (v *View) VisibleFolders(s *Snapshot) []folder.Folder {
	if v.Filter() == FilterAll && v.folder == nil {
		return s.Folders
	}
	return nil
}
