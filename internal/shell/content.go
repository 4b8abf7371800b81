// internal/shell/content.go
package shell

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kadirkilicoglu/PrepAI/internal/domain/flashcard"
	"github.com/kadirkilicoglu/PrepAI/internal/upload"
)

func (a *App) runSummarize(ctx context.Context, args []string) error {
	path, folderID, err := a.parseUpload(ctx, "summarize", args)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	a.printf("Generating summary, this can take a while...\n")
	s, err := a.Client.GenerateSummary(ctx, f, filepath.Base(path), folderID)
	if err != nil {
		return err
	}

	a.printf("Created summary %q (id %s)\n\n%s\n", s.Title, s.ID, s.Content)
	return nil
}

func (a *App) runSummary(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: summary SUMMARY_ID")
	}
	s, err := a.Client.GetSummary(ctx, args[0])
	if err != nil {
		return err
	}
	a.printf("%s\n\n%s\n", s.Title, s.Content)
	return nil
}

func (a *App) runFlashcards(ctx context.Context, args []string) error {
	path, folderID, err := a.parseUpload(ctx, "flashcards", args)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	a.printf("Generating flashcards, this can take a while...\n")
	set, err := a.Client.GenerateFlashcards(ctx, f, filepath.Base(path), folderID)
	if err != nil {
		return err
	}

	a.printf("Created set %q with %d cards (id %s)\n", set.Title, len(set.Cards), set.ID)
	return nil
}

// runStudy is the interactive card viewer: next/prev move through the set
// (bounded, flip state resets), flip shows the other side.
func (a *App) runStudy(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: study SET_ID")
	}

	set, err := a.Client.GetFlashcardSet(ctx, args[0])
	if err != nil {
		return err
	}
	if len(set.Cards) == 0 {
		a.printf("Set %q has no cards\n", set.Title)
		return nil
	}

	v := flashcard.NewViewer(set)
	a.printf("%s: %d cards. Commands: n(ext), p(rev), f(lip), q(uit)\n", set.Title, v.Count())

	for {
		a.showCard(v)
		cmd, err := a.prompt("command")
		if err != nil {
			return nil
		}
		switch strings.ToLower(cmd) {
		case "n", "next":
			if !v.Next() {
				a.printf("Already at the last card\n")
			}
		case "p", "prev":
			if !v.Prev() {
				a.printf("Already at the first card\n")
			}
		case "f", "flip":
			v.Flip()
		case "q", "quit", "":
			return nil
		default:
			a.printf("unknown command %q\n", cmd)
		}
	}
}

func (a *App) showCard(v *flashcard.Viewer) {
	card := v.Card()
	side, text := "term", card.Term
	if v.Flipped() {
		side, text = "definition", card.Definition
	}
	a.printf("\n[%d/%d, %d%%] %s: %s\n", v.Index()+1, v.Count(), v.Progress(), side, text)
}

func (a *App) runFolder(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: folder create NAME | folder delete ID")
	}
	switch args[0] {
	case "create":
		if len(args) != 2 {
			return fmt.Errorf("usage: folder create NAME")
		}
		f, err := a.Client.CreateFolder(ctx, args[1])
		if err != nil {
			return err
		}
		a.printf("Created folder %q (id %s)\n", f.Name, f.ID)
		return nil
	case "delete":
		if len(args) != 2 {
			return fmt.Errorf("usage: folder delete ID")
		}
		if !a.confirm("Delete folder and keep its content at root?") {
			a.printf("Cancelled\n")
			return nil
		}
		if err := a.Client.DeleteFolder(ctx, args[1]); err != nil {
			return err
		}
		a.printf("Folder deleted\n")
		return nil
	}
	return fmt.Errorf("unknown folder subcommand %q", args[0])
}

// runDelete removes one content item after confirmation and reports the
// remaining count from a fresh fetch.
func (a *App) runDelete(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: delete exam|summary|flashcards ID")
	}
	kind, id := args[0], args[1]

	if !a.confirm(fmt.Sprintf("Delete %s %s?", kind, id)) {
		a.printf("Cancelled\n")
		return nil
	}

	switch kind {
	case "exam":
		if err := a.Client.DeleteExam(ctx, id); err != nil {
			return err
		}
		remaining, err := a.Client.ListExams(ctx)
		if err != nil {
			return err
		}
		a.printf("Exam deleted, %d remaining\n", len(remaining))
	case "summary":
		if err := a.Client.DeleteSummary(ctx, id); err != nil {
			return err
		}
		remaining, err := a.Client.ListSummaries(ctx)
		if err != nil {
			return err
		}
		a.printf("Summary deleted, %d remaining\n", len(remaining))
	case "flashcards":
		if err := a.Client.DeleteFlashcardSet(ctx, id); err != nil {
			return err
		}
		remaining, err := a.Client.ListFlashcardSets(ctx)
		if err != nil {
			return err
		}
		a.printf("Flashcard set deleted, %d remaining\n", len(remaining))
	default:
		return fmt.Errorf("unknown content kind %q", kind)
	}
	return nil
}

// parseUpload handles the shared PDF + --folder argument shape of the
// generation commands.
func (a *App) parseUpload(ctx context.Context, name string, args []string) (path, folderID string, err error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.Stdout)
	folderName := fs.String("folder", "", "store the result in this folder")
	if err := fs.Parse(args); err != nil {
		return "", "", err
	}
	if fs.NArg() != 1 {
		return "", "", fmt.Errorf("usage: %s PDF [--folder NAME]", name)
	}

	path = fs.Arg(0)
	if err := upload.CheckPDF(path); err != nil {
		return "", "", err
	}
	folderID, err = a.resolveFolder(ctx, *folderName)
	if err != nil {
		return "", "", err
	}
	return path, folderID, nil
}
