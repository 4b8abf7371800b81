// Package shell is the terminal front end: it dispatches commands, owns the
// prompt/confirm plumbing and maps API failures to user-facing messages.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/kadirkilicoglu/PrepAI/internal/api"
	"github.com/kadirkilicoglu/PrepAI/internal/infrastructure/config"
	"github.com/kadirkilicoglu/PrepAI/internal/report"
	"github.com/kadirkilicoglu/PrepAI/internal/session"
)

// App wires the client, the session store and the exporter to the terminal.
type App struct {
	Config   *config.Config
	Logger   *slog.Logger
	Session  *session.Store
	Client   *api.Client
	Exporter *report.Exporter
	Stdin    io.Reader
	Stdout   io.Writer

	in *bufio.Reader
}

// Route is one top-level command. Protected routes require a stored session
// and force a logout when the backend rejects the token.
type Route struct {
	Name      string
	Usage     string
	Summary   string
	Protected bool
	Run       func(ctx context.Context, args []string) error
}

func (a *App) routes() []Route {
	return []Route{
		{Name: "login", Usage: "login", Summary: "sign in and store the session", Run: a.runLogin},
		{Name: "register", Usage: "register", Summary: "create an account", Run: a.runRegister},
		{Name: "logout", Usage: "logout", Summary: "clear the stored session", Run: a.runLogout},
		{Name: "profile", Usage: "profile [--name NAME] [--avatar FILE]", Summary: "show or update the profile", Protected: true, Run: a.runProfile},
		{Name: "dashboard", Usage: "dashboard [--filter TYPE] [--folder NAME]", Summary: "list exams, summaries and flashcards", Protected: true, Run: a.runDashboard},
		{Name: "create-exam", Usage: "create-exam PDF [--type T] [--difficulty D] [--questions N] [--folder NAME]", Summary: "generate an exam from a PDF", Protected: true, Run: a.runCreateExam},
		{Name: "take", Usage: "take EXAM_ID", Summary: "take an exam interactively", Protected: true, Run: a.runTake},
		{Name: "open", Usage: "open EXAM_ID", Summary: "take an exam, or review its result if already taken", Protected: true, Run: a.runOpen},
		{Name: "results", Usage: "results", Summary: "list past results", Protected: true, Run: a.runResults},
		{Name: "result", Usage: "result RESULT_ID", Summary: "review one result", Protected: true, Run: a.runResult},
		{Name: "summarize", Usage: "summarize PDF [--folder NAME]", Summary: "generate a summary from a PDF", Protected: true, Run: a.runSummarize},
		{Name: "summary", Usage: "summary SUMMARY_ID", Summary: "show one summary", Protected: true, Run: a.runSummary},
		{Name: "flashcards", Usage: "flashcards PDF [--folder NAME]", Summary: "generate flashcards from a PDF", Protected: true, Run: a.runFlashcards},
		{Name: "study", Usage: "study SET_ID", Summary: "flip through a flashcard set", Protected: true, Run: a.runStudy},
		{Name: "folder", Usage: "folder create NAME | folder delete ID", Summary: "manage folders", Protected: true, Run: a.runFolder},
		{Name: "delete", Usage: "delete exam|summary|flashcards ID", Summary: "delete a content item", Protected: true, Run: a.runDelete},
		{Name: "export", Usage: "export blank|report|summary ID [--out FILE]", Summary: "export a document as PDF", Protected: true, Run: a.runExport},
	}
}

// Run dispatches one invocation and returns the process exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		a.usage()
		return 2
	}

	var route *Route
	for _, r := range a.routes() {
		if r.Name == args[0] {
			route = &r
			break
		}
	}
	if route == nil {
		a.printf("unknown command %q\n\n", args[0])
		a.usage()
		return 2
	}

	if route.Protected {
		token, err := a.Session.Token()
		if err != nil {
			a.printf("error: %v\n", err)
			return 1
		}
		if token == "" {
			a.printf("not logged in, run `prepai login` first\n")
			return 1
		}
	}

	if err := route.Run(ctx, args[1:]); err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			if cerr := a.Session.Clear(); cerr != nil {
				a.Logger.Warn("clearing session failed", "error", cerr)
			}
			a.printf("session expired, please log in again\n")
			return 1
		}
		a.printf("error: %v\n", err)
		return 1
	}
	return 0
}

func (a *App) usage() {
	a.printf("usage: prepai COMMAND [ARGS]\n\ncommands:\n")
	routes := a.routes()
	sort.Slice(routes, func(i, j int) bool { return routes[i].Name < routes[j].Name })
	for _, r := range routes {
		a.printf("  %-12s %s\n", r.Name, r.Summary)
	}
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.Stdout, format, args...)
}

func (a *App) reader() *bufio.Reader {
	if a.in == nil {
		a.in = bufio.NewReader(a.Stdin)
	}
	return a.in
}

// prompt prints a label and reads one trimmed line.
func (a *App) prompt(label string) (string, error) {
	a.printf("%s: ", label)
	line, err := a.reader().ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// confirm asks a yes/no question; anything but y/yes declines.
func (a *App) confirm(label string) bool {
	answer, err := a.prompt(label + " [y/N]")
	if err != nil {
		return false
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes"
}
