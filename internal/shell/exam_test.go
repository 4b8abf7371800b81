package shell_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kadirkilicoglu/PrepAI/internal/api"
	"github.com/kadirkilicoglu/PrepAI/internal/domain/user"
	"github.com/kadirkilicoglu/PrepAI/internal/infrastructure/config"
	"github.com/kadirkilicoglu/PrepAI/internal/session"
	"github.com/kadirkilicoglu/PrepAI/internal/shell"
)

type submission struct {
	ExamID  string `json:"exam_id"`
	Answers []struct {
		QuestionID string `json:"question_id"`
		UserAnswer string `json:"user_answer"`
	} `json:"answers"`
}

// examBackend serves one two-question exam and records submissions.
func examBackend(t *testing.T, got *submission) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/exams/e1":
			json.NewEncoder(w).Encode(map[string]any{
				"id": "e1", "title": "Biology", "difficulty": "medium",
				"questions": []map[string]any{
					{"id": "q1", "question_text": "Powerhouse of the cell?", "question_type": "open_ended"},
					{"id": "q2", "question_text": "Water crosses membranes via ____.", "question_type": "fill_blank"},
				},
			})
		case "/api/exams/submit":
			if err := json.NewDecoder(r.Body).Decode(got); err != nil {
				t.Errorf("decoding submission: %v", err)
			}
			json.NewEncoder(w).Encode(map[string]any{
				"id": "r1", "exam_id": "e1", "score": 100.0,
				"total_questions": 2, "correct_answers": 2,
			})
		default:
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"detail": "not found"})
		}
	}))
}

func testApp(t *testing.T, baseURL, stdin string) (*shell.App, *bytes.Buffer) {
	t.Helper()

	store, err := session.Open(filepath.Join(t.TempDir(), "session.db"))
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	if err := store.SetSession("tok", &user.User{ID: "u1", FullName: "Ada"}); err != nil {
		t.Fatalf("seeding session: %v", err)
	}

	var out bytes.Buffer
	app := &shell.App{
		Config:  &config.Config{BackendURL: baseURL},
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		Session: store,
		Client:  api.New(baseURL, store),
		Stdin:   strings.NewReader(stdin),
		Stdout:  &out,
	}
	return app, &out
}

func TestTake_DecliningPartialSubmitKeepsAnswers(t *testing.T) {
	var got submission
	srv := examBackend(t, &got)
	defer srv.Close()

	// Answer q1, skip q2, decline the partial submit, then answer q2.
	stdin := "mitochondria\n" + "\n" + "n\n" + "osmosis\n"
	app, out := testApp(t, srv.URL, stdin)

	if code := app.Run(context.Background(), []string{"take", "e1"}); code != 0 {
		t.Fatalf("expected exit 0, got %d\noutput:\n%s", code, out.String())
	}

	if got.ExamID != "e1" || len(got.Answers) != 2 {
		t.Fatalf("expected both answers submitted, got %+v", got)
	}
	if got.Answers[0].QuestionID != "q1" || got.Answers[0].UserAnswer != "mitochondria" {
		t.Errorf("expected the pre-decline answer to survive, got %+v", got.Answers[0])
	}
	if got.Answers[1].QuestionID != "q2" || got.Answers[1].UserAnswer != "osmosis" {
		t.Errorf("expected the follow-up answer, got %+v", got.Answers[1])
	}
	if !strings.Contains(out.String(), "unanswered question") {
		t.Error("expected the flow to announce the return to open questions")
	}
}

func TestOpen_UntakenExamStartsTaking(t *testing.T) {
	var got submission
	// The stub 404s the collection endpoints, so the snapshot holds no
	// result for e1 and open falls through to the taking flow.
	srv := examBackend(t, &got)
	defer srv.Close()

	stdin := "mitochondria\n" + "osmosis\n"
	app, out := testApp(t, srv.URL, stdin)

	if code := app.Run(context.Background(), []string{"open", "e1"}); code != 0 {
		t.Fatalf("expected exit 0, got %d\noutput:\n%s", code, out.String())
	}
	if got.ExamID != "e1" || len(got.Answers) != 2 {
		t.Errorf("expected the exam to be taken and submitted, got %+v", got)
	}
}

func TestOpen_TakenExamShowsResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/results":
			json.NewEncoder(w).Encode([]map[string]any{
				{"id": "r9", "exam_id": "e1", "score": 80.0},
			})
		case "/api/results/r9":
			json.NewEncoder(w).Encode(map[string]any{
				"id": "r9", "exam_id": "e1", "score": 80.0,
				"total_questions": 5, "correct_answers": 4,
			})
		case "/api/exams/e1":
			json.NewEncoder(w).Encode(map[string]any{"id": "e1", "title": "Biology"})
		default:
			json.NewEncoder(w).Encode([]any{})
		}
	}))
	defer srv.Close()

	app, out := testApp(t, srv.URL, "")

	if code := app.Run(context.Background(), []string{"open", "e1"}); code != 0 {
		t.Fatalf("expected exit 0, got %d\noutput:\n%s", code, out.String())
	}
	if !strings.Contains(out.String(), "80%") {
		t.Errorf("expected the stored result to be shown, got:\n%s", out.String())
	}
}

func TestTake_ConfirmedPartialSubmit(t *testing.T) {
	var got submission
	srv := examBackend(t, &got)
	defer srv.Close()

	// Answer q1, skip q2, confirm the partial submit.
	stdin := "mitochondria\n" + "\n" + "y\n"
	app, out := testApp(t, srv.URL, stdin)

	if code := app.Run(context.Background(), []string{"take", "e1"}); code != 0 {
		t.Fatalf("expected exit 0, got %d\noutput:\n%s", code, out.String())
	}

	if len(got.Answers) != 1 || got.Answers[0].QuestionID != "q1" {
		t.Errorf("expected only the answered question in the batch, got %+v", got.Answers)
	}
}
