package dashboard_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kadirkilicoglu/PrepAI/internal/api"
	"github.com/kadirkilicoglu/PrepAI/internal/dashboard"
)

type staticToken string

func (s staticToken) Token() (string, error) { return string(s), nil }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// backend builds a stub API serving canned JSON per path. Paths not in the
// map return 500.
func backend(t *testing.T, payloads map[string]any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Declare the content type explicitly or net/http sniffs text/plain
		// and the client skips unmarshaling.
		w.Header().Set("Content-Type", "application/json")
		payload, ok := payloads[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"detail": "boom"})
			return
		}
		json.NewEncoder(w).Encode(payload)
	}))
}

func fullPayloads() map[string]any {
	return map[string]any{
		"/api/exams": []map[string]any{
			{"id": "e1", "title": "Oldest"},
			{"id": "e2", "title": "Middle"},
			{"id": "e3", "title": "Newest"},
		},
		"/api/results": []map[string]any{
			{"id": "r1", "exam_id": "e1", "score": 90.0},
			{"id": "r2", "exam_id": "e2", "score": 40.0},
		},
		"/api/summaries":  []map[string]any{{"id": "s1", "title": "Summary"}},
		"/api/flashcards": []map[string]any{{"id": "c1", "title": "Cards"}},
		"/api/folders":    []map[string]any{{"id": "f1", "name": "Biology"}},
	}
}

func TestLoad_MergesAllCollections(t *testing.T) {
	srv := backend(t, fullPayloads())
	defer srv.Close()

	agg := dashboard.New(api.New(srv.URL, staticToken("tok")), discardLogger())
	snap, err := agg.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(snap.Exams) != 3 {
		t.Errorf("expected 3 exams, got %d", len(snap.Exams))
	}
	if snap.Exams[0].ID != "e3" {
		t.Errorf("expected newest exam first, got %q", snap.Exams[0].ID)
	}
	if len(snap.Summaries) != 1 || len(snap.FlashcardSets) != 1 || len(snap.Folders) != 1 {
		t.Error("expected every collection to be populated")
	}
}

func TestLoad_AverageScore(t *testing.T) {
	srv := backend(t, fullPayloads())
	defer srv.Close()

	agg := dashboard.New(api.New(srv.URL, staticToken("tok")), discardLogger())
	snap, err := agg.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if snap.AverageScore != "65.0" {
		t.Errorf("expected average 65.0, got %q", snap.AverageScore)
	}

	if r, ok := snap.ResultFor("e1"); !ok || r.Score != 90 {
		t.Errorf("expected result for e1 with score 90, got %v %v", r, ok)
	}
	if _, ok := snap.ResultFor("e3"); ok {
		t.Error("expected no result for the untaken exam")
	}
}

func TestLoad_NoResultsSentinel(t *testing.T) {
	payloads := fullPayloads()
	payloads["/api/results"] = []map[string]any{}
	srv := backend(t, payloads)
	defer srv.Close()

	agg := dashboard.New(api.New(srv.URL, staticToken("tok")), discardLogger())
	snap, err := agg.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if snap.AverageScore != dashboard.NoScoreData {
		t.Errorf("expected %q with no results, got %q", dashboard.NoScoreData, snap.AverageScore)
	}
}

func TestLoad_PartialFailureKeepsOtherCollections(t *testing.T) {
	payloads := fullPayloads()
	delete(payloads, "/api/summaries") // that fetch 500s
	srv := backend(t, payloads)
	defer srv.Close()

	agg := dashboard.New(api.New(srv.URL, staticToken("tok")), discardLogger())
	snap, err := agg.Load(context.Background())
	if err != nil {
		t.Fatalf("expected partial success, got %v", err)
	}

	if len(snap.Summaries) != 0 {
		t.Error("expected failed collection to stay empty")
	}
	if len(snap.Exams) != 3 {
		t.Errorf("expected exams to survive the summaries failure, got %d", len(snap.Exams))
	}
}

func TestLoad_UnauthorizedIsFatal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	agg := dashboard.New(api.New(srv.URL, staticToken("expired")), discardLogger())
	if _, err := agg.Load(context.Background()); !errors.Is(err, api.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized, got %v", err)
	}
}

func TestExamTarget(t *testing.T) {
	srv := backend(t, fullPayloads())
	defer srv.Close()

	agg := dashboard.New(api.New(srv.URL, staticToken("tok")), discardLogger())
	snap, err := agg.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	taken := snap.ExamTarget("e1")
	if taken.ResultID != "r1" || taken.ExamID != "" {
		t.Errorf("expected taken exam to lead to its result, got %+v", taken)
	}

	fresh := snap.ExamTarget("e3")
	if fresh.ExamID != "e3" || fresh.ResultID != "" {
		t.Errorf("expected untaken exam to lead to itself, got %+v", fresh)
	}
}

func TestHistory_JoinsTitlesAndSorts(t *testing.T) {
	now := time.Now().UTC()
	payloads := map[string]any{
		"/api/exams": []map[string]any{
			{"id": "e1", "title": "Algebra"},
		},
		"/api/results": []map[string]any{
			{"id": "r1", "exam_id": "e1", "score": 80.0, "submitted_at": now.Add(-time.Hour).Format(time.RFC3339)},
			{"id": "r2", "exam_id": "gone", "score": 55.0, "submitted_at": now.Format(time.RFC3339)},
		},
	}
	srv := backend(t, payloads)
	defer srv.Close()

	agg := dashboard.New(api.New(srv.URL, staticToken("tok")), discardLogger())
	entries, err := agg.History(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	if entries[0].Result.ID != "r2" {
		t.Errorf("expected newest submission first, got %q", entries[0].Result.ID)
	}
	if entries[0].ExamTitle != "Deleted exam" {
		t.Errorf("expected orphaned result to use the deleted-exam title, got %q", entries[0].ExamTitle)
	}
	if entries[1].ExamTitle != "Algebra" {
		t.Errorf("expected joined exam title, got %q", entries[1].ExamTitle)
	}
}
