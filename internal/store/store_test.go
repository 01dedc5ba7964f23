package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/wordrush/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "wordrush.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func testResult(i int, lang string, score int) model.SessionResult {
	start := time.Unix(0, 0).Add(time.Duration(i) * time.Minute)
	end := start.Add(10 * time.Second)
	return model.SessionResult{
		ID:         fmt.Sprintf("session-%d", i),
		StartedAt:  start,
		EndedAt:    end,
		Lang:       lang,
		WordList:   "builtin",
		Score:      score,
		Keystrokes: 40,
		Misses:     4,
		DurationMs: end.Sub(start).Milliseconds(),
		Chars: []model.CharStats{
			{Char: "a", Correct: 10, Incorrect: 0},
			{Char: "b", Correct: 6, Incorrect: 4},
		},
	}
}

func TestInsertAndListSessions(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	for i, score := range []int{3, 5, 4} {
		if _, err := st.InsertSession(ctx, testResult(i, "en", score)); err != nil {
			t.Fatalf("insert session: %v", err)
		}
	}
	if _, err := st.InsertSession(ctx, testResult(9, "de", 9)); err != nil {
		t.Fatalf("insert session: %v", err)
	}

	sessions, err := st.ListSessions(ctx, model.StatsConfig{Lang: "en"})
	if err != nil {
		t.Fatalf("list sessions: %v", err)
	}
	if len(sessions) != 3 {
		t.Fatalf("expected 3 sessions, got %d", len(sessions))
	}
	if sessions[0].Score != 3 || sessions[2].Score != 4 {
		t.Fatalf("unexpected order: %+v", sessions)
	}
	if sessions[1].Keystrokes != 40 || sessions[1].Misses != 4 || sessions[1].DurationMs != 10000 {
		t.Fatalf("unexpected session fields: %+v", sessions[1])
	}

	since := time.Unix(0, 0).Add(90 * time.Second)
	sessions, err = st.ListSessions(ctx, model.StatsConfig{Lang: "en", Since: &since})
	if err != nil {
		t.Fatalf("list sessions: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("expected 1 session since filter, got %d", len(sessions))
	}
}

func TestInsertSessionRejectsDuplicateID(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	res := testResult(0, "en", 1)
	if _, err := st.InsertSession(ctx, res); err != nil {
		t.Fatalf("insert session: %v", err)
	}
	if _, err := st.InsertSession(ctx, res); err == nil {
		t.Fatalf("expected duplicate uuid to fail")
	}
	sessions, err := st.ListSessions(ctx, model.StatsConfig{})
	if err != nil {
		t.Fatalf("list sessions: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("expected rollback to leave 1 session, got %d", len(sessions))
	}
}

func TestBestScore(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	best, err := st.BestScore(ctx, "")
	if err != nil {
		t.Fatalf("best score: %v", err)
	}
	if best != 0 {
		t.Fatalf("expected 0 for empty store, got %d", best)
	}
	for i, score := range []int{2, 7, 3} {
		if _, err := st.InsertSession(ctx, testResult(i, "en", score)); err != nil {
			t.Fatalf("insert session: %v", err)
		}
	}
	if _, err := st.InsertSession(ctx, testResult(5, "de", 11)); err != nil {
		t.Fatalf("insert session: %v", err)
	}
	if best, _ = st.BestScore(ctx, "en"); best != 7 {
		t.Fatalf("expected best 7, got %d", best)
	}
	if best, _ = st.BestScore(ctx, ""); best != 11 {
		t.Fatalf("expected best 11 across langs, got %d", best)
	}
}

func TestGetWeakChars(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if _, err := st.InsertSession(ctx, testResult(i, "en", 1)); err != nil {
			t.Fatalf("insert session: %v", err)
		}
	}
	aggs, err := st.GetWeakChars(ctx, 2, "en")
	if err != nil {
		t.Fatalf("weak chars: %v", err)
	}
	if len(aggs) != 2 {
		t.Fatalf("expected 2 chars, got %d", len(aggs))
	}
	for _, agg := range aggs {
		if agg.Char == "b" && (agg.Correct != 12 || agg.Incorrect != 8) {
			t.Fatalf("unexpected aggregate for b: %+v", agg)
		}
	}
	if aggs, _ := st.GetWeakChars(ctx, 0, "en"); aggs != nil {
		t.Fatalf("expected no aggregates for zero window")
	}
}

func TestOpenWrapsDirectoryError(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "data")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := Open(filepath.Join(blocker, "wordrush", "wordrush.db"))
	if err == nil {
		t.Fatalf("expected error when parent is a file")
	}
	if !strings.HasPrefix(err.Error(), "failed to create db directory:") {
		t.Fatalf("expected wrapped cause, got %q", err)
	}
}
