package stats

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/wordrush/internal/model"
	"github.com/verte-zerg/wordrush/internal/store"
)

func TestBuildReport(t *testing.T) {
	dir := t.TempDir()
	st, err := store.Open(filepath.Join(dir, "wordrush.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})

	ctx := context.Background()
	var ids []int64
	for i := 0; i < 3; i++ {
		start := time.Unix(0, 0).Add(time.Duration(i) * time.Minute)
		end := start.Add(10 * time.Second)
		res := model.SessionResult{
			ID:         fmt.Sprintf("s%d", i),
			StartedAt:  start,
			EndedAt:    end,
			Lang:       "en",
			WordList:   "builtin",
			Score:      i + 1,
			Keystrokes: 20,
			Misses:     2,
			DurationMs: end.Sub(start).Milliseconds(),
			Chars: []model.CharStats{
				{Char: "a", Correct: 5, Incorrect: 0},
				{Char: "b", Correct: 4, Incorrect: 1},
			},
		}
		id, err := st.InsertSession(ctx, res)
		if err != nil {
			t.Fatalf("insert session: %v", err)
		}
		ids = append(ids, id)
	}

	cfg := model.StatsConfig{
		Lang:        "en",
		Last:        2,
		CurveWindow: 2,
	}
	report, err := BuildReport(ctx, st, cfg)
	if err != nil {
		t.Fatalf("build report: %v", err)
	}
	if len(report.Sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(report.Sessions))
	}
	if report.Sessions[0].SessionID != ids[1] || report.Sessions[1].SessionID != ids[2] {
		t.Fatalf("unexpected session ids: %+v", report.Sessions)
	}
	if len(report.WindowSessionIDs) != 2 {
		t.Fatalf("expected 2 window session ids, got %d", len(report.WindowSessionIDs))
	}
	if len(report.CharAggsWindow) != 2 {
		t.Fatalf("expected char aggregates for window sessions")
	}

	var buf bytes.Buffer
	if err := report.Render(&buf, cfg.CurveWindow, 40); err != nil {
		t.Fatalf("render report: %v", err)
	}
	for _, want := range []string{"Summary", "Best Score: 3", "Score Curve", "Per-Character"} {
		if !strings.Contains(buf.String(), want) {
			t.Fatalf("report missing %q: %s", want, buf.String())
		}
	}
}
