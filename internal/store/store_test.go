package store

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil db")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is covered by the file-based test below.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestFileStoreUsesWAL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uxlab.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	var mode string
	if err := s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatalf("PRAGMA journal_mode: %v", err)
	}
	if mode != "wal" {
		t.Errorf("journal_mode = %q, want wal", mode)
	}
}

func TestMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)

	for _, table := range []string{"kv_entries", "llm_events"} {
		var name string
		err := s.DB().QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("query sqlite_master for %s: %v", table, err)
		}
	}
}

func TestKVGetMissing(t *testing.T) {
	s := openTestStore(t)

	got, err := s.KVRepo().Get(context.Background(), "nope")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for missing key, got %q", got)
	}
}

func TestKVPutOverwrites(t *testing.T) {
	s := openTestStore(t)
	repo := s.KVRepo()
	ctx := context.Background()

	if err := repo.Put(ctx, "k", []byte("first")); err != nil {
		t.Fatalf("put first: %v", err)
	}
	if err := repo.Put(ctx, "k", []byte("second")); err != nil {
		t.Fatalf("put second: %v", err)
	}

	got, err := repo.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != "second" {
		t.Errorf("value = %q, want %q", got, "second")
	}

	var count int
	if err := s.DB().QueryRow("SELECT COUNT(*) FROM kv_entries").Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("rows = %d, want 1", count)
	}
}

func TestKVDelete(t *testing.T) {
	s := openTestStore(t)
	repo := s.KVRepo()
	ctx := context.Background()

	if err := repo.Put(ctx, "k", []byte("v")); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := repo.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete absent: %v", err)
	}

	got, err := repo.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil after delete, got %q", got)
	}
}

func TestKVSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uxlab.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.KVRepo().Put(ctx, "heuristics-game", []byte(`{"experience":250}`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	got, err := s.KVRepo().Get(ctx, "heuristics-game")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != `{"experience":250}` {
		t.Errorf("value = %q", got)
	}
}

func TestLLMEventsAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "mock", Model: "m1", Purpose: "chat", InputTokens: 10, OutputTokens: 5, LatencyMs: 100, Success: true},
		{Provider: "mock", Model: "m1", Purpose: "chat", InputTokens: 20, OutputTokens: 15, LatencyMs: 300, Success: true},
		{Provider: "mock", Model: "m2", Purpose: "ask", InputTokens: 7, OutputTokens: 0, LatencyMs: 50, Success: false, ErrorMessage: "boom"},
	}
	for i, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	all, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("events = %d, want 3", len(all))
	}
	if all[0].Purpose != "ask" {
		t.Errorf("newest purpose = %q, want ask", all[0].Purpose)
	}
	if all[0].Success {
		t.Error("expected failed event to round-trip success=false")
	}

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1, Purpose: "chat"})
	if err != nil {
		t.Fatalf("query limited: %v", err)
	}
	if len(limited) != 1 || limited[0].InputTokens != 20 {
		t.Errorf("limited query = %+v", limited)
	}

	got, err := repo.GetLLMEvent(ctx, all[2].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.InputTokens != 10 {
		t.Errorf("get = %+v", got)
	}

	missing, err := repo.GetLLMEvent(ctx, 9999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing event")
	}
}

func TestLLMUsageAggregates(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, e := range []LLMRequestEventData{
		{Model: "m1", Purpose: "chat", InputTokens: 10, OutputTokens: 5, LatencyMs: 100, Success: true},
		{Model: "m1", Purpose: "chat", InputTokens: 20, OutputTokens: 15, LatencyMs: 300, Success: true},
		{Model: "m2", Purpose: "ask", InputTokens: 7, LatencyMs: 50, Success: false},
	} {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("purposes = %d, want 2", len(byPurpose))
	}
	chat := byPurpose[1]
	if chat.Purpose != "chat" || chat.Calls != 2 || chat.InputTokens != 30 || chat.AvgLatencyMs != 200 {
		t.Errorf("chat usage = %+v", chat)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("by model: %v", err)
	}
	if len(byModel) != 1 || byModel[0].Model != "m1" || byModel[0].OutputTokens != 20 {
		t.Errorf("model usage = %+v", byModel)
	}
}
