package runindex

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func openTemp(t *testing.T) *Index {
	t.Helper()
	idx, err := Open(filepath.Join(t.TempDir(), "runs", "index.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = idx.Close() })
	return idx
}

func TestIndex_RecordAndList(t *testing.T) {
	idx := openTemp(t)
	ctx := context.Background()
	run := Run{
		Seed: 42, ConfigHash: "abc", Width: 60, Height: 30, Length: 60,
		Rooms: 10, Corridors: 12, Staircases: 7, Digest: "d1", Duration: 1500 * time.Microsecond,
	}
	if err := idx.Record(ctx, run); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := idx.Record(ctx, Run{Seed: 7, ConfigHash: "abc", Digest: "other"}); err != nil {
		t.Fatalf("Record: %v", err)
	}

	runs, err := idx.Runs(ctx, 42)
	if err != nil {
		t.Fatalf("Runs: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(runs))
	}
	got := runs[0]
	if got.Rooms != 10 || got.Corridors != 12 || got.Staircases != 7 || got.Digest != "d1" {
		t.Errorf("row mismatch: %+v", got)
	}
	if got.Duration != 1500*time.Microsecond {
		t.Errorf("Duration = %v, want 1.5ms", got.Duration)
	}
	if got.RecordedAt.IsZero() {
		t.Error("RecordedAt not set")
	}
}

func TestIndex_DetectsDigestChange(t *testing.T) {
	idx := openTemp(t)
	ctx := context.Background()

	if err := idx.Record(ctx, Run{Seed: 1, ConfigHash: "h", Digest: "aaa"}); err != nil {
		t.Fatal(err)
	}
	if err := idx.Record(ctx, Run{Seed: 1, ConfigHash: "h", Digest: "aaa"}); err != nil {
		t.Errorf("same digest reported %v", err)
	}
	if err := idx.Record(ctx, Run{Seed: 1, ConfigHash: "other", Digest: "bbb"}); err != nil {
		t.Errorf("new config hash reported %v", err)
	}
	err := idx.Record(ctx, Run{Seed: 1, ConfigHash: "h", Digest: "ccc"})
	if !errors.Is(err, ErrDigestChanged) {
		t.Fatalf("Record = %v, want ErrDigestChanged", err)
	}

	runs, _ := idx.Runs(ctx, 1)
	if len(runs) != 4 {
		t.Errorf("got %d runs, want 4 (changed runs are still stored)", len(runs))
	}
}

func TestOpen_EmptyPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Error("Open(\"\") succeeded")
	}
}
