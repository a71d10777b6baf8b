package reference

import (
	"errors"
	"os"
	"strings"
	"testing"
)

func TestStore_WriteReadRoundTrip(t *testing.T) {
	s, err := NewStore(t.TempDir(), false)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	dump := []byte(strings.Repeat("0 0\n1 2\n", 1000))
	if err := s.Write(42, dump); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := s.Read(42)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(got) != string(dump) {
		t.Fatalf("Read returned %d bytes, want %d", len(got), len(dump))
	}
	info, err := os.Stat(s.Path(42))
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if info.Size() >= int64(len(dump)) {
		t.Errorf("compressed size %d not below raw size %d", info.Size(), len(dump))
	}
}

func TestStore_VerifyMissing(t *testing.T) {
	s, _ := NewStore(t.TempDir(), false)
	if err := s.Verify(7, []byte("x\n")); !errors.Is(err, ErrNoReference) {
		t.Errorf("Verify without reference = %v, want ErrNoReference", err)
	}
}

func TestStore_VerifyRecordsThenMatches(t *testing.T) {
	s, _ := NewStore(t.TempDir(), true)
	dump := []byte("0 1\n1 2\n")
	if err := s.Verify(7, dump); err != nil {
		t.Fatalf("recording Verify = %v", err)
	}
	if err := s.Verify(7, dump); err != nil {
		t.Errorf("second Verify = %v, want match", err)
	}
}

func TestStore_VerifyMismatch(t *testing.T) {
	s, _ := NewStore(t.TempDir(), false)
	if err := s.Write(3, []byte("0 1\n1 2\n2 0\n")); err != nil {
		t.Fatal(err)
	}
	err := s.Verify(3, []byte("0 1\n1 5\n2 0\n"))
	if !errors.Is(err, ErrMismatch) {
		t.Fatalf("Verify = %v, want ErrMismatch", err)
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("mismatch error %q does not name line 2", err)
	}
}

func TestStore_VerifyCorruptReference(t *testing.T) {
	s, _ := NewStore(t.TempDir(), true)
	if err := os.WriteFile(s.Path(9), []byte("not zstd"), 0o644); err != nil {
		t.Fatal(err)
	}
	err := s.Verify(9, []byte("0 1\n"))
	if err == nil || errors.Is(err, ErrNoReference) || errors.Is(err, ErrMismatch) {
		t.Errorf("Verify on corrupt reference = %v, want a read error", err)
	}
}
