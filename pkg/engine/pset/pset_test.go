package pset

import (
	"math/rand"
	"testing"
)

func TestSet_BranchIsolation(t *testing.T) {
	for _, b := range AllBackends() {
		t.Run(string(b), func(t *testing.T) {
			base := Empty(b).Insert(1).Insert(100).Insert(4096)
			left := base.Insert(7)
			right := base.Insert(9).Insert(1 << 30)

			if base.Contains(7) || base.Contains(9) || base.Contains(1<<30) {
				t.Error("base observed a later insertion")
			}
			if left.Contains(9) || left.Contains(1<<30) {
				t.Error("left branch observed right branch insertions")
			}
			if right.Contains(7) {
				t.Error("right branch observed left branch insertion")
			}
			for _, k := range []uint32{1, 100, 4096} {
				if !left.Contains(k) || !right.Contains(k) {
					t.Errorf("branches lost shared key %d", k)
				}
			}
			if base.Len() != 3 || left.Len() != 4 || right.Len() != 5 {
				t.Errorf("Len() = %d/%d/%d, want 3/4/5", base.Len(), left.Len(), right.Len())
			}
		})
	}
}

func TestSet_MatchesMap(t *testing.T) {
	for _, b := range AllBackends() {
		t.Run(string(b), func(t *testing.T) {
			r := rand.New(rand.NewSource(11))
			s := Empty(b)
			want := make(map[uint32]bool)
			for i := 0; i < 3000; i++ {
				var k uint32
				switch i % 3 {
				case 0:
					k = r.Uint32()
				case 1:
					k = uint32(r.Intn(256))
				default:
					k = r.Uint32() & 0xFFE0_07FF
				}
				s = s.Insert(k)
				want[k] = true
			}
			if s.Len() != len(want) {
				t.Errorf("Len() = %d, want %d", s.Len(), len(want))
			}
			for k := range want {
				if !s.Contains(k) {
					t.Fatalf("Contains(%d) = false after insert", k)
				}
			}
			for i := 0; i < 3000; i++ {
				k := r.Uint32()
				if got := s.Contains(k); got != want[k] {
					t.Fatalf("Contains(%d) = %v, want %v", k, got, want[k])
				}
			}
		})
	}
}

func TestSet_InsertExistingKeepsVersion(t *testing.T) {
	for _, b := range AllBackends() {
		s := Empty(b).Insert(5)
		if s.Insert(5) != s {
			t.Errorf("%s: re-inserting a key created a new version", b)
		}
	}
}

func TestSet_ClearIsEmpty(t *testing.T) {
	for _, b := range AllBackends() {
		s := Empty(b).Insert(3).Insert(70000)
		c := s.Clear()
		if c.Len() != 0 || c.Contains(3) {
			t.Errorf("%s: Clear() not empty", b)
		}
		if !s.Contains(70000) {
			t.Errorf("%s: Clear() mutated the original version", b)
		}
	}
}

func TestMeasured_CountsAcrossVersions(t *testing.T) {
	var stats Stats
	s := Set(NewMeasured(Empty(Patricia), &stats))
	s = s.Insert(1)
	s = s.Insert(1)
	s = s.Insert(2)
	s.Contains(2)
	s.Contains(3)
	s = s.Clear()

	if stats.Inserts != 3 || stats.Versions != 2 {
		t.Errorf("inserts=%d versions=%d, want 3 and 2", stats.Inserts, stats.Versions)
	}
	if stats.Contains != 2 || stats.Clears != 1 {
		t.Errorf("contains=%d clears=%d, want 2 and 1", stats.Contains, stats.Clears)
	}
	if s.Len() != 0 {
		t.Errorf("Len() after Clear = %d", s.Len())
	}
}

func TestBackend_Validate(t *testing.T) {
	if err := Patricia.Validate(); err != nil {
		t.Error(err)
	}
	if err := Backend("btree").Validate(); err == nil {
		t.Error("unknown backend accepted")
	}
}
