// Package reference stores zstd-compressed canonical dungeon dumps and
// compares fresh generations against them.
package reference

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
)

var (
	// ErrMismatch reports a dump that differs from its stored reference.
	ErrMismatch = errors.New("canonical output mismatch")
	// ErrNoReference reports that no reference exists for a seed.
	ErrNoReference = errors.New("no reference dump")
)

// Store keeps one compressed dump per seed in a directory.
type Store struct {
	dir string
	// record writes a missing reference instead of reporting ErrNoReference.
	record bool
}

// NewStore creates the directory if needed
func NewStore(dir string, record bool) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("reference dir: %w", err)
	}
	return &Store{dir: dir, record: record}, nil
}

// Path returns the file holding the reference for seed
func (s *Store) Path(seed int64) string {
	return filepath.Join(s.dir, fmt.Sprintf("dungeon-%d.txt.zst", seed))
}

// Write stores dump as the reference for seed, replacing any previous one
func (s *Store) Write(seed int64, dump []byte) error {
	path := s.Path(seed)
	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer os.Remove(tmp)

	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		f.Close()
		return err
	}
	bw := bufio.NewWriterSize(enc, 256*1024)
	if _, err := bw.Write(dump); err != nil {
		enc.Close()
		f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		enc.Close()
		f.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return fmt.Errorf("zstd close: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Read returns the stored reference for seed
func (s *Store) Read(seed int64) ([]byte, error) {
	f, err := os.Open(s.Path(seed))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w for seed %d", ErrNoReference, seed)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	data, err := io.ReadAll(bufio.NewReaderSize(dec, 256*1024))
	if err != nil {
		return nil, fmt.Errorf("zstd read: %w", err)
	}
	return data, nil
}

// Verify compares dump against the reference for seed. In record mode a
// missing reference is written and the check passes.
func (s *Store) Verify(seed int64, dump []byte) error {
	want, err := s.Read(seed)
	if errors.Is(err, ErrNoReference) && s.record {
		return s.Write(seed, dump)
	}
	if err != nil {
		return err
	}
	if bytes.Equal(want, dump) {
		return nil
	}
	line, got, exp := firstDifference(dump, want)
	return fmt.Errorf("%w: seed %d line %d: got %q, want %q", ErrMismatch, seed, line, got, exp)
}

// firstDifference returns the 1-based number and contents of the first differing line.
func firstDifference(a, b []byte) (int, string, string) {
	la := bytes.Split(a, []byte{'\n'})
	lb := bytes.Split(b, []byte{'\n'})
	for i := 0; i < len(la) || i < len(lb); i++ {
		var x, y []byte
		if i < len(la) {
			x = la[i]
		}
		if i < len(lb) {
			y = lb[i]
		}
		if !bytes.Equal(x, y) {
			return i + 1, string(x), string(y)
		}
	}
	return 0, "", ""
}
