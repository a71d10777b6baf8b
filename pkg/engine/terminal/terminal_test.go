package terminal

import (
	"os"
	"testing"
)

func TestSize_NotATerminal(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	defer w.Close()

	if IsTerminal(w) {
		t.Fatal("pipe reported as terminal")
	}
	width, height := Size(w)
	if width != DefaultWidth || height != DefaultHeight {
		t.Errorf("Size = %dx%d, want %dx%d", width, height, DefaultWidth, DefaultHeight)
	}
	if _, err := Raw(w); err == nil {
		t.Error("Raw on a pipe succeeded")
	}
}
