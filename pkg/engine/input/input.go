package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"roguelike3d/pkg/engine/terminal"
)

// KeyReader reads key presses and typed words from a terminal
type KeyReader struct {
	in  *os.File
	out io.Writer
	// lines buffers input that is not a terminal
	lines *bufio.Reader
}

// NewKeyReader reads from in and echoes typed text to out
func NewKeyReader(in *os.File, out io.Writer) *KeyReader {
	return &KeyReader{in: in, out: out}
}

// readByte reads a single byte in raw mode
func (k *KeyReader) readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := k.in.Read(buf)
	return buf[0], err
}

// tryReadArrowKey attempts to read an arrow key escape sequence.
// Returns the arrow direction string if successful, empty string otherwise.
func (k *KeyReader) tryReadArrowKey(firstByte byte) string {
	if firstByte != 0x1b {
		return ""
	}

	b2, err := k.readByte()
	if err != nil {
		return "escape"
	}

	// Handle both CSI sequences (ESC [) and SS3 sequences (ESC O)
	if b2 == '[' || b2 == 'O' {
		b3, err := k.readByte()
		if err != nil {
			return ""
		}
		return arrowCode(b3)
	}
	return ""
}

// arrowCode maps the final byte of an arrow escape sequence to its code
func arrowCode(b byte) string {
	switch b {
	case 'A':
		return "arrow_up"
	case 'B':
		return "arrow_down"
	case 'C':
		return "arrow_right"
	case 'D':
		return "arrow_left"
	}
	return ""
}

// ReadCode reads one input code. Arrow keys and single-key bindings return
// immediately; anything else is collected as a word until Enter.
// Ctrl+C returns "ctrl_c".
func (k *KeyReader) ReadCode() (string, error) {
	if !terminal.IsTerminal(k.in) {
		return k.readLine()
	}

	restore, err := terminal.Raw(k.in)
	if err != nil {
		return "", fmt.Errorf("cannot set terminal to raw mode: %w", err)
	}
	defer restore()

	b1, err := k.readByte()
	if err != nil {
		return "", err
	}
	if b1 == 0x1b {
		return k.tryReadArrowKey(b1), nil
	}
	if b1 == 3 {
		return "ctrl_c", nil
	}
	if b1 == '\n' || b1 == '\r' {
		return "", nil
	}
	if isSingleKey(b1) {
		return string(b1), nil
	}

	var typed []byte
	if b1 >= 32 && b1 < 127 {
		typed = append(typed, b1)
		fmt.Fprint(k.out, string(b1))
	}
	for {
		b, err := k.readByte()
		if err != nil {
			break
		}
		if b == 0x1b {
			// arrow keys pressed during text entry are discarded
			k.tryReadArrowKey(b)
			continue
		}
		if b == 127 || b == 8 {
			if len(typed) > 0 {
				typed = typed[:len(typed)-1]
				fmt.Fprint(k.out, "\b \b")
			}
			continue
		}
		if b == '\n' || b == '\r' {
			fmt.Fprint(k.out, "\r\n")
			break
		}
		if b == 3 {
			return "ctrl_c", nil
		}
		if b >= 32 && b < 127 {
			typed = append(typed, b)
			fmt.Fprint(k.out, string(b))
		}
	}
	return string(typed), nil
}

// isSingleKey reports whether a byte is bound on its own and needs no Enter
func isSingleKey(b byte) bool {
	_, ok := bindings[string(b)]
	return ok
}

// readLine reads a whole line when stdin is not a terminal
func (k *KeyReader) readLine() (string, error) {
	if k.lines == nil {
		k.lines = bufio.NewReader(k.in)
	}
	line, err := k.lines.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
