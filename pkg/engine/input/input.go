package input

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// LineReader reads newline separated commands, such as a replay script.
type LineReader struct {
	r *bufio.Reader
}

// NewLineReader wraps r
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReader(r)}
}

// ReadLine returns the next non-empty, non-comment line. io.EOF is returned once input is exhausted.
func (l *LineReader) ReadLine() (string, error) {
	for {
		line, err := l.r.ReadString('\n')
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && !strings.HasPrefix(trimmed, "#") {
			return trimmed, nil
		}
		if err != nil {
			return "", err
		}
	}
}

// KeyReader reads single key presses from a terminal in raw mode.
type KeyReader struct {
	f *os.File
}

// NewKeyReader returns a reader for f. It fails if f is not a terminal.
func NewKeyReader(f *os.File) (*KeyReader, error) {
	if !term.IsTerminal(int(f.Fd())) {
		return nil, errors.New("input is not a terminal")
	}
	return &KeyReader{f: f}, nil
}

// ReadKey blocks for one key press and returns its code ("f", "arrow_up", "escape").
// Ctrl+C is reported as "quit".
func (k *KeyReader) ReadKey() (string, error) {
	fd := int(k.f.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return "", err
	}
	defer term.Restore(fd, oldState)

	b1, err := k.readByte()
	if err != nil {
		return "", err
	}

	switch b1 {
	case 3:
		return "quit", nil
	case '\t':
		return "tab", nil
	case ' ':
		return "space", nil
	case '\r', '\n':
		return "interact", nil
	case 0x1b:
		return k.readEscape(), nil
	}
	if b1 >= 32 && b1 < 127 {
		return strings.ToLower(string(b1)), nil
	}
	return "", nil
}

// readEscape decodes an arrow key escape sequence. A lone ESC is "escape".
func (k *KeyReader) readEscape() string {
	b2, err := k.readByte()
	if err != nil || (b2 != '[' && b2 != 'O') {
		return "escape"
	}
	b3, err := k.readByte()
	if err != nil {
		return "escape"
	}
	switch b3 {
	case 'A':
		return "arrow_up"
	case 'B':
		return "arrow_down"
	case 'C':
		return "arrow_right"
	case 'D':
		return "arrow_left"
	}
	// Unknown escape sequence - discard it
	return ""
}

func (k *KeyReader) readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := k.f.Read(buf)
	return buf[0], err
}
