package editor

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Terminal handles terminal-specific operations
type Terminal struct {
	originalState *unix.Termios
}

// NewTerminal creates a new Terminal instance
func NewTerminal() *Terminal {
	return &Terminal{}
}

// Enable raw mode for terminal input.
// This allows us to read every input key and positions the cursor freely.
// VMIN=0/VTIME=1 gives reads a one-decisecond timeout, which readKey relies
// on to detect the end of escape sequences.
func (e *Editor) EnableRawMode() error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("not running in a terminal")
	}

	state, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return fmt.Errorf("enabling terminal raw mode: %w", err)
	}
	saved := *state
	e.terminal.originalState = &saved

	raw := *state
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 1

	if err := unix.IoctlSetTermios(fd, ioctlSetTermios, &raw); err != nil {
		return fmt.Errorf("enabling terminal raw mode: %w", err)
	}
	return nil
}

// Restore the original terminal state, disabling raw mode.
func (e *Editor) RestoreTerminal() {
	if e.terminal != nil && e.terminal.originalState != nil {
		unix.IoctlSetTermios(int(os.Stdin.Fd()), ioctlSetTermios, e.terminal.originalState)
		e.terminal.originalState = nil // Prevent multiple restoration attempts
	}
}

// readByte performs a single read attempt. With VTIME set the read returns
// empty after a decisecond, which os.File surfaces as io.EOF.
func readByte() (byte, bool, error) {
	buf := make([]byte, 1)
	n, err := os.Stdin.Read(buf)
	if n == 1 {
		return buf[0], true, nil
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, false, err
	}
	return 0, false, nil
}

// readKey blocks until one logical key is available, composing escape
// sequences into the synthetic key codes.
func readKey() (int, error) {
	var c byte
	for {
		b, ok, err := readByte()
		if err != nil {
			return 0, errors.New("reading keyboard input")
		}
		if ok {
			c = b
			break
		}
	}

	if c != '\x1b' {
		return int(c), nil
	}

	// Distinguish a lone ESC from an escape sequence: the follow-up bytes
	// either arrive within the read timeout or not at all.
	seq := make([]byte, 3)
	if b, ok, _ := readByte(); ok {
		seq[0] = b
	} else {
		return '\x1b', nil
	}
	if b, ok, _ := readByte(); ok {
		seq[1] = b
	} else {
		return '\x1b', nil
	}

	switch seq[0] {
	case '[':
		if seq[1] >= '0' && seq[1] <= '9' {
			b, ok, _ := readByte()
			if !ok {
				return '\x1b', nil
			}
			seq[2] = b
			if seq[2] == '~' {
				switch seq[1] {
				case '1', '7':
					return HOME_KEY, nil
				case '3':
					return DELETE_KEY, nil
				case '4', '8':
					return END_KEY, nil
				case '5':
					return PAGE_UP, nil
				case '6':
					return PAGE_DOWN, nil
				}
			}
		} else {
			switch seq[1] {
			case 'A':
				return ARROW_UP, nil
			case 'B':
				return ARROW_DOWN, nil
			case 'C':
				return ARROW_RIGHT, nil
			case 'D':
				return ARROW_LEFT, nil
			case 'H':
				return HOME_KEY, nil
			case 'F':
				return END_KEY, nil
			}
		}
	case 'O':
		switch seq[1] {
		case 'H':
			return HOME_KEY, nil
		case 'F':
			return END_KEY, nil
		}
	}
	return '\x1b', nil
}

// getCursorPosition asks the terminal where the cursor is and parses the
// ESC[rows;colsR response.
func getCursorPosition() (int, int, error) {
	if _, err := os.Stdout.Write([]byte(CURSOR_GET_POSITION)); err != nil {
		return 0, 0, err
	}

	buf := make([]byte, 0, 32)
	for len(buf) < 31 {
		b, ok, err := readByte()
		if err != nil || !ok {
			break
		}
		if b == 'R' {
			break
		}
		buf = append(buf, b)
	}

	var rows, cols int
	if n, err := fmt.Sscanf(string(buf), "\x1b[%d;%d", &rows, &cols); n != 2 || err != nil {
		return 0, 0, errors.New("parsing cursor position response")
	}
	return rows, cols, nil
}

// getWindowSize reports the terminal size, falling back to the
// move-to-corner cursor probe when the ioctl is unavailable.
func getWindowSize() (int, int, error) {
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err == nil && cols > 0 {
		return rows, cols, nil
	}

	if _, err := os.Stdout.Write([]byte(CURSOR_BOTTOM_RIGHT)); err != nil {
		return 0, 0, err
	}
	return getCursorPosition()
}
