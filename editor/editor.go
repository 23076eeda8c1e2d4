package editor

import (
	"fmt"
	"os"
	"time"
)

/*** helper ***/

// Config Constants
const (
	CCODE_VERSION = "1.0.0"
	TAB_STOP      = 4
	QUIT_TIMES    = 3
	LINENUM_WIDTH = 5
)

// Key aliase
const (
	BACKSPACE = 127 // ASCII backspace
)

// Synthetic key codes composed from escape sequences
const (
	ARROW_LEFT = iota + 1000
	ARROW_RIGHT
	ARROW_UP
	ARROW_DOWN
	DELETE_KEY
	HOME_KEY
	END_KEY
	PAGE_UP
	PAGE_DOWN
)

// Check if the byte is a control character
func isControl(c byte) bool {
	return c < 32 || c == 127
}

// Check if the byte is a digit character
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Convert a character to its control key equivalent
func withControlKey(c int) int {
	return c & 0x1f // 0x1f is 31 in decimal, which is the control character range
}

/*** data ***/

// Editor modes
const (
	EDIT_MODE = iota
	EXPLORER_MODE
	HELP_MODE
)

// Editor represents the text editor state
type Editor struct {
	cx, cy            int
	rx                int
	rowOffset         int
	colOffset         int
	screenRows        int
	screenCols        int
	totalRows         int
	row               []editorRow
	dirty             int // captures if and how much edits are made
	filename          string
	statusMessage     string
	statusMessageTime time.Time
	syntax            *editorSyntax
	mode              int
	quitTimes         int
	undo              []undoRecord
	redo              []undoRecord
	search            searchState
	terminal          *Terminal
}

/*** terminal ***/

// Die restores the terminal, prints an error message and exits the program
func (e *Editor) Die(format string, args ...any) {
	e.RestoreTerminal()
	os.Stdout.Write([]byte(CLEAR_SCREEN))
	os.Stdout.Write([]byte(CURSOR_HOME))
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// ShowError displays an error message in the status bar instead of terminating
func (e *Editor) ShowError(format string, args ...any) {
	e.SetStatusMessage("Warn: "+format, args...)
}

// Redraw re-probes the window size and repaints the frame.
func (e *Editor) Redraw() {
	rows, cols, err := getWindowSize()
	if err != nil {
		e.ShowError("%v", err)
		return
	}
	e.screenRows = rows - 2 // Adjust for status bar and message bar
	e.screenCols = cols
	e.RefreshScreen()
}

/*** editor operations ***/

func (e *Editor) InsertChar(c int) {
	if e.cy == e.totalRows {
		e.InsertRow(e.totalRows, nil)
	}
	e.row[e.cy].insertChar(e, e.cx, byte(c))
	e.recordUndo(undoRecord{kind: RECORD_DELETE_CHAR, x: e.cx, y: e.cy, text: []byte{byte(c)}})
	e.cx++
}

func (e *Editor) InsertNewline() {
	if e.cx == 0 {
		e.InsertRow(e.cy, nil)
	} else {
		row := &e.row[e.cy]

		// Insert new row with the text from cursor to end of line
		remainingText := append([]byte(nil), row.chars[e.cx:]...)
		e.InsertRow(e.cy+1, remainingText)

		// Truncate current row to the text before the cursor
		row = &e.row[e.cy]
		row.chars = row.chars[:e.cx]
		row.update(e)
	}
	e.cy++
	e.cx = 0
}

func (e *Editor) DeleteChar() {
	if e.cy == e.totalRows {
		return
	}
	if e.cx == 0 && e.cy == 0 {
		return
	}

	row := &e.row[e.cy]
	if e.cx > 0 {
		deleted := row.chars[e.cx-1]
		row.deleteChar(e, e.cx-1)
		e.recordUndo(undoRecord{kind: RECORD_INSERT_CHAR, x: e.cx - 1, y: e.cy, text: []byte{deleted}})
		e.cx--
	} else {
		// Join the current row onto the previous one
		e.cx = len(e.row[e.cy-1].chars)
		e.row[e.cy-1].appendBytes(e, row.chars)
		e.DeleteRow(e.cy)
		e.cy--
	}
}

/*** input ***/

// Prompt displays a single-line modal prompt in the status bar. The callback,
// if given, is invoked with the buffer after every keypress. Returns false
// when the prompt was cancelled with ESC.
func (e *Editor) Prompt(prompt string, callback func([]byte, int)) (string, bool) {
	buf := make([]byte, 0, 128)

	for {
		e.SetStatusMessage(prompt, string(buf))
		e.RefreshScreen()

		key, err := readKey()
		if err != nil {
			e.Die("reading key: %v", err)
		}

		switch key {
		case DELETE_KEY, BACKSPACE, withControlKey('h'):
			if len(buf) != 0 {
				buf = buf[:len(buf)-1]
			}

		case '\x1b':
			e.SetStatusMessage("")
			if callback != nil {
				callback(buf, key)
			}
			return "", false

		case '\r':
			if len(buf) != 0 {
				e.SetStatusMessage("")
				if callback != nil {
					callback(buf, key)
				}
				return string(buf), true
			}

		default:
			if key < 128 && !isControl(byte(key)) {
				buf = append(buf, byte(key))
			}
		}

		if callback != nil {
			callback(buf, key)
		}
	}
}

func (e *Editor) MoveCursor(key int) {
	var row *editorRow
	if e.cy < e.totalRows {
		row = &e.row[e.cy]
	}

	switch key {
	case ARROW_LEFT:
		if e.cx != 0 {
			e.cx--
		} else if e.cy > 0 {
			e.cy--
			e.cx = len(e.row[e.cy].chars)
		}
	case ARROW_RIGHT:
		if row != nil && e.cx < len(row.chars) {
			e.cx++
		} else if row != nil && e.cx == len(row.chars) {
			e.cy++
			e.cx = 0
		}
	case ARROW_UP:
		if e.cy != 0 {
			e.cy--
		}
	case ARROW_DOWN:
		if e.cy < e.totalRows {
			e.cy++
		}
	}

	// Snap cursor_x to the end of the new row
	rowlen := 0
	if e.cy < e.totalRows {
		rowlen = len(e.row[e.cy].chars)
	}
	if e.cx > rowlen {
		e.cx = rowlen
	}
}

// confirmQuit implements the unsaved-changes guard. It returns true once
// quitting is allowed; until then each call counts the warning down.
func (e *Editor) confirmQuit() bool {
	if e.dirty > 0 && e.quitTimes > 1 {
		e.quitTimes--
		e.SetStatusMessage("WARNING: File has unsaved changes. "+
			"Press Ctrl-Q %d more times to quit.", e.quitTimes)
		return false
	}
	return true
}

// Quit leaves the editor cleanly.
func (e *Editor) Quit() {
	e.RestoreTerminal()
	os.Stdout.Write([]byte(CLEAR_SCREEN))
	os.Stdout.Write([]byte(CURSOR_HOME))
	os.Exit(0)
}

func (e *Editor) ProcessKeypress() {
	key, err := readKey()
	if err != nil {
		e.ShowError("%v", err)
		return // Skip this keypress and continue
	}

	switch key {
	case '\r':
		e.InsertNewline()

	case withControlKey('q'):
		if !e.confirmQuit() {
			return
		}
		e.Quit()

	case withControlKey('s'):
		e.Save()

	case withControlKey('f'):
		e.Find()

	case withControlKey('z'):
		e.Undo()

	case withControlKey('y'):
		e.Redo()

	case withControlKey('e'):
		e.Explorer()

	case withControlKey('g'):
		e.Help()

	case HOME_KEY:
		e.cx = 0

	case END_KEY:
		if e.cy < e.totalRows {
			e.cx = len(e.row[e.cy].chars)
		}

	case BACKSPACE, withControlKey('h'), DELETE_KEY:
		if key == DELETE_KEY {
			e.MoveCursor(ARROW_RIGHT)
		}
		e.DeleteChar()

	case PAGE_UP:
		e.cy = e.rowOffset
		for i := 0; i < e.screenRows; i++ {
			e.MoveCursor(ARROW_UP)
		}

	case PAGE_DOWN:
		e.cy = min(e.rowOffset+e.screenRows-1, e.totalRows)
		for i := 0; i < e.screenRows; i++ {
			e.MoveCursor(ARROW_DOWN)
		}

	case ARROW_LEFT, ARROW_RIGHT, ARROW_UP, ARROW_DOWN:
		e.MoveCursor(key)

	case withControlKey('l'):
		e.Redraw()

	case '\x1b':

	default:
		if key >= 32 && key < 128 {
			e.InsertChar(key)
		}
	}

	e.quitTimes = QUIT_TIMES // Reset quit times after processing a key
}

/*** init ***/

// NewEditor creates a new Editor instance with proper initialization
func NewEditor() Editor {
	return Editor{
		terminal:  NewTerminal(),
		quitTimes: QUIT_TIMES,
	}
}

func (e *Editor) Init() error {
	e.cx, e.cy = 0, 0
	e.rx = 0
	e.rowOffset = 0
	e.colOffset = 0
	e.totalRows = 0
	e.row = make([]editorRow, 0)
	e.dirty = 0
	e.filename = ""
	e.statusMessage = ""
	e.statusMessageTime = time.Time{}
	e.syntax = nil
	e.mode = EDIT_MODE
	e.quitTimes = QUIT_TIMES

	rows, cols, err := getWindowSize()
	if err != nil {
		return fmt.Errorf("getting window size: %w", err)
	}
	e.screenRows = rows - 2 // Reserve the status bar and message bar
	e.screenCols = cols
	return nil
}
