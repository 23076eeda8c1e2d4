package editor

import (
	"bufio"
	"fmt"
	"os"
)

/*** file i/o ***/

// RowsToString flattens the buffer into the on-disk representation: every
// row followed by a newline.
func (e *Editor) RowsToString() ([]byte, int) {
	totalLength := 0
	for _, row := range e.row {
		totalLength += len(row.chars) + 1
	}

	buf := make([]byte, 0, totalLength)
	for _, row := range e.row {
		buf = append(buf, row.chars...)
		buf = append(buf, '\n')
	}

	return buf, totalLength
}

func (e *Editor) Open(filename string) error {
	e.filename = filename
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("could not open file '%s': %w", filename, err)
	}
	defer file.Close()

	// Reset editor state, because we are opening a new file
	e.row = make([]editorRow, 0)
	e.totalRows = 0
	e.cx = 0
	e.cy = 0
	e.rowOffset = 0
	e.colOffset = 0
	e.rx = 0
	e.undo = nil
	e.redo = nil
	e.SelectSyntaxHighlight()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Bytes()
		for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
			line = line[:len(line)-1]
		}
		e.InsertRow(e.totalRows, line)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading file '%s': %w", filename, err)
	}
	e.dirty = 0
	return nil
}

func (e *Editor) Save() {
	if e.filename == "" {
		filename, ok := e.Prompt("Save as: %s (ESC to cancel)", nil)
		if !ok {
			e.SetStatusMessage("Save aborted")
			return
		}
		e.filename = filename
		e.SelectSyntaxHighlight()
	}

	buf, length := e.RowsToString()

	// Truncating ourselves to the new length instead of opening with O_TRUNC
	// keeps the old content up to that length on disk if the write fails.
	file, err := os.OpenFile(e.filename, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		e.SetStatusMessage("Can't save! I/O error: %v", err)
		return
	}
	defer file.Close()

	if err := file.Truncate(int64(length)); err != nil {
		e.SetStatusMessage("Can't save! I/O error: %v", err)
		return
	}

	bytesWritten, err := file.Write(buf)
	if err != nil {
		e.SetStatusMessage("Can't save! I/O error: %v", err)
		return
	}
	if bytesWritten != length {
		e.SetStatusMessage("Can't save! Partial write: %d/%d bytes", bytesWritten, length)
		return
	}

	e.SetStatusMessage("%d bytes written to disk", length)
	e.dirty = 0
}
