package editor

import (
	"testing"
)

func TestUndoRedoInsertSequence(t *testing.T) {
	e := newTestEditor(24, 80)

	for _, c := range "abc" {
		e.InsertChar(int(c))
	}
	if got := string(e.row[0].chars); got != "abc" {
		t.Fatalf("buffer = %q, want %q", got, "abc")
	}

	e.Undo()
	e.Undo()
	e.Undo()

	if e.totalRows != 1 || len(e.row[0].chars) != 0 {
		t.Errorf("after 3 undos: %d rows, row 0 = %q; want one empty row",
			e.totalRows, e.row[0].chars)
	}

	e.Redo()
	e.Redo()
	e.Redo()

	if got := string(e.row[0].chars); got != "abc" {
		t.Errorf("after 3 redos: buffer = %q, want %q", got, "abc")
	}
	if e.cx != 3 || e.cy != 0 {
		t.Errorf("cursor = (%d,%d), want (3,0)", e.cx, e.cy)
	}
}

func TestUndoThenRedoRestoresState(t *testing.T) {
	e := newTestEditor(24, 80)
	loadRows(e, "abc")
	e.cx, e.cy = 3, 0

	e.DeleteChar() // "ab"
	wantChars := string(e.row[0].chars)
	wantCx, wantCy := e.cx, e.cy

	e.Undo()
	if got := string(e.row[0].chars); got != "abc" {
		t.Fatalf("after undo: %q, want %q", got, "abc")
	}

	e.Redo()
	if got := string(e.row[0].chars); got != wantChars {
		t.Errorf("after redo: %q, want %q", got, wantChars)
	}
	if e.cx != wantCx || e.cy != wantCy {
		t.Errorf("cursor = (%d,%d), want (%d,%d)", e.cx, e.cy, wantCx, wantCy)
	}
}

func TestUndoDeleteRestoresChar(t *testing.T) {
	e := newTestEditor(24, 80)
	loadRows(e, "abc")
	e.cx, e.cy = 2, 0

	e.DeleteChar() // deletes 'b'
	if got := string(e.row[0].chars); got != "ac" {
		t.Fatalf("buffer = %q, want %q", got, "ac")
	}

	e.Undo()
	if got := string(e.row[0].chars); got != "abc" {
		t.Errorf("buffer = %q, want %q", got, "abc")
	}
	if e.cx != 2 || e.cy != 0 {
		t.Errorf("cursor = (%d,%d), want (2,0)", e.cx, e.cy)
	}
}

func TestUndoEmptyJournal(t *testing.T) {
	e := newTestEditor(24, 80)
	loadRows(e, "abc")

	e.Undo()
	if got := string(e.row[0].chars); got != "abc" {
		t.Errorf("undo with empty journal changed the buffer: %q", got)
	}
	e.Redo()
	if got := string(e.row[0].chars); got != "abc" {
		t.Errorf("redo with empty journal changed the buffer: %q", got)
	}
}

func TestFreshEditClearsRedo(t *testing.T) {
	e := newTestEditor(24, 80)

	e.InsertChar('a')
	e.Undo()
	e.InsertChar('b')
	e.Redo()

	if got := string(e.row[0].chars); got != "b" {
		t.Errorf("buffer = %q, want %q (redo must be invalidated)", got, "b")
	}
}

func TestUndoStackEvictsOldest(t *testing.T) {
	e := newTestEditor(24, 80)

	for i := 0; i < MAX_UNDO+10; i++ {
		e.InsertChar('x')
	}
	if len(e.undo) != MAX_UNDO {
		t.Fatalf("undo stack size = %d, want %d", len(e.undo), MAX_UNDO)
	}

	for i := 0; i < MAX_UNDO; i++ {
		e.Undo()
	}
	// The 10 evicted inserts are beyond recovery
	if got := len(e.row[0].chars); got != 10 {
		t.Errorf("row length after exhausting undo = %d, want 10", got)
	}
	if len(e.undo) != 0 {
		t.Errorf("undo stack size = %d, want 0", len(e.undo))
	}
}

func TestNewlineNotJournaled(t *testing.T) {
	e := newTestEditor(24, 80)
	loadRows(e, "hello")
	e.cx, e.cy = 2, 0

	e.InsertNewline()
	if len(e.undo) != 0 {
		t.Errorf("undo stack size = %d, newline must not journal", len(e.undo))
	}
}

func TestRowJoinNotJournaled(t *testing.T) {
	e := newTestEditor(24, 80)
	loadRows(e, "ab", "cd")
	e.cx, e.cy = 0, 1

	e.DeleteChar() // join, not an in-row delete
	if len(e.undo) != 0 {
		t.Errorf("undo stack size = %d, row join must not journal", len(e.undo))
	}
}
