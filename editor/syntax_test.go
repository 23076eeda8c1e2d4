package editor

import (
	"testing"
)

func newCSyntaxEditor(lines ...string) *Editor {
	e := newTestEditor(24, 80)
	e.filename = "test.c"
	e.SelectSyntaxHighlight()
	loadRows(e, lines...)
	return e
}

func hlAt(e *Editor, row, col int) byte {
	return e.row[row].hl[col]
}

func TestSelectSyntaxByExtension(t *testing.T) {
	cases := []struct {
		filename string
		filetype string
	}{
		{"main.c", "c"},
		{"defs.h", "c"},
		{"view.cpp", "c"},
		{"index.php", "c"},
		{"app.js", "c"},
		{"tool.py", "c"},
		{"main.go", "go"},
		{"go.mod", "go"},
		{"README", ""},
		{"notes.txt", ""},
	}

	for _, c := range cases {
		e := newTestEditor(24, 80)
		e.filename = c.filename
		e.SelectSyntaxHighlight()
		got := ""
		if e.syntax != nil {
			got = e.syntax.filetype
		}
		if got != c.filetype {
			t.Errorf("%s: filetype = %q, want %q", c.filename, got, c.filetype)
		}
	}
}

func TestHighlightWithoutSyntax(t *testing.T) {
	e := newTestEditor(24, 80)
	loadRows(e, "int x = 42;")

	for i, h := range e.row[0].hl {
		if h != HL_NORMAL {
			t.Errorf("hl[%d] = %d, want HL_NORMAL with no syntax selected", i, h)
		}
	}
}

func TestHighlightNumbers(t *testing.T) {
	e := newCSyntaxEditor("x = 42;")

	for _, col := range []int{4, 5} {
		if got := hlAt(e, 0, col); got != HL_NUMBER {
			t.Errorf("hl[%d] = %d, want HL_NUMBER", col, got)
		}
	}
	if got := hlAt(e, 0, 0); got != HL_NORMAL {
		t.Errorf("hl[0] = %d, want HL_NORMAL", got)
	}
}

func TestHighlightNumberNeedsSeparator(t *testing.T) {
	e := newCSyntaxEditor("x42")

	for _, col := range []int{1, 2} {
		if got := hlAt(e, 0, col); got != HL_NORMAL {
			t.Errorf("hl[%d] = %d, digits inside identifiers must stay normal", col, got)
		}
	}
}

func TestHighlightDecimalPoint(t *testing.T) {
	e := newCSyntaxEditor("y = 3.14;")

	for col := 4; col <= 7; col++ {
		if got := hlAt(e, 0, col); got != HL_NUMBER {
			t.Errorf("hl[%d] = %d, want HL_NUMBER", col, got)
		}
	}
}

func TestHighlightString(t *testing.T) {
	e := newCSyntaxEditor(`a = "hi";`)

	for col := 4; col <= 7; col++ {
		if got := hlAt(e, 0, col); got != HL_STRING {
			t.Errorf("hl[%d] = %d, want HL_STRING", col, got)
		}
	}
	if got := hlAt(e, 0, 8); got != HL_NORMAL {
		t.Errorf("hl[8] = %d, want HL_NORMAL after closing quote", got)
	}
}

func TestHighlightStringEscape(t *testing.T) {
	e := newCSyntaxEditor(`s = "a\"b";`)

	// The escaped quote must not terminate the string
	for col := 4; col <= 9; col++ {
		if got := hlAt(e, 0, col); got != HL_STRING {
			t.Errorf("hl[%d] = %d, want HL_STRING", col, got)
		}
	}
}

func TestHighlightKeywords(t *testing.T) {
	e := newCSyntaxEditor("if (x) return int;")

	for _, col := range []int{0, 1} {
		if got := hlAt(e, 0, col); got != HL_KEYWORD1 {
			t.Errorf("hl[%d] = %d, want HL_KEYWORD1 for 'if'", col, got)
		}
	}
	for col := 7; col <= 12; col++ {
		if got := hlAt(e, 0, col); got != HL_KEYWORD1 {
			t.Errorf("hl[%d] = %d, want HL_KEYWORD1 for 'return'", col, got)
		}
	}
	for col := 14; col <= 16; col++ {
		if got := hlAt(e, 0, col); got != HL_KEYWORD2 {
			t.Errorf("hl[%d] = %d, want HL_KEYWORD2 for 'int'", col, got)
		}
	}
}

func TestKeywordNeedsTrailingSeparator(t *testing.T) {
	e := newCSyntaxEditor("iffy = 1;")

	for _, col := range []int{0, 1} {
		if got := hlAt(e, 0, col); got != HL_NORMAL {
			t.Errorf("hl[%d] = %d, 'iffy' must not match keyword 'if'", col, got)
		}
	}
}

func TestHighlightLineComment(t *testing.T) {
	e := newCSyntaxEditor("x; // rest")

	if got := hlAt(e, 0, 0); got != HL_NORMAL {
		t.Errorf("hl[0] = %d, want HL_NORMAL", got)
	}
	for col := 3; col < len(e.row[0].render); col++ {
		if got := hlAt(e, 0, col); got != HL_COMMENT {
			t.Errorf("hl[%d] = %d, want HL_COMMENT", col, got)
		}
	}
}

func TestMultilineCommentAcrossRows(t *testing.T) {
	e := newCSyntaxEditor("/* a", "b */ x")

	if !e.row[0].hlOpenComment {
		t.Error("row 0 must end inside an open comment")
	}
	for col := range e.row[0].render {
		if got := hlAt(e, 0, col); got != HL_MLCOMMENT {
			t.Errorf("row 0 hl[%d] = %d, want HL_MLCOMMENT", col, got)
		}
	}

	if e.row[1].hlOpenComment {
		t.Error("row 1 must not end inside a comment")
	}
	for col := 0; col <= 3; col++ {
		if got := hlAt(e, 1, col); got != HL_MLCOMMENT {
			t.Errorf("row 1 hl[%d] = %d, want HL_MLCOMMENT", col, got)
		}
	}
	if got := hlAt(e, 1, 5); got != HL_NORMAL {
		t.Errorf("row 1 hl[5] = %d, want HL_NORMAL after comment close", got)
	}
}

func TestCommentOpenCascadesDown(t *testing.T) {
	e := newCSyntaxEditor("int x;", "y;", "z;")

	// Typing "/*" at the start of row 0 re-opens every following row
	e.cx, e.cy = 0, 0
	e.InsertChar('/')
	e.InsertChar('*')

	for i := 0; i < 3; i++ {
		if !e.row[i].hlOpenComment {
			t.Errorf("row %d: open comment flag not propagated", i)
		}
	}
	for col := range e.row[2].render {
		if got := hlAt(e, 2, col); got != HL_MLCOMMENT {
			t.Errorf("row 2 hl[%d] = %d, want HL_MLCOMMENT", col, got)
		}
	}
}

func TestCommentCloseCascadesDown(t *testing.T) {
	e := newCSyntaxEditor("/* x", "y;", "z;")

	// Closing the comment on row 1 reverts row 2
	e.cx, e.cy = 0, 1
	e.InsertChar('*')
	e.InsertChar('/')

	if !e.row[0].hlOpenComment {
		t.Error("row 0 must still be open")
	}
	if e.row[1].hlOpenComment {
		t.Error("row 1 must be closed after typing */")
	}
	if e.row[2].hlOpenComment {
		t.Error("row 2 must revert once the comment closes above it")
	}
	if got := hlAt(e, 2, 0); got != HL_NORMAL {
		t.Errorf("row 2 hl[0] = %d, want HL_NORMAL", got)
	}
}

func TestLineCommentInsideBlockComment(t *testing.T) {
	e := newCSyntaxEditor("/* // */ x")

	// The // inside a block comment is part of the block comment
	for col := 0; col <= 7; col++ {
		if got := hlAt(e, 0, col); got != HL_MLCOMMENT {
			t.Errorf("hl[%d] = %d, want HL_MLCOMMENT", col, got)
		}
	}
	if got := hlAt(e, 0, 9); got != HL_NORMAL {
		t.Errorf("hl[9] = %d, want HL_NORMAL", got)
	}
}

func TestSelectSyntaxRehighlightsBuffer(t *testing.T) {
	e := newTestEditor(24, 80)
	loadRows(e, "return 1;")

	if hlAt(e, 0, 0) != HL_NORMAL {
		t.Fatal("buffer should start unhighlighted")
	}

	e.filename = "late.c"
	e.SelectSyntaxHighlight()

	for col := 0; col <= 5; col++ {
		if got := hlAt(e, 0, col); got != HL_KEYWORD1 {
			t.Errorf("hl[%d] = %d, want HL_KEYWORD1 after selection", col, got)
		}
	}
}
