package editor

import (
	"bytes"
	"strings"
)

/*** syntax highlighting ***/

type editorSyntax struct {
	filetype               string
	filematch              []string
	keywords               []string
	singlelineCommentStart string
	multilineCommentStart  string
	multilineCommentEnd    string
	flags                  int
}

// Syntax highlighting flags
const (
	HL_HIGHLIGHT_NUMBERS = 1 << 0
	HL_HIGHLIGHT_STRINGS = 1 << 1
)

// Syntax highlighting types. A trailing '|' on a keyword marks it as a
// secondary keyword.
const (
	HL_NORMAL = iota
	HL_COMMENT
	HL_MLCOMMENT
	HL_KEYWORD1
	HL_KEYWORD2
	HL_STRING
	HL_NUMBER
	HL_MATCH
)

var HLDB_ENTRIES = []editorSyntax{
	{
		filetype:  "c",
		filematch: []string{".c", ".h", ".cpp", ".php", ".js", ".py"},
		keywords: []string{
			"switch", "if", "while", "for", "break", "continue", "return", "else",
			"struct", "union", "typedef", "static", "enum", "class", "case",
			"int|", "long|", "double|", "float|", "char|", "unsigned|", "signed|",
			"void|"},
		singlelineCommentStart: "//",
		multilineCommentStart:  "/*",
		multilineCommentEnd:    "*/",
		flags:                  HL_HIGHLIGHT_NUMBERS | HL_HIGHLIGHT_STRINGS,
	},
	{
		filetype:  "go",
		filematch: []string{".go", ".mod", ".sum"},
		keywords: []string{
			"break", "case", "chan", "const", "continue", "default", "defer", "else",
			"fallthrough", "for", "func|", "go", "goto", "if", "import", "interface|",
			"map", "package", "range", "return", "select", "struct", "switch", "type",
			"var"},
		singlelineCommentStart: "//",
		multilineCommentStart:  "/*",
		multilineCommentEnd:    "*/",
		flags:                  HL_HIGHLIGHT_NUMBERS | HL_HIGHLIGHT_STRINGS,
	},
}

// Check if the character is a separator (whitespace, null, or punctuation)
func isSeparator(c byte) bool {
	if c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f' || c == 0 {
		return true
	}
	return strings.IndexByte(",.()+-/*=~%<>[];", c) != -1
}

// resident reports whether row occupies its slot in the buffer. Detached
// rows (modal screen content) are highlighted in isolation and must not
// chain into buffer rows.
func (row *editorRow) resident(e *Editor) bool {
	return row.idx >= 0 && row.idx < len(e.row) && &e.row[row.idx] == row
}

func (row *editorRow) updateSyntax(e *Editor) {
	row.hl = make([]byte, len(row.render))

	if e.syntax == nil {
		return
	}

	keywords := e.syntax.keywords

	scs := []byte(e.syntax.singlelineCommentStart)
	mcs := []byte(e.syntax.multilineCommentStart)
	mce := []byte(e.syntax.multilineCommentEnd)

	resident := row.resident(e)

	prevSep := true
	var inString byte = 0
	inComment := resident && row.idx > 0 && e.row[row.idx-1].hlOpenComment

	for i := 0; i < len(row.render); {
		c := row.render[i]
		prevHl := byte(HL_NORMAL)
		if i > 0 {
			prevHl = row.hl[i-1]
		}

		if len(scs) > 0 && inString == 0 && !inComment {
			if bytes.HasPrefix(row.render[i:], scs) {
				for j := i; j < len(row.render); j++ {
					row.hl[j] = HL_COMMENT
				}
				break
			}
		}

		if len(mcs) > 0 && len(mce) > 0 && inString == 0 {
			if inComment {
				row.hl[i] = HL_MLCOMMENT
				if bytes.HasPrefix(row.render[i:], mce) {
					for j := range mce {
						if i+j < len(row.render) {
							row.hl[i+j] = HL_MLCOMMENT
						}
					}
					i += len(mce)
					inComment = false
					prevSep = true
					continue
				}
				i++
				continue
			} else if bytes.HasPrefix(row.render[i:], mcs) {
				for j := range mcs {
					if i+j < len(row.render) {
						row.hl[i+j] = HL_MLCOMMENT
					}
				}
				i += len(mcs)
				inComment = true
				continue
			}
		}

		if e.syntax.flags&HL_HIGHLIGHT_STRINGS != 0 {
			if inString != 0 {
				row.hl[i] = HL_STRING
				if c == '\\' && i+1 < len(row.render) {
					row.hl[i+1] = HL_STRING
					i += 2
					continue
				}
				if c == inString {
					inString = 0
				}
				i++
				prevSep = true
				continue
			} else if c == '"' || c == '\'' {
				inString = c
				row.hl[i] = HL_STRING
				i++
				continue
			}
		}

		if e.syntax.flags&HL_HIGHLIGHT_NUMBERS != 0 {
			if (isDigit(c) && (prevSep || prevHl == HL_NUMBER)) ||
				(c == '.' && prevHl == HL_NUMBER) {
				row.hl[i] = HL_NUMBER
				i++
				prevSep = false
				continue
			}
		}

		if prevSep {
			j := 0
			for ; j < len(keywords); j++ {
				kw := keywords[j]
				klen := len(kw)
				isKw2 := false
				if klen > 0 && kw[klen-1] == '|' {
					isKw2 = true
					klen--
				}

				if klen > 0 && i+klen <= len(row.render) &&
					bytes.Equal(row.render[i:i+klen], []byte(kw[:klen])) &&
					(i+klen == len(row.render) || isSeparator(row.render[i+klen])) {
					for k := 0; k < klen; k++ {
						if isKw2 {
							row.hl[i+k] = HL_KEYWORD2
						} else {
							row.hl[i+k] = HL_KEYWORD1
						}
					}
					i += klen
					break
				}
			}
			if j < len(keywords) {
				prevSep = false
				continue
			}
		}

		prevSep = isSeparator(c)
		i++
	}

	// A changed row-end comment state invalidates the next row's highlight;
	// the chain stops at the first row whose state is unchanged.
	changed := row.hlOpenComment != inComment
	row.hlOpenComment = inComment
	if changed && resident && row.idx+1 < e.totalRows {
		e.row[row.idx+1].updateSyntax(e)
	}
}

func syntaxToColor(hl byte) int {
	switch hl {
	case HL_COMMENT, HL_MLCOMMENT:
		return ANSI_COLOR_CYAN
	case HL_KEYWORD1:
		return ANSI_COLOR_YELLOW
	case HL_KEYWORD2:
		return ANSI_COLOR_GREEN
	case HL_STRING:
		return ANSI_COLOR_MAGENTA
	case HL_NUMBER:
		return ANSI_COLOR_RED
	case HL_MATCH:
		return ANSI_COLOR_BLUE
	default:
		return ANSI_COLOR_DEFAULT
	}
}

// SelectSyntaxHighlight picks a syntax definition for the current filename
// and re-highlights the whole buffer.
func (e *Editor) SelectSyntaxHighlight() {
	e.syntax = nil
	if e.filename == "" {
		return
	}

	var ext string
	if lastDot := strings.LastIndex(e.filename, "."); lastDot != -1 {
		ext = e.filename[lastDot:]
	}

	for j := range HLDB_ENTRIES {
		s := &HLDB_ENTRIES[j]
		for _, pattern := range s.filematch {
			isExt := pattern[0] == '.'
			if (isExt && ext != "" && ext == pattern) ||
				(!isExt && strings.Contains(e.filename, pattern)) {
				e.syntax = s

				for filerow := 0; filerow < e.totalRows; filerow++ {
					e.row[filerow].updateSyntax(e)
				}
				return
			}
		}
	}
}
