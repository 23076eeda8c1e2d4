package editor

import (
	"fmt"
	"os"
	"time"
)

/*** append buffer ***/

type appendBuffer struct {
	b []byte
}

func (ab *appendBuffer) append(s []byte) {
	ab.b = append(ab.b, s...)
}

func (ab *appendBuffer) appendString(s string) {
	ab.b = append(ab.b, s...)
}

/*** output ***/

// textCols is the width left for row text once the line-number gutter is
// drawn.
func (e *Editor) textCols() int {
	return max(e.screenCols-LINENUM_WIDTH, 1)
}

// Scroll clamps the viewport so the cursor stays visible.
func (e *Editor) Scroll() {
	e.rx = 0
	if e.cy < e.totalRows {
		e.rx = e.row[e.cy].cxToRx(e.cx)
	}

	if e.cy < e.rowOffset {
		e.rowOffset = e.cy
	}
	if e.cy >= e.rowOffset+e.screenRows {
		e.rowOffset = e.cy - e.screenRows + 1
	}

	if e.rx < e.colOffset {
		e.colOffset = e.rx
	}
	if e.rx >= e.colOffset+e.textCols() {
		e.colOffset = e.rx - e.textCols() + 1
	}
}

// drawWelcome centers the version banner on an empty buffer.
func (e *Editor) drawWelcome(abuf *appendBuffer) {
	welcome := "CCode editor -- version " + CCODE_VERSION
	welcomelen := min(len(welcome), e.textCols())
	padding := (e.textCols() - welcomelen) / 2
	if padding > 0 {
		abuf.appendString("~")
		padding--
	}
	for i := 0; i < padding; i++ {
		abuf.appendString(" ")
	}
	abuf.appendString(welcome[:welcomelen])
}

func (e *Editor) drawRows(abuf *appendBuffer) {
	for y := 0; y < e.screenRows; y++ {
		filerow := y + e.rowOffset
		if filerow >= e.totalRows {
			for i := 0; i < LINENUM_WIDTH; i++ {
				abuf.appendString(" ")
			}
			if e.totalRows == 0 && y == e.screenRows/3 {
				e.drawWelcome(abuf)
			} else {
				abuf.appendString("~")
			}
		} else {
			abuf.append(fmt.Appendf(nil, "\x1b[%dm%4d \x1b[%dm",
				ANSI_DIM, filerow+1, ANSI_RESET_DIM))

			lineLen := min(max(len(e.row[filerow].render)-e.colOffset, 0), e.textCols())
			start := e.colOffset
			render := e.row[filerow].render
			hl := e.row[filerow].hl
			currentColor := -1
			for j := 0; j < lineLen; j++ {
				c := render[start+j]
				h := hl[start+j]
				switch {
				case isControl(c):
					// Make stray control bytes visible as inverse symbols
					sym := byte('?')
					if c <= 26 {
						sym = '@' + c
					}
					abuf.appendString(COLORS_INVERT)
					abuf.append([]byte{sym})
					abuf.appendString(COLORS_RESET)
					if currentColor != -1 {
						abuf.append(fmt.Appendf(nil, "\x1b[%dm", currentColor))
					}
				case h == HL_MATCH:
					// Match cells never bleed into their neighbors
					abuf.append(fmt.Appendf(nil, "\x1b[%dm\x1b[%dm",
						ANSI_BG_YELLOW, ANSI_COLOR_BLACK))
					abuf.append([]byte{c})
					abuf.appendString(COLORS_RESET)
					if currentColor != -1 {
						abuf.append(fmt.Appendf(nil, "\x1b[%dm", currentColor))
					}
				case h == HL_NORMAL:
					if currentColor != -1 {
						abuf.append(fmt.Appendf(nil, "\x1b[%dm", ANSI_COLOR_DEFAULT))
						currentColor = -1
					}
					abuf.append([]byte{c})
				default:
					color := syntaxToColor(h)
					if color != currentColor {
						currentColor = color
						abuf.append(fmt.Appendf(nil, "\x1b[%dm", color))
					}
					abuf.append([]byte{c})
				}
			}
			if currentColor != -1 {
				abuf.append(fmt.Appendf(nil, "\x1b[%dm", ANSI_COLOR_DEFAULT))
			}
		}

		abuf.appendString(CLEAR_LINE)
		abuf.appendString("\r\n")
	}
}

func (e *Editor) drawStatusBar(abuf *appendBuffer) {
	abuf.appendString(COLORS_INVERT)

	filename := "[No Name]"
	if e.filename != "" {
		filename = e.filename
	}
	dirtyFlag := ""
	if e.dirty > 0 {
		dirtyFlag = "(modified)"
	}
	status := fmt.Sprintf("%.20s - %d lines %s", filename, e.totalRows, dirtyFlag)
	statusLen := min(len(status), e.screenCols)

	filetype := "no ft"
	if e.syntax != nil {
		filetype = e.syntax.filetype
	}
	rstatus := fmt.Sprintf("%s | %d/%d", filetype, e.cy+1, e.totalRows)
	rstatusLen := len(rstatus)

	abuf.appendString(status[:statusLen])
	for statusLen < e.screenCols {
		if e.screenCols-statusLen == rstatusLen {
			abuf.appendString(rstatus)
			break
		}
		abuf.appendString(" ")
		statusLen++
	}

	abuf.appendString(COLORS_RESET)
	abuf.appendString("\r\n")
}

func (e *Editor) drawMessageBar(abuf *appendBuffer) {
	abuf.appendString(CLEAR_LINE)
	messageLen := min(len(e.statusMessage), e.screenCols)
	if messageLen > 0 && time.Since(e.statusMessageTime) < 5*time.Second {
		abuf.appendString(e.statusMessage[:messageLen])
	}
}

// renderFrame assembles one full screen repaint.
func (e *Editor) renderFrame() []byte {
	e.Scroll()

	var abuf appendBuffer

	abuf.appendString(CURSOR_HIDE)
	abuf.appendString(CURSOR_HOME)

	e.drawRows(&abuf)
	e.drawStatusBar(&abuf)
	e.drawMessageBar(&abuf)

	abuf.append(fmt.Appendf(nil, CURSOR_POSITION_FORMAT,
		e.cy-e.rowOffset+1, e.rx-e.colOffset+1+LINENUM_WIDTH))

	abuf.appendString(CURSOR_SHOW)

	return abuf.b
}

// RefreshScreen repaints the whole frame with a single write.
func (e *Editor) RefreshScreen() {
	os.Stdout.Write(e.renderFrame())
}

func (e *Editor) SetStatusMessage(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if len(msg) > 80 {
		msg = msg[:80]
	}
	e.statusMessage = msg
	e.statusMessageTime = time.Now()
}
