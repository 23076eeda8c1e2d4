package editor

import "slices"

/*** row operations ***/

type editorRow struct {
	idx           int
	chars         []byte
	render        []byte
	hl            []byte
	hlOpenComment bool
}

// Convert cursor X to render X, since rendered characters may differ from original characters (e.g., tabs)
func (row *editorRow) cxToRx(cx int) int {
	rx := 0
	for j := 0; j < cx && j < len(row.chars); j++ {
		if row.chars[j] == '\t' {
			rx += (TAB_STOP - 1) - (rx % TAB_STOP) // Expand tab to next TAB_STOP boundary
		}
		rx++
	}
	return rx
}

func (row *editorRow) rxToCx(rx int) int {
	curRx := 0
	var cx int
	for cx = 0; cx < len(row.chars); cx++ {
		if row.chars[cx] == '\t' {
			curRx += (TAB_STOP - 1) - (curRx % TAB_STOP)
		}
		curRx++

		if curRx > rx {
			return cx
		}
	}
	return cx
}

// update recomputes the render string from chars, then re-highlights the row.
func (row *editorRow) update(e *Editor) {
	tabs := 0
	for _, c := range row.chars {
		if c == '\t' {
			tabs++
		}
	}

	render := make([]byte, 0, len(row.chars)+tabs*(TAB_STOP-1))
	for _, c := range row.chars {
		if c == '\t' {
			render = append(render, ' ')
			for len(render)%TAB_STOP != 0 {
				render = append(render, ' ')
			}
		} else {
			render = append(render, c)
		}
	}
	row.render = render

	row.updateSyntax(e)
}

func (e *Editor) InsertRow(at int, s []byte) {
	if at < 0 || at > e.totalRows {
		return
	}

	newRow := editorRow{
		idx:   at,
		chars: append([]byte(nil), s...),
	}

	e.row = append(e.row[:at], append([]editorRow{newRow}, e.row[at:]...)...)

	// Update indices for rows that were shifted
	for j := at + 1; j < len(e.row); j++ {
		e.row[j].idx = j
	}

	e.totalRows++
	e.row[at].update(e)
	e.dirty++
}

func (e *Editor) DeleteRow(at int) {
	if at < 0 || at >= e.totalRows {
		return
	}

	e.row[at].chars = nil
	e.row[at].render = nil
	e.row[at].hl = nil

	e.row = append(e.row[:at], e.row[at+1:]...)
	for j := at; j < len(e.row); j++ {
		e.row[j].idx = j
	}

	e.totalRows--
	e.dirty++

	// The removed row may have carried an open comment into its successors
	if at < e.totalRows {
		e.row[at].updateSyntax(e)
	}
}

func (row *editorRow) insertChar(e *Editor, at int, c byte) {
	if at < 0 || at > len(row.chars) {
		at = len(row.chars)
	}

	row.chars = append(row.chars[:at], append([]byte{c}, row.chars[at:]...)...)

	row.update(e)
	e.dirty++
}

func (row *editorRow) appendBytes(e *Editor, s []byte) {
	row.chars = append(row.chars, s...)

	row.update(e)
	e.dirty++
}

func (row *editorRow) deleteChar(e *Editor, at int) {
	if at < 0 || at >= len(row.chars) {
		return
	}

	row.chars = slices.Delete(row.chars, at, at+1)

	row.update(e)
	e.dirty++
}
