package editor

import "bytes"

/*** find ***/

// searchState carries the incremental-search position between callback
// invocations of one prompt session.
type searchState struct {
	lastMatch   int
	direction   int
	savedHlLine int
	savedHl     []byte
}

func (e *Editor) findCallback(query []byte, key int) {
	s := &e.search

	if s.savedHl != nil {
		// Restore the highlight of the previously marked match
		copy(e.row[s.savedHlLine].hl, s.savedHl)
		s.savedHl = nil
	}

	switch key {
	case '\r', '\x1b':
		s.lastMatch = -1
		s.direction = 1
		return
	case ARROW_RIGHT, ARROW_DOWN:
		s.direction = 1
	case ARROW_LEFT, ARROW_UP:
		s.direction = -1
	default:
		s.lastMatch = -1
		s.direction = 1
	}

	if s.lastMatch == -1 {
		s.direction = 1
	}
	current := s.lastMatch

	for i := 0; i < e.totalRows; i++ {
		current += s.direction
		if current == -1 {
			current = e.totalRows - 1
		} else if current == e.totalRows {
			current = 0
		}

		row := &e.row[current]
		match := bytes.Index(row.render, query)
		if match == -1 {
			continue
		}

		s.lastMatch = current
		e.cy = current
		e.cx = row.rxToCx(match)
		// Force the scroll clamp to bring the match row to the top of the view
		e.rowOffset = e.totalRows

		s.savedHlLine = current
		s.savedHl = append([]byte(nil), row.hl...)
		for k := match; k < match+len(query) && k < len(row.hl); k++ {
			row.hl[k] = HL_MATCH
		}
		break
	}
}

func (e *Editor) Find() {
	savedCx := e.cx
	savedCy := e.cy
	savedColOffset := e.colOffset
	savedRowOffset := e.rowOffset

	e.search = searchState{lastMatch: -1, direction: 1, savedHlLine: -1}

	_, ok := e.Prompt("Search: %s (Use ESC/Arrows/Enter)", e.findCallback)

	if !ok {
		e.cx = savedCx
		e.cy = savedCy
		e.colOffset = savedColOffset
		e.rowOffset = savedRowOffset
	}
}
