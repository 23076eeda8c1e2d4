package editor

// ModalScreen is a full-screen takeover (help, file explorer) driven by its
// own key handler while the regular buffer is parked.
type ModalScreen interface {
	// GetContent returns the content rows to display
	GetContent() []editorRow

	// GetStatusMessage returns the status message for the modal screen
	GetStatusMessage() string

	// HandleKey processes a key press and returns true if the modal should close.
	// The second return value indicates whether to restore the previous state.
	HandleKey(key int, e *Editor) (bool, bool)

	// Initialize sets up the initial cursor position
	Initialize(e *Editor)
}

// EditorState is the buffer/viewport snapshot a modal screen displaces.
type EditorState struct {
	rows      []editorRow
	totalRows int
	cx, cy    int
	colOffset int
	rowOffset int
}

func (e *Editor) getEditorState() EditorState {
	return EditorState{
		rows:      e.row,
		totalRows: e.totalRows,
		cx:        e.cx,
		cy:        e.cy,
		colOffset: e.colOffset,
		rowOffset: e.rowOffset,
	}
}

func (e *Editor) setEditorState(state EditorState) {
	e.row = state.rows
	e.totalRows = state.totalRows
	e.cx = state.cx
	e.cy = state.cy
	e.colOffset = state.colOffset
	e.rowOffset = state.rowOffset
	e.mode = EDIT_MODE
}

// ModalManager handles the common logic for modal screens
type ModalManager struct {
	savedState EditorState
	screen     ModalScreen
	editor     *Editor
}

func NewModalManager(editor *Editor, screen ModalScreen) *ModalManager {
	return &ModalManager{
		savedState: editor.getEditorState(),
		screen:     screen,
		editor:     editor,
	}
}

// Show displays the modal screen and runs its interaction loop.
func (m *ModalManager) Show(mode int) {
	m.setupModalDisplay(m.screen.GetContent(), mode)
	m.screen.Initialize(m.editor)

	for {
		m.editor.RefreshScreen()

		key, err := readKey()
		if err != nil {
			m.editor.ShowError("%v", err)
			continue
		}

		shouldClose, shouldRestore := m.screen.HandleKey(key, m.editor)
		if shouldClose {
			if shouldRestore {
				m.restoreState()
			}
			break
		}
	}
}

func (m *ModalManager) setupModalDisplay(content []editorRow, mode int) {
	m.editor.mode = mode
	m.editor.row = content
	m.editor.totalRows = len(content)
	m.editor.cx = 0
	m.editor.cy = 0
	m.editor.colOffset = 0
	m.editor.rowOffset = 0
	m.editor.SetStatusMessage("%s", m.screen.GetStatusMessage())
}

func (m *ModalManager) restoreState() {
	m.editor.setEditorState(m.savedState)
	m.editor.SetStatusMessage("Returned to editor")
}

// newContentRow builds a detached display row for modal content.
func newContentRow(e *Editor, idx int, text string) editorRow {
	row := editorRow{
		idx:   idx,
		chars: []byte(text),
	}
	row.update(e)
	return row
}
