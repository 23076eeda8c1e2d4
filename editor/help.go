package editor

import "fmt"

// HelpScreen implements the ModalScreen interface for the help display
type HelpScreen struct {
	content []editorRow
}

// NewHelpScreen creates a new help screen
func NewHelpScreen(editor *Editor) *HelpScreen {
	helpContent := []string{
		"=== CCODE HELP ===",
		"",
		"NAVIGATION:",
		"  Arrow Keys       - Move cursor",
		"  Page Up/Down     - Scroll by page",
		"  Home/End         - Move to line start/end",
		"",
		"EDITING:",
		"  Ctrl+S           - Save file",
		"  Ctrl+Q           - Quit (with confirmation if unsaved)",
		"  Delete/Backspace - Delete characters",
		"  Ctrl+Z           - Undo",
		"  Ctrl+Y           - Redo",
		"",
		"SEARCH:",
		"  Ctrl+F           - Find text",
		"  Arrow Up/Down    - Navigate search results",
		"  Escape           - Cancel search",
		"",
		"FILE OPERATIONS:",
		"  Ctrl+E           - Open file explorer",
		"",
		"OTHER:",
		"  Ctrl+G           - Show this help",
		"  Ctrl+L           - Redraw screen",
		"",
		"About CCode:",
		fmt.Sprintf("  Version: %s", CCODE_VERSION),
		"  A minimalist terminal text editor written in Go",
		"",
		"Press 'q' or Escape to close this help screen.",
	}

	content := make([]editorRow, len(helpContent))
	for i, line := range helpContent {
		content[i] = newContentRow(editor, i, line)
	}

	return &HelpScreen{content: content}
}

// GetContent returns the help content rows
func (h *HelpScreen) GetContent() []editorRow {
	return h.content
}

// GetStatusMessage returns the status message for the help screen
func (h *HelpScreen) GetStatusMessage() string {
	return "Help Screen - Use Arrow Keys to scroll, 'q' or Escape to exit"
}

// Initialize sets up the initial cursor position for the help screen
func (h *HelpScreen) Initialize(e *Editor) {
	e.cy = 0
	e.rowOffset = 0
}

// HandleKey processes key presses for the help screen
func (h *HelpScreen) HandleKey(key int, e *Editor) (bool, bool) {
	switch key {
	case 'q', 'Q', '\x1b':
		return true, true

	case ARROW_UP, ARROW_DOWN:
		e.MoveCursor(key)

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

	case HOME_KEY:
		e.cy = 0
		e.rowOffset = 0

	case END_KEY:
		e.cy = e.totalRows
	}

	return false, false
}

// Help displays the help screen
func (e *Editor) Help() {
	helpScreen := NewHelpScreen(e)
	modalManager := NewModalManager(e, helpScreen)
	modalManager.Show(HELP_MODE)
	e.mode = EDIT_MODE
}
