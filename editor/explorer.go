package editor

import (
	"fmt"
	"os"
	"strings"
)

// ExplorerScreen implements the ModalScreen interface for file exploration
type ExplorerScreen struct {
	currentDir   string
	files        []os.DirEntry
	hasParentDir bool
	content      []editorRow
	editor       *Editor
}

// NewExplorerScreen creates a new explorer screen rooted at startDir
func NewExplorerScreen(editor *Editor, startDir string) *ExplorerScreen {
	explorer := &ExplorerScreen{
		currentDir: startDir,
		editor:     editor,
	}
	if err := explorer.refreshContent(); err != nil {
		editor.ShowError("Failed to read directory: %v", err)
		return nil
	}
	return explorer
}

// refreshContent updates the explorer content for the current directory
func (ex *ExplorerScreen) refreshContent() error {
	files, err := os.ReadDir(ex.currentDir)
	if err != nil {
		return err
	}

	ex.files = files
	ex.hasParentDir = ex.currentDir != "." && ex.currentDir != "/"
	ex.content = ex.createExplorerRows(files, ex.currentDir)
	return nil
}

func (ex *ExplorerScreen) createExplorerRows(files []os.DirEntry, currentDir string) []editorRow {
	rows := make([]editorRow, 0, len(files)+2)

	header := fmt.Sprintf("=== File Explorer: %s ===", currentDir)
	rows = append(rows, newContentRow(ex.editor, 0, header))

	if ex.hasParentDir {
		rows = append(rows, newContentRow(ex.editor, 1, ".. (parent directory)"))
	}

	for _, file := range files {
		var line string
		if file.IsDir() {
			line = fmt.Sprintf("%s/", file.Name())
		} else {
			line = file.Name()
			if info, err := file.Info(); err == nil {
				line = fmt.Sprintf("%s (%d bytes)", file.Name(), info.Size())
			}
		}
		rows = append(rows, newContentRow(ex.editor, len(rows), line))
	}

	return rows
}

// GetContent returns the explorer content rows
func (ex *ExplorerScreen) GetContent() []editorRow {
	return ex.content
}

// GetStatusMessage returns the status message for the explorer screen
func (ex *ExplorerScreen) GetStatusMessage() string {
	return fmt.Sprintf("File Explorer: %s - %d items (Enter=open/navigate, ESC/q=quit)",
		ex.currentDir, len(ex.files))
}

// Initialize sets up the initial cursor position for the explorer
func (ex *ExplorerScreen) Initialize(e *Editor) {
	e.cy = ex.firstEntryLine()
	ex.highlightSelectedFile(e)
}

// firstEntryLine is the first selectable line, past the header and the
// parent-directory entry when present.
func (ex *ExplorerScreen) firstEntryLine() int {
	if ex.hasParentDir {
		return 2
	}
	return 1
}

// HandleKey processes key presses for the explorer screen
func (ex *ExplorerScreen) HandleKey(key int, e *Editor) (bool, bool) {
	switch key {
	case 'q', 'Q', '\x1b':
		return true, true

	case ARROW_UP, ARROW_DOWN:
		ex.moveSelection(key, e)
		ex.highlightSelectedFile(e)

	case '\r':
		prevDir := ex.currentDir
		opened := ex.openSelectedFile(e)
		if opened {
			return true, false // Keep the freshly opened file state
		}
		if ex.currentDir == prevDir {
			break // Nothing changed; keep any warning on the status line
		}
		// Directory changed: show the new listing
		e.cy = ex.firstEntryLine()
		e.rowOffset = 0
		e.row = ex.content
		e.totalRows = len(ex.content)
		ex.highlightSelectedFile(e)
		e.SetStatusMessage("%s", ex.GetStatusMessage())
	}

	return false, false
}

func (ex *ExplorerScreen) moveSelection(key int, e *Editor) {
	maxItems := len(ex.files)
	if ex.hasParentDir {
		maxItems++
	}

	switch key {
	case ARROW_UP:
		if e.cy > 1 {
			e.cy--
		}
	case ARROW_DOWN:
		if e.cy < maxItems {
			e.cy++
		}
	}
}

// highlightSelectedFile marks the selected line with the match highlight
func (ex *ExplorerScreen) highlightSelectedFile(e *Editor) {
	if e.cy <= 0 || e.cy >= len(ex.content) {
		return
	}

	for i := 1; i < len(ex.content); i++ {
		for j := range ex.content[i].hl {
			ex.content[i].hl[j] = HL_NORMAL
		}
	}
	for j := range ex.content[e.cy].hl {
		ex.content[e.cy].hl[j] = HL_MATCH
	}

	e.row = ex.content
}

// openSelectedFile opens the selected file or navigates into a directory.
// Returns true only when a file was actually opened.
func (ex *ExplorerScreen) openSelectedFile(e *Editor) bool {
	selectedIndex := e.cy - 1 // Skip the header line

	if ex.hasParentDir && selectedIndex == 0 {
		parentDir := "."
		if lastSlash := strings.LastIndex(ex.currentDir, "/"); lastSlash > 0 {
			parentDir = ex.currentDir[:lastSlash]
		}
		ex.currentDir = parentDir
		if err := ex.refreshContent(); err != nil {
			e.ShowError("Failed to read directory: %v", err)
		}
		return false
	}

	if ex.hasParentDir {
		selectedIndex--
	}
	if selectedIndex < 0 || selectedIndex >= len(ex.files) {
		return false
	}

	selected := ex.files[selectedIndex]

	if selected.IsDir() {
		newDir := selected.Name()
		if ex.currentDir != "." {
			newDir = ex.currentDir + "/" + newDir
		}
		ex.currentDir = newDir
		if err := ex.refreshContent(); err != nil {
			e.ShowError("Failed to read directory: %v", err)
		}
		return false
	}

	if e.dirty > 0 {
		e.SetStatusMessage("File has unsaved changes")
		return false
	}

	filePath := selected.Name()
	if ex.currentDir != "." {
		filePath = ex.currentDir + "/" + filePath
	}

	if err := e.Open(filePath); err != nil {
		e.ShowError("Failed to open file: %v", err)
		return false
	}
	return true
}

// Explorer opens the file explorer interface using the modal system
func (e *Editor) Explorer() {
	explorerScreen := NewExplorerScreen(e, ".")
	if explorerScreen == nil {
		return // Error already shown
	}
	modalManager := NewModalManager(e, explorerScreen)
	modalManager.Show(EXPLORER_MODE)
	e.mode = EDIT_MODE
}
