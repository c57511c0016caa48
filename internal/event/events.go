// internal/event/events.go
package event

import "github.com/bethropolis/linecore/internal/types"

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	// Document events
	TypeBufferModified // Fired after a mutation changes line content
	TypeBufferLoaded   // Fired after a document is loaded
	TypeBufferSaved    // Fired after a document is saved
	TypeCursorMoved    // Fired when the cursor position changes

	// Application lifecycle events
	TypeAppReady // Fired when the application is fully initialized
	TypeAppQuit  // Fired just before the application stops
)

func (t Type) String() string {
	switch t {
	case TypeBufferModified:
		return "buffer-modified"
	case TypeBufferLoaded:
		return "buffer-loaded"
	case TypeBufferSaved:
		return "buffer-saved"
	case TypeCursorMoved:
		return "cursor-moved"
	case TypeAppReady:
		return "app-ready"
	case TypeAppQuit:
		return "app-quit"
	default:
		return "unknown"
	}
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// EditKind names the primitive that modified the document.
type EditKind int

const (
	EditInsert EditKind = iota
	EditSplit
	EditDelete
	EditJoin
)

func (k EditKind) String() string {
	switch k {
	case EditInsert:
		return "insert"
	case EditSplit:
		return "split"
	case EditDelete:
		return "delete"
	case EditJoin:
		return "join"
	default:
		return "unknown"
	}
}

// BufferModifiedData describes one completed mutation.
type BufferModifiedData struct {
	Kind         EditKind
	Text         string // inserted or removed text, "\n" for split and join
	CursorBefore types.Cursor
	CursorAfter  types.Cursor
}

// BufferLoadedData contains info about the loaded buffer.
type BufferLoadedData struct {
	FilePath  string
	LineCount int
}

// BufferSavedData contains info about the saved buffer.
type BufferSavedData struct {
	FilePath string
}

// CursorMovedData contains the old and new cursor positions.
type CursorMovedData struct {
	OldPosition types.Cursor
	NewPosition types.Cursor
}

// AppQuitData could contain exit code or reason later.
type AppQuitData struct{}

// AppReadyData could contain initial config or state later.
type AppReadyData struct{}
