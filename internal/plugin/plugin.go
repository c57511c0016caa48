// internal/plugin/plugin.go
package plugin

import (
	"github.com/bethropolis/linecore/internal/event"
	"github.com/bethropolis/linecore/internal/types"
)

// CommandFunc defines the signature for commands registered by plugins.
// It takes arguments (e.g., from a script line) and returns an error.
type CommandFunc func(args []string) error

// EditorAPI defines the methods plugins can use to interact with the document.
// Every call is serialized with all other access to the document.
type EditorAPI interface {
	// --- Document Access ---
	GetLine(index int) (string, bool)
	GetLines() []string
	GetLineCount() int
	GetBufferBytes() []byte
	GetFilePath() string
	IsModified() bool

	// --- Editing Primitives ---
	Insert(r rune) error
	InsertText(text string) error
	InsertNewline() error
	Remove() error
	SaveBuffer(path string) error

	// --- Cursor ---
	GetCursor() types.Cursor
	MoveCursor(mv types.Move)

	// --- Event Bus Interaction ---
	DispatchEvent(eventType event.Type, data interface{})
	SubscribeEvent(eventType event.Type, handler event.Handler)

	// --- Command Registration ---
	RegisterCommand(name string, cmdFunc CommandFunc) error

	// --- Status ---
	SetStatusMessage(format string, args ...interface{})

	// --- Configuration ---
	GetPluginConfigValue(pluginName, key string) (interface{}, bool)
}

// Plugin defines the interface that all plugins must implement.
type Plugin interface {
	// Name returns the unique identifier name of the plugin.
	Name() string

	// Initialize is called once when the plugin is loaded. It is where a
	// plugin subscribes to events and registers commands.
	Initialize(api EditorAPI) error

	// Shutdown is called once when the application is closing.
	Shutdown() error
}
